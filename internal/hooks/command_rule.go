package hooks

import "regexp"

// pattern is one named alternative of a detector, matched against a normalized command.
type pattern struct {
	name  string
	regex *regexp.Regexp
}

// matchesAny reports whether any pattern matches the command.
func matchesAny(patterns []pattern, command string) bool {
	for _, p := range patterns {
		if p.regex.MatchString(command) {
			return true
		}
	}
	return false
}

// commandRule blocks Bash commands whose normalized form satisfies a detector.
type commandRule struct {
	name        string
	description string
	category    Category
	severity    Severity
	detect      func(normalized string) bool
	message     string
	details     []string
}

// Name returns the unique identifier for this rule.
func (r *commandRule) Name() string {
	return r.name
}

// Description returns a human-readable description of what this rule does.
func (r *commandRule) Description() string {
	return r.description
}

// Category returns the danger category this rule reports.
func (r *commandRule) Category() Category {
	return r.category
}

// Evaluate normalizes the Bash command and runs the detector on it.
func (r *commandRule) Evaluate(input *ToolInput) (*RuleResult, error) {
	if input.Kind() != ToolBash {
		return NewAllowedResult(), nil
	}

	command := input.Command()
	if command == "" {
		return NewAllowedResult(), nil
	}

	if !r.detect(NormalizeCommand(command)) {
		return NewAllowedResult(), nil
	}

	result := NewBlockedResult(r.name, r.message)
	result.Category = r.category
	result.Severity = r.severity
	result.Details = append([]string(nil), r.details...)
	return result, nil
}

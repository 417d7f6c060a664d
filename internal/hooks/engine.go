package hooks

import "fmt"

// ruleEngine implements the rule evaluation engine.
type ruleEngine struct {
	rules []Rule
}

// NewRuleEngine creates a new rule engine with the given rules.
func NewRuleEngine(rules ...Rule) *ruleEngine {
	return &ruleEngine{
		rules: rules,
	}
}

// Rules returns the rules in evaluation order.
func (e *ruleEngine) Rules() []Rule {
	return append([]Rule(nil), e.rules...)
}

// Evaluate evaluates all rules against the tool input.
// Returns the first blocking result, or an allowed result if no rules block.
func (e *ruleEngine) Evaluate(input *ToolInput) (*RuleResult, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	for _, rule := range e.rules {
		result, err := rule.Evaluate(input)
		if err != nil {
			return nil, fmt.Errorf("rule %s failed: %w", rule.Name(), err)
		}

		if result != nil && !result.Allowed {
			return result, nil
		}
	}

	return NewAllowedResult(), nil
}

// Decide evaluates the input and fails open: a nil input or a rule error
// yields an allowed result together with the error for logging.
func (e *ruleEngine) Decide(input *ToolInput) (*RuleResult, error) {
	result, err := e.Evaluate(input)
	if err != nil {
		return NewAllowedResult(), err
	}
	return result, nil
}

// Classify runs the default rules against one invocation.
func Classify(input *ToolInput) *RuleResult {
	result, _ := NewRuleEngine(DefaultRules()...).Decide(input)
	return result
}

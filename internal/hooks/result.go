package hooks

// Category groups rules by the kind of danger they guard against.
type Category string

const (
	CategoryCredential        Category = "credential file"
	CategoryRm                Category = "rm command"
	CategoryChained           Category = "chained command"
	CategoryAlternativeDelete Category = "alternative deletion"
	CategoryGit               Category = "git operation"
	CategoryPermission        Category = "permission change"
	CategoryBrew              Category = "brew command"
)

// Severity ranks how harmful a blocked action would have been.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
)

// RuleResult represents the result of evaluating a rule.
type RuleResult struct {
	// Allowed indicates whether the tool usage should be allowed.
	Allowed bool

	// Message provides additional context about the decision.
	// For blocked results, this explains why the tool was blocked.
	Message string

	// Details are remediation lines shown after the message.
	Details []string

	// RuleName identifies which rule produced this result.
	RuleName string

	Category Category
	Severity Severity
}

// NewAllowedResult creates a result that allows the tool usage.
func NewAllowedResult() *RuleResult {
	return &RuleResult{
		Allowed:  true,
		Message:  "",
		RuleName: "",
	}
}

// NewBlockedResult creates a result that blocks the tool usage.
func NewBlockedResult(ruleName, message string) *RuleResult {
	return &RuleResult{
		Allowed:  false,
		Message:  message,
		RuleName: ruleName,
	}
}

// Lines renders a blocked result as the lines written to stderr.
// Allowed results render nothing.
func (r *RuleResult) Lines() []string {
	if r.Allowed {
		return nil
	}

	lines := make([]string, 0, len(r.Details)+1)
	lines = append(lines, "BLOCKED: "+r.Message)
	lines = append(lines, r.Details...)
	return lines
}

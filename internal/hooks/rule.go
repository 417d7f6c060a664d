package hooks

//go:generate mockgen -destination=mock_rule.go -package=hooks . Rule

// Rule represents a rule that evaluates whether a tool usage should be allowed.
type Rule interface {
	// Name returns the unique identifier for this rule.
	Name() string

	// Description returns a human-readable description of what this rule does.
	Description() string

	// Evaluate checks if the tool input should be allowed.
	// Returns a RuleResult indicating whether to allow or block the tool usage.
	Evaluate(input *ToolInput) (*RuleResult, error)
}

// CategorizedRule is a Rule that reports the danger category it guards against.
type CategorizedRule interface {
	Rule

	// Category returns the category named in this rule's block messages.
	Category() Category
}

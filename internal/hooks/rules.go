package hooks

import "github.com/gobwas/glob"

type ruleOptions struct {
	protected []glob.Glob
	disabled  map[string]bool
}

// Option configures the default rule set.
type Option func(*ruleOptions)

// WithProtectedPaths adds globs that the credential rule treats as secret files.
func WithProtectedPaths(globs ...glob.Glob) Option {
	return func(o *ruleOptions) {
		o.protected = append(o.protected, globs...)
	}
}

// WithDisabledRules drops the named rules from the default rule set.
func WithDisabledRules(names ...string) Option {
	return func(o *ruleOptions) {
		for _, name := range names {
			o.disabled[name] = true
		}
	}
}

// DefaultRules returns the safety rules in evaluation order.
// Credential protection comes first because leaked secrets cannot be recovered;
// the command rules follow from most to least destructive.
func DefaultRules(opts ...Option) []Rule {
	o := &ruleOptions{
		disabled: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(o)
	}

	all := []Rule{
		NewCredentialRule(o.protected...),
		NewRmRule(),
		NewChainedRule(),
		NewAlternativeDeletionRule(),
		NewGitRule(),
		NewPermissionRule(),
		NewBrewRule(),
	}

	rules := make([]Rule, 0, len(all))
	for _, rule := range all {
		if o.disabled[rule.Name()] {
			continue
		}
		rules = append(rules, rule)
	}
	return rules
}

// RuleNames returns the names of every default rule in evaluation order.
func RuleNames() []string {
	rules := DefaultRules()
	names := make([]string, 0, len(rules))
	for _, rule := range rules {
		names = append(names, rule.Name())
	}
	return names
}

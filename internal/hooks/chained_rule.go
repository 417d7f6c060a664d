package hooks

import "regexp"

var chainedRmPatterns = []pattern{
	{name: "&& rm -r", regex: regexp.MustCompile(`&&\s*rm\s+.*-[a-z]*r`)},
	{name: "|| rm -r", regex: regexp.MustCompile(`\|\|\s*rm\s+.*-[a-z]*r`)},
	{name: "; rm -r", regex: regexp.MustCompile(`;\s*rm\s+.*-[a-z]*r`)},
}

// IsDangerousChain reports whether a command separator introduces a recursive rm.
// The force flag is not required here.
func IsDangerousChain(normalized string) bool {
	return matchesAny(chainedRmPatterns, normalized)
}

// NewChainedRule creates a new rule that blocks recursive rm hidden behind &&, || or ;.
func NewChainedRule() Rule {
	return &commandRule{
		name:        "chained-rm",
		description: "Blocks &&, || and ; chains that run a recursive rm",
		category:    CategoryChained,
		severity:    SeverityCritical,
		detect:      IsDangerousChain,
		message:     "Dangerous chained command detected",
		details: []string{
			"Command chaining with rm -r is not allowed.",
			"Run the commands separately and remove files individually.",
		},
	}
}

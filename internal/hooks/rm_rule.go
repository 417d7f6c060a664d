package hooks

import (
	"regexp"
	"strings"
)

// rmForcePatterns match rm invocations that are both recursive and forced, in any flag order.
var rmForcePatterns = []pattern{
	{name: "rm -rf", regex: regexp.MustCompile(`\brm\s+.*-[a-z]*r[a-z]*f`)},
	{name: "rm -fr", regex: regexp.MustCompile(`\brm\s+.*-[a-z]*f[a-z]*r`)},
	{name: "rm --recursive --force", regex: regexp.MustCompile(`\brm\s+--recursive\s+--force`)},
	{name: "rm --force --recursive", regex: regexp.MustCompile(`\brm\s+--force\s+--recursive`)},
	{name: "rm -r ... -f", regex: regexp.MustCompile(`\brm\s+-r\s+.*-f`)},
	{name: "rm -f ... -r", regex: regexp.MustCompile(`\brm\s+-f\s+.*-r`)},
}

// rmRecursivePattern matches rm with an r inside any flag cluster.
var rmRecursivePattern = regexp.MustCompile(`\brm\s+.*-[a-z]*r`)

// dangerousRmPaths are searched anywhere in the command line, so "." also matches
// file extensions. That over-blocks on purpose.
var dangerousRmPaths = []string{
	"/",
	"/*",
	"~",
	"~/",
	"$home",
	"..",
	"*",
	".",
}

// IsDangerousRm reports whether a normalized command is a recursive forced rm,
// or a recursive rm anywhere near a dangerous path token.
func IsDangerousRm(normalized string) bool {
	if matchesAny(rmForcePatterns, normalized) {
		return true
	}

	if !rmRecursivePattern.MatchString(normalized) {
		return false
	}
	for _, path := range dangerousRmPaths {
		if strings.Contains(normalized, path) {
			return true
		}
	}
	return false
}

// NewRmRule creates a new rule that blocks dangerous rm commands.
func NewRmRule() Rule {
	return &commandRule{
		name:        "rm",
		description: "Blocks recursive forced rm and recursive rm aimed at dangerous paths",
		category:    CategoryRm,
		severity:    SeverityCritical,
		detect:      IsDangerousRm,
		message:     "Dangerous rm command detected",
		details: []string{
			"This command could delete critical system files or directories.",
			"Delete specific files by name, or ask the user to run the removal manually.",
		},
	}
}

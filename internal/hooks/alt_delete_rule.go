package hooks

import "regexp"

// alternativeDeletionPatterns cover known ways of deleting files without a plain rm.
// This is a denylist and cannot be exhaustive.
var alternativeDeletionPatterns = []pattern{
	{name: "find -delete", regex: regexp.MustCompile(`\bfind\b.*-delete`)},
	{name: "find -exec rm", regex: regexp.MustCompile(`\bfind\b.*-exec(dir)?\s+rm`)},
	{name: "xargs rm", regex: regexp.MustCompile(`\bxargs\s+rm`)},
	{name: "perl -e rm -r", regex: regexp.MustCompile(`\bperl\s+-e.*rm\s+.*-r`)},
	{name: "python -c rm -r", regex: regexp.MustCompile(`\bpython3?\s+-c.*rm\s+.*-r`)},
	{name: "ruby -e rm -r", regex: regexp.MustCompile(`\bruby\s+-e.*rm\s+.*-r`)},
	{name: "node -e rm -r", regex: regexp.MustCompile(`\bnode\s+-e.*rm\s+.*-r`)},
	{name: "eval rm -r", regex: regexp.MustCompile(`\beval.*rm\s+.*-r`)},
}

// IsAlternativeDeletion reports whether a command deletes files through find, xargs,
// an inline interpreter one-liner, or eval.
func IsAlternativeDeletion(normalized string) bool {
	return matchesAny(alternativeDeletionPatterns, normalized)
}

// NewAlternativeDeletionRule creates a new rule that blocks rm bypass idioms.
func NewAlternativeDeletionRule() Rule {
	return &commandRule{
		name:        "alternative-deletion",
		description: "Blocks find -delete, xargs rm and rm embedded in interpreter one-liners",
		category:    CategoryAlternativeDelete,
		severity:    SeverityHigh,
		detect:      IsAlternativeDeletion,
		message:     "Alternative deletion method detected",
		details: []string{
			"Using find -delete, xargs rm, or embedded rm commands is not allowed.",
			"List the files first and delete them explicitly by name.",
		},
	}
}

package hooks

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeCommand returns the canonical form every command detector matches against:
// NFKC-folded, lowercased, with whitespace runs collapsed to single spaces and trimmed.
func NormalizeCommand(raw string) string {
	if raw == "" {
		return ""
	}

	// Fullwidth and other compatibility forms fold to ASCII ("ｒｍ" -> "rm").
	folded := norm.NFKC.String(raw)
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

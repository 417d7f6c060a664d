package hooks

import "regexp"

var mutatingBrewPattern = regexp.MustCompile(`\bbrew\s+(?:install|uninstall|reinstall|upgrade|tap|untap|link|unlink)\b`)

// IsMutatingBrew reports whether a normalized command changes installed Homebrew packages.
// Read-only subcommands such as list, search and info do not match.
func IsMutatingBrew(normalized string) bool {
	return mutatingBrewPattern.MatchString(normalized)
}

// NewBrewRule creates a new rule that blocks package-mutating brew subcommands.
func NewBrewRule() Rule {
	return &commandRule{
		name:        "brew",
		description: "Blocks brew install, uninstall, reinstall, upgrade, tap, untap, link and unlink",
		category:    CategoryBrew,
		severity:    SeverityMedium,
		detect:      IsMutatingBrew,
		message:     "Unauthorized brew command detected",
		details: []string{
			"Package installation and system changes via brew are not allowed.",
			"Please install packages manually or add them to your project dependencies.",
		},
	}
}

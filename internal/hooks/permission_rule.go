package hooks

import "regexp"

// permissionAllowGuards short-circuit the permission detector before any deny pattern runs.
// Making a script executable is a routine development step.
var permissionAllowGuards = []pattern{
	{name: "chmod +x", regex: regexp.MustCompile(`\bchmod\s+\+x\b`)},
}

// Input is lowercased, so -r below also covers chmod -R and chown -R.
var dangerousPermissionPatterns = []pattern{
	{name: "chmod 777", regex: regexp.MustCompile(`\bchmod\s+777`)},
	{name: "chmod -R 777", regex: regexp.MustCompile(`\bchmod\s+.*-r\s+777`)},
	{name: "chmod a+rwx", regex: regexp.MustCompile(`\bchmod\s+.*a\+rwx`)},
	{name: "chmod o+w", regex: regexp.MustCompile(`\bchmod\s+.*o\+w`)},
	{name: "chmod -R permissive mode", regex: regexp.MustCompile(`\bchmod\s+.*-r.*[67][67][67]`)},
	{name: "chmod setuid/setgid octal", regex: regexp.MustCompile(`\bchmod\s+[0-7]*[4567][0-7]{3}\b`)},
	{name: "chmod u+s/g+s", regex: regexp.MustCompile(`\bchmod\s+.*[ug]\+s`)},
	{name: "chown -R root", regex: regexp.MustCompile(`\bchown\s+.*-r\s+root`)},
	{name: "chown -R user:group", regex: regexp.MustCompile(`\bchown\s+.*-r\s+.*:.*`)},
	{name: "sudo chmod", regex: regexp.MustCompile(`\bsudo\s+chmod\b`)},
	{name: "sudo chown", regex: regexp.MustCompile(`\bsudo\s+chown`)},
}

// IsDangerousPermissionChange reports whether a normalized command makes files
// world-writable, sets setuid/setgid bits, or recursively changes ownership.
// Any command containing chmod +x is allowed, even if a deny pattern would also match.
func IsDangerousPermissionChange(normalized string) bool {
	if matchesAny(permissionAllowGuards, normalized) {
		return false
	}
	return matchesAny(dangerousPermissionPatterns, normalized)
}

// NewPermissionRule creates a new rule that blocks dangerous chmod and chown usage.
func NewPermissionRule() Rule {
	return &commandRule{
		name:        "permission",
		description: "Blocks chmod 777, setuid/setgid bits and recursive chown; allows chmod +x",
		category:    CategoryPermission,
		severity:    SeverityHigh,
		detect:      IsDangerousPermissionChange,
		message:     "Dangerous permission change detected",
		details: []string{
			"Commands like chmod 777, setuid/setgid, and recursive chown are not allowed.",
			"Note: chmod +x is allowed for making scripts executable.",
		},
	}
}

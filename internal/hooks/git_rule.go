package hooks

import "regexp"

// gitPrefix matches "git" plus the global options that may precede a subcommand
// (-C dir, -c key=value, --git-dir=..., --no-pager). Input is lowercased, so -C and -c collapse.
const gitPrefix = `\bgit(?:\s+-c\s+\S+|\s+--[a-z-]+=\S+|\s+--(?:no-pager|paginate|bare|literal-pathspecs))*\s+`

// gitPattern compiles a pattern for a git subcommand followed by rest.
func gitPattern(name, subcommand, rest string) pattern {
	return pattern{
		name:  name,
		regex: regexp.MustCompile(gitPrefix + subcommand + rest),
	}
}

var dangerousGitPatterns = []pattern{
	gitPattern("push --force", "push", `\s+.*--force`),
	gitPattern("push -f", "push", `\s+(?:.*\s)?-f\b`),
	gitPattern("reset --hard", "reset", `\s+.*--hard`),
	gitPattern("clean -f/-d/-x", "clean", `\s+(?:.*\s)?(?:-[a-z]*[dfx]|--force)`),
	gitPattern("branch -D", "branch", `\s+(?:.*\s)?(?:-[a-z]*d[a-z]*|--delete)\b`),
	gitPattern("config --global", "config", `\s+(?:.*\s)?--global`),
	gitPattern("config --system", "config", `\s+(?:.*\s)?--system`),
	gitPattern("filter-branch", "filter-branch", ``),
	gitPattern("filter-repo", "filter-repo", ``),
	gitPattern("rebase -i", "rebase", `\s+(?:.*\s)?(?:-i|--interactive)\b`),
	gitPattern("reflog expire", "reflog", `\s+expire`),
	gitPattern("gc --prune=now", "gc", `\s+.*--prune=now`),
	gitPattern("remote remove origin", "remote", `\s+remove\s+origin\b`),
	gitPattern("remote rm origin", "remote", `\s+rm\s+origin\b`),
}

var gitCommandPattern = regexp.MustCompile(`\bgit\s`)

// IsDangerousGit reports whether a normalized command runs a destructive or
// irreversible git subcommand, or skips git hooks. Git's argument grammar is not parsed.
func IsDangerousGit(normalized string) bool {
	return matchesAny(dangerousGitPatterns, normalized) || bypassesGitHooks(normalized)
}

// bypassesGitHooks reports whether a git command passes --no-verify as a word of its own.
// A quoted commit message that mentions the flag stays a single token and does not match.
func bypassesGitHooks(normalized string) bool {
	if !gitCommandPattern.MatchString(normalized) {
		return false
	}

	for _, token := range parseCommandTokens(normalized) {
		if token == "--no-verify" {
			return true
		}
	}
	return false
}

// NewGitRule creates a new rule that blocks destructive git operations.
func NewGitRule() Rule {
	return &commandRule{
		name:        "git",
		description: "Blocks force push, hard reset, history rewrites, global config, branch/remote deletion and --no-verify",
		category:    CategoryGit,
		severity:    SeverityHigh,
		detect:      IsDangerousGit,
		message:     "Dangerous git operation detected",
		details: []string{
			"Operations like force push, hard reset, global config changes and skipping git hooks are not allowed.",
			"If you need to perform this operation, run it manually outside of the assistant.",
		},
	}
}

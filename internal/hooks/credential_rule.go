package hooks

import (
	"path"
	"strings"

	"github.com/gobwas/glob"
)

const (
	envFileMarker = ".env"

	// maxShellDepth bounds recursion into sh -c and eval scripts.
	maxShellDepth = 3
)

// envTemplateSuffixes are the .env variants that hold no secrets.
var envTemplateSuffixes = []string{".sample", ".example"}

// credentialFileNames are secret-bearing files matched anywhere in a path.
var credentialFileNames = []string{
	"client_secret.json",
	".credentials.json",
	"token.pickle",
}

// fileVerbs are commands whose arguments name files they read, write, stream,
// source, execute, upload or archive.
var fileVerbs = map[string]bool{
	// readers
	"cat": true, "less": true, "more": true, "head": true, "tail": true,
	"awk": true, "sed": true, "grep": true, "egrep": true, "fgrep": true,
	"jq": true, "json_pp": true,
	// editors
	"vim": true, "vi": true, "nano": true, "emacs": true, "code": true,
	"subl": true, "atom": true,
	// encoders and dumpers
	"base64": true, "xxd": true, "od": true, "strings": true, "hexdump": true,
	// writers
	"tee": true, "touch": true, "cp": true, "mv": true, "rm": true,
	// sourcing
	"source": true, ".": true,
	// interpreters
	"python": true, "python3": true, "ruby": true, "perl": true, "node": true, "php": true,
	// network
	"curl": true, "wget": true,
	// archives
	"zip": true, "tar": true, "gzip": true, "bzip2": true,
}

// shellInterpreters run the script passed with -c.
var shellInterpreters = map[string]bool{
	"sh":   true,
	"bash": true,
	"zsh":  true,
}

// isEnvFile reports whether a lowercased path mentions .env with any suffix other
// than a template suffix. Every occurrence is checked, so "a.env.sample/.env" matches.
func isEnvFile(lowerPath string) bool {
	rest := lowerPath
	for {
		idx := strings.Index(rest, envFileMarker)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(envFileMarker):]
		if !hasTemplateSuffix(rest) {
			return true
		}
	}
}

func hasTemplateSuffix(afterMarker string) bool {
	for _, suffix := range envTemplateSuffixes {
		if strings.HasPrefix(afterMarker, suffix) {
			return true
		}
	}
	return false
}

// isSecretPath reports whether a lowercased path names a protected credential file.
func isSecretPath(lowerPath string, protected []glob.Glob) bool {
	if isEnvFile(lowerPath) {
		return true
	}
	for _, name := range credentialFileNames {
		if strings.Contains(lowerPath, name) {
			return true
		}
	}
	for _, g := range protected {
		if g.Match(lowerPath) || g.Match(path.Base(lowerPath)) {
			return true
		}
	}
	return false
}

// IsCredentialPath reports whether a file-tool path points at a credential file.
// Matching is case-insensitive; protected globs must be compiled from lowercase patterns.
func IsCredentialPath(filePath string, protected ...glob.Glob) bool {
	if filePath == "" {
		return false
	}
	return isSecretPath(strings.ToLower(filePath), protected)
}

// IsCredentialCommand reports whether a shell command reads, writes, streams, sources,
// uploads or archives a credential file. A file must appear as an argument of a
// file-handling command or as a redirection target; a mention inside an unrelated
// command's string argument, such as a commit message, does not count.
func IsCredentialCommand(command string, protected ...glob.Glob) bool {
	return credentialCommandAtDepth(strings.ToLower(command), protected, 0)
}

func credentialCommandAtDepth(command string, protected []glob.Glob, depth int) bool {
	if command == "" || depth > maxShellDepth {
		return false
	}

	for _, cmd := range extractSimpleCommands(command) {
		for _, target := range cmd.redirects {
			if isSecretPath(target, protected) {
				return true
			}
		}

		verb, args := resolveVerb(cmd.args)
		switch {
		case fileVerbs[verb]:
			for _, arg := range args {
				if isSecretPath(arg, protected) {
					return true
				}
			}
		case verb == "eval":
			if credentialCommandAtDepth(strings.Join(args, " "), protected, depth+1) {
				return true
			}
		case shellInterpreters[verb]:
			if script, ok := interpreterScript(args); ok && credentialCommandAtDepth(script, protected, depth+1) {
				return true
			}
		}
	}
	return false
}

// interpreterScript returns the script following -c in a shell invocation.
func interpreterScript(args []string) (string, bool) {
	for i, arg := range args {
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") {
			continue
		}
		if strings.Contains(arg, "c") && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}

// credentialRule blocks any tool from touching credential files.
type credentialRule struct {
	protected []glob.Glob
}

// NewCredentialRule creates a new rule that blocks access to credential files.
// Extra protected globs extend the built-in .env and credential file list.
func NewCredentialRule(protected ...glob.Glob) Rule {
	return &credentialRule{
		protected: protected,
	}
}

// Name returns the unique identifier for this rule.
func (r *credentialRule) Name() string {
	return "credential-file"
}

// Description returns a human-readable description of what this rule does.
func (r *credentialRule) Description() string {
	return "Blocks reading, editing, streaming or writing .env*, client_secret.json, .credentials.json and token.pickle"
}

// Category returns the danger category this rule reports.
func (r *credentialRule) Category() Category {
	return CategoryCredential
}

// Evaluate checks file_path for file tools and the command for Bash.
func (r *credentialRule) Evaluate(input *ToolInput) (*RuleResult, error) {
	var matched bool
	switch input.Kind() {
	case ToolRead, ToolEdit, ToolMultiEdit, ToolWrite:
		matched = IsCredentialPath(input.FilePath(), r.protected...)
	case ToolBash:
		matched = IsCredentialCommand(input.Command(), r.protected...)
	case ToolUnknown:
		matched = false
	}

	if !matched {
		return NewAllowedResult(), nil
	}

	result := NewBlockedResult(r.Name(), "Access to credential files is prohibited")
	result.Category = CategoryCredential
	result.Severity = SeverityCritical
	result.Details = []string{
		"Protected files: .env*, client_secret.json, .credentials.json, token.pickle",
		"Use .env.sample or .env.example for template files.",
	}
	return result, nil
}

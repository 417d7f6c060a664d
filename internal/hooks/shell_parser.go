package hooks

import (
	"path"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// simpleCommand is one command extracted from a shell line: its words and
// the files its redirections read from or write to.
type simpleCommand struct {
	args      []string
	redirects []string
}

// extractSimpleCommands returns every simple command in a shell line, including
// commands in pipelines, chains, subshells and $(...) or backtick substitutions.
// When the shell parser rejects the line, a quote-aware tokenizer is used instead.
func extractSimpleCommands(command string) []simpleCommand {
	commands, err := parseSimpleCommands(command)
	if err != nil {
		return tokenizeSimpleCommands(command)
	}
	return commands
}

// parseSimpleCommands walks the bash AST of a command line.
func parseSimpleCommands(command string) ([]simpleCommand, error) {
	parser := syntax.NewParser(syntax.KeepComments(false), syntax.Variant(syntax.LangBash))
	file, err := parser.Parse(strings.NewReader(command), "")
	if err != nil {
		return nil, err
	}

	var commands []simpleCommand
	syntax.Walk(file, func(node syntax.Node) bool {
		stmt, ok := node.(*syntax.Stmt)
		if !ok {
			return true
		}

		var cmd simpleCommand
		if call, ok := stmt.Cmd.(*syntax.CallExpr); ok {
			for _, word := range call.Args {
				cmd.args = append(cmd.args, wordToString(word))
			}
		}
		for _, redirect := range stmt.Redirs {
			if isFileRedirect(redirect.Op) {
				cmd.redirects = append(cmd.redirects, wordToString(redirect.Word))
			}
		}
		if len(cmd.args) > 0 || len(cmd.redirects) > 0 {
			commands = append(commands, cmd)
		}
		return true
	})

	return commands, nil
}

// isFileRedirect reports whether a redirection reads or writes a named file.
// Heredocs, here-strings and fd duplications do not.
func isFileRedirect(op syntax.RedirOperator) bool {
	switch op {
	case syntax.RdrOut, syntax.AppOut, syntax.RdrIn, syntax.RdrInOut,
		syntax.ClbOut, syntax.RdrAll, syntax.AppAll:
		return true
	}
	return false
}

// wordToString returns the literal text of a word with quotes removed.
// Parameter expansions are kept as $name; command substitutions are dropped
// because the walk visits their statements separately.
func wordToString(w *syntax.Word) string {
	if w == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range w.Parts {
		writeWordPart(&sb, part)
	}
	return sb.String()
}

func writeWordPart(sb *strings.Builder, part syntax.WordPart) {
	switch p := part.(type) {
	case *syntax.Lit:
		sb.WriteString(p.Value)
	case *syntax.SglQuoted:
		sb.WriteString(p.Value)
	case *syntax.DblQuoted:
		for _, inner := range p.Parts {
			writeWordPart(sb, inner)
		}
	case *syntax.ParamExp:
		if p.Param != nil {
			sb.WriteString("$")
			sb.WriteString(p.Param.Value)
		}
	}
}

// tokenizeSimpleCommands is the fallback for lines the shell parser rejects,
// such as unbalanced quotes.
func tokenizeSimpleCommands(command string) []simpleCommand {
	var commands []simpleCommand
	for _, segment := range splitShellCommands(command) {
		var cmd simpleCommand
		tokens := parseCommandTokens(segment)
		for i := 0; i < len(tokens); i++ {
			word, target, isRedirect := splitRedirectToken(tokens[i])
			if !isRedirect {
				cmd.args = append(cmd.args, stripQuotes(tokens[i]))
				continue
			}

			if word != "" {
				cmd.args = append(cmd.args, word)
			}
			if target == "" && i+1 < len(tokens) {
				i++
				target = stripQuotes(tokens[i])
			}
			if target != "" {
				cmd.redirects = append(cmd.redirects, target)
			}
		}
		if len(cmd.args) > 0 || len(cmd.redirects) > 0 {
			commands = append(commands, cmd)
		}
	}
	return commands
}

// commandWrappers run the command that follows them.
var commandWrappers = map[string]bool{
	"sudo":    true,
	"env":     true,
	"nohup":   true,
	"time":    true,
	"command": true,
	"exec":    true,
	"xargs":   true,
	"nice":    true,
	"doas":    true,
}

// wrapperFlagsWithValues lists wrapper flags whose value is a separate word.
var wrapperFlagsWithValues = map[string]bool{
	"-u": true,
	"-g": true,
	"-n": true,
	"-i": true,
	"-I": true,
}

// resolveVerb skips wrappers, their flags and VAR=value words and returns the
// base name of the command that actually runs together with its arguments.
func resolveVerb(args []string) (string, []string) {
	i := 0
	for i < len(args) {
		name := baseName(args[i])
		if isAssignment(args[i]) {
			i++
			continue
		}
		if !commandWrappers[name] {
			break
		}

		i++
		for i < len(args) && (strings.HasPrefix(args[i], "-") || isAssignment(args[i])) {
			if wrapperFlagsWithValues[args[i]] {
				i++
			}
			i++
		}
	}

	if i >= len(args) {
		return "", nil
	}
	return baseName(args[i]), args[i+1:]
}

// baseName strips any directory from a command word ("/bin/cat" -> "cat").
// Unlike path.Base it keeps "" empty, so a word made only of a substitution
// never looks like the "." builtin.
func baseName(word string) string {
	if word == "" || word == "." {
		return word
	}
	return path.Base(word)
}

// isAssignment reports whether a word is a VAR=value environment assignment.
func isAssignment(word string) bool {
	name, _, ok := strings.Cut(word, "=")
	if !ok || name == "" {
		return false
	}
	for i, ch := range name {
		isLetter := ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
		if !isLetter && (i == 0 || ch < '0' || ch > '9') {
			return false
		}
	}
	return true
}

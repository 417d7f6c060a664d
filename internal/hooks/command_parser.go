// Package hooks provides command parsing and validation utilities.
// This file contains the quote-aware tokenizer used when the shell parser rejects a command.
package hooks

import (
	"strings"
)

// parseCommandTokens parses a command string into tokens, respecting quoted strings.
// Quotes are included in the returned tokens to preserve the original token structure.
func parseCommandTokens(command string) []string {
	var tokens []string
	var current strings.Builder
	inSingleQuote := false
	inDoubleQuote := false

	for i := 0; i < len(command); i++ {
		ch := command[i]

		switch ch {
		case '\'':
			if !inDoubleQuote {
				inSingleQuote = !inSingleQuote
			}
			current.WriteByte(ch)
		case '"':
			if !inSingleQuote {
				inDoubleQuote = !inDoubleQuote
			}
			current.WriteByte(ch)
		case ' ', '\t', '\n', '\r':
			if !inSingleQuote && !inDoubleQuote {
				if current.Len() > 0 {
					tokens = append(tokens, current.String())
					current.Reset()
				}
			} else {
				current.WriteByte(ch)
			}
		default:
			current.WriteByte(ch)
		}
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// splitShellCommands splits a command line on &&, ||, |, ;, &, newlines, parentheses
// and backticks outside of quotes. Empty segments are dropped.
func splitShellCommands(command string) []string {
	var segments []string
	var current strings.Builder
	inSingleQuote := false
	inDoubleQuote := false

	flush := func() {
		if segment := strings.TrimSpace(current.String()); segment != "" {
			segments = append(segments, segment)
		}
		current.Reset()
	}

	for i := 0; i < len(command); i++ {
		ch := command[i]

		if ch == '\'' && !inDoubleQuote {
			inSingleQuote = !inSingleQuote
			current.WriteByte(ch)
			continue
		}
		if ch == '"' && !inSingleQuote {
			inDoubleQuote = !inDoubleQuote
			current.WriteByte(ch)
			continue
		}
		if inSingleQuote || inDoubleQuote {
			current.WriteByte(ch)
			continue
		}

		switch ch {
		case '&':
			// "&>" and ">&" are redirections, not separators.
			if i+1 < len(command) && command[i+1] == '>' {
				current.WriteByte(ch)
				continue
			}
			if i > 0 && command[i-1] == '>' {
				current.WriteByte(ch)
				continue
			}
			if i+1 < len(command) && command[i+1] == '&' {
				i++
			}
			flush()
		case '|':
			if i > 0 && command[i-1] == '>' {
				current.WriteByte(ch)
				continue
			}
			if i+1 < len(command) && command[i+1] == '|' {
				i++
			}
			flush()
		case ';', '\n', '(', ')', '`':
			flush()
		default:
			current.WriteByte(ch)
		}
	}

	flush()
	return segments
}

// stripQuotes removes single and double quote characters from a token.
func stripQuotes(token string) string {
	return strings.NewReplacer(`"`, "", `'`, "").Replace(token)
}

// splitRedirectToken splits an unquoted token such as ">.env", "2>>log" or "echo>out"
// into the word before the operator and the redirect target after it.
// ok is false when the token contains no redirection operator.
func splitRedirectToken(token string) (word, target string, ok bool) {
	if strings.ContainsAny(token, `"'`) {
		return token, "", false
	}

	idx := strings.IndexAny(token, "<>")
	if idx < 0 {
		return token, "", false
	}

	word = strings.TrimRight(token[:idx], "&0123456789")
	target = strings.TrimLeft(token[idx:], "<>&|")
	return word, target, true
}

package hooks

import (
	"encoding/json"
	"fmt"
	"io"
)

// ToolKind is the closed set of tool kinds the hook knows how to inspect.
type ToolKind int

const (
	ToolUnknown ToolKind = iota
	ToolRead
	ToolEdit
	ToolMultiEdit
	ToolWrite
	ToolBash
)

// ParseToolKind maps a tool_name from the hook payload to a ToolKind.
// Unrecognized names map to ToolUnknown.
func ParseToolKind(name string) ToolKind {
	switch name {
	case "Read":
		return ToolRead
	case "Edit":
		return ToolEdit
	case "MultiEdit":
		return ToolMultiEdit
	case "Write":
		return ToolWrite
	case "Bash":
		return ToolBash
	default:
		return ToolUnknown
	}
}

// String returns the wire name of the tool kind.
func (k ToolKind) String() string {
	switch k {
	case ToolRead:
		return "Read"
	case ToolEdit:
		return "Edit"
	case ToolMultiEdit:
		return "MultiEdit"
	case ToolWrite:
		return "Write"
	case ToolBash:
		return "Bash"
	case ToolUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// IsFileTool reports whether the tool operates on a single file_path.
func (k ToolKind) IsFileTool() bool {
	switch k {
	case ToolRead, ToolEdit, ToolMultiEdit, ToolWrite:
		return true
	case ToolBash, ToolUnknown:
		return false
	default:
		return false
	}
}

// ToolInput represents the input to a tool from Claude Code.
type ToolInput struct {
	ToolName  string          `json:"tool_name"`
	ToolInput json.RawMessage `json:"tool_input"`
	parsed    map[string]interface{}
}

// NewBashInput builds a ToolInput for a shell command.
func NewBashInput(command string) *ToolInput {
	return &ToolInput{
		ToolName: ToolBash.String(),
		parsed:   map[string]interface{}{"command": command},
	}
}

// NewFileInput builds a ToolInput for a file-oriented tool.
func NewFileInput(kind ToolKind, filePath string) *ToolInput {
	return &ToolInput{
		ToolName: kind.String(),
		parsed:   map[string]interface{}{"file_path": filePath},
	}
}

// ParseToolInput reads and parses tool input JSON from a reader.
// A missing tool_name is not an error; it resolves to ToolUnknown.
func ParseToolInput(reader io.Reader) (*ToolInput, error) {
	var input ToolInput
	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	if len(input.ToolInput) > 0 && string(input.ToolInput) != "null" {
		var parsed map[string]interface{}
		if err := json.Unmarshal(input.ToolInput, &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse tool_input: %w", err)
		}
		input.parsed = parsed
	}

	return &input, nil
}

// Kind returns the ToolKind for the tool name.
func (t *ToolInput) Kind() ToolKind {
	return ParseToolKind(t.ToolName)
}

// Command returns the shell command, or an empty string when absent.
func (t *ToolInput) Command() string {
	command, _ := t.GetStringArg("command")
	return command
}

// FilePath returns the file path, or an empty string when absent.
func (t *ToolInput) FilePath() string {
	filePath, _ := t.GetStringArg("file_path")
	return filePath
}

// GetStringArg retrieves a string argument from the tool input.
// Returns the value and true if found, empty string and false if not found.
func (t *ToolInput) GetStringArg(name string) (string, bool) {
	if t.parsed == nil {
		return "", false
	}

	value, ok := t.parsed[name]
	if !ok {
		return "", false
	}

	strValue, ok := value.(string)
	if !ok {
		return "", false
	}

	return strValue, true
}

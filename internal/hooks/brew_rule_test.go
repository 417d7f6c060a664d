package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMutatingBrew(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    bool
	}{
		{name: "install", command: "brew install jq", want: true},
		{name: "uninstall", command: "brew uninstall jq", want: true},
		{name: "reinstall", command: "brew reinstall jq", want: true},
		{name: "upgrade", command: "brew upgrade", want: true},
		{name: "tap", command: "brew tap homebrew/cask", want: true},
		{name: "untap", command: "brew untap homebrew/cask", want: true},
		{name: "link", command: "brew link python", want: true},
		{name: "unlink", command: "brew unlink python", want: true},
		{name: "uppercase", command: "BREW INSTALL wget", want: true},
		{name: "list", command: "brew list", want: false},
		{name: "search", command: "brew search jq", want: false},
		{name: "info", command: "brew info jq", want: false},
		{name: "doctor", command: "brew doctor", want: false},
		{name: "linkage is read-only", command: "brew linkage python", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsMutatingBrew(NormalizeCommand(tt.command))
			assert.Equal(t, tt.want, got)
		})
	}
}

package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCommand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "only whitespace", input: " \t\n ", want: ""},
		{name: "already normalized", input: "git status", want: "git status"},
		{name: "uppercase is lowered", input: "RM -RF /", want: "rm -rf /"},
		{name: "whitespace runs collapse", input: "  rm   -rf\t\t/tmp  ", want: "rm -rf /tmp"},
		{name: "newlines collapse", input: "ls\n\nrm -rf x", want: "ls rm -rf x"},
		{name: "fullwidth letters fold to ascii", input: "ｒｍ -ｒｆ /", want: "rm -rf /"},
		{name: "fullwidth space folds to a space", input: "git　push --force", want: "git push --force"},
		{name: "quotes are kept", input: `echo "A  B"`, want: `echo "a b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeCommand(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeCommand(got))
		})
	}
}

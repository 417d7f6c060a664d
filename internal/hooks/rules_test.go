package hooks

import (
	"testing"

	"github.com/gobwas/glob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRules(t *testing.T) {
	tests := []struct {
		name      string
		opts      []Option
		wantNames []string
	}{
		{
			name: "evaluation order",
			wantNames: []string{
				"credential-file",
				"rm",
				"chained-rm",
				"alternative-deletion",
				"git",
				"permission",
				"brew",
			},
		},
		{
			name: "disabled rules are dropped",
			opts: []Option{WithDisabledRules("brew", "git")},
			wantNames: []string{
				"credential-file",
				"rm",
				"chained-rm",
				"alternative-deletion",
				"permission",
			},
		},
		{
			name: "unknown disabled names are ignored",
			opts: []Option{WithDisabledRules("does-not-exist")},
			wantNames: []string{
				"credential-file",
				"rm",
				"chained-rm",
				"alternative-deletion",
				"git",
				"permission",
				"brew",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := DefaultRules(tt.opts...)

			names := make([]string, 0, len(rules))
			for _, rule := range rules {
				names = append(names, rule.Name())
				assert.NotEmpty(t, rule.Description())
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestDefaultRules_Categories(t *testing.T) {
	want := map[string]Category{
		"credential-file":      CategoryCredential,
		"rm":                   CategoryRm,
		"chained-rm":           CategoryChained,
		"alternative-deletion": CategoryAlternativeDelete,
		"git":                  CategoryGit,
		"permission":           CategoryPermission,
		"brew":                 CategoryBrew,
	}

	for _, rule := range DefaultRules() {
		categorized, ok := rule.(CategorizedRule)
		require.True(t, ok, rule.Name())
		assert.Equal(t, want[rule.Name()], categorized.Category(), rule.Name())
	}
}

func TestDefaultRules_ProtectedPaths(t *testing.T) {
	engine := NewRuleEngine(DefaultRules(WithProtectedPaths(glob.MustCompile("*.pem", '/')))...)

	result, err := engine.Evaluate(NewFileInput(ToolRead, "certs/server.pem"))
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, "credential-file", result.RuleName)

	result, err = NewRuleEngine(DefaultRules()...).Evaluate(NewFileInput(ToolRead, "certs/server.pem"))
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestRuleNames(t *testing.T) {
	assert.Equal(t, []string{
		"credential-file",
		"rm",
		"chained-rm",
		"alternative-deletion",
		"git",
		"permission",
		"brew",
	}, RuleNames())
}

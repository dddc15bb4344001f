package hook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blairham/hooksmith/pkg/config"
)

func TestStandardHooks(t *testing.T) {
	assert.Len(t, StandardHooks, 28)

	seen := map[string]bool{}
	for _, name := range StandardHooks {
		assert.False(t, seen[name], "duplicate standard hook %s", name)
		seen[name] = true
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"pre-commit", true},
		{"commit-msg", true},
		{"post-index-change", true},
		{"reference-transaction", true},
		{"Pre-Commit", false},
		{"pre-comit", false},
		{" pre-commit", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Validate(tt.name)
			assert.Equal(t, tt.name, v.Name)
			assert.Equal(t, tt.valid, v.Valid)
		})
	}
}

func TestValidateAll(t *testing.T) {
	cfg, err := config.New(
		config.HookDefinition{Name: "pre-comit", Commands: []string{"echo A"}},
		config.HookDefinition{Name: "pre-push", Commands: []string{"echo B"}},
		config.HookDefinition{Name: "lint", Commands: []string{"echo C"}},
	)
	require.NoError(t, err)

	results := ValidateAll(cfg)

	assert.Equal(t, []Validation{
		{Name: "pre-comit", Valid: false},
		{Name: "pre-push", Valid: true},
		{Name: "lint", Valid: false},
	}, results)
	assert.Equal(t, []string{"pre-comit", "lint"}, Unknown(results))
}

func TestValidateAll_Empty(t *testing.T) {
	cfg, err := config.New()
	require.NoError(t, err)

	assert.Empty(t, ValidateAll(cfg))
	assert.Empty(t, Unknown(ValidateAll(cfg)))
}

package hook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blairham/hooksmith/pkg/config"
)

func TestComparator_AfterInstall(t *testing.T) {
	hooksDir := t.TempDir()
	cfg := newConfig(t,
		config.HookDefinition{Name: "pre-commit", Commands: []string{"echo A"}},
		config.HookDefinition{Name: "pre-push", Commands: []string{"echo B"}},
	)
	installer := NewInstaller(hooksDir, Options{})
	_, err := installer.Install(cfg)
	require.NoError(t, err)

	result, err := NewComparator(installer).Compare(cfg)
	require.NoError(t, err)

	assert.Equal(t, Comparison{
		{Name: "pre-commit", Outcome: Matching},
		{Name: "pre-push", Outcome: Matching},
	}, result)
	assert.False(t, result.Drifted())
}

func TestComparator_Outcomes(t *testing.T) {
	hooksDir := t.TempDir()
	installer := NewInstaller(hooksDir, Options{})

	old := newConfig(t,
		config.HookDefinition{Name: "pre-commit", Commands: []string{"echo A"}},
		config.HookDefinition{Name: "post-merge", Commands: []string{"echo M"}},
		config.HookDefinition{Name: "my-custom", Commands: []string{"echo X"}},
	)
	_, err := installer.Install(old)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(hooksDir, "post-checkout"), []byte("#!/bin/sh\necho mine\n"), 0o600))

	cfg := newConfig(t,
		config.HookDefinition{Name: "pre-commit", Commands: []string{"echo A", "echo B"}},
		config.HookDefinition{Name: "pre-push", Commands: []string{"echo P"}},
		config.HookDefinition{Name: "post-checkout", Commands: []string{"echo C"}},
	)

	result, err := NewComparator(installer).Compare(cfg)
	require.NoError(t, err)

	expected := map[string]Outcome{
		"my-custom":     Extra,
		"post-checkout": Diverged,
		"post-merge":    Extra,
		"pre-commit":    Diverged,
		"pre-push":      Missing,
	}
	assert.Len(t, result, len(expected))
	for name, outcome := range expected {
		got, ok := result.Get(name)
		assert.True(t, ok, name)
		assert.Equal(t, outcome, got, name)
	}

	_, ok := result.Get("commit-msg")
	assert.False(t, ok, "unconfigured, uninstalled hooks are absent")
	assert.True(t, result.Drifted())
	assert.Equal(t, 2, result.Count(Diverged))
}

func TestComparator_ForeignHookIgnored(t *testing.T) {
	hooksDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(hooksDir, "pre-commit"), []byte("#!/bin/sh\necho mine\n"), 0o600))

	installer := NewInstaller(hooksDir, Options{})
	result, err := NewComparator(installer).Compare(newConfig(t))
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestComparator_AfterUninstallAll(t *testing.T) {
	hooksDir := t.TempDir()
	cfg := newConfig(t,
		config.HookDefinition{Name: "pre-commit", Commands: []string{"echo A"}},
		config.HookDefinition{Name: "commit-msg", Commands: []string{`./check.sh "$1"`}},
	)
	installer := NewInstaller(hooksDir, Options{})
	_, err := installer.Install(cfg)
	require.NoError(t, err)
	_, err = installer.Uninstall("")
	require.NoError(t, err)

	result, err := NewComparator(installer).Compare(cfg)
	require.NoError(t, err)

	assert.Equal(t, Comparison{
		{Name: "commit-msg", Outcome: Missing},
		{Name: "pre-commit", Outcome: Missing},
	}, result)
}

func TestComparator_MissingDirectory(t *testing.T) {
	installer := NewInstaller(filepath.Join(t.TempDir(), "hooks"), Options{})
	cfg := newConfig(t, config.HookDefinition{Name: "pre-commit", Commands: []string{"echo A"}})

	result, err := NewComparator(installer).Compare(cfg)
	require.NoError(t, err)
	assert.Equal(t, Comparison{{Name: "pre-commit", Outcome: Missing}}, result)
}

func TestComparator_ReadOnly(t *testing.T) {
	hooksDir := t.TempDir()
	installer := NewInstaller(hooksDir, Options{})
	_, err := installer.Install(newConfig(t, config.HookDefinition{Name: "pre-push", Commands: []string{"echo B"}}))
	require.NoError(t, err)
	before := snapshot(t, hooksDir)

	_, err = NewComparator(installer).Compare(newConfig(t, config.HookDefinition{Name: "pre-commit", Commands: []string{"echo A"}}))
	require.NoError(t, err)
	assert.Equal(t, before, snapshot(t, hooksDir))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "matching", Matching.String())
	assert.Equal(t, "missing", Missing.String())
	assert.Equal(t, "extra", Extra.String())
	assert.Equal(t, "diverged", Diverged.String())
	assert.Equal(t, "Outcome(9)", Outcome(9).String())
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "write /repo/.git/hooks/pre-commit", Action{Kind: ActionWrite, Target: "/repo/.git/hooks/pre-commit"}.String())
}

// Package hooksmith exposes hook installation to build scripts.
package hooksmith

import (
	"fmt"

	"github.com/blairham/hooksmith/pkg/config"
	"github.com/blairham/hooksmith/pkg/git"
	"github.com/blairham/hooksmith/pkg/hook"
)

// Initialize loads the configuration at configPath and installs every hook
// into the hooks directory of the repository enclosing the working
// directory. It never prompts and never runs in dry-run mode.
func Initialize(configPath string) error {
	return InitializeAt("", configPath, hook.Options{})
}

// InitializeAt is Initialize for the repository enclosing dir
func InitializeAt(dir, configPath string, opts hook.Options) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	repo, err := git.NewRepository(dir)
	if err != nil {
		return fmt.Errorf("failed to locate git repository: %w", err)
	}
	hooksDir, err := repo.HooksDir()
	if err != nil {
		return fmt.Errorf("failed to locate hooks directory: %w", err)
	}

	opts.DryRun = false
	_, err = hook.NewInstaller(hooksDir, opts).Install(cfg)
	return err
}

package commands

import (
	"github.com/mitchellh/cli"

	"github.com/blairham/hooksmith/pkg/errors"
	"github.com/blairham/hooksmith/pkg/hook"
)

// UninstallCommand handles the uninstall command functionality
type UninstallCommand struct {
	BaseCommand
}

// UninstallOptions holds command-line options for the uninstall command
type UninstallOptions struct {
	CommonOptions
	Force bool `short:"f" long:"force" description:"Remove a named hook even if hooksmith did not write it"`
}

func newUninstallCommand() *UninstallCommand {
	return &UninstallCommand{BaseCommand{
		Name:        "uninstall",
		Description: "Remove hooks installed by hooksmith from the git hooks directory.",
		Usage:       "[OPTIONS] [HOOK]",
		Examples: []Example{
			{Command: "hooksmith uninstall", Description: "Remove every hooksmith hook"},
			{Command: "hooksmith uninstall pre-push", Description: "Remove only the pre-push hook"},
			{Command: "hooksmith uninstall pre-push --force", Description: "Remove it even if another tool wrote it"},
			{Command: "hooksmith uninstall --dry-run", Description: "Show what would be removed"},
		},
		Notes: []string{
			"Without HOOK, scripts that hooksmith did not write are left in place.",
			"A HOOK that is not installed is reported as a warning.",
		},
	}}
}

// Help returns the help text for the uninstall command
func (c *UninstallCommand) Help() string {
	var opts UninstallOptions
	return c.GenerateHelp(&opts)
}

// Synopsis returns a short description of the uninstall command
func (c *UninstallCommand) Synopsis() string {
	return "Uninstall hooksmith hooks from git repository"
}

// Run executes the uninstall command
func (c *UninstallCommand) Run(args []string) int {
	var opts UninstallOptions
	remaining, err := c.ParseArgsWithHelp(&opts, args)
	if err != nil {
		return ExitError
	}
	if remaining == nil {
		return ExitOK
	}
	if len(remaining) > 1 {
		return c.Usagef("expected at most one hook name, got %v", remaining)
	}

	var name string
	if len(remaining) == 1 {
		name = remaining[0]
	}

	session := c.NewSession(&opts.CommonOptions)
	session.Options.Force = opts.Force

	hooksDir, err := c.HooksDir()
	if err != nil {
		return c.Fail(err)
	}

	results, err := hook.NewInstaller(hooksDir, session.Options).Uninstall(name)
	session.Formatter.PrintUninstall(results)

	if errors.Is(err, errors.ErrNotInstalled) {
		return ExitOK
	}
	return ExitCodeFor(err)
}

// UninstallCommandFactory creates a new uninstall command instance
func UninstallCommandFactory() (cli.Command, error) {
	return newUninstallCommand(), nil
}

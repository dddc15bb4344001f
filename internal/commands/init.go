package commands

import (
	"os"

	"github.com/mitchellh/cli"

	"github.com/blairham/hooksmith/pkg/config"
	"github.com/blairham/hooksmith/pkg/hook"
	"github.com/blairham/hooksmith/pkg/hook/formatting"
)

const configFileMode = 0o644

// InitCommand writes a starter configuration file
type InitCommand struct {
	BaseCommand
}

// InitOptions holds command-line options for the init command
type InitOptions struct {
	CommonOptions
	Force bool `short:"f" long:"force" description:"Overwrite an existing configuration file"`
}

func newInitCommand() *InitCommand {
	return &InitCommand{BaseCommand{
		Name:        "init",
		Description: "Create a starter hooksmith configuration.",
		Usage:       "[OPTIONS] [HOOK...]",
		Examples: []Example{
			{Command: "hooksmith init", Description: "Create hooksmith.yaml with a pre-commit hook"},
			{Command: "hooksmith init pre-commit pre-push", Description: "Start with two hooks"},
			{Command: "hooksmith init --force", Description: "Replace an existing configuration"},
		},
		Notes: []string{
			"Each hook starts with a single echo command so the file installs as-is.",
			"Follow with 'hooksmith install' to write the scripts.",
		},
	}}
}

// Help returns the help text for the init command
func (c *InitCommand) Help() string {
	var opts InitOptions
	return c.GenerateHelp(&opts)
}

// Synopsis returns a short description of the init command
func (c *InitCommand) Synopsis() string {
	return "Create a starter configuration file"
}

// Run executes the init command
func (c *InitCommand) Run(args []string) int {
	var opts InitOptions
	names, err := c.ParseArgsWithHelp(&opts, args)
	if err != nil {
		return ExitError
	}
	if names == nil {
		return ExitOK
	}
	if len(names) == 0 {
		names = []string{"pre-commit"}
	}

	session := c.NewSession(&opts.CommonOptions)

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return c.Usagef("hook %q given more than once", name)
		}
		seen[name] = true
		if !hook.IsStandard(name) {
			session.Logger.WithField("hook", name).Warn("not a standard git hook name, git will never run it")
		}
	}

	if _, err := os.Stat(opts.Config); err == nil && !opts.Force {
		return c.Usagef("%s already exists, use --force to overwrite it", opts.Config)
	}

	if opts.DryRun {
		session.Formatter.PrintActions([]hook.Action{{Kind: hook.ActionWrite, Target: opts.Config}})
		return ExitOK
	}

	// #nosec G306 -- configuration is meant to be committed and shared
	if err := os.WriteFile(opts.Config, []byte(config.SampleConfig(names)), configFileMode); err != nil {
		return c.Fail(err)
	}
	session.Formatter.Linef(formatting.Success, "✓ created %s", opts.Config)
	session.Formatter.Line(formatting.Detail, "run 'hooksmith install' to install the hooks")
	return ExitOK
}

// InitCommandFactory creates a new init command instance
func InitCommandFactory() (cli.Command, error) {
	return newInitCommand(), nil
}

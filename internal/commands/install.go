package commands

import (
	"github.com/mitchellh/cli"

	"github.com/blairham/hooksmith/pkg/config"
	"github.com/blairham/hooksmith/pkg/hook"
	"github.com/blairham/hooksmith/pkg/hook/formatting"
)

// InstallCommand handles the install command functionality
type InstallCommand struct {
	BaseCommand
}

// InstallOptions holds command-line options for the install command
type InstallOptions struct {
	CommonOptions
}

func newInstallCommand() *InstallCommand {
	return &InstallCommand{BaseCommand{
		Name:        "install",
		Description: "Write a hook script for every hook in the configuration into the git hooks directory.",
		Examples: append([]Example{
			{Command: "hooksmith install", Description: "Install all configured hooks"},
		}, commonExamples("install")...),
		Notes: []string{
			"Existing scripts with the same name are replaced.",
			"Hooks are written to core.hooksPath when it is set.",
			"Hook names git does not know are installed with a warning.",
		},
	}}
}

// Help returns the help text for the install command
func (c *InstallCommand) Help() string {
	var opts InstallOptions
	return c.GenerateHelp(&opts)
}

// Synopsis returns a short description of the install command
func (c *InstallCommand) Synopsis() string {
	return "Install configured hooks into the git repository"
}

// Run executes the install command
func (c *InstallCommand) Run(args []string) int {
	var opts InstallOptions
	remaining, err := c.ParseArgsWithHelp(&opts, args)
	if err != nil {
		return ExitError
	}
	if remaining == nil {
		return ExitOK
	}
	if len(remaining) > 0 {
		return c.Usagef("unexpected arguments: %v", remaining)
	}

	session := c.NewSession(&opts.CommonOptions)

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return c.Fail(err)
	}
	hooksDir, err := c.HooksDir()
	if err != nil {
		return c.Fail(err)
	}

	results, err := hook.NewInstaller(hooksDir, session.Options).Install(cfg)
	session.Formatter.PrintInstall(results)
	if len(results) == 0 {
		session.Formatter.Line(formatting.Plain, "no hooks configured")
	}
	if err != nil {
		return ExitCodeFor(err)
	}
	return ExitOK
}

// InstallCommandFactory creates a new install command instance
func InstallCommandFactory() (cli.Command, error) {
	return newInstallCommand(), nil
}

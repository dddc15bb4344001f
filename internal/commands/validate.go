package commands

import (
	"github.com/mitchellh/cli"

	"github.com/blairham/hooksmith/pkg/config"
	"github.com/blairham/hooksmith/pkg/hook"
)

// ValidateCommand checks configured hook names against the hooks git knows
type ValidateCommand struct {
	BaseCommand
}

// ValidateOptions holds command-line options for the validate command
type ValidateOptions struct {
	CommonOptions
}

func newValidateCommand() *ValidateCommand {
	return &ValidateCommand{BaseCommand{
		Name:        "validate",
		Description: "Check that every configured hook name is a hook git can run.",
		Examples: []Example{
			{Command: "hooksmith validate", Description: "Validate hooksmith.yaml"},
			{Command: "hooksmith validate -c hooks.yaml", Description: "Validate another file"},
		},
		Notes: []string{
			"Names are compared exactly and case-sensitively.",
			"Every name is checked; the command does not stop at the first unknown one.",
			"Exits with status 3 when any name is unknown.",
		},
	}}
}

// Help returns the help text for the validate command
func (c *ValidateCommand) Help() string {
	var opts ValidateOptions
	return c.GenerateHelp(&opts)
}

// Synopsis returns a short description of the validate command
func (c *ValidateCommand) Synopsis() string {
	return "Validate hook names in the configuration"
}

// Run executes the validate command
func (c *ValidateCommand) Run(args []string) int {
	var opts ValidateOptions
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

	validations := hook.ValidateAll(cfg)
	session.Formatter.PrintValidation(validations)

	if unknown := hook.Unknown(validations); len(unknown) > 0 {
		session.Logger.WithField("hooks", unknown).Debug("unknown hook names")
		return ExitValidation
	}
	return ExitOK
}

// ValidateCommandFactory creates a new validate command instance
func ValidateCommandFactory() (cli.Command, error) {
	return newValidateCommand(), nil
}

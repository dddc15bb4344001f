// Package main provides the hooksmith command-line tool, which installs,
// compares and runs git hooks declared in a YAML file.
package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"

	"github.com/blairham/hooksmith/internal/commands"
)

// Version information set by GoReleaser
var (
	version = "dev"
	commit  = "none"    //nolint:unused // Set by GoReleaser
	date    = "unknown" //nolint:unused // Set by GoReleaser
)

func main() {
	c := cli.NewCLI("hooksmith", version)
	c.Args = os.Args[1:]
	c.HelpFunc = customHelpFunc
	c.Commands = commands.Factories()

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitStatus)
}

func customHelpFunc(cmdFactories map[string]cli.CommandFactory) string {
	return `usage: hooksmith [-h] [--version] <command> [<args>]

Manage git hooks declared in hooksmith.yaml.

` + commands.CommandList(cmdFactories) + `
Global options (every command):
  -c, --config PATH     Path to config file (default: hooksmith.yaml)
  -v, --verbose         Enable verbose output
      --dry-run         Show what would be done without changing anything
      --color MODE      auto, always or never (default: auto)

Run 'hooksmith help <command>' for details on a command.
`
}

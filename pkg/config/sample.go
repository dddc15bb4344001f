package config

import (
	"fmt"
	"strings"
)

// sampleHook holds the starter content written for a hook by `hooksmith init`
type sampleHook struct {
	message  string
	examples []string
}

var sampleHooks = map[string]sampleHook{
	"pre-commit": {
		message: "Running pre-commit checks...",
		examples: []string{
			"# Add your pre-commit commands here",
			"# Examples:",
			"# - go vet ./...",
			"# - gofmt -l .",
		},
	},
	"pre-push": {
		message: "Running pre-push checks...",
		examples: []string{
			"# Add your pre-push commands here",
			"# Examples:",
			"# - go test ./...",
			"# - go build ./...",
		},
	},
	"commit-msg": {
		message: "Validating commit message...",
		examples: []string{
			"# Add your commit message validation here",
			"# Example:",
			`# - ./scripts/validate-commit-msg.sh "$1"`,
		},
	},
	"post-commit": {
		message:  "Post-commit actions...",
		examples: []string{"# Add your post-commit commands here"},
	},
}

// SampleConfig renders a starter configuration with one entry per hook name.
// Each hook gets a single echo command so the result installs as-is.
func SampleConfig(names []string) string {
	var b strings.Builder
	for i, name := range names {
		sample, ok := sampleHooks[name]
		if !ok {
			sample = sampleHook{
				message:  fmt.Sprintf("Running %s hook...", name),
				examples: []string{"# Add your commands here"},
			}
		}

		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s:\n", name)
		fmt.Fprintf(&b, "  %s:\n", commandsKey)
		fmt.Fprintf(&b, "    - echo %q\n", sample.message)
		for _, example := range sample.examples {
			fmt.Fprintf(&b, "    %s\n", example)
		}
	}
	return b.String()
}

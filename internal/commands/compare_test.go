package commands

import (
	"os"
	"strings"
	"testing"
)

func TestCompareCommand_Help(t *testing.T) {
	cmd := newCompareCommand()
	help := cmd.Help()

	for _, expected := range []string{"compare", "--exit-code", "up to date"} {
		if !strings.Contains(help, expected) {
			t.Errorf("help output should contain '%s'", expected)
		}
	}
}

func TestCompareCommand_Synopsis(t *testing.T) {
	cmd := newCompareCommand()

	if synopsis := cmd.Synopsis(); synopsis != "Compare installed hooks with the configuration" {
		t.Errorf("unexpected synopsis '%s'", synopsis)
	}
}

func TestCompareCommand_Run_UpToDate(t *testing.T) {
	installTestHooks(t)

	cmd := newCompareCommand()
	stdout, _ := captureOutput(&cmd.BaseCommand)

	if exitCode := cmd.Run([]string{"--exit-code"}); exitCode != ExitOK {
		t.Fatalf("Expected exit code 0, got %d", exitCode)
	}
	output := stdout.String()
	for _, expected := range []string{"pre-commit: up to date", "commit-msg: up to date"} {
		if !strings.Contains(output, expected) {
			t.Errorf("output should contain '%s', got %q", expected, output)
		}
	}
}

func TestCompareCommand_Run_Drift(t *testing.T) {
	dir := installTestHooks(t)

	// Edit one hook, remove one from the config and add a new one
	if err := os.WriteFile(hookPath(dir, "pre-commit"), []byte("#!/bin/sh\necho edited\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeTestConfig(t, dir, `pre-commit:
  commands:
    - echo lint
    - echo test
pre-push:
  commands:
    - echo push
`)

	cmd := newCompareCommand()
	stdout, _ := captureOutput(&cmd.BaseCommand)

	if exitCode := cmd.Run([]string{}); exitCode != ExitOK {
		t.Errorf("Expected exit code 0 without --exit-code, got %d", exitCode)
	}

	output := stdout.String()
	expectedStrings := []string{
		"pre-commit: installed script differs from configuration",
		"pre-push: configured but not installed",
		"commit-msg: installed but not configured",
		"run 'hooksmith install'",
	}
	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("output should contain '%s', got %q", expected, output)
		}
	}

	cmd = newCompareCommand()
	captureOutput(&cmd.BaseCommand)
	if exitCode := cmd.Run([]string{"--exit-code"}); exitCode != ExitDrift {
		t.Errorf("Expected exit code %d with --exit-code, got %d", ExitDrift, exitCode)
	}
}

func TestCompareCommand_Run_IgnoresForeignHooks(t *testing.T) {
	dir := setupTestRepo(t)
	writeTestConfig(t, dir, "")
	if err := os.WriteFile(hookPath(dir, "pre-push"), []byte(foreignHook), 0o755); err != nil {
		t.Fatal(err)
	}

	cmd := newCompareCommand()
	stdout, _ := captureOutput(&cmd.BaseCommand)

	if exitCode := cmd.Run([]string{"--exit-code"}); exitCode != ExitOK {
		t.Errorf("Expected exit code 0, got %d", exitCode)
	}
	if strings.Contains(stdout.String(), "pre-push") {
		t.Errorf("foreign hooks must not be reported, got %q", stdout.String())
	}
}

func TestCompareCommand_Run_MissingConfig(t *testing.T) {
	setupTestRepo(t)

	cmd := newCompareCommand()
	captureOutput(&cmd.BaseCommand)

	if exitCode := cmd.Run([]string{}); exitCode != ExitConfig {
		t.Errorf("Expected exit code %d, got %d", ExitConfig, exitCode)
	}
}

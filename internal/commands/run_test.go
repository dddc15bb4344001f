package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/blairham/hooksmith/pkg/errors"
	"github.com/blairham/hooksmith/pkg/hook/execution/mocks"
)

const runConfigContent = `pre-commit:
  commands:
    - echo first
    - exit 7
    - echo never
commit-msg:
  commands:
    - echo "message file $1"
post-merge:
  commands:
    - touch merged
`

func TestRunCommand_Help(t *testing.T) {
	cmd := newRunCommand()
	help := cmd.Help()

	if help == "" {
		t.Error("help output should not be empty")
	}

	expectedStrings := []string{
		"run",
		"HOOK... [-- ARGS...]",
		"--interactive",
		"--dry-run",
		"hooksmith run commit-msg",
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(help, expected) {
			t.Errorf("help output should contain '%s'", expected)
		}
	}
}

func TestRunCommand_Synopsis(t *testing.T) {
	cmd := newRunCommand()

	if synopsis := cmd.Synopsis(); synopsis != "Run a configured hook" {
		t.Errorf("unexpected synopsis '%s'", synopsis)
	}
}

func TestRunCommand_Run_MissingHookName(t *testing.T) {
	cmd := newRunCommand()
	_, stderr := captureOutput(&cmd.BaseCommand)

	if exitCode := cmd.Run([]string{}); exitCode != ExitError {
		t.Errorf("Expected exit code %d, got %d", ExitError, exitCode)
	}
	if !strings.Contains(stderr.String(), "missing hook name") {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
}

func TestRunCommand_Run_Success(t *testing.T) {
	dir := setupTestRepo(t)
	writeTestConfig(t, dir, runConfigContent)

	cmd := newRunCommand()
	stdout, _ := captureOutput(&cmd.BaseCommand)

	if exitCode := cmd.Run([]string{"post-merge"}); exitCode != ExitOK {
		t.Fatalf("Expected exit code 0, got %d", exitCode)
	}
	if _, err := os.Stat(filepath.Join(dir, "merged")); err != nil {
		t.Errorf("expected the hook command to run: %v", err)
	}
	if !strings.Contains(stdout.String(), "Passed") {
		t.Errorf("expected a Passed status line, got %q", stdout.String())
	}
}

func TestRunCommand_Run_PropagatesExitCode(t *testing.T) {
	dir := setupTestRepo(t)
	writeTestConfig(t, dir, runConfigContent)

	cmd := newRunCommand()
	stdout, _ := captureOutput(&cmd.BaseCommand)

	if exitCode := cmd.Run([]string{"pre-commit"}); exitCode != 7 {
		t.Fatalf("Expected the command's exit code 7, got %d", exitCode)
	}

	output := stdout.String()
	if !strings.Contains(output, "first") {
		t.Errorf("expected output of the first command, got %q", output)
	}
	if strings.Contains(output, "never") {
		t.Errorf("commands after a failure must not run, got %q", output)
	}
	if !strings.Contains(output, "Failed") || !strings.Contains(output, "- command: exit 7") {
		t.Errorf("expected a failure report, got %q", output)
	}
}

func TestRunCommand_Run_ForwardsArguments(t *testing.T) {
	dir := setupTestRepo(t)
	writeTestConfig(t, dir, runConfigContent)

	cmd := newRunCommand()
	stdout, _ := captureOutput(&cmd.BaseCommand)

	if exitCode := cmd.Run([]string{"commit-msg", "--", ".git/COMMIT_EDITMSG"}); exitCode != ExitOK {
		t.Fatalf("Expected exit code 0, got %d", exitCode)
	}
	if !strings.Contains(stdout.String(), "message file .git/COMMIT_EDITMSG") {
		t.Errorf("expected the argument to reach the command, got %q", stdout.String())
	}
}

func TestRunCommand_Run_MultipleHooks(t *testing.T) {
	dir := setupTestRepo(t)
	writeTestConfig(t, dir, runConfigContent)

	cmd := newRunCommand()
	stdout, _ := captureOutput(&cmd.BaseCommand)

	args := []string{"post-merge", "commit-msg", "post-merge", "--", "COMMIT_EDITMSG"}
	if exitCode := cmd.Run(args); exitCode != ExitOK {
		t.Fatalf("Expected exit code 0, got %d", exitCode)
	}
	if _, err := os.Stat(filepath.Join(dir, "merged")); err != nil {
		t.Errorf("expected post-merge to run: %v", err)
	}

	output := stdout.String()
	if strings.Count(output, "post-merge.") != 1 {
		t.Errorf("a repeated hook name should run once, got %q", output)
	}
	if strings.Index(output, "post-merge.") > strings.Index(output, "commit-msg.") {
		t.Errorf("hooks should run in the order given, got %q", output)
	}
	if !strings.Contains(output, "message file COMMIT_EDITMSG") {
		t.Errorf("expected the arguments to reach every hook, got %q", output)
	}
}

func TestRunCommand_Run_MultipleHooksStopAtFailure(t *testing.T) {
	dir := setupTestRepo(t)
	writeTestConfig(t, dir, runConfigContent)

	cmd := newRunCommand()
	captureOutput(&cmd.BaseCommand)

	if exitCode := cmd.Run([]string{"pre-commit", "post-merge"}); exitCode != 7 {
		t.Fatalf("Expected the command's exit code 7, got %d", exitCode)
	}
	if _, err := os.Stat(filepath.Join(dir, "merged")); !os.IsNotExist(err) {
		t.Error("hooks after a failing hook must not run")
	}
}

func TestRunCommand_Run_ArgumentsNeedDoubleDash(t *testing.T) {
	dir := setupTestRepo(t)
	writeTestConfig(t, dir, runConfigContent)

	cmd := newRunCommand()
	_, stderr := captureOutput(&cmd.BaseCommand)

	// Without -- the file name is taken for a hook name
	if exitCode := cmd.Run([]string{"commit-msg", ".git/COMMIT_EDITMSG"}); exitCode != ExitError {
		t.Errorf("Expected exit code %d, got %d", ExitError, exitCode)
	}
	if !strings.Contains(stderr.String(), ".git/COMMIT_EDITMSG") {
		t.Errorf("expected the unknown name in the error, got %q", stderr.String())
	}
}

func TestRunCommand_Run_InteractiveWithNames(t *testing.T) {
	cmd := newRunCommand()
	_, stderr := captureOutput(&cmd.BaseCommand)

	if exitCode := cmd.Run([]string{"-i", "pre-commit"}); exitCode != ExitError {
		t.Errorf("Expected exit code %d, got %d", ExitError, exitCode)
	}
	if !strings.Contains(stderr.String(), "--interactive does not take hook names") {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
}

func TestSplitHookArgs(t *testing.T) {
	tests := []struct {
		args     []string
		own      string
		hookArgs string
	}{
		{args: []string{"pre-commit"}, own: "pre-commit"},
		{args: []string{"-v", "commit-msg", "--", "msg", "--", "-x"}, own: "-v commit-msg", hookArgs: "msg -- -x"},
		{args: []string{"--", "--dry-run"}, hookArgs: "--dry-run"},
	}

	for _, tt := range tests {
		own, hookArgs := splitHookArgs(tt.args)
		if strings.Join(own, " ") != tt.own || strings.Join(hookArgs, " ") != tt.hookArgs {
			t.Errorf("splitHookArgs(%v) = %v, %v", tt.args, own, hookArgs)
		}
	}
}

func TestUniqueNames(t *testing.T) {
	got := uniqueNames([]string{"pre-push", "pre-commit", "pre-push", "pre-commit", "commit-msg"})
	if strings.Join(got, ",") != "pre-push,pre-commit,commit-msg" {
		t.Errorf("unexpected names %v", got)
	}
}

func TestRunCommand_Run_UnknownHook(t *testing.T) {
	dir := setupTestRepo(t)
	writeTestConfig(t, dir, runConfigContent)

	cmd := newRunCommand()
	_, stderr := captureOutput(&cmd.BaseCommand)

	if exitCode := cmd.Run([]string{"pre-push"}); exitCode != ExitError {
		t.Errorf("Expected exit code %d, got %d", ExitError, exitCode)
	}
	if !strings.Contains(stderr.String(), "pre-push") {
		t.Errorf("expected the hook name in the error, got %q", stderr.String())
	}
}

func TestRunCommand_Run_MissingConfig(t *testing.T) {
	setupTestRepo(t)

	cmd := newRunCommand()
	captureOutput(&cmd.BaseCommand)

	if exitCode := cmd.Run([]string{"pre-commit"}); exitCode != ExitConfig {
		t.Errorf("Expected exit code %d, got %d", ExitConfig, exitCode)
	}
}

func TestRunCommand_Run_DryRun(t *testing.T) {
	dir := setupTestRepo(t)
	writeTestConfig(t, dir, runConfigContent)

	cmd := newRunCommand()
	stdout, _ := captureOutput(&cmd.BaseCommand)

	if exitCode := cmd.Run([]string{"--dry-run", "post-merge"}); exitCode != ExitOK {
		t.Fatalf("Expected exit code 0, got %d", exitCode)
	}
	if _, err := os.Stat(filepath.Join(dir, "merged")); !os.IsNotExist(err) {
		t.Error("dry run must not execute commands")
	}
	if !strings.Contains(stdout.String(), "[dry-run] execute touch merged") {
		t.Errorf("expected the skipped command in output, got %q", stdout.String())
	}
}

func TestRunCommand_Run_Interactive(t *testing.T) {
	dir := setupTestRepo(t)
	writeTestConfig(t, dir, runConfigContent)

	ctrl := gomock.NewController(t)
	selector := mocks.NewMockSelector(ctrl)
	selector.EXPECT().
		Select(gomock.Any(), []string{"pre-commit", "commit-msg", "post-merge"}).
		Return("post-merge", nil)

	cmd := newRunCommand()
	cmd.Selector = selector
	captureOutput(&cmd.BaseCommand)

	if exitCode := cmd.Run([]string{"--interactive"}); exitCode != ExitOK {
		t.Fatalf("Expected exit code 0, got %d", exitCode)
	}
	if _, err := os.Stat(filepath.Join(dir, "merged")); err != nil {
		t.Errorf("expected the selected hook to run: %v", err)
	}
}

func TestRunCommand_Run_InteractiveCancelled(t *testing.T) {
	dir := setupTestRepo(t)
	writeTestConfig(t, dir, runConfigContent)

	ctrl := gomock.NewController(t)
	selector := mocks.NewMockSelector(ctrl)
	selector.EXPECT().Select(gomock.Any(), gomock.Any()).Return("", errors.ErrCancelled)

	cmd := newRunCommand()
	cmd.Selector = selector
	stdout, _ := captureOutput(&cmd.BaseCommand)

	if exitCode := cmd.Run([]string{"-i"}); exitCode != ExitCancelled {
		t.Errorf("Expected exit code %d, got %d", ExitCancelled, exitCode)
	}
	if !strings.Contains(stdout.String(), "selection cancelled") {
		t.Errorf("unexpected output %q", stdout.String())
	}
}

func TestRunCommand_Run_InterruptedCommand(t *testing.T) {
	dir := setupTestRepo(t)
	// the status a shell reports for a command stopped by Ctrl-C
	writeTestConfig(t, dir, "pre-commit:\n  commands:\n    - exit 130\n")

	cmd := newRunCommand()
	captureOutput(&cmd.BaseCommand)

	exitCode := cmd.Run([]string{"pre-commit"})
	if exitCode != 130 {
		t.Errorf("Expected the command's exit code 130, got %d", exitCode)
	}
	if exitCode == ExitCancelled {
		t.Error("an interrupted command must not look like a cancelled selection")
	}
}

func TestRunCommand_Run_InteractiveNoHooks(t *testing.T) {
	dir := setupTestRepo(t)
	writeTestConfig(t, dir, "")

	ctrl := gomock.NewController(t)
	cmd := newRunCommand()
	cmd.Selector = mocks.NewMockSelector(ctrl)
	captureOutput(&cmd.BaseCommand)

	if exitCode := cmd.Run([]string{"--interactive"}); exitCode != ExitError {
		t.Errorf("Expected exit code %d, got %d", ExitError, exitCode)
	}
}

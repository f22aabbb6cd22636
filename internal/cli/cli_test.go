package cli

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/x-color/kelvin/internal/task"
	"github.com/x-color/kelvin/internal/testutil"
)

// resetFlags restores every command flag to its default so values do not
// leak between in-process executions.
func resetFlags() {
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	})
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		})
		for _, sub := range c.Commands() {
			sub.Flags().VisitAll(func(f *pflag.Flag) {
				f.Changed = false
				_ = f.Value.Set(f.DefValue)
			})
		}
	}
}

// runCLI executes the root command in-process and captures stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	rootCmd.SetArgs(args)
	execErr := rootCmd.Execute()

	w.Close()
	os.Stdout = old

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	return string(out), execErr
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runCLI(t, args...)
	if err != nil {
		t.Fatalf("kelvin %s failed: %v", strings.Join(args, " "), err)
	}
	return out
}

func TestCommandFlow(t *testing.T) {
	testutil.SetupTestEnv(t)
	t.Setenv("NO_COLOR", "1")

	out := mustRun(t, "add", "Buy milk")
	if !strings.Contains(out, "Added task 1 [Active]: Buy milk") {
		t.Errorf("add output = %q", out)
	}

	out = mustRun(t, "add", "Write report", "--desc", "quarterly numbers", "-d", "2099-01-01", "--due", "2099-02-01")
	if !strings.Contains(out, "Added task 2 [Frozen]: Write report") {
		t.Errorf("add frozen output = %q", out)
	}

	out = mustRun(t, "show", "2")
	if !strings.Contains(out, "Frozen") || !strings.Contains(out, "2099-01-01") {
		t.Errorf("show output = %q", out)
	}
	if !strings.Contains(out, "quarterly numbers") {
		t.Errorf("show output missing description: %q", out)
	}

	out = mustRun(t, "warm", "2")
	if !strings.Contains(out, "Warmed task 2 [Active]: Write report") {
		t.Errorf("warm output = %q", out)
	}

	out = mustRun(t, "burn", "2")
	if !strings.Contains(out, "Burned task 2 [Done]: Write report") {
		t.Errorf("burn output = %q", out)
	}

	out = mustRun(t, "cool", "2")
	if !strings.Contains(out, "Cooled task 2 [Active]: Write report") {
		t.Errorf("cool output = %q", out)
	}

	out = mustRun(t, "freeze", "2")
	until := task.Today().AddDays(7)
	if !strings.Contains(out, "Froze task 2 [Frozen] until "+until.String()) {
		t.Errorf("freeze output = %q, want until %s", out, until)
	}

	out = mustRun(t, "edit", "1", "-t", "Buy oat milk")
	if !strings.Contains(out, "Updated task 1 [Active]: Buy oat milk") {
		t.Errorf("edit output = %q", out)
	}

	// Default view hides the refrozen task.
	out = mustRun(t, "list")
	if !strings.Contains(out, "Buy oat milk") {
		t.Errorf("list output missing active task: %q", out)
	}
	if strings.Contains(out, "Write report") {
		t.Errorf("list output shows frozen task: %q", out)
	}
}

func TestCommandErrors(t *testing.T) {
	testutil.SetupTestEnv(t)
	t.Setenv("NO_COLOR", "1")

	mustRun(t, "add", "Lone task")

	if _, err := runCLI(t, "show", "99"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("show 99 error = %v, want ErrTaskNotFound", err)
	}

	if _, err := runCLI(t, "cool", "1"); !errors.Is(err, task.ErrInvalidTransition) {
		t.Errorf("cool on active task error = %v, want ErrInvalidTransition", err)
	}

	if _, err := runCLI(t, "warm", "0"); err == nil {
		t.Error("Expected error for non-positive id")
	}
}

// A sweep promotion reached through a command must be written back: after
// listing, the file holds the Thawing state with the thaw date retained.
// A second list, with nothing left to promote, must not rewrite the file.
func TestSweepPersistsThroughList(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	t.Setenv("NO_COLOR", "1")

	mustRun(t, "add", "Defrost freezer", "-d", "2020-01-01")

	out := mustRun(t, "list")
	if !strings.Contains(out, "Defrost freezer") {
		t.Errorf("list output missing promoted task: %q", out)
	}

	data, err := os.ReadFile(env.TasksPath())
	if err != nil {
		t.Fatalf("Failed to read task file: %v", err)
	}
	if !strings.Contains(string(data), `"state": "thawing"`) {
		t.Errorf("persisted state not thawing: %s", data)
	}
	if !strings.Contains(string(data), `"thaw_date": "2020-01-01"`) {
		t.Errorf("persisted thaw date not retained: %s", data)
	}

	before, err := os.Stat(env.TasksPath())
	if err != nil {
		t.Fatalf("Failed to stat task file: %v", err)
	}

	mustRun(t, "list")

	after, err := os.Stat(env.TasksPath())
	if err != nil {
		t.Fatalf("Failed to stat task file: %v", err)
	}
	if !after.ModTime().Equal(before.ModTime()) || after.Size() != before.Size() {
		t.Error("list rewrote the task file although the sweep changed nothing")
	}
}

// Show is read-bearing but still persists sweep promotions.
func TestSweepPersistsThroughShow(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	t.Setenv("NO_COLOR", "1")

	mustRun(t, "add", "Water plants", "-d", "2020-01-01")
	out := mustRun(t, "show", "1")
	if !strings.Contains(out, "Thawing") {
		t.Errorf("show output = %q, want Thawing", out)
	}

	data, err := os.ReadFile(env.TasksPath())
	if err != nil {
		t.Fatalf("Failed to read task file: %v", err)
	}
	if !strings.Contains(string(data), `"state": "thawing"`) {
		t.Errorf("persisted state not thawing: %s", data)
	}
}

func TestVerboseLogsPaths(t *testing.T) {
	testutil.SetupTestEnv(t)
	t.Setenv("NO_COLOR", "1")

	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stderr = w

	_, execErr := runCLI(t, "--verbose", "list")

	w.Close()
	os.Stderr = oldStderr

	diag, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("Failed to read diagnostics: %v", err)
	}
	if execErr != nil {
		t.Fatalf("list failed: %v", execErr)
	}
	if !strings.Contains(string(diag), "using config file") {
		t.Errorf("diagnostics missing config path: %q", diag)
	}
	if !strings.Contains(string(diag), "using task file") {
		t.Errorf("diagnostics missing task file path: %q", diag)
	}
}

func TestConfigInit(t *testing.T) {
	testutil.SetupTestEnv(t)
	t.Setenv("NO_COLOR", "1")

	out := mustRun(t, "config", "init")
	if !strings.Contains(out, "Wrote default configuration") {
		t.Errorf("config init output = %q", out)
	}

	if _, err := runCLI(t, "config", "init"); err == nil {
		t.Error("Expected error when config file already exists")
	}

	if _, err := runCLI(t, "config", "init", "--force"); err != nil {
		t.Errorf("config init --force failed: %v", err)
	}
}

func TestListEmpty(t *testing.T) {
	testutil.SetupTestEnv(t)
	t.Setenv("NO_COLOR", "1")

	out := mustRun(t, "list")
	if !strings.Contains(out, "No tasks found.") {
		t.Errorf("list output = %q", out)
	}
}

// ABOUTME: Integration tests for the ftracker CLI.
// ABOUTME: Builds the binary and drives the catalog, routine, goal, and menu workflow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(t.TempDir(), "ftracker")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/ftracker")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}

	// Use temp database and config
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	env := append(os.Environ(), "XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"))

	run := func(stdin string, args ...string) (string, error) {
		fullArgs := append([]string{"--db", dbPath}, args...)
		cmd := exec.Command(binary, fullArgs...)
		cmd.Env = env
		cmd.Stdin = strings.NewReader(stdin)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	output, err := run("", "exercise", "add", "1", "Bench Press", "Upper")
	if err != nil {
		t.Fatalf("Failed to add exercise: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Exercise added successfully!") {
		t.Errorf("Expected success message, got: %s", output)
	}

	if output, err := run("", "exercise", "add", "2", "Squat", "Lower"); err != nil {
		t.Fatalf("Failed to add exercise: %v\n%s", err, output)
	}

	output, err = run("", "exercise", "list", "--category", "Up")
	if err != nil {
		t.Fatalf("Failed to list: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Bench Press") || strings.Contains(output, "Squat") {
		t.Errorf("Expected only Bench Press, got: %s", output)
	}

	// Attaching to a missing routine fails and exits non-zero.
	if output, err := run("", "routine", "attach", "5", "1", "Bench Press"); err == nil {
		t.Errorf("Expected attach to missing routine to fail, got: %s", output)
	}

	if output, err := run("", "routine", "create", "5", "Upper body 1"); err != nil {
		t.Fatalf("Failed to create routine: %v\n%s", err, output)
	}
	if output, err := run("", "routine", "attach", "5", "1", "Bench Press"); err != nil {
		t.Fatalf("Failed to attach: %v\n%s", err, output)
	}

	// The interactive menu sees the same data and quits on option 11.
	output, err = run("5\nUpper\n10\n1\n12\n11\n")
	if err != nil {
		t.Fatalf("Menu run failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Upper body 1") {
		t.Errorf("Expected routine in menu output, got: %s", output)
	}
	if !strings.Contains(output, "Congratulations! You have met your goal to lose 10KG!") {
		t.Errorf("Expected goal met message, got: %s", output)
	}
}

// ABOUTME: Integration tests for iron CLI.
// ABOUTME: Tests full workflow from CLI commands.
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
	ironBinary := filepath.Join(projectRoot, "iron")

	buildCmd := exec.Command("go", "build", "-o", ironBinary, "./cmd/iron")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(ironBinary)

	// Isolate config and data in temp dirs
	tmpDir := t.TempDir()
	env := append(os.Environ(),
		"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		"XDG_DATA_HOME="+filepath.Join(tmpDir, "data"),
	)

	run := func(args ...string) (string, error) {
		cmd := exec.Command(ironBinary, args...)
		cmd.Env = env
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Start a workout
	output, err := run("start")
	if err != nil {
		t.Fatalf("Failed to start: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Workout started") {
		t.Errorf("Expected 'Workout started' in output, got: %s", output)
	}

	// Starting again should fail
	if output, err = run("start"); err == nil {
		t.Errorf("Expected second start to fail, got: %s", output)
	}

	// Add exercises and complete sets
	output, err = run("exercise", "add", "Supino Reto (Barra)", "--sets", "2")
	if err != nil {
		t.Fatalf("Failed to add exercise: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Supino Reto (Barra)") || !strings.Contains(output, "Peito") {
		t.Errorf("Expected exercise with catalog group in output, got: %s", output)
	}

	output, err = run("set", "done", "40", "10")
	if err != nil {
		t.Fatalf("Failed to complete set: %v\n%s", err, output)
	}
	if output, err = run("set", "done", "40", "8"); err != nil {
		t.Fatalf("Failed to complete second set: %v\n%s", err, output)
	}

	// Cardio exercise
	if output, err = run("exercise", "add", "Esteira", "--sets", "1"); err != nil {
		t.Fatalf("Failed to add cardio: %v\n%s", err, output)
	}
	if output, err = run("set", "done", "5", "30"); err != nil {
		t.Fatalf("Failed to complete cardio set: %v\n%s", err, output)
	}

	// Inspect the active session
	output, err = run("active")
	if err != nil {
		t.Fatalf("Failed to show active: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Esteira") {
		t.Errorf("Expected 'Esteira' in active output, got: %s", output)
	}

	// Finish: 2 strength sets (30) + cardio (25+60) + baseline 50 = 165 XP
	output, err = run("finish")
	if err != nil {
		t.Fatalf("Failed to finish: %v\n%s", err, output)
	}
	if !strings.Contains(output, "+165 XP") {
		t.Errorf("Expected '+165 XP' in finish output, got: %s", output)
	}
	if !strings.Contains(output, "streak 1") {
		t.Errorf("Expected 'streak 1' in finish output, got: %s", output)
	}

	// History shows the workout
	output, err = run("history")
	if err != nil {
		t.Fatalf("Failed to list history: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Supino Reto (Barra)") {
		t.Errorf("Expected exercise in history, got: %s", output)
	}

	// Streak and status
	output, err = run("streak")
	if err != nil {
		t.Fatalf("Failed to show streak: %v\n%s", err, output)
	}
	if !strings.Contains(output, "1 day streak") {
		t.Errorf("Expected '1 day streak', got: %s", output)
	}

	output, err = run("status")
	if err != nil {
		t.Fatalf("Failed to show status: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Level 1") {
		t.Errorf("Expected 'Level 1' in status, got: %s", output)
	}

	// Rest day toggle
	output, err = run("rest", "2026-01-15")
	if err != nil {
		t.Fatalf("Failed to toggle rest: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Rest day marked") {
		t.Errorf("Expected 'Rest day marked', got: %s", output)
	}
	if output, err = run("rest", "2026-01-15"); err != nil || !strings.Contains(output, "unmarked") {
		t.Errorf("Expected unmark on second toggle, got: %s (%v)", output, err)
	}

	// Analytics
	output, err = run("stats", "exercise", "Supino Reto (Barra)", "--range", "7d")
	if err != nil {
		t.Fatalf("Failed to show exercise stats: %v\n%s", err, output)
	}
	if !strings.Contains(output, "PR 40.0 kg") {
		t.Errorf("Expected 'PR 40.0 kg' in stats, got: %s", output)
	}

	output, err = run("stats", "muscles", "--range", "7d")
	if err != nil {
		t.Fatalf("Failed to show muscle stats: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Peito") {
		t.Errorf("Expected 'Peito' in muscle stats, got: %s", output)
	}

	output, err = run("stats", "cardio", "--range", "7d")
	if err != nil {
		t.Fatalf("Failed to show cardio stats: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Esteira") {
		t.Errorf("Expected 'Esteira' in cardio stats, got: %s", output)
	}

	// Templates
	output, err = run("template", "add", "Push A", "Supino Reto (Barra):3:8-12")
	if err != nil {
		t.Fatalf("Failed to add template: %v\n%s", err, output)
	}
	output, err = run("template", "list")
	if err != nil {
		t.Fatalf("Failed to list templates: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Push A") {
		t.Errorf("Expected 'Push A' in template list, got: %s", output)
	}

	// Start from the template by name resolution is not supported on
	// start; show it instead and delete it.
	if output, err = run("template", "show", "Push A"); err != nil {
		t.Fatalf("Failed to show template: %v\n%s", err, output)
	}
	if output, err = run("template", "delete", "Push A"); err != nil {
		t.Fatalf("Failed to delete template: %v\n%s", err, output)
	}

	// Export
	output, err = run("export", "json")
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	if !strings.Contains(output, "\"tool\": \"iron-tracker\"") {
		t.Errorf("Expected export envelope, got: %s", output)
	}

	// Dev tooling
	output, err = run("dev", "seed", "14")
	if err != nil {
		t.Fatalf("Failed to seed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Seeded 14 days") {
		t.Errorf("Expected seed confirmation, got: %s", output)
	}

	output, err = run("dev", "reset", "--all")
	if err != nil {
		t.Fatalf("Failed to reset: %v\n%s", err, output)
	}
	output, err = run("history")
	if err != nil {
		t.Fatalf("Failed to list history after reset: %v\n%s", err, output)
	}
	if !strings.Contains(output, "No workouts recorded") {
		t.Errorf("Expected empty history after reset, got: %s", output)
	}
}

func TestCancelWorkflow(t *testing.T) {
	projectRoot, _ := filepath.Abs("..")
	ironBinary := filepath.Join(projectRoot, "iron-cancel-test")

	buildCmd := exec.Command("go", "build", "-o", ironBinary, "./cmd/iron")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(ironBinary)

	tmpDir := t.TempDir()
	env := append(os.Environ(),
		"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		"XDG_DATA_HOME="+filepath.Join(tmpDir, "data"),
	)
	run := func(args ...string) (string, error) {
		cmd := exec.Command(ironBinary, args...)
		cmd.Env = env
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	if output, err := run("start"); err != nil {
		t.Fatalf("Failed to start: %v\n%s", err, output)
	}
	if output, err := run("exercise", "add", "Agachamento Livre"); err != nil {
		t.Fatalf("Failed to add exercise: %v\n%s", err, output)
	}

	// Finishing with nothing completed is rejected
	if output, err := run("finish"); err == nil {
		t.Errorf("Expected finish to fail with no completed sets, got: %s", output)
	}

	output, err := run("cancel")
	if err != nil {
		t.Fatalf("Failed to cancel: %v\n%s", err, output)
	}
	if !strings.Contains(output, "discarded") {
		t.Errorf("Expected 'discarded' in cancel output, got: %s", output)
	}

	// No history, no streak
	output, err = run("streak")
	if err != nil {
		t.Fatalf("Failed to show streak: %v\n%s", err, output)
	}
	if !strings.Contains(output, "0 day streak") {
		t.Errorf("Expected '0 day streak', got: %s", output)
	}
}

//go:build integration
// +build integration

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mattsolo1/grove-advent/pkg/history"
	"github.com/mattsolo1/grove-advent/pkg/input"
	"github.com/mattsolo1/grove-advent/pkg/models"
	"github.com/mattsolo1/grove-advent/pkg/runner"
)

func TestIntegration(t *testing.T) {
	// Skip if not running integration tests
	if os.Getenv("RUN_INTEGRATION_TESTS") == "" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=1 to run.")
	}

	tmpDir := t.TempDir()
	ctx := context.Background()

	settings := models.DefaultSettings()
	settings.InputsDir = filepath.Join(tmpDir, "inputs")
	settings.DataDir = filepath.Join(tmpDir, "data")
	settings.Record = true

	store, err := history.NewStore(settings.DataDir)
	if err != nil {
		t.Fatalf("Failed to open history: %v", err)
	}
	defer store.Close()

	r, err := runner.New(settings, input.NewLoader(settings.InputsDir), store, nil)
	if err != nil {
		t.Fatalf("Failed to create runner: %v", err)
	}

	t.Run("SolveAllDays", func(t *testing.T) {
		for _, day := range r.Days() {
			if _, err := r.Solve(ctx, day); err != nil {
				t.Errorf("Day %d: %v", day, err)
			}
		}

		results, err := store.List(ctx, 0, 0)
		if err != nil {
			t.Fatalf("Failed to list history: %v", err)
		}
		if len(results) != len(r.Days()) {
			t.Errorf("Expected %d recorded results, got %d", len(r.Days()), len(results))
		}
	})

	t.Run("PinAndVerify", func(t *testing.T) {
		transcript := "$ cd /\n$ ls\ndir a\n10 b.txt\n$ cd a\n$ ls\n20 c.txt\n"
		if err := os.MkdirAll(settings.InputsDir, 0755); err != nil {
			t.Fatal(err)
		}
		path := filepath.Join(settings.InputsDir, input.FileName(7))
		if err := os.WriteFile(path, []byte(transcript), 0644); err != nil {
			t.Fatal(err)
		}

		pinned, result, err := r.Pin(ctx, 7)
		if err != nil {
			t.Fatalf("Failed to pin: %v", err)
		}
		if pinned != path {
			t.Errorf("Expected pin at %s, got %s", path, pinned)
		}
		if result.PartOne != "50" || result.PartTwo != "20" {
			t.Errorf("Unexpected answers %s/%s", result.PartOne, result.PartTwo)
		}

		v, err := r.Verify(ctx, 7)
		if err != nil {
			t.Fatalf("Failed to verify: %v", err)
		}
		if !v.Checked || !v.OK() {
			t.Errorf("Expected pinned answers to verify, got %+v", v)
		}
	})
}

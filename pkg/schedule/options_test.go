package schedule

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	content := `
layout:
  headerSearchStart: 14
  daysPerWeek: 5
  even:
    lesson: N
exclusions: ["магистр"]
workers: 2
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write options: %v", err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}

	if opts.Layout.HeaderSearchStart != 14 || opts.Layout.DaysPerWeek != 5 {
		t.Errorf("Expected overridden start/days, got %d/%d", opts.Layout.HeaderSearchStart, opts.Layout.DaysPerWeek)
	}
	if opts.Layout.Even.Lesson != "N" {
		t.Errorf("Expected even lesson column N, got %q", opts.Layout.Even.Lesson)
	}
	// untouched fields keep their defaults
	if opts.Layout.Even.Teacher != "I" || opts.Layout.Odd.LessonNumber != "B" || opts.Layout.ScanLimit != 500 {
		t.Errorf("Expected defaults to survive, got %+v", opts.Layout)
	}
	if len(opts.Exclusions) != 1 || opts.Exclusions[0] != "магистр" {
		t.Errorf("Expected exclusions [магистр], got %v", opts.Exclusions)
	}
	if opts.Workers != 2 {
		t.Errorf("Expected 2 workers, got %d", opts.Workers)
	}
}

func TestLoadOptionsErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadOptions(filepath.Join(dir, "missing.yaml")); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("layout:\n  daysPerWeek: 0\n"), 0644); err != nil {
		t.Fatalf("Failed to write options: %v", err)
	}
	if _, err := LoadOptions(bad); err == nil {
		t.Errorf("Expected validation error for daysPerWeek 0")
	}
}

func TestDefaultOptions(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Errorf("DefaultOptions().Validate() failed: %v", err)
	}
}

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/boolean-maybe/todo/task"
)

// SampleTasks returns a fresh set of tasks covering every field kind.
func SampleTasks() []task.Task {
	return []task.Task{
		{Title: "Groceries", Descr: "milk and eggs", Date: task.MustParseDate("2024-08-20 12:00"), Category: "home"},
		{Title: "Report", Descr: "quarterly numbers", Date: task.MustParseDate("2024-08-01"), Category: "work", IsDone: true},
		{Title: "Dentist", Descr: "checkup", Date: task.MustParseDate("2024-08-20 12:00"), Category: "health"},
	}
}

// WriteTaskFile writes content to name inside dir and returns the full path
func WriteTaskFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	//nolint:gosec // G306: 0644 is appropriate for test fixtures
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

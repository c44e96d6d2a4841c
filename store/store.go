package store

import (
	"context"
	"fmt"

	"github.com/boolean-maybe/todo/list"
)

// Store is the interface for task storage engines.
// Implementations must be safe for concurrent use.
type Store interface {
	// Load reads the whole task list.
	// A store that was never written loads as an empty list.
	Load(ctx context.Context) (list.List, error)

	// Save replaces the stored task list with l.
	Save(ctx context.Context, l list.List) error
}

// SchemaError reports a task file that does not match the task schema.
type SchemaError struct {
	File    string
	Path    string // JSON pointer style location inside the document, e.g. "/0/date"
	Message string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: invalid task file: %s", e.File, e.Message)
	}
	return fmt.Sprintf("%s: invalid task file at %s: %s", e.File, e.Path, e.Message)
}

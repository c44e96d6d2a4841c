// Package list holds the ordered task collection and the operations the CLI
// performs on it. Tasks are looked up by title; when several tasks share a
// title the first one in insertion order is used.
package list

import (
	"errors"
	"fmt"

	"github.com/boolean-maybe/todo/query"
	"github.com/boolean-maybe/todo/task"
)

var (
	// ErrTaskAlreadyExists is returned by Add when an identical task is present.
	ErrTaskAlreadyExists = errors.New("task already exists")
	// ErrTaskAlreadyCompleted is returned by Done for a finished task.
	ErrTaskAlreadyCompleted = errors.New("task is already completed")
	// ErrTaskNotChanged is returned by Update when the replacement equals the current task.
	ErrTaskNotChanged = errors.New("task not changed")
	// ErrDataNotChanged is returned when an interactive edit left every field empty.
	ErrDataNotChanged = errors.New("no data changed")
)

// NotFoundError reports a title with no matching task.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %q not found", e.Title)
}

// List is an ordered task collection. Insertion order is preserved.
type List []task.Task

// Len returns the number of tasks.
func (l List) Len() int {
	return len(l)
}

func (l List) index(title string) int {
	for i := range l {
		if l[i].Title == title {
			return i
		}
	}
	return -1
}

// Get returns the first task with the given title.
func (l List) Get(title string) (*task.Task, error) {
	i := l.index(title)
	if i < 0 {
		return nil, &NotFoundError{Title: title}
	}
	t := l[i]
	return &t, nil
}

// Contains reports whether a task equal to t is present.
func (l List) Contains(t task.Task) bool {
	for _, existing := range l {
		if existing.Equal(t) {
			return true
		}
	}
	return false
}

// Add appends t unless an identical task already exists.
func (l *List) Add(t task.Task) (*task.Task, error) {
	if l.Contains(t) {
		return nil, ErrTaskAlreadyExists
	}
	*l = append(*l, t)
	added := (*l)[len(*l)-1]
	return &added, nil
}

// Done marks the first task with the given title as completed.
func (l List) Done(title string) (*task.Task, error) {
	i := l.index(title)
	if i < 0 {
		return nil, &NotFoundError{Title: title}
	}
	if l[i].IsDone {
		return nil, ErrTaskAlreadyCompleted
	}
	l[i].IsDone = true
	done := l[i]
	return &done, nil
}

// Update replaces the first task with the given title.
func (l List) Update(title string, t task.Task) (*task.Task, error) {
	i := l.index(title)
	if i < 0 {
		return nil, &NotFoundError{Title: title}
	}
	if l[i].Equal(t) {
		return nil, ErrTaskNotChanged
	}
	l[i] = t
	updated := l[i]
	return &updated, nil
}

// Delete removes the first task with the given title and returns it.
func (l *List) Delete(title string) (task.Task, error) {
	i := l.index(title)
	if i < 0 {
		return task.Task{}, &NotFoundError{Title: title}
	}
	removed := (*l)[i]
	*l = append((*l)[:i:i], (*l)[i+1:]...)
	return removed, nil
}

// Select runs a query over the list and returns the matching tasks as a new list.
func (l List) Select(src string) (List, error) {
	tasks, err := query.Select(src, l)
	if err != nil {
		return nil, err
	}
	return List(tasks), nil
}

// Clone returns a copy that shares no storage with l.
func (l List) Clone() List {
	out := make(List, len(l))
	copy(out, l)
	return out
}

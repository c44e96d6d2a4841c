// Package prompt asks the user for a query or for new task field values.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/boolean-maybe/todo/list"
	"github.com/boolean-maybe/todo/task"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("aborted")

// Prompter collects interactive input.
type Prompter interface {
	// Query asks for a query string.
	Query() (string, error)

	// TaskFields asks for a new value for every task field, showing the
	// current one. An empty answer means keep the current value.
	TaskFields(current task.Task) (map[task.FieldName]string, error)
}

// HuhPrompter implements Prompter with huh forms.
type HuhPrompter struct {
	in         io.Reader
	out        io.Writer
	accessible bool
}

// NewHuhPrompter creates a prompter reading from in and writing to out.
// Accessible mode uses plain line prompts, suitable when in is not a terminal.
func NewHuhPrompter(in io.Reader, out io.Writer, accessible bool) *HuhPrompter {
	return &HuhPrompter{in: in, out: out, accessible: accessible}
}

func (p *HuhPrompter) run(form *huh.Form) error {
	form = form.
		WithTheme(huh.ThemeCharm()).
		WithAccessible(p.accessible).
		WithInput(p.in).
		WithOutput(p.out)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return fmt.Errorf("form error: %w", err)
	}
	return nil
}

// Query asks for a query string.
func (p *HuhPrompter) Query() (string, error) {
	var q string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Query").
				Description("SELECT * [WHERE field = 'value' AND ...]").
				Placeholder("SELECT * WHERE is_done = false").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("query is empty")
					}
					return nil
				}).
				Value(&q),
		),
	)
	if err := p.run(form); err != nil {
		return "", err
	}
	return strings.TrimSpace(q), nil
}

// TaskFields asks for each field in field order. Invalid answers are
// rejected by the form until corrected.
func (p *HuhPrompter) TaskFields(current task.Task) (map[task.FieldName]string, error) {
	entries := current.Entries()
	values := make([]string, len(entries))
	fields := make([]huh.Field, len(entries))

	for i, entry := range entries {
		name := entry.Field
		fields[i] = huh.NewInput().
			Title(string(name)).
			Description(fmt.Sprintf("current: %s (leave empty to keep)", entry.Value)).
			Validate(func(s string) error {
				if s == "" {
					return nil
				}
				return task.ValidateField(name, s)
			}).
			Value(&values[i])
	}

	if err := p.run(huh.NewForm(huh.NewGroup(fields...))); err != nil {
		return nil, err
	}

	answers := make(map[task.FieldName]string, len(entries))
	for i, entry := range entries {
		answers[entry.Field] = values[i]
	}
	return answers, nil
}

// ApplyEdits returns current with every non-empty answer applied.
// If every answer is empty the result is list.ErrDataNotChanged.
func ApplyEdits(current task.Task, answers map[task.FieldName]string) (task.Task, error) {
	updated := current
	changed := false
	for _, name := range task.FieldNames() {
		raw := answers[name]
		if raw == "" {
			continue
		}
		if err := updated.SetField(name, raw); err != nil {
			return current, err
		}
		changed = true
	}
	if !changed {
		return current, list.ErrDataNotChanged
	}
	return updated, nil
}

// EditTask prompts for new field values and applies them to current.
func EditTask(p Prompter, current task.Task) (task.Task, error) {
	answers, err := p.TaskFields(current)
	if err != nil {
		return current, err
	}
	return ApplyEdits(current, answers)
}

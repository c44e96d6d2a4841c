package cli

import (
	"errors"

	"github.com/boolean-maybe/todo/internal/prompt"
	"github.com/boolean-maybe/todo/list"
	"github.com/boolean-maybe/todo/query"
	"github.com/boolean-maybe/todo/task"
)

// isDomainError reports whether err describes a rejected request rather
// than a failure of the program. Domain errors are printed and the command
// still exits successfully.
func isDomainError(err error) bool {
	var (
		notFound *list.NotFoundError
		queryErr *query.Error
		fieldErr *task.FieldError
	)
	switch {
	case errors.Is(err, list.ErrTaskAlreadyExists),
		errors.Is(err, list.ErrTaskAlreadyCompleted),
		errors.Is(err, list.ErrTaskNotChanged),
		errors.Is(err, list.ErrDataNotChanged),
		errors.Is(err, prompt.ErrAborted):
		return true
	case errors.As(err, &notFound), errors.As(err, &queryErr), errors.As(err, &fieldErr):
		return true
	}
	return false
}

// report prints domain errors and passes anything else through.
func (e *Env) report(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, prompt.ErrAborted) {
		e.Printer.Notice("Cancelled, nothing changed")
		return nil
	}
	if isDomainError(err) {
		e.Printer.Error(err)
		return nil
	}
	return err
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/boolean-maybe/todo/internal/prompt"
	"github.com/boolean-maybe/todo/list"
	"github.com/boolean-maybe/todo/task"
)

func newAddCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title> <descr> <date> <category>",
		Short: "Add a new task",
		Long: `Add a new task. The date accepts any of:
  ` + strings.Join(task.DateLayouts, "\n  "),
		Args: cobra.MatchAll(cobra.ExactArgs(4), func(cmd *cobra.Command, args []string) error {
			if _, err := task.ParseDate(args[2]); err != nil {
				return fmt.Errorf("invalid value %q for <date>: %w", args[2], err)
			}
			return nil
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			newTask := task.Task{
				Title:    args[0],
				Descr:    args[1],
				Date:     task.MustParseDate(args[2]),
				Category: args[3],
			}
			return env.mutate(cmd.Context(), "add", func(l *list.List) (string, task.Task, error) {
				added, err := l.Add(newTask)
				if err != nil {
					return "", task.Task{}, err
				}
				return "Task added", *added, nil
			})
		},
	}
}

func newDoneCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "done <title>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.mutate(cmd.Context(), "done", func(l *list.List) (string, task.Task, error) {
				done, err := l.Done(args[0])
				if err != nil {
					return "", task.Task{}, err
				}
				return "Task completed", *done, nil
			})
		},
	}
}

func newUpdateCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "update <title>",
		Short: "Edit the fields of a task interactively",
		Long:  `Prompt for every field of the task. Leave an answer empty to keep the current value.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := args[0]
			return env.mutate(cmd.Context(), "update", func(l *list.List) (string, task.Task, error) {
				current, err := l.Get(title)
				if err != nil {
					return "", task.Task{}, err
				}
				edited, err := prompt.EditTask(env.Prompter, *current)
				if err != nil {
					return "", task.Task{}, err
				}
				updated, err := l.Update(title, edited)
				if err != nil {
					return "", task.Task{}, err
				}
				return "Task updated", *updated, nil
			})
		},
	}
}

func newDeleteCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <title>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.mutate(cmd.Context(), "delete", func(l *list.List) (string, task.Task, error) {
				removed, err := l.Delete(args[0])
				if err != nil {
					return "", task.Task{}, err
				}
				return "Task deleted", removed, nil
			})
		},
	}
}

func newSelectCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "select [query]",
		Short: "Filter tasks with a query",
		Long: `Filter tasks with a query of the form

  SELECT * [WHERE condition [AND condition ...]]

Conditions compare a field with a literal using =, <, <=, > or >=, or
match a text field with LIKE 'substring'. Without arguments the query is
read interactively.`,
		Example: `  todo select "SELECT * WHERE category = 'work' AND is_done = false"
  todo select "SELECT * WHERE date < \"2024-09-01\""
  todo select "SELECT * WHERE title LIKE 'report'"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := strings.TrimSpace(strings.Join(args, " "))
			if src == "" {
				q, err := env.Prompter.Query()
				if err != nil {
					return env.report(err)
				}
				src = q
			}
			return env.show(cmd, src)
		},
	}
}

func newListCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.show(cmd, "SELECT *")
		},
	}
}

// show runs a query and prints the matching tasks. Nothing is saved.
func (e *Env) show(cmd *cobra.Command, src string) error {
	l, err := e.load(cmd.Context())
	if err != nil {
		return err
	}
	selected, err := l.Select(src)
	if err != nil {
		return e.report(err)
	}
	return e.Printer.Tasks(selected)
}

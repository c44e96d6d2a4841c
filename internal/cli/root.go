// Package cli wires the todo subcommands to the task store.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/boolean-maybe/todo/config"
	"github.com/boolean-maybe/todo/internal/bootstrap"
	"github.com/boolean-maybe/todo/internal/prompt"
	"github.com/boolean-maybe/todo/list"
	"github.com/boolean-maybe/todo/store"
	"github.com/boolean-maybe/todo/task"
	"github.com/boolean-maybe/todo/util/sysinfo"
	"github.com/boolean-maybe/todo/view"
)

// Env holds the dependencies a command runs against.
// Nil fields are filled in from configuration before the command runs.
type Env struct {
	Store    store.Store
	Printer  *view.Printer
	Prompter prompt.Prompter

	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

func (e *Env) fillStreams() {
	if e.In == nil {
		e.In = os.Stdin
	}
	if e.Out == nil {
		e.Out = os.Stdout
	}
	if e.ErrOut == nil {
		e.ErrOut = os.Stderr
	}
}

// NewRootCommand builds the todo command tree.
func NewRootCommand(env *Env) *cobra.Command {
	env.fillStreams()

	var raw bool
	root := &cobra.Command{
		Use:           "todo",
		Short:         "Flat-file to-do list with a SQL-like query language",
		Long:          `Manage tasks stored in a JSON or YAML file and filter them with SELECT * WHERE queries.`,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.init(cmd, raw)
		},
	}
	root.SetIn(env.In)
	root.SetOut(env.Out)
	root.SetErr(env.ErrOut)
	root.SetVersionTemplate(fmt.Sprintf("todo version {{.Version}}\ncommit: %s\nbuilt: %s\n", config.GitCommit, config.BuildDate))

	flags := root.PersistentFlags()
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.StringP("file", "f", "", "task file (.json, .yaml or .yml)")
	flags.String("style", "", "output style: auto, dark, light, notty, ascii")
	flags.BoolVar(&raw, "raw", false, "print markdown without rendering it")

	root.AddCommand(
		newAddCommand(env),
		newDoneCommand(env),
		newUpdateCommand(env),
		newDeleteCommand(env),
		newSelectCommand(env),
		newListCommand(env),
		newEnvCommand(env),
		newConfigCommand(env),
	)
	return root
}

// init bootstraps config, logging and the store unless they were injected.
func (e *Env) init(cmd *cobra.Command, raw bool) error {
	if e.Store != nil && e.Printer != nil && e.Prompter != nil {
		return nil
	}

	if err := config.InitPaths(); err != nil {
		return err
	}
	result, err := bootstrap.Bootstrap(cmd.Flags())
	if err != nil {
		return err
	}

	if e.Store == nil {
		e.Store = result.Store
	}
	if e.Printer == nil {
		e.Printer = view.NewPrinter(e.Out, e.ErrOut, view.Options{
			Style:      sysinfo.NewSystemInfo().ResolveStyle(config.GetStyle()),
			WordWrap:   config.GetWordWrap(),
			DateLayout: config.GetDateFormat(),
			Raw:        raw,
		})
	}
	if e.Prompter == nil {
		e.Prompter = prompt.NewHuhPrompter(e.In, e.ErrOut, !isTerminal(e.In))
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// load reads the task list from the store.
func (e *Env) load(ctx context.Context) (list.List, error) {
	l, err := e.Store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return l, nil
}

// mutate loads the list, applies fn and saves the result only when fn succeeds.
// fn returns the heading and task to print once the list is saved.
// Domain errors from fn are reported and do not fail the command.
func (e *Env) mutate(ctx context.Context, command string, fn func(l *list.List) (string, task.Task, error)) error {
	l, err := e.load(ctx)
	if err != nil {
		return err
	}
	heading, changed, err := fn(&l)
	if err != nil {
		return e.report(err)
	}
	if err := e.Store.Save(ctx, l); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	slog.Debug("command persisted", "command", command, "num_tasks", l.Len())
	return e.Printer.Task(heading, changed)
}

// Execute runs the todo command line and returns the process exit code.
func Execute(args []string) int {
	env := &Env{}
	root := NewRootCommand(env)
	root.SetArgs(args)

	if err := root.ExecuteContext(context.Background()); err != nil {
		if env.Printer != nil {
			env.Printer.Error(err)
		} else {
			_, _ = fmt.Fprintln(env.ErrOut, "Error:", err)
		}
		return 1
	}
	return 0
}

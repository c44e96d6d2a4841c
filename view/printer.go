package view

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/boolean-maybe/todo/task"
)

var (
	errorLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	noticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Options controls how results are printed.
type Options struct {
	Style      string // glamour style name, "auto" picks one from the terminal
	WordWrap   int
	DateLayout string
	Raw        bool // print markdown without rendering it
}

// Printer writes command results and errors.
type Printer struct {
	out        io.Writer
	errOut     io.Writer
	md         *glamour.TermRenderer // nil prints raw markdown
	dateLayout string
}

// NewPrinter creates a Printer. If the glamour renderer cannot be built the
// printer falls back to raw markdown.
func NewPrinter(out, errOut io.Writer, opts Options) *Printer {
	p := &Printer{
		out:        out,
		errOut:     errOut,
		dateLayout: opts.DateLayout,
	}
	if p.dateLayout == "" {
		p.dateLayout = task.DisplayLayout
	}
	if opts.Raw {
		return p
	}

	md, err := newMarkdownRenderer(opts.Style, opts.WordWrap)
	if err != nil {
		slog.Warn("failed to create markdown renderer, printing plain markdown", "style", opts.Style, "error", err)
		return p
	}
	p.md = md
	return p
}

func newMarkdownRenderer(style string, wordWrap int) (*glamour.TermRenderer, error) {
	styleOpt := glamour.WithAutoStyle()
	if style != "" && style != "auto" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	opts := []glamour.TermRendererOption{styleOpt}
	if wordWrap > 0 {
		opts = append(opts, glamour.WithWordWrap(wordWrap))
	}
	return glamour.NewTermRenderer(opts...)
}

func (p *Printer) render(markdown string) error {
	if p.md != nil {
		rendered, err := p.md.Render(markdown)
		if err == nil {
			_, err = io.WriteString(p.out, rendered)
			return err
		}
		slog.Debug("markdown render failed, printing plain", "error", err)
	}
	_, err := io.WriteString(p.out, markdown)
	return err
}

// Tasks prints a result table preceded by the task count.
func (p *Printer) Tasks(tasks []task.Task) error {
	return p.render(fmt.Sprintf("**%s**\n\n%s", Summary(len(tasks)), TaskTable(tasks, p.dateLayout)))
}

// Task prints a single task under heading.
func (p *Printer) Task(heading string, t task.Task) error {
	return p.render(TaskDetail(heading, t, p.dateLayout))
}

// Markdown prints arbitrary markdown.
func (p *Printer) Markdown(markdown string) error {
	return p.render(markdown)
}

// Notice prints a short status line.
func (p *Printer) Notice(msg string) {
	_, _ = fmt.Fprintln(p.out, noticeStyle.Render(msg))
}

// Error prints err with a highlighted "Error:" label.
func (p *Printer) Error(err error) {
	_, _ = fmt.Fprintf(p.errOut, "%s %v\n", errorLabelStyle.Render("Error:"), err)
}

package view

import (
	"fmt"
	"strings"

	"github.com/boolean-maybe/todo/task"
)

// TaskTable renders tasks as a markdown table with one column per task field.
// Dates are formatted with dateLayout.
func TaskTable(tasks []task.Task, dateLayout string) string {
	if len(tasks) == 0 {
		return "_no tasks_\n"
	}

	names := task.FieldNames()

	var b strings.Builder
	b.WriteString("|")
	for _, name := range names {
		fmt.Fprintf(&b, " %s |", name)
	}
	b.WriteString("\n|")
	for range names {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for _, t := range tasks {
		b.WriteString("|")
		for _, entry := range t.Entries() {
			fmt.Fprintf(&b, " %s |", escapeCell(entry.Value.Format(dateLayout)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// TaskDetail renders a single task as a heading followed by a field list.
func TaskDetail(heading string, t task.Task, dateLayout string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", heading)
	for _, entry := range t.Entries() {
		fmt.Fprintf(&b, "- **%s**: %s\n", entry.Field, escapeInline(entry.Value.Format(dateLayout)))
	}
	return b.String()
}

// Summary is the line printed above a result table.
func Summary(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}

var cellReplacer = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

func escapeCell(s string) string {
	if s == "" {
		return " "
	}
	return cellReplacer.Replace(s)
}

var inlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "*", `\*`, "_", `\_`)

func escapeInline(s string) string {
	return inlineReplacer.Replace(s)
}

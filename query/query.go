// Package query implements the task query language:
//
//	SELECT <columns> [WHERE <condition>]
//
// where <condition> is one or more comparisons or LIKE tests joined by AND,
// optionally parenthesized. Columns are accepted and ignored; a query always
// yields whole tasks.
//
// Example queries:
//   - select *
//   - select * where title = 'Groceries'
//   - select * where category like "home" and is_done = false
//   - select * where date >= "2024-08-01" and date < "2024-09-01 00:00"
package query

import (
	"log/slog"

	"github.com/boolean-maybe/todo/task"
)

// Query is a compiled query: a conjunction of predicates.
type Query struct {
	Statement  *Statement
	Predicates []Predicate
}

// Prepare parses and compiles src.
func Prepare(src string) (*Query, error) {
	stmt, err := Parse(src)
	if err != nil {
		slog.Debug("query parse failed", "query", src, "error", err, "cause", errorCause(err))
		return nil, err
	}

	preds, err := Compile(stmt.Where)
	if err != nil {
		slog.Debug("query compile failed", "query", src, "error", err)
		return nil, err
	}

	slog.Debug("compiled query", "query", src, "num_predicates", len(preds))
	return &Query{Statement: stmt, Predicates: preds}, nil
}

// MatchAll reports whether the query has no WHERE clause.
func (q *Query) MatchAll() bool {
	return len(q.Predicates) == 0
}

// Filter returns the tasks matching the query, in input order.
func (q *Query) Filter(tasks []task.Task) []task.Task {
	return Evaluate(q.Predicates, tasks)
}

// Select runs src against tasks.
func Select(src string, tasks []task.Task) ([]task.Task, error) {
	q, err := Prepare(src)
	if err != nil {
		return nil, err
	}
	return q.Filter(tasks), nil
}

func errorCause(err error) string {
	if qe, ok := err.(*Error); ok && qe.cause != nil {
		return qe.cause.Error()
	}
	return ""
}

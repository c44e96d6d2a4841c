package query

import (
	"strings"

	"github.com/boolean-maybe/todo/task"
)

// Matches reports whether t satisfies the predicate.
func (p Predicate) Matches(t task.Task) bool {
	field := p.Field.Get(t)

	switch p.Op {
	case PredContains:
		return strings.Contains(field.Str(), p.Value.Str())
	case PredEqual:
		return field.Equal(p.Value)
	}

	// ordering is only compiled for timestamps
	cmp := field.Date().Compare(p.Value.Date())
	switch p.Op {
	case PredLess:
		return cmp < 0
	case PredLessEq:
		return cmp <= 0
	case PredGreater:
		return cmp > 0
	case PredGreaterEq:
		return cmp >= 0
	default:
		return false
	}
}

// MatchesAll reports whether t satisfies every predicate. An empty list matches.
func MatchesAll(preds []Predicate, t task.Task) bool {
	for _, p := range preds {
		if !p.Matches(t) {
			return false
		}
	}
	return true
}

// Evaluate returns the tasks that satisfy every predicate, in input order.
// The input slice is not modified.
func Evaluate(preds []Predicate, tasks []task.Task) []task.Task {
	result := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if MatchesAll(preds, t) {
			result = append(result, t)
		}
	}
	return result
}

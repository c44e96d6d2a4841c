package query

import "fmt"

// ErrorKind is the closed set of query failure classes.
type ErrorKind int

const (
	// NotValidQuery: not a single SELECT statement with a flat boolean condition.
	NotValidQuery ErrorKind = iota
	// NonExistentField: a comparison references a field outside the task schema.
	NonExistentField
	// UnhandledOperator: a combinator other than AND, or an unsupported operator.
	UnhandledOperator
	// Format: operand shape or type does not fit the field.
	Format
)

func (k ErrorKind) String() string {
	switch k {
	case NotValidQuery:
		return "NotValidQuery"
	case NonExistentField:
		return "NonExistentField"
	case UnhandledOperator:
		return "UnhandledOperator"
	case Format:
		return "Format"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is returned by Parse, Compile and Select.
// Detail carries the field name, operator or expected shape depending on Kind.
type Error struct {
	Kind   ErrorKind
	Detail string
	cause  error
}

// Sentinels for errors.Is matching on kind alone.
var (
	ErrNotValidQuery     = &Error{Kind: NotValidQuery}
	ErrNonExistentField  = &Error{Kind: NonExistentField}
	ErrUnhandledOperator = &Error{Kind: UnhandledOperator}
	ErrFormat            = &Error{Kind: Format}
)

func (e *Error) Error() string {
	switch e.Kind {
	case NotValidQuery:
		return "expected query format: SELECT * [WHERE where_condition]"
	case NonExistentField:
		return fmt.Sprintf("field %q does not exist", e.Detail)
	case UnhandledOperator:
		return fmt.Sprintf("operator %s is not supported", e.Detail)
	case Format:
		return fmt.Sprintf("expected format: %s", e.Detail)
	default:
		return e.Kind.String()
	}
}

// Unwrap exposes the lexer or parser failure behind a NotValidQuery, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches another *Error of the same kind. An empty Detail on the target
// matches any detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Detail == "" || t.Detail == e.Detail)
}

func notValidQuery(cause error) *Error {
	return &Error{Kind: NotValidQuery, cause: cause}
}

func nonExistentField(name string) *Error {
	return &Error{Kind: NonExistentField, Detail: name}
}

func unhandledOperator(op Operator) *Error {
	return &Error{Kind: UnhandledOperator, Detail: string(op)}
}

func formatError(shape string) *Error {
	return &Error{Kind: Format, Detail: shape}
}

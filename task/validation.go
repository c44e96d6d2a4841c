package task

import (
	"fmt"
	"strings"
)

// ErrorCode classifies a field validation failure.
type ErrorCode string

const (
	ErrCodeUnknownField ErrorCode = "unknown_field"
	ErrCodeInvalidDate  ErrorCode = "invalid_date"
	ErrCodeInvalidBool  ErrorCode = "invalid_bool"
)

// FieldError reports a raw value that could not be assigned to a field.
type FieldError struct {
	Field   FieldName
	Value   string
	Code    ErrorCode
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// SetField parses raw according to the field's kind and assigns it.
// String fields are taken verbatim.
func (t *Task) SetField(name FieldName, raw string) error {
	spec, ok := LookupField(string(name))
	if !ok {
		return &FieldError{
			Field:   name,
			Value:   raw,
			Code:    ErrCodeUnknownField,
			Message: fmt.Sprintf("unknown field: %s", name),
		}
	}

	switch spec.Kind {
	case KindTimestamp:
		d, err := ParseDate(raw)
		if err != nil {
			return &FieldError{
				Field:   name,
				Value:   raw,
				Code:    ErrCodeInvalidDate,
				Message: fmt.Sprintf("expected format: %s", strings.Join(DateLayouts, " | ")),
			}
		}
		t.Date = d
	case KindBoolean:
		b, ok := ParseBool(raw)
		if !ok {
			return &FieldError{
				Field:   name,
				Value:   raw,
				Code:    ErrCodeInvalidBool,
				Message: "expected true or false",
			}
		}
		t.IsDone = b
	default:
		switch name {
		case FieldTitle:
			t.Title = raw
		case FieldDescr:
			t.Descr = raw
		case FieldCategory:
			t.Category = raw
		}
	}
	return nil
}

// ValidateField checks raw against the field's kind without modifying any task.
func ValidateField(name FieldName, raw string) error {
	var scratch Task
	return scratch.SetField(name, raw)
}

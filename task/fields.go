package task

import (
	"strconv"
	"strings"
)

// FieldName names one of the task fields.
type FieldName string

const (
	FieldTitle    FieldName = "title"
	FieldDescr    FieldName = "descr"
	FieldDate     FieldName = "date"
	FieldCategory FieldName = "category"
	FieldIsDone   FieldName = "is_done"
)

// Kind is the value type of a field.
type Kind int

const (
	KindString Kind = iota
	KindTimestamp
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindTimestamp:
		return "timestamp"
	case KindBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// FieldSpec describes a queryable task field.
type FieldSpec struct {
	Name FieldName
	Kind Kind
	Get  func(Task) Value
}

// IsText reports whether the field holds free text (and so supports LIKE).
func (f FieldSpec) IsText() bool {
	return f.Kind == KindString
}

var fieldSpecs = []FieldSpec{
	{Name: FieldTitle, Kind: KindString, Get: func(t Task) Value { return StringValue(t.Title) }},
	{Name: FieldDescr, Kind: KindString, Get: func(t Task) Value { return StringValue(t.Descr) }},
	{Name: FieldDate, Kind: KindTimestamp, Get: func(t Task) Value { return DateValue(t.Date) }},
	{Name: FieldCategory, Kind: KindString, Get: func(t Task) Value { return StringValue(t.Category) }},
	{Name: FieldIsDone, Kind: KindBoolean, Get: func(t Task) Value { return BoolValue(t.IsDone) }},
}

var fieldIndex = func() map[FieldName]int {
	idx := make(map[FieldName]int, len(fieldSpecs))
	for i, f := range fieldSpecs {
		idx[f.Name] = i
	}
	return idx
}()

// Fields returns the field specs in declared order.
func Fields() []FieldSpec {
	out := make([]FieldSpec, len(fieldSpecs))
	copy(out, fieldSpecs)
	return out
}

// FieldNames returns the field names in declared order.
func FieldNames() []FieldName {
	names := make([]FieldName, len(fieldSpecs))
	for i, f := range fieldSpecs {
		names[i] = f.Name
	}
	return names
}

// LookupField finds a field by its exact name.
func LookupField(name string) (FieldSpec, bool) {
	i, ok := fieldIndex[FieldName(name)]
	if !ok {
		return FieldSpec{}, false
	}
	return fieldSpecs[i], true
}

// Value is a typed field value. Exactly one of the payloads is meaningful,
// selected by Kind.
type Value struct {
	kind Kind
	str  string
	date Date
	b    bool
}

func StringValue(s string) Value { return Value{kind: KindString, str: s} }

func DateValue(d Date) Value { return Value{kind: KindTimestamp, date: d} }

func BoolValue(b bool) Value { return Value{kind: KindBoolean, b: b} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) Str() string { return v.str }

func (v Value) Date() Date { return v.date }

func (v Value) Bool() bool { return v.b }

// Equal compares two values of the same kind. Values of different kinds are never equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindTimestamp:
		return v.date.Equal(o.date)
	case KindBoolean:
		return v.b == o.b
	}
	return false
}

// String renders the value as plain text. Dates use DisplayLayout.
func (v Value) String() string {
	return v.Format(DisplayLayout)
}

// Format renders the value, formatting dates with layout.
func (v Value) Format(layout string) string {
	switch v.kind {
	case KindTimestamp:
		return v.date.Format(layout)
	case KindBoolean:
		return strconv.FormatBool(v.b)
	default:
		return v.str
	}
}

// ParseBool accepts exactly "true" or "false".
func ParseBool(s string) (bool, bool) {
	switch strings.TrimSpace(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

package task

// Task is a single to-do entry.
// The field order here is the order fields are shown, prompted and queried.
type Task struct {
	Title    string `json:"title" yaml:"title"`
	Descr    string `json:"descr" yaml:"descr"`
	Date     Date   `json:"date" yaml:"date"`
	Category string `json:"category" yaml:"category"`
	IsDone   bool   `json:"is_done" yaml:"is_done"`
}

// Equal reports whether t and o agree on every field.
func (t Task) Equal(o Task) bool {
	return t.Title == o.Title &&
		t.Descr == o.Descr &&
		t.Date.Equal(o.Date) &&
		t.Category == o.Category &&
		t.IsDone == o.IsDone
}

// Entry is a field name paired with the field's value on one task.
type Entry struct {
	Field FieldName
	Value Value
}

// Entries returns the task's values in field order.
func (t Task) Entries() []Entry {
	specs := Fields()
	entries := make([]Entry, len(specs))
	for i, spec := range specs {
		entries[i] = Entry{Field: spec.Name, Value: spec.Get(t)}
	}
	return entries
}

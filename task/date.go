package task

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StorageLayout is the layout dates are persisted with.
const StorageLayout = "2006-01-02T15:04:05"

// DisplayLayout is the default layout used when printing a date.
const DisplayLayout = "2006-01-02 15:04"

// DateLayouts lists the accepted textual date layouts in priority order.
// The first layout that parses wins.
var DateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	StorageLayout,
	"2006/01/02 15:04:05",
}

// Epoch is the date of a task that never had one set.
var Epoch = time.Unix(0, 0).UTC()

// Date is a wall-clock timestamp without a time zone.
// The zero Date is the Unix epoch.
type Date struct {
	t   time.Time
	set bool
}

// NewDate wraps t, dropping its location and sub-second part.
func NewDate(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), set: true}
}

// ParseDate parses s using the first matching layout from DateLayouts.
func ParseDate(s string) (Date, error) {
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t), nil
		}
	}
	return Date{}, fmt.Errorf("expected format: %s", strings.Join(DateLayouts, " | "))
}

// MustParseDate is like ParseDate but panics on error. Intended for fixtures.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns the underlying time in UTC.
func (d Date) Time() time.Time {
	if !d.set {
		return Epoch
	}
	return d.t
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	return d.Time().Compare(o.Time())
}

// Equal reports whether d and o are the same instant.
func (d Date) Equal(o Date) bool {
	return d.Compare(o) == 0
}

// Format formats the date with the given layout.
func (d Date) Format(layout string) string {
	return d.Time().Format(layout)
}

// String implements fmt.Stringer using DisplayLayout.
func (d Date) String() string {
	return d.Format(DisplayLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(StorageLayout))
}

// UnmarshalJSON implements json.Unmarshaler. Any accepted layout is read.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.Format(StorageLayout), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

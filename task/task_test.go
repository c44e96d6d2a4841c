package task

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "date and time with seconds", input: "2024-08-20 12:00:30", want: time.Date(2024, 8, 20, 12, 0, 30, 0, time.UTC)},
		{name: "date and time minutes only", input: "2024-08-20 12:00", want: time.Date(2024, 8, 20, 12, 0, 0, 0, time.UTC)},
		{name: "date only", input: "2024-08-20", want: time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC)},
		{name: "T separator", input: "1970-01-01T00:00:00", want: Epoch},
		{name: "slash separated", input: "2024/08/20 12:00:00", want: time.Date(2024, 8, 20, 12, 0, 0, 0, time.UTC)},
		{name: "garbage", input: "false", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "slash without seconds", input: "2024/08/20 12:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Time().Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got.Time(), tt.want)
			}
		})
	}
}

func TestZeroDateIsEpoch(t *testing.T) {
	var d Date
	if !d.Time().Equal(Epoch) {
		t.Errorf("zero Date = %v, want %v", d.Time(), Epoch)
	}
	if !d.Equal(MustParseDate("1970-01-01 00:00")) {
		t.Error("zero Date should equal the parsed epoch")
	}
	if d.String() != "1970-01-01 00:00" {
		t.Errorf("String() = %q", d.String())
	}
}

func TestYearOneDate(t *testing.T) {
	d := MustParseDate("0001-01-01 00:00")

	if d.Equal(Date{}) {
		t.Fatal("0001-01-01 must not equal the zero date")
	}
	if d.Compare(Date{}) >= 0 {
		t.Errorf("0001-01-01 should sort before the epoch, Compare = %d", d.Compare(Date{}))
	}
	if d.Time().Year() != 1 {
		t.Errorf("Time() = %v, want year 1", d.Time())
	}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if string(data) != `"0001-01-01T00:00:00"` {
		t.Errorf("json = %s", data)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("json round trip = %v, want %v", back, d)
	}

	out, err := yaml.Marshal(struct {
		Date Date `yaml:"date"`
	}{Date: d})
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	if !strings.Contains(string(out), "0001-01-01T00:00:00") {
		t.Errorf("yaml = %s", out)
	}
}

func TestDateSerialization(t *testing.T) {
	d := MustParseDate("2024-08-20 12:00")

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if string(data) != `"2024-08-20T12:00:00"` {
		t.Errorf("json = %s", data)
	}

	var back Date
	if err := json.Unmarshal([]byte(`"2024-08-20 12:00"`), &back); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("json round trip = %v, want %v", back, d)
	}

	if err := json.Unmarshal([]byte(`42`), &back); err == nil {
		t.Error("expected error for non-string json date")
	}

	var holder struct {
		Date Date `yaml:"date"`
	}
	if err := yaml.Unmarshal([]byte("date: 2024-08-20T12:00:00\n"), &holder); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if !holder.Date.Equal(d) {
		t.Errorf("yaml date = %v, want %v", holder.Date, d)
	}
}

func TestTaskEqual(t *testing.T) {
	a := Task{Title: "a", Descr: "d", Date: MustParseDate("1970-01-01"), Category: "c"}
	b := Task{Title: "a", Descr: "d", Category: "c"}
	if !a.Equal(b) {
		t.Error("explicit epoch date should equal zero date")
	}
	b.IsDone = true
	if a.Equal(b) {
		t.Error("tasks differing in is_done should not be equal")
	}
}

func TestLookupField(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		isText bool
		ok     bool
	}{
		{name: "title", kind: KindString, isText: true, ok: true},
		{name: "descr", kind: KindString, isText: true, ok: true},
		{name: "date", kind: KindTimestamp, ok: true},
		{name: "category", kind: KindString, isText: true, ok: true},
		{name: "is_done", kind: KindBoolean, ok: true},
		{name: "name"},
		{name: "Title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, ok := LookupField(tt.name)
			if ok != tt.ok {
				t.Fatalf("LookupField(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			}
			if !ok {
				return
			}
			if spec.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", spec.Kind, tt.kind)
			}
			if spec.IsText() != tt.isText {
				t.Errorf("IsText() = %v, want %v", spec.IsText(), tt.isText)
			}
		})
	}
}

func TestFieldOrder(t *testing.T) {
	want := []FieldName{FieldTitle, FieldDescr, FieldDate, FieldCategory, FieldIsDone}
	got := FieldNames()
	if len(got) != len(want) {
		t.Fatalf("FieldNames() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FieldNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	entries := Task{Title: "x", IsDone: true}.Entries()
	if entries[0].Value.String() != "x" || entries[4].Value.String() != "true" {
		t.Errorf("unexpected entries: %+v", entries)
	}
	if entries[2].Value.String() != "1970-01-01 00:00" {
		t.Errorf("date entry = %q", entries[2].Value.String())
	}
}

func TestSetField(t *testing.T) {
	tests := []struct {
		name     string
		field    FieldName
		raw      string
		wantCode ErrorCode
		check    func(Task) bool
	}{
		{name: "title", field: FieldTitle, raw: "new", check: func(t Task) bool { return t.Title == "new" }},
		{name: "descr", field: FieldDescr, raw: "d", check: func(t Task) bool { return t.Descr == "d" }},
		{name: "category", field: FieldCategory, raw: "c", check: func(t Task) bool { return t.Category == "c" }},
		{name: "date", field: FieldDate, raw: "2024-08-20 12:00", check: func(t Task) bool { return t.Date.Equal(MustParseDate("2024-08-20 12:00")) }},
		{name: "is_done", field: FieldIsDone, raw: "true", check: func(t Task) bool { return t.IsDone }},
		{name: "bad date", field: FieldDate, raw: "tomorrow", wantCode: ErrCodeInvalidDate},
		{name: "bad bool", field: FieldIsDone, raw: "yes", wantCode: ErrCodeInvalidBool},
		{name: "unknown", field: "name", raw: "x", wantCode: ErrCodeUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var task Task
			err := task.SetField(tt.field, tt.raw)
			if tt.wantCode != "" {
				var fe *FieldError
				if !errors.As(err, &fe) {
					t.Fatalf("expected *FieldError, got %v", err)
				}
				if fe.Code != tt.wantCode {
					t.Errorf("code = %q, want %q", fe.Code, tt.wantCode)
				}
				if !task.Equal(Task{}) {
					t.Errorf("task modified on error: %+v", task)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.check(task) {
				t.Errorf("field not set: %+v", task)
			}
		})
	}
}

func TestValidateFieldMessage(t *testing.T) {
	err := ValidateField(FieldDate, "nope")
	if err == nil || !strings.Contains(err.Error(), "2006-01-02 15:04") {
		t.Errorf("unexpected error: %v", err)
	}
}

package list

import (
	"errors"
	"testing"

	"github.com/boolean-maybe/todo/query"
	"github.com/boolean-maybe/todo/task"
)

func templateTask() task.Task {
	return task.Task{
		Title:    "Test Task",
		Descr:    "This is a test task",
		Category: "TestCategory",
		Date:     task.MustParseDate("2024-08-20 12:00"),
	}
}

func TestNotExistTask(t *testing.T) {
	var l List
	var nf *NotFoundError

	if _, err := l.Done("title"); !errors.As(err, &nf) || nf.Title != "title" {
		t.Errorf("Done: expected NotFoundError for %q, got %v", "title", err)
	}
	if _, err := l.Update("title", task.Task{}); !errors.As(err, &nf) {
		t.Errorf("Update: expected NotFoundError, got %v", err)
	}
	if _, err := l.Delete("do"); !errors.As(err, &nf) || nf.Title != "do" {
		t.Errorf("Delete: expected NotFoundError for %q, got %v", "do", err)
	}
	if _, err := l.Get("x"); !errors.As(err, &nf) {
		t.Errorf("Get: expected NotFoundError, got %v", err)
	}
}

func TestAdd(t *testing.T) {
	var l List

	added, err := l.Add(templateTask())
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !added.Equal(templateTask()) {
		t.Errorf("Add returned %+v", added)
	}
	if l.Len() != 1 || !l[0].Equal(templateTask()) {
		t.Fatalf("unexpected list after add: %+v", l)
	}

	if _, err := l.Add(templateTask()); !errors.Is(err, ErrTaskAlreadyExists) {
		t.Errorf("expected ErrTaskAlreadyExists, got %v", err)
	}
	if l.Len() != 1 {
		t.Errorf("duplicate was added: %d tasks", l.Len())
	}

	// same title, different description is allowed
	other := templateTask()
	other.Descr = "another"
	if _, err := l.Add(other); err != nil {
		t.Fatalf("Add with same title failed: %v", err)
	}
	if l.Len() != 2 {
		t.Errorf("expected 2 tasks, got %d", l.Len())
	}
}

func TestDone(t *testing.T) {
	l := List{task.Task{}}

	done, err := l.Done("")
	if err != nil {
		t.Fatalf("Done failed: %v", err)
	}
	if !done.IsDone || !l[0].IsDone {
		t.Errorf("task not marked done: %+v", l[0])
	}

	if _, err := l.Done(""); !errors.Is(err, ErrTaskAlreadyCompleted) {
		t.Errorf("expected ErrTaskAlreadyCompleted, got %v", err)
	}
}

func TestDoneFirstMatchWins(t *testing.T) {
	first := templateTask()
	second := templateTask()
	second.Descr = "second"
	l := List{first, second}

	if _, err := l.Done(first.Title); err != nil {
		t.Fatalf("Done failed: %v", err)
	}
	if !l[0].IsDone || l[1].IsDone {
		t.Errorf("expected only the first match to be done: %+v", l)
	}
}

func TestUpdate(t *testing.T) {
	l := List{task.Task{}}

	if _, err := l.Update("", task.Task{}); !errors.Is(err, ErrTaskNotChanged) {
		t.Errorf("expected ErrTaskNotChanged, got %v", err)
	}

	changed := task.Task{IsDone: true}
	updated, err := l.Update("", changed)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !updated.Equal(changed) || !l[0].Equal(changed) {
		t.Errorf("task not updated: %+v", l[0])
	}
}

func TestDelete(t *testing.T) {
	a := templateTask()
	b := templateTask()
	b.Title = "Other"
	l := List{a, b}

	removed, err := l.Delete("Test Task")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !removed.Equal(a) {
		t.Errorf("removed %+v, want %+v", removed, a)
	}
	if l.Len() != 1 || l[0].Title != "Other" {
		t.Errorf("unexpected list after delete: %+v", l)
	}

	if _, err := l.Delete("Test Task"); err == nil {
		t.Error("expected error deleting a missing task")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	l := List{templateTask()}
	got, err := l.Get("Test Task")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	got.Title = "changed"
	if l[0].Title != "Test Task" {
		t.Error("Get must not expose list storage")
	}
}

func TestSelect(t *testing.T) {
	l := List{task.Task{}, task.Task{}}

	all, err := l.Select("select *")
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if all.Len() != 2 {
		t.Errorf("expected 2 tasks, got %d", all.Len())
	}

	none, err := l.Select("select * where title like 'tit'")
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if none.Len() != 0 {
		t.Errorf("expected no tasks, got %d", none.Len())
	}

	if _, err := l.Select("select * where name = ''"); !errors.Is(err, &query.Error{Kind: query.NonExistentField, Detail: "name"}) {
		t.Errorf("expected NonExistentField(name), got %v", err)
	}
}

func TestClone(t *testing.T) {
	l := List{templateTask()}
	c := l.Clone()
	c[0].Title = "x"
	if l[0].Title != "Test Task" {
		t.Error("Clone shares storage")
	}
}

package task

import (
	"errors"
	"testing"
)

func titles(t *testing.T, s Store) []string {
	t.Helper()
	tasks, err := s.Tasks()
	if err != nil {
		t.Fatalf("tasks: %v", err)
	}
	out := make([]string, 0, len(tasks))
	for _, tk := range tasks {
		out = append(out, tk.Title)
	}
	return out
}

func TestListAdd(t *testing.T) {
	l := NewList()
	got, err := l.Add("Buy milk")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if got.ID != 1 || got.Title != "Buy milk" || got.Done {
		t.Fatalf("unexpected task %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Fatal("created_at not set")
	}
	if _, err := l.Add("Walk dog"); err != nil {
		t.Fatalf("add: %v", err)
	}
	tasks, _ := l.Tasks()
	if len(tasks) != 2 || tasks[1].ID != 2 || tasks[1].Done {
		t.Fatalf("unexpected list %+v", tasks)
	}
}

func TestListAddRejects(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  error
	}{
		{"duplicate", "Buy milk", ErrDuplicateTitle},
		{"empty", "", ErrEmptyTitle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewList(Task{ID: 1, Title: "Buy milk"})
			if _, err := l.Add(tc.title); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
			if got := titles(t, l); len(got) != 1 || got[0] != "Buy milk" {
				t.Fatalf("list changed: %v", got)
			}
		})
	}
}

func TestListAddIsCaseSensitive(t *testing.T) {
	l := NewList(Task{ID: 1, Title: "Buy milk"})
	if _, err := l.Add("buy milk"); err != nil {
		t.Fatalf("add: %v", err)
	}
}

func TestListToggleDone(t *testing.T) {
	l := NewList(Task{ID: 1, Title: "a"}, Task{ID: 2, Title: "b"}, Task{ID: 3, Title: "c"})
	if err := l.ToggleDone(2); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	tasks, _ := l.Tasks()
	for _, tk := range tasks {
		if tk.Done != (tk.ID == 2) {
			t.Fatalf("task %d done=%v", tk.ID, tk.Done)
		}
	}
	_ = l.ToggleDone(2)
	tasks, _ = l.Tasks()
	if tasks[1].Done {
		t.Fatal("second toggle did not flip back")
	}

	if err := l.ToggleDone(42); err != nil {
		t.Fatalf("toggle absent: %v", err)
	}
	after, _ := l.Tasks()
	for i := range after {
		if after[i] != tasks[i] {
			t.Fatalf("absent toggle changed %+v", after[i])
		}
	}
}

func TestListRemove(t *testing.T) {
	l := NewList(Task{ID: 1, Title: "a"}, Task{ID: 2, Title: "b"}, Task{ID: 3, Title: "c"})
	if err := l.Remove(2); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := titles(t, l); len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("unexpected list %v", got)
	}
	if err := l.Remove(2); err != nil {
		t.Fatalf("remove absent: %v", err)
	}
	if got := titles(t, l); len(got) != 2 {
		t.Fatalf("absent remove changed list: %v", got)
	}
}

func TestListEdit(t *testing.T) {
	l := NewList(Task{ID: 1, Title: "a", Done: true}, Task{ID: 2, Title: "b"})
	if err := l.Edit(1, "b"); err != nil {
		t.Fatalf("edit to existing title: %v", err)
	}
	tasks, _ := l.Tasks()
	if tasks[0].ID != 1 || !tasks[0].Done || tasks[0].Title != "b" {
		t.Fatalf("edit changed more than the title: %+v", tasks[0])
	}
	if err := l.Edit(1, ""); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("got %v, want ErrEmptyTitle", err)
	}
	if err := l.Edit(9, "z"); err != nil {
		t.Fatalf("edit absent: %v", err)
	}
}

func TestListSnapshotIsCopy(t *testing.T) {
	l := NewList(Task{ID: 1, Title: "a"})
	tasks, _ := l.Tasks()
	tasks[0].Title = "mutated"
	if got := titles(t, l); got[0] != "a" {
		t.Fatalf("snapshot aliases list: %v", got)
	}
}

func TestListScenario(t *testing.T) {
	l := NewList(Task{ID: 1, Title: "Buy milk"})

	if _, err := l.Add("Buy milk"); !errors.Is(err, ErrDuplicateTitle) {
		t.Fatalf("duplicate add: %v", err)
	}
	if got := titles(t, l); len(got) != 1 {
		t.Fatalf("list changed: %v", got)
	}
	if _, err := l.Add("Walk dog"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := titles(t, l); len(got) != 2 {
		t.Fatalf("want 2 tasks, got %v", got)
	}
	_ = l.ToggleDone(1)
	tasks, _ := l.Tasks()
	if !tasks[0].Done {
		t.Fatal("task 1 not done")
	}
	_ = l.Remove(1)
	tasks, _ = l.Tasks()
	if len(tasks) != 1 || tasks[0].ID != 2 || tasks[0].Title != "Walk dog" || tasks[0].Done {
		t.Fatalf("unexpected final list %+v", tasks)
	}
}

func TestIDSource(t *testing.T) {
	var s IDSource
	if s.Next() != 1 || s.Next() != 2 {
		t.Fatal("ids not sequential from 1")
	}
	s.Observe(10)
	s.Observe(4)
	if got := s.Next(); got != 11 {
		t.Fatalf("got %d, want 11", got)
	}
}

func TestListIDsNotReused(t *testing.T) {
	l := NewList()
	a, _ := l.Add("a")
	_ = l.Remove(a.ID)
	b, _ := l.Add("b")
	if b.ID == a.ID {
		t.Fatalf("id %d reused", b.ID)
	}
}

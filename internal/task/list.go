package task

import "time"

// List is a Store backed by a slice. It is not safe for concurrent use.
type List struct {
	tasks []Task
	ids   IDSource
	now   func() time.Time
}

// NewList returns a list holding seed in order. Seed ids are kept as given.
func NewList(seed ...Task) *List {
	l := &List{now: time.Now}
	for _, t := range seed {
		l.ids.Observe(t.ID)
		l.tasks = append(l.tasks, t)
	}
	return l
}

func (l *List) Tasks() ([]Task, error) {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out, nil
}

func (l *List) Add(title string) (Task, error) {
	if title == "" {
		return Task{}, ErrEmptyTitle
	}
	for _, t := range l.tasks {
		if t.Title == title {
			return Task{}, ErrDuplicateTitle
		}
	}
	t := Task{ID: l.ids.Next(), Title: title, CreatedAt: l.now()}
	l.tasks = append(l.tasks, t)
	return t, nil
}

func (l *List) ToggleDone(id int) error {
	if i := l.index(id); i >= 0 {
		l.tasks[i].Done = !l.tasks[i].Done
	}
	return nil
}

func (l *List) Remove(id int) error {
	if i := l.index(id); i >= 0 {
		l.tasks = append(l.tasks[:i:i], l.tasks[i+1:]...)
	}
	return nil
}

func (l *List) Edit(id int, title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if i := l.index(id); i >= 0 {
		l.tasks[i].Title = title
	}
	return nil
}

func (l *List) Close() error { return nil }

func (l *List) index(id int) int {
	for i, t := range l.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

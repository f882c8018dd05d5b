package task

import (
	"errors"
	"time"
)

var (
	ErrDuplicateTitle = errors.New("a task with this title already exists")
	ErrEmptyTitle     = errors.New("title cannot be empty")
)

type Task struct {
	ID        int
	Title     string
	Done      bool
	CreatedAt time.Time
}

// Store owns the ordered task list. Operations on an unknown id are no-ops.
type Store interface {
	Tasks() ([]Task, error)
	Add(title string) (Task, error)
	ToggleDone(id int) error
	Remove(id int) error
	// Edit does not check for duplicate titles.
	Edit(id int, title string) error
	Close() error
}

// IDSource hands out increasing ids starting at 1.
type IDSource struct {
	last int
}

func (s *IDSource) Next() int {
	s.last++
	return s.last
}

// Observe moves the source past id so later ids never collide with it.
func (s *IDSource) Observe(id int) {
	if id > s.last {
		s.last = id
	}
}

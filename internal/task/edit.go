package task

import "errors"

var ErrInvalidTransition = errors.New("invalid edit state transition")

type EditState int

const (
	Viewing EditState = iota
	Editing
)

func (s EditState) String() string {
	switch s {
	case Viewing:
		return "viewing"
	case Editing:
		return "editing"
	default:
		return "unknown"
	}
}

// RowEdit is the inline-edit state of a single row. The zero value is Viewing.
type RowEdit struct {
	state EditState
	draft string
}

func (r *RowEdit) State() EditState { return r.state }

func (r *RowEdit) Draft() string { return r.draft }

func (r *RowEdit) StartEdit(current string) error {
	if r.state != Viewing {
		return ErrInvalidTransition
	}
	r.state = Editing
	r.draft = current
	return nil
}

func (r *RowEdit) SetDraft(s string) error {
	if r.state != Editing {
		return ErrInvalidTransition
	}
	r.draft = s
	return nil
}

// Cancel discards the draft and reverts it to the stored title.
func (r *RowEdit) Cancel(current string) error {
	if r.state != Editing {
		return ErrInvalidTransition
	}
	r.state = Viewing
	r.draft = current
	return nil
}

// Submit leaves Editing and returns the draft for the caller to commit.
func (r *RowEdit) Submit() (string, error) {
	if r.state != Editing {
		return "", ErrInvalidTransition
	}
	r.state = Viewing
	return r.draft, nil
}

func (r *RowEdit) CanDelete() bool { return r.state == Viewing }

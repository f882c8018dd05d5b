package ui

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"tasklist/internal/config"
	"tasklist/internal/task"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

type dialogKind int

const (
	dialogConfirmDelete dialogKind = iota
	dialogNotice
)

// dialog blocks all other input until it is answered.
type dialog struct {
	kind   dialogKind
	title  string
	body   string
	taskID int
}

const (
	defaultWidth  = 80
	defaultHeight = 24
	// header, input box, status, help and the blank lines between them
	chromeHeight = 10
)

type Model struct {
	store     task.Store
	keys      keyMap
	tasks     []task.Task
	rows      map[int]*task.RowEdit
	cursor    int
	mode      mode
	editingID int
	input     textinput.Model
	editInput textinput.Model
	list      viewport.Model
	help      help.Model
	dialog    *dialog
	status    string
	width     int
	height    int
}

// Run starts the terminal UI on store. The store is owned by the caller.
func Run(store task.Store, cfg config.Config) error {
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "tasklist")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m, err := New(store, cfg)
	if err != nil {
		return err
	}
	log.Printf("starting with %d tasks (backend %s)", len(m.tasks), cfg.Backend)

	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func New(store task.Store, cfg config.Config) (Model, error) {
	tasks, err := store.Tasks()
	if err != nil {
		return Model{}, fmt.Errorf("load tasks: %w", err)
	}

	ti := textinput.New()
	ti.Prompt = "+ "
	ti.Placeholder = "Add a new task..."
	ti.CharLimit = 256
	ti.Width = 40

	ei := textinput.New()
	ei.Prompt = ""
	ei.CharLimit = 256
	ei.Width = 40

	keys := newKeyMap(cfg.Keys)
	m := Model{
		store:     store,
		keys:      keys,
		tasks:     tasks,
		rows:      make(map[int]*task.RowEdit),
		input:     ti,
		editInput: ei,
		list:      viewport.New(defaultWidth, defaultHeight-chromeHeight),
		help:      help.New(),
		status: fmt.Sprintf("Press '%s' to add, %s to toggle, '%s' to edit, '%s' to delete.",
			keyLabel(cfg.Keys.Add), keyLabel(cfg.Keys.Toggle), keyLabel(cfg.Keys.Edit), keyLabel(cfg.Keys.Delete)),
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.syncList()
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.syncList()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-10, 10)
		m.editInput.Width = max(msg.Width-16, 10)
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.dialog != nil {
			return m.updateDialog(msg)
		}
		switch m.mode {
		case modeAdd:
			return m.updateAddMode(msg)
		case modeEdit:
			return m.updateEditMode(msg)
		}
		return m.updateListMode(msg)
	}

	// cursor blink and other input housekeeping
	var cmd tea.Cmd
	switch m.mode {
	case modeAdd:
		m.input, cmd = m.input.Update(msg)
	case modeEdit:
		m.editInput, cmd = m.editInput.Update(msg)
	}
	return m, cmd
}

func (m Model) updateListMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(m.tasks))
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(m.tasks))
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.status = "Type a title and press Enter"
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Toggle):
		t, ok := m.current()
		if !ok {
			return m, nil
		}
		if err := m.store.ToggleDone(t.ID); err != nil {
			m.status = fmt.Sprintf("toggle failed: %v", err)
			return m, nil
		}
		log.Printf("toggled task %d", t.ID)
		m.status = "Marked done"
		if t.Done {
			m.status = "Marked pending"
		}
		m.reload()
	case key.Matches(msg, m.keys.Edit):
		t, ok := m.current()
		if !ok {
			m.status = "No tasks to edit"
			return m, nil
		}
		return m.startEdit(t)
	case key.Matches(msg, m.keys.Delete):
		t, ok := m.current()
		if !ok {
			return m, nil
		}
		if !m.row(t.ID).CanDelete() {
			m.status = "Finish editing before deleting"
			return m, nil
		}
		m.dialog = &dialog{
			kind:   dialogConfirmDelete,
			title:  "Delete task",
			body:   fmt.Sprintf("\"%s\" will be permanently deleted.", t.Title),
			taskID: t.ID,
		}
	case key.Matches(msg, m.keys.Detail):
		t, ok := m.current()
		if !ok {
			m.status = "No tasks"
			return m, nil
		}
		m.status = detail(t)
	}
	return m, nil
}

func (m Model) updateAddMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			m.status = "Title cannot be empty"
			return m, nil
		}
		added, err := m.store.Add(title)
		if errors.Is(err, task.ErrDuplicateTitle) {
			log.Printf("rejected duplicate title %q", title)
			m.dialog = &dialog{
				kind:  dialogNotice,
				title: "Duplicate task",
				body:  "You cannot add two tasks with the same title.",
			}
			return m, nil
		}
		if err != nil {
			m.status = fmt.Sprintf("save failed: %v", err)
			return m, nil
		}
		log.Printf("added task %d %q", added.ID, added.Title)
		m.reload()
		m.cursor = m.indexOf(added.ID)
		m.status = "Added task"
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeList
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) startEdit(t task.Task) (Model, tea.Cmd) {
	r := m.row(t.ID)
	if err := r.StartEdit(t.Title); err != nil {
		m.status = fmt.Sprintf("edit failed: %v", err)
		return m, nil
	}
	m.mode = modeEdit
	m.editingID = t.ID
	m.editInput.SetValue(r.Draft())
	m.editInput.CursorEnd()
	m.status = "Editing: Enter to save, Esc to cancel"
	cmd := m.editInput.Focus()
	return m, cmd
}

func (m Model) updateEditMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	r := m.row(m.editingID)
	switch {
	case key.Matches(msg, m.keys.Cancel):
		stored, _ := m.find(m.editingID)
		_ = r.Cancel(stored.Title)
		m = m.leaveEdit()
		m.status = "Edit cancelled"
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		draft := strings.TrimSpace(m.editInput.Value())
		_ = r.SetDraft(draft)
		if draft == "" {
			m.status = "Title cannot be empty"
			return m, nil
		}
		title, err := r.Submit()
		if err != nil {
			m.status = fmt.Sprintf("edit failed: %v", err)
			return m, nil
		}
		id := m.editingID
		m = m.leaveEdit()
		if err := m.store.Edit(id, title); err != nil {
			m.status = fmt.Sprintf("save failed: %v", err)
			return m, nil
		}
		log.Printf("edited task %d to %q", id, title)
		m.reload()
		m.status = "Task updated"
		return m, nil
	default:
		var cmd tea.Cmd
		m.editInput, cmd = m.editInput.Update(msg)
		_ = r.SetDraft(m.editInput.Value())
		return m, cmd
	}
}

func (m Model) leaveEdit() Model {
	m.editInput.Blur()
	m.editInput.SetValue("")
	m.editingID = 0
	m.mode = modeList
	return m
}

func (m Model) updateDialog(msg tea.KeyMsg) (Model, tea.Cmd) {
	d := m.dialog
	switch d.kind {
	case dialogNotice:
		if key.Matches(msg, m.keys.Confirm, m.keys.Cancel, m.keys.Yes, m.keys.No) {
			m.dialog = nil
		}
	case dialogConfirmDelete:
		switch {
		case key.Matches(msg, m.keys.Yes, m.keys.Confirm):
			m.dialog = nil
			if err := m.store.Remove(d.taskID); err != nil {
				m.status = fmt.Sprintf("delete failed: %v", err)
				return m, nil
			}
			log.Printf("removed task %d", d.taskID)
			delete(m.rows, d.taskID)
			m.reload()
			m.status = "Deleted task"
		case key.Matches(msg, m.keys.No, m.keys.Cancel):
			m.dialog = nil
			log.Printf("kept task %d", d.taskID)
			m.status = "Delete cancelled"
		}
	}
	return m, nil
}

func (m *Model) reload() {
	tasks, err := m.store.Tasks()
	if err != nil {
		m.status = fmt.Sprintf("reload failed: %v", err)
		return
	}
	m.tasks = tasks
	live := make(map[int]struct{}, len(tasks))
	for _, t := range tasks {
		live[t.ID] = struct{}{}
	}
	for id := range m.rows {
		if _, ok := live[id]; !ok {
			delete(m.rows, id)
		}
	}
	m.cursor = clampCursor(m.cursor, len(m.tasks))
}

// row returns the edit state for id, creating it in Viewing.
func (m Model) row(id int) *task.RowEdit {
	r, ok := m.rows[id]
	if !ok {
		r = &task.RowEdit{}
		m.rows[id] = r
	}
	return r
}

func (m Model) current() (task.Task, bool) {
	if len(m.tasks) == 0 {
		return task.Task{}, false
	}
	return m.tasks[clampCursor(m.cursor, len(m.tasks))], true
}

func (m Model) find(id int) (task.Task, bool) {
	for _, t := range m.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}

// indexOf returns the row of id, or the current cursor if id is gone.
func (m Model) indexOf(id int) int {
	for i, t := range m.tasks {
		if t.ID == id {
			return i
		}
	}
	return clampCursor(m.cursor, len(m.tasks))
}

func detail(t task.Task) string {
	info := fmt.Sprintf("Task #%d • %s • %s", t.ID, t.Title, humanDone(t.Done))
	if !t.CreatedAt.IsZero() {
		info += " • added " + humanize.Time(t.CreatedAt)
	}
	return info
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

func humanDone(done bool) string {
	if done {
		return "done"
	}
	return "pending"
}

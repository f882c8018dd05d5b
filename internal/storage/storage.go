package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"tasklist/internal/task"
)

// Store is a task.Store on a private in-memory SQLite database. Nothing is
// written to disk and the data is gone once Close is called.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

var _ task.Store = (*Store)(nil)

func Open() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN("tasklist-"+uuid.NewString()))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// The database lives as long as this single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	s := &Store{db: db, now: time.Now}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	done INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);`
	_, err := s.db.Exec(ddl)
	return err
}

func (s *Store) Tasks() ([]task.Task, error) {
	rows, err := s.db.Query(`SELECT id, title, done, created_at FROM tasks ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		var t task.Task
		var doneInt int
		var createdStr string
		if err := rows.Scan(&t.ID, &t.Title, &doneInt, &createdStr); err != nil {
			return nil, err
		}
		t.Done = doneInt == 1
		created, err := time.Parse(time.RFC3339Nano, createdStr)
		if err != nil {
			return nil, fmt.Errorf("task %d created_at: %w", t.ID, err)
		}
		t.CreatedAt = created
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Store) Add(title string) (task.Task, error) {
	if title == "" {
		return task.Task{}, task.ErrEmptyTitle
	}
	tx, err := s.db.Begin()
	if err != nil {
		return task.Task{}, err
	}
	defer tx.Rollback()

	var n int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM tasks WHERE title = ?;`, title).Scan(&n); err != nil {
		return task.Task{}, err
	}
	if n > 0 {
		return task.Task{}, task.ErrDuplicateTitle
	}

	now := s.now().UTC()
	res, err := tx.Exec(`INSERT INTO tasks (title, done, created_at) VALUES (?, 0, ?);`,
		title, now.Format(time.RFC3339Nano))
	if err != nil {
		return task.Task{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return task.Task{}, err
	}
	if err := tx.Commit(); err != nil {
		return task.Task{}, err
	}
	return task.Task{ID: int(id), Title: title, CreatedAt: now}, nil
}

func (s *Store) ToggleDone(id int) error {
	_, err := s.db.Exec(`UPDATE tasks SET done = 1 - done WHERE id = ?;`, id)
	return err
}

func (s *Store) Remove(id int) error {
	_, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?;`, id)
	return err
}

func (s *Store) Edit(id int, title string) error {
	if title == "" {
		return task.ErrEmptyTitle
	}
	_, err := s.db.Exec(`UPDATE tasks SET title = ? WHERE id = ?;`, title, id)
	return err
}

func memoryDSN(name string) string {
	if name == "" {
		name = "tasklist"
	}
	u := url.URL{
		Scheme: "file",
		Opaque: url.PathEscape(name),
	}
	q := u.Query()
	q.Set("mode", "memory")
	q.Set("cache", "shared")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}

package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Task is one to-do item. The on-disk order is significant — the user
// reorders tasks and the file reflects the last write.
type Task struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskStore persists the ordered task list as a single JSON file,
// rewriting the whole file on every mutation.
type TaskStore struct {
	Path string

	log *slog.Logger
}

// NewTaskStore creates a TaskStore backed by the given file path.
func NewTaskStore(path string, logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskStore{Path: path, log: logger}
}

// Load reads all tasks. A missing, unreadable or corrupt file loads as an
// empty list; the problem is logged, never fatal.
func (ts *TaskStore) Load() []Task {
	data, err := os.ReadFile(ts.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			ts.log.Error("could not read tasks file", "path", ts.Path, "error", err)
		}
		return nil
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		ts.log.Error("tasks file corrupt, starting empty", "path", ts.Path, "error", err)
		return nil
	}
	return tasks
}

// Save rewrites the task file with the given ordered list.
func (ts *TaskStore) Save(tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing tasks: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(ts.Path), 0755); err != nil {
		return fmt.Errorf("creating tasks directory: %w", err)
	}
	if err := os.WriteFile(ts.Path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing tasks: %w", err)
	}
	return nil
}

// NextID returns the next monotonic task ID for the given list.
func NextID(tasks []Task) int {
	next := 1
	for _, t := range tasks {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	return next
}

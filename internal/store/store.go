// Package store persists the task collection as a single JSON file.
//
// The file is the sole source of truth: every command loads it in full,
// mutates the in-memory collection, and writes it back in full. Writes go
// through a temp file and rename so a crash mid-write cannot truncate the
// file, but there is no cross-process locking; concurrent invocations are
// last-writer-wins.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/x-color/kelvin/internal/task"
)

// StorageError wraps a read or write failure with the offending path.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error at %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Store reads and writes the task file at a fixed path.
type Store struct {
	path string
}

// New returns a store bound to the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the task collection in file order. A missing or blank file
// yields an empty collection.
func (s *Store) Load() ([]task.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []task.Task{}, nil
		}
		return nil, &StorageError{Path: s.path, Err: err}
	}
	if strings.TrimSpace(string(data)) == "" {
		return []task.Task{}, nil
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, &StorageError{Path: s.path, Err: err}
	}
	return tasks, nil
}

// Save writes the whole collection, creating parent directories as needed.
// The write is atomic via temp file and rename.
func (s *Store) Save(tasks []task.Task) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return &StorageError{Path: s.path, Err: err}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return &StorageError{Path: s.path, Err: err}
	}
	data = append(data, '\n')

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return &StorageError{Path: tmpPath, Err: err}
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return &StorageError{Path: s.path, Err: err}
	}
	return nil
}

// NextID returns the smallest unused id above the current maximum, or 1
// for an empty collection. Ids are never reused even after completion.
func NextID(tasks []task.Task) int {
	max := 0
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

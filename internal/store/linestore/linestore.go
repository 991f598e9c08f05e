package linestore

import (
	"errors"
	"fmt"
	"os"
)

// Line-backed storage. One item per line, plain text.
// The file is read once at startup and written once at exit; no lock is held between.

const DefaultPath = "todo.txt"

// ErrEmptyPath is returned when a Store is built without a path.
var ErrEmptyPath = errors.New("the file path cannot be empty")

type Store struct {
	path string
}

func New(path string) (*Store, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return &Store{path: path}, nil
}

func (s *Store) Path() string { return s.path }

// Load returns the whole file as text. A missing file reads as "".
func (s *Store) Load() (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read file %s: %w", s.path, err)
	}
	return string(b), nil
}

// Save overwrites the file with text exactly as given.
func (s *Store) Save(text string) error {
	if err := os.WriteFile(s.path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write file %s: %w", s.path, err)
	}
	return nil
}

// Package watermark persists the time of the last completed run as a file modification time.
package watermark

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// FileStore keeps the watermark in the mtime of an empty marker file.
// No locking is done; overlapping invocations race on the marker.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the marker at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Read returns the marker's modification time.
// A missing marker is created empty and the zero time is returned, so every entry counts as new.
func (s *FileStore) Read() (time.Time, error) {
	info, err := os.Stat(s.path)
	if err == nil {
		return info.ModTime().UTC(), nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return time.Time{}, fmt.Errorf("stat watermark: %w", err)
	}

	if err := s.create(); err != nil {
		return time.Time{}, err
	}
	return time.Time{}, nil
}

// Write sets the marker's access and modification times to now.
func (s *FileStore) Write(now time.Time) error {
	err := os.Chtimes(s.path, now, now)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.create(); err != nil {
			return err
		}
		err = os.Chtimes(s.path, now, now)
	}
	if err != nil {
		return fmt.Errorf("touch watermark: %w", err)
	}
	return nil
}

func (s *FileStore) create() error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		return fmt.Errorf("create watermark: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close watermark: %w", err)
	}
	return nil
}

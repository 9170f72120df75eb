package rkv

import (
	"fmt"
	"os"

	"github.com/kjk/common/atomicfile"
)

// ExportIndex writes the current index to path using the codec's index
// format. The file is replaced atomically, a failed export leaves the old one.
func (s *Store) ExportIndex(path string) error {
	if s.closed {
		return ErrClosed
	}

	w, err := atomicfile.New(path)
	if err != nil {
		return fmt.Errorf("export index: %w", err)
	}
	defer w.RemoveIfNotClosed()

	if _, err = w.Write(s.options.codec.MarshalIndex(s.Index())); err != nil {
		return fmt.Errorf("export index: %w", err)
	}
	return w.Close()
}

// ImportIndex replaces the index with the one stored at path by ExportIndex.
// Must not be called while a Load is running.
func (s *Store) ImportIndex(path string) error {
	if s.closed {
		return ErrClosed
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("import index: %w", err)
	}

	index, err := s.options.codec.UnmarshalIndex(data)
	if err != nil {
		return fmt.Errorf("import index %s: %w", path, err)
	}

	s.ReplaceIndex(index)
	return nil
}

package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// The scratch entry holds the latest draft of the currently unnamed
// document. One fixed slot per install: a new unnamed draft overwrites
// whatever was there, and the slot is only cleared by a successful named
// save.
const (
	scratchDir  = ".autosave"
	scratchFile = "untitled-autosave.md"
)

// ScratchPath returns the fixed path of the scratch entry.
func (s *Store) ScratchPath() string {
	return filepath.Join(s.Root, scratchDir, scratchFile)
}

// WriteScratch overwrites the scratch entry with content, creating the
// hidden autosave directory on first use.
func (s *Store) WriteScratch(content string) error {
	dir := filepath.Dir(s.ScratchPath())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating autosave directory: %w", err)
	}
	if err := os.WriteFile(s.ScratchPath(), []byte(content), 0644); err != nil {
		return fmt.Errorf("writing autosave: %w", err)
	}
	return nil
}

// ReadScratch returns the scratch entry's content. A missing file is not
// an error; it returns ok=false.
func (s *Store) ReadScratch() (string, bool, error) {
	data, err := os.ReadFile(s.ScratchPath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading autosave: %w", err)
	}
	return string(data), true, nil
}

// ClearScratch removes the scratch entry. Clearing an absent entry is a
// no-op.
func (s *Store) ClearScratch() error {
	if err := os.Remove(s.ScratchPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing autosave: %w", err)
	}
	return nil
}

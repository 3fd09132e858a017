// Package store manages the filesystem-backed note documents.
//
// All documents live inside one sandboxed directory; every path-accepting
// operation verifies — after symlink resolution — that the target is a
// descendant of that directory.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// DefaultExt is appended to names saved without a recognized extension.
const DefaultExt = ".md"

// recognizedExts are the extensions the store lists and opens as text.
var recognizedExts = map[string]bool{
	".md":   true,
	".txt":  true,
	".text": true,
}

// Store manages the sandboxed documents directory.
type Store struct {
	Root string // e.g. ~/.local/share/termdesk/notes
}

// NewStore creates a Store rooted at the given directory, creating it if
// it doesn't exist.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating documents directory: %w", err)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving documents directory: %w", err)
	}
	return &Store{Root: abs}, nil
}

// FileInfo describes one listed document.
type FileInfo struct {
	Name    string // filename with extension
	Path    string // absolute path inside the sandbox
	ModTime time.Time
}

// Stem returns the filename without its extension.
func (f FileInfo) Stem() string {
	return strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
}

// Save sanitizes name, appends the default extension if none is
// recognized, and writes content to the resulting path. Existing files
// are overwritten. Returns the absolute path written.
func (s *Store) Save(name, content string) (string, error) {
	safe, err := Sanitize(name)
	if err != nil {
		return "", err
	}
	if !recognizedExts[strings.ToLower(filepath.Ext(safe))] {
		safe += DefaultExt
	}

	path, err := s.contain(filepath.Join(s.Root, safe))
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", safe, err)
	}
	return path, nil
}

// Write overwrites an existing document path with content. The path must
// resolve inside the sandbox.
func (s *Store) Write(path, content string) error {
	resolved, err := s.contain(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(resolved, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Open reads a document and returns its text content.
func (s *Store) Open(path string) (string, error) {
	resolved, err := s.contain(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, filepath.Base(path))
		}
		return "", fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	if !utf8.Valid(data) || strings.ContainsRune(string(data), 0) {
		return "", fmt.Errorf("%w: %s", ErrNotText, filepath.Base(path))
	}
	return string(data), nil
}

// List enumerates recognized text files in the sandbox, newest first.
func (s *Store) List() ([]FileInfo, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, fmt.Errorf("reading documents directory: %w", err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !recognizedExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Name:    entry.Name(),
			Path:    filepath.Join(s.Root, entry.Name()),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.After(files[j].ModTime)
	})
	return files, nil
}

// Delete removes a document from the sandbox.
func (s *Store) Delete(path string) error {
	resolved, err := s.contain(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(resolved); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, filepath.Base(path))
	}
	if err := os.Remove(resolved); err != nil {
		return fmt.Errorf("deleting %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Rename gives an existing document a new name, preserving its original
// extension. Renaming to the current name is a no-op; colliding with a
// different existing file fails with ErrExists. Returns the new path.
func (s *Store) Rename(oldPath, newName string) (string, error) {
	oldResolved, err := s.contain(oldPath)
	if err != nil {
		return "", err
	}

	safe, err := Sanitize(newName)
	if err != nil {
		return "", err
	}
	ext := filepath.Ext(oldResolved)
	if !strings.EqualFold(filepath.Ext(safe), ext) {
		safe += ext
	}

	newResolved, err := s.contain(filepath.Join(s.Root, safe))
	if err != nil {
		return "", err
	}
	if newResolved == oldResolved {
		return oldResolved, nil
	}
	if _, err := os.Stat(newResolved); err == nil {
		return "", fmt.Errorf("%w: %s", ErrExists, safe)
	}
	if _, err := os.Stat(oldResolved); os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, filepath.Base(oldPath))
	}
	if err := os.Rename(oldResolved, newResolved); err != nil {
		return "", fmt.Errorf("renaming %s: %w", filepath.Base(oldPath), err)
	}
	return newResolved, nil
}

// contain resolves path (symlinks included) and verifies the result is a
// descendant of the sandbox root. The file itself may not exist yet; its
// parent is resolved instead.
func (s *Store) contain(path string) (string, error) {
	candidate := path
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(s.Root, candidate)
	}
	candidate = filepath.Clean(candidate)

	resolved, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("resolving %s: %w", filepath.Base(path), err)
		}
		parent, perr := filepath.EvalSymlinks(filepath.Dir(candidate))
		if perr != nil {
			return "", fmt.Errorf("%w: %s", ErrPathEscape, path)
		}
		resolved = filepath.Join(parent, filepath.Base(candidate))
	}

	rootResolved, err := filepath.EvalSymlinks(s.Root)
	if err != nil {
		return "", fmt.Errorf("resolving documents directory: %w", err)
	}

	rel, err := filepath.Rel(rootResolved, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrPathEscape, path)
	}
	return resolved, nil
}

// Package autosave bounds editor data loss to one timer interval.
//
// Named documents are written straight to their file; unnamed content
// goes to the store's single scratch entry. Recovery reads the scratch
// entry back at editor startup but deliberately leaves it in place: it is
// only cleared by a successful named save, so a crash between recovery
// and naming does not re-lose the draft. One scratch slot exists per
// install regardless of how many unnamed documents have come and gone.
package autosave

import (
	"log/slog"
	"time"

	"github.com/termdesk/termdesk/pkg/store"
)

// DefaultInterval is the autosave tick period.
const DefaultInterval = 30 * time.Second

// Snapshot is the editor buffer state an autosave tick operates on.
type Snapshot struct {
	Path    string // empty while the document is unnamed
	Content string
}

// Result reports what a tick did.
type Result int

const (
	Skipped Result = iota
	SavedFile
	SavedScratch
)

// Controller drives timer-based persistence for one editor session.
type Controller struct {
	Interval time.Duration

	store *store.Store
	log   *slog.Logger
}

// New creates a Controller with the default interval.
func New(s *store.Store, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{Interval: DefaultInterval, store: s, log: logger}
}

// Tick persists the snapshot. Empty buffers are skipped. Errors are
// returned for status display but autosave failures must never interrupt
// editing; callers log and move on.
func (c *Controller) Tick(snap Snapshot) (Result, error) {
	if snap.Content == "" {
		return Skipped, nil
	}
	if snap.Path != "" {
		if err := c.store.Write(snap.Path, snap.Content); err != nil {
			return Skipped, err
		}
		return SavedFile, nil
	}
	if err := c.store.WriteScratch(snap.Content); err != nil {
		return Skipped, err
	}
	return SavedScratch, nil
}

// Flush performs the final autosave attempt on session teardown. It
// swallows and logs any failure — teardown must never block or fail.
func (c *Controller) Flush(snap Snapshot) {
	if _, err := c.Tick(snap); err != nil {
		c.log.Error("final autosave failed", "error", err)
	}
}

// Recover returns the scratch entry's content if one is present and
// non-empty. The scratch entry is left on disk; see the package comment.
func (c *Controller) Recover() (string, bool) {
	content, ok, err := c.store.ReadScratch()
	if err != nil {
		c.log.Error("autosave recovery failed", "error", err)
		return "", false
	}
	if !ok || content == "" {
		return "", false
	}
	return content, true
}

// ClearScratch removes the scratch entry after a successful named save.
func (c *Controller) ClearScratch() error {
	return c.store.ClearScratch()
}

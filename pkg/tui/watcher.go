package tui

import (
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

var watchedExts = map[string]bool{
	".md":   true,
	".txt":  true,
	".text": true,
}

// StartWatcher watches the documents directory and sends FileChangedMsg
// when text files change, so an open file browser stays current. The
// returned cleanup stops the watcher.
func StartWatcher(root string, program *tea.Program) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(root); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})

	go func() {
		var debounceTimer *time.Timer

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !watchedExts[strings.ToLower(filepath.Ext(event.Name))] {
					continue
				}
				// Hidden files include the autosave scratch entry; those
				// writes happen every interval and are not user-visible.
				if strings.HasPrefix(filepath.Base(event.Name), ".") {
					continue
				}

				// Debounce: wait 200ms after the last change
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(200*time.Millisecond, func() {
					program.Send(FileChangedMsg{})
				})

			case <-watcher.Errors:
				// Ignore watcher errors silently

			case <-done:
				return
			}
		}
	}()

	cleanup := func() {
		close(done)
		watcher.Close()
	}

	return cleanup, nil
}

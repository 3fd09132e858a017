package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDataDir returns the OS-appropriate default data directory for
// termdesk. Notes, tasks, settings and the log file all live under it.
//
//   - macOS:   ~/Library/Application Support/termdesk
//   - Linux:   $XDG_DATA_HOME/termdesk (fallback ~/.local/share/termdesk)
//   - Windows: %LOCALAPPDATA%\termdesk (fallback %APPDATA%\termdesk)
func DefaultDataDir() string {
	return defaultDataDirForOS(runtime.GOOS)
}

func defaultDataDirForOS(goos string) string {
	home, _ := os.UserHomeDir()

	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "termdesk")
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, "termdesk")
		}
		if dir := os.Getenv("APPDATA"); dir != "" {
			return filepath.Join(dir, "termdesk")
		}
		return filepath.Join(home, "termdesk")
	default: // linux, freebsd, etc.
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return filepath.Join(dir, "termdesk")
		}
		return filepath.Join(home, ".local", "share", "termdesk")
	}
}

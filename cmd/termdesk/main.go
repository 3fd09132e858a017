package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/termdesk/termdesk/pkg/autosave"
	"github.com/termdesk/termdesk/pkg/config"
	"github.com/termdesk/termdesk/pkg/store"
	"github.com/termdesk/termdesk/pkg/tui"
	"github.com/termdesk/termdesk/pkg/weather"
)

var dataDir string

var rootCmd = &cobra.Command{
	Use:   "termdesk",
	Short: "A terminal desktop: editor, tasks, and a status header",
	Long: `termdesk is a distraction-free terminal desktop. It bundles a plain-text
editor with autosave and crash recovery, a to-do list, and a settings
screen, under a header showing CPU/RAM, the clock, the weather, and a
pomodoro timer.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "", "data directory (default: platform data dir)")
}

func run() error {
	dir := dataDir
	if dir == "" {
		dir = config.DefaultDataDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// The TUI owns stdout, so logs go to a file in the data dir.
	logFile, err := os.OpenFile(filepath.Join(dir, "termdesk.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, nil))

	cfg := config.Load(dir, logger)

	docs, err := store.NewStore(filepath.Join(dir, "notes"))
	if err != nil {
		return err
	}
	tasks := store.NewTaskStore(filepath.Join(dir, "tasks.json"), logger)

	shell := &tui.Shell{
		Cfg:     cfg,
		Store:   docs,
		Tasks:   tasks,
		Auto:    autosave.New(docs, logger),
		Weather: weather.NewClient(),
		Log:     logger,
	}

	program := tea.NewProgram(tui.NewModel(shell), tea.WithAltScreen())

	cleanup, err := tui.StartWatcher(docs.Root, program)
	if err != nil {
		logger.Warn("file watcher unavailable", "error", err)
	} else {
		defer cleanup()
	}

	logger.Info("starting", "data_dir", dir)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

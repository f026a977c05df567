// Package logging sets up the application logger. The terminal belongs to
// the UI, so logs only ever go to a file.
package logging

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Setup opens path for appending and returns a text logger at level. The
// standard log package is redirected to the same file. With an empty path
// everything is discarded. close must be called before exit.
func Setup(path string, level slog.Level) (logger *slog.Logger, close func() error, err error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	f, err := tea.LogToFile(path, "rheia")
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("app", "rheia"), f.Close, nil
}

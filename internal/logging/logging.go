// Package logging builds the charmbracelet logger shared by the CLI, the plugin
// host and the API server.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Options controls logger construction.
type Options struct {
	Verbose bool
	Quiet   bool
	NoColor bool
	Prefix  string
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}
	if opts.Quiet {
		level = log.WarnLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: opts.Verbose,
		TimeFormat:      "15:04:05",
		Prefix:          opts.Prefix,
		Level:           level,
	})

	if !opts.NoColor && os.Getenv("NO_COLOR") == "" {
		styles := log.DefaultStyles()
		styles.Levels[log.DebugLevel] = lipgloss.NewStyle().SetString("DEBUG").Foreground(lipgloss.Color("#6b7280")).Bold(true)
		styles.Levels[log.InfoLevel] = lipgloss.NewStyle().SetString("INFO").Foreground(lipgloss.Color("#3b82f6")).Bold(true)
		styles.Levels[log.WarnLevel] = lipgloss.NewStyle().SetString("WARN").Foreground(lipgloss.Color("#f59e0b")).Bold(true)
		styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().SetString("ERROR").Foreground(lipgloss.Color("#ef4444")).Bold(true)
		logger.SetStyles(styles)
	}

	return logger
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// Package logging provides leveled terminal output with an optional
// append-mode file sink for the --log-file flag. Styled text goes to the
// terminal; the file always receives plain timestamped lines.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	debugStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Logger writes leveled lines to stdout/stderr and, when configured, appends
// plain copies to a log file. Safe for concurrent use.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	filePath string
}

// NewLogger returns a Logger, opening logFile in append mode when non-empty.
// Call Close when done if a log file was set.
func NewLogger(logFile string) (*Logger, error) {
	l := &Logger{}
	if logFile != "" {
		dir := filepath.Dir(logFile)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		l.file = f
		l.filePath = logFile
	}
	return l, nil
}

// FilePath returns the configured log file path, empty when logging to the
// terminal only.
func (l *Logger) FilePath() string { return l.filePath }

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level string, style lipgloss.Style, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := os.Stdout
	if level == "ERROR" {
		out = os.Stderr
	}
	_, _ = io.WriteString(out, style.Render("["+level+"]")+" "+text+"\n")

	if l.file != nil {
		ts := time.Now().Format("2006-01-02 15:04:05")
		_, _ = io.WriteString(l.file, ts+" ["+level+"] "+text+"\n")
	}
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", infoStyle, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level.
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", successStyle, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", warnStyle, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level, also to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", errorStyle, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.line("DEBUG", debugStyle, fmt.Sprintf(format, args...))
}

// Raw writes text to stdout untouched and a plain copy to the log file.
// Used for summary blocks that are already styled by the caller.
func (l *Logger) Raw(styled, plain string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(os.Stdout, styled)
	if l.file != nil {
		_, _ = io.WriteString(l.file, plain)
	}
}

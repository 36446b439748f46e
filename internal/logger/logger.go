// Package logger provides centralized logging for TahaOS.
// It wraps charmbracelet/log with level and destination configuration and
// hands out prefixed component loggers for the core packages.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Logger is the global logger instance used by the CLI.
var Logger *log.Logger

// output is where component loggers write; it follows Configure.
var output io.Writer = os.Stderr

// openFile is the log file opened by the last Configure, if any.
var openFile *os.File

func init() {
	Logger = log.New(os.Stderr)
	Logger.SetTimeFormat("")
	Logger.SetLevel(log.InfoLevel)
}

// Configure sets up the logger from CLI flags and environment variables.
// The flag value takes precedence over TAHAOS_LOG_LEVEL.
func Configure(logLevel string, logFile string) error {
	level := logLevel
	if level == "" {
		level = strings.ToLower(os.Getenv("TAHAOS_LOG_LEVEL"))
	}

	next := io.Writer(os.Stderr)
	var file *os.File
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return err
		}
		file, next = f, f
	}

	if err := Close(); err != nil {
		if file != nil {
			_ = file.Close()
		}
		return err
	}
	output, openFile = next, file

	Logger = log.New(output)
	Logger.SetTimeFormat("")
	Logger.SetLevel(ParseLevel(level))
	return nil
}

// Close closes the log file opened by Configure and sends output back to
// stderr. It is a no-op when logging to stderr.
func Close() error {
	if openFile == nil {
		return nil
	}
	err := openFile.Close()
	openFile = nil
	output = os.Stderr
	Logger.SetOutput(os.Stderr)
	return err
}

// ParseLevel converts a level name to a log level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// Discard returns a logger that drops everything. Core packages use it when
// no logger is injected.
func Discard() *log.Logger {
	l := log.New(io.Discard)
	l.SetLevel(log.FatalLevel)
	return l
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// NewStyledLogger creates a component logger (e.g. "wm", "terminal") that
// writes to the configured destination at the global level.
func NewStyledLogger(prefix string) *log.Logger {
	styles := log.DefaultStyles()

	styles.Levels[log.InfoLevel] = levelStyle("INFO", "33")
	styles.Levels[log.ErrorLevel] = levelStyle("ERROR", "196")
	styles.Levels[log.DebugLevel] = levelStyle("DEBUG", "240")
	styles.Levels[log.WarnLevel] = levelStyle("WARN", "214")
	styles.Levels[log.FatalLevel] = levelStyle("FATAL", "88")

	styles.Keys["window"] = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	styles.Keys["app"] = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	styles.Keys["z"] = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	styles.Keys["command"] = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styles.Values["error"] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	componentLogger := log.NewWithOptions(output, log.Options{
		Prefix: prefix + " ",
	})
	componentLogger.SetStyles(styles)
	componentLogger.SetLevel(Logger.GetLevel())

	return componentLogger
}

func levelStyle(label, background string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color(background)).
		Foreground(lipgloss.Color("15"))
}

package terminal

import (
	"strings"
	"time"

	"tahaos/pkg/settings"
)

// Preferences is the part of the settings store the console writes to.
type Preferences interface {
	SetTheme(settings.Theme)
	SetLanguage(settings.Language)
}

// Entry is one submitted line and what it printed.
type Entry struct {
	Input     string
	Output    string
	Timestamp time.Time
}

// Console hosts an Interpreter the way the terminal app does: it keeps the
// output history, applies theme and language directives, and offers
// command-history navigation and tab completion. A Console is not safe for
// concurrent use.
type Console struct {
	interp   *Interpreter
	prefs    Preferences
	now      func() time.Time
	history  []Entry
	commands []string // newest first
	index    int
}

type noPreferences struct{}

func (noPreferences) SetTheme(settings.Theme)       {}
func (noPreferences) SetLanguage(settings.Language) {}

// NewConsole creates a console. now stamps history entries; nil uses
// time.Now. A nil prefs still echoes theme and language changes but
// applies them nowhere.
func NewConsole(interp *Interpreter, prefs Preferences, now func() time.Time) *Console {
	if now == nil {
		now = time.Now
	}
	if prefs == nil {
		prefs = noPreferences{}
	}
	return &Console{
		interp: interp,
		prefs:  prefs,
		now:    now,
		index:  -1,
	}
}

// Submit interprets line and records the outcome. Blank lines are ignored
// and report false.
func (c *Console) Submit(line string) (Result, bool) {
	if strings.TrimSpace(line) == "" {
		return Result{}, false
	}

	res := c.interp.Interpret(line)

	c.commands = append([]string{line}, c.commands...)
	c.index = -1

	switch res.Kind {
	case KindClear:
		c.history = nil
	case KindSetTheme:
		c.prefs.SetTheme(res.Theme)
		c.record(line, "Theme switched to "+string(res.Theme)+".")
	case KindSetLanguage:
		c.prefs.SetLanguage(res.Language)
		c.record(line, "Language switched to "+res.Language.DisplayName()+".")
	default:
		c.record(line, res.Output)
	}

	return res, true
}

func (c *Console) record(input, output string) {
	c.history = append(c.history, Entry{
		Input:     input,
		Output:    output,
		Timestamp: c.now(),
	})
}

// History returns the output history, oldest first.
func (c *Console) History() []Entry {
	out := make([]Entry, len(c.history))
	copy(out, c.history)
	return out
}

// Previous steps back through submitted commands. It reports false when
// nothing has been submitted yet.
func (c *Console) Previous() (string, bool) {
	if len(c.commands) == 0 {
		return "", false
	}
	c.index = min(c.index+1, len(c.commands)-1)
	return c.commands[c.index], true
}

// Next steps forward through submitted commands. Stepping past the newest
// one returns an empty line.
func (c *Console) Next() string {
	if c.index > 0 {
		c.index--
		return c.commands[c.index]
	}
	c.index = -1
	return ""
}

// Complete returns the first known command starting with input, or input
// unchanged when nothing matches.
func (c *Console) Complete(input string) string {
	prefix := strings.ToLower(strings.TrimSpace(input))
	if prefix == "" {
		return input
	}
	for _, word := range c.interp.Registry().Completions() {
		if strings.HasPrefix(word, prefix) {
			return word
		}
	}
	return input
}

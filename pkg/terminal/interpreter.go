package terminal

import (
	"strings"

	"github.com/charmbracelet/log"

	"tahaos/internal/logger"
	"tahaos/pkg/portfolio"
	"tahaos/pkg/settings"
)

// Usage and error messages returned as text.
const (
	themeUsage    = "Usage: theme [dark|light] or theme [d|l]"
	languageUsage = "Usage: lang [en|fr]"
	catUsage      = "Usage: cat <project-id>\nType \"projects\" to see available projects."
)

// Interpreter maps input lines to results. It holds only read-only tables
// and is safe for concurrent use.
type Interpreter struct {
	registry *Registry
	catalog  portfolio.Catalog
	log      *log.Logger
}

// NewInterpreter creates an interpreter over a command registry and the
// catalog used by cat. A nil logger discards output.
func NewInterpreter(registry *Registry, catalog portfolio.Catalog, l *log.Logger) *Interpreter {
	if l == nil {
		l = logger.Discard()
	}
	return &Interpreter{
		registry: registry,
		catalog:  catalog,
		log:      l,
	}
}

// Registry returns the command registry.
func (i *Interpreter) Registry() *Registry {
	return i.registry
}

// Interpret parses one input line and returns what the terminal should do.
// Malformed input never fails; it produces a usage or not-found message.
func (i *Interpreter) Interpret(input string) Result {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Text("")
	}

	parts := strings.Fields(trimmed)
	name := strings.ToLower(parts[0])
	args := parts[1:]

	res := i.dispatch(name, args, trimmed)
	i.log.Debug("command interpreted", "command", name, "args", len(args), "kind", res.Kind)
	return res
}

func (i *Interpreter) dispatch(name string, args []string, trimmed string) Result {
	switch {
	case name == "clear":
		return Clear()

	case name == "theme":
		if len(args) > 0 {
			if theme, err := settings.ParseTheme(args[0]); err == nil {
				return SetTheme(theme)
			}
		}
		return Text(themeUsage)

	case name == "lang" || name == "language":
		if len(args) > 0 {
			if lang, err := settings.ParseLanguage(args[0]); err == nil {
				return SetLanguage(lang)
			}
		}
		return Text(languageUsage)

	case name == "sudo" && strings.ToLower(strings.Join(args, " ")) == "hire-me":
		return Text(hireMeText)

	case name == "cat":
		return i.cat(args)
	}

	if cmd, ok := i.registry.Lookup(name, strings.ToLower(trimmed)); ok {
		return Text(cmd.Execute(args))
	}

	return Text("bash: " + name + ": command not found. Type 'help' for available commands.")
}

func (i *Interpreter) cat(args []string) Result {
	name := strings.TrimSuffix(strings.ToLower(strings.Join(args, " ")), ".md")
	if p, ok := i.catalog.FindProject(name); ok {
		return Text(projectDetail(p))
	}
	if len(args) == 0 {
		return Text(catUsage)
	}
	return Text("cat: " + strings.Join(args, " ") + ": No such file or directory")
}

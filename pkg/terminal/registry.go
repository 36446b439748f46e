package terminal

import (
	"errors"
	"fmt"
	"strings"
)

// Command is a registry entry: a name, optional aliases, and a function
// producing text output from positional arguments.
type Command struct {
	Name        string
	Description string
	// Aliases may contain spaces; a multi-word alias matches the whole
	// trimmed input line.
	Aliases []string
	Execute func(args []string) string
}

var (
	// ErrDuplicateCommand is returned when a name or alias is registered twice.
	ErrDuplicateCommand = errors.New("duplicate command")
	// ErrReservedCommand is returned when a command would be shadowed by a
	// directive the interpreter handles itself.
	ErrReservedCommand = errors.New("reserved command name")
	// ErrInvalidCommand is returned for commands without a name or function.
	ErrInvalidCommand = errors.New("invalid command")
)

// directives are recognised before the registry is consulted.
var directives = []string{"theme", "lang", "clear", "cat", "sudo"}

func isDirective(name string) bool {
	if name == "language" {
		return true
	}
	for _, d := range directives {
		if d == name {
			return true
		}
	}
	return false
}

// Registry is a read-only table of commands keyed by name and alias.
type Registry struct {
	commands []Command
	byName   map[string]int
	byAlias  map[string]int
}

// NewRegistry validates cmds and indexes them. Names and aliases are
// matched lower-case and must be unique across the registry.
func NewRegistry(cmds ...Command) (*Registry, error) {
	r := &Registry{
		commands: make([]Command, 0, len(cmds)),
		byName:   make(map[string]int, len(cmds)),
		byAlias:  make(map[string]int),
	}

	taken := func(key string) bool {
		_, n := r.byName[key]
		_, a := r.byAlias[key]
		return n || a
	}

	for _, cmd := range cmds {
		name := strings.ToLower(cmd.Name)
		if name == "" || strings.ContainsAny(name, " \t") || cmd.Execute == nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCommand, cmd.Name)
		}
		if isDirective(name) {
			return nil, fmt.Errorf("%w: %s", ErrReservedCommand, name)
		}
		if taken(name) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
		}

		idx := len(r.commands)
		r.byName[name] = idx
		for _, alias := range cmd.Aliases {
			alias = strings.ToLower(alias)
			if alias == "" || isDirective(alias) {
				return nil, fmt.Errorf("%w: alias %q of %s", ErrReservedCommand, alias, name)
			}
			if taken(alias) {
				return nil, fmt.Errorf("%w: alias %s of %s", ErrDuplicateCommand, alias, name)
			}
			r.byAlias[alias] = idx
		}
		r.commands = append(r.commands, cmd)
	}

	return r, nil
}

// MustRegistry is like NewRegistry but panics on error. It is meant for
// registries built from static tables at startup.
func MustRegistry(cmds ...Command) *Registry {
	r, err := NewRegistry(cmds...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup finds the command for name (the lower-cased first token) or for
// line (the lower-cased trimmed input). Names win over aliases, and an
// alias equal to name wins over one equal to the whole line.
func (r *Registry) Lookup(name, line string) (Command, bool) {
	if i, ok := r.byName[name]; ok {
		return r.commands[i], true
	}
	if i, ok := r.byAlias[name]; ok {
		return r.commands[i], true
	}
	if i, ok := r.byAlias[line]; ok {
		return r.commands[i], true
	}
	return Command{}, false
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Completions returns the words offered for tab completion: command names,
// then directives, then single-word aliases.
func (r *Registry) Completions() []string {
	words := make([]string, 0, len(r.commands)+len(directives)+len(r.byAlias))
	for _, cmd := range r.commands {
		words = append(words, strings.ToLower(cmd.Name))
	}
	words = append(words, directives...)
	for _, cmd := range r.commands {
		for _, alias := range cmd.Aliases {
			if !strings.Contains(alias, " ") {
				words = append(words, strings.ToLower(alias))
			}
		}
	}
	return words
}

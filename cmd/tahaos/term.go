package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"tahaos/internal/logger"
	"tahaos/pkg/desktop"
	"tahaos/pkg/i18n"
	"tahaos/pkg/terminal"
)

var (
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	welcomeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
)

// completer adapts the console's tab completion to readline.
type completer struct {
	console *terminal.Console
}

// Do implements readline.AutoCompleter. Only the first word is completed.
func (c completer) Do(line []rune, pos int) ([][]rune, int) {
	word := string(line[:pos])
	if strings.ContainsAny(word, " \t") {
		return nil, 0
	}
	completed := c.console.Complete(word)
	if completed == word || !strings.HasPrefix(completed, strings.ToLower(word)) {
		return nil, 0
	}
	return [][]rune{[]rune(completed[len(word):])}, len(word)
}

func prompt(d *desktop.Desktop) string {
	return promptStyle.Render(i18n.T(d.Settings().Language(), "terminal.prompt")) + " "
}

func (a *app) runTerm(cmd *cobra.Command, _ []string) error {
	d := a.newDesktop(false)
	out := cmd.OutOrStdout()

	if err := d.Boot(cmd.Context(), out, desktop.BootLineDelay); err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt(d),
		AutoComplete:    completer{console: d.Console()},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          out,
	})
	if err != nil {
		return fmt.Errorf("failed to start readline: %w", err)
	}
	defer rl.Close()

	screen := termenv.NewOutput(out)
	screen.ClearScreen()
	fmt.Fprintln(out, welcomeStyle.Render(i18n.T(d.Settings().Language(), "terminal.welcome")))

	logger.Info("Starting TahaOS terminal", "version", version, "session", d.ID())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		res, ok := d.Submit(line)
		if !ok {
			continue
		}
		if res.Kind == terminal.KindClear {
			screen.ClearScreen()
			continue
		}
		writeLastOutput(out, d)
		rl.SetPrompt(prompt(d))
	}
}

// writeLastOutput prints what the console recorded for the latest line.
func writeLastOutput(w io.Writer, d *desktop.Desktop) {
	history := d.Console().History()
	if len(history) == 0 {
		return
	}
	if output := history[len(history)-1].Output; output != "" {
		fmt.Fprintln(w, output)
	}
}

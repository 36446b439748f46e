package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tahaos/pkg/desktop"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	activeStyle = cellStyle.Foreground(lipgloss.Color("46"))
)

func newReplayCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Apply a scripted session and print the resulting desktop",
		Long: `Replay reads a YAML list of events (open, close, minimize, maximize,
restore, focus, drag, resize, pointer, release, input, viewport, theme,
language, wallpaper, sound, boot) and applies them to a fresh session.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := desktop.LoadScript(args[0])
			if err != nil {
				return err
			}

			d := a.newDesktop(false)
			snap, err := d.Replay(cmd.Context(), script)
			if err != nil {
				return err
			}
			return writeSnapshot(cmd.OutOrStdout(), snap, format)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "table", "Output format (table|yaml)")
	return cmd
}

func writeSnapshot(w io.Writer, snap desktop.Snapshot, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
		return enc.Close()
	case "table":
		fmt.Fprintf(w, "session %s  phase=%s  theme=%s  language=%s  wallpaper=%s  sound=%t\n",
			snap.SessionID, snap.Phase, snap.Settings.Theme, snap.Settings.Language,
			snap.Settings.WallpaperID, snap.Sound)
		fmt.Fprintln(w, windowTable(snap.Windows))
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}

func windowTable(windows []desktop.WindowState) string {
	rows := make([][]string, 0, len(windows))
	for _, w := range windows {
		state := "normal"
		switch {
		case w.Minimized:
			state = "minimized"
		case w.Maximized:
			state = "maximized"
		}
		rows = append(rows, []string{
			strconv.Itoa(w.ZIndex),
			w.ID,
			w.Title,
			fmt.Sprintf("%d,%d", w.Frame.X, w.Frame.Y),
			fmt.Sprintf("%dx%d", w.Frame.Width, w.Frame.Height),
			state,
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Z", "WINDOW", "TITLE", "POSITION", "SIZE", "STATE").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(windows) && windows[row].Active:
				return activeStyle
			}
			return cellStyle
		}).
		String()
}

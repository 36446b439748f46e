package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"tahaos/pkg/apps"
	"tahaos/pkg/i18n"
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (a *app) runApps(cmd *cobra.Command, _ []string) error {
	lang := a.cfg.Settings.Language

	var rows [][]string
	for _, d := range apps.Default().All() {
		rows = append(rows, []string{
			d.ID,
			i18n.T(lang, d.TitleKey),
			fmt.Sprintf("%dx%d", d.DefaultSize.Width, d.DefaultSize.Height),
			fmt.Sprintf("%dx%d", d.MinSize.Width, d.MinSize.Height),
			yesNo(d.ShowOnDesktop),
			yesNo(d.ShowInDock),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "SIZE", "MIN", "DESKTOP", "DOCK").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return nil
}

package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) runExec(cmd *cobra.Command, args []string) error {
	d := a.newDesktop(true)
	if _, ok := d.Submit(strings.Join(args, " ")); ok {
		writeLastOutput(cmd.OutOrStdout(), d)
	}
	return nil
}

/*
Package terminal implements the TahaOS toy terminal: a command interpreter
that maps one input line to a Result, and a Console that hosts it.

The interpreter keeps no state between calls. A handful of directives are
recognised before the command registry is searched because they act on
state the registry cannot reach: clear discards the console history, theme
and lang change preferences, and sudo hire-me is an easter egg. Everything
else is looked up by name or alias in a static Registry built at startup.

Example usage:

	reg := terminal.MustRegistry(terminal.DefaultCommands(portfolio.Default(), nil)...)
	interp := terminal.NewInterpreter(reg, portfolio.Default(), nil)

	switch res := interp.Interpret("theme light"); res.Kind {
	case terminal.KindSetTheme:
		store.SetTheme(res.Theme)
	case terminal.KindText:
		fmt.Println(res.Output)
	}
*/
package terminal

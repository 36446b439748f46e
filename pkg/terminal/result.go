package terminal

import "tahaos/pkg/settings"

// Kind identifies which variant a Result holds.
type Kind int

const (
	// KindText carries literal output to append to the history.
	KindText Kind = iota
	// KindClear asks the host to discard its output history.
	KindClear
	// KindSetTheme asks the host to switch theme.
	KindSetTheme
	// KindSetLanguage asks the host to switch display language.
	KindSetLanguage
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindClear:
		return "clear"
	case KindSetTheme:
		return "theme"
	case KindSetLanguage:
		return "language"
	default:
		return "unknown"
	}
}

// Result is the outcome of interpreting one input line. Only the field
// matching Kind is set.
type Result struct {
	Kind     Kind
	Output   string
	Theme    settings.Theme
	Language settings.Language
}

// Text returns a KindText result.
func Text(output string) Result {
	return Result{Kind: KindText, Output: output}
}

// Clear returns a KindClear result.
func Clear() Result {
	return Result{Kind: KindClear}
}

// SetTheme returns a KindSetTheme result.
func SetTheme(theme settings.Theme) Result {
	return Result{Kind: KindSetTheme, Theme: theme}
}

// SetLanguage returns a KindSetLanguage result.
func SetLanguage(lang settings.Language) Result {
	return Result{Kind: KindSetLanguage, Language: lang}
}

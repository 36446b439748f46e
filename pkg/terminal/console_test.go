package terminal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tahaos/pkg/settings"
)

type recordingPrefs struct {
	themes    []settings.Theme
	languages []settings.Language
}

func (p *recordingPrefs) SetTheme(t settings.Theme)       { p.themes = append(p.themes, t) }
func (p *recordingPrefs) SetLanguage(l settings.Language) { p.languages = append(p.languages, l) }

func newTestConsole(t *testing.T) (*Console, *recordingPrefs) {
	t.Helper()
	prefs := &recordingPrefs{}
	stamp := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return NewConsole(newTestInterpreter(t), prefs, func() time.Time { return stamp }), prefs
}

func TestConsole_SubmitText(t *testing.T) {
	c, _ := newTestConsole(t)

	res, ok := c.Submit("banana")
	require.True(t, ok)
	assert.Equal(t, KindText, res.Kind)

	history := c.History()
	require.Len(t, history, 1)
	assert.Equal(t, "banana", history[0].Input)
	assert.Equal(t, res.Output, history[0].Output)
	assert.Equal(t, 2024, history[0].Timestamp.Year())
}

func TestConsole_SubmitBlankIsIgnored(t *testing.T) {
	c, _ := newTestConsole(t)

	_, ok := c.Submit("   ")
	assert.False(t, ok)
	assert.Empty(t, c.History())

	_, ok = c.Previous()
	assert.False(t, ok)
}

func TestConsole_AppliesPreferences(t *testing.T) {
	c, prefs := newTestConsole(t)

	c.Submit("theme l")
	c.Submit("lang fr")
	c.Submit("lang en")
	c.Submit("theme neon")

	assert.Equal(t, []settings.Theme{settings.ThemeLight}, prefs.themes)
	assert.Equal(t, []settings.Language{settings.LanguageFrench, settings.LanguageEnglish}, prefs.languages)

	history := c.History()
	require.Len(t, history, 4)
	assert.Equal(t, "Theme switched to light.", history[0].Output)
	assert.Equal(t, "Language switched to Français.", history[1].Output)
	assert.Equal(t, "Language switched to English.", history[2].Output)
	assert.Equal(t, "Usage: theme [dark|light] or theme [d|l]", history[3].Output)
}

func TestConsole_Clear(t *testing.T) {
	c, _ := newTestConsole(t)

	c.Submit("help")
	c.Submit("about")
	res, _ := c.Submit("clear")

	assert.Equal(t, KindClear, res.Kind)
	assert.Empty(t, c.History())

	prev, ok := c.Previous()
	require.True(t, ok)
	assert.Equal(t, "clear", prev)
}

func TestConsole_HistoryNavigation(t *testing.T) {
	c, _ := newTestConsole(t)

	c.Submit("help")
	c.Submit("about")
	c.Submit("skills")

	steps := []string{}
	for i := 0; i < 4; i++ {
		s, ok := c.Previous()
		require.True(t, ok)
		steps = append(steps, s)
	}
	assert.Equal(t, []string{"skills", "about", "help", "help"}, steps)

	assert.Equal(t, "about", c.Next())
	assert.Equal(t, "skills", c.Next())
	assert.Equal(t, "", c.Next())
	assert.Equal(t, "", c.Next())

	c.Previous()
	c.Submit("contact")
	prev, _ := c.Previous()
	assert.Equal(t, "contact", prev)
}

func TestConsole_Complete(t *testing.T) {
	c, _ := newTestConsole(t)

	tests := []struct {
		input    string
		expected string
	}{
		{"he", "help"},
		{"c", "contact"},
		{"cl", "clear"},
		{"l", "lang"},
		{"WH", "whoami"},
		{"s", "skills"},
		{"su", "sudo"},
		{"zz", "zz"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, c.Complete(tt.input), tt.input)
	}
}

func TestConsole_NilPreferences(t *testing.T) {
	c := NewConsole(newTestInterpreter(t), nil, nil)

	res, ok := c.Submit("theme dark")
	require.True(t, ok)
	assert.Equal(t, KindSetTheme, res.Kind)

	c.Submit("lang fr")
	history := c.History()
	require.Len(t, history, 2)
	assert.Equal(t, "Theme switched to dark.", history[0].Output)
	assert.Equal(t, "Language switched to Français.", history[1].Output)
}

package desktop

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tahaos/pkg/settings"
	"tahaos/pkg/wm"
)

const tourScript = `
events:
  - type: boot
  - {type: open, app: about}
  - {type: open, app: projects}
  - {type: drag, app: about, at: {x: 400, y: 170}}
  - {type: pointer, at: {x: 450, y: 200}}
  - type: release
  - {type: resize, app: projects, edge: se, at: {x: 1120, y: 685}}
  - {type: pointer, at: {x: 1020, y: 585}}
  - {type: pointer, at: {x: 700, y: 300}}
  - type: release
  - {type: pointer, at: {x: 0, y: 0}}
  - {type: maximize, app: about}
  - {type: close, app: skills}
  - {type: input, line: "theme light"}
  - {type: input, line: "lang fr"}
  - {type: viewport, width: 1920, height: 1080}
  - type: sound
`

func TestReplay_Tour(t *testing.T) {
	d, _ := newTestDesktop(t, Options{})

	script, err := ParseScript([]byte(tourScript))
	require.NoError(t, err)
	require.Len(t, script.Events, 17)

	snap, err := d.Replay(context.Background(), script)
	require.NoError(t, err)

	assert.Equal(t, PhaseDesktop, snap.Phase)
	assert.True(t, snap.Sound)
	assert.Equal(t, settings.ThemeLight, snap.Settings.Theme)
	assert.Equal(t, settings.LanguageFrench, snap.Settings.Language)

	require.Len(t, snap.Windows, 2)

	projects := snap.Windows[0]
	assert.Equal(t, "projects", projects.AppID)
	assert.Equal(t, "Projets", projects.Title)
	assert.Equal(t, wm.Frame{X: 320, Y: 135, Width: 500, Height: 400}, projects.Frame)
	assert.Equal(t, 5, projects.ZIndex)

	about := snap.Windows[1]
	assert.Equal(t, "about", about.AppID)
	assert.Equal(t, "À propos", about.Title)
	assert.True(t, about.Maximized)
	assert.True(t, about.Active)
	assert.Equal(t, 6, about.ZIndex)
	assert.Equal(t, wm.Frame{X: 0, Y: 28, Width: 1920, Height: 1004}, about.Frame)

	w, ok := d.Windows().FindByApp("about")
	require.True(t, ok)
	assert.Equal(t, wm.Position{X: 420, Y: 190}, w.Position)
	assert.False(t, d.Windows().Interacting(w.ID))

	history := d.Console().History()
	require.Len(t, history, 2)
	assert.Equal(t, "Theme switched to light.", history[0].Output)
}

func TestReplay_EndsDanglingSession(t *testing.T) {
	d, _ := newTestDesktop(t, Options{})

	script, err := ParseScript([]byte(`
events:
  - {type: open, app: about}
  - {type: drag, app: about, at: {x: 10, y: 10}}
  - {type: resize, app: about, edge: e, at: {x: 20, y: 20}}
`))
	require.NoError(t, err)

	_, err = d.Replay(context.Background(), script)
	require.NoError(t, err)

	w, _ := d.Windows().FindByApp("about")
	assert.False(t, d.Windows().Interacting(w.ID))
}

func TestReplay_Errors(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		err    error
	}{
		{"unknown type", []Event{{Type: "teleport"}}, ErrUnknownEvent},
		{"open without app", []Event{{Type: EventOpen}}, ErrInvalidEvent},
		{"drag without pointer", []Event{{Type: EventDrag, App: "about"}}, ErrInvalidEvent},
		{"bad edge", []Event{{Type: EventResize, App: "about", Edge: "x", At: &Point{}}}, ErrInvalidEvent},
		{"pointer without position", []Event{{Type: EventPointer}}, ErrInvalidEvent},
		{"empty viewport", []Event{{Type: EventViewport}}, ErrInvalidEvent},
		{"bad theme", []Event{{Type: EventTheme, Value: "neon"}}, settings.ErrUnknownTheme},
		{"bad language", []Event{{Type: EventLanguage, Value: "de"}}, settings.ErrUnknownLanguage},
		{"bad wallpaper", []Event{{Type: EventWallpaper, Value: "nope"}}, settings.ErrUnknownWallpaper},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newTestDesktop(t, Options{})
			_, err := d.Replay(context.Background(), Script{Events: tt.events})
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), "event 0")
		})
	}
}

func TestReplay_StopsAtFirstError(t *testing.T) {
	d, _ := newTestDesktop(t, Options{})

	snap, err := d.Replay(context.Background(), Script{Events: []Event{
		{Type: EventOpen, App: "about"},
		{Type: "bogus"},
		{Type: EventOpen, App: "skills"},
	}})
	require.ErrorIs(t, err, ErrUnknownEvent)
	assert.Contains(t, err.Error(), "event 1")
	require.Len(t, snap.Windows, 1)
	assert.Equal(t, "about", snap.Windows[0].AppID)
}

func TestReplay_IgnoresClosedApps(t *testing.T) {
	d, _ := newTestDesktop(t, Options{})

	snap, err := d.Replay(context.Background(), Script{Events: []Event{
		{Type: EventOpen, App: "unknown-app"},
		{Type: EventFocus, App: "about"},
		{Type: EventMinimize, App: "about"},
		{Type: EventDrag, App: "about", At: &Point{X: 1, Y: 1}},
		{Type: EventPointer, At: &Point{X: 5, Y: 5}},
		{Type: EventRelease},
	}})
	require.NoError(t, err)
	assert.Empty(t, snap.Windows)
}

func TestReplay_ContextCancelled(t *testing.T) {
	d, _ := newTestDesktop(t, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snap, err := d.Replay(ctx, Script{Events: []Event{{Type: EventOpen, App: "about"}}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, snap.Windows)
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tour.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tourScript), 0o600))

	script, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, EventBoot, script.Events[0].Type)
	assert.Equal(t, "se", script.Events[6].Edge)

	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = ParseScript([]byte("events: {type"))
	assert.Error(t, err)
}

package desktop

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tahaos/pkg/settings"
	"tahaos/pkg/wm"
)

// ErrUnknownEvent is returned for script events with an unrecognised type.
var ErrUnknownEvent = errors.New("unknown event")

// ErrInvalidEvent is returned for events missing a required field.
var ErrInvalidEvent = errors.New("invalid event")

// Event types understood by Replay.
const (
	EventBoot      = "boot"
	EventOpen      = "open"
	EventClose     = "close"
	EventMinimize  = "minimize"
	EventMaximize  = "maximize"
	EventRestore   = "restore"
	EventFocus     = "focus"
	EventDrag      = "drag"
	EventResize    = "resize"
	EventPointer   = "pointer"
	EventRelease   = "release"
	EventInput     = "input"
	EventViewport  = "viewport"
	EventTheme     = "theme"
	EventLanguage  = "language"
	EventWallpaper = "wallpaper"
	EventSound     = "sound"
)

// Point is a pointer position in a script.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Event is one scripted user action. Windows are addressed by app id.
//
//	- {type: open, app: about}
//	- {type: drag, app: about, at: {x: 400, y: 170}}
//	- {type: pointer, at: {x: 450, y: 200}}
//	- {type: release}
//	- {type: input, line: "theme light"}
type Event struct {
	Type   string `yaml:"type"`
	App    string `yaml:"app,omitempty"`
	Edge   string `yaml:"edge,omitempty"`
	At     *Point `yaml:"at,omitempty"`
	Line   string `yaml:"line,omitempty"`
	Value  string `yaml:"value,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// Script is an ordered list of events.
type Script struct {
	Events []Event `yaml:"events"`
}

// ParseScript decodes a YAML script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("failed to parse script YAML: %w", err)
	}
	return s, nil
}

// LoadScript reads and decodes a script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data)
}

// pointerSession is the drag or resize in progress during a replay.
type pointerSession interface {
	move(wm.Position)
	End()
}

type dragStep struct{ *wm.DragSession }

func (s dragStep) move(p wm.Position) { s.Update(p) }

type resizeStep struct{ *wm.ResizeSession }

func (s resizeStep) move(p wm.Position) { s.Update(p) }

// Replay applies script in order and returns the resulting snapshot.
// Actions on windows that are not open are no-ops, as they are
// interactively. Replay stops at the first malformed event or when ctx is
// done.
func (d *Desktop) Replay(ctx context.Context, script Script) (Snapshot, error) {
	var active pointerSession
	defer func() {
		if active != nil {
			active.End()
		}
	}()

	for i, ev := range script.Events {
		if err := ctx.Err(); err != nil {
			return d.Snapshot(), err
		}
		next, err := d.apply(ev, active)
		if err != nil {
			return d.Snapshot(), fmt.Errorf("event %d (%s): %w", i, ev.Type, err)
		}
		active = next
	}

	d.log.Debug("script replayed", "events", len(script.Events))
	return d.Snapshot(), nil
}

// apply runs one event and returns the pointer session that remains active.
func (d *Desktop) apply(ev Event, active pointerSession) (pointerSession, error) {
	switch ev.Type {
	case EventBoot:
		d.FinishBoot()
	case EventOpen:
		if ev.App == "" {
			return active, fmt.Errorf("%w: app is required", ErrInvalidEvent)
		}
		d.windows.Open(ev.App)
	case EventClose, EventMinimize, EventMaximize, EventRestore, EventFocus:
		d.windowAction(ev)
	case EventDrag, EventResize:
		return d.beginPointer(ev, active)
	case EventPointer:
		if ev.At == nil {
			return active, fmt.Errorf("%w: at is required", ErrInvalidEvent)
		}
		if active != nil {
			active.move(wm.Position{X: ev.At.X, Y: ev.At.Y})
		}
	case EventRelease:
		if active != nil {
			active.End()
		}
		return nil, nil
	case EventInput:
		d.Submit(ev.Line)
	case EventViewport:
		if ev.Width <= 0 || ev.Height <= 0 {
			return active, fmt.Errorf("%w: viewport needs a positive width and height", ErrInvalidEvent)
		}
		d.windows.SetScreenSize(ev.Width, ev.Height)
	case EventTheme:
		theme, err := settings.ParseTheme(ev.Value)
		if err != nil {
			return active, err
		}
		d.settings.SetTheme(theme)
	case EventLanguage:
		lang, err := settings.ParseLanguage(ev.Value)
		if err != nil {
			return active, err
		}
		d.settings.SetLanguage(lang)
	case EventWallpaper:
		if err := d.settings.SetWallpaper(ev.Value); err != nil {
			return active, err
		}
	case EventSound:
		d.ToggleSound()
	default:
		return active, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
	return active, nil
}

func (d *Desktop) windowAction(ev Event) {
	w, ok := d.windows.FindByApp(ev.App)
	if !ok {
		d.log.Debug("event ignored, app not open", "event", ev.Type, "app", ev.App)
		return
	}
	switch ev.Type {
	case EventClose:
		d.windows.Close(w.ID)
	case EventMinimize:
		d.windows.Minimize(w.ID)
	case EventMaximize:
		d.windows.Maximize(w.ID)
	case EventRestore:
		d.windows.Restore(w.ID)
	case EventFocus:
		d.windows.Focus(w.ID)
	}
}

func (d *Desktop) beginPointer(ev Event, active pointerSession) (pointerSession, error) {
	if ev.At == nil {
		return active, fmt.Errorf("%w: at is required", ErrInvalidEvent)
	}
	if ev.Type == EventResize && !wm.Edge(ev.Edge).Valid() {
		return active, fmt.Errorf("%w: bad edge %q", ErrInvalidEvent, ev.Edge)
	}

	w, ok := d.windows.FindByApp(ev.App)
	if !ok {
		d.log.Debug("event ignored, app not open", "event", ev.Type, "app", ev.App)
		return active, nil
	}
	pointer := wm.Position{X: ev.At.X, Y: ev.At.Y}

	var next pointerSession
	if ev.Type == EventDrag {
		if s, ok := d.windows.BeginDrag(w.ID, pointer); ok {
			next = dragStep{s}
		}
	} else if s, ok := d.windows.BeginResize(w.ID, wm.Edge(ev.Edge), pointer); ok {
		next = resizeStep{s}
	}
	if next == nil {
		return active, nil
	}
	if active != nil {
		active.End()
	}
	return next, nil
}

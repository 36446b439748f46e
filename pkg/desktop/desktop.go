// Package desktop assembles one visitor session: the window manager, the
// preferences store, the terminal console and the boot and sound state
// around them.
package desktop

import (
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"tahaos/internal/logger"
	"tahaos/pkg/apps"
	"tahaos/pkg/i18n"
	"tahaos/pkg/portfolio"
	"tahaos/pkg/settings"
	"tahaos/pkg/terminal"
	"tahaos/pkg/wm"
)

// Phase is the lifecycle stage of a session.
type Phase string

const (
	PhaseBooting Phase = "booting"
	PhaseDesktop Phase = "desktop"
)

// Options configures a Desktop. Zero values take defaults.
type Options struct {
	ScreenWidth  int
	ScreenHeight int
	Settings     settings.Snapshot
	Apps         *apps.Registry
	Catalog      *portfolio.Catalog
	// SkipBoot starts the session on the desktop.
	SkipBoot bool
	Rand     func(n int) int
	Now      func() time.Time
	Logger   *log.Logger
}

// Desktop is one running session.
type Desktop struct {
	id       string
	windows  *wm.Manager
	settings *settings.Store
	console  *terminal.Console
	now      func() time.Time
	started  time.Time
	log      *log.Logger

	mu    sync.Mutex // guards phase and sound
	phase Phase
	sound bool

	// consoleMu serializes console input. Preference listeners run while it
	// is held, so it must not guard anything they read.
	consoleMu sync.Mutex
}

// New creates a session.
func New(opts Options) *Desktop {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	l := opts.Logger
	if l == nil {
		l = logger.Discard()
	}
	catalog := portfolio.Default()
	if opts.Catalog != nil {
		catalog = *opts.Catalog
	}

	d := &Desktop{
		id:       uuid.New().String(),
		settings: settings.NewStore(opts.Settings),
		now:      now,
		started:  now(),
		phase:    PhaseBooting,
	}
	d.log = l.With("session", d.id)

	d.windows = wm.NewManager(wm.Config{
		ScreenWidth:  opts.ScreenWidth,
		ScreenHeight: opts.ScreenHeight,
		Apps:         opts.Apps,
		Rand:         opts.Rand,
		Now:          now,
		Logger:       d.log.WithPrefix("wm"),
	})

	registry := terminal.MustRegistry(terminal.DefaultCommands(catalog, d.Uptime)...)
	interp := terminal.NewInterpreter(registry, catalog, d.log.WithPrefix("terminal"))
	d.console = terminal.NewConsole(interp, d.settings, now)

	if opts.SkipBoot {
		d.phase = PhaseDesktop
	}
	d.log.Debug("session started", "phase", d.phase)
	return d
}

// ID returns the session id.
func (d *Desktop) ID() string { return d.id }

// Windows returns the window manager.
func (d *Desktop) Windows() *wm.Manager { return d.windows }

// Settings returns the preferences store.
func (d *Desktop) Settings() *settings.Store { return d.settings }

// Console returns the terminal console. It is not safe for concurrent
// use; Submit serializes access.
func (d *Desktop) Console() *terminal.Console { return d.console }

// Uptime is the time since the session started.
func (d *Desktop) Uptime() time.Duration { return d.now().Sub(d.started) }

// Phase returns the current lifecycle stage.
func (d *Desktop) Phase() Phase {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.phase
}

// FinishBoot moves the session to the desktop. It reports false if the
// boot sequence had already finished.
func (d *Desktop) FinishBoot() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.phase == PhaseDesktop {
		return false
	}
	d.phase = PhaseDesktop
	d.log.Debug("boot finished")
	return true
}

// SoundEnabled reports whether sound effects are on. Sessions start muted.
func (d *Desktop) SoundEnabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sound
}

// ToggleSound flips sound effects and returns the new state.
func (d *Desktop) ToggleSound() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sound = !d.sound
	return d.sound
}

// Submit runs one terminal line.
func (d *Desktop) Submit(line string) (terminal.Result, bool) {
	d.consoleMu.Lock()
	defer d.consoleMu.Unlock()
	return d.console.Submit(line)
}

// Title returns the localized title of an app.
func (d *Desktop) Title(appID string) string {
	desc, ok := d.windows.Apps().Lookup(appID)
	if !ok {
		return appID
	}
	return i18n.T(d.settings.Language(), desc.TitleKey)
}

// WindowState is a window as it is drawn.
type WindowState struct {
	ID        string   `json:"id" yaml:"id"`
	AppID     string   `json:"app_id" yaml:"app_id"`
	Title     string   `json:"title" yaml:"title"`
	Frame     wm.Frame `json:"frame" yaml:"frame"`
	ZIndex    int      `json:"z_index" yaml:"z_index"`
	Minimized bool     `json:"minimized" yaml:"minimized"`
	Maximized bool     `json:"maximized" yaml:"maximized"`
	Active    bool     `json:"active" yaml:"active"`
}

// Snapshot is the observable state of a session.
type Snapshot struct {
	SessionID string            `json:"session_id" yaml:"session_id"`
	Phase     Phase             `json:"phase" yaml:"phase"`
	Sound     bool              `json:"sound" yaml:"sound"`
	Settings  settings.Snapshot `json:"settings" yaml:"settings"`
	Windows   []WindowState     `json:"windows" yaml:"windows"`
}

// Snapshot captures the session. Windows are ordered bottom to top;
// minimized windows keep their stored geometry.
func (d *Desktop) Snapshot() Snapshot {
	d.mu.Lock()
	phase, sound := d.phase, d.sound
	d.mu.Unlock()

	active, hasActive := d.windows.ActiveWindow()
	windows := d.windows.Windows()
	sort.Slice(windows, func(i, j int) bool { return windows[i].ZIndex < windows[j].ZIndex })

	states := make([]WindowState, 0, len(windows))
	for _, w := range windows {
		frame, ok := d.windows.RenderFrame(w.ID)
		if !ok {
			frame = w.Frame()
		}
		states = append(states, WindowState{
			ID:        w.ID,
			AppID:     w.AppID,
			Title:     d.Title(w.AppID),
			Frame:     frame,
			ZIndex:    w.ZIndex,
			Minimized: w.Minimized,
			Maximized: w.Maximized,
			Active:    hasActive && active.ID == w.ID,
		})
	}

	return Snapshot{
		SessionID: d.id,
		Phase:     phase,
		Sound:     sound,
		Settings:  d.settings.Snapshot(),
		Windows:   states,
	}
}

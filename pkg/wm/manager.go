package wm

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"tahaos/internal/logger"
	"tahaos/pkg/apps"
)

// Listener is called with a snapshot of all windows after every change.
type Listener func([]Window)

// Manager manages the open windows of one desktop.
type Manager struct {
	mu           sync.RWMutex
	apps         *apps.Registry
	windows      []*Window
	zCounter     int
	screenWidth  int
	screenHeight int
	rand         func(n int) int
	now          func() time.Time
	log          *log.Logger
	listeners    map[int]Listener
	nextListener int
	sessions     map[string]session
}

// Config holds configuration for the window manager.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	// Apps is the descriptor registry; defaults to apps.Default().
	Apps *apps.Registry
	// Rand returns an int in [0, n); defaults to math/rand.
	Rand func(n int) int
	// Now stamps window ids; defaults to time.Now.
	Now    func() time.Time
	Logger *log.Logger
}

// NewManager creates a new window manager with the given configuration.
func NewManager(cfg Config) *Manager {
	m := &Manager{
		apps:         cfg.Apps,
		zCounter:     1,
		screenWidth:  cfg.ScreenWidth,
		screenHeight: cfg.ScreenHeight,
		rand:         cfg.Rand,
		now:          cfg.Now,
		log:          cfg.Logger,
		listeners:    make(map[int]Listener),
		sessions:     make(map[string]session),
	}
	if m.apps == nil {
		m.apps = apps.Default()
	}
	if m.rand == nil {
		m.rand = rand.Intn
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.log == nil {
		m.log = logger.Discard()
	}
	return m
}

// Apps returns the descriptor registry the manager reads from.
func (m *Manager) Apps() *apps.Registry {
	return m.apps
}

// Open opens appID. If the app already has a window it is restored when
// minimized and then focused, and no new window is created. Unknown apps
// are ignored and reported with ok == false.
func (m *Manager) Open(appID string) (Window, bool) {
	m.mu.Lock()

	if existing := m.findByApp(appID); existing != nil {
		if existing.Minimized {
			existing.Minimized = false
			m.raise(existing)
		}
		m.raise(existing)
		win := *existing
		m.log.Debug("window refocused", "window", win.ID, "app", appID, "z", win.ZIndex)
		m.commit()
		return win, true
	}

	desc, ok := m.apps.Lookup(appID)
	if !ok {
		m.mu.Unlock()
		m.log.Debug("open ignored, unknown app", "app", appID)
		return Window{}, false
	}

	win := &Window{
		ID:       fmt.Sprintf("%s-%d", appID, m.now().UnixMilli()),
		AppID:    appID,
		Position: m.centeredPosition(desc.DefaultSize),
		Size:     desc.DefaultSize,
	}
	m.raise(win)
	m.windows = append(m.windows, win)

	opened := *win
	m.log.Debug("window opened", "window", opened.ID, "app", appID, "z", opened.ZIndex)
	m.commit()
	return opened, true
}

// centeredPosition centres size on the screen with a small random offset
// so successive windows do not stack exactly. Must hold m.mu.
func (m *Manager) centeredPosition(size Size) Position {
	if m.screenWidth <= 0 || m.screenHeight <= 0 {
		return FallbackPosition
	}

	offsetX := m.rand(JitterRange) - JitterRange/2
	offsetY := m.rand(JitterRange) - JitterRange/2

	return Position{
		X: max(0, (m.screenWidth-size.Width)/2+offsetX),
		Y: max(0, (m.screenHeight-size.Height)/2+offsetY-VerticalBias),
	}
}

// Close removes a window. It reports false if id is unknown.
func (m *Manager) Close(id string) bool {
	m.mu.Lock()

	for i, w := range m.windows {
		if w.ID == id {
			m.windows = append(m.windows[:i], m.windows[i+1:]...)
			delete(m.sessions, id)
			m.log.Debug("window closed", "window", id)
			m.commit()
			return true
		}
	}

	m.mu.Unlock()
	return false
}

// Minimize hides a window without closing it.
func (m *Manager) Minimize(id string) bool {
	return m.mutate(id, func(w *Window) {
		w.Minimized = true
	})
}

// Maximize toggles the maximized flag and raises the window.
func (m *Manager) Maximize(id string) bool {
	return m.mutate(id, func(w *Window) {
		w.Maximized = !w.Maximized
		m.raise(w)
	})
}

// Restore clears the minimized flag and raises the window.
func (m *Manager) Restore(id string) bool {
	return m.mutate(id, func(w *Window) {
		w.Minimized = false
		m.raise(w)
	})
}

// Focus brings a window to the front without touching its geometry or flags.
func (m *Manager) Focus(id string) bool {
	return m.mutate(id, m.raise)
}

// Move replaces a window's position.
func (m *Manager) Move(id string, pos Position) bool {
	return m.mutate(id, func(w *Window) {
		w.Position = pos
	})
}

// Resize replaces a window's size. Callers enforce the app's minimum size.
func (m *Manager) Resize(id string, size Size) bool {
	return m.mutate(id, func(w *Window) {
		w.Size = size
	})
}

// ActiveWindow returns the visible window with the highest z-index.
func (m *Manager) ActiveWindow() (Window, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var active *Window
	for _, w := range m.windows {
		if w.Minimized {
			continue
		}
		if active == nil || w.ZIndex > active.ZIndex {
			active = w
		}
	}
	if active == nil {
		return Window{}, false
	}
	return *active, true
}

// Windows returns a snapshot of all windows in the order they were opened.
func (m *Manager) Windows() []Window {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot()
}

// Stacked returns the visible windows ordered back to front.
func (m *Manager) Stacked() []Window {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Window, 0, len(m.windows))
	for _, w := range m.windows {
		if !w.Minimized {
			out = append(out, *w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ZIndex < out[j].ZIndex })
	return out
}

// Get returns a window by ID.
func (m *Manager) Get(id string) (Window, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	w := m.find(id)
	if w == nil {
		return Window{}, ErrWindowNotFound
	}
	return *w, nil
}

// FindByApp returns the window showing appID, if any.
func (m *Manager) FindByApp(appID string) (Window, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	w := m.findByApp(appID)
	if w == nil {
		return Window{}, false
	}
	return *w, true
}

// IsOpen reports whether appID has a window, minimized or not. The dock
// uses it for its running indicator.
func (m *Manager) IsOpen(appID string) bool {
	_, ok := m.FindByApp(appID)
	return ok
}

// RenderFrame returns where a window is drawn. Maximized windows fill the
// area between the top bar and the dock. Minimized windows are not drawn
// and report false.
func (m *Manager) RenderFrame(id string) (Frame, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	w := m.find(id)
	if w == nil || w.Minimized {
		return Frame{}, false
	}
	return m.renderFrame(w), true
}

func (m *Manager) renderFrame(w *Window) Frame {
	if !w.Maximized {
		return w.Frame()
	}
	return Frame{
		X:      0,
		Y:      MenuBarHeight,
		Width:  m.screenWidth,
		Height: max(0, m.screenHeight-ChromeHeight),
	}
}

// WindowAt returns the topmost visible window drawn at (x, y).
func (m *Manager) WindowAt(x, y int) (Window, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var hit *Window
	for _, w := range m.windows {
		if w.Minimized || !m.renderFrame(w).Contains(x, y) {
			continue
		}
		if hit == nil || w.ZIndex > hit.ZIndex {
			hit = w
		}
	}
	if hit == nil {
		return Window{}, false
	}
	return *hit, true
}

// SetScreenSize sets the viewport dimensions used for placement and
// maximized geometry.
func (m *Manager) SetScreenSize(width, height int) {
	m.mu.Lock()
	m.screenWidth = width
	m.screenHeight = height
	m.commit()
}

// ScreenSize returns the viewport dimensions.
func (m *Manager) ScreenSize() (int, int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.screenWidth, m.screenHeight
}

// Subscribe registers l and returns a function that removes it. Listeners
// run synchronously after each change, outside the manager's lock.
func (m *Manager) Subscribe(l Listener) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextListener
	m.nextListener++
	m.listeners[id] = l

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.listeners, id)
	}
}

// mutate applies fn to the window with the given id and notifies listeners.
func (m *Manager) mutate(id string, fn func(*Window)) bool {
	m.mu.Lock()

	w := m.find(id)
	if w == nil {
		m.mu.Unlock()
		return false
	}
	fn(w)
	m.commit()
	return true
}

// commit snapshots state, releases m.mu and notifies listeners.
// Must be called with m.mu held.
func (m *Manager) commit() {
	snap := m.snapshot()
	listeners := make([]Listener, 0, len(m.listeners))
	for _, l := range m.listeners {
		listeners = append(listeners, l)
	}
	m.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}

// raise moves w to the front. Must hold m.mu.
func (m *Manager) raise(w *Window) {
	m.zCounter++
	w.ZIndex = m.zCounter
}

func (m *Manager) find(id string) *Window {
	for _, w := range m.windows {
		if w.ID == id {
			return w
		}
	}
	return nil
}

func (m *Manager) findByApp(appID string) *Window {
	for _, w := range m.windows {
		if w.AppID == appID {
			return w
		}
	}
	return nil
}

func (m *Manager) snapshot() []Window {
	out := make([]Window, len(m.windows))
	for i, w := range m.windows {
		out[i] = *w
	}
	return out
}

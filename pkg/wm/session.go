package wm

import "strings"

// Edge names the side or corner a resize handle sits on.
type Edge string

// Resize handles.
const (
	EdgeNorth     Edge = "n"
	EdgeSouth     Edge = "s"
	EdgeEast      Edge = "e"
	EdgeWest      Edge = "w"
	EdgeNorthEast Edge = "ne"
	EdgeNorthWest Edge = "nw"
	EdgeSouthEast Edge = "se"
	EdgeSouthWest Edge = "sw"
)

// Valid reports whether e is one of the eight resize handles.
func (e Edge) Valid() bool {
	switch e {
	case EdgeNorth, EdgeSouth, EdgeEast, EdgeWest,
		EdgeNorthEast, EdgeNorthWest, EdgeSouthEast, EdgeSouthWest:
		return true
	}
	return false
}

func (e Edge) has(side string) bool {
	return strings.Contains(string(e), side)
}

// session is an in-progress drag or resize on one window.
type session interface {
	target() string
	// accepts reports whether the window can still be changed by the session.
	accepts(w *Window) bool
}

// DragSession moves a window with the pointer. Positions are computed from
// the pointer delta against the geometry captured when the drag began.
type DragSession struct {
	m            *Manager
	windowID     string
	startPointer Position
	startPos     Position
}

func (s *DragSession) target() string { return s.windowID }

func (s *DragSession) accepts(w *Window) bool { return !w.Minimized }

// BeginDrag starts dragging a window from pointer and focuses it. Any other
// session on the same window ends. Minimized windows cannot be dragged.
func (m *Manager) BeginDrag(id string, pointer Position) (*DragSession, bool) {
	m.mu.Lock()

	w := m.find(id)
	if w == nil || w.Minimized {
		m.mu.Unlock()
		return nil, false
	}

	s := &DragSession{
		m:            m,
		windowID:     id,
		startPointer: pointer,
		startPos:     w.Position,
	}
	m.sessions[id] = s
	m.raise(w)
	m.log.Debug("drag started", "window", id, "z", w.ZIndex)
	m.commit()
	return s, true
}

// Update moves the window to follow pointer, clamped to non-negative
// coordinates. It reports false once the session has ended.
func (s *DragSession) Update(pointer Position) (Position, bool) {
	pos := Position{
		X: max(0, s.startPos.X+pointer.X-s.startPointer.X),
		Y: max(0, s.startPos.Y+pointer.Y-s.startPointer.Y),
	}
	if !s.m.apply(s, func(w *Window) { w.Position = pos }) {
		return Position{}, false
	}
	return pos, true
}

// End terminates the drag. The last position is kept.
func (s *DragSession) End() {
	s.m.endSession(s)
}

// Active reports whether the session still controls its window.
func (s *DragSession) Active() bool {
	return s.m.isActive(s)
}

// ResizeSession resizes a window from one of its edges. Geometry is computed
// from the pointer delta against the snapshot taken when the resize began.
type ResizeSession struct {
	m            *Manager
	windowID     string
	edge         Edge
	minSize      Size
	startPointer Position
	startPos     Position
	startSize    Size
}

func (s *ResizeSession) target() string { return s.windowID }

func (s *ResizeSession) accepts(w *Window) bool { return !w.Minimized && !w.Maximized }

// BeginResize starts resizing a window from edge and focuses it. Maximized
// and minimized windows have no resize handles and cannot be resized.
func (m *Manager) BeginResize(id string, edge Edge, pointer Position) (*ResizeSession, bool) {
	if !edge.Valid() {
		return nil, false
	}

	m.mu.Lock()

	w := m.find(id)
	if w == nil || w.Minimized || w.Maximized {
		m.mu.Unlock()
		return nil, false
	}

	minSize := FallbackMinSize
	if desc, ok := m.apps.Lookup(w.AppID); ok {
		minSize = desc.MinSize
	}

	s := &ResizeSession{
		m:            m,
		windowID:     id,
		edge:         edge,
		minSize:      minSize,
		startPointer: pointer,
		startPos:     w.Position,
		startSize:    w.Size,
	}
	m.sessions[id] = s
	m.raise(w)
	m.log.Debug("resize started", "window", id, "edge", edge, "z", w.ZIndex)
	m.commit()
	return s, true
}

// Update resizes the window for the current pointer. Width and height never
// drop below the app's minimum; dragging a west or north edge also shifts
// the window while the dimension is above its minimum.
func (s *ResizeSession) Update(pointer Position) (Frame, bool) {
	dx := pointer.X - s.startPointer.X
	dy := pointer.Y - s.startPointer.Y

	size := s.startSize
	pos := s.startPos

	if s.edge.has("e") {
		size.Width = max(s.minSize.Width, s.startSize.Width+dx)
	}
	if s.edge.has("s") {
		size.Height = max(s.minSize.Height, s.startSize.Height+dy)
	}
	if s.edge.has("w") {
		size.Width = max(s.minSize.Width, s.startSize.Width-dx)
		if size.Width > s.minSize.Width {
			pos.X = s.startPos.X + dx
		}
	}
	if s.edge.has("n") {
		size.Height = max(s.minSize.Height, s.startSize.Height-dy)
		if size.Height > s.minSize.Height {
			pos.Y = s.startPos.Y + dy
		}
	}

	if !s.m.apply(s, func(w *Window) {
		w.Size = size
		w.Position = pos
	}) {
		return Frame{}, false
	}
	return Frame{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}, true
}

// End terminates the resize. The last geometry is kept.
func (s *ResizeSession) End() {
	s.m.endSession(s)
}

// Active reports whether the session still controls its window.
func (s *ResizeSession) Active() bool {
	return s.m.isActive(s)
}

// Interacting reports whether a drag or resize is in progress on id.
func (m *Manager) Interacting(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sessions[id]
	return ok
}

// apply runs fn on the session's window if s is still its active session.
// A session whose window was minimized, or maximized during a resize, ends.
func (m *Manager) apply(s session, fn func(*Window)) bool {
	m.mu.Lock()

	id := s.target()
	w := m.find(id)
	if w == nil || m.sessions[id] != s {
		m.mu.Unlock()
		return false
	}
	if !s.accepts(w) {
		delete(m.sessions, id)
		m.mu.Unlock()
		m.log.Debug("session ended, window state changed", "window", id)
		return false
	}
	fn(w)
	m.commit()
	return true
}

func (m *Manager) endSession(s session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sessions[s.target()] == s {
		delete(m.sessions, s.target())
	}
}

func (m *Manager) isActive(s session) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[s.target()] == s
}

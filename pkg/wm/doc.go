/*
Package wm provides window management for the TahaOS desktop.

The Manager owns every open window, its geometry, its stacking order and its
minimized/maximized flags. Rendering code reads snapshots from the manager
and requests changes through its methods; it never mutates a Window
directly. At most one window exists per application: opening an app that is
already open restores and focuses the existing window.

Stacking order comes from a single counter shared by every operation that
raises a window (open, focus, restore, maximize toggle), so the most recently
raised window always has the strictly highest z-index.

Drag and resize gestures are modelled as short-lived sessions that capture
the starting geometry and compute each update from the pointer delta against
that snapshot.

Example usage:

	manager := wm.NewManager(wm.Config{ScreenWidth: 1440, ScreenHeight: 900})
	win, ok := manager.Open(apps.Terminal)
	if !ok {
		// unknown app
	}
	drag, _ := manager.BeginDrag(win.ID, wm.Position{X: 420, Y: 200})
	drag.Update(wm.Position{X: 460, Y: 230})
	drag.End()
*/
package wm

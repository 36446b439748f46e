package wm

import (
	"errors"

	"tahaos/pkg/apps"
)

// Position is a point on the desktop in pixels.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Size is a width/height pair in pixels.
type Size = apps.Size

// Frame represents the position and dimensions of a window.
type Frame struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Contains checks if a point is within the frame.
func (f Frame) Contains(x, y int) bool {
	return x >= f.X && x <= f.X+f.Width &&
		y >= f.Y && y <= f.Y+f.Height
}

// Window is one open application instance.
type Window struct {
	ID        string   `json:"id" yaml:"id"`
	AppID     string   `json:"app_id" yaml:"app_id"`
	Position  Position `json:"position" yaml:"position"`
	Size      Size     `json:"size" yaml:"size"`
	Minimized bool     `json:"minimized" yaml:"minimized"`
	Maximized bool     `json:"maximized" yaml:"maximized"`
	ZIndex    int      `json:"z_index" yaml:"z_index"`
}

// Frame returns the window's at-rest geometry.
func (w Window) Frame() Frame {
	return Frame{
		X:      w.Position.X,
		Y:      w.Position.Y,
		Width:  w.Size.Width,
		Height: w.Size.Height,
	}
}

// ErrWindowNotFound is returned when a window is not found.
var ErrWindowNotFound = errors.New("window not found")

// Desktop chrome dimensions used to place maximized windows.
const (
	// MenuBarHeight is the height of the top bar a maximized window sits under.
	MenuBarHeight = 28
	// ChromeHeight is the vertical space reserved for the top bar and the dock.
	ChromeHeight = 76
)

// Placement constants for newly opened windows.
const (
	// JitterRange is the width of the random offset applied on each axis.
	JitterRange = 40
	// VerticalBias shifts new windows up to leave room for the dock.
	VerticalBias = 40
)

// FallbackPosition is used when the screen size is unknown.
var FallbackPosition = Position{X: 100, Y: 100}

// FallbackMinSize is the resize floor for windows whose app is unknown.
var FallbackMinSize = Size{Width: 300, Height: 200}

// Package apps describes the applications that can be opened on the
// desktop. The registry is read-only once built; the window manager reads
// default and minimum sizes from it when a window is opened or resized.
package apps

import (
	"errors"
	"fmt"
)

// Size is a width/height pair in pixels.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Descriptor is the static description of one application.
type Descriptor struct {
	ID            string `json:"id" yaml:"id"`
	TitleKey      string `json:"title_key" yaml:"title_key"`
	Icon          string `json:"icon" yaml:"icon"`
	DefaultSize   Size   `json:"default_size" yaml:"default_size"`
	MinSize       Size   `json:"min_size" yaml:"min_size"`
	ShowOnDesktop bool   `json:"show_on_desktop" yaml:"show_on_desktop"`
	ShowInDock    bool   `json:"show_in_dock" yaml:"show_in_dock"`
}

// Built-in application ids.
const (
	About        = "about"
	Projects     = "projects"
	Skills       = "skills"
	Certificates = "certificates"
	Education    = "education"
	Contact      = "contact"
	Terminal     = "terminal"
	Settings     = "settings"
)

// ErrDuplicateApp is returned when two descriptors share an id.
var ErrDuplicateApp = errors.New("duplicate app id")

// ErrInvalidDescriptor is returned for descriptors with an empty id or
// a default size smaller than the minimum size.
var ErrInvalidDescriptor = errors.New("invalid app descriptor")

// Registry is an ordered, immutable set of descriptors.
type Registry struct {
	ordered []Descriptor
	byID    map[string]int
}

// NewRegistry validates descs and builds a registry preserving their order.
func NewRegistry(descs ...Descriptor) (*Registry, error) {
	r := &Registry{
		ordered: make([]Descriptor, 0, len(descs)),
		byID:    make(map[string]int, len(descs)),
	}
	for _, d := range descs {
		if d.ID == "" {
			return nil, fmt.Errorf("%w: empty id", ErrInvalidDescriptor)
		}
		if d.DefaultSize.Width < d.MinSize.Width || d.DefaultSize.Height < d.MinSize.Height {
			return nil, fmt.Errorf("%w: %s default size below minimum", ErrInvalidDescriptor, d.ID)
		}
		if _, exists := r.byID[d.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateApp, d.ID)
		}
		r.byID[d.ID] = len(r.ordered)
		r.ordered = append(r.ordered, d)
	}
	return r, nil
}

// Lookup returns the descriptor for id.
func (r *Registry) Lookup(id string) (Descriptor, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Descriptor{}, false
	}
	return r.ordered[i], true
}

// All returns every descriptor in registration order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Desktop returns the descriptors shown as desktop icons.
func (r *Registry) Desktop() []Descriptor {
	return r.filter(func(d Descriptor) bool { return d.ShowOnDesktop })
}

// Dock returns the descriptors shown in the dock.
func (r *Registry) Dock() []Descriptor {
	return r.filter(func(d Descriptor) bool { return d.ShowInDock })
}

// IDs returns the application ids in order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.ordered))
	for i, d := range r.ordered {
		ids[i] = d.ID
	}
	return ids
}

func (r *Registry) filter(keep func(Descriptor) bool) []Descriptor {
	var out []Descriptor
	for _, d := range r.ordered {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

var defaultRegistry = mustRegistry(
	Descriptor{ID: About, TitleKey: "apps.about.title", Icon: "/icons/about.svg",
		DefaultSize: Size{700, 500}, MinSize: Size{400, 300}, ShowOnDesktop: true, ShowInDock: true},
	Descriptor{ID: Projects, TitleKey: "apps.projects.title", Icon: "/icons/projects.svg",
		DefaultSize: Size{800, 550}, MinSize: Size{500, 400}, ShowOnDesktop: true, ShowInDock: true},
	Descriptor{ID: Skills, TitleKey: "apps.skills.title", Icon: "/icons/skills.svg",
		DefaultSize: Size{650, 500}, MinSize: Size{400, 300}, ShowOnDesktop: true, ShowInDock: true},
	Descriptor{ID: Certificates, TitleKey: "apps.certificates.title", Icon: "/icons/certificates.svg",
		DefaultSize: Size{750, 550}, MinSize: Size{450, 350}, ShowOnDesktop: true, ShowInDock: true},
	Descriptor{ID: Education, TitleKey: "apps.education.title", Icon: "/icons/education.svg",
		DefaultSize: Size{650, 500}, MinSize: Size{400, 350}, ShowOnDesktop: true, ShowInDock: true},
	Descriptor{ID: Contact, TitleKey: "apps.contact.title", Icon: "/icons/contact.svg",
		DefaultSize: Size{500, 450}, MinSize: Size{350, 300}, ShowOnDesktop: true, ShowInDock: true},
	Descriptor{ID: Terminal, TitleKey: "apps.terminal.title", Icon: "/icons/terminal.svg",
		DefaultSize: Size{700, 450}, MinSize: Size{400, 250}, ShowOnDesktop: true, ShowInDock: true},
	Descriptor{ID: Settings, TitleKey: "apps.settings.title", Icon: "/icons/settings.svg",
		DefaultSize: Size{550, 450}, MinSize: Size{350, 300}, ShowOnDesktop: false, ShowInDock: true},
)

// Default returns the built-in application registry.
func Default() *Registry {
	return defaultRegistry
}

func mustRegistry(descs ...Descriptor) *Registry {
	r, err := NewRegistry(descs...)
	if err != nil {
		panic(err)
	}
	return r
}

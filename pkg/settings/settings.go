// Package settings holds the user's display preferences: theme, language
// and wallpaper. A Store is owned by the desktop context and shared by
// reference with anything that needs to read or change preferences.
package settings

import (
	"errors"
	"strings"
	"sync"
)

// Theme is the colour scheme of the desktop.
type Theme string

const (
	// ThemeDark is the default dark theme.
	ThemeDark Theme = "dark"
	// ThemeLight is the light theme.
	ThemeLight Theme = "light"
)

// Language is the display language of the UI.
type Language string

const (
	// LanguageEnglish is English.
	LanguageEnglish Language = "en"
	// LanguageFrench is French.
	LanguageFrench Language = "fr"
)

// DisplayName returns the language name as written in that language.
func (l Language) DisplayName() string {
	if l == LanguageFrench {
		return "Français"
	}
	return "English"
}

// Wallpaper is a selectable desktop background.
type Wallpaper struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// Wallpapers lists the available backgrounds.
var Wallpapers = []Wallpaper{
	{ID: "gradient-dark", Name: "Dark Gradient", Path: "/wallpapers/gradient-dark.svg"},
	{ID: "gradient-light", Name: "Light Gradient", Path: "/wallpapers/gradient-light.svg"},
	{ID: "abstract-geo", Name: "Geometric", Path: "/wallpapers/abstract-geo.svg"},
	{ID: "minimal-dots", Name: "Minimal", Path: "/wallpapers/minimal-dots.svg"},
}

// DefaultWallpaperID is the wallpaper selected on a fresh session.
const DefaultWallpaperID = "gradient-dark"

var (
	// ErrUnknownTheme is returned when a theme name cannot be parsed.
	ErrUnknownTheme = errors.New("unknown theme")
	// ErrUnknownLanguage is returned when a language code cannot be parsed.
	ErrUnknownLanguage = errors.New("unknown language")
	// ErrUnknownWallpaper is returned when a wallpaper id is not in Wallpapers.
	ErrUnknownWallpaper = errors.New("unknown wallpaper")
)

// ParseTheme accepts "dark"/"d" and "light"/"l", case-insensitively.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark", "d":
		return ThemeDark, nil
	case "light", "l":
		return ThemeLight, nil
	}
	return "", ErrUnknownTheme
}

// ParseLanguage accepts "en"/"english" and "fr"/"french"/"français".
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en", "english":
		return LanguageEnglish, nil
	case "fr", "french", "français":
		return LanguageFrench, nil
	}
	return "", ErrUnknownLanguage
}

// LookupWallpaper returns the wallpaper with the given id.
func LookupWallpaper(id string) (Wallpaper, bool) {
	for _, w := range Wallpapers {
		if w.ID == id {
			return w, true
		}
	}
	return Wallpaper{}, false
}

// Snapshot is a point-in-time copy of the preferences.
type Snapshot struct {
	Theme       Theme    `json:"theme" yaml:"theme"`
	Language    Language `json:"language" yaml:"language"`
	WallpaperID string   `json:"wallpaper_id" yaml:"wallpaper_id"`
}

// Defaults returns the preferences of a fresh session.
func Defaults() Snapshot {
	return Snapshot{
		Theme:       ThemeDark,
		Language:    LanguageEnglish,
		WallpaperID: DefaultWallpaperID,
	}
}

// Listener is notified with the new preferences after every change.
type Listener func(Snapshot)

// Store holds the current preferences.
type Store struct {
	mu        sync.RWMutex
	current   Snapshot
	listeners map[int]Listener
	nextID    int
}

// NewStore creates a store seeded with initial. Empty fields take defaults.
func NewStore(initial Snapshot) *Store {
	def := Defaults()
	if initial.Theme == "" {
		initial.Theme = def.Theme
	}
	if initial.Language == "" {
		initial.Language = def.Language
	}
	if initial.WallpaperID == "" {
		initial.WallpaperID = def.WallpaperID
	}
	return &Store{
		current:   initial,
		listeners: make(map[int]Listener),
	}
}

// Snapshot returns the current preferences.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Theme returns the current theme.
func (s *Store) Theme() Theme {
	return s.Snapshot().Theme
}

// Language returns the current language.
func (s *Store) Language() Language {
	return s.Snapshot().Language
}

// SetTheme sets the theme.
func (s *Store) SetTheme(theme Theme) {
	s.update(func(c *Snapshot) { c.Theme = theme })
}

// ToggleTheme switches between dark and light.
func (s *Store) ToggleTheme() {
	s.update(func(c *Snapshot) {
		if c.Theme == ThemeDark {
			c.Theme = ThemeLight
		} else {
			c.Theme = ThemeDark
		}
	})
}

// SetLanguage sets the display language.
func (s *Store) SetLanguage(lang Language) {
	s.update(func(c *Snapshot) { c.Language = lang })
}

// ToggleLanguage switches between English and French, as the taskbar does.
func (s *Store) ToggleLanguage() {
	s.update(func(c *Snapshot) {
		if c.Language == LanguageEnglish {
			c.Language = LanguageFrench
		} else {
			c.Language = LanguageEnglish
		}
	})
}

// SetWallpaper selects a wallpaper by id.
func (s *Store) SetWallpaper(id string) error {
	if _, ok := LookupWallpaper(id); !ok {
		return ErrUnknownWallpaper
	}
	s.update(func(c *Snapshot) { c.WallpaperID = id })
	return nil
}

// Subscribe registers a listener and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) update(fn func(*Snapshot)) {
	s.mu.Lock()
	fn(&s.current)
	snap := s.current
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}

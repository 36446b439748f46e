package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_Defaults(t *testing.T) {
	s := NewStore(Snapshot{})

	assert.Equal(t, Defaults(), s.Snapshot())
	assert.Equal(t, ThemeDark, s.Theme())
	assert.Equal(t, LanguageEnglish, s.Language())
}

func TestNewStore_KeepsInitialValues(t *testing.T) {
	s := NewStore(Snapshot{Theme: ThemeLight, Language: LanguageFrench})

	snap := s.Snapshot()
	assert.Equal(t, ThemeLight, snap.Theme)
	assert.Equal(t, LanguageFrench, snap.Language)
	assert.Equal(t, DefaultWallpaperID, snap.WallpaperID)
}

func TestStore_ToggleTheme(t *testing.T) {
	s := NewStore(Snapshot{})

	s.ToggleTheme()
	assert.Equal(t, ThemeLight, s.Theme())

	s.ToggleTheme()
	assert.Equal(t, ThemeDark, s.Theme())
}

func TestStore_ToggleLanguage(t *testing.T) {
	s := NewStore(Snapshot{})

	s.ToggleLanguage()
	assert.Equal(t, LanguageFrench, s.Language())

	s.ToggleLanguage()
	assert.Equal(t, LanguageEnglish, s.Language())
}

func TestStore_SetWallpaper(t *testing.T) {
	s := NewStore(Snapshot{})

	require.NoError(t, s.SetWallpaper("minimal-dots"))
	assert.Equal(t, "minimal-dots", s.Snapshot().WallpaperID)

	err := s.SetWallpaper("nope")
	assert.ErrorIs(t, err, ErrUnknownWallpaper)
	assert.Equal(t, "minimal-dots", s.Snapshot().WallpaperID)
}

func TestStore_Subscribe(t *testing.T) {
	s := NewStore(Snapshot{})

	var got []Snapshot
	unsubscribe := s.Subscribe(func(snap Snapshot) {
		got = append(got, snap)
	})

	s.SetTheme(ThemeLight)
	s.SetLanguage(LanguageFrench)
	unsubscribe()
	s.SetTheme(ThemeDark)

	require.Len(t, got, 2)
	assert.Equal(t, ThemeLight, got[0].Theme)
	assert.Equal(t, LanguageFrench, got[1].Language)
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		input    string
		expected Theme
		wantErr  bool
	}{
		{"dark", ThemeDark, false},
		{"D", ThemeDark, false},
		{"light", ThemeLight, false},
		{"l", ThemeLight, false},
		{"neon", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			theme, err := ParseTheme(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownTheme)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, theme)
		})
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input    string
		expected Language
		wantErr  bool
	}{
		{"en", LanguageEnglish, false},
		{"English", LanguageEnglish, false},
		{"fr", LanguageFrench, false},
		{"french", LanguageFrench, false},
		{"français", LanguageFrench, false},
		{"de", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lang, err := ParseLanguage(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownLanguage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, lang)
		})
	}
}

func TestLanguage_DisplayName(t *testing.T) {
	assert.Equal(t, "English", LanguageEnglish.DisplayName())
	assert.Equal(t, "Français", LanguageFrench.DisplayName())
}

// Package config loads TahaOS runtime configuration from defaults, an
// optional tahaos.yaml file, a .env file and TAHAOS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"tahaos/pkg/settings"
)

// Keys understood by Load. Flags bound with viper.BindPFlag must use these.
const (
	KeyScreenWidth  = "screen.width"
	KeyScreenHeight = "screen.height"
	KeyTheme        = "theme"
	KeyLanguage     = "language"
	KeyWallpaper    = "wallpaper"
	KeyLogLevel     = "log-level"
	KeyLogFile      = "log-file"
	KeySkipBoot     = "skip-boot"
)

// Config is the resolved runtime configuration.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	Settings     settings.Snapshot
	LogLevel     string
	LogFile      string
	SkipBoot     bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyScreenWidth, 1440)
	v.SetDefault(KeyScreenHeight, 900)
	v.SetDefault(KeyTheme, string(settings.ThemeDark))
	v.SetDefault(KeyLanguage, string(settings.LanguageEnglish))
	v.SetDefault(KeyWallpaper, settings.DefaultWallpaperID)
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeySkipBoot, false)
}

// Load resolves the configuration. envFile and configFile are optional;
// a missing default .env or tahaos.yaml is not an error.
func Load(v *viper.Viper, envFile, configFile string) (*Config, error) {
	if err := loadEnv(envFile); err != nil {
		return nil, err
	}

	SetDefaults(v)
	v.SetEnvPrefix("TAHAOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("tahaos")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	return fromViper(v)
}

func loadEnv(envFile string) error {
	if envFile == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}
	return nil
}

func fromViper(v *viper.Viper) (*Config, error) {
	theme, err := settings.ParseTheme(v.GetString(KeyTheme))
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", KeyTheme, v.GetString(KeyTheme), err)
	}
	lang, err := settings.ParseLanguage(v.GetString(KeyLanguage))
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", KeyLanguage, v.GetString(KeyLanguage), err)
	}
	wallpaper := v.GetString(KeyWallpaper)
	if _, ok := settings.LookupWallpaper(wallpaper); !ok {
		return nil, fmt.Errorf("invalid %s %q: %w", KeyWallpaper, wallpaper, settings.ErrUnknownWallpaper)
	}

	cfg := &Config{
		ScreenWidth:  v.GetInt(KeyScreenWidth),
		ScreenHeight: v.GetInt(KeyScreenHeight),
		Settings: settings.Snapshot{
			Theme:       theme,
			Language:    lang,
			WallpaperID: wallpaper,
		},
		LogLevel: v.GetString(KeyLogLevel),
		LogFile:  v.GetString(KeyLogFile),
		SkipBoot: v.GetBool(KeySkipBoot),
	}
	if cfg.ScreenWidth < 0 || cfg.ScreenHeight < 0 {
		return nil, fmt.Errorf("screen size must not be negative, got %dx%d", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	return cfg, nil
}

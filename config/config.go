// Package config loads the user configuration into ready-to-use settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/tlock/asset"
	"github.com/lixenwraith/tlock/palette"
)

const (
	DefaultFPS        = 30
	DefaultTimeFormat = "%H:%M:%S"
	DefaultDateFormat = "%d/%m/%Y"

	appDirName     = "tlock"
	configFileName = "config.toml"
)

// ErrInvalidFPS is returned when general.fps is not a positive integer
var ErrInvalidFPS = errors.New("fps must be a positive integer")

// Config is the resolved configuration used by the frame loop
type Config struct {
	BePolite   bool
	FPS        int
	Alarm      bool
	Color      *palette.Computable
	TimeFormat string
	DateFormat string
}

// fileConfig mirrors the TOML file layout
type fileConfig struct {
	General GeneralConfig `mapstructure:"general"`
	Format  FormatConfig  `mapstructure:"format"`
	Styling StylingConfig `mapstructure:"styling"`
}

// GeneralConfig holds the [general] table.
type GeneralConfig struct {
	Polite bool `mapstructure:"polite"`
	FPS    int  `mapstructure:"fps"`
	Alarm  bool `mapstructure:"alarm"`
}

// FormatConfig holds the [format] table.
type FormatConfig struct {
	Time string `mapstructure:"time"`
	Date string `mapstructure:"date"`
}

// StylingConfig holds the [styling] table.
type StylingConfig struct {
	ColorMode     string   `mapstructure:"color_mode"`
	ColorTerm     int      `mapstructure:"color_term"`
	ColorHex      string   `mapstructure:"color_hex"`
	ColorANSI     int      `mapstructure:"color_ansi"`
	Gradient      []string `mapstructure:"gradient"`
	GradientSteps int      `mapstructure:"gradient_steps"`
	GradientLoop  bool     `mapstructure:"gradient_loop"`
}

// Options adjust how a file is turned into a Config
type Options struct {
	// NoGradientLoop forces gradient_loop off, used by the debug dump
	NoGradientLoop bool
}

// DefaultPath returns <user config dir>/tlock/config.toml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, appDirName, configFileName), nil
}

// Load reads and resolves the configuration file at path
func Load(path string, opts Options) (*Config, error) {
	v, err := read(path)
	if err != nil {
		return nil, err
	}
	return resolve(v, opts)
}

func read(path string) (*viper.Viper, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("parsing config %s: %w: %w", path, palette.ErrParse, err)
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return v, nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.polite", false)
	v.SetDefault("general.fps", DefaultFPS)
	v.SetDefault("general.alarm", true)
	v.SetDefault("format.time", DefaultTimeFormat)
	v.SetDefault("format.date", DefaultDateFormat)
	v.SetDefault("styling.color_mode", "term")
	v.SetDefault("styling.gradient_loop", false)
}

// resolve validates the raw settings and builds the color scheme
func resolve(v *viper.Viper, opts Options) (*Config, error) {
	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w: %w", palette.ErrParse, err)
	}

	if fc.General.FPS <= 0 {
		return nil, fmt.Errorf("general.fps = %d: %w", fc.General.FPS, ErrInvalidFPS)
	}

	loop := fc.Styling.GradientLoop && !opts.NoGradientLoop
	color, err := loadColor(v, fc.Styling, loop)
	if err != nil {
		return nil, err
	}

	return &Config{
		BePolite:   fc.General.Polite,
		FPS:        fc.General.FPS,
		Alarm:      fc.General.Alarm,
		Color:      color,
		TimeFormat: fc.Format.Time,
		DateFormat: fc.Format.Date,
	}, nil
}

// loadColor builds the scheme selected by styling.color_mode. The key the
// mode reads must be present in the file.
func loadColor(v *viper.Viper, s StylingConfig, loop bool) (*palette.Computable, error) {
	mode := strings.ToLower(strings.TrimSpace(s.ColorMode))

	require := func(key string) error {
		if !v.IsSet("styling." + key) {
			return fmt.Errorf("styling.%s required by color_mode %q: %w", key, mode, palette.ErrMissingKey)
		}
		return nil
	}

	switch mode {
	case "term":
		if err := require("color_term"); err != nil {
			return nil, err
		}
		c, err := palette.Term(s.ColorTerm)
		if err != nil {
			return nil, fmt.Errorf("styling.color_term: %w", err)
		}
		return palette.Static(c), nil

	case "hex":
		if err := require("color_hex"); err != nil {
			return nil, err
		}
		rgb, err := palette.ParseHex(s.ColorHex)
		if err != nil {
			return nil, fmt.Errorf("styling.color_hex: %w", err)
		}
		return palette.Static(palette.FromRGB(rgb)), nil

	case "ansi":
		if err := require("color_ansi"); err != nil {
			return nil, err
		}
		c, err := palette.ANSI(s.ColorANSI)
		if err != nil {
			return nil, fmt.Errorf("styling.color_ansi: %w", err)
		}
		return palette.Static(c), nil

	case "gradient":
		if err := require("gradient"); err != nil {
			return nil, err
		}
		keys := make([]palette.RGB, 0, len(s.Gradient))
		for i, hex := range s.Gradient {
			rgb, err := palette.ParseHex(hex)
			if err != nil {
				return nil, fmt.Errorf("styling.gradient[%d]: %w", i, err)
			}
			keys = append(keys, rgb)
		}
		c, err := palette.GenerateGradient(keys, s.GradientSteps, loop)
		if err != nil {
			return nil, fmt.Errorf("styling.gradient: %w", err)
		}
		return c, nil

	default:
		return nil, fmt.Errorf("styling.color_mode %q: %w", s.ColorMode, palette.ErrParse)
	}
}

// WriteDefault writes the default configuration to path, creating parent
// directories and replacing any existing file
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(asset.DefaultConfig), 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

// EnsureDefault writes the default configuration when path does not exist.
// It reports whether a file was created.
func EnsureDefault(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("checking config %s: %w", path, err)
	}
	if err := WriteDefault(path); err != nil {
		return false, err
	}
	return true, nil
}

package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultPath is used when neither -config nor SEILESPILL_CONFIG is set.
const DefaultPath = "seilespill.toml"

// EnvPath names the environment variable that overrides DefaultPath.
const EnvPath = "SEILESPILL_CONFIG"

type Settings struct {
	Window  WindowSettings  `toml:"window"`
	Assets  AssetSettings   `toml:"assets"`
	Logging LoggingSettings `toml:"logging"`
}

type WindowSettings struct {
	Width     int32  `toml:"width"`
	Height    int32  `toml:"height"`
	TargetFPS int32  `toml:"target_fps"`
	Title     string `toml:"title"`
	MSAA      bool   `toml:"msaa"`
}

type AssetSettings struct {
	Root   string `toml:"root"`
	Layout string `toml:"layout"` // relative to Root
}

type LoggingSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// ResolvePath picks the settings file: the flag value, then EnvPath, then
// DefaultPath.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env
	}
	return DefaultPath
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Settings, error) {
	s := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

func (s *Settings) Validate() error {
	if s.Window.Width < 320 || s.Window.Height < 240 {
		return fmt.Errorf("window must be at least 320x240, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Window.TargetFPS < 0 {
		return fmt.Errorf("target_fps must be >= 0, got %d", s.Window.TargetFPS)
	}
	if s.Assets.Root == "" {
		return fmt.Errorf("assets.root must be set")
	}
	if s.Assets.Layout == "" {
		return fmt.Errorf("assets.layout must be set")
	}
	switch s.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid logging format: %s", s.Logging.Format)
	}
	return nil
}

func defaults() *Settings {
	return &Settings{
		Window: WindowSettings{
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
			Title:     "seilespill",
			MSAA:      true,
		},
		Assets: AssetSettings{
			Root:   "assets",
			Layout: "layout.yaml",
		},
		Logging: LoggingSettings{
			Level:  "warn",
			Format: "console",
		},
	}
}

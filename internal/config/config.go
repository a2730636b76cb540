// Package config provides YAML-based game configuration loading and
// difficulty presets for the fish clicker.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/fish-clicker/internal/assets"
	"github.com/vovakirdan/fish-clicker/internal/core"
	"github.com/vovakirdan/fish-clicker/internal/fish"
)

// FishConfig contains all configuration for the game.
type FishConfig struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Sprite   SpriteConfig   `yaml:"sprite"`
	Speed    SpeedConfig    `yaml:"speed"`
	Textures TexturesConfig `yaml:"textures"`
	Fonts    FontsConfig    `yaml:"fonts"`
	Window   WindowConfig   `yaml:"window"`
	Menu     MenuConfig     `yaml:"menu"`
}

// ViewportConfig is the world size in pixels.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpriteConfig is the fish bounding box in pixels.
type SpriteConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpeedConfig defines the speed curve min(base + score*per_point, max).
type SpeedConfig struct {
	Base     float64 `yaml:"base"`
	PerPoint float64 `yaml:"per_point"`
	Max      float64 `yaml:"max"`
}

// TexturesConfig defines where images live and how fish textures are picked.
type TexturesConfig struct {
	Mode       string   `yaml:"mode"` // "uniform" or "classic"
	Dir        string   `yaml:"dir"`  // Asset root; empty means the working directory
	Background string   `yaml:"background"`
	Fish       []string `yaml:"fish"`
}

// FontsConfig defines the text font.
type FontsConfig struct {
	Path string  `yaml:"path"` // Relative to textures.dir
	Size float64 `yaml:"size"`
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Title      string `yaml:"title"`
	TPS        int    `yaml:"tps"`
	FPSLimit   int    `yaml:"fps_limit"`
	Vsync      bool   `yaml:"vsync"`
	Borderless bool   `yaml:"borderless"`
}

// MenuConfig defines menu colors by CSS color name.
type MenuConfig struct {
	Highlight string `yaml:"highlight"`
	Idle      string `yaml:"idle"`
}

// Validate checks that the configuration describes a playable game.
func (c FishConfig) Validate() error {
	var errs []error
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %vx%v", c.Viewport.Width, c.Viewport.Height))
	}
	if c.Sprite.Width <= 0 || c.Sprite.Height <= 0 {
		errs = append(errs, fmt.Errorf("sprite must be positive, got %vx%v", c.Sprite.Width, c.Sprite.Height))
	}
	if c.Sprite.Width > c.Viewport.Width || c.Sprite.Height > c.Viewport.Height {
		errs = append(errs, errors.New("sprite does not fit the viewport"))
	}
	if c.Speed.Base <= 0 {
		errs = append(errs, fmt.Errorf("speed.base must be positive, got %v", c.Speed.Base))
	}
	if c.Speed.PerPoint < 0 {
		errs = append(errs, fmt.Errorf("speed.per_point must not be negative, got %v", c.Speed.PerPoint))
	}
	if c.Speed.Max < c.Speed.Base {
		errs = append(errs, fmt.Errorf("speed.max %v is below speed.base %v", c.Speed.Max, c.Speed.Base))
	}
	if c.Textures.Mode != "" && c.Textures.Mode != fish.TextureModeUniform && c.Textures.Mode != fish.TextureModeClassic {
		errs = append(errs, fmt.Errorf("unknown textures.mode %q", c.Textures.Mode))
	}
	for _, name := range []string{c.Menu.Highlight, c.Menu.Idle} {
		if name == "" {
			continue
		}
		if _, err := assets.NamedColor(name); err != nil {
			errs = append(errs, fmt.Errorf("menu: %w", err))
		}
	}
	if c.Window.TPS < 0 || c.Window.FPSLimit < 0 {
		errs = append(errs, errors.New("window rates must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Curve returns the configured speed curve.
func (c FishConfig) Curve() fish.SpeedCurve {
	return fish.SpeedCurve{Base: c.Speed.Base, PerPoint: c.Speed.PerPoint, Max: c.Speed.Max}
}

// Options builds game options from the configuration.
func (c FishConfig) Options() (fish.Options, error) {
	if err := c.Validate(); err != nil {
		return fish.Options{}, err
	}
	sel, err := fish.NewSelector(c.Textures.Mode, c.Textures.Fish)
	if err != nil {
		return fish.Options{}, fmt.Errorf("config: %w", err)
	}
	return fish.Options{
		Viewport:   core.NewViewport(c.Viewport.Width, c.Viewport.Height),
		SpriteSize: core.Size{W: c.Sprite.Width, H: c.Sprite.Height},
		Curve:      c.Curve(),
		Selector:   sel,
		Background: c.Textures.Background,
	}, nil
}

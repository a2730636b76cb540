package config

import (
	_ "embed"

	"github.com/vovakirdan/fish-clicker/internal/fish"
)

//go:embed defaults/fish.yaml
var defaultFishYAML []byte

// DefaultFishConfig returns the built-in configuration.
// It matches defaults/fish.yaml and is used if the embedded file cannot be parsed.
func DefaultFishConfig() FishConfig {
	textures := make([]string, len(fish.DefaultFishTextures))
	copy(textures, fish.DefaultFishTextures)

	return FishConfig{
		Viewport: ViewportConfig{Width: 1600, Height: 900},
		Sprite:   SpriteConfig{Width: 64, Height: 64},
		Speed:    SpeedConfig{Base: 1.0, PerPoint: 1.5, Max: 25.0},
		Textures: TexturesConfig{
			Mode:       fish.TextureModeUniform,
			Dir:        "data",
			Background: fish.BackgroundTexture,
			Fish:       textures,
		},
		Fonts: FontsConfig{
			Path: "fonts/KGHAPPY.ttf",
			Size: 64,
		},
		Window: WindowConfig{
			Title:      fish.Title,
			TPS:        60,
			FPSLimit:   60,
			Vsync:      true,
			Borderless: true,
		},
		Menu: MenuConfig{
			Highlight: "hotpink",
			Idle:      "lightslategray",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFishYAML
}

package fish

import (
	"fmt"
	"math/rand"
)

// Texture selection modes accepted in configuration.
const (
	TextureModeUniform = "uniform"
	TextureModeClassic = "classic"
)

// BackgroundTexture is the identifier of the backdrop image.
const BackgroundTexture = "images/background.png"

// DefaultFishTextures lists every fish tile shipped with the game, in order.
var DefaultFishTextures = []string{
	"images/kenney_fishpack/fishTile_073.png",
	"images/kenney_fishpack/fishTile_075.png",
	"images/kenney_fishpack/fishTile_077.png",
	"images/kenney_fishpack/fishTile_079.png",
	"images/kenney_fishpack/fishTile_081.png",
	"images/kenney_fishpack/fishTile_091.png",
	"images/kenney_fishpack/fishTile_101.png",
	"images/kenney_fishpack/fishTile_103.png",
}

// classicTextures are the tiles reachable from the first release's
// 1..6 draw. Tiles 091 and 103 were never selected there.
var classicTextures = [6]string{
	"images/kenney_fishpack/fishTile_073.png",
	"images/kenney_fishpack/fishTile_075.png",
	"images/kenney_fishpack/fishTile_077.png",
	"images/kenney_fishpack/fishTile_079.png",
	"images/kenney_fishpack/fishTile_081.png",
	"images/kenney_fishpack/fishTile_101.png",
}

// Selector picks the texture for a newly spawned fish.
type Selector interface {
	Select(rng *rand.Rand) string
}

// UniformSelector picks one of N textures with equal probability.
type UniformSelector struct {
	textures []string
}

// NewUniformSelector creates a selector over the given textures.
// Panics if the list is empty.
func NewUniformSelector(textures []string) *UniformSelector {
	if len(textures) == 0 {
		panic("fish: uniform selector needs at least one texture")
	}
	cp := make([]string, len(textures))
	copy(cp, textures)
	return &UniformSelector{textures: cp}
}

// Select draws an index in [0, N-1] and returns that texture.
func (s *UniformSelector) Select(rng *rand.Rand) string {
	return s.textures[rng.Intn(len(s.textures))]
}

// ClassicSelector reproduces the first release: six reachable tiles
// out of the eight that ship.
type ClassicSelector struct{}

// Select draws in [1, 6] and maps it to a tile.
func (ClassicSelector) Select(rng *rand.Rand) string {
	n := rng.Intn(6) + 1
	return classicTextures[n-1]
}

// NewSelector builds a selector for a configured mode.
func NewSelector(mode string, textures []string) (Selector, error) {
	switch mode {
	case "", TextureModeUniform:
		if len(textures) == 0 {
			textures = DefaultFishTextures
		}
		return NewUniformSelector(textures), nil
	case TextureModeClassic:
		return ClassicSelector{}, nil
	default:
		return nil, fmt.Errorf("fish: unknown texture mode %q", mode)
	}
}

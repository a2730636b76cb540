package window

import (
	"bytes"
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/fish-clicker/internal/assets"
	"github.com/vovakirdan/fish-clicker/internal/fish"
)

// textureCache loads each texture once and keeps it on the GPU.
type textureCache struct {
	loader *assets.Loader
	logger *log.Logger
	images map[string]*ebiten.Image
}

func newTextureCache(loader *assets.Loader, logger *log.Logger) *textureCache {
	return &textureCache{
		loader: loader,
		logger: logger,
		images: make(map[string]*ebiten.Image),
	}
}

// get returns the drawable's texture. A missing fish texture becomes a
// placeholder of the drawable's size; a missing background is left empty.
func (c *textureCache) get(d fish.Drawable) *ebiten.Image {
	if img, ok := c.images[d.Texture]; ok {
		return img
	}
	w, h := int(d.W), int(d.H)
	var src image.Image
	if d.Z == fish.ZBackground {
		src = c.loader.BackgroundOr(d.Texture, w, h, c.logger)
	} else {
		src = c.loader.TextureOr(d.Texture, w, h, c.logger)
	}
	img := ebiten.NewImageFromImage(src)
	c.images[d.Texture] = img
	return img
}

// newFace builds the text face, falling back to the Go font when the
// configured font cannot be used.
func newFace(loader *assets.Loader, path string, size float64, logger *log.Logger) *text.GoTextFace {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(loader.FontOr(path, logger)))
	if err != nil {
		logger.Warn("font rejected, using fallback", "path", path, "error", err)
		src, err = text.NewGoTextFaceSource(bytes.NewReader(assets.FallbackFont()))
		if err != nil {
			panic(err)
		}
	}
	return &text.GoTextFace{Source: src, Size: size}
}

// drawImage scales the texture to the drawable's box and mirrors it
// horizontally when flipped.
func (g *Game) drawImage(screen *ebiten.Image, d fish.Drawable) {
	img := g.textures.get(d)
	b := img.Bounds()
	sx, sy := d.W/float64(b.Dx()), d.H/float64(b.Dy())

	op := &ebiten.DrawImageOptions{}
	if d.Flipped {
		op.GeoM.Scale(-sx, sy)
		op.GeoM.Translate(d.W, 0)
	} else {
		op.GeoM.Scale(sx, sy)
	}
	op.GeoM.Translate(d.X, d.Y)
	screen.DrawImage(img, op)
}

func (g *Game) drawText(screen *ebiten.Image, d fish.Drawable) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(d.X, d.Y)
	op.ColorScale.ScaleWithColor(g.palette.Color(d.Color))
	text.Draw(screen, d.Text, g.face, op)
}

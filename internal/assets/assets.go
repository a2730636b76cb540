// Package assets loads textures and fonts from an asset root.
// Missing or broken files are reported as *AssetLoadError; the *Or helpers
// log a warning and substitute a generated placeholder instead.
package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // PNG decoder for image.Decode
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// Kind names the type of asset that failed to load.
type Kind string

const (
	KindTexture Kind = "texture"
	KindFont    Kind = "font"
)

// AssetLoadError reports a texture or font that could not be loaded.
type AssetLoadError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("assets: load %s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

// Loader resolves asset paths against a file system root.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader rooted at dir. Empty means the working directory.
func NewLoader(dir string) *Loader {
	if dir == "" {
		dir = "."
	}
	return &Loader{fsys: os.DirFS(dir)}
}

// NewLoaderFS creates a loader over an existing file system.
func NewLoaderFS(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// clean turns "/images/x.png" into "images/x.png"; fs.FS paths are unrooted.
func clean(p string) string {
	return path.Clean(strings.TrimPrefix(p, "/"))
}

// LoadTexture decodes an image file.
func (l *Loader) LoadTexture(p string) (image.Image, error) {
	f, err := l.fsys.Open(clean(p))
	if err != nil {
		return nil, &AssetLoadError{Kind: KindTexture, Path: p, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &AssetLoadError{Kind: KindTexture, Path: p, Err: err}
	}
	return img, nil
}

// LoadFont reads a TrueType or OpenType font and checks that it parses.
func (l *Loader) LoadFont(p string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, clean(p))
	if err != nil {
		return nil, &AssetLoadError{Kind: KindFont, Path: p, Err: err}
	}
	if _, err := sfnt.Parse(data); err != nil {
		return nil, &AssetLoadError{Kind: KindFont, Path: p, Err: err}
	}
	return data, nil
}

// TextureOr loads a texture, or logs a warning and returns a w x h placeholder.
func (l *Loader) TextureOr(p string, w, h int, logger *log.Logger) image.Image {
	img, err := l.LoadTexture(p)
	if err != nil {
		logger.Warn("texture unavailable, using placeholder", "path", p, "error", err)
		return Placeholder(w, h)
	}
	return img
}

// BackgroundOr loads a backdrop texture, or logs a warning and returns a
// transparent w x h image so the clear color shows through.
func (l *Loader) BackgroundOr(p string, w, h int, logger *log.Logger) image.Image {
	img, err := l.LoadTexture(p)
	if err != nil {
		logger.Warn("background unavailable, drawing none", "path", p, "error", err)
		return image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	}
	return img
}

// FontOr loads a font, or logs a warning and returns the built-in Go font.
func (l *Loader) FontOr(p string, logger *log.Logger) []byte {
	data, err := l.LoadFont(p)
	if err != nil {
		logger.Warn("font unavailable, using fallback", "path", p, "error", err)
		return FallbackFont()
	}
	return data
}

// Placeholder returns a hot pink and black checkerboard of 8px squares.
func Placeholder(w, h int) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var c color.Color = color.Black
			if (x/8+y/8)%2 == 0 {
				c = colornames.Hotpink
			}
			img.Set(x, y, c)
		}
	}
	return img
}

// FallbackFont returns the Go Regular TrueType font.
func FallbackFont() []byte {
	return goregular.TTF
}

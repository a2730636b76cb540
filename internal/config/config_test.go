package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/fish-clicker/internal/fish"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFishConfig()) {
		t.Errorf("embedded YAML and DefaultFishConfig differ:\n%+v\n%+v", cfg, DefaultFishConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("speed:\n  max: 30\ntextures:\n  mode: classic\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Speed.Max != 30 {
		t.Errorf("speed.max = %v, expected 30", cfg.Speed.Max)
	}
	if cfg.Speed.Base != 1 || cfg.Speed.PerPoint != 1.5 {
		t.Errorf("unset speed keys should keep defaults, got %+v", cfg.Speed)
	}
	if cfg.Viewport.Width != 1600 {
		t.Errorf("viewport.width = %v, expected default 1600", cfg.Viewport.Width)
	}
	if cfg.Textures.Mode != fish.TextureModeClassic {
		t.Errorf("textures.mode = %q", cfg.Textures.Mode)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"sprite too big", "sprite:\n  width: 2000\n"},
		{"zero viewport", "viewport:\n  width: 0\n"},
		{"max below base", "speed:\n  base: 10\n  max: 5\n"},
		{"negative slope", "speed:\n  per_point: -1\n"},
		{"bad mode", "textures:\n  mode: rainbow\n"},
		{"unknown menu color", "menu:\n  highlight: fishy\n"},
		{"not yaml", "speed: [1, 2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fish.yaml")
	if err := os.WriteFile(path, []byte("sprite:\n  width: 32\n  height: 32\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sprite.Width != 32 || cfg.Sprite.Height != 32 {
		t.Errorf("sprite = %+v, expected 32x32", cfg.Sprite)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("explicit missing config should be an error")
	}
	if !strings.HasPrefix(err.Error(), "config:") {
		t.Errorf("error should carry the package prefix: %v", err)
	}
}

func TestLoadUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, AppDir, "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "fish.yaml"), []byte("speed:\n  max: 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Speed.Max != 40 {
		t.Errorf("user config not picked up: speed.max = %v", cfg.Speed.Max)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFishConfig()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestMarshalParses(t *testing.T) {
	data, err := Marshal(DefaultFishConfig())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse of marshaled config: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFishConfig()) {
		t.Error("marshaled defaults changed after parsing")
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q): %v", name, err)
		}
	}
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("empty preset = %q, %v; expected normal", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should be an error")
	}
}

func TestApplyPreset(t *testing.T) {
	normal := DefaultFishConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if normal.Curve() != fish.DefaultSpeedCurve() {
		t.Errorf("normal must keep the standard curve, got %+v", normal.Curve())
	}

	easy := DefaultFishConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if got := easy.Curve().Speed(16); got >= 25 {
		t.Errorf("easy speed at 16 = %v, expected below 25", got)
	}

	hard := DefaultFishConfig()
	ApplyPreset(&hard, DifficultyHard)
	if got := hard.Curve().Speed(0); got != 2 {
		t.Errorf("hard starting speed = %v, expected 2", got)
	}
	if hard.Curve().Speed(100) <= 25 {
		t.Error("hard cap should exceed the normal cap")
	}

	fixed := DefaultFishConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Curve().Speed(0) != fixed.Curve().Speed(50) {
		t.Error("fixed preset should not speed up")
	}
	if err := fixed.Validate(); err != nil {
		t.Errorf("fixed preset produced invalid config: %v", err)
	}
}

func TestOptions(t *testing.T) {
	cfg := DefaultFishConfig()
	cfg.Textures.Mode = fish.TextureModeClassic

	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.Viewport.W != 1600 || opts.Viewport.H != 900 {
		t.Errorf("viewport = %+v", opts.Viewport)
	}
	if opts.SpriteSize.W != 64 || opts.SpriteSize.H != 64 {
		t.Errorf("sprite = %+v", opts.SpriteSize)
	}
	if _, ok := opts.Selector.(fish.ClassicSelector); !ok {
		t.Errorf("selector = %T, expected classic", opts.Selector)
	}

	if opts.Background != fish.BackgroundTexture {
		t.Errorf("background = %q, expected %q", opts.Background, fish.BackgroundTexture)
	}

	cfg.Sprite.Width = 5000
	if _, err := cfg.Options(); err == nil {
		t.Error("invalid config should not build options")
	}
}

func TestBackgroundReachesSnapshot(t *testing.T) {
	cfg, err := Parse([]byte("textures:\n  background: images/sea.png\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}

	d := fish.New(opts).Snapshot().Drawables[0]
	if d.Z != fish.ZBackground || d.Texture != "images/sea.png" {
		t.Errorf("background drawable = %+v, expected images/sea.png", d)
	}
}

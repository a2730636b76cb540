// Package window runs the fish game in a desktop window with Ebitengine.
package window

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/fish-clicker/internal/assets"
	"github.com/vovakirdan/fish-clicker/internal/config"
	"github.com/vovakirdan/fish-clicker/internal/core"
	"github.com/vovakirdan/fish-clicker/internal/fish"
	"github.com/vovakirdan/fish-clicker/internal/logging"
	"github.com/vovakirdan/fish-clicker/internal/storage"
)

// Options configures a windowed session.
type Options struct {
	Config config.FishConfig
	Game   fish.Options
	Seed   int64          // 0 means time-based
	Store  *storage.Store // Optional; nil disables score saving
	Logger *log.Logger    // Optional; nil discards
	Player string
}

// Game implements ebiten.Game on top of a fish.Game.
type Game struct {
	game      *fish.Game
	queue     *core.EventQueue
	textures  *textureCache
	face      *text.GoTextFace
	palette   assets.Palette
	logger    *log.Logger
	store     *storage.Store
	player    string
	sessionID uuid.UUID
	state     core.GameState
}

// NewGame loads fonts and colors and resets the game to its menu.
func NewGame(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	palette, err := assets.NewPalette(opts.Config.Menu.Highlight, opts.Config.Menu.Idle)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	cfg := core.DefaultConfig()
	cfg.Seed = opts.Seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Config.Window.TPS > 0 {
		cfg.TickRate = opts.Config.Window.TPS
	}

	game := fish.New(opts.Game)
	game.Reset(cfg)

	loader := assets.NewLoader(opts.Config.Textures.Dir)
	g := &Game{
		game:      game,
		queue:     core.NewEventQueue(),
		textures:  newTextureCache(loader, logger),
		face:      newFace(loader, opts.Config.Fonts.Path, opts.Config.Fonts.Size, logger),
		palette:   palette,
		logger:    logger,
		store:     opts.Store,
		player:    opts.Player,
		sessionID: uuid.New(),
	}
	logger.Debug("session created", "session", g.sessionID, "seed", cfg.Seed)
	return g, nil
}

// Update advances the simulation by one tick.
func (g *Game) Update() error {
	if quitPressed() {
		return ebiten.Termination
	}

	pollInput(g.queue)
	res := g.game.Step(g.queue.Drain())
	g.state = res.State

	if res.Hits > 0 {
		g.logger.Debug("fish clicked", "score", res.State.Score, "speed", g.game.Sprite().Speed)
	}
	if res.State.Exit {
		return ebiten.Termination
	}
	return nil
}

// Draw clears to black and renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Color(core.ColorBlack))
	for _, d := range g.game.Snapshot().Drawables {
		switch d.Kind {
		case fish.DrawImage:
			g.drawImage(screen, d)
		case fish.DrawText:
			g.drawText(screen, d)
		}
	}
}

// Layout keeps the logical screen at world size; Ebitengine scales it
// to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	vp := g.game.Viewport()
	return int(vp.W), int(vp.H)
}

// saveScore records a positive score for this session.
func (g *Game) saveScore() {
	if g.store == nil || g.state.Score <= 0 {
		return
	}
	if _, err := g.store.SaveScore(fish.ID, g.sessionID, g.player, g.state.Score); err != nil {
		g.logger.Error("could not save score", "score", g.state.Score, "error", err)
		return
	}
	g.logger.Info("score saved", "score", g.state.Score, "session", g.sessionID)
}

// Run opens the window and blocks until the player exits or closes it.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	w := opts.Config.Window
	title := w.Title
	if title == "" {
		title = fish.Title
	}
	vp := g.game.Viewport()
	ebiten.SetWindowSize(int(vp.W), int(vp.H))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowDecorated(!w.Borderless)
	ebiten.SetVsyncEnabled(w.Vsync)
	if w.TPS > 0 {
		ebiten.SetTPS(w.TPS)
	}

	err = ebiten.RunGame(g)
	g.saveScore()
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

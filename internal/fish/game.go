// Package fish implements the fish clicking game.
// A fish swims across the screen and the player scores by clicking it,
// which respawns it somewhere else, a little faster.
package fish

import (
	"math/rand"

	"github.com/vovakirdan/fish-clicker/internal/core"
)

// Identity of the game, used for score storage and window titles.
const (
	ID    = "fish"
	Title = "Fish Clicking Simulator 2023"
)

// Options configures a game instance.
type Options struct {
	Viewport   core.Viewport
	SpriteSize core.Size
	Curve      SpeedCurve
	Selector   Selector
	Background string // Empty means BackgroundTexture
}

// DefaultOptions returns a 1600x900 game with 64x64 fish.
func DefaultOptions() Options {
	return Options{
		Viewport:   core.NewViewport(1600, 900),
		SpriteSize: core.Size{W: 64, H: 64},
		Curve:      DefaultSpeedCurve(),
		Selector:   NewUniformSelector(DefaultFishTextures),
		Background: BackgroundTexture,
	}
}

// Game holds one session and its fish.
type Game struct {
	opts    Options
	rng     *rand.Rand
	planner *Planner
	session Session
	sprite  Sprite
	tick    uint64
	spawns  int
}

// New creates a game. Call Reset before stepping.
func New(opts Options) *Game {
	if opts.Selector == nil {
		opts.Selector = NewUniformSelector(DefaultFishTextures)
	}
	if opts.Background == "" {
		opts.Background = BackgroundTexture
	}
	g := &Game{opts: opts}
	g.Reset(core.DefaultConfig())
	return g
}

// Reset starts a fresh session at the menu.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.planner = NewPlanner(g.rng, g.opts.Curve, g.opts.Selector)
	g.session = NewSession()
	g.sprite = NewSprite(g.opts.SpriteSize)
	g.tick = 0
	g.spawns = 0
}

// Step advances the game by one tick.
// Key events are applied first, then pointer events, each group in arrival
// order; the fish moves last, and only while playing.
func (g *Game) Step(events []core.Event) core.StepResult {
	var res core.StepResult
	keys, pointers := core.Partition(events)

	for _, e := range keys {
		if !e.Pressed {
			continue
		}
		if HandleKey(&g.session, e.Action) == TransitionStarted {
			g.spawn()
			res.Spawned++
		}
	}

	if g.session.ExitRequested {
		res.State = g.State()
		return res
	}

	for _, e := range pointers {
		if g.resolveClick(e) {
			res.Hits++
			res.Spawned++
		}
	}

	if g.session.State == StatePlaying {
		Step(&g.sprite, g.opts.Viewport)
	}

	g.tick++
	res.State = g.State()
	return res
}

// resolveClick scores and respawns when a primary press lands on the fish.
func (g *Game) resolveClick(e core.Event) bool {
	if g.session.State != StatePlaying || !e.Pressed || e.Button != core.ButtonPrimary {
		return false
	}
	if !HitTest(g.sprite.Bounds(), e.X, e.Y) {
		return false
	}
	g.session.Score++
	g.spawn()
	return true
}

func (g *Game) spawn() {
	g.sprite.Apply(g.planner.Spawn(g.session.Score, g.opts.Viewport, g.opts.SpriteSize))
	g.spawns++
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.session.Score,
		Playing: g.session.State == StatePlaying,
		Exit:    g.session.ExitRequested,
	}
}

// Session returns a copy of the session.
func (g *Game) Session() Session {
	return g.session
}

// Sprite returns a copy of the fish.
func (g *Game) Sprite() Sprite {
	return g.sprite
}

// Spawns returns how many times the fish has been spawned.
func (g *Game) Spawns() int {
	return g.spawns
}

// Tick returns the number of ticks stepped since Reset.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Viewport returns the world size.
func (g *Game) Viewport() core.Viewport {
	return g.opts.Viewport
}

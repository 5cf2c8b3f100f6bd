// Package pong implements Pong against an opponent that tracks the ball.
// The player controls the left paddle.
package pong

import (
	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
	"github.com/vovakirdan/paddle-arcade/internal/registry"
	"github.com/vovakirdan/paddle-arcade/internal/world"
)

// Game implements the Pong game logic.
type Game struct {
	cfg      config.PongConfig
	fixedCfg bool // cfg given at construction, skip loading on Reset

	runtime core.RuntimeConfig
	world   *world.World
	bounds  physics.Bounds
	score   Score
	board   *Scoreboard
	paused  bool
	tick    uint64
}

// New creates a new Pong game. Configuration is loaded on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.PongConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadPong(runtime.ConfigPath)
		if err != nil {
			cfg = config.DefaultPongConfig()
		}
		if preset, err := config.ParseDifficulty(runtime.Difficulty); err == nil {
			config.ApplyPongPreset(&cfg, preset)
		}
		g.cfg = cfg
	}

	g.bounds = physics.NewBounds(g.cfg.Screen.Width, g.cfg.Screen.Height)
	g.score = Score{}
	g.board = NewScoreboard()
	g.paused = false
	g.tick = 0
	g.spawn()
}

// spawn places the ball at the centre and a paddle near each side wall.
func (g *Game) spawn() {
	g.world = world.New(3)

	serve := g.cfg.Serve.Initial
	g.world.Spawn(world.RoleBall, physics.Vec2{},
		physics.V(serve.X, serve.Y).Scale(g.cfg.Ball.Speed), physics.Circle(g.cfg.Ball.Radius))

	shape := physics.Box(g.cfg.Paddle.Width/2, g.cfg.Paddle.Height/2)
	x := g.bounds.HalfW - shape.HalfW - g.cfg.Paddle.Pad
	g.world.Spawn(world.RolePlayer, physics.V(-x, 0), physics.Vec2{}, shape)
	g.world.Spawn(world.RoleOpponent, physics.V(x, 0), physics.Vec2{}, shape)
}

// Step advances the game by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	inputStage(g.world, in, g.cfg.Paddle.Speed)
	normalizeStage(g.world, g.cfg.Ball.Speed)
	integrateStage(g.world, dt)
	trackStage(g.world)
	scored := collideStage(g.world, g.bounds)
	scoreStage(g.world, &g.score, scored, g.cfg)
	g.board.Sync(g.score)

	res := core.StepResult{State: g.State()}
	if scored != ScoredNone {
		res.Events = []core.Event{scored}
	}
	return res
}

// Score returns both counters.
func (g *Game) Score() Score {
	return g.score
}

// Scoreboard returns the on-screen score labels.
func (g *Game) Scoreboard() *Scoreboard {
	return g.board
}

// State returns the current game state. Pong has no end; the player leaves
// when done.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Player,
		Opponent: g.score.Opponent,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}

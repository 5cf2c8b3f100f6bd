// Package breakout implements Brick Breaker: a paddle, a ball and a wall of
// bricks that disappear when hit.
package breakout

import (
	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
	"github.com/vovakirdan/paddle-arcade/internal/registry"
	"github.com/vovakirdan/paddle-arcade/internal/world"
)

// Game implements the Brick Breaker game logic.
type Game struct {
	cfg      config.BreakoutConfig
	fixedCfg bool // cfg given at construction, skip loading on Reset

	runtime core.RuntimeConfig
	world   *world.World
	bounds  physics.Bounds
	phase   Phase
	paused  bool

	colors      map[world.EntityID]core.Color
	bricksTotal int
	tick        uint64
}

// New creates a new Brick Breaker game. Configuration is loaded on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.BreakoutConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Brick Breaker"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadBreakout(runtime.ConfigPath)
		if err != nil {
			cfg = config.DefaultBreakoutConfig()
		}
		if preset, err := config.ParseDifficulty(runtime.Difficulty); err == nil {
			config.ApplyBreakoutPreset(&cfg, preset)
		}
		g.cfg = cfg
	}

	g.bounds = physics.NewBounds(g.cfg.Screen.Width, g.cfg.Screen.Height)
	g.phase = PhaseStart
	g.paused = false
	g.tick = 0
	g.spawn()
}

// spawn builds a fresh arena: paddle, resting ball, then the brick wall.
func (g *Game) spawn() {
	bricks := ParseLayout(g.cfg.Bricks)
	g.world = world.New(len(bricks) + 2)
	g.colors = make(map[world.EntityID]core.Color, len(bricks))

	paddleShape := physics.Box(g.cfg.Paddle.Width/2, g.cfg.Paddle.Height/2)
	g.world.Spawn(world.RolePlayer|world.RoleCollider,
		physics.V(0, g.cfg.Paddle.Y), physics.Vec2{}, paddleShape)

	ballY := g.cfg.Paddle.Y + paddleShape.HalfH + g.cfg.Ball.Gap + g.cfg.Ball.Radius
	g.world.Spawn(world.RoleBall, physics.V(0, ballY), physics.Vec2{}, physics.Circle(g.cfg.Ball.Radius))

	brickShape := physics.Box(g.cfg.Bricks.Width/2, g.cfg.Bricks.Height/2)
	for _, b := range bricks {
		id := g.world.Spawn(world.RoleBrick|world.RoleCollider, b.Pos, physics.Vec2{}, brickShape)
		g.colors[id] = b.Color
	}
	g.bricksTotal = len(bricks)
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

	g.phase = inputStage(g.world, g.phase, in, g.cfg)
	integrateStage(g.world, dt)
	clampStage(g.world, g.bounds)
	followStage(g.world, g.phase)
	bounceStage(g.world, g.bounds)
	events := collideStage(g.world)

	for _, e := range events {
		if hit, ok := e.(CollisionEvent); ok && hit.Brick {
			delete(g.colors, hit.Entity)
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// Phase returns the current game phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// BricksLeft returns the number of bricks still standing.
func (g *Game) BricksLeft() int {
	return g.world.Count(world.RoleBrick)
}

// BricksTotal returns the number of bricks the wall started with.
func (g *Game) BricksTotal() int {
	return g.bricksTotal
}

// State returns the current game state. Brick Breaker keeps no score.
func (g *Game) State() core.GameState {
	return core.GameState{
		Paused: g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}

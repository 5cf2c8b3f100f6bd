package breakout

import (
	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
	"github.com/vovakirdan/paddle-arcade/internal/world"
)

// Each stage below runs once per frame, in the order Step calls them.
// Stages receive everything they touch as arguments.

// inputStage sets the paddle velocity from Left/Right and, in PhaseStart,
// launches the ball on Launch. It is the only writer of the phase.
func inputStage(w *world.World, phase Phase, in core.InputFrame, cfg config.BreakoutConfig) Phase {
	paddle := w.Single(world.RolePlayer)
	paddle.Vel.X = physics.AxisInput(in.Has(core.ActionRight), in.Has(core.ActionLeft), cfg.Paddle.Speed)

	if phase == PhaseStart && in.Has(core.ActionLaunch) {
		ball := w.Single(world.RoleBall)
		dir := physics.V(cfg.Ball.Launch.X, cfg.Ball.Launch.Y)
		ball.Vel = dir.Normalize().Scale(cfg.Ball.Speed)
		return PhaseInGame
	}
	return phase
}

// integrateStage moves every entity by its velocity.
func integrateStage(w *world.World, dt float64) {
	for _, e := range w.All() {
		e.Pos = physics.Integrate(e.Pos, e.Vel, dt)
	}
}

// clampStage keeps the paddle on screen.
func clampStage(w *world.World, b physics.Bounds) {
	for _, p := range w.Query(world.RolePaddle) {
		p.Pos, p.Vel, _ = physics.ClampBox(p.Pos, p.Vel, p.Shape, b)
	}
}

// followStage glues the resting ball to the paddle's x while in PhaseStart.
func followStage(w *world.World, phase Phase) {
	if phase != PhaseStart {
		return
	}
	w.Single(world.RoleBall).Pos.X = w.Single(world.RolePlayer).Pos.X
}

// bounceStage reflects the ball off all four screen edges.
func bounceStage(w *world.World, b physics.Bounds) {
	ball := w.Single(world.RoleBall)
	ball.Pos, ball.Vel, _ = physics.BounceCircle(ball.Pos, ball.Vel, ball.Shape.Radius, b, physics.EdgesAll)
}

// collideStage resolves the ball against the paddle and bricks. A struck
// brick is removed in the same frame. One event is returned per contact.
func collideStage(w *world.World) []core.Event {
	ball := w.Single(world.RoleBall)

	var events []core.Event
	for _, c := range w.Query(world.RoleCollider) {
		side := physics.CollideCircleBox(ball.Pos, ball.Shape.Radius, c.Pos, c.Shape)
		if side == physics.SideNone {
			continue
		}
		ball.Vel = physics.ReflectFrom(ball.Vel, side)

		brick := c.Is(world.RoleBrick)
		if brick {
			w.Despawn(c.ID)
		}
		events = append(events, CollisionEvent{Entity: c.ID, Side: side, Brick: brick})
	}
	return events
}

package pong

import (
	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
	"github.com/vovakirdan/paddle-arcade/internal/world"
)

// Each stage below runs once per frame, in the order Step calls them.
// Stages receive everything they touch as arguments.

// inputStage drives the player paddle from Up/Down.
func inputStage(w *world.World, in core.InputFrame, speed float64) {
	p := w.Single(world.RolePlayer)
	p.Vel.Y = physics.AxisInput(in.Has(core.ActionUp), in.Has(core.ActionDown), speed)
}

// normalizeStage holds the ball at a constant speed.
func normalizeStage(w *world.World, speed float64) {
	ball := w.Single(world.RoleBall)
	if !ball.Vel.IsZero() && ball.Vel.Len() != speed {
		ball.Vel = ball.Vel.WithLen(speed)
	}
}

// integrateStage moves every entity by its velocity.
func integrateStage(w *world.World, dt float64) {
	for _, e := range w.All() {
		e.Pos = physics.Integrate(e.Pos, e.Vel, dt)
	}
}

// trackStage puts the opponent level with the ball.
func trackStage(w *world.World) {
	w.Single(world.RoleOpponent).Pos.Y = w.Single(world.RoleBall).Pos.Y
}

// collideStage bounces the ball off the top and bottom, detects a point,
// clamps the paddles and resolves the ball against them. When a point is
// scored it returns at once, so that frame skips the paddle clamp and the
// paddle checks.
func collideStage(w *world.World, b physics.Bounds) Scored {
	ball := w.Single(world.RoleBall)
	r := ball.Shape.Radius

	ball.Pos, ball.Vel, _ = physics.BounceCircle(ball.Pos, ball.Vel, r, b, physics.EdgesHorizontal)

	switch physics.EscapedEdge(ball.Pos, r, b) {
	case physics.SideLeft:
		return ScoredOpponent
	case physics.SideRight:
		return ScoredPlayer
	}

	for _, p := range w.Query(world.RolePaddle) {
		p.Pos, p.Vel, _ = physics.ClampBox(p.Pos, p.Vel, p.Shape, b)
	}

	for _, p := range w.Query(world.RolePaddle) {
		if side := physics.CollideCircleBox(ball.Pos, r, p.Pos, p.Shape); side != physics.SideNone {
			ball.Vel = physics.ReflectFrom(ball.Vel, side)
		}
	}
	return ScoredNone
}

// scoreStage counts a point and serves the ball again from the centre.
func scoreStage(w *world.World, score *Score, scored Scored, cfg config.PongConfig) {
	var serve config.Direction
	switch scored {
	case ScoredPlayer:
		score.Player++
		serve = cfg.Serve.AfterPlayer
	case ScoredOpponent:
		score.Opponent++
		serve = cfg.Serve.AfterOpponent
	default:
		return
	}

	ball := w.Single(world.RoleBall)
	ball.Pos = physics.Vec2{}
	ball.Vel = physics.V(serve.X, serve.Y).Scale(cfg.Ball.Speed)
}

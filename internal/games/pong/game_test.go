package pong

import (
	"math"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
	"github.com/vovakirdan/paddle-arcade/internal/world"
)

const dt = 1.0 / 60.0

func newGame() *Game {
	g := NewWithConfig(config.DefaultPongConfig())
	g.Reset(core.DefaultConfig())
	return g
}

func ball(g *Game) *world.Entity     { return g.world.Single(world.RoleBall) }
func player(g *Game) *world.Entity   { return g.world.Single(world.RolePlayer) }
func opponent(g *Game) *world.Entity { return g.world.Single(world.RoleOpponent) }

func TestResetLayout(t *testing.T) {
	g := newGame()

	if got := player(g).Pos; got != physics.V(-622.5, 0) {
		t.Errorf("player at %v, expected (-622.5, 0)", got)
	}
	if got := opponent(g).Pos; got != physics.V(622.5, 0) {
		t.Errorf("opponent at %v, expected (622.5, 0)", got)
	}
	if got := ball(g).Vel; got != physics.V(400, 400) {
		t.Errorf("kick-off velocity = %v, expected (400, 400)", got)
	}
	if g.Score() != (Score{}) {
		t.Errorf("Score() = %+v, expected zero", g.Score())
	}
}

func TestPlayerScoresScenario(t *testing.T) {
	g := newGame()
	b := ball(g)
	b.Pos = physics.V(640, 0)
	b.Vel = physics.V(400, 0)

	// Stage by stage first.
	integrateStage(g.world, 0.01)
	if b.Pos != physics.V(644, 0) {
		t.Fatalf("integrated position = %v, expected (644, 0)", b.Pos)
	}
	if s := collideStage(g.world, g.bounds); s != ScoredPlayer {
		t.Fatalf("collideStage = %v, expected player", s)
	}

	// Then through Step.
	g = newGame()
	b = ball(g)
	b.Pos = physics.V(640, 0)
	b.Vel = physics.V(400, 0)

	res := g.Step(core.NewInputFrame(), 0.01)

	if g.Score() != (Score{Player: 1}) {
		t.Errorf("Score() = %+v, expected {Player:1 Opponent:0}", g.Score())
	}
	if b.Pos != (physics.Vec2{}) {
		t.Errorf("ball at %v after point, expected origin", b.Pos)
	}
	if b.Vel != physics.V(-400, 400) {
		t.Errorf("serve velocity = %v, expected (-400, 400)", b.Vel)
	}
	if len(res.Events) != 1 || res.Events[0] != ScoredPlayer {
		t.Errorf("events = %v, expected [player]", res.Events)
	}
	if res.State.Score != 1 || res.State.Opponent != 0 {
		t.Errorf("state = %+v, expected score 1-0", res.State)
	}
}

func TestOpponentScores(t *testing.T) {
	g := newGame()
	b := ball(g)
	b.Pos = physics.V(-640, 0)
	b.Vel = physics.V(-400, 0)

	g.Step(core.NewInputFrame(), 0.01)

	if g.Score() != (Score{Opponent: 1}) {
		t.Errorf("Score() = %+v, expected {Player:0 Opponent:1}", g.Score())
	}
	if b.Pos != (physics.Vec2{}) || b.Vel != physics.V(400, -400) {
		t.Errorf("ball = (%v, %v), expected origin moving (400, -400)", b.Pos, b.Vel)
	}
}

func TestScoringFrameSkipsPaddleClamp(t *testing.T) {
	g := newGame()
	p := player(g)
	p.Pos.Y = 400

	b := ball(g)
	b.Pos = physics.V(640, 0)
	b.Vel = physics.V(400, 0)

	g.Step(core.NewInputFrame(), 0.01)
	if p.Pos.Y != 400 {
		t.Errorf("player y = %v on scoring frame, expected unclamped 400", p.Pos.Y)
	}

	g.Step(core.NewInputFrame(), 0.01)
	if p.Pos.Y != 309 {
		t.Errorf("player y = %v on next frame, expected 309", p.Pos.Y)
	}
}

func TestPaddleClamp(t *testing.T) {
	g := newGame()
	p := player(g)
	p.Pos.Y = 340

	g.Step(core.NewInputFrameOf(core.ActionUp), dt)

	if p.Pos.Y != 309 {
		t.Errorf("player y = %v, expected 309 (top edge one unit inside)", p.Pos.Y)
	}
	if p.Vel.Y != 0 {
		t.Errorf("player vy = %v, expected 0 regardless of input", p.Vel.Y)
	}
}

func TestInput(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
		want    float64
	}{
		{"none", nil, 0},
		{"up", []core.Action{core.ActionUp}, 200},
		{"down", []core.Action{core.ActionDown}, -200},
		{"both favours up", []core.Action{core.ActionUp, core.ActionDown}, 200},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame()
			g.Step(core.NewInputFrameOf(tc.actions...), dt)
			if v := player(g).Vel.Y; v != tc.want {
				t.Errorf("player vy = %v, expected %v", v, tc.want)
			}
			if v := opponent(g).Vel.Y; v != 0 {
				t.Errorf("opponent vy = %v, expected 0 (input drives the player only)", v)
			}
		})
	}
}

func TestOpponentTracksBall(t *testing.T) {
	g := newGame()

	// One second of play: no wall or paddle contact yet.
	for range 60 {
		res := g.Step(core.NewInputFrame(), dt)
		if len(res.Events) > 0 {
			continue
		}
		if opponent(g).Pos.Y != ball(g).Pos.Y {
			t.Fatalf("opponent y = %v, ball y = %v; expected equal", opponent(g).Pos.Y, ball(g).Pos.Y)
		}
	}
}

func TestSpeedNormalization(t *testing.T) {
	g := newGame()
	b := ball(g)
	b.Vel = physics.V(600, 800)

	g.Step(core.NewInputFrame(), dt)

	if math.Abs(b.Vel.Len()-400) > 1e-9 {
		t.Errorf("|v| = %v, expected 400", b.Vel.Len())
	}
	if math.Abs(b.Vel.X/b.Vel.Y-0.75) > 1e-9 {
		t.Errorf("direction changed: %v", b.Vel)
	}
}

func TestZeroVelocityStaysZero(t *testing.T) {
	g := newGame()
	b := ball(g)
	b.Vel = physics.Vec2{}

	g.Step(core.NewInputFrame(), dt)

	if b.Vel != (physics.Vec2{}) || math.IsNaN(b.Pos.X) {
		t.Errorf("ball = (%v, %v), expected resting at origin", b.Pos, b.Vel)
	}
}

func TestBallBouncesOffPlayerPaddle(t *testing.T) {
	g := newGame()
	b := ball(g)
	b.Pos = physics.V(-605, 0)
	b.Vel = physics.V(-400, 0)

	g.Step(core.NewInputFrame(), 0.01)

	if b.Vel.X <= 0 {
		t.Errorf("ball vx = %v, expected positive after paddle hit", b.Vel.X)
	}
	if g.Score() != (Score{}) {
		t.Errorf("Score() = %+v, expected no point", g.Score())
	}
}

func TestBallBouncesOffTopAndBottom(t *testing.T) {
	g := newGame()
	b := ball(g)
	b.Pos = physics.V(0, 350)
	b.Vel = physics.V(0, 400)

	g.Step(core.NewInputFrame(), 0.05)

	if b.Vel.Y >= 0 || b.Pos.Y+8 > 360 {
		t.Errorf("ball = (%v, %v), expected inside moving down", b.Pos, b.Vel)
	}
}

func TestScoreConservation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := newGame()
		b := ball(g)
		b.Pos = physics.V(
			rapid.Float64Range(-600, 600).Draw(t, "x"),
			rapid.Float64Range(-340, 340).Draw(t, "y"),
		)
		b.Vel = physics.V(
			rapid.Float64Range(-400, 400).Draw(t, "vx"),
			rapid.Float64Range(-400, 400).Draw(t, "vy"),
		)

		frames := rapid.IntRange(1, 200).Draw(t, "frames")
		for i := range frames {
			in := core.NewInputFrame()
			if rapid.Bool().Draw(t, "up") {
				in.Set(core.ActionUp)
			}
			if rapid.Bool().Draw(t, "down") {
				in.Set(core.ActionDown)
			}
			step := rapid.Float64Range(0, 0.05).Draw(t, "dt")

			before := g.Score()
			g.Step(in, step)
			after := g.Score()

			dp, do := after.Player-before.Player, after.Opponent-before.Opponent
			if dp < 0 || do < 0 || dp+do > 1 {
				t.Fatalf("frame %d: score %+v -> %+v", i, before, after)
			}
			if dp+do == 1 && b.Pos != (physics.Vec2{}) {
				t.Fatalf("frame %d: ball at %v after a point, expected origin", i, b.Pos)
			}
			if math.Abs(b.Pos.Y)+8 > 360 {
				t.Fatalf("frame %d: ball y = %v is off screen", i, b.Pos.Y)
			}
		}
	})
}

func TestScoreboardSync(t *testing.T) {
	b := NewScoreboard()
	if b.Player != "Player: 0" || b.Opponent != "Opponent: 0" {
		t.Errorf("initial labels = %q / %q", b.Player, b.Opponent)
	}

	if b.Sync(Score{}) {
		t.Error("Sync with unchanged score should report false")
	}
	if !b.Sync(Score{Player: 2, Opponent: 1}) {
		t.Error("Sync with new score should report true")
	}
	if b.Player != "Player: 2" || b.Opponent != "Opponent: 1" {
		t.Errorf("labels = %q / %q, expected Player: 2 / Opponent: 1", b.Player, b.Opponent)
	}
	if b.Sync(Score{Player: 2, Opponent: 1}) {
		t.Error("second Sync with same score should report false")
	}
}

func TestSceneShowsScoreboard(t *testing.T) {
	g := newGame()
	b := ball(g)
	b.Pos = physics.V(640, 0)
	b.Vel = physics.V(400, 0)
	g.Step(core.NewInputFrame(), 0.01)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Player: 1") || !strings.Contains(out, "Opponent: 0") {
		t.Errorf("rendered frame missing scoreboard:\n%s", out)
	}

	g.Step(core.NewInputFrameOf(core.ActionPause), dt)
	if overlay := g.Scene().Overlay; len(overlay) == 0 || overlay[0] != "PAUSED" {
		t.Errorf("Overlay = %v, expected PAUSED", overlay)
	}
}

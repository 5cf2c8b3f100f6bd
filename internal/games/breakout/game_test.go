package breakout

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/physics"
	"github.com/vovakirdan/paddle-arcade/internal/world"
)

const dt = 1.0 / 60.0

func newGame(t *testing.T, mutate func(*config.BreakoutConfig)) *Game {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := NewWithConfig(cfg)
	g.Reset(core.DefaultConfig())
	return g
}

func ball(g *Game) *world.Entity   { return g.world.Single(world.RoleBall) }
func paddle(g *Game) *world.Entity { return g.world.Single(world.RolePlayer) }

// launch switches the game to PhaseInGame without moving anything.
func launch(t *testing.T, g *Game) {
	t.Helper()
	g.Step(core.NewInputFrameOf(core.ActionLaunch), 0)
	if g.Phase() != PhaseInGame {
		t.Fatalf("Phase() = %v after launch, expected in-game", g.Phase())
	}
}

func TestResetSpawnsWorld(t *testing.T) {
	g := newGame(t, nil)

	if g.Phase() != PhaseStart {
		t.Errorf("Phase() = %v, expected start", g.Phase())
	}
	if g.BricksLeft() != 72 || g.BricksTotal() != 72 {
		t.Errorf("bricks = %d/%d, expected 72/72", g.BricksLeft(), g.BricksTotal())
	}

	b, p := ball(g), paddle(g)
	if b.Vel != (physics.Vec2{}) {
		t.Errorf("resting ball velocity = %v, expected zero", b.Vel)
	}
	if b.Pos.X != p.Pos.X {
		t.Errorf("ball x = %v, expected paddle x %v", b.Pos.X, p.Pos.X)
	}
	if wantY := -300.0 + 10 + 4 + 8; b.Pos.Y != wantY {
		t.Errorf("ball y = %v, expected %v", b.Pos.Y, wantY)
	}
}

func TestBallFollowsPaddleInStart(t *testing.T) {
	g := newGame(t, nil)
	startY := ball(g).Pos.Y

	for range 30 {
		g.Step(core.NewInputFrameOf(core.ActionRight), dt)
		if ball(g).Pos.X != paddle(g).Pos.X {
			t.Fatalf("ball x = %v, paddle x = %v; expected equal", ball(g).Pos.X, paddle(g).Pos.X)
		}
	}

	if paddle(g).Pos.X <= 0 {
		t.Errorf("paddle x = %v, expected it to move right", paddle(g).Pos.X)
	}
	if ball(g).Pos.Y != startY {
		t.Errorf("ball y = %v, expected untouched %v", ball(g).Pos.Y, startY)
	}
}

func TestLaunchOnce(t *testing.T) {
	g := newGame(t, nil)
	launch(t, g)

	want := physics.V(1, 1).Normalize().Scale(400)
	if v := ball(g).Vel; math.Abs(v.X-want.X) > 1e-9 || math.Abs(v.Y-want.Y) > 1e-9 {
		t.Errorf("launch velocity = %v, expected %v", v, want)
	}

	// Further launch presses do nothing.
	before := ball(g).Vel
	g.Step(core.NewInputFrameOf(core.ActionLaunch), dt)
	if ball(g).Vel != before {
		t.Errorf("second launch changed velocity: %v -> %v", before, ball(g).Vel)
	}
	if g.Phase() != PhaseInGame {
		t.Errorf("Phase() = %v, expected in-game for good", g.Phase())
	}
}

func TestBallStopsFollowingAfterLaunch(t *testing.T) {
	g := newGame(t, nil)
	launch(t, g)

	ball(g).Vel = physics.Vec2{}
	for range 20 {
		g.Step(core.NewInputFrameOf(core.ActionLeft), dt)
	}
	if ball(g).Pos.X == paddle(g).Pos.X {
		t.Error("ball should no longer track the paddle after launch")
	}
}

func TestInputPriority(t *testing.T) {
	g := newGame(t, nil)

	g.Step(core.NewInputFrameOf(core.ActionLeft, core.ActionRight), dt)
	if v := paddle(g).Vel.X; v != 500 {
		t.Errorf("both keys: paddle vx = %v, expected 500", v)
	}

	g.Step(core.NewInputFrame(), dt)
	if v := paddle(g).Vel.X; v != 0 {
		t.Errorf("no keys: paddle vx = %v, expected 0", v)
	}
}

func TestPaddleClamp(t *testing.T) {
	g := newGame(t, nil)
	p := paddle(g)
	p.Pos.X = -650

	g.Step(core.NewInputFrameOf(core.ActionLeft), 0)

	if p.Pos.X != -589 {
		t.Errorf("paddle x = %v, expected -589 (left edge one unit inside)", p.Pos.X)
	}
	if p.Vel.X != 0 {
		t.Errorf("paddle vx = %v, expected 0 while held against the wall", p.Vel.X)
	}
}

func TestPaddleNeverLeavesScreen(t *testing.T) {
	g := newGame(t, nil)

	for range 300 {
		g.Step(core.NewInputFrameOf(core.ActionRight), dt)
		if right := paddle(g).Pos.X + 50; right > 640 {
			t.Fatalf("paddle right edge = %v, expected <= 640", right)
		}
	}
}

func TestBrickDestroyedExactlyOnce(t *testing.T) {
	g := newGame(t, func(c *config.BreakoutConfig) { c.Bricks.Layout = []string{"R"} })
	launch(t, g)

	bricks := g.world.Query(world.RoleBrick)
	if len(bricks) != 1 {
		t.Fatalf("expected 1 brick, got %d", len(bricks))
	}
	brickID := bricks[0].ID

	b := ball(g)
	b.Pos = physics.V(0, 285)
	b.Vel = physics.V(0, 400)

	res := g.Step(core.NewInputFrame(), 0.01)

	if g.world.Alive(brickID) {
		t.Fatal("brick should be removed on hit")
	}
	if len(res.Events) != 1 {
		t.Fatalf("events = %v, expected one collision", res.Events)
	}
	hit, ok := res.Events[0].(CollisionEvent)
	if !ok || !hit.Brick || hit.Entity != brickID || hit.Side != physics.SideBottom {
		t.Errorf("event = %+v, expected brick %d hit on bottom", res.Events[0], brickID)
	}
	if b.Vel.Y != -400 {
		t.Errorf("ball vy = %v, expected -400 after bottom hit", b.Vel.Y)
	}

	for range 120 {
		res := g.Step(core.NewInputFrame(), dt)
		for _, e := range res.Events {
			if e.(CollisionEvent).Entity == brickID {
				t.Fatal("removed brick was hit again")
			}
		}
	}
	if g.BricksLeft() != 0 {
		t.Errorf("BricksLeft() = %d, expected 0", g.BricksLeft())
	}
	if g.world.Despawn(brickID) {
		t.Error("brick removed twice")
	}
}

func TestPaddleHitKeepsPaddle(t *testing.T) {
	g := newGame(t, func(c *config.BreakoutConfig) { c.Bricks.Layout = nil })
	launch(t, g)

	b := ball(g)
	b.Pos = physics.V(0, -280)
	b.Vel = physics.V(100, -400)

	res := g.Step(core.NewInputFrame(), 0.01)

	if len(res.Events) != 1 || res.Events[0].(CollisionEvent).Brick {
		t.Fatalf("events = %v, expected one paddle collision", res.Events)
	}
	if b.Vel.Y <= 0 {
		t.Errorf("ball vy = %v, expected upward after paddle hit", b.Vel.Y)
	}
	if g.world.Count(world.RolePlayer) != 1 {
		t.Error("paddle should survive a hit")
	}
}

func TestBallBouncesOffAllEdges(t *testing.T) {
	g := newGame(t, func(c *config.BreakoutConfig) { c.Bricks.Layout = nil })
	launch(t, g)

	tests := []struct {
		name  string
		pos   physics.Vec2
		vel   physics.Vec2
		check func(v physics.Vec2) bool
	}{
		{"right", physics.V(630, 0), physics.V(400, 100), func(v physics.Vec2) bool { return v.X < 0 }},
		{"left", physics.V(-630, 0), physics.V(-400, 100), func(v physics.Vec2) bool { return v.X > 0 }},
		{"top", physics.V(0, 350), physics.V(100, 400), func(v physics.Vec2) bool { return v.Y < 0 }},
		{"bottom", physics.V(300, -350), physics.V(100, -400), func(v physics.Vec2) bool { return v.Y > 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := ball(g)
			b.Pos, b.Vel = tc.pos, tc.vel
			g.Step(core.NewInputFrame(), 0.05)
			if !tc.check(b.Vel) {
				t.Errorf("velocity after %s edge = %v", tc.name, b.Vel)
			}
			if math.Abs(b.Pos.X)+8 > 640 || math.Abs(b.Pos.Y)+8 > 360 {
				t.Errorf("ball at %v is outside the screen", b.Pos)
			}
		})
	}
}

func TestBricksOnlyDecrease(t *testing.T) {
	g := newGame(t, nil)
	launch(t, g)

	prev := g.BricksLeft()
	for i := range 3000 {
		in := core.NewInputFrame()
		if i%90 < 45 {
			in.Set(core.ActionLeft)
		} else {
			in.Set(core.ActionRight)
		}
		g.Step(in, dt)

		n := g.BricksLeft()
		if n > prev {
			t.Fatalf("bricks went from %d to %d at frame %d", prev, n, i)
		}
		prev = n
	}
}

func TestPause(t *testing.T) {
	g := newGame(t, nil)
	launch(t, g)

	res := g.Step(core.NewInputFrameOf(core.ActionPause), dt)
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}

	before := ball(g).Pos
	g.Step(core.NewInputFrameOf(core.ActionRight), dt)
	if ball(g).Pos != before {
		t.Error("ball moved while paused")
	}

	res = g.Step(core.NewInputFrameOf(core.ActionPause), dt)
	if res.State.Paused {
		t.Error("second pause press should resume")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 10:
			inputs[i].Set(core.ActionLaunch)
		case i > 10 && i%5 < 3:
			inputs[i].Set(core.ActionRight)
		case i > 10:
			inputs[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := newGame(t, nil)
		for _, in := range inputs {
			g.Step(in, dt)
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.BricksLeft != snap2.BricksLeft {
		t.Errorf("BricksLeft differs: %d vs %d", snap1.BricksLeft, snap2.BricksLeft)
	}
}

func TestParseLayout(t *testing.T) {
	bricks := ParseLayout(config.BreakoutBricks{
		Width: 80, Height: 24, Gap: 6, Top: 320,
		Layout: []string{"R.G", "B"},
	})

	if len(bricks) != 3 {
		t.Fatalf("ParseLayout returned %d bricks, expected 3", len(bricks))
	}

	tests := []struct {
		i        int
		row, col int
		x, y     float64
		color    core.Color
	}{
		{0, 0, 0, -86, 308, core.ColorRed},
		{1, 0, 2, 86, 308, core.ColorGreen},
		{2, 1, 0, -86, 278, core.ColorBlue},
	}
	for _, tc := range tests {
		b := bricks[tc.i]
		if b.Row != tc.row || b.Col != tc.col || b.Pos != physics.V(tc.x, tc.y) || b.Color != tc.color {
			t.Errorf("brick %d = %+v, expected row %d col %d at (%v, %v) color %v",
				tc.i, b, tc.row, tc.col, tc.x, tc.y, tc.color)
		}
	}

	if got := ParseLayout(config.BreakoutBricks{}); got != nil {
		t.Errorf("empty layout = %v, expected nil", got)
	}
}

func TestSceneAndRender(t *testing.T) {
	g := newGame(t, nil)

	scene := g.Scene()
	if len(scene.Sprites) != 74 {
		t.Errorf("scene has %d sprites, expected 74 (paddle, ball, 72 bricks)", len(scene.Sprites))
	}
	found := false
	for _, l := range scene.Labels {
		if l.Text == "Bricks: 72/72" {
			found = true
		}
		if l.Text == launchHint && g.Phase() != PhaseStart {
			t.Error("launch hint shown outside start phase")
		}
	}
	if !found {
		t.Error("bricks counter label missing")
	}

	g.Step(core.NewInputFrameOf(core.ActionPause), dt)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused frame should show PAUSED")
	}
}

package breakout

import (
	"math"

	"github.com/vovakirdan/paddle-arcade/internal/world"
)

// Snapshot contains the simulation state in primitive types, for
// determinism checks and debug logging.
type Snapshot struct {
	Tick       uint64
	Phase      int
	BallX      float64
	BallY      float64
	BallVX     float64
	BallVY     float64
	PaddleX    float64
	PaddleVX   float64
	BricksLeft int
	BrickIDs   []uint32 // live bricks in spawn order
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	ball := g.world.Single(world.RoleBall)
	paddle := g.world.Single(world.RolePlayer)

	bricks := g.world.Query(world.RoleBrick)
	ids := make([]uint32, len(bricks))
	for i, b := range bricks {
		ids[i] = uint32(b.ID)
	}

	return Snapshot{
		Tick:       g.tick,
		Phase:      int(g.phase),
		BallX:      ball.Pos.X,
		BallY:      ball.Pos.Y,
		BallVX:     ball.Vel.X,
		BallVY:     ball.Vel.Y,
		PaddleX:    paddle.Pos.X,
		PaddleVX:   paddle.Vel.X,
		BricksLeft: len(bricks),
		BrickIDs:   ids,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.PaddleX, snap.PaddleVX} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + uint64(snap.BricksLeft) //#nosec G115 -- hash computation

	for _, id := range snap.BrickIDs {
		h = h*31 + uint64(id)
	}

	return h
}

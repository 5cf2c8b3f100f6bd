package breakout

import (
	"fmt"

	"github.com/vovakirdan/paddle-arcade/internal/physics"
	"github.com/vovakirdan/paddle-arcade/internal/world"
)

// Phase is the game phase. It moves from PhaseStart to PhaseInGame once per
// session and never back.
type Phase int

const (
	PhaseStart  Phase = iota // ball rests on the paddle
	PhaseInGame              // ball launched
)

func (p Phase) String() string {
	if p == PhaseInGame {
		return "in-game"
	}
	return "start"
}

// CollisionEvent is raised for every contact between the ball and a collider.
// Nothing in the game reacts to it; frontends log it.
type CollisionEvent struct {
	Entity world.EntityID // the collider that was struck
	Side   physics.Side
	Brick  bool // the collider was a brick and has been removed
}

// Kind implements core.Event.
func (e CollisionEvent) Kind() string {
	return "collision"
}

func (e CollisionEvent) String() string {
	what := "paddle"
	if e.Brick {
		what = "brick"
	}
	return fmt.Sprintf("ball hit %s %d on %s side", what, e.Entity, e.Side)
}

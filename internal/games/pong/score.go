package pong

import "fmt"

// Score holds both counters of one game instance.
type Score struct {
	Player   int
	Opponent int
}

// Scored names who won a rally. The collision stage produces at most one
// per frame and the score stage consumes it in the same frame.
type Scored int

const (
	ScoredNone Scored = iota
	ScoredPlayer
	ScoredOpponent
)

func (s Scored) String() string {
	switch s {
	case ScoredPlayer:
		return "player"
	case ScoredOpponent:
		return "opponent"
	default:
		return "none"
	}
}

// Kind implements core.Event.
func (s Scored) Kind() string {
	return "scored"
}

// Scoreboard holds the two score labels shown on screen.
type Scoreboard struct {
	Player   string
	Opponent string

	last   Score
	synced bool
}

// NewScoreboard returns a board showing 0 - 0.
func NewScoreboard() *Scoreboard {
	b := &Scoreboard{}
	b.Sync(Score{})
	return b
}

// Sync rewrites the labels if s differs from the last synced score and
// reports whether it did.
func (b *Scoreboard) Sync(s Score) bool {
	if b.synced && s == b.last {
		return false
	}
	b.Player = fmt.Sprintf("Player: %d", s.Player)
	b.Opponent = fmt.Sprintf("Opponent: %d", s.Opponent)
	b.last = s
	b.synced = true
	return true
}

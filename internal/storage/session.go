package storage

import (
	"time"

	"github.com/vovakirdan/paddle-arcade/internal/core"
)

// Session describes one finished stretch of play, from start or restart
// until the player left.
type Session struct {
	GameID     string
	SessionID  string
	Difficulty string
	State      core.GameState
	Played     time.Duration
}

// RecordSession saves the player's points as a score and, when anyone
// scored, the full result as a match. The returned match is nil when no
// match was recorded.
func (s *Store) RecordSession(sess Session) (*MatchResult, error) {
	st := sess.State
	if st.Score > 0 {
		if _, err := s.SaveScore(sess.GameID, st.Score); err != nil {
			return nil, err
		}
	}
	if st.Score+st.Opponent == 0 {
		return nil, nil
	}

	m, err := s.SaveMatch(MatchResult{
		GameID:        sess.GameID,
		SessionID:     sess.SessionID,
		Difficulty:    sess.Difficulty,
		PlayerScore:   st.Score,
		OpponentScore: st.Opponent,
		Duration:      int(sess.Played.Seconds()),
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

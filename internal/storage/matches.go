package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MatchResult is the outcome of one finished two-sided session.
type MatchResult struct {
	ID            int64
	MatchID       string // uuid, generated on save when empty
	GameID        string
	SessionID     string // SSH session that played it, empty for local play
	Difficulty    string
	PlayerScore   int
	OpponentScore int
	Duration      int // Duration in seconds
	CreatedAt     time.Time
}

// Outcome returns "win", "loss" or "draw" from the player's side.
func (m MatchResult) Outcome() string {
	switch {
	case m.PlayerScore > m.OpponentScore:
		return "win"
	case m.PlayerScore < m.OpponentScore:
		return "loss"
	default:
		return "draw"
	}
}

// MatchStats summarises the match history of a game.
type MatchStats struct {
	Played int
	Wins   int
	Losses int
	Draws  int
}

const matchColumns = `id, match_id, game_id, session_id, difficulty,
	player_score, opponent_score, duration_secs, created_at`

// SaveMatch records a finished match and returns it with ID and MatchID set.
func (s *Store) SaveMatch(m MatchResult) (MatchResult, error) {
	if m.MatchID == "" {
		m.MatchID = uuid.NewString()
	}
	if m.Difficulty == "" {
		m.Difficulty = "normal"
	}

	res, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, game_id, session_id, difficulty, player_score, opponent_score, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.MatchID,
		m.GameID,
		m.SessionID,
		m.Difficulty,
		m.PlayerScore,
		m.OpponentScore,
		m.Duration,
	)
	if err != nil {
		return m, fmt.Errorf("storage: cannot save match: %w", err)
	}

	m.ID, err = res.LastInsertId()
	if err != nil {
		return m, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return m, nil
}

// MatchByID retrieves a match by its match ID. Returns nil if not found.
func (s *Store) MatchByID(matchID string) (*MatchResult, error) {
	row := s.db.QueryRow(
		`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`,
		matchID,
	)

	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &m, nil
}

// RecentMatches retrieves the most recent matches of a game, newest first.
func (s *Store) RecentMatches(gameID string, limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// GetMatchStats counts wins, losses and draws for a game.
func (s *Store) GetMatchStats(gameID string) (MatchStats, error) {
	var st MatchStats
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN player_score > opponent_score THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN player_score < opponent_score THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN player_score = opponent_score THEN 1 ELSE 0 END), 0)
		 FROM matches WHERE game_id = ?`,
		gameID,
	).Scan(&st.Played, &st.Wins, &st.Losses, &st.Draws)
	if err != nil {
		return st, fmt.Errorf("storage: cannot get match stats: %w", err)
	}
	return st, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(r rowScanner) (MatchResult, error) {
	var m MatchResult
	var createdAt any
	err := r.Scan(
		&m.ID,
		&m.MatchID,
		&m.GameID,
		&m.SessionID,
		&m.Difficulty,
		&m.PlayerScore,
		&m.OpponentScore,
		&m.Duration,
		&createdAt,
	)
	if err != nil {
		return m, err
	}
	m.CreatedAt = parseTime(createdAt)
	return m, nil
}

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/core"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, expected MenuModel", next)
	}
	return mm
}

func TestMenuDifficultySelection(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	if m.Difficulty() != config.DifficultyNormal {
		t.Fatalf("default difficulty = %v, expected normal", m.Difficulty())
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyHard {
		t.Errorf("difficulty = %v, expected hard (clamped)", m.Difficulty())
	}
	if m.Config().Difficulty != "hard" {
		t.Errorf("Config().Difficulty = %q, expected hard", m.Config().Difficulty)
	}

	for range 3 {
		m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("difficulty = %v, expected easy (clamped)", m.Difficulty())
	}
}

func TestMenuStartsFromConfiguredDifficulty(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Difficulty = "Easy"

	m := NewMenuModel(nil, cfg)
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("difficulty = %v, expected easy", m.Difficulty())
	}
	if !strings.Contains(m.View(), "[EASY]") {
		t.Error("View should mark the selected difficulty")
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := menuUpdate(t, NewMenuModel(nil, core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m = menuUpdate(t, NewMenuModel(nil, core.DefaultConfig()), runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[int]string{0: "0:00", 59: "0:59", 61: "1:01", 600: "10:00"}
	for secs, want := range tests {
		if got := formatDuration(secs); got != want {
			t.Errorf("formatDuration(%d) = %q, expected %q", secs, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Brick Breaker", 6); got != "Brick." {
		t.Errorf("truncate = %q, expected %q", got, "Brick.")
	}
	if got := truncate("Pong", 6); got != "Pong" {
		t.Errorf("truncate = %q, expected %q", got, "Pong")
	}
}

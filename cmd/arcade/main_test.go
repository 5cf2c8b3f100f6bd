package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/paddle-arcade/internal/storage"
)

func TestListShowsBothGames(t *testing.T) {
	var out bytes.Buffer
	listCmd.SetOut(&out)
	runList(listCmd, nil)

	for _, want := range []string{"breakout", "Brick Breaker", "pong", "Pong"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("list output missing %q:\n%s", want, out.String())
		}
	}
}

func TestLookupGameUnknown(t *testing.T) {
	if _, err := lookupGame("tetris"); err == nil {
		t.Error("expected an error for an unknown game")
	}
	if g, err := lookupGame("pong"); err != nil || g.ID() != "pong" {
		t.Errorf("lookupGame(pong) = %v, %v", g, err)
	}
}

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "arcade.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	var out bytes.Buffer
	if err := printScores(&out, store, "pong", "Pong", 10); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	if !strings.Contains(out.String(), "No scores recorded yet.") {
		t.Errorf("empty store should say so:\n%s", out.String())
	}

	if _, err := store.SaveScore("pong", 4); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}
	if _, err := store.SaveMatch(storage.MatchResult{GameID: "pong", PlayerScore: 4, OpponentScore: 6, Difficulty: "hard"}); err != nil {
		t.Fatalf("SaveMatch: %v", err)
	}

	out.Reset()
	if err := printScores(&out, store, "pong", "Pong", 10); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	for _, want := range []string{"Best: 4", "played 1, won 0, lost 1", "4-6", "loss", "hard"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	old := flagLogLevel
	t.Cleanup(func() { flagLogLevel = old })

	flagLogLevel = "loud"
	if _, _, err := newLogger(&bytes.Buffer{}); err == nil {
		t.Error("expected an error for an unknown log level")
	}

	flagLogLevel = "debug"
	var buf bytes.Buffer
	logger, closeLog, err := newLogger(&buf)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	defer closeLog()

	logger.Debug("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("debug message should be written, got %q", buf.String())
	}
}

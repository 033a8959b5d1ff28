package main

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/runner-dash/internal/storage"
)

func TestRoundsTable(t *testing.T) {
	rounds := []storage.Round{
		{Outcome: storage.OutcomeWon, Passes: 10, Ticks: 1234, Player: "alice", CreatedAt: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)},
		{Outcome: storage.OutcomeLost, Passes: 3, Ticks: 456, Player: storage.LocalPlayer},
	}

	out := roundsTable(rounds)

	for _, want := range []string{"Outcome", "Player", "2026-01-02 03:04", "won", "lost", "10/10", "3/10", "1234", "alice", "local"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	// Newest first order is preserved
	if strings.Index(out, "alice") > strings.Index(out, "local") {
		t.Error("rounds should keep their order")
	}
}

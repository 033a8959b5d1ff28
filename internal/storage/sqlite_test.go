package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestJournalOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	j, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer j.Close()

	// Check that the file and its parent directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestJournalReopenKeepsRounds(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	j, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := j.RecordRound(Round{Outcome: OutcomeWon, Passes: 10, Ticks: 900}); err != nil {
		t.Fatalf("RecordRound() failed: %v", err)
	}
	j.Close()

	j, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer j.Close()

	totals, err := j.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if totals.Rounds != 1 {
		t.Errorf("Expected 1 round after reopen, got %d", totals.Rounds)
	}
}

func TestRecordAndRecentRounds(t *testing.T) {
	j := openTestJournal(t)

	rounds := []Round{
		{Outcome: OutcomeLost, Passes: 3, Ticks: 400},
		{Outcome: OutcomeWon, Passes: 10, Ticks: 1200, Player: "alice"},
		{Outcome: OutcomeLost, Passes: 0, Ticks: 191},
	}
	for _, r := range rounds {
		if _, err := j.RecordRound(r); err != nil {
			t.Fatalf("RecordRound() failed: %v", err)
		}
	}

	got, err := j.RecentRounds(10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(got))
	}

	// Newest first
	if got[0].Ticks != 191 || got[2].Ticks != 400 {
		t.Errorf("Expected newest first, got ticks %d, %d, %d", got[0].Ticks, got[1].Ticks, got[2].Ticks)
	}
	if got[1].Player != "alice" || got[1].Outcome != OutcomeWon || got[1].Passes != 10 {
		t.Errorf("Unexpected round: %+v", got[1])
	}
	if got[0].Player != LocalPlayer {
		t.Errorf("Expected empty player to be stored as %q, got %q", LocalPlayer, got[0].Player)
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}

	limited, err := j.RecentRounds(2)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 rounds with limit, got %d", len(limited))
	}
}

func TestRecordRoundRejectsUnfinished(t *testing.T) {
	j := openTestJournal(t)

	_, err := j.RecordRound(Round{Outcome: "running"})
	if !errors.Is(err, ErrInvalidOutcome) {
		t.Errorf("Expected ErrInvalidOutcome, got %v", err)
	}

	totals, err := j.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if totals.Rounds != 0 {
		t.Errorf("Expected no rounds recorded, got %d", totals.Rounds)
	}
}

func TestTotals(t *testing.T) {
	j := openTestJournal(t)

	totals, err := j.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if totals != (Totals{}) || totals.WinRate() != 0 {
		t.Errorf("Expected empty totals, got %+v", totals)
	}

	for _, o := range []Outcome{OutcomeWon, OutcomeLost, OutcomeLost, OutcomeWon} {
		if _, err := j.RecordRound(Round{Outcome: o}); err != nil {
			t.Fatalf("RecordRound() failed: %v", err)
		}
	}

	totals, err = j.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if totals.Rounds != 4 || totals.Wins != 2 || totals.Losses != 2 {
		t.Errorf("Unexpected totals: %+v", totals)
	}
	if totals.WinRate() != 0.5 {
		t.Errorf("Expected win rate 0.5, got %v", totals.WinRate())
	}
}

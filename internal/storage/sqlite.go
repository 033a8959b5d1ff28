// Package storage provides a SQLite journal of finished runner rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome is how a round finished.
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
)

// ErrInvalidOutcome is returned when recording a round that did not finish.
var ErrInvalidOutcome = errors.New("invalid outcome")

// LocalPlayer is the player name recorded for terminal and window sessions.
const LocalPlayer = "local"

// Journal manages the SQLite database of finished rounds.
type Journal struct {
	db *sql.DB
}

// Round is a single finished round.
type Round struct {
	ID        int64
	Outcome   Outcome
	Passes    int // Obstacles cleared before the round ended
	Ticks     int // Simulation ticks the round lasted
	Player    string
	CreatedAt time.Time
}

// Totals aggregates every recorded round.
type Totals struct {
	Rounds int
	Wins   int
	Losses int
}

// WinRate returns the fraction of rounds won, or 0 with no rounds.
func (t Totals) WinRate() float64 {
	if t.Rounds == 0 {
		return 0
	}
	return float64(t.Wins) / float64(t.Rounds)
}

// Open creates or opens a SQLite journal at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Journal, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	j := &Journal{db: db}

	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return j, nil
}

// migrate creates the database schema if it doesn't exist.
func (j *Journal) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			outcome TEXT NOT NULL,
			passes INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			player TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_created ON rounds(created_at DESC);
	`

	_, err := j.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// RecordRound appends a finished round. An empty player is recorded as LocalPlayer.
// Returns the ID of the inserted record.
func (j *Journal) RecordRound(r Round) (int64, error) {
	if r.Outcome != OutcomeWon && r.Outcome != OutcomeLost {
		return 0, fmt.Errorf("storage: %w: %q", ErrInvalidOutcome, r.Outcome)
	}
	if r.Player == "" {
		r.Player = LocalPlayer
	}

	result, err := j.db.Exec(
		"INSERT INTO rounds (outcome, passes, ticks, player) VALUES (?, ?, ?, ?)",
		string(r.Outcome), r.Passes, r.Ticks, r.Player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRounds retrieves the most recently recorded rounds, newest first.
func (j *Journal) RecentRounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.Query(
		`SELECT id, outcome, passes, ticks, player, created_at
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var outcome string
		var createdAt any
		if err := rows.Scan(&r.ID, &outcome, &r.Passes, &r.Ticks, &r.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// Totals counts recorded rounds by outcome.
func (j *Journal) Totals() (Totals, error) {
	var t Totals
	err := j.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0)
		 FROM rounds`,
		string(OutcomeWon), string(OutcomeLost),
	).Scan(&t.Rounds, &t.Wins, &t.Losses)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot count rounds: %w", err)
	}
	return t, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

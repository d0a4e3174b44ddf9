// Package storage provides SQLite-based persistence for match outcomes.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for outcome persistence.
type Store struct {
	db *sql.DB
}

// MatchResult is the outcome of one game (a sequence of rounds).
type MatchResult struct {
	ID        int64
	MatchID   string
	Player1   string
	Player2   string
	Score1    int
	Score2    int
	Winner    string // Empty on a draw or an abandoned game
	Rounds    int
	Duration  float64 // Seconds of simulated play
	Completed bool    // False if the game was abandoned
	CreatedAt time.Time
}

// RoundResult is the outcome of one round.
type RoundResult struct {
	ID        int64
	MatchID   string
	Round     int
	Winner    string // Empty on a draw
	Lives1    int
	Lives2    int
	Duration  float64
	TimedOut  bool
	Detail    RoundDetail
	CreatedAt time.Time
}

// RoundDetail holds per-round counters, indexed by player (0 = Player1).
// Stored as a msgpack blob.
type RoundDetail struct {
	Hits     [2]int   `msgpack:"hits"`
	Bombs    [2]int   `msgpack:"bombs"`
	PowerUps [2]int   `msgpack:"powerups"`
	Pickups  []string `msgpack:"pickups,omitempty"`
}

// PlayerStats contains aggregated results for one player name.
type PlayerStats struct {
	Name      string
	Matches   int
	Wins      int
	Losses    int
	Draws     int
	RoundsWon int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

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

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			player1 TEXT NOT NULL,
			player2 TEXT NOT NULL,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			winner TEXT,
			rounds INTEGER NOT NULL DEFAULT 0,
			duration_secs REAL NOT NULL DEFAULT 0,
			completed INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_player1 ON matches(player1);
		CREATE INDEX IF NOT EXISTS idx_matches_player2 ON matches(player2);

		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL,
			round INTEGER NOT NULL,
			winner TEXT,
			lives1 INTEGER NOT NULL DEFAULT 0,
			lives2 INTEGER NOT NULL DEFAULT 0,
			duration_secs REAL NOT NULL DEFAULT 0,
			timed_out INTEGER NOT NULL DEFAULT 0,
			detail BLOB,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_match_id ON rounds(match_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records the result of a game.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(result MatchResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, player1, player2, score1, score2, winner, rounds, duration_secs, completed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.MatchID,
		result.Player1,
		result.Player2,
		result.Score1,
		result.Score2,
		result.Winner,
		result.Rounds,
		result.Duration,
		result.Completed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveRound records the result of a round. The detail counters are
// encoded with msgpack.
func (s *Store) SaveRound(result RoundResult) (int64, error) {
	detail, err := msgpack.Marshal(result.Detail)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode round detail: %w", err)
	}

	res, err := s.db.Exec(
		`INSERT INTO rounds
		 (match_id, round, winner, lives1, lives2, duration_secs, timed_out, detail)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		result.MatchID,
		result.Round,
		result.Winner,
		result.Lives1,
		result.Lives2,
		result.Duration,
		result.TimedOut,
		detail,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const matchColumns = `id, match_id, player1, player2, score1, score2, winner,
	rounds, duration_secs, completed, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (MatchResult, error) {
	var result MatchResult
	var winner sql.NullString
	var createdAt any

	err := row.Scan(
		&result.ID,
		&result.MatchID,
		&result.Player1,
		&result.Player2,
		&result.Score1,
		&result.Score2,
		&winner,
		&result.Rounds,
		&result.Duration,
		&result.Completed,
		&createdAt,
	)
	if err != nil {
		return result, err
	}

	if winner.Valid {
		result.Winner = winner.String
	}
	result.CreatedAt = parseTimestamp(createdAt)
	return result, nil
}

// MatchByID retrieves a game by its match ID. Returns nil if not found.
func (s *Store) MatchByID(matchID string) (*MatchResult, error) {
	result, err := scanMatch(s.db.QueryRow(
		`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`,
		matchID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &result, nil
}

// RecentMatches retrieves the most recent games, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		result, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// MatchRounds retrieves every round of a game in play order.
func (s *Store) MatchRounds(matchID string) ([]RoundResult, error) {
	rows, err := s.db.Query(
		`SELECT id, match_id, round, winner, lives1, lives2, duration_secs, timed_out, detail, created_at
		 FROM rounds
		 WHERE match_id = ?
		 ORDER BY round ASC`,
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var results []RoundResult
	for rows.Next() {
		var result RoundResult
		var winner sql.NullString
		var detail []byte
		var createdAt any

		if err := rows.Scan(
			&result.ID,
			&result.MatchID,
			&result.Round,
			&winner,
			&result.Lives1,
			&result.Lives2,
			&result.Duration,
			&result.TimedOut,
			&detail,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		if winner.Valid {
			result.Winner = winner.String
		}
		if len(detail) > 0 {
			if err := msgpack.Unmarshal(detail, &result.Detail); err != nil {
				return nil, fmt.Errorf("storage: cannot decode round detail: %w", err)
			}
		}
		result.CreatedAt = parseTimestamp(createdAt)
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// PlayerRecord aggregates completed games for one player name.
func (s *Store) PlayerRecord(name string) (*PlayerStats, error) {
	stats := &PlayerStats{Name: name}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner <> '' AND winner <> ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner IS NULL OR winner = '' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN player1 = ? THEN score1 ELSE score2 END), 0)
		 FROM matches
		 WHERE completed = 1 AND (player1 = ? OR player2 = ?)`,
		name, name, name, name, name,
	).Scan(&stats.Matches, &stats.Wins, &stats.Losses, &stats.Draws, &stats.RoundsWon)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player record: %w", err)
	}

	return stats, nil
}

// Leaderboard returns players ranked by completed games won, then by
// rounds won.
func (s *Store) Leaderboard(limit int) ([]PlayerStats, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT name,
		        COUNT(*),
		        SUM(CASE WHEN winner = name THEN 1 ELSE 0 END) AS wins,
		        SUM(CASE WHEN winner <> '' AND winner <> name THEN 1 ELSE 0 END),
		        SUM(CASE WHEN winner IS NULL OR winner = '' THEN 1 ELSE 0 END),
		        SUM(score) AS rounds_won
		 FROM (
		     SELECT player1 AS name, score1 AS score, winner FROM matches WHERE completed = 1
		     UNION ALL
		     SELECT player2 AS name, score2 AS score, winner FROM matches WHERE completed = 1
		 )
		 GROUP BY name
		 ORDER BY wins DESC, rounds_won DESC, name ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var results []PlayerStats
	for rows.Next() {
		var p PlayerStats
		if err := rows.Scan(&p.Name, &p.Matches, &p.Wins, &p.Losses, &p.Draws, &p.RoundsWon); err != nil {
			return nil, fmt.Errorf("storage: cannot scan leaderboard row: %w", err)
		}
		results = append(results, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ClearHistory deletes every stored match and round.
func (s *Store) ClearHistory() error {
	if _, err := s.db.Exec("DELETE FROM rounds; DELETE FROM matches;"); err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and string datetime values.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

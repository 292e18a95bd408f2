package main

import (
	"database/sql"
	"log"
	"math"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database connection
type DB struct {
	conn *sql.DB
}

// PlayerRow represents an account record
type PlayerRow struct {
	ID        int64
	Username  string
	PassHash  string
	CreatedAt time.Time
}

// StatsRow represents accumulated per-account stats
type StatsRow struct {
	PlayerID  int64
	BestScore int
	Kills     int
	Runs      int
	Playtime  float64 // seconds survived across all runs
	XP        int
	Level     int
}

// RunRow represents one completed round
type RunRow struct {
	ID           int64
	PlayerID     int64 // 0 for guest runs
	Name         string
	Preset       string
	Score        int
	Kills        int
	Duration     float64
	LevelReached int
	CreatedAt    time.Time
}

// OpenDB opens (or creates) the SQLite database
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL for better concurrency between the run recorder and the
	// analytics writer
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, err
	}
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates tables if they don't exist
func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS players (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		pass_hash TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS stats (
		player_id INTEGER PRIMARY KEY REFERENCES players(id),
		best_score INTEGER NOT NULL DEFAULT 0,
		kills INTEGER NOT NULL DEFAULT 0,
		runs INTEGER NOT NULL DEFAULT 0,
		playtime REAL NOT NULL DEFAULT 0,
		xp INTEGER NOT NULL DEFAULT 0,
		level INTEGER NOT NULL DEFAULT 1
	);

	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_id INTEGER REFERENCES players(id),
		name TEXT NOT NULL DEFAULT '',
		preset TEXT NOT NULL DEFAULT 'normal',
		score INTEGER NOT NULL DEFAULT 0,
		kills INTEGER NOT NULL DEFAULT 0,
		duration REAL NOT NULL DEFAULT 0,
		level_reached INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS achievements (
		player_id INTEGER NOT NULL REFERENCES players(id),
		achievement_id TEXT NOT NULL,
		unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (player_id, achievement_id)
	);

	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS analytics_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_type TEXT NOT NULL,
		player_id INTEGER,
		session_id TEXT,
		data TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player_id);
	CREATE INDEX IF NOT EXISTS idx_players_username ON players(username);
	CREATE INDEX IF NOT EXISTS idx_events_type ON analytics_events(event_type);
	`
	_, err := db.conn.Exec(schema)
	if err != nil {
		log.Printf("DB migration error: %v", err)
	}
	return err
}

// CreatePlayer creates a new account and its stats row, returning the
// player ID
func (db *DB) CreatePlayer(username, passHash string) (int64, error) {
	res, err := db.conn.Exec(
		"INSERT INTO players (username, pass_hash) VALUES (?, ?)",
		username, passHash,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	_, err = db.conn.Exec("INSERT INTO stats (player_id) VALUES (?)", id)
	return id, err
}

// GetPlayerByUsername returns an account by username, nil if absent
func (db *DB) GetPlayerByUsername(username string) (*PlayerRow, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, pass_hash, created_at FROM players WHERE username = ?",
		username,
	)
	p := &PlayerRow{}
	err := row.Scan(&p.ID, &p.Username, &p.PassHash, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

// GetPlayerByID returns an account by ID, nil if absent
func (db *DB) GetPlayerByID(id int64) (*PlayerRow, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, pass_hash, created_at FROM players WHERE id = ?",
		id,
	)
	p := &PlayerRow{}
	err := row.Scan(&p.ID, &p.Username, &p.PassHash, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

// UsernameExists checks if a username is taken
func (db *DB) UsernameExists(username string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM players WHERE username = ?", username).Scan(&count)
	return count > 0, err
}

// GetStats returns account stats, nil if absent
func (db *DB) GetStats(playerID int64) (*StatsRow, error) {
	row := db.conn.QueryRow(
		"SELECT player_id, best_score, kills, runs, playtime, xp, level FROM stats WHERE player_id = ?",
		playerID,
	)
	s := &StatsRow{}
	err := row.Scan(&s.PlayerID, &s.BestScore, &s.Kills, &s.Runs, &s.Playtime, &s.XP, &s.Level)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return s, err
}

// XPForRun returns the XP earned by one completed round
func XPForRun(score, kills int, durationSec float64) int {
	return 10 + score/2 + kills*2 + int(durationSec/10)
}

// XPForLevel returns the total XP required to reach a given level.
// Level 1 requires 0 XP. Formula: sum of 100 * i^1.5 for i in 1..level-1.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	total := 0.0
	for i := 1; i < level; i++ {
		total += 100.0 * math.Pow(float64(i), 1.5)
	}
	return int(total)
}

// CalculateLevel returns the level for a given total XP amount
func CalculateLevel(totalXP int) int {
	level := 1
	for {
		needed := XPForLevel(level + 1)
		if totalXP < needed {
			return level
		}
		level++
		if level > 100 { // cap
			return 100
		}
	}
}

// RecordRun persists one completed round. playerID 0 records a guest
// run under the given display name.
func (db *DB) RecordRun(playerID int64, name, preset string, score, kills int, durationSec float64, levelReached int) (int64, error) {
	pid := sql.NullInt64{Int64: playerID, Valid: playerID > 0}
	res, err := db.conn.Exec(
		`INSERT INTO runs (player_id, name, preset, score, kills, duration, level_reached)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		pid, name, preset, score, kills, durationSec, levelReached,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateStatsAfterRun folds a finished round into account stats.
// Returns (totalXP, newLevel, bestScore).
func (db *DB) UpdateStatsAfterRun(playerID int64, score, kills int, durationSec float64, xpEarned int) (int, int, int, error) {
	_, err := db.conn.Exec(`
		UPDATE stats SET
			best_score = MAX(best_score, ?),
			kills = kills + ?,
			runs = runs + 1,
			playtime = playtime + ?,
			xp = xp + ?
		WHERE player_id = ?`,
		score, kills, durationSec, xpEarned, playerID,
	)
	if err != nil {
		return 0, 0, 0, err
	}

	var totalXP, best int
	err = db.conn.QueryRow("SELECT xp, best_score FROM stats WHERE player_id = ?", playerID).Scan(&totalXP, &best)
	if err != nil {
		return 0, 0, 0, err
	}
	newLevel := CalculateLevel(totalXP)

	_, err = db.conn.Exec("UPDATE stats SET level = ? WHERE player_id = ?", newLevel, playerID)
	return totalXP, newLevel, best, err
}

// LeaderboardEntry represents one row in the high-score table
type LeaderboardEntry struct {
	Rank     int     `json:"rank"`
	Name     string  `json:"name"`
	Preset   string  `json:"preset"`
	Score    int     `json:"score"`
	Kills    int     `json:"kills"`
	Duration float64 `json:"duration"`
	Level    int     `json:"level"`
}

// GetLeaderboard returns the top runs by score
func (db *DB) GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	rows, err := db.conn.Query(`
		SELECT COALESCE(p.username, r.name), r.preset, r.score, r.kills, r.duration, r.level_reached
		FROM runs r LEFT JOIN players p ON p.id = r.player_id
		ORDER BY r.score DESC, r.duration DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []LeaderboardEntry
	rank := 1
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.Name, &e.Preset, &e.Score, &e.Kills, &e.Duration, &e.Level); err != nil {
			return nil, err
		}
		e.Rank = rank
		rank++
		result = append(result, e)
	}
	return result, rows.Err()
}

// GetRunHistory returns an account's recent runs
func (db *DB) GetRunHistory(playerID int64, limit int) ([]RunRow, error) {
	rows, err := db.conn.Query(`
		SELECT id, name, preset, score, kills, duration, level_reached, created_at
		FROM runs WHERE player_id = ?
		ORDER BY created_at DESC LIMIT ?`,
		playerID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []RunRow
	for rows.Next() {
		r := RunRow{PlayerID: playerID}
		if err := rows.Scan(&r.ID, &r.Name, &r.Preset, &r.Score, &r.Kills, &r.Duration, &r.LevelReached, &r.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// UnlockAchievement records an unlock, returning true if it was new
func (db *DB) UnlockAchievement(playerID int64, achievementID string) (bool, error) {
	res, err := db.conn.Exec(
		"INSERT OR IGNORE INTO achievements (player_id, achievement_id) VALUES (?, ?)",
		playerID, achievementID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// GetAchievements returns the IDs of an account's unlocked achievements
func (db *DB) GetAchievements(playerID int64) ([]string, error) {
	rows, err := db.conn.Query(
		"SELECT achievement_id FROM achievements WHERE player_id = ?",
		playerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	return result, rows.Err()
}

// GetSetting returns a settings value, empty string if absent
func (db *DB) GetSetting(key string) string {
	var value string
	err := db.conn.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		return ""
	}
	return value
}

// SetSetting upserts a settings value
func (db *DB) SetSetting(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}

// Package history is a small SQLite-backed session ledger: it records
// observed proxy connections (connect/disconnect times, frames and
// bytes sent) for the "waylinkd sessions" command. Purely diagnostic —
// it observes the core and never gates or alters protocol behavior.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Session is one recorded connection's observed lifecycle.
type Session struct {
	ID             string
	ConnectedAt    time.Time
	DisconnectedAt sql.NullTime
	FramesSent     int64
	BytesSent      int64
	RemoteNote     string
}

type Manager struct {
	db *sql.DB
}

// NewManager opens (creating if absent) the sqlite database at dbPath.
func NewManager(dbPath string) (*Manager, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	m := &Manager{db: db}
	if err := m.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return m, nil
}

func (m *Manager) init() error {
	_, err := m.db.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		connected_at DATETIME NOT NULL,
		disconnected_at DATETIME,
		frames_sent INTEGER NOT NULL DEFAULT 0,
		bytes_sent INTEGER NOT NULL DEFAULT 0,
		remote_note TEXT
	)`)
	return err
}

func (m *Manager) Close() error {
	return m.db.Close()
}

// RecordConnect inserts a new session row at connect time.
func (m *Manager) RecordConnect(id string, connectedAt time.Time, remoteNote string) error {
	_, err := m.db.Exec(
		`INSERT OR REPLACE INTO sessions (id, connected_at, remote_note) VALUES (?, ?, ?)`,
		id, connectedAt, remoteNote,
	)
	if err != nil {
		return fmt.Errorf("failed to record session connect: %w", err)
	}
	return nil
}

// RecordDisconnect stamps a session's end time and final counters.
func (m *Manager) RecordDisconnect(id string, disconnectedAt time.Time, framesSent, bytesSent int64) error {
	_, err := m.db.Exec(
		`UPDATE sessions SET disconnected_at = ?, frames_sent = ?, bytes_sent = ? WHERE id = ?`,
		disconnectedAt, framesSent, bytesSent, id,
	)
	if err != nil {
		return fmt.Errorf("failed to record session disconnect: %w", err)
	}
	return nil
}

// Recent returns up to n sessions, most recently connected first.
func (m *Manager) Recent(n int) ([]Session, error) {
	rows, err := m.db.Query(
		`SELECT id, connected_at, disconnected_at, frames_sent, bytes_sent, remote_note
		 FROM sessions ORDER BY connected_at DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []Session{}
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.ConnectedAt, &s.DisconnectedAt, &s.FramesSent, &s.BytesSent, &s.RemoteNote); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// DefaultDBPath returns the default history database location: a
// per-user cache directory, falling back to the OS temp dir if that
// can't be determined.
func DefaultDBPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "waylink", "history.db")
}

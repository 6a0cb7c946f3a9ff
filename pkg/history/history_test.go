package history

import (
	"path/filepath"
	"testing"
	"time"
)

func TestRecordConnectAndRecent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	m, err := NewManager(dbPath)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	defer m.Close()

	now := time.Now().Truncate(time.Second)
	if err := m.RecordConnect("conn-1", now, "127.0.0.1"); err != nil {
		t.Fatalf("RecordConnect: %v", err)
	}

	sessions, err := m.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if sessions[0].ID != "conn-1" {
		t.Errorf("ID = %q, want conn-1", sessions[0].ID)
	}
	if sessions[0].DisconnectedAt.Valid {
		t.Errorf("expected DisconnectedAt to be NULL before disconnect")
	}
}

func TestRecordDisconnect(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	m, err := NewManager(dbPath)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	defer m.Close()

	now := time.Now().Truncate(time.Second)
	if err := m.RecordConnect("conn-1", now, ""); err != nil {
		t.Fatalf("RecordConnect: %v", err)
	}
	if err := m.RecordDisconnect("conn-1", now.Add(time.Minute), 12, 480000); err != nil {
		t.Fatalf("RecordDisconnect: %v", err)
	}

	sessions, err := m.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if !sessions[0].DisconnectedAt.Valid {
		t.Errorf("expected DisconnectedAt to be set")
	}
	if sessions[0].FramesSent != 12 {
		t.Errorf("FramesSent = %d, want 12", sessions[0].FramesSent)
	}
	if sessions[0].BytesSent != 480000 {
		t.Errorf("BytesSent = %d, want 480000", sessions[0].BytesSent)
	}
}

func TestRecent_OrdersMostRecentFirst(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	m, err := NewManager(dbPath)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	defer m.Close()

	base := time.Now().Truncate(time.Second)
	_ = m.RecordConnect("older", base, "")
	_ = m.RecordConnect("newer", base.Add(time.Hour), "")

	sessions, err := m.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(sessions) != 2 || sessions[0].ID != "newer" {
		t.Fatalf("expected newer first, got %+v", sessions)
	}
}

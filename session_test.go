package main

import (
	"regexp"
	"testing"
)

var sessionIDRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestSessionIDIsUUID(t *testing.T) {
	sm := NewSessionManager()
	defer sm.Stop()

	sess := sm.CreateSession(DiffNormal, nil, nil)
	defer sess.Game.Stop()

	if !sessionIDRe.MatchString(sess.ID) {
		t.Errorf("session ID %q is not a valid UUID v4", sess.ID)
	}
}

func TestSessionManagerCreateAndGet(t *testing.T) {
	sm := NewSessionManager()
	defer sm.Stop()

	sess := sm.CreateSession(DiffBrutal, nil, nil)
	defer sess.Game.Stop()

	got := sm.GetSession(sess.ID)
	if got == nil {
		t.Fatal("expected to find created session")
	}
	if got.Game.Preset() != DiffBrutal {
		t.Errorf("expected brutal preset, got %s", got.Game.Preset())
	}
}

func TestSessionManagerGetNonExistent(t *testing.T) {
	sm := NewSessionManager()
	defer sm.Stop()

	if sm.GetSession("nonexistent") != nil {
		t.Error("expected nil for non-existent session")
	}
}

func TestSessionManagerListSessions(t *testing.T) {
	sm := NewSessionManager()
	defer sm.Stop()

	s1 := sm.CreateSession(DiffNormal, nil, nil)
	defer s1.Game.Stop()
	s2 := sm.CreateSession(DiffCasual, nil, nil)
	defer s2.Game.Stop()

	list := sm.ListSessions()
	if len(list) != 2 {
		t.Errorf("expected 2 sessions, got %d", len(list))
	}
}

func TestSessionReclaimedWhenEmpty(t *testing.T) {
	sm := NewSessionManager()
	defer sm.Stop()

	sess := sm.CreateSession(DiffNormal, nil, nil)
	clientID, _ := sess.Game.AddClient("Solo", &mockBroadcaster{})

	sm.RemoveClient(sess.ID, clientID)

	if sm.GetSession(sess.ID) != nil {
		t.Error("empty session should be reclaimed immediately")
	}
	if sm.SessionCount() != 0 {
		t.Errorf("expected 0 sessions, got %d", sm.SessionCount())
	}
}

func TestSessionSurvivesWhileOccupied(t *testing.T) {
	sm := NewSessionManager()
	defer sm.Stop()

	sess := sm.CreateSession(DiffNormal, nil, nil)
	id1, _ := sess.Game.AddClient("A", &mockBroadcaster{})
	sess.Game.AddClient("B", &mockBroadcaster{})

	sm.RemoveClient(sess.ID, id1)

	if sm.GetSession(sess.ID) == nil {
		t.Error("session with a remaining client should survive")
	}
	sess.Game.Stop()
}

func TestSessionListReportsSpectators(t *testing.T) {
	sm := NewSessionManager()
	defer sm.Stop()

	sess := sm.CreateSession(DiffNormal, nil, nil)
	defer sess.Game.Stop()
	sess.Game.AddClient("Runner", &mockBroadcaster{})
	sess.Game.AddClient("Watcher", &mockBroadcaster{})

	list := sm.ListSessions()
	if len(list) != 1 {
		t.Fatalf("expected 1 session, got %d", len(list))
	}
	if list[0].Runner != "Runner" {
		t.Errorf("runner = %q, want Runner", list[0].Runner)
	}
	if list[0].Spectators != 1 {
		t.Errorf("spectators = %d, want 1", list[0].Spectators)
	}
}

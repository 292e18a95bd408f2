package main

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const maxSessions = 100

// SessionIdleTimeout is how long a session may sit without connected
// clients before the sweeper reclaims it. Variable so tests can shrink it.
var SessionIdleTimeout = 2 * time.Minute

// Session is one joinable game: a single runner, optional spectators
type Session struct {
	ID         string
	Game       *Game
	lastActive time.Time
}

// SessionManager handles creation, lookup and reclamation of sessions
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	stop     chan struct{}
	stopOnce sync.Once
}

// NewSessionManager creates a manager and starts its idle sweeper
func NewSessionManager() *SessionManager {
	sm := &SessionManager{
		sessions: make(map[string]*Session),
		stop:     make(chan struct{}),
	}
	go sm.sweep()
	return sm
}

// Stop halts the idle sweeper
func (sm *SessionManager) Stop() {
	sm.stopOnce.Do(func() { close(sm.stop) })
}

// CreateSession starts a new game session. Returns nil if the session
// limit is reached.
func (sm *SessionManager) CreateSession(preset Difficulty, db *DB, analytics *Analytics) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if len(sm.sessions) >= maxSessions {
		return nil
	}

	id := uuid.NewString()
	sess := &Session{
		ID:         id,
		Game:       NewGame(id, preset, db, analytics),
		lastActive: time.Now(),
	}
	sm.sessions[id] = sess
	go sess.Game.Run()
	return sess
}

// GetSession returns a session by ID, or nil
func (sm *SessionManager) GetSession(id string) *Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.sessions[id]
}

// MarkActive refreshes a session's idle clock
func (sm *SessionManager) MarkActive(id string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sess, ok := sm.sessions[id]; ok {
		sess.lastActive = time.Now()
	}
}

// RemoveClient detaches a client from a session and reclaims the
// session once it has no clients left
func (sm *SessionManager) RemoveClient(sessionID, clientID string) {
	sm.mu.RLock()
	sess, ok := sm.sessions[sessionID]
	sm.mu.RUnlock()
	if !ok {
		return
	}
	sess.Game.RemoveClient(clientID)

	if sess.Game.ClientCount() == 0 {
		sess.Game.Stop()
		sm.mu.Lock()
		delete(sm.sessions, sessionID)
		sm.mu.Unlock()
	}
}

// ListSessions returns info about all active sessions
func (sm *SessionManager) ListSessions() []SessionInfo {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	list := make([]SessionInfo, 0, len(sm.sessions))
	for _, sess := range sm.sessions {
		spectators := sess.Game.ClientCount()
		if sess.Game.RunnerName() != "" && spectators > 0 {
			spectators--
		}
		list = append(list, SessionInfo{
			ID:         sess.ID,
			Runner:     sess.Game.RunnerName(),
			Difficulty: sess.Game.Preset().String(),
			Score:      sess.Game.Score(),
			Running:    sess.Game.RoundRunning(),
			Spectators: spectators,
		})
	}
	return list
}

// SessionCount returns the number of active sessions
func (sm *SessionManager) SessionCount() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// sweep reclaims sessions that have been idle with no clients
func (sm *SessionManager) sweep() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-SessionIdleTimeout)
			sm.mu.Lock()
			for id, sess := range sm.sessions {
				if sess.Game.ClientCount() == 0 && sess.lastActive.Before(cutoff) {
					sess.Game.Stop()
					delete(sm.sessions, id)
				}
			}
			sm.mu.Unlock()
		case <-sm.stop:
			return
		}
	}
}

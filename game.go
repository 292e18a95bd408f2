package main

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	TickRate       = 60 // simulation frames per second
	BroadcastRate  = 30 // state broadcasts per second
	TickDuration   = time.Second / TickRate
	BroadcastEvery = TickRate / BroadcastRate
)

const maxClientsPerSession = 8 // one runner plus spectators

// Broadcaster is the client-facing send interface
type Broadcaster interface {
	SendJSON(msg interface{})
	SendBinary(data []byte)
}

// Game hosts one session: it owns the World, samples wall-clock time
// each tick, feeds the runner's latest input snapshot to Advance, and
// broadcasts renderable state. The simulation itself never blocks or
// yields; everything here runs under one mutex per tick.
type Game struct {
	mu      sync.RWMutex
	cfg     Config
	preset  Difficulty
	world   *World
	input   ClientInput
	clients map[string]Broadcaster

	runnerID     string
	runnerName   string
	runnerAuthID int64

	sessionID string
	tick      uint64
	running   bool
	over      bool
	stop      chan struct{}
	lastTick  time.Time
	runStart  time.Time

	db        *DB
	analytics *Analytics
}

// NewGame creates a game for one session with a fresh world
func NewGame(sessionID string, preset Difficulty, db *DB, analytics *Analytics) *Game {
	cfg := ConfigFor(preset)
	return &Game{
		cfg:       cfg,
		preset:    preset,
		world:     NewWorld(cfg),
		clients:   make(map[string]Broadcaster),
		sessionID: sessionID,
		stop:      make(chan struct{}),
		db:        db,
		analytics: analytics,
	}
}

// Run starts the tick loop
func (g *Game) Run() {
	g.mu.Lock()
	g.running = true
	now := time.Now()
	g.lastTick = now
	g.runStart = now
	g.mu.Unlock()

	if g.analytics != nil {
		g.analytics.Track(EvtRunStart, 0, g.sessionID, `{"preset":"`+g.preset.String()+`"}`)
	}

	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.update()
		case <-g.stop:
			return
		}
	}
}

// Stop terminates the tick loop
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		g.running = false
		close(g.stop)
	}
}

// AddClient registers a connection. The first client (or any client
// arriving while the runner slot is empty) becomes the runner; everyone
// else spectates. Returns the assigned client ID and whether it runs.
func (g *Game) AddClient(name string, client Broadcaster) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.clients) >= maxClientsPerSession {
		return "", false
	}

	id := GenerateID(4)
	g.clients[id] = client

	if g.runnerID == "" {
		g.runnerID = id
		g.runnerName = name
		return id, true
	}
	return id, false
}

// SetRunnerAuth links the runner's account for run persistence
func (g *Game) SetRunnerAuth(clientID string, authPlayerID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if clientID == g.runnerID {
		g.runnerAuthID = authPlayerID
	}
}

// RemoveClient drops a connection. A departing runner leaves the slot
// open for the next joiner; the frozen world stays broadcastable.
func (g *Game) RemoveClient(clientID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.clients, clientID)
	if clientID == g.runnerID {
		g.runnerID = ""
		g.runnerName = ""
		g.runnerAuthID = 0
		g.input = ClientInput{}
	}
}

// ClientCount returns the number of connected clients
func (g *Game) ClientCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.clients)
}

// RunnerName returns the current runner's display name
func (g *Game) RunnerName() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.runnerName
}

// Preset returns the session's difficulty preset
func (g *Game) Preset() Difficulty {
	return g.preset
}

// Score returns the current round score
func (g *Game) Score() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.world.Score
}

// RoundRunning reports whether the current round is still live
func (g *Game) RoundRunning() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.world.Running
}

// HandleInput stores the runner's latest input snapshot. Spectator
// input is discarded.
func (g *Game) HandleInput(clientID string, input ClientInput) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if clientID != g.runnerID {
		return
	}
	g.input = input
}

// HandleRestart replaces the world with a fresh round. Only the runner
// may restart, and only after game over.
func (g *Game) HandleRestart(clientID string) {
	g.mu.Lock()
	if clientID != g.runnerID || !g.over {
		g.mu.Unlock()
		return
	}
	g.world = NewWorld(g.cfg)
	g.over = false
	g.runStart = time.Now()
	g.mu.Unlock()

	if g.analytics != nil {
		g.analytics.Track(EvtRunStart, g.runnerAuthID, g.sessionID, `{"preset":"`+g.preset.String()+`"}`)
	}
}

// update runs one tick: frame assembly, Advance, game-over detection,
// broadcast
func (g *Game) update() {
	g.mu.Lock()

	now := time.Now()
	dt := now.Sub(g.lastTick).Seconds()
	g.lastTick = now
	nowMs := float64(now.Sub(g.runStart)) / float64(time.Millisecond)

	frame := Frame{
		DtSeconds:   dt,
		NowMs:       nowMs,
		MoveX:       axis(g.input.Right) - axis(g.input.Left),
		MoveY:       axis(g.input.Down) - axis(g.input.Up),
		AimX:        g.input.AimX,
		AimY:        g.input.AimY,
		FireHeld:    g.input.Fire,
		ArenaWidth:  g.input.W,
		ArenaHeight: g.input.H,
	}

	wasRunning := g.world.Running
	g.world.Advance(frame)
	g.tick++

	died := wasRunning && !g.world.Running

	var snapshot GameState
	broadcast := g.tick%BroadcastEvery == 0 || died
	if broadcast {
		snapshot = g.snapshotLocked()
	}
	g.mu.Unlock()

	if broadcast {
		g.broadcastState(snapshot)
	}
	if died {
		g.finishRun(nowMs)
	}
}

func axis(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// snapshotLocked builds the renderable state. Caller holds g.mu.
func (g *Game) snapshotLocked() GameState {
	w := g.world
	state := GameState{
		Tick:    g.tick,
		ArenaW:  w.ArenaWidth,
		ArenaH:  w.ArenaHeight,
		Player:  w.Player.ToState(),
		Bullets: make([]BulletState, 0, len(w.Bullets)),
		Zombies: make([]ZombieState, 0, len(w.Zombies)),
		Medkits: make([]MedkitState, 0, len(w.Medkits)),
		Score:   w.Score,
		Level:   w.DifficultyLevel(),
		Running: w.Running,
	}
	for _, b := range w.Bullets {
		state.Bullets = append(state.Bullets, b.ToState())
	}
	for _, z := range w.Zombies {
		state.Zombies = append(state.Zombies, z.ToState())
	}
	for _, m := range w.Medkits {
		state.Medkits = append(state.Medkits, m.ToState())
	}
	return state
}

// broadcastState sends a msgpack-encoded snapshot to every client
func (g *Game) broadcastState(state GameState) {
	data, err := msgpack.Marshal(state)
	if err != nil {
		log.Printf("game %s: state marshal: %v", g.sessionID, err)
		return
	}
	for _, client := range g.snapshotClients() {
		client.SendBinary(data)
	}
}

// broadcastMsg sends a JSON message to every client in the session
func (g *Game) broadcastMsg(msg Envelope) {
	for _, client := range g.snapshotClients() {
		client.SendJSON(msg)
	}
}

func (g *Game) snapshotClients() []Broadcaster {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Broadcaster, 0, len(g.clients))
	for _, c := range g.clients {
		out = append(out, c)
	}
	return out
}

// finishRun records the completed round and notifies clients. DB work
// runs off the tick loop.
func (g *Game) finishRun(durationMs float64) {
	g.mu.Lock()
	if g.over {
		g.mu.Unlock()
		return
	}
	g.over = true
	score := g.world.Score
	level := g.world.DifficultyLevel()
	authID := g.runnerAuthID
	name := g.runnerName
	g.mu.Unlock()

	kills := 0
	if g.cfg.KillReward > 0 {
		kills = score / g.cfg.KillReward
	}
	durationSec := durationMs / 1000

	if g.analytics != nil {
		g.analytics.Track(EvtRunEnd, authID, g.sessionID, runEndData(g.preset, score, durationSec))
		g.analytics.Track(EvtPlayerDeath, authID, g.sessionID, "")
	}

	go func() {
		result := GameOverMsg{
			Score:      score,
			Kills:      kills,
			DurationMs: durationMs,
			Level:      level,
		}

		var unlocked []AchievementDef
		if g.db != nil {
			if _, err := g.db.RecordRun(authID, name, g.preset.String(), score, kills, durationSec, level); err != nil {
				log.Printf("game %s: record run: %v", g.sessionID, err)
			}
			if authID != 0 {
				xpEarned := XPForRun(score, kills, durationSec)
				totalXP, newLevel, best, err := g.db.UpdateStatsAfterRun(authID, score, kills, durationSec, xpEarned)
				if err != nil {
					log.Printf("game %s: update stats: %v", g.sessionID, err)
				} else {
					result.Best = best
					result.XP = totalXP
					result.NewLevel = newLevel
				}
				unlocked = CheckAchievements(g.db, authID, score, kills, durationSec)
			}
		}

		g.broadcastMsg(Envelope{T: MsgGameOver, Data: result})
		for _, def := range unlocked {
			g.broadcastMsg(Envelope{T: MsgAchievement, Data: AchievementMsg{
				ID:          def.ID,
				Name:        def.Name,
				Description: def.Description,
			}})
		}
	}()
}

func runEndData(preset Difficulty, score int, durationSec float64) string {
	data, _ := json.Marshal(map[string]interface{}{
		"preset":   preset.String(),
		"score":    score,
		"duration": durationSec,
	})
	return string(data)
}

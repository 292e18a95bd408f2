package main

// MaxFrameDt caps elapsed time per frame. A tab-resume or GC hiccup
// otherwise produces one huge step that tunnels bullets through zombies.
const MaxFrameDt = 0.05

const (
	spawnIntervalBaseMs     = 1000.0
	spawnIntervalPerLevelMs = 50.0
	spawnIntervalMinMs      = 380.0
	spawnIntervalMaxMs      = 2000.0
	spawnFloorZombies       = 6
	spawnBaseZombies        = 5
	spawnPerLevelZombies    = 2
	spawnScorePerExtra      = 100
)

// Config holds all simulation tuning, fixed at round creation
type Config struct {
	ArenaWidth  float64
	ArenaHeight float64

	PlayerRadius float64
	PlayerSpeed  float64 // units/s
	PlayerMaxHP  int
	EdgeMargin   float64 // keep-inside margin added to the player radius

	FireIntervalMs float64
	BulletSpeed    float64 // units/s
	BulletRadius   float64
	BulletLifeMs   float64
	MuzzleOffset   float64 // spawn distance beyond the player radius
	RecoilPush     float64 // backward shove per shot

	ZombieRadius        float64
	ZombieBaseSpeed     float64 // units/s at difficulty level 0
	ZombieSpeedPerLevel float64
	ZombieSpeedJitter   float64 // random extra speed in [0, jitter)
	ZombiePush          float64 // cosmetic shove on player contact
	MaxZombies          int     // hard cap on the dynamic soft cap
	SpawnMargin         float64 // how far outside the arena zombies appear

	ContactDamage int
	KillReward    int

	SpawnIntervalMs    float64 // initial cadence, recomputed per spawn
	DifficultyPeriodMs float64

	MedkitHeal       int
	MedkitRadius     float64
	MedkitIntervalMs float64 // 0 disables medkit drops
	MedkitLifeMs     float64
	MaxMedkits       int
}

// DefaultConfig returns the Normal-difficulty tuning
func DefaultConfig() Config {
	return Config{
		ArenaWidth:  960,
		ArenaHeight: 540,

		PlayerRadius: 14,
		PlayerSpeed:  240,
		PlayerMaxHP:  100,
		EdgeMargin:   2,

		FireIntervalMs: 160,
		BulletSpeed:    520,
		BulletRadius:   4,
		BulletLifeMs:   900,
		MuzzleOffset:   6,
		RecoilPush:     2.5,

		ZombieRadius:        13,
		ZombieBaseSpeed:     60,
		ZombieSpeedPerLevel: 8,
		ZombieSpeedJitter:   10,
		ZombiePush:          6,
		MaxZombies:          40,
		SpawnMargin:         24,

		ContactDamage: 20,
		KillReward:    10,

		SpawnIntervalMs:    1000,
		DifficultyPeriodMs: 15000,

		MedkitHeal:       20,
		MedkitRadius:     10,
		MedkitIntervalMs: 20000,
		MedkitLifeMs:     12000,
		MaxMedkits:       2,
	}
}

// Frame is the per-frame input snapshot consumed by Advance. The host
// pre-normalizes nothing: movement may be any vector (it is reduced to
// unit-or-zero here), aim is an absolute arena point.
type Frame struct {
	DtSeconds float64
	NowMs     float64

	MoveX, MoveY float64
	AimX, AimY   float64
	FireHeld     bool

	// Current arena bounds; zero means "unchanged"
	ArenaWidth  float64
	ArenaHeight float64
}

// World is the complete authoritative state for one round. Only Advance
// mutates it; the broadcaster reads it between frames.
type World struct {
	Config Config

	ArenaWidth  float64
	ArenaHeight float64

	Player  *Player
	Bullets []*Bullet
	Zombies []*Zombie
	Medkits []*Medkit

	Score   int
	Running bool

	spawnTimerMs        float64
	spawnIntervalMs     float64
	difficultyElapsedMs float64
	medkitTimerMs       float64

	grid     *SpatialGrid
	queryBuf []EntityRef
}

// NewWorld creates a fresh round: empty collections, score zero, the
// player centered at full HP.
func NewWorld(cfg Config) *World {
	return &World{
		Config:          cfg,
		ArenaWidth:      cfg.ArenaWidth,
		ArenaHeight:     cfg.ArenaHeight,
		Player:          NewPlayer(&cfg),
		Running:         true,
		spawnIntervalMs: cfg.SpawnIntervalMs,
		grid:            NewSpatialGrid(cfg.ArenaWidth, cfg.ArenaHeight),
	}
}

// DifficultyLevel increases every DifficultyPeriodMs of simulated time,
// never decreases, and is unbounded.
func (w *World) DifficultyLevel() int {
	return int(w.difficultyElapsedMs / w.Config.DifficultyPeriodMs)
}

// DesiredMaxZombies is the dynamic soft cap on concurrent zombies. It
// only gates new spawns, never removal.
func (w *World) DesiredMaxZombies() int {
	n := spawnBaseZombies + w.DifficultyLevel()*spawnPerLevelZombies + w.Score/spawnScorePerExtra
	if n < spawnFloorZombies {
		n = spawnFloorZombies
	}
	if n > w.Config.MaxZombies {
		n = w.Config.MaxZombies
	}
	return n
}

// Advance runs one simulation frame, mutating the world in place. A
// finished round (Running false) makes the call a no-op. Sub-step order
// is a contract: later steps read positions written by earlier ones.
func (w *World) Advance(f Frame) {
	if !w.Running {
		return
	}

	dt := f.DtSeconds
	if dt < 0 {
		dt = 0
	} else if dt > MaxFrameDt {
		dt = MaxFrameDt
	}

	if f.ArenaWidth > 0 {
		w.ArenaWidth = f.ArenaWidth
	}
	if f.ArenaHeight > 0 {
		w.ArenaHeight = f.ArenaHeight
	}

	w.stepPlayer(f, dt)
	w.stepFire(f)
	w.stepBullets(dt)
	if !w.stepZombies(dt) {
		// Player died mid-pass; the round is over and completed
		// mutations stand.
		return
	}
	w.stepSpawn(dt)
	w.stepMedkits(dt)
}

// stepPlayer applies movement and keeps the full player circle (plus
// margin) inside the arena on both axes independently.
func (w *World) stepPlayer(f Frame, dt float64) {
	mx, my := Normalize(f.MoveX, f.MoveY)
	p := w.Player
	if mx != 0 || my != 0 {
		p.X += mx * w.Config.PlayerSpeed * dt
		p.Y += my * w.Config.PlayerSpeed * dt
	}
	p.ClampToArena(w.ArenaWidth, w.ArenaHeight, w.Config.EdgeMargin)
}

// stepFire spawns at most one bullet per frame, gated by the fire-rate
// interval. Aiming exactly at the player's own center is a no-op rather
// than a zero-length direction.
func (w *World) stepFire(f Frame) {
	if !f.FireHeld {
		return
	}
	p := w.Player
	if f.NowMs-p.LastShotAtMs < w.Config.FireIntervalMs {
		return
	}
	dx, dy := Normalize(f.AimX-p.X, f.AimY-p.Y)
	if dx == 0 && dy == 0 {
		return
	}

	off := w.Config.PlayerRadius + w.Config.MuzzleOffset
	w.Bullets = append(w.Bullets, NewBullet(p.X+dx*off, p.Y+dy*off, dx, dy, &w.Config))
	p.LastShotAtMs = f.NowMs

	// Recoil shove. Deliberately not re-clamped to the arena this
	// frame; the movement clamp catches it next frame.
	p.X -= dx * w.Config.RecoilPush
	p.Y -= dy * w.Config.RecoilPush
}

// stepBullets integrates every bullet and compacts expired ones after
// the pass so removal never disturbs bullets not yet visited.
func (w *World) stepBullets(dt float64) {
	for _, b := range w.Bullets {
		b.Update(dt, w.ArenaWidth, w.ArenaHeight)
	}
	w.Bullets = compactBullets(w.Bullets)
}

// stepZombies resolves each zombie fully (movement, player contact,
// bullet contact) before moving to the next, in insertion order.
// Returns false if the player died during the pass.
func (w *World) stepZombies(dt float64) bool {
	if len(w.Zombies) == 0 {
		return true
	}
	p := w.Player
	cfg := &w.Config

	// Bullet positions are final for this frame (integrated in
	// stepBullets), so index them once for the whole pass.
	w.grid.Clear()
	for i, b := range w.Bullets {
		w.grid.InsertCircle(b.X, b.Y, b.Radius, EntityRef{Kind: KindBullet, Idx: i})
	}

	survived := true
	for _, z := range w.Zombies {
		dx, dy := Normalize(p.X-z.X, p.Y-z.Y)
		z.X += dx * z.Speed * dt
		z.Y += dy * z.Speed * dt

		if CheckCollision(z.X, z.Y, z.Radius, p.X, p.Y, cfg.PlayerRadius) {
			// Cosmetic shove along the contact direction; the
			// zombie is removed right after, so it only affects
			// the frame it dies in.
			z.X -= dx * cfg.ZombiePush
			z.Y -= dy * cfg.ZombiePush
			z.Alive = false
			if p.TakeDamage(cfg.ContactDamage) {
				w.Running = false
				survived = false
				break
			}
			// Gone; no bullet check for this zombie.
			continue
		}

		// First live bullet in index order wins. The grid returns
		// candidates cell by cell, so pick the lowest colliding index.
		best := -1
		w.queryBuf = w.grid.QueryBuf(z.X, z.Y, z.Radius+cfg.BulletRadius, w.queryBuf[:0])
		for _, ref := range w.queryBuf {
			b := w.Bullets[ref.Idx]
			if !b.Alive {
				continue
			}
			if CheckCollision(z.X, z.Y, z.Radius, b.X, b.Y, b.Radius) &&
				(best == -1 || ref.Idx < best) {
				best = ref.Idx
			}
		}
		if best >= 0 {
			w.Bullets[best].Alive = false
			z.Alive = false
			w.Score += cfg.KillReward
		}
	}

	w.Zombies = compactZombies(w.Zombies)
	w.Bullets = compactBullets(w.Bullets)
	return survived
}

// stepSpawn accumulates the spawn and difficulty clocks, then spawns at
// most one zombie when the cadence fires and the soft cap allows it.
func (w *World) stepSpawn(dt float64) {
	ms := dt * 1000
	w.spawnTimerMs += ms
	w.difficultyElapsedMs += ms

	if w.spawnTimerMs <= w.spawnIntervalMs {
		return
	}
	if len(w.Zombies) >= w.DesiredMaxZombies() {
		return
	}

	level := w.DifficultyLevel()
	w.spawnTimerMs = 0
	w.spawnIntervalMs = Clamp(spawnIntervalBaseMs-float64(level)*spawnIntervalPerLevelMs,
		spawnIntervalMinMs, spawnIntervalMaxMs)
	w.Zombies = append(w.Zombies, NewZombie(w.ArenaWidth, w.ArenaHeight, level, &w.Config))
}

// stepMedkits runs after the contractual sub-steps: timed drops at
// random interior points, contact heal, timeout expiry.
func (w *World) stepMedkits(dt float64) {
	if w.Config.MedkitIntervalMs <= 0 {
		return
	}
	ms := dt * 1000
	w.medkitTimerMs += ms
	if w.medkitTimerMs >= w.Config.MedkitIntervalMs && len(w.Medkits) < w.Config.MaxMedkits {
		w.medkitTimerMs = 0
		w.Medkits = append(w.Medkits, NewMedkit(w.ArenaWidth, w.ArenaHeight, &w.Config))
	}

	p := w.Player
	for _, m := range w.Medkits {
		m.LifeMs -= ms
		if m.LifeMs <= 0 {
			m.Alive = false
			continue
		}
		if CheckCollision(m.X, m.Y, m.Radius, p.X, p.Y, w.Config.PlayerRadius) {
			p.Heal(w.Config.MedkitHeal)
			m.Alive = false
		}
	}
	w.Medkits = compactMedkits(w.Medkits)
}

func compactBullets(bs []*Bullet) []*Bullet {
	out := bs[:0]
	for _, b := range bs {
		if b.Alive {
			out = append(out, b)
		}
	}
	return out
}

func compactZombies(zs []*Zombie) []*Zombie {
	out := zs[:0]
	for _, z := range zs {
		if z.Alive {
			out = append(out, z)
		}
	}
	return out
}

func compactMedkits(ms []*Medkit) []*Medkit {
	out := ms[:0]
	for _, m := range ms {
		if m.Alive {
			out = append(out, m)
		}
	}
	return out
}

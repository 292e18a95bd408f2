package main

// Player is the single survivor avatar
type Player struct {
	X, Y         float64
	Radius       float64
	HP           int
	MaxHP        int
	LastShotAtMs float64
}

// NewPlayer spawns the avatar at the arena center at full HP. The shot
// clock starts one interval in the past so the first trigger pull fires
// immediately.
func NewPlayer(cfg *Config) *Player {
	return &Player{
		X:            cfg.ArenaWidth / 2,
		Y:            cfg.ArenaHeight / 2,
		Radius:       cfg.PlayerRadius,
		HP:           cfg.PlayerMaxHP,
		MaxHP:        cfg.PlayerMaxHP,
		LastShotAtMs: -cfg.FireIntervalMs,
	}
}

// ClampToArena keeps the full player circle plus margin inside the
// arena, each axis independently
func (p *Player) ClampToArena(width, height, margin float64) {
	edge := p.Radius + margin
	p.X = Clamp(p.X, edge, width-edge)
	p.Y = Clamp(p.Y, edge, height-edge)
}

// TakeDamage reduces HP and returns true if the player died
func (p *Player) TakeDamage(dmg int) bool {
	p.HP -= dmg
	return p.HP <= 0
}

// Heal restores HP up to the maximum
func (p *Player) Heal(n int) {
	p.HP += n
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// ToState converts to protocol state
func (p *Player) ToState() PlayerState {
	return PlayerState{
		X:     round1(p.X),
		Y:     round1(p.Y),
		R:     p.Radius,
		HP:    p.HP,
		MaxHP: p.MaxHP,
	}
}

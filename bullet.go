package main

// BulletBoundsMargin is how far outside the arena a bullet may travel
// before it is culled.
const BulletBoundsMargin = 50.0

// Bullet is a fired projectile with a countdown lifetime
type Bullet struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	LifeMs float64
	Alive  bool
}

// NewBullet creates a bullet at (x, y) traveling along the unit
// direction (dx, dy)
func NewBullet(x, y, dx, dy float64, cfg *Config) *Bullet {
	return &Bullet{
		X:      x,
		Y:      y,
		VX:     dx * cfg.BulletSpeed,
		VY:     dy * cfg.BulletSpeed,
		Radius: cfg.BulletRadius,
		LifeMs: cfg.BulletLifeMs,
		Alive:  true,
	}
}

// Update integrates one frame and marks the bullet dead once its
// lifetime runs out or it leaves the arena plus margin on any side
func (b *Bullet) Update(dt, arenaW, arenaH float64) {
	if !b.Alive {
		return
	}
	b.X += b.VX * dt
	b.Y += b.VY * dt
	b.LifeMs -= dt * 1000

	if b.LifeMs <= 0 ||
		b.X < -BulletBoundsMargin || b.X > arenaW+BulletBoundsMargin ||
		b.Y < -BulletBoundsMargin || b.Y > arenaH+BulletBoundsMargin {
		b.Alive = false
	}
}

// ToState converts to protocol state
func (b *Bullet) ToState() BulletState {
	return BulletState{
		X: round1(b.X),
		Y: round1(b.Y),
		R: b.Radius,
	}
}

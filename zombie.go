package main

// Zombie pursues the player in a straight line. Speed is fixed at spawn
// time from the difficulty level in effect then; it never changes
// afterward even as the level keeps climbing.
type Zombie struct {
	X, Y   float64
	Speed  float64
	Radius float64
	// HP is carried for the renderer but never decremented: any
	// bullet hit is lethal regardless of its value.
	HP    int
	Alive bool
}

// NewZombie spawns a zombie at a random point along a random arena
// edge, offset outside the visible bounds by the spawn margin.
func NewZombie(arenaW, arenaH float64, level int, cfg *Config) *Zombie {
	z := &Zombie{
		Speed:  cfg.ZombieBaseSpeed + float64(level)*cfg.ZombieSpeedPerLevel + randFloat()*cfg.ZombieSpeedJitter,
		Radius: cfg.ZombieRadius,
		HP:     1,
		Alive:  true,
	}

	// 0=left, 1=right, 2=top, 3=bottom
	edge := int(randFloat() * 4)
	switch edge {
	case 0:
		z.X = -cfg.SpawnMargin
		z.Y = randFloat() * arenaH
	case 1:
		z.X = arenaW + cfg.SpawnMargin
		z.Y = randFloat() * arenaH
	case 2:
		z.X = randFloat() * arenaW
		z.Y = -cfg.SpawnMargin
	default:
		z.X = randFloat() * arenaW
		z.Y = arenaH + cfg.SpawnMargin
	}
	return z
}

// ToState converts to protocol state
func (z *Zombie) ToState() ZombieState {
	return ZombieState{
		X: round1(z.X),
		Y: round1(z.Y),
		R: z.Radius,
	}
}

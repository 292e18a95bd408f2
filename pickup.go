package main

// Medkit is a health drop that heals the player on contact and expires
// if left on the ground
type Medkit struct {
	X, Y   float64
	Radius float64
	LifeMs float64
	Alive  bool
}

// NewMedkit places a medkit at a random interior point away from the
// arena edges
func NewMedkit(arenaW, arenaH float64, cfg *Config) *Medkit {
	const inset = 50.0
	return &Medkit{
		X:      inset + randFloat()*(arenaW-2*inset),
		Y:      inset + randFloat()*(arenaH-2*inset),
		Radius: cfg.MedkitRadius,
		LifeMs: cfg.MedkitLifeMs,
		Alive:  true,
	}
}

// ToState converts to protocol state
func (m *Medkit) ToState() MedkitState {
	return MedkitState{
		X: round1(m.X),
		Y: round1(m.Y),
	}
}

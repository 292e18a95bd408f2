package main

// Difficulty selects a tuning preset at round creation
type Difficulty int

const (
	DiffCasual Difficulty = 0
	DiffNormal Difficulty = 1
	DiffBrutal Difficulty = 2
)

// String returns the preset name used in run records and analytics
func (d Difficulty) String() string {
	switch d {
	case DiffCasual:
		return "casual"
	case DiffBrutal:
		return "brutal"
	default:
		return "normal"
	}
}

// ParseDifficulty maps a client-supplied value to a valid preset,
// falling back to Normal
func ParseDifficulty(v int) Difficulty {
	d := Difficulty(v)
	if d < DiffCasual || d > DiffBrutal {
		return DiffNormal
	}
	return d
}

// ConfigFor returns the simulation config for a preset. Presets scale
// pressure (zombie speed, spawn cadence, contact damage, medkit supply)
// around the Normal baseline; the difficulty ramp period itself is the
// same everywhere.
func ConfigFor(d Difficulty) Config {
	cfg := DefaultConfig()
	switch d {
	case DiffCasual:
		cfg.ZombieBaseSpeed = 48
		cfg.ZombieSpeedPerLevel = 6
		cfg.ContactDamage = 10
		cfg.SpawnIntervalMs = 1400
		cfg.MaxZombies = 30
		cfg.MedkitIntervalMs = 14000
		cfg.MaxMedkits = 3
	case DiffBrutal:
		cfg.ZombieBaseSpeed = 75
		cfg.ZombieSpeedPerLevel = 11
		cfg.ContactDamage = 25
		cfg.SpawnIntervalMs = 700
		cfg.MaxZombies = 55
		cfg.MedkitIntervalMs = 30000
		cfg.MaxMedkits = 1
	}
	return cfg
}

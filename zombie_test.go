package main

import "testing"

func TestNewZombieSpawnsOnEdge(t *testing.T) {
	cfg := DefaultConfig()
	for i := 0; i < 50; i++ {
		z := NewZombie(960, 540, 0, &cfg)

		onVertical := z.X == -cfg.SpawnMargin || z.X == 960+cfg.SpawnMargin
		onHorizontal := z.Y == -cfg.SpawnMargin || z.Y == 540+cfg.SpawnMargin
		if !onVertical && !onHorizontal {
			t.Fatalf("zombie should spawn outside an edge, got (%f,%f)", z.X, z.Y)
		}
		if !z.Alive {
			t.Fatal("new zombie should be alive")
		}
	}
}

func TestNewZombieSpeedScalesWithLevel(t *testing.T) {
	cfg := DefaultConfig()

	for i := 0; i < 50; i++ {
		z0 := NewZombie(960, 540, 0, &cfg)
		min0 := cfg.ZombieBaseSpeed
		if z0.Speed < min0 || z0.Speed >= min0+cfg.ZombieSpeedJitter {
			t.Fatalf("level 0 speed %f outside [%f,%f)", z0.Speed, min0, min0+cfg.ZombieSpeedJitter)
		}

		z5 := NewZombie(960, 540, 5, &cfg)
		min5 := cfg.ZombieBaseSpeed + 5*cfg.ZombieSpeedPerLevel
		if z5.Speed < min5 || z5.Speed >= min5+cfg.ZombieSpeedJitter {
			t.Fatalf("level 5 speed %f outside [%f,%f)", z5.Speed, min5, min5+cfg.ZombieSpeedJitter)
		}
	}
}

func TestNewZombieSpeedDeterministicWithoutJitter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ZombieSpeedJitter = 0

	z := NewZombie(960, 540, 3, &cfg)
	want := cfg.ZombieBaseSpeed + 3*cfg.ZombieSpeedPerLevel
	if z.Speed != want {
		t.Errorf("speed = %f, want %f", z.Speed, want)
	}
}

package main

import "testing"

func TestNewPlayerCentered(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(&cfg)

	if p.X != cfg.ArenaWidth/2 || p.Y != cfg.ArenaHeight/2 {
		t.Errorf("player should spawn centered, got (%f,%f)", p.X, p.Y)
	}
	if p.HP != cfg.PlayerMaxHP || p.MaxHP != cfg.PlayerMaxHP {
		t.Errorf("player should spawn at full HP, got %d/%d", p.HP, p.MaxHP)
	}
}

func TestNewPlayerFirstShotReady(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(&cfg)

	// The gate is now - last < interval, so at now=0 the shot fires
	if 0-p.LastShotAtMs < cfg.FireIntervalMs {
		t.Errorf("first shot should be ready at t=0, LastShotAtMs=%f", p.LastShotAtMs)
	}
}

func TestClampToArena(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(&cfg)

	p.X, p.Y = -100, 10000
	p.ClampToArena(960, 540, cfg.EdgeMargin)

	edge := p.Radius + cfg.EdgeMargin
	if p.X != edge {
		t.Errorf("X should clamp to %f, got %f", edge, p.X)
	}
	if p.Y != 540-edge {
		t.Errorf("Y should clamp to %f, got %f", 540-edge, p.Y)
	}
}

func TestTakeDamage(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(&cfg)

	if p.TakeDamage(40) {
		t.Error("should not die from 40 damage")
	}
	if p.HP != 60 {
		t.Errorf("expected HP 60, got %d", p.HP)
	}
	if !p.TakeDamage(60) {
		t.Error("should die when HP reaches 0")
	}
	if p.HP != 0 {
		t.Errorf("expected HP 0, got %d", p.HP)
	}
}

func TestHealCaps(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(&cfg)
	p.HP = 90

	p.Heal(20)
	if p.HP != p.MaxHP {
		t.Errorf("heal should cap at %d, got %d", p.MaxHP, p.HP)
	}
}

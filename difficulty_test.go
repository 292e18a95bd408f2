package main

import "testing"

func TestParseDifficulty(t *testing.T) {
	if ParseDifficulty(0) != DiffCasual {
		t.Error("0 should parse to casual")
	}
	if ParseDifficulty(2) != DiffBrutal {
		t.Error("2 should parse to brutal")
	}
	if ParseDifficulty(-1) != DiffNormal || ParseDifficulty(99) != DiffNormal {
		t.Error("out-of-range values should fall back to normal")
	}
}

func TestDifficultyString(t *testing.T) {
	if DiffCasual.String() != "casual" || DiffNormal.String() != "normal" || DiffBrutal.String() != "brutal" {
		t.Error("preset names should be casual/normal/brutal")
	}
}

func TestConfigForScalesPressure(t *testing.T) {
	casual := ConfigFor(DiffCasual)
	normal := ConfigFor(DiffNormal)
	brutal := ConfigFor(DiffBrutal)

	if !(casual.ContactDamage < normal.ContactDamage && normal.ContactDamage < brutal.ContactDamage) {
		t.Error("contact damage should increase with difficulty")
	}
	if !(casual.ZombieBaseSpeed < normal.ZombieBaseSpeed && normal.ZombieBaseSpeed < brutal.ZombieBaseSpeed) {
		t.Error("zombie speed should increase with difficulty")
	}
	if !(casual.SpawnIntervalMs > normal.SpawnIntervalMs && normal.SpawnIntervalMs > brutal.SpawnIntervalMs) {
		t.Error("spawn interval should shrink with difficulty")
	}
	if casual.MaxMedkits <= brutal.MaxMedkits {
		t.Error("casual should supply more medkits than brutal")
	}
}

func TestConfigForSharedRampPeriod(t *testing.T) {
	if ConfigFor(DiffCasual).DifficultyPeriodMs != ConfigFor(DiffBrutal).DifficultyPeriodMs {
		t.Error("the ramp period is the same across presets")
	}
}

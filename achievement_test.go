package main

import "testing"

func hasAchievement(defs []AchievementDef, id string) bool {
	for _, d := range defs {
		if d.ID == id {
			return true
		}
	}
	return false
}

func TestCheckAchievementsFirstBlood(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreatePlayer("rookie", "h")
	db.UpdateStatsAfterRun(id, 50, 5, 30, 40)

	unlocked := CheckAchievements(db, id, 50, 5, 30)
	if !hasAchievement(unlocked, "first_blood") {
		t.Error("first kill should unlock first_blood")
	}

	// A second run must not re-unlock it
	unlocked = CheckAchievements(db, id, 50, 5, 30)
	if hasAchievement(unlocked, "first_blood") {
		t.Error("first_blood should unlock only once")
	}
}

func TestCheckAchievementsPerRunThresholds(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreatePlayer("ace", "h")
	db.UpdateStatsAfterRun(id, 1200, 120, 400, 700)

	unlocked := CheckAchievements(db, id, 1200, 120, 400)
	for _, want := range []string{"rampage", "high_roller", "marathon"} {
		if !hasAchievement(unlocked, want) {
			t.Errorf("run of 1200 score / 120 kills / 400s should unlock %s", want)
		}
	}
}

func TestCheckAchievementsCumulative(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreatePlayer("grinder", "h")

	// 600 kills total across runs
	db.UpdateStatsAfterRun(id, 100, 300, 60, 100)
	db.UpdateStatsAfterRun(id, 100, 300, 60, 100)

	unlocked := CheckAchievements(db, id, 100, 300, 60)
	if !hasAchievement(unlocked, "slayer") {
		t.Error("600 cumulative kills should unlock slayer")
	}
	if hasAchievement(unlocked, "butcher") {
		t.Error("butcher needs 5000 kills")
	}
}

func TestCheckAchievementsGuest(t *testing.T) {
	db := openTestDB(t)
	if got := CheckAchievements(db, 0, 9999, 999, 999); got != nil {
		t.Error("guest runs never unlock achievements")
	}
	if got := CheckAchievements(nil, 1, 9999, 999, 999); got != nil {
		t.Error("nil db should be a no-op")
	}
}

func TestAchievementIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, def := range Achievements {
		if seen[def.ID] {
			t.Errorf("duplicate achievement ID %s", def.ID)
		}
		seen[def.ID] = true
	}
}

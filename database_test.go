package main

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreateAndGetPlayer(t *testing.T) {
	db := openTestDB(t)

	id, err := db.CreatePlayer("alice", "hash123")
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero player ID")
	}

	p, err := db.GetPlayerByUsername("alice")
	if err != nil || p == nil {
		t.Fatalf("get player: %v", err)
	}
	if p.ID != id || p.PassHash != "hash123" {
		t.Errorf("got player %+v", p)
	}

	byID, err := db.GetPlayerByID(id)
	if err != nil || byID == nil || byID.Username != "alice" {
		t.Errorf("get by ID failed: %+v, %v", byID, err)
	}
}

func TestGetPlayerAbsent(t *testing.T) {
	db := openTestDB(t)

	p, err := db.GetPlayerByUsername("ghost")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Error("absent player should be nil")
	}
}

func TestUsernameExists(t *testing.T) {
	db := openTestDB(t)
	db.CreatePlayer("bob", "h")

	exists, err := db.UsernameExists("bob")
	if err != nil || !exists {
		t.Error("bob should exist")
	}
	exists, _ = db.UsernameExists("carol")
	if exists {
		t.Error("carol should not exist")
	}
}

func TestStatsRowCreatedWithPlayer(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreatePlayer("dave", "h")

	s, err := db.GetStats(id)
	if err != nil || s == nil {
		t.Fatalf("stats row should exist: %v", err)
	}
	if s.Level != 1 || s.BestScore != 0 || s.Runs != 0 {
		t.Errorf("fresh stats = %+v", s)
	}
}

func TestRecordGuestRun(t *testing.T) {
	db := openTestDB(t)

	runID, err := db.RecordRun(0, "Guest", "normal", 150, 15, 60, 1)
	if err != nil {
		t.Fatalf("record guest run: %v", err)
	}
	if runID == 0 {
		t.Fatal("expected non-zero run ID")
	}

	entries, err := db.GetLeaderboard(10)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "Guest" {
		t.Errorf("guest run should appear under its display name: %+v", entries)
	}
}

func TestLeaderboardPrefersAccountName(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreatePlayer("eve", "h")

	db.RecordRun(id, "IgnoredName", "brutal", 500, 50, 120, 3)

	entries, _ := db.GetLeaderboard(10)
	if len(entries) != 1 || entries[0].Name != "eve" {
		t.Errorf("account run should use the username: %+v", entries)
	}
}

func TestLeaderboardOrderAndRank(t *testing.T) {
	db := openTestDB(t)
	db.RecordRun(0, "Low", "normal", 100, 10, 30, 0)
	db.RecordRun(0, "High", "normal", 900, 90, 300, 4)
	db.RecordRun(0, "Mid", "normal", 500, 50, 150, 2)

	entries, _ := db.GetLeaderboard(10)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Name != "High" || entries[1].Name != "Mid" || entries[2].Name != "Low" {
		t.Errorf("wrong order: %+v", entries)
	}
	if entries[0].Rank != 1 || entries[2].Rank != 3 {
		t.Error("ranks should be 1-based and sequential")
	}
}

func TestUpdateStatsAfterRun(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreatePlayer("frank", "h")

	totalXP, level, best, err := db.UpdateStatsAfterRun(id, 200, 20, 90, 150)
	if err != nil {
		t.Fatalf("update stats: %v", err)
	}
	if totalXP != 150 || best != 200 {
		t.Errorf("got xp=%d best=%d", totalXP, best)
	}
	if level != CalculateLevel(150) {
		t.Errorf("level = %d, want %d", level, CalculateLevel(150))
	}

	// A worse score keeps the old best
	_, _, best, _ = db.UpdateStatsAfterRun(id, 50, 5, 30, 40)
	if best != 200 {
		t.Errorf("best should stay 200, got %d", best)
	}

	s, _ := db.GetStats(id)
	if s.Runs != 2 || s.Kills != 25 {
		t.Errorf("accumulated stats = %+v", s)
	}
}

func TestXPForRun(t *testing.T) {
	// 10 base + 200/2 + 20*2 + 90/10
	if got := XPForRun(200, 20, 90); got != 159 {
		t.Errorf("XPForRun(200,20,90) = %d, want 159", got)
	}
}

func TestLevelCurve(t *testing.T) {
	if XPForLevel(1) != 0 {
		t.Error("level 1 requires 0 XP")
	}
	if XPForLevel(2) != 100 {
		t.Errorf("level 2 requires %d XP, want 100", XPForLevel(2))
	}
	for lvl := 2; lvl <= 20; lvl++ {
		if XPForLevel(lvl) <= XPForLevel(lvl-1) {
			t.Fatalf("XP curve should be strictly increasing at level %d", lvl)
		}
	}

	if CalculateLevel(0) != 1 {
		t.Error("0 XP is level 1")
	}
	if CalculateLevel(99) != 1 {
		t.Error("99 XP is still level 1")
	}
	if CalculateLevel(100) != 2 {
		t.Error("100 XP reaches level 2")
	}
}

func TestRunHistory(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreatePlayer("grace", "h")
	db.RecordRun(id, "", "normal", 100, 10, 30, 0)
	db.RecordRun(id, "", "brutal", 300, 30, 90, 1)
	db.RecordRun(0, "SomeGuest", "normal", 999, 99, 300, 5)

	runs, err := db.GetRunHistory(id, 10)
	if err != nil {
		t.Fatalf("run history: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs for grace, got %d", len(runs))
	}
}

func TestUnlockAchievement(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreatePlayer("hank", "h")

	fresh, err := db.UnlockAchievement(id, "first_blood")
	if err != nil || !fresh {
		t.Fatalf("first unlock should be new: %v", err)
	}
	again, err := db.UnlockAchievement(id, "first_blood")
	if err != nil || again {
		t.Error("repeat unlock should report not-new")
	}

	ids, _ := db.GetAchievements(id)
	if len(ids) != 1 || ids[0] != "first_blood" {
		t.Errorf("achievements = %v", ids)
	}
}

func TestSettings(t *testing.T) {
	db := openTestDB(t)

	if db.GetSetting("missing") != "" {
		t.Error("missing setting should be empty")
	}
	if err := db.SetSetting("k", "v1"); err != nil {
		t.Fatal(err)
	}
	if err := db.SetSetting("k", "v2"); err != nil {
		t.Fatal(err)
	}
	if db.GetSetting("k") != "v2" {
		t.Errorf("setting should upsert, got %q", db.GetSetting("k"))
	}
}

package main

// AchievementDef describes one unlockable achievement
type AchievementDef struct {
	ID          string
	Name        string
	Description string
}

var Achievements = []AchievementDef{
	{"first_blood", "First Blood", "Kill your first zombie"},
	{"slayer", "Slayer", "Reach 500 total kills"},
	{"butcher", "Butcher", "Reach 5000 total kills"},
	{"rampage", "Rampage", "Get 100 kills in a single run"},
	{"high_roller", "High Roller", "Score 1000 in a single run"},
	{"marathon", "Marathon", "Survive 5 minutes in a single run"},
	{"die_hard", "Die Hard", "Complete 25 runs"},
	{"veteran", "Veteran", "Reach account level 10"},
	{"elite", "Elite", "Reach account level 25"},
	{"night_shift", "Night Shift", "Survive for 1 hour total"},
}

// CheckAchievements unlocks any achievements newly earned by a finished
// run. Returns the freshly unlocked definitions.
func CheckAchievements(db *DB, playerID int64, runScore, runKills int, runDurationSec float64) []AchievementDef {
	if db == nil || playerID == 0 {
		return nil
	}

	stats, err := db.GetStats(playerID)
	if err != nil || stats == nil {
		return nil
	}

	existing, err := db.GetAchievements(playerID)
	if err != nil {
		return nil
	}
	has := make(map[string]bool, len(existing))
	for _, a := range existing {
		has[a] = true
	}

	earned := func(id string) bool {
		if has[id] {
			return false
		}
		switch id {
		case "first_blood":
			return stats.Kills >= 1
		case "slayer":
			return stats.Kills >= 500
		case "butcher":
			return stats.Kills >= 5000
		case "rampage":
			return runKills >= 100
		case "high_roller":
			return runScore >= 1000
		case "marathon":
			return runDurationSec >= 300
		case "die_hard":
			return stats.Runs >= 25
		case "veteran":
			return stats.Level >= 10
		case "elite":
			return stats.Level >= 25
		case "night_shift":
			return stats.Playtime >= 3600
		}
		return false
	}

	var unlocked []AchievementDef
	for _, def := range Achievements {
		if earned(def.ID) {
			if newlyUnlocked, err := db.UnlockAchievement(playerID, def.ID); err == nil && newlyUnlocked {
				unlocked = append(unlocked, def)
			}
		}
	}
	return unlocked
}

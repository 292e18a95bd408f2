package main

import "encoding/json"

// Client -> Server message types
const (
	MsgCreate      = "create"  // create a session and become its runner
	MsgJoin        = "join"    // join an existing session (runner slot or spectate)
	MsgInput       = "input"
	MsgRestart     = "restart" // start a fresh round after game over
	MsgLeave       = "leave"
	MsgList        = "list"
	MsgCheck       = "check"
	MsgRegister    = "register"
	MsgLogin       = "login"
	MsgAuth        = "auth" // resume with a stored token
	MsgProfile     = "profile"
	MsgLeaderboard = "leaderboard"
)

// Server -> Client message types
const (
	MsgState           = "state"
	MsgWelcome         = "welcome"
	MsgCreated         = "created"
	MsgJoined          = "joined"
	MsgGameOver        = "gameover"
	MsgSessions        = "sessions"
	MsgChecked         = "checked"
	MsgError           = "error"
	MsgAuthOK          = "auth_ok"
	MsgProfileData     = "profile_data"
	MsgLeaderboardData = "leaderboard_data"
	MsgAchievement     = "achievement"
)

// Envelope wraps all outgoing JSON messages with a type field
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is used for incoming messages; json.RawMessage avoids a
// double unmarshal
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// ClientInput is the per-frame input snapshot from the runner. The four
// directional flags collapse into one unit-or-zero movement vector
// inside the simulation.
type ClientInput struct {
	Up    bool    `json:"u"`
	Down  bool    `json:"d"`
	Left  bool    `json:"l"`
	Right bool    `json:"r"`
	AimX  float64 `json:"ax"` // pointer position, arena coords
	AimY  float64 `json:"ay"`
	Fire  bool    `json:"f"`
	W     float64 `json:"w"` // client canvas size = arena bounds
	H     float64 `json:"h"`
}

// CreateMsg requests a new session
type CreateMsg struct {
	Name       string `json:"name"`
	Difficulty int    `json:"diff"`
}

// JoinMsg requests joining an existing session
type JoinMsg struct {
	Name      string `json:"name"`
	SessionID string `json:"sid"`
}

// CheckMsg asks whether a session exists
type CheckMsg struct {
	SID string `json:"sid"`
}

// CheckedMsg is the response to a session check
type CheckedMsg struct {
	SID        string `json:"sid"`
	Exists     bool   `json:"exists"`
	Runner     string `json:"runner,omitempty"`
	Difficulty string `json:"diff,omitempty"`
	Spectators int    `json:"spectators,omitempty"`
}

// PlayerState is the avatar portion of a state broadcast
type PlayerState struct {
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	R     float64 `json:"r" msgpack:"r"`
	HP    int     `json:"hp" msgpack:"hp"`
	MaxHP int     `json:"mhp" msgpack:"mhp"`
}

// BulletState is broadcast per bullet
type BulletState struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
	R float64 `json:"r" msgpack:"r"`
}

// ZombieState is broadcast per zombie
type ZombieState struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
	R float64 `json:"r" msgpack:"r"`
}

// MedkitState is broadcast per medkit
type MedkitState struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

// GameState is the full renderable snapshot, broadcast as msgpack
// binary at the broadcast rate
type GameState struct {
	Tick    uint64        `json:"tick" msgpack:"tick"`
	ArenaW  float64       `json:"aw" msgpack:"aw"`
	ArenaH  float64       `json:"ah" msgpack:"ah"`
	Player  PlayerState   `json:"p" msgpack:"p"`
	Bullets []BulletState `json:"b" msgpack:"b"`
	Zombies []ZombieState `json:"z" msgpack:"z"`
	Medkits []MedkitState `json:"mk" msgpack:"mk"`
	Score   int           `json:"sc" msgpack:"sc"`
	Level   int           `json:"lv" msgpack:"lv"`
	Running bool          `json:"run" msgpack:"run"`
}

// WelcomeMsg is sent to a client when it enters a session
type WelcomeMsg struct {
	SessionID string `json:"sid"`
	Runner    bool   `json:"runner"`
}

// GameOverMsg is sent when the round ends
type GameOverMsg struct {
	Score      int     `json:"score"`
	Kills      int     `json:"kills"`
	DurationMs float64 `json:"dur"`
	Level      int     `json:"level"`
	Best       int     `json:"best,omitempty"` // authenticated runner's best score
	XP         int     `json:"xp,omitempty"`
	NewLevel   int     `json:"plevel,omitempty"` // account level, not difficulty level
}

// SessionInfo is one entry in the session list
type SessionInfo struct {
	ID         string `json:"id"`
	Runner     string `json:"runner"`
	Difficulty string `json:"diff"`
	Score      int    `json:"score"`
	Running    bool   `json:"running"`
	Spectators int    `json:"spectators"`
}

// ErrorMsg sends an error to the client
type ErrorMsg struct {
	Msg string `json:"msg"`
}

// RegisterMsg creates an account
type RegisterMsg struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginMsg authenticates an account
type LoginMsg struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthMsg resumes a session with a stored token
type AuthMsg struct {
	Token string `json:"token"`
}

// AuthOKMsg confirms authentication
type AuthOKMsg struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	PlayerID int64  `json:"pid"`
}

// ProfileDataMsg carries account stats
type ProfileDataMsg struct {
	Username  string  `json:"username"`
	Level     int     `json:"level"`
	XP        int     `json:"xp"`
	BestScore int     `json:"best_score"`
	Kills     int     `json:"kills"`
	Runs      int     `json:"runs"`
	Playtime  float64 `json:"playtime"`
}

// LeaderboardMsg requests the leaderboard
type LeaderboardMsg struct {
	Limit int `json:"limit"`
}

// AchievementMsg notifies a newly unlocked achievement
type AchievementMsg struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"desc"`
}

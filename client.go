package main

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait         = 10 * time.Second
	pongWait          = 60 * time.Second
	pingPeriod        = (pongWait * 9) / 10
	maxMessageSize    = 4096
	sendBufSize       = 256
	maxMessagesPerSec = 80 // input arrives per-frame, so the ceiling is generous
	maxNameLen        = 16
)

// Client represents one WebSocket connection
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	clientID   string
	sessionID  string
	remoteAddr string
	msgCount   int
	msgResetAt time.Time

	// Auth state: 0 / "" means unauthenticated guest
	authPlayerID int64
	authUsername string
}

// NewClient creates a new Client
func NewClient(hub *Hub, conn *websocket.Conn, remoteAddr string) *Client {
	return &Client{
		hub:        hub,
		conn:       conn,
		send:       make(chan []byte, sendBufSize),
		remoteAddr: remoteAddr,
	}
}

// ReadPump reads messages from the WebSocket connection
func (c *Client) ReadPump() {
	defer func() {
		c.hub.TrackDisconnect(c.remoteAddr)
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		msgType, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws error: %v", err)
			}
			break
		}

		// Rate limiting
		now := time.Now()
		if now.After(c.msgResetAt) {
			c.msgCount = 0
			c.msgResetAt = now.Add(time.Second)
		}
		c.msgCount++
		if c.msgCount > maxMessagesPerSec {
			log.Printf("rate limit exceeded for %s, disconnecting", c.remoteAddr)
			break
		}

		// Binary input frames: 10 bytes [0x01, flags, ax, ax, ay, ay, w, w, h, h]
		if msgType == websocket.BinaryMessage && len(message) == 10 && message[0] == 0x01 {
			c.handleBinaryInput(message)
		} else {
			c.handleMessage(message)
		}
	}
}

// WritePump writes messages to the WebSocket connection
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			// 0xFF prefix marks binary frames queued by SendBinary
			var err error
			if len(message) > 0 && message[0] == 0xFF {
				err = c.conn.WriteMessage(websocket.BinaryMessage, message[1:])
			} else {
				err = c.conn.WriteMessage(websocket.TextMessage, message)
			}
			if err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendJSON sends a JSON message to the client
func (c *Client) SendJSON(msg interface{}) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("marshal error: %v", err)
		return
	}
	c.SendRaw(data)
}

// SendRaw sends pre-marshaled bytes as a text message to the client
func (c *Client) SendRaw(data []byte) {
	defer func() { recover() }()
	select {
	case c.send <- data:
	default:
		// Client too slow, drop message
	}
}

// SendBinary sends pre-marshaled bytes as a binary WebSocket message.
// Prefixes a 0xFF marker byte so WritePump can distinguish from text.
func (c *Client) SendBinary(data []byte) {
	defer func() { recover() }()
	msg := make([]byte, len(data)+1)
	msg[0] = 0xFF
	copy(msg[1:], data)
	select {
	case c.send <- msg:
	default:
	}
}

// handleMessage routes incoming messages (single-pass decode via InEnvelope)
func (c *Client) handleMessage(raw []byte) {
	var env InEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return
	}

	switch env.T {
	case MsgCreate:
		c.handleCreate(env.D)
	case MsgJoin:
		c.handleJoin(env.D)
	case MsgInput:
		c.handleInput(env.D)
	case MsgRestart:
		c.handleRestart()
	case MsgLeave:
		c.handleLeave()
	case MsgList:
		c.handleList()
	case MsgCheck:
		c.handleCheck(env.D)
	case MsgRegister:
		c.handleRegister(env.D)
	case MsgLogin:
		c.handleLogin(env.D)
	case MsgAuth:
		c.handleAuth(env.D)
	case MsgProfile:
		c.handleProfile()
	case MsgLeaderboard:
		c.handleLeaderboard(env.D)
	}
}

func (c *Client) handleCreate(data json.RawMessage) {
	var msg CreateMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	name := sanitizeName(msg.Name)

	sess := c.hub.sessions.CreateSession(ParseDifficulty(msg.Difficulty), c.hub.db, c.hub.analytics)
	if sess == nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "too many active sessions"}})
		return
	}

	c.enterSession(sess, name)
	c.SendJSON(Envelope{T: MsgCreated, Data: map[string]string{"sid": sess.ID}})
}

func (c *Client) handleJoin(data json.RawMessage) {
	var msg JoinMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	name := sanitizeName(msg.Name)

	sess := c.hub.sessions.GetSession(msg.SessionID)
	if sess == nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "session not found"}})
		return
	}
	c.enterSession(sess, name)
}

// enterSession attaches this connection to a session as runner or
// spectator and sends the welcome
func (c *Client) enterSession(sess *Session, name string) {
	id, runner := sess.Game.AddClient(name, c)
	if id == "" {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "session full"}})
		return
	}
	c.clientID = id
	c.sessionID = sess.ID
	c.hub.sessions.MarkActive(sess.ID)

	if runner && c.authPlayerID != 0 {
		sess.Game.SetRunnerAuth(id, c.authPlayerID)
	}

	c.SendJSON(Envelope{T: MsgJoined, Data: map[string]string{"sid": sess.ID}})
	c.SendJSON(Envelope{T: MsgWelcome, Data: WelcomeMsg{SessionID: sess.ID, Runner: runner}})
}

// handleBinaryInput decodes a compact 10-byte input frame:
// [0x01, flags, aimx int16, aimy int16, w uint16, h uint16]
// flags bits: 0=up 1=down 2=left 3=right 4=fire
func (c *Client) handleBinaryInput(msg []byte) {
	if c.sessionID == "" || c.clientID == "" {
		return
	}
	flags := msg[1]
	input := ClientInput{
		Up:    flags&0x01 != 0,
		Down:  flags&0x02 != 0,
		Left:  flags&0x04 != 0,
		Right: flags&0x08 != 0,
		Fire:  flags&0x10 != 0,
		AimX:  float64(int16(uint16(msg[2])<<8 | uint16(msg[3]))),
		AimY:  float64(int16(uint16(msg[4])<<8 | uint16(msg[5]))),
		W:     float64(uint16(msg[6])<<8 | uint16(msg[7])),
		H:     float64(uint16(msg[8])<<8 | uint16(msg[9])),
	}
	sess := c.hub.sessions.GetSession(c.sessionID)
	if sess == nil {
		return
	}
	sess.Game.HandleInput(c.clientID, input)
}

func (c *Client) handleInput(data json.RawMessage) {
	if c.sessionID == "" || c.clientID == "" {
		return
	}
	var input ClientInput
	if err := json.Unmarshal(data, &input); err != nil {
		return
	}
	sess := c.hub.sessions.GetSession(c.sessionID)
	if sess == nil {
		return
	}
	sess.Game.HandleInput(c.clientID, input)
}

func (c *Client) handleRestart() {
	if c.sessionID == "" || c.clientID == "" {
		return
	}
	sess := c.hub.sessions.GetSession(c.sessionID)
	if sess == nil {
		return
	}
	c.hub.sessions.MarkActive(sess.ID)
	sess.Game.HandleRestart(c.clientID)
}

func (c *Client) handleLeave() {
	if c.sessionID != "" {
		c.hub.sessions.RemoveClient(c.sessionID, c.clientID)
		c.sessionID = ""
		c.clientID = ""
	}
}

func (c *Client) handleList() {
	sessions := c.hub.sessions.ListSessions()
	c.SendJSON(Envelope{T: MsgSessions, Data: sessions})
}

func (c *Client) handleCheck(data json.RawMessage) {
	var msg CheckMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	sess := c.hub.sessions.GetSession(msg.SID)
	if sess == nil {
		c.SendJSON(Envelope{T: MsgChecked, Data: CheckedMsg{SID: msg.SID, Exists: false}})
		return
	}
	spectators := sess.Game.ClientCount()
	if sess.Game.RunnerName() != "" && spectators > 0 {
		spectators--
	}
	c.SendJSON(Envelope{T: MsgChecked, Data: CheckedMsg{
		SID:        msg.SID,
		Exists:     true,
		Runner:     sess.Game.RunnerName(),
		Difficulty: sess.Game.Preset().String(),
		Spectators: spectators,
	}})
}

func (c *Client) handleRegister(data json.RawMessage) {
	if c.hub.auth == nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "accounts disabled"}})
		return
	}
	var msg RegisterMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	id, token, err := c.hub.auth.Register(msg.Username, msg.Password)
	if err != nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: err.Error()}})
		return
	}
	if c.hub.analytics != nil {
		c.hub.analytics.Track(EvtRegister, id, "", "")
	}
	c.finishAuth(id, msg.Username, token)
}

func (c *Client) handleLogin(data json.RawMessage) {
	if c.hub.auth == nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "accounts disabled"}})
		return
	}
	var msg LoginMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	id, token, err := c.hub.auth.Login(msg.Username, msg.Password, c.remoteAddr)
	if err != nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: err.Error()}})
		return
	}
	if c.hub.analytics != nil {
		c.hub.analytics.Track(EvtLogin, id, "", "")
	}
	c.finishAuth(id, msg.Username, token)
}

func (c *Client) handleAuth(data json.RawMessage) {
	if c.hub.auth == nil {
		return
	}
	var msg AuthMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	id, username, err := c.hub.auth.ValidateToken(msg.Token)
	if err != nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "invalid token"}})
		return
	}
	c.finishAuth(id, username, msg.Token)
}

// finishAuth records auth state and links it to an in-session game if
// the client is already running one
func (c *Client) finishAuth(id int64, username, token string) {
	c.authPlayerID = id
	c.authUsername = username
	if c.sessionID != "" && c.clientID != "" {
		if sess := c.hub.sessions.GetSession(c.sessionID); sess != nil {
			sess.Game.SetRunnerAuth(c.clientID, id)
		}
	}
	c.SendJSON(Envelope{T: MsgAuthOK, Data: AuthOKMsg{
		Token:    token,
		Username: username,
		PlayerID: id,
	}})
}

func (c *Client) handleProfile() {
	if c.hub.db == nil || c.authPlayerID == 0 {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "not authenticated"}})
		return
	}
	stats, err := c.hub.db.GetStats(c.authPlayerID)
	if err != nil || stats == nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "profile not found"}})
		return
	}
	c.SendJSON(Envelope{T: MsgProfileData, Data: ProfileDataMsg{
		Username:  c.authUsername,
		Level:     stats.Level,
		XP:        stats.XP,
		BestScore: stats.BestScore,
		Kills:     stats.Kills,
		Runs:      stats.Runs,
		Playtime:  stats.Playtime,
	}})
}

func (c *Client) handleLeaderboard(data json.RawMessage) {
	if c.hub.db == nil {
		c.SendJSON(Envelope{T: MsgLeaderboardData, Data: []LeaderboardEntry{}})
		return
	}
	var msg LeaderboardMsg
	if len(data) > 0 {
		json.Unmarshal(data, &msg)
	}
	limit := msg.Limit
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	entries, err := c.hub.db.GetLeaderboard(limit)
	if err != nil {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "leaderboard unavailable"}})
		return
	}
	c.SendJSON(Envelope{T: MsgLeaderboardData, Data: entries})
}

func sanitizeName(name string) string {
	if name == "" {
		name = "Survivor"
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}
	return name
}

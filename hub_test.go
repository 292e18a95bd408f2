package main

import "testing"

func TestHubConnLimitPerIP(t *testing.T) {
	h := NewHub(nil, nil)
	defer h.sessions.Stop()

	ip := "1.2.3.4"
	for i := 0; i < maxConnsPerIP; i++ {
		if !h.CanAccept(ip) {
			t.Fatalf("connection %d from %s should be accepted", i, ip)
		}
		h.TrackConnect(ip)
	}
	if h.CanAccept(ip) {
		t.Error("connection past the per-IP cap should be refused")
	}
	if !h.CanAccept("5.6.7.8") {
		t.Error("other IPs should still be accepted")
	}

	h.TrackDisconnect(ip)
	if !h.CanAccept(ip) {
		t.Error("a freed slot should be reusable")
	}
}

func TestHubTotalConnTracking(t *testing.T) {
	h := NewHub(nil, nil)
	defer h.sessions.Stop()

	h.TrackConnect("a")
	h.TrackConnect("b")
	if h.TotalConns() != 2 {
		t.Errorf("expected 2 tracked conns, got %d", h.TotalConns())
	}
	h.TrackDisconnect("a")
	if h.TotalConns() != 1 {
		t.Errorf("expected 1 tracked conn, got %d", h.TotalConns())
	}
}

func TestHubAuthDisabledWithoutDB(t *testing.T) {
	h := NewHub(nil, nil)
	defer h.sessions.Stop()
	if h.auth != nil {
		t.Error("in-memory mode should have no auth handler")
	}
}

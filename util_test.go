package main

import "testing"

func TestGenerateIDLength(t *testing.T) {
	id := GenerateID(4)
	if len(id) != 8 { // 4 bytes = 8 hex chars
		t.Errorf("expected 8 chars, got %d: %s", len(id), id)
	}

	id2 := GenerateID(8)
	if len(id2) != 16 {
		t.Errorf("expected 16 chars, got %d: %s", len(id2), id2)
	}
}

func TestGenerateIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateID(8)
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		got := Clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("Clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestDistance(t *testing.T) {
	d := Distance(0, 0, 3, 4)
	if d != 5 {
		t.Errorf("Distance(0,0,3,4) = %f, want 5", d)
	}
}

func TestDistanceSq(t *testing.T) {
	d := DistanceSq(0, 0, 3, 4)
	if d != 25 {
		t.Errorf("DistanceSq(0,0,3,4) = %f, want 25", d)
	}
}

func TestNormalize(t *testing.T) {
	x, y := Normalize(3, 4)
	if abs(x-0.6) > 0.001 || abs(y-0.8) > 0.001 {
		t.Errorf("Normalize(3,4) = (%f,%f), want (0.6,0.8)", x, y)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	x, y := Normalize(0, 0)
	if x != 0 || y != 0 {
		t.Errorf("Normalize(0,0) = (%f,%f), want (0,0)", x, y)
	}
}

func TestRandFloatRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := randFloat()
		if v < 0 || v >= 1 {
			t.Fatalf("randFloat() = %f, outside [0,1)", v)
		}
	}
}

func TestRound1(t *testing.T) {
	if round1(1.2345) != 1.2 {
		t.Errorf("round1(1.2345) = %f, want 1.2", round1(1.2345))
	}
	if round1(1.25) != 1.3 {
		t.Errorf("round1(1.25) = %f, want 1.3", round1(1.25))
	}
}

package core

import "testing"

func TestTicksFor(t *testing.T) {
	tests := []struct {
		name     string
		rate, ms int
		expected int
	}{
		{"one second at 60", 60, 1000, 60},
		{"50ms at 60", 60, 50, 3},
		{"50ms at 20", 20, 50, 1},
		{"tiny interval clamps to 1", 60, 1, 1},
		{"zero rate falls back to 60", 0, 500, 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := RuntimeConfig{TickRate: tc.rate}
			if got := cfg.TicksFor(tc.ms); got != tc.expected {
				t.Errorf("TicksFor(%d) at %d = %d, expected %d", tc.ms, tc.rate, got, tc.expected)
			}
		})
	}
}

func TestColorRGB(t *testing.T) {
	r, g, b := ColorBrightWhite.RGB()
	if r != 1 || g != 1 || b != 1 {
		t.Errorf("BrightWhite = (%v, %v, %v), expected white", r, g, b)
	}

	dr, dg, db := ColorDefault.RGB()
	ur, ug, ub := Color(200).RGB()
	if dr != ur || dg != ug || db != ub {
		t.Error("unknown colors should map to the default color")
	}
}

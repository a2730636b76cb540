package fish

import (
	"testing"

	"github.com/vovakirdan/fish-clicker/internal/core"
)

func TestHitTest(t *testing.T) {
	box := core.NewRect(100, 200, 64, 64)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 132, 232, true},
		{"one unit inside left", 101, 232, true},
		{"one unit inside right", 163, 232, true},
		{"on left edge", 100, 232, false},
		{"on right edge", 164, 232, false},
		{"on top edge", 132, 200, false},
		{"on bottom edge", 132, 264, false},
		{"corner", 100, 200, false},
		{"outside", 50, 50, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HitTest(box, tc.x, tc.y); got != tc.want {
				t.Errorf("HitTest(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestScoreLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "000000"},
		{7, "000007"},
		{123456, "123456"},
		{1234567, "1234567"},
	}
	for _, tc := range tests {
		if got := ScoreLabel(tc.score); got != tc.want {
			t.Errorf("ScoreLabel(%d) = %q, expected %q", tc.score, got, tc.want)
		}
	}
}

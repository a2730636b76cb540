package fish

import (
	"fmt"

	"github.com/vovakirdan/fish-clicker/internal/core"
)

// HitTest reports whether a pointer at (x, y) lies strictly inside box.
// A pointer exactly on an edge is a miss.
func HitTest(box core.Rect, x, y float64) bool {
	return box.ContainsStrict(x, y)
}

// ScoreLabel formats a score the way the scoreboard shows it.
func ScoreLabel(score int) string {
	return fmt.Sprintf("%06d", score)
}

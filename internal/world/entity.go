package world

import (
	"math/rand"

	"github.com/vovakirdan/runner-dash/internal/core"
)

// Entity is the position and size shared by everything that moves.
// Size is fixed when the entity is created.
type Entity struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Rect returns the entity's bounding box.
func (e Entity) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Mover is the per-frame contract of every simulated object.
type Mover interface {
	Rect() core.Rect
	Update(dt float64)
}

var (
	_ Mover = (*Player)(nil)
	_ Mover = (*Obstacle)(nil)
	_ Mover = (*Decoration)(nil)
)

// randRange returns a uniform integer in [min, max], both ends inclusive.
func randRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

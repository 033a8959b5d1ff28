package world

import (
	"fmt"
	"math/rand"
)

// DecorationKind distinguishes background scenery.
type DecorationKind int

const (
	DecorationCloud DecorationKind = iota
	DecorationBush
)

func (k DecorationKind) String() string {
	switch k {
	case DecorationCloud:
		return "cloud"
	case DecorationBush:
		return "bush"
	default:
		return fmt.Sprintf("DecorationKind(%d)", int(k))
	}
}

// Decoration is cosmetic scenery. It never interacts with the player or
// obstacles and is recycled to the right edge instead of being removed.
type Decoration struct {
	Entity
	Kind  DecorationKind
	Speed float64 // Units per tick
	rng   *rand.Rand
}

// NewCloud creates a cloud drifting slowly, independent of the world scroll.
func NewCloud(rng *rand.Rand, x, y float64) *Decoration {
	return &Decoration{
		Entity: Entity{X: x, Y: y, W: CloudWidth, H: CloudHeight},
		Kind:   DecorationCloud,
		Speed:  CloudSpeed,
		rng:    rng,
	}
}

// NewBush creates a bush on the ground moving with the world scroll.
func NewBush(rng *rand.Rand, x float64) *Decoration {
	return &Decoration{
		Entity: Entity{X: x, Y: BushY, W: BushWidth, H: BushHeight},
		Kind:   DecorationBush,
		Speed:  ScrollSpeed,
		rng:    rng,
	}
}

// Update moves the decoration left and wraps it once it is off screen.
func (d *Decoration) Update(dt float64) {
	d.X -= d.Speed * dt
	if d.Rect().Right() < 0 {
		d.wrap()
	}
}

func (d *Decoration) wrap() {
	switch d.Kind {
	case DecorationCloud:
		d.X = WorldWidth
		d.Y = float64(randRange(d.rng, CloudBandMin, CloudBandMax))
	case DecorationBush:
		d.X = WorldWidth + float64(randRange(d.rng, 0, BushJitterMax))
	}
}

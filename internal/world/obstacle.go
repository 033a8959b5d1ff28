package world

import (
	"errors"
	"fmt"
)

// ErrInvalidKind is returned when an obstacle or decoration kind is not one
// of the known variants.
var ErrInvalidKind = errors.New("invalid kind")

// ObstacleKind enumerates the enemies the player has to jump over.
type ObstacleKind int

const (
	KindTurtle ObstacleKind = iota
	KindRabbit
	KindMushroom
)

// ObstacleKinds lists every valid kind in spawn order.
var ObstacleKinds = []ObstacleKind{KindTurtle, KindRabbit, KindMushroom}

// Valid reports whether k is a known kind.
func (k ObstacleKind) Valid() bool {
	return k >= 0 && k < obstacleKindCount
}

// Height returns the fixed height for the kind.
func (k ObstacleKind) Height() float64 {
	switch k {
	case KindTurtle:
		return TurtleHeight
	case KindRabbit:
		return RabbitHeight
	case KindMushroom:
		return MushroomHeight
	default:
		return 0
	}
}

func (k ObstacleKind) String() string {
	switch k {
	case KindTurtle:
		return "turtle"
	case KindRabbit:
		return "rabbit"
	case KindMushroom:
		return "mushroom"
	default:
		return fmt.Sprintf("ObstacleKind(%d)", int(k))
	}
}

// ParseObstacleKind converts a kind name back to its value.
func ParseObstacleKind(name string) (ObstacleKind, error) {
	for _, k := range ObstacleKinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("world: %w: obstacle %q", ErrInvalidKind, name)
}

// Obstacle is a ground enemy scrolling towards the player.
type Obstacle struct {
	Entity
	Kind   ObstacleKind
	Passed bool // Set once the obstacle is fully behind the player
}

// NewObstacle creates an obstacle of the given kind standing on the ground
// with its left edge at x.
func NewObstacle(kind ObstacleKind, x float64) (*Obstacle, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("world: %w: obstacle %d", ErrInvalidKind, int(kind))
	}
	h := kind.Height()
	return &Obstacle{
		Entity: Entity{
			X: x,
			Y: GroundLine - h,
			W: ObstacleWidth,
			H: h,
		},
		Kind: kind,
	}, nil
}

// Update scrolls the obstacle left with the world.
func (o *Obstacle) Update(dt float64) {
	o.X -= ScrollSpeed * dt
}

// Dead reports whether the obstacle has left the screen on the left.
func (o *Obstacle) Dead() bool {
	return o.Rect().Right() < 0
}

// Package world implements the side-scrolling runner simulation: the player,
// obstacles, background decorations and the session state machine that ties
// them together. It has no knowledge of terminals, windows or key bindings.
package world

// World dimensions in world units.
const (
	WorldWidth  = 1000.0
	WorldHeight = 600.0
	GroundLine  = WorldHeight - 100 // Y of the surface everything stands on
)

// Physics, per tick at 60 ticks per second.
const (
	Gravity      = 0.8
	JumpStrength = -15.0
	ScrollSpeed  = 5.0
)

// MaxDelta caps a single Advance step, in ticks.
const MaxDelta = 3.0

// Player geometry.
const (
	PlayerX      = 100.0
	PlayerWidth  = 50.0
	PlayerHeight = 60.0
)

// Obstacle geometry and spawning.
const (
	ObstacleWidth     = 40.0
	SpawnOffsetMin    = 50
	SpawnOffsetMax    = 200
	SpawnThresholdMin = 60
	SpawnThresholdMax = 120
	TurtleHeight      = 35.0
	RabbitHeight      = 45.0
	MushroomHeight    = 38.0
	obstacleKindCount = 3
)

// Decorations.
const (
	CloudCount    = 5
	CloudWidth    = 80.0
	CloudHeight   = 40.0
	CloudSpeed    = 2.0
	CloudBandMin  = 50
	CloudBandMax  = 200
	BushCount     = 4
	BushWidth     = 60.0
	BushHeight    = 30.0
	BushY         = WorldHeight - 120
	BushJitterMax = 300
)

// Ground texture, drawn along the top of the ground.
const (
	GroundStripeSpacing = 50.0
	GroundStripeWidth   = 48.0
	GroundStripeHeight  = 5.0
)

// WinScore is the number of passed obstacles that wins a round.
const WinScore = 10

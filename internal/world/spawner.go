package world

import "math/rand"

// Spawner decides when the next obstacle appears. The timer counts ticks
// since the last spawn, and the threshold is redrawn after every spawn so
// obstacles arrive at irregular intervals.
type Spawner struct {
	rng       *rand.Rand
	timer     int
	threshold int
}

// NewSpawner creates a spawner with a freshly drawn threshold.
func NewSpawner(rng *rand.Rand) *Spawner {
	sp := &Spawner{rng: rng}
	sp.threshold = sp.drawThreshold()
	return sp
}

// Timer returns the ticks counted since the last spawn.
func (sp *Spawner) Timer() int {
	return sp.timer
}

// Threshold returns the tick count the timer has to exceed.
func (sp *Spawner) Threshold() int {
	return sp.threshold
}

// Tick advances the timer by one and returns a new obstacle when it is due.
func (sp *Spawner) Tick() *Obstacle {
	sp.timer++
	if sp.timer <= sp.threshold {
		return nil
	}

	kind := ObstacleKinds[sp.rng.Intn(len(ObstacleKinds))]
	x := WorldWidth + float64(randRange(sp.rng, SpawnOffsetMin, SpawnOffsetMax))
	o, err := NewObstacle(kind, x)
	if err != nil {
		// ObstacleKinds holds only valid kinds.
		panic(err)
	}

	sp.timer = 0
	sp.threshold = sp.drawThreshold()
	return o
}

func (sp *Spawner) drawThreshold() int {
	return randRange(sp.rng, SpawnThresholdMin, SpawnThresholdMax)
}

package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnerTiming(t *testing.T) {
	sp := NewSpawner(rand.New(rand.NewSource(99)))
	seen := make(map[ObstacleKind]int)

	for spawn := 0; spawn < 300; spawn++ {
		threshold := sp.Threshold()
		require.GreaterOrEqual(t, threshold, SpawnThresholdMin)
		require.LessOrEqual(t, threshold, SpawnThresholdMax)

		// Nothing spawns until the timer exceeds the threshold.
		for i := 0; i < threshold; i++ {
			require.Nil(t, sp.Tick(), "spawn %d tick %d", spawn, i)
		}

		o := sp.Tick()
		require.NotNil(t, o)
		assert.Zero(t, sp.Timer())
		assert.True(t, o.Kind.Valid())
		assert.GreaterOrEqual(t, o.X, WorldWidth+SpawnOffsetMin)
		assert.LessOrEqual(t, o.X, WorldWidth+SpawnOffsetMax)
		seen[o.Kind]++
	}

	assert.Len(t, seen, len(ObstacleKinds), "every kind should eventually spawn")
}

func TestRandRangeInclusive(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	hitMin, hitMax := false, false

	for i := 0; i < 2000; i++ {
		v := randRange(rng, 60, 62)
		require.GreaterOrEqual(t, v, 60)
		require.LessOrEqual(t, v, 62)
		hitMin = hitMin || v == 60
		hitMax = hitMax || v == 62
	}

	assert.True(t, hitMin)
	assert.True(t, hitMax)
	assert.Equal(t, 5, randRange(rng, 5, 5))
}

package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloudDriftsAndWraps(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := NewCloud(rng, 300, 100)

	c.Update(1)
	assert.Equal(t, 298.0, c.X, "clouds ignore the world scroll speed")
	assert.Equal(t, 100.0, c.Y)

	for i := 0; i < 50; i++ {
		c.X = -CloudWidth + 1
		c.Update(1)

		assert.Equal(t, WorldWidth, c.X)
		assert.GreaterOrEqual(t, c.Y, float64(CloudBandMin))
		assert.LessOrEqual(t, c.Y, float64(CloudBandMax))
	}
}

func TestBushScrollsAndWraps(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := NewBush(rng, -BushWidth+5)

	b.Update(1)
	assert.Equal(t, -BushWidth, b.X, "right edge at 0 stays in place")

	for i := 0; i < 50; i++ {
		b.X = -BushWidth
		b.Update(1)

		assert.GreaterOrEqual(t, b.X, WorldWidth)
		assert.LessOrEqual(t, b.X, WorldWidth+BushJitterMax)
		assert.Equal(t, BushY, b.Y)
	}
}

func TestDecorationKindString(t *testing.T) {
	assert.Equal(t, "cloud", DecorationCloud.String())
	assert.Equal(t, "bush", DecorationBush.String())
	assert.Equal(t, "DecorationKind(9)", DecorationKind(9).String())
}

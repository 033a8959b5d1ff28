package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayerStandsOnGround(t *testing.T) {
	p := NewPlayer()

	assert.Equal(t, PlayerX, p.X)
	assert.Equal(t, GroundLine, p.Rect().Bottom())
	assert.Zero(t, p.VelocityY)
	assert.False(t, p.Jumping)
}

func TestPlayerGroundClamp(t *testing.T) {
	p := NewPlayer()

	for i := 0; i < 100; i++ {
		p.Update(1)
		require.LessOrEqual(t, p.Rect().Bottom(), GroundLine, "tick %d", i)
		require.Zero(t, p.VelocityY, "velocity must reset on the ground")
	}
}

func TestPlayerJumpIgnoredWhileAirborne(t *testing.T) {
	p := NewPlayer()
	p.Jump()
	require.True(t, p.Jumping)
	require.Equal(t, JumpStrength, p.VelocityY)

	p.Update(1)
	vel := p.VelocityY

	p.Jump()
	assert.Equal(t, vel, p.VelocityY, "second jump must not change velocity")
	assert.True(t, p.Jumping)
}

func TestPlayerJumpArc(t *testing.T) {
	p := NewPlayer()
	p.Jump()

	apexTick := 0
	apexY := p.Y
	landTick := 0
	for tick := 1; tick <= 100; tick++ {
		p.Update(1)
		if p.Y < apexY {
			apexY = p.Y
			apexTick = tick
		}
		if !p.Jumping {
			landTick = tick
			break
		}
	}

	// v(n) = -15 + 0.8n turns positive after tick 18; displacement
	// -15n + 0.4n(n+1) is first >= 0 at tick 37.
	assert.Equal(t, 18, apexTick)
	assert.Equal(t, 37, landTick)
	assert.InDelta(t, GroundLine-PlayerHeight-133.2, apexY, 1e-9)
	assert.Equal(t, GroundLine, p.Rect().Bottom())
	assert.Zero(t, p.VelocityY)
}

func TestPlayerCanJumpAgainAfterLanding(t *testing.T) {
	p := NewPlayer()
	p.Jump()
	for p.Jumping {
		p.Update(1)
	}

	p.Jump()
	assert.True(t, p.Jumping)
	assert.Equal(t, JumpStrength, p.VelocityY)
}

package world

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quietSession returns a seeded session whose spawner never fires, so tests
// control every obstacle on the field.
func quietSession(seed int64) *Session {
	s := NewSession(rand.New(rand.NewSource(seed)))
	s.spawner.threshold = math.MaxInt
	return s
}

func addObstacle(t *testing.T, s *Session, kind ObstacleKind, x float64) *Obstacle {
	t.Helper()
	o, err := NewObstacle(kind, x)
	require.NoError(t, err)
	s.obstacles = append(s.obstacles, o)
	return o
}

func TestNewSession(t *testing.T) {
	s := NewSession(rand.New(rand.NewSource(1)))

	assert.Equal(t, StateRunning, s.State())
	assert.Zero(t, s.Score())
	assert.Zero(t, s.Ticks())
	assert.Empty(t, s.Obstacles())
	assert.Len(t, s.Decorations(), CloudCount+BushCount)
	assert.Equal(t, GroundLine, s.Player().Rect().Bottom())
}

func TestNewSessionNilRand(t *testing.T) {
	s := NewSession(nil)
	require.NotNil(t, s.rng)
	s.Advance(1)
	assert.Equal(t, 1, s.Ticks())
}

func TestAdvanceCollisionEndsRound(t *testing.T) {
	// Obstacle 40 wide at x=1100 scrolling 5/tick: it first overlaps the
	// player's right edge (150) when x drops to 145, on tick 191.
	s := quietSession(1)
	addObstacle(t, s, KindTurtle, 1100)

	for tick := 1; tick <= 190; tick++ {
		s.Advance(1)
		require.Equal(t, StateRunning, s.State(), "tick %d", tick)
	}

	s.Advance(1)
	assert.Equal(t, StateGameOver, s.State())
	assert.Equal(t, 191, s.Ticks())
	assert.Equal(t, 145.0, s.Obstacles()[0].X)
}

func TestGameOverFreezesSession(t *testing.T) {
	s := quietSession(2)
	addObstacle(t, s, KindMushroom, PlayerX)
	s.Advance(1)
	require.Equal(t, StateGameOver, s.State())

	before := s.Snapshot()
	vel := s.Player().VelocityY
	for i := 0; i < 200; i++ {
		s.HandleJumpInput()
		s.Advance(1)
	}

	assert.Equal(t, before, s.Snapshot())
	assert.Equal(t, vel, s.Player().VelocityY, "jump must not touch the player after game over")
	assert.False(t, s.Player().Jumping)
}

func TestJumpOverObstacleScores(t *testing.T) {
	s := quietSession(3)
	o := addObstacle(t, s, KindRabbit, 200)
	s.HandleJumpInput()

	// The obstacle right edge drops below the player's left edge (100) when
	// x reaches 55, on tick 29. The jump keeps the player clear until then.
	for tick := 1; tick <= 28; tick++ {
		s.Advance(1)
		require.Equal(t, StateRunning, s.State(), "tick %d", tick)
		require.Zero(t, s.Score(), "tick %d", tick)
	}

	s.Advance(1)
	assert.Equal(t, 1, s.Score())
	assert.True(t, o.Passed)
	assert.Equal(t, StateRunning, s.State())
}

func TestPassedCountsOnce(t *testing.T) {
	s := quietSession(4)
	o := addObstacle(t, s, KindTurtle, -30)

	s.Advance(1)
	require.True(t, o.Passed)
	require.Equal(t, 1, s.Score())

	s.Advance(1)
	s.Advance(1)
	assert.Equal(t, 1, s.Score())
	assert.Empty(t, s.Obstacles(), "obstacle should be gone once its right edge is below 0")
}

func TestTenPassesWinAndFreeze(t *testing.T) {
	s := quietSession(5)

	for i := 0; i < WinScore; i++ {
		require.Equal(t, StateRunning, s.State(), "pass %d", i)
		require.False(t, s.Player().Jumping, "player should have landed before pass %d", i)

		addObstacle(t, s, ObstacleKinds[i%len(ObstacleKinds)], 200)
		s.HandleJumpInput()
		for tick := 0; tick < 37; tick++ {
			s.Advance(1)
		}

		require.Equal(t, i+1, s.Score())
	}

	assert.Equal(t, StateWon, s.State())

	before := s.Snapshot()
	for i := 0; i < 500; i++ {
		s.Advance(1)
	}
	assert.Equal(t, before, s.Snapshot())
	assert.Equal(t, WinScore, s.Score())
}

func TestWinOnTenthPassSameTick(t *testing.T) {
	s := quietSession(6)
	s.score = WinScore - 1
	addObstacle(t, s, KindTurtle, -30)

	s.Advance(1)

	assert.Equal(t, WinScore, s.Score())
	assert.Equal(t, StateWon, s.State())
}

func TestCollisionWinsOverScoring(t *testing.T) {
	s := quietSession(7)
	s.score = WinScore - 1
	addObstacle(t, s, KindTurtle, -30)
	addObstacle(t, s, KindTurtle, PlayerX)

	s.Advance(1)

	assert.Equal(t, StateGameOver, s.State())
	assert.Equal(t, WinScore-1, s.Score(), "no scoring on the tick of a collision")
}

func TestResetFromGameOver(t *testing.T) {
	s := quietSession(8)
	addObstacle(t, s, KindRabbit, -30)
	s.Advance(1)
	addObstacle(t, s, KindRabbit, PlayerX)
	s.HandleJumpInput()
	s.Advance(1)
	require.Equal(t, StateGameOver, s.State())
	require.Equal(t, 1, s.Score())

	s.Reset()

	assert.Equal(t, StateRunning, s.State())
	assert.Zero(t, s.Score())
	assert.Zero(t, s.Ticks())
	assert.Zero(t, s.BackgroundOffset())
	assert.Empty(t, s.Obstacles())
	assert.Len(t, s.Decorations(), CloudCount+BushCount)

	p := s.Player()
	assert.Equal(t, PlayerX, p.X)
	assert.Equal(t, GroundLine-PlayerHeight, p.Y)
	assert.Zero(t, p.VelocityY)
	assert.False(t, p.Jumping)
	assert.Zero(t, s.spawner.Timer())
}

func TestResetWhileRunning(t *testing.T) {
	s := NewSession(rand.New(rand.NewSource(9)))
	for i := 0; i < 150; i++ {
		s.Advance(1)
	}
	require.NotEmpty(t, s.Obstacles())

	s.Reset()

	assert.Equal(t, StateRunning, s.State())
	assert.Empty(t, s.Obstacles())
}

func TestSessionInvariants(t *testing.T) {
	s := NewSession(rand.New(rand.NewSource(10)))
	rng := rand.New(rand.NewSource(11))
	passed := make(map[*Obstacle]bool)
	lastScore := 0
	rounds := 0

	for tick := 0; tick < 20000; tick++ {
		if rng.Intn(20) == 0 {
			s.HandleJumpInput()
		}
		s.Advance(1)

		require.LessOrEqual(t, s.Player().Rect().Bottom(), GroundLine)
		require.GreaterOrEqual(t, s.Score(), lastScore, "score must never decrease within a round")
		lastScore = s.Score()

		for _, o := range s.Obstacles() {
			require.False(t, o.Dead(), "dead obstacles must be removed")
			if passed[o] {
				require.True(t, o.Passed, "passed flag must never flip back")
			}
			passed[o] = o.Passed
		}

		if s.State().Terminal() {
			s.Reset()
			lastScore = 0
			rounds++
		}
	}

	assert.Positive(t, rounds, "random play should finish at least one round")
}

func TestAdvanceDelta(t *testing.T) {
	s := quietSession(12)

	s.Advance(0)
	s.Advance(-1)
	assert.Zero(t, s.Ticks())
	assert.Zero(t, s.BackgroundOffset())

	s.Advance(10)
	assert.Equal(t, 1, s.Ticks())
	assert.Equal(t, ScrollSpeed*MaxDelta, s.BackgroundOffset())

	s.Advance(0.5)
	assert.Equal(t, ScrollSpeed*MaxDelta+ScrollSpeed*0.5, s.BackgroundOffset())
}

func TestSpawnedObstaclesAppear(t *testing.T) {
	s := NewSession(rand.New(rand.NewSource(13)))

	for len(s.Obstacles()) == 0 && s.Ticks() <= SpawnThresholdMax {
		s.Advance(1)
	}

	require.Len(t, s.Obstacles(), 1)
	assert.GreaterOrEqual(t, s.Ticks(), SpawnThresholdMin+1)
	o := s.Obstacles()[0]
	assert.GreaterOrEqual(t, o.X, WorldWidth+SpawnOffsetMin, "new obstacles start off screen")
}

func TestSnapshotIsCopy(t *testing.T) {
	s := quietSession(14)
	addObstacle(t, s, KindMushroom, 600)

	snap := s.Snapshot()
	require.Len(t, snap.Obstacles, 1)
	assert.Equal(t, KindMushroom, snap.Obstacles[0].Kind)
	assert.Equal(t, CloudCount+BushCount, len(snap.Decorations))
	assert.Equal(t, StateRunning, snap.State)

	snap.Obstacles[0].Passed = true
	snap.Obstacles[0].Rect.X = 0
	snap.Player.Rect.Y = 0

	assert.False(t, s.Obstacles()[0].Passed)
	assert.Equal(t, 600.0, s.Obstacles()[0].X)
	assert.Equal(t, GroundLine-PlayerHeight, s.Player().Y)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "game over", StateGameOver.String())
	assert.Equal(t, "won", StateWon.String())
	assert.False(t, StateRunning.Terminal())
	assert.True(t, StateWon.Terminal())
}

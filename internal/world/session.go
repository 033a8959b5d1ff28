package world

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/runner-dash/internal/core"
)

// State is the phase of a round.
type State int

const (
	StateRunning State = iota
	StateGameOver
	StateWon
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state only leaves through Reset.
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateWon
}

// Session owns every entity of a round and runs the per-tick rules.
// A Session is not safe for concurrent use.
type Session struct {
	rng              *rand.Rand
	player           *Player
	obstacles        []*Obstacle
	decorations      []*Decoration
	spawner          *Spawner
	score            int
	backgroundOffset float64
	state            State
	ticks            int
}

// NewSession starts a fresh round drawing randomness from rng.
// A nil rng is replaced by one seeded from the clock.
func NewSession(rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Session{rng: rng}
	s.Reset()
	return s
}

// Reset discards the current round and starts a new one. It is valid in any
// state. The generator is kept, so the new round continues the random stream
// instead of replaying the previous one.
func (s *Session) Reset() {
	s.player = NewPlayer()
	s.obstacles = nil
	s.decorations = make([]*Decoration, 0, CloudCount+BushCount)
	for i := 0; i < CloudCount; i++ {
		x := float64(randRange(s.rng, 0, int(WorldWidth)))
		y := float64(randRange(s.rng, CloudBandMin, CloudBandMax))
		s.decorations = append(s.decorations, NewCloud(s.rng, x, y))
	}
	for i := 0; i < BushCount; i++ {
		x := float64(randRange(s.rng, 0, int(WorldWidth)))
		s.decorations = append(s.decorations, NewBush(s.rng, x))
	}
	s.spawner = NewSpawner(s.rng)
	s.score = 0
	s.backgroundOffset = 0
	s.state = StateRunning
	s.ticks = 0
}

// HandleJumpInput makes the player jump. Ignored once the round is over.
func (s *Session) HandleJumpInput() {
	if s.state != StateRunning {
		return
	}
	s.player.Jump()
}

// Advance runs one simulation step of dt ticks. Nothing happens once the
// round is over or when dt is not positive; dt is capped at MaxDelta.
func (s *Session) Advance(dt float64) {
	if s.state != StateRunning || dt <= 0 {
		return
	}
	dt = core.ClampF(dt, 0, MaxDelta)
	s.ticks++

	s.backgroundOffset += ScrollSpeed * dt

	s.player.Update(dt)
	for _, o := range s.obstacles {
		o.Update(dt)
	}
	for _, d := range s.decorations {
		d.Update(dt)
	}

	if o := s.spawner.Tick(); o != nil {
		s.obstacles = append(s.obstacles, o)
	}

	s.removeDead()

	if s.collides() {
		s.state = StateGameOver
		return
	}

	s.countPassed()
	if s.score >= WinScore {
		s.state = StateWon
	}
}

// removeDead drops obstacles that scrolled off the left edge.
func (s *Session) removeDead() {
	alive := s.obstacles[:0]
	for _, o := range s.obstacles {
		if !o.Dead() {
			alive = append(alive, o)
		}
	}
	for i := len(alive); i < len(s.obstacles); i++ {
		s.obstacles[i] = nil
	}
	s.obstacles = alive
}

// collides reports whether the player touches any live obstacle.
func (s *Session) collides() bool {
	pr := s.player.Rect()
	for _, o := range s.obstacles {
		if pr.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}

// countPassed scores every obstacle that is now fully behind the player.
func (s *Session) countPassed() {
	left := s.player.Rect().X
	for _, o := range s.obstacles {
		if !o.Passed && o.Rect().Right() < left {
			o.Passed = true
			s.score++
		}
	}
}

// Score returns the number of obstacles passed this round.
func (s *Session) Score() int {
	return s.score
}

// State returns the current phase of the round.
func (s *Session) State() State {
	return s.state
}

// Ticks returns how many steps the current round has simulated.
func (s *Session) Ticks() int {
	return s.ticks
}

// BackgroundOffset returns the cosmetic scroll distance of the ground.
func (s *Session) BackgroundOffset() float64 {
	return s.backgroundOffset
}

// Player returns the player. Callers must treat it as read-only.
func (s *Session) Player() *Player {
	return s.player
}

// Obstacles returns the live obstacles. Callers must treat them as read-only.
func (s *Session) Obstacles() []*Obstacle {
	return s.obstacles
}

// Decorations returns the scenery. Callers must treat it as read-only.
func (s *Session) Decorations() []*Decoration {
	return s.decorations
}

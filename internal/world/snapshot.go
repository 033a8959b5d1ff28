package world

import "github.com/vovakirdan/runner-dash/internal/core"

// PlayerView is the render state of the player.
type PlayerView struct {
	Rect    core.Rect
	Jumping bool
}

// ObstacleView is the render state of one obstacle.
type ObstacleView struct {
	Rect   core.Rect
	Kind   ObstacleKind
	Passed bool
}

// DecorationView is the render state of one piece of scenery.
type DecorationView struct {
	Rect core.Rect
	Kind DecorationKind
}

// Snapshot is a copy of everything a surface needs to draw one frame.
type Snapshot struct {
	State            State
	Score            int
	Ticks            int
	BackgroundOffset float64
	Player           PlayerView
	Obstacles        []ObstacleView
	Decorations      []DecorationView
}

// Snapshot copies the current render state out of the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:            s.state,
		Score:            s.score,
		Ticks:            s.ticks,
		BackgroundOffset: s.backgroundOffset,
		Player: PlayerView{
			Rect:    s.player.Rect(),
			Jumping: s.player.Jumping,
		},
		Obstacles:   make([]ObstacleView, 0, len(s.obstacles)),
		Decorations: make([]DecorationView, 0, len(s.decorations)),
	}
	for _, o := range s.obstacles {
		snap.Obstacles = append(snap.Obstacles, ObstacleView{Rect: o.Rect(), Kind: o.Kind, Passed: o.Passed})
	}
	for _, d := range s.decorations {
		snap.Decorations = append(snap.Decorations, DecorationView{Rect: d.Rect(), Kind: d.Kind})
	}
	return snap
}

// Surface draws render state. It has no authority over the simulation.
type Surface interface {
	Draw(snap Snapshot)
}

// InputSource reports the actions triggered since the previous poll.
type InputSource interface {
	Poll() core.InputFrame
}

package world

// Player is the auto-running character. Only its vertical motion is simulated.
type Player struct {
	Entity
	VelocityY float64 // Positive is down
	Jumping   bool    // True from takeoff until landing
}

// NewPlayer returns a player standing on the ground at its start position.
func NewPlayer() *Player {
	return &Player{
		Entity: Entity{
			X: PlayerX,
			Y: GroundLine - PlayerHeight,
			W: PlayerWidth,
			H: PlayerHeight,
		},
	}
}

// Update applies gravity and lands the player on the ground line.
func (p *Player) Update(dt float64) {
	p.VelocityY += Gravity * dt
	p.Y += p.VelocityY * dt

	if p.Y+p.H >= GroundLine {
		p.Y = GroundLine - p.H
		p.VelocityY = 0
		p.Jumping = false
	}
}

// Jump starts a jump. There is no air jump: it does nothing while airborne.
func (p *Player) Jump() {
	if p.Jumping {
		return
	}
	p.VelocityY = JumpStrength
	p.Jumping = true
}

package core

// DefaultParticleTicks is the lifetime of a roll-distance label.
const DefaultParticleTicks = 20

// particleDrift is the per-tick velocity of a roll-distance label: a small
// diagonal drift that also rises.
var particleDrift = FVec3{X: 0.05, Y: -0.05, Z: 0.1}

// Particle is a transient text element drifting through the world.
type Particle struct {
	Pos  FVec3
	Vel  FVec3
	Life int // Remaining ticks; the particle dies when this reaches exactly zero
	Text string
}

// NewParticle creates a particle. A non-positive lifetime is raised to one tick.
func NewParticle(pos, vel FVec3, life int, text string) *Particle {
	if life <= 0 {
		life = 1
	}
	return &Particle{Pos: pos, Vel: vel, Life: life, Text: text}
}

// age moves the particle and reports whether it is still alive.
func (p *Particle) age() bool {
	p.Pos = p.Pos.Add(p.Vel)
	p.Life--
	return p.Life != 0
}

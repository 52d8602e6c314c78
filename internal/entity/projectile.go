// internal/entity/projectile.go
package entity

import (
	"go-target-range/internal/component"
	"go-target-range/internal/config"
	"go-target-range/pkg/render"
)

// Projectile is a shot fired by a Target. It flies in a straight line and
// dies once it leaves the playfield.
type Projectile struct {
	component.Position
	Radius    float64
	Direction float64 // radians
	Dead      bool
	Owner     *Target // informational only
}

// NewProjectile creates a live projectile at (x, y) heading in direction.
func NewProjectile(owner *Target, x, y, direction float64) *Projectile {
	return &Projectile{
		Position:  component.Position{X: x, Y: y},
		Radius:    config.ProjectileRadius,
		Direction: direction,
		Owner:     owner,
	}
}

// Advance moves the projectile one tick. The radius doubles as the step
// length. Dead projectiles stay where they are.
func (p *Projectile) Advance() {
	if p.Dead {
		return
	}
	p.Step(p.Direction, p.Radius)

	s := p.Radius - 1
	if p.X < -s || p.X > config.PlayfieldWidth+s {
		p.Dead = true
	} else if p.Y < -s || p.Y > config.PlayfieldHeight+s {
		p.Dead = true
	}
}

// Draw renders the projectile unless it is dead.
func (p *Projectile) Draw(canvas render.Canvas) {
	if p.Dead {
		return
	}
	canvas.FillCircle(p.X, p.Y, p.Radius, config.ProjectileColor)
}

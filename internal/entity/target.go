// internal/entity/target.go
package entity

import (
	"go-target-range/internal/component"
	"go-target-range/internal/config"
	"go-target-range/pkg/render"
)

// Action is what a click did to a target.
type Action int

const (
	ActionSpawned Action = iota
	ActionKilled
	ActionFired
)

func (a Action) String() string {
	switch a {
	case ActionSpawned:
		return "spawned"
	case ActionKilled:
		return "killed"
	case ActionFired:
		return "fired"
	}
	return "unknown"
}

// Target is the circle living on one surface. It starts dead and owns every
// projectile it fires.
type Target struct {
	component.Position
	Radius      float64
	Alive       bool
	Projectiles []*Projectile
}

// NewTarget creates a dead target at (x, y).
func NewTarget(x, y, radius float64) *Target {
	return &Target{
		Position: component.Position{X: x, Y: y},
		Radius:   radius,
	}
}

// Hit reports whether (x, y) lies strictly inside the circle.
func (t *Target) Hit(x, y float64) bool {
	return t.DistanceTo(x, y) < t.Radius
}

// Respawn brings the target back to life at (x, y) with no projectiles.
func (t *Target) Respawn(x, y float64) {
	t.X = x
	t.Y = y
	t.Projectiles = nil
	t.Alive = true
}

// Kill destroys the target together with everything it has in flight.
func (t *Target) Kill() {
	t.Projectiles = nil
	t.Alive = false
}

// Fire launches a projectile from just outside the rim towards (x, y).
func (t *Target) Fire(x, y float64) *Projectile {
	r := t.Radius + config.FireSpawnOffset
	d := t.DistanceTo(x, y)

	var p *Projectile
	if d == 0 {
		// Нет направления: стреляем вправо.
		p = NewProjectile(t, t.X+r, t.Y, 0)
	} else {
		bx := t.X - r*(t.X-x)/d
		by := t.Y - r*(t.Y-y)/d
		p = NewProjectile(t, bx, by, t.AngleTo(x, y))
	}

	t.Projectiles = append(t.Projectiles, p)
	return p
}

// HandleClick applies a click at playfield coordinates (x, y).
func (t *Target) HandleClick(x, y float64) Action {
	if !t.Alive {
		t.Respawn(x, y)
		return ActionSpawned
	}
	if t.Hit(x, y) {
		t.Kill()
		return ActionKilled
	}
	t.Fire(x, y)
	return ActionFired
}

// Update advances every projectile one tick and drops the dead ones, keeping
// the survivors in order. It returns how many projectiles were dropped.
func (t *Target) Update() int {
	if !t.Alive {
		return 0
	}

	alive := t.Projectiles[:0]
	for _, p := range t.Projectiles {
		p.Advance()
		if !p.Dead {
			alive = append(alive, p)
		}
	}
	expired := len(t.Projectiles) - len(alive)
	for i := len(alive); i < len(t.Projectiles); i++ {
		t.Projectiles[i] = nil
	}
	t.Projectiles = alive
	return expired
}

// Draw renders the circle and then its projectiles in firing order.
func (t *Target) Draw(canvas render.Canvas) {
	if !t.Alive {
		return
	}
	canvas.FillCircle(t.X, t.Y, t.Radius, config.TargetColor)
	for _, p := range t.Projectiles {
		p.Draw(canvas)
	}
}

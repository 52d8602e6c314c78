package entity

import (
	"math"
	"testing"

	"go-target-range/internal/config"
	"go-target-range/pkg/render"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestProjectileAdvanceStraightLine(t *testing.T) {
	cases := []struct {
		name      string
		direction float64
	}{
		{"right", 0},
		{"up", -math.Pi / 2},
		{"down_left", 3 * math.Pi / 4},
		{"shallow", 0.1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewProjectile(nil, 250, 150, c.direction)
			prevX, prevY := p.X, p.Y
			for i := 0; i < 10; i++ {
				p.Advance()
				if p.Dead {
					t.Fatalf("projectile died at tick %d inside the playfield", i)
				}
				step := math.Hypot(p.X-prevX, p.Y-prevY)
				if !near(step, config.ProjectileRadius) {
					t.Fatalf("tick %d: step length %v, want %v", i, step, config.ProjectileRadius)
				}
				if got := math.Atan2(p.Y-prevY, p.X-prevX); !near(got, c.direction) {
					t.Fatalf("tick %d: heading %v, want %v", i, got, c.direction)
				}
				prevX, prevY = p.X, p.Y
			}
		})
	}
}

func TestProjectileDiesWhenLeavingPlayfield(t *testing.T) {
	cases := []struct {
		name      string
		x, y      float64
		direction float64
	}{
		{"left", 8, 150, math.Pi},
		{"right", config.PlayfieldWidth - 8, 150, 0},
		{"top", 250, 8, -math.Pi / 2},
		{"bottom", 250, config.PlayfieldHeight - 8, math.Pi / 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewProjectile(nil, c.x, c.y, c.direction)
			s := p.Radius - 1
			ticks := 0
			for !p.Dead {
				p.Advance()
				ticks++
				if ticks > 10 {
					t.Fatalf("projectile never died, at (%v, %v)", p.X, p.Y)
				}
				outside := p.X < -s || p.X > config.PlayfieldWidth+s ||
					p.Y < -s || p.Y > config.PlayfieldHeight+s
				if outside != p.Dead {
					t.Fatalf("tick %d: dead=%v but outside=%v at (%v, %v)", ticks, p.Dead, outside, p.X, p.Y)
				}
			}
			// 8 -> 3 -> -2 -> -7: only the third position is past the margin of 4.
			if ticks != 3 {
				t.Fatalf("died after %d ticks", ticks)
			}
		})
	}
}

func TestProjectileDeadIsFrozen(t *testing.T) {
	p := NewProjectile(nil, 2, 150, math.Pi)
	for !p.Dead {
		p.Advance()
	}
	x, y := p.X, p.Y
	for i := 0; i < 3; i++ {
		p.Advance()
	}
	if !p.Dead {
		t.Fatal("dead projectile revived")
	}
	if p.X != x || p.Y != y {
		t.Fatalf("dead projectile moved from (%v, %v) to (%v, %v)", x, y, p.X, p.Y)
	}
}

func TestProjectileDraw(t *testing.T) {
	list := render.NewDisplayList()
	p := NewProjectile(nil, 10, 20, 0)
	p.Draw(list)
	if len(list.Circles) != 1 {
		t.Fatalf("expected 1 circle, got %d", len(list.Circles))
	}
	c := list.Circles[0]
	if c.X != 10 || c.Y != 20 || c.Radius != config.ProjectileRadius || c.Color != config.ProjectileColor {
		t.Fatalf("unexpected circle %+v", c)
	}

	list.Clear()
	p.Dead = true
	p.Draw(list)
	if len(list.Circles) != 0 {
		t.Fatal("dead projectile should not be drawn")
	}
}

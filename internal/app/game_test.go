package app

import (
	"strings"
	"testing"

	"go-target-range/internal/event"
	"go-target-range/internal/layout"
	"go-target-range/pkg/render"
)

func displayLists(string) render.Canvas {
	return render.NewDisplayList()
}

func testLayout(t *testing.T) *layout.Layout {
	t.Helper()
	l, err := layout.Parse([]byte(`
surfaces:
  - id: static
    x: 20
    y: 30
  - id: half
    x: 20
    y: 400
    scale: 0.5
`))
	if err != nil {
		t.Fatalf("layout.Parse: %v", err)
	}
	return l
}

func TestNewGameBindsLayout(t *testing.T) {
	g, err := NewGame(testLayout(t), displayLists, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	surfaces := g.Scene.Surfaces()
	if len(surfaces) != 2 || surfaces[0].ID != "static" || surfaces[1].ID != "half" {
		t.Fatalf("unexpected surfaces %v", surfaces)
	}
	if d := surfaces[1].Display; d.W != 250 || d.H != 150 || d.Y != 400 {
		t.Fatalf("half display %+v", d)
	}
}

func TestHandleClickRoutesByWindowPosition(t *testing.T) {
	g, err := NewGame(testLayout(t), displayLists, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	// 50 px into the half-size surface is 100 playfield units.
	if !g.HandleClick(70, 450) {
		t.Fatal("click on surface not routed")
	}
	half, _ := g.Scene.Surface("half")
	if !half.Target.Alive || half.Target.X != 100 || half.Target.Y != 100 {
		t.Fatalf("half target %+v", half.Target)
	}

	if g.HandleClick(5, 5) {
		t.Fatal("click outside every surface should be ignored")
	}
	static, _ := g.Scene.Surface("static")
	if static.Target.Alive {
		t.Fatal("static target should still be dead")
	}
}

func TestUpdateTicksScene(t *testing.T) {
	g, err := NewGame(testLayout(t), displayLists, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.HandleClick(270, 180) // spawn at (250, 150)
	g.HandleClick(270, 31)  // fire up
	g.Update(1.0 / 60)

	static, _ := g.Scene.Surface("static")
	list := static.Canvas.(*render.DisplayList)
	if len(list.Circles) != 2 {
		t.Fatalf("expected target and projectile drawn, got %d circles", len(list.Circles))
	}
	if n, _ := g.Scene.Frames(); n != 1 {
		t.Fatalf("frames = %d", n)
	}
	if g.ScoreSystem.Tally("static").Shots != 1 {
		t.Fatal("shot not counted")
	}
}

func TestApplyLayout(t *testing.T) {
	d := event.NewDispatcher()
	reloaded := 0
	d.Subscribe(event.LayoutReloaded, event.ListenerFunc(func(event.Event) { reloaded++ }))

	g, err := NewGame(testLayout(t), displayLists, d)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	moved, _ := layout.Parse([]byte("surfaces:\n  - id: static\n    x: 100\n  - id: half\n    scale: 1\n"))
	if err := g.ApplyLayout(moved); err != nil {
		t.Fatalf("ApplyLayout: %v", err)
	}
	static, _ := g.Scene.Surface("static")
	if static.Display.X != 100 {
		t.Fatalf("static not moved: %+v", static.Display)
	}
	if reloaded != 1 {
		t.Fatalf("LayoutReloaded dispatched %d times", reloaded)
	}

	renamed, _ := layout.Parse([]byte("surfaces:\n  - id: static\n  - id: other\n"))
	if err := g.ApplyLayout(renamed); err == nil || !strings.Contains(err.Error(), "other") {
		t.Fatalf("expected unknown surface error, got %v", err)
	}
	fewer, _ := layout.Parse([]byte("surfaces:\n  - id: static\n"))
	if err := g.ApplyLayout(fewer); err == nil {
		t.Fatal("expected surface count error")
	}
	if g.Layout() != moved {
		t.Fatal("rejected layout replaced the current one")
	}
}

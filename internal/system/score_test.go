package system

import (
	"testing"
	"time"

	"go-target-range/internal/event"
	"go-target-range/internal/scene"
	"go-target-range/pkg/render"
)

func newScoredScene(t *testing.T) (*scene.Scene, *ScoreSystem) {
	t.Helper()
	d := event.NewDispatcher()
	score := NewScoreSystem(d)
	sc, err := scene.New(d,
		scene.Binding{ID: "a", Canvas: render.NewDisplayList(), Display: scene.Rect{W: 500, H: 300}},
		scene.Binding{ID: "b", Canvas: render.NewDisplayList(), Display: scene.Rect{W: 500, H: 300}},
	)
	if err != nil {
		t.Fatalf("scene.New: %v", err)
	}
	return sc, score
}

func TestScoreCountsClicks(t *testing.T) {
	sc, score := newScoredScene(t)

	sc.OnClick("a", 250, 150) // spawn
	sc.OnClick("a", 400, 150) // fire
	sc.OnClick("a", 100, 150) // fire
	sc.OnClick("a", 250, 150) // kill with 2 in flight
	sc.OnClick("b", 50, 50)   // spawn on b
	sc.OnClick("nowhere", 1, 1)

	got := score.Tally("a")
	want := Tally{Spawns: 1, Kills: 1, Shots: 2, Discarded: 2}
	if got != want {
		t.Fatalf("tally a = %+v, want %+v", got, want)
	}
	if got.InFlight() != 0 {
		t.Fatalf("in flight = %d after kill", got.InFlight())
	}
	if b := score.Tally("b"); b.Spawns != 1 || b.Shots != 0 {
		t.Fatalf("tally b = %+v", b)
	}
	if score.Unrouted() != 1 {
		t.Fatalf("unrouted = %d, want 1", score.Unrouted())
	}
}

func TestScoreCountsExpired(t *testing.T) {
	sc, score := newScoredScene(t)

	sc.OnClick("a", 250, 150)
	sc.OnClick("a", 500, 150)
	sc.OnClick("a", 250, 300)
	if n := score.Tally("a").InFlight(); n != 2 {
		t.Fatalf("in flight = %d, want 2", n)
	}

	for i := 0; i < 60; i++ {
		sc.FrameTick(time.Now())
	}
	got := score.Tally("a")
	if got.Expired != 2 || got.InFlight() != 0 {
		t.Fatalf("tally = %+v", got)
	}
}

func TestScoreIgnoresForeignPayloads(t *testing.T) {
	d := event.NewDispatcher()
	score := NewScoreSystem(d)
	d.Dispatch(event.Event{Type: event.TargetSpawned, Data: "not surface data"})
	if score.Tally("").Spawns != 0 {
		t.Fatal("foreign payload was counted")
	}
}

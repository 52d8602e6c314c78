// internal/system/score.go
package system

import (
	"go-target-range/internal/event"
)

// Tally counts what happened on one surface.
type Tally struct {
	Spawns    int
	Kills     int
	Shots     int
	Expired   int // left the playfield
	Discarded int // still in flight when their target was killed
}

// InFlight is the number of shots still on the playfield.
func (t Tally) InFlight() int {
	return t.Shots - t.Expired - t.Discarded
}

// ScoreSystem listens to scene events and keeps a Tally per surface.
type ScoreSystem struct {
	tallies  map[string]*Tally
	unrouted int
}

func NewScoreSystem(dispatcher *event.Dispatcher) *ScoreSystem {
	s := &ScoreSystem{tallies: make(map[string]*Tally)}
	dispatcher.SubscribeAll(s,
		event.TargetSpawned,
		event.TargetKilled,
		event.ProjectileFired,
		event.ProjectilesExpired,
		event.ClickUnrouted,
	)
	return s
}

func (s *ScoreSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.SurfaceData)
	if !ok {
		return
	}
	if e.Type == event.ClickUnrouted {
		s.unrouted++
		return
	}

	t := s.tally(data.SurfaceID)
	switch e.Type {
	case event.TargetSpawned:
		t.Spawns++
	case event.TargetKilled:
		t.Kills++
		// Убитая цель уносит свои снаряды с собой.
		t.Discarded += data.Count
	case event.ProjectileFired:
		t.Shots += data.Count
	case event.ProjectilesExpired:
		t.Expired += data.Count
	}
}

func (s *ScoreSystem) tally(id string) *Tally {
	t, ok := s.tallies[id]
	if !ok {
		t = &Tally{}
		s.tallies[id] = t
	}
	return t
}

// Tally returns a copy of the counters for surface id.
func (s *ScoreSystem) Tally(id string) Tally {
	if t, ok := s.tallies[id]; ok {
		return *t
	}
	return Tally{}
}

// Unrouted is how many clicks named a surface nobody had bound.
func (s *ScoreSystem) Unrouted() int {
	return s.unrouted
}

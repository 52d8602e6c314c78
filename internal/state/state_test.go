package state

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	name string
	log  *[]string
}

func (s recordingState) Enter()             { *s.log = append(*s.log, s.name+":enter") }
func (s recordingState) Update(float64)     { *s.log = append(*s.log, s.name+":update") }
func (s recordingState) Draw(*ebiten.Image) { *s.log = append(*s.log, s.name+":draw") }
func (s recordingState) Exit()              { *s.log = append(*s.log, s.name+":exit") }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()

	sm.Update(0.016) // no state yet
	sm.SetState(recordingState{"menu", &log})
	sm.Update(0.016)
	sm.SetState(recordingState{"range", &log})
	sm.Update(0.016)
	sm.Draw(nil)

	want := "menu:enter,menu:update,menu:exit,range:enter,range:update,range:draw"
	if got := strings.Join(log, ","); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
	if _, ok := sm.Current().(recordingState); !ok {
		t.Fatal("current state not reported")
	}
}

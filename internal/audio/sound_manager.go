package audio

import (
	"sync"
	"time"

	"go-target-range/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays short cues for scene events.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a silent sound manager; call Initialize to open the
// audio device.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker. Without it every Play call is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Subscribe hooks the manager up to the scene's events.
func (sm *SoundManager) Subscribe(dispatcher *event.Dispatcher) {
	dispatcher.SubscribeAll(sm, event.ProjectileFired, event.TargetSpawned, event.TargetKilled)
}

func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.ProjectileFired:
		sm.PlayShot()
	case event.TargetSpawned:
		sm.PlaySpawn()
	case event.TargetKilled:
		sm.PlayKill()
	}
}

// PlayShot plays a short falling "pew".
func (sm *SoundManager) PlayShot() {
	sm.play(NewChirpGenerator(sampleRate, 1400, 500, sampleRate.N(90*time.Millisecond), 0.2))
}

// PlaySpawn plays a short sine blip.
func (sm *SoundManager) PlaySpawn() {
	sine, err := generators.SineTone(sampleRate, 660)
	if err != nil {
		return
	}
	sm.play(beep.Take(sampleRate.N(60*time.Millisecond), sine))
}

// PlayKill plays a low falling thud.
func (sm *SoundManager) PlayKill() {
	sm.play(NewChirpGenerator(sampleRate, 220, 60, sampleRate.N(200*time.Millisecond), 0.3))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup stops everything that is still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

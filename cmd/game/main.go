// cmd/game/main.go
package main

import (
	"flag"
	game "go-target-range/internal/app"
	"go-target-range/internal/audio"
	"go-target-range/internal/config"
	"go-target-range/internal/event"
	"go-target-range/internal/layout"
	"go-target-range/internal/state"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func loadLayout(path string) (*layout.Layout, error) {
	if path == "" {
		return layout.Default()
	}
	return layout.Load(path)
}

func main() {
	layoutPath := flag.String("layout", "", "YAML file placing the surfaces (default: built-in layout)")
	watch := flag.Bool("watch", false, "reload -layout when the file changes")
	mute := flag.Bool("mute", false, "disable sound")
	menu := flag.Bool("menu", false, "start with the title screen")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	l, err := loadLayout(*layoutPath)
	if err != nil {
		log.Fatal(err)
	}

	dispatcher := event.NewDispatcher()
	if !*mute {
		sounds := audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			// Без звука тоже можно играть
			log.Printf("audio initialization failed: %v", err)
		} else {
			sounds.Subscribe(dispatcher)
			defer sounds.Cleanup()
		}
	}

	g, err := game.NewGame(l, game.ImageCanvases, dispatcher)
	if err != nil {
		log.Fatal(err)
	}

	var reloads state.LayoutSource
	if *watch {
		if *layoutPath == "" {
			log.Fatal("-watch needs -layout")
		}
		w, err := layout.NewWatcher(*layoutPath)
		if err != nil {
			log.Fatalf("layout watcher: %v", err)
		}
		defer w.Close()
		reloads = state.LayoutSource{Layouts: w.Layouts, Errors: w.Errors}
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	rangeState := func() state.State { return state.NewGameState(sm, g, reloads) }
	if *menu {
		sm.SetState(state.NewMenuState(sm, rangeState))
	} else {
		sm.SetState(rangeState())
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Target Range")
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"flag"
	"fmt"
	game "go-target-range/internal/app"
	"go-target-range/internal/config"
	"go-target-range/internal/layout"
	"go-target-range/pkg/render"
	"go-target-range/pkg/render/rlcanvas"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func displayLists(string) render.Canvas {
	return render.NewDisplayList()
}

func main() {
	layoutPath := flag.String("layout", "", "YAML file placing the surfaces (default: built-in layout)")
	flag.Parse()

	var l *layout.Layout
	var err error
	if *layoutPath == "" {
		l, err = layout.Default()
	} else {
		l, err = layout.Load(*layoutPath)
	}
	if err != nil {
		log.Fatal(err)
	}

	g, err := game.NewGame(l, displayLists, nil)
	if err != nil {
		log.Fatal(err)
	}

	// --- Инициализация ---
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Target Range | raylib")
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TPS)

	background := rlcanvas.ColorToRL(config.BackgroundColor)
	surfaceColor := rlcanvas.ColorToRL(config.SurfaceColor)
	strokeColor := rlcanvas.ColorToRL(config.SurfaceStrokeColor)
	textColor := rlcanvas.ColorToRL(config.TextColor)

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			pos := rl.GetMousePosition()
			g.HandleClick(float64(pos.X), float64(pos.Y))
		}

		dt := float64(rl.GetFrameTime())
		if dt > config.MaxDeltaTime {
			dt = config.MaxDeltaTime
		}
		g.SweepSystem.Update(dt)
		g.Scene.FrameTick(time.Now())

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(background)
		for _, s := range g.Scene.Surfaces() {
			d := s.Display
			rl.DrawRectangle(int32(d.X), int32(d.Y), int32(d.W), int32(d.H), surfaceColor)
			rlcanvas.Draw(s.Canvas.(*render.DisplayList),
				float32(d.X), float32(d.Y), float32(d.W), float32(d.H),
				config.PlayfieldWidth, config.PlayfieldHeight)
			rl.DrawRectangleLines(int32(d.X), int32(d.Y), int32(d.W), int32(d.H), strokeColor)

			t := g.ScoreSystem.Tally(s.ID)
			rl.DrawText(fmt.Sprintf("%s  shots %d  in flight %d", s.ID, t.Shots, t.InFlight()),
				int32(d.X), int32(d.Y)-config.HUDLineHeight-config.HUDOffsetY, 12, textColor)
		}
		rl.DrawFPS(config.ScreenWidth-90, config.ScreenHeight-24)
		rl.EndDrawing()
	}
}

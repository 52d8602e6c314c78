package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"go-target-range/internal/config"
	"go-target-range/internal/event"
	"go-target-range/internal/layout"
	"go-target-range/internal/scene"
	"go-target-range/internal/system"
	"go-target-range/internal/utils"
	"go-target-range/pkg/render"
	"go-target-range/pkg/render/termcanvas"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
)

const (
	margin    = 2
	maxCols   = 100
	labelRows = 1
)

// termLayout places surfaces as cell rectangles stacked top to bottom.
// Terminal cells are about twice as tall as wide, so a 500x300 playfield
// takes cols x cols*3/10 cells.
func termLayout(l *layout.Layout, screenW, screenH int, elapsed float64) []scene.Rect {
	n := len(l.Surfaces)
	rowsEach := (screenH-margin)/n - labelRows - margin
	cols := screenW - 2*margin
	if cols > maxCols {
		cols = maxCols
	}
	rows := cols * 3 / 10
	if rows > rowsEach {
		rows = rowsEach
		cols = rows * 10 / 3
	}
	if rows < 1 || cols < 1 {
		return make([]scene.Rect, n)
	}

	rects := make([]scene.Rect, 0, n)
	y := margin + labelRows
	for _, spec := range l.Surfaces {
		x := float64(margin)
		if spec.Animate {
			free := float64(screenW - 2*margin - cols)
			if free > 0 {
				// Same period as the windowed version.
				period := spec.Span / spec.Sweep
				x += utils.PingPong(elapsed, period) / period * free
			}
		}
		rects = append(rects, scene.Rect{X: float64(int(x)), Y: float64(y), W: float64(cols), H: float64(rows)})
		y += rows + labelRows + margin
	}
	return rects
}

func main() {
	layoutPath := flag.String("layout", "", "YAML file naming the surfaces (default: built-in layout)")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	// Лог в терминал сломает отрисовку
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	var l *layout.Layout
	var err error
	if *layoutPath == "" {
		l, err = layout.Default()
	} else {
		l, err = layout.Load(*layoutPath)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	dispatcher := event.NewDispatcher()
	score := system.NewScoreSystem(dispatcher)

	lists := make(map[string]*render.DisplayList, len(l.Surfaces))
	bindings := make([]scene.Binding, 0, len(l.Surfaces))
	for _, spec := range l.Surfaces {
		list := render.NewDisplayList()
		lists[spec.ID] = list
		bindings = append(bindings, scene.Binding{ID: spec.ID, Canvas: list})
	}
	sc, err := scene.New(dispatcher, bindings...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clicks := make(chan scene.Click, 16)
	go func() {
		var wasDown bool
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					cancel()
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventMouse:
				down := ev.Buttons()&tcell.Button1 != 0
				if down && !wasDown {
					x, y := ev.Position()
					select {
					case clicks <- scene.Click{X: float64(x), Y: float64(y), Cell: true}:
					default:
					}
				}
				wasDown = down
			}
		}
	}()

	start := time.Now()
	frameStyle := tcell.StyleDefault.Foreground(termcanvas.Blend(config.SurfaceStrokeColor, config.SurfaceColor))
	textStyle := tcell.StyleDefault.Foreground(termcanvas.Blend(config.TextColor, config.SurfaceColor))

	// Раскладка пересчитывается после каждого кадра, клики ниже попадут уже в неё
	sc.AfterTick = func(ts time.Time) {
		w, h := screen.Size()
		rects := termLayout(l, w, h, ts.Sub(start).Seconds())
		screen.Clear()
		for i, s := range sc.Surfaces() {
			r := rects[i]
			sc.SetDisplay(s.ID, r)
			x, y, cw, ch := int(r.X), int(r.Y), int(r.W), int(r.H)
			termcanvas.Paint(screen, lists[s.ID], x, y, cw, ch, config.PlayfieldWidth, config.PlayfieldHeight, config.SurfaceColor)
			termcanvas.Frame(screen, x, y, cw, ch, frameStyle)

			t := score.Tally(s.ID)
			label := fmt.Sprintf(" %s  shots %d  in flight %d ", s.ID, t.Shots, t.InFlight())
			for j, ch := range label {
				screen.SetContent(x+j, y-labelRows-1, ch, nil, textStyle)
			}
		}
		screen.Show()
	}

	ticker := time.NewTicker(time.Second / config.TPS)
	defer ticker.Stop()
	if err := sc.Run(ctx, ticker.C, clicks); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("range stopped: %v", err)
	}
}

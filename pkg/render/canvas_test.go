package render

import (
	"go/parser"
	"go/token"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestDisplayList(t *testing.T) {
	d := NewDisplayList()
	d.FillCircle(1, 2, 3, color.White)
	d.FillCircle(4, 5, 6, color.Black)

	var xs []float64
	d.Replay(func(c Circle) { xs = append(xs, c.X) })
	if len(xs) != 2 || xs[0] != 1 || xs[1] != 4 {
		t.Fatalf("replay order %v", xs)
	}

	d.Clear()
	if len(d.Circles) != 0 || d.Clears != 1 {
		t.Fatalf("after clear: %d circles, %d clears", len(d.Circles), d.Clears)
	}
}

func TestColorHelpers(t *testing.T) {
	c := ToRGBA(color.NRGBA{90, 150, 77, 204})
	if c != (color.RGBA{90, 150, 77, 204}) {
		t.Fatalf("ToRGBA = %+v", c)
	}
	if d := DarkenColor(color.RGBA{200, 100, 50, 255}); d != (color.RGBA{100, 50, 25, 255}) {
		t.Fatalf("DarkenColor = %+v", d)
	}
}

// Packages the terminal frontend links must build without cgo or a display.
func TestHeadlessPackagesAvoidGraphicsDrivers(t *testing.T) {
	dirs := []string{
		".",
		"termcanvas",
		"../../internal/component",
		"../../internal/config",
		"../../internal/entity",
		"../../internal/event",
		"../../internal/layout",
		"../../internal/scene",
		"../../internal/system",
		"../../internal/utils",
		"../../cmd/range_term",
	}
	banned := []string{"github.com/hajimehoshi/ebiten", "github.com/gen2brain/raylib-go"}

	for _, dir := range dirs {
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		if err != nil {
			t.Fatal(err)
		}
		if len(files) == 0 {
			t.Fatalf("%s: no Go files", dir)
		}
		for _, file := range files {
			if strings.HasSuffix(file, "_test.go") {
				continue
			}
			src, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}
			f, err := parser.ParseFile(token.NewFileSet(), file, src, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("%s: %v", file, err)
			}
			for _, imp := range f.Imports {
				path, _ := strconv.Unquote(imp.Path.Value)
				for _, b := range banned {
					if strings.HasPrefix(path, b) {
						t.Errorf("%s imports %s", file, path)
					}
				}
			}
		}
	}
}

package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"chosenoffset.com/focustrail/internal/render"
)

var green = color.RGBA{0x40, 0xcb, 0x90, 0xff}

func pixel(img render.Image, x, y int) color.RGBA {
	return img.(*Image).RGBA().RGBAAt(x, y)
}

// near allows for the rasterizer's floating point coverage on solid pixels.
func near(got, want color.RGBA) bool {
	d := func(a, b uint8) bool {
		if a > b {
			return a-b <= 2
		}
		return b-a <= 2
	}
	return d(got.R, want.R) && d(got.G, want.G) && d(got.B, want.B) && d(got.A, want.A)
}

func TestFillCircle(t *testing.T) {
	r := NewRenderer()
	img := r.NewImage(64, 64)

	r.FillCircle(img, 32, 32, 8, green)

	if got := pixel(img, 32, 32); !near(got, green) {
		t.Errorf("Expected center pixel %v, got %v", green, got)
	}
	if got := pixel(img, 32, 45); got.A != 0 {
		t.Errorf("Expected pixel outside the circle to stay transparent, got %v", got)
	}
}

func TestStrokePathCoversCurve(t *testing.T) {
	r := NewRenderer()
	img := r.NewImage(100, 40)

	p := &render.Path{}
	p.MoveTo(10, 20)
	p.QuadTo(50, 20, 90, 20)
	r.StrokePath(img, p, &render.StrokeOptions{Width: 8, LineCap: render.LineCapRound}, green)

	for _, x := range []int{10, 30, 50, 70, 89} {
		if got := pixel(img, x, 20); !near(got, green) {
			t.Errorf("Expected stroked pixel at (%d, 20), got %v", x, got)
		}
	}
	if got := pixel(img, 50, 30); got.A != 0 {
		t.Errorf("Expected pixel beyond the stroke width to stay transparent, got %v", got)
	}
	// Round caps extend half the width past the end points.
	if got := pixel(img, 7, 20); got.A == 0 {
		t.Error("Expected round cap to cover pixel before the start point")
	}
}

func TestStrokePathButtCap(t *testing.T) {
	r := NewRenderer()
	img := r.NewImage(100, 40)

	p := &render.Path{}
	p.MoveTo(10, 20)
	p.QuadTo(50, 20, 90, 20)
	r.StrokePath(img, p, &render.StrokeOptions{Width: 8, LineCap: render.LineCapButt}, green)

	if got := pixel(img, 5, 20); got.A != 0 {
		t.Errorf("Expected butt cap to stop at the start point, got %v", got)
	}
}

func TestStrokePathOverlapDoesNotCancel(t *testing.T) {
	r := NewRenderer()
	img := r.NewImage(60, 60)

	// Doubling back over itself makes the segment quads overlap.
	p := &render.Path{}
	p.MoveTo(10, 30)
	p.QuadTo(30, 30, 50, 30)
	p.QuadTo(30, 30, 10, 30)
	r.StrokePath(img, p, &render.StrokeOptions{Width: 6, LineCap: render.LineCapRound}, green)

	if got := pixel(img, 30, 30); !near(got, green) {
		t.Errorf("Expected overlapping stroke to stay covered, got %v", got)
	}
}

func TestClearAndDrawImage(t *testing.T) {
	r := NewRenderer()
	dst := r.NewImage(10, 10)
	src := r.NewImage(10, 10)

	dst.Fill(color.RGBA{0, 0, 0, 255})
	src.Clear()
	r.FillRect(src, 2, 2, 4, 4, green)
	dst.DrawImage(src)

	if got := pixel(dst, 3, 3); !near(got, green) {
		t.Errorf("Expected composited pixel %v, got %v", green, got)
	}
	if got := pixel(dst, 8, 8); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Expected transparent source to leave black, got %v", got)
	}

	dst.Clear()
	if got := pixel(dst, 3, 3); got.A != 0 {
		t.Errorf("Expected cleared pixel to be transparent, got %v", got)
	}
}

func TestDrawTextMarksPixels(t *testing.T) {
	r := NewRenderer()
	img := r.NewImage(80, 20)

	r.DrawText(img, "Name", 2, 2, color.White, 1.0)

	found := false
	rgba := img.(*Image).RGBA()
	for y := 0; y < 20 && !found; y++ {
		for x := 0; x < 80; x++ {
			if rgba.RGBAAt(x, y).A != 0 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("Expected text to mark some pixels")
	}

	w, h := r.MeasureText("Name", 1.0)
	if w != 28 || h != 13 {
		t.Errorf("Expected 28x13 text, got %dx%d", w, h)
	}
}

type countingGame struct {
	updates, draws int
	layoutW        int
}

func (g *countingGame) Update() error    { g.updates++; return nil }
func (g *countingGame) Draw(render.Image) { g.draws++ }
func (g *countingGame) Layout(w, h int) (int, int) {
	g.layoutW = w
	return w, h
}

func TestDrawTextScaleMatchesMeasure(t *testing.T) {
	r := NewRenderer()
	img := r.NewImage(120, 40)

	r.DrawText(img, "Name", 0, 0, color.White, 2.0)

	maxX, maxY := -1, -1
	rgba := img.(*Image).RGBA()
	for y := 0; y < 40; y++ {
		for x := 0; x < 120; x++ {
			if rgba.RGBAAt(x, y).A != 0 {
				maxX = max(maxX, x)
				maxY = max(maxY, y)
			}
		}
	}

	w, h := r.MeasureText("Name", 2.0)
	if w != 56 || h != 26 {
		t.Errorf("Expected 56x26 text, got %dx%d", w, h)
	}
	if maxX < 28 || maxY < 13 {
		t.Errorf("Expected scaled text past the unscaled 28x13 box, got extent %d,%d", maxX, maxY)
	}
	if maxX >= w || maxY >= h {
		t.Errorf("Expected scaled text inside its measured %dx%d box, got extent %d,%d", w, h, maxX, maxY)
	}
}

func TestCircleSegmentsBounded(t *testing.T) {
	if n := circleSegments(1); n != minCircleSegments {
		t.Errorf("Expected %d segments for a tiny circle, got %d", minCircleSegments, n)
	}
	if n := circleSegments(50); n != 100 {
		t.Errorf("Expected 100 segments for radius 50, got %d", n)
	}
	if n := circleSegments(1e9); n != maxCircleSegments {
		t.Errorf("Expected %d segments for a huge circle, got %d", maxCircleSegments, n)
	}
}

func TestEngineRunsFrames(t *testing.T) {
	e := NewEngine(nil, nil, 5)
	e.SetWindowSize(32, 24)
	e.SetWindowTitle("test")

	var sizes []image.Point
	e.OnFrame = func(frame int, img *image.RGBA) error {
		sizes = append(sizes, img.Bounds().Size())
		return nil
	}

	g := &countingGame{}
	if err := e.RunGame(g); err != nil {
		t.Fatalf("RunGame failed: %v", err)
	}

	if g.updates != 5 || g.draws != 5 {
		t.Errorf("Expected 5 updates and draws, got %d and %d", g.updates, g.draws)
	}
	if len(sizes) != 5 || sizes[0] != (image.Point{X: 32, Y: 24}) {
		t.Errorf("Expected 5 frames of 32x24, got %v", sizes)
	}
	if e.Title() != "test" {
		t.Errorf("Expected title 'test', got '%s'", e.Title())
	}
}

func TestEngineStopsOnFrameError(t *testing.T) {
	e := NewEngine(nil, nil, 10)
	boom := errors.New("boom")
	e.OnFrame = func(frame int, img *image.RGBA) error {
		if frame == 2 {
			return boom
		}
		return nil
	}

	g := &countingGame{}
	err := e.RunGame(g)
	if !errors.Is(err, boom) {
		t.Fatalf("Expected wrapped frame error, got %v", err)
	}
	if g.draws != 3 {
		t.Errorf("Expected 3 draws before stopping, got %d", g.draws)
	}
}

func TestInputTick(t *testing.T) {
	in := NewInput()

	in.Press(render.KeyTab)
	if in.IsKeyJustPressed(render.KeyTab) {
		t.Error("Expected press to be invisible before Tick")
	}

	in.Tick()
	if !in.IsKeyJustPressed(render.KeyTab) {
		t.Error("Expected press to be visible after Tick")
	}

	in.Tick()
	if in.IsKeyJustPressed(render.KeyTab) {
		t.Error("Expected press to last a single tick")
	}

	in.Hold(render.KeyShift)
	in.Tick()
	if !in.IsKeyPressed(render.KeyShift) {
		t.Error("Expected held key to be pressed")
	}
	in.Release(render.KeyShift)
	if in.IsKeyPressed(render.KeyShift) {
		t.Error("Expected released key to be up")
	}

	in.Click(12, 34)
	in.Type("hi")
	in.Tick()
	x, y := in.GetCursorPosition()
	if !in.IsMouseButtonPressed(render.MouseButtonLeft) || x != 12 || y != 34 {
		t.Errorf("Expected click at (12, 34), got (%d, %d)", x, y)
	}
	if got := string(in.AppendInputChars(nil)); got != "hi" {
		t.Errorf("Expected typed 'hi', got '%s'", got)
	}
}

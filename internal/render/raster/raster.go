// Package raster is a headless render backend that draws into image.RGBA
// surfaces using golang.org/x/image. It needs no GPU or window, which makes
// it suitable for recording frames and for tests.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"chosenoffset.com/focustrail/internal/render"
)

// curveSegments is the number of line segments each quadratic curve is
// split into before stroking.
const curveSegments = 8

// Bounds on the number of edges used to approximate a circle.
const (
	minCircleSegments = 16
	maxCircleSegments = 512
)

// Renderer implements render.Renderer on top of x/image/vector.
type Renderer struct {
	z    vector.Rasterizer
	face font.Face
}

// NewRenderer creates a new raster renderer.
func NewRenderer() *Renderer {
	return &Renderer{face: basicfont.Face7x13}
}

// NewImage creates a new transparent image with the given dimensions.
func (r *Renderer) NewImage(width, height int) render.Image {
	return &Image{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// FillCircle draws a filled circle on the destination image.
func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	img := dst.(*Image)
	r.begin(img)
	r.addCircle(x, y, radius)
	r.flush(img, clr)
}

// FillRect draws a filled rectangle on the destination image.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	img := dst.(*Image)
	r.begin(img)
	r.addRect(x, y, width, height)
	r.flush(img, clr)
}

// StrokeRect draws a rectangle outline on the destination image. The stroke
// is centered on the rectangle's edges.
func (r *Renderer) StrokeRect(dst render.Image, x, y, width, height float32, strokeWidth float32, clr color.Color) {
	img := dst.(*Image)
	hw := strokeWidth / 2
	r.begin(img)
	r.addRect(x-hw, y-hw, width+strokeWidth, strokeWidth)
	r.addRect(x-hw, y+height-hw, width+strokeWidth, strokeWidth)
	r.addRect(x-hw, y+hw, strokeWidth, height-strokeWidth)
	r.addRect(x+width-hw, y+hw, strokeWidth, height-strokeWidth)
	r.flush(img, clr)
}

// StrokePath strokes the path on the destination image. Curves are
// flattened, joins are always round.
func (r *Renderer) StrokePath(dst render.Image, path *render.Path, opts *render.StrokeOptions, clr color.Color) {
	if path == nil || len(path.Commands) == 0 {
		return
	}
	width := float32(1)
	lineCap := render.LineCapButt
	if opts != nil {
		width = opts.Width
		lineCap = opts.LineCap
	}
	if width <= 0 {
		return
	}

	img := dst.(*Image)
	r.begin(img)
	for _, line := range path.Flatten(curveSegments) {
		r.addStroke(line, width/2, lineCap)
	}
	r.flush(img, clr)
}

// DrawText draws text with its top-left corner at (x, y) using a fixed
// 7x13 bitmap font. Scales other than 1 render the text at its natural
// size and then scale it with nearest-neighbor sampling.
func (r *Renderer) DrawText(dst render.Image, str string, x, y int, clr color.Color, scale float64) {
	img := dst.(*Image)
	if scale <= 0 || scale == 1 {
		r.drawString(img.img, str, x, y, clr)
		return
	}

	w, h := r.MeasureText(str, 1)
	if w == 0 || h == 0 {
		return
	}
	text := image.NewRGBA(image.Rect(0, 0, w, h))
	r.drawString(text, str, 0, 0, clr)

	sw, sh := r.MeasureText(str, scale)
	xdraw.NearestNeighbor.Scale(img.img, image.Rect(x, y, x+sw, y+sh), text, text.Bounds(), xdraw.Over, nil)
}

func (r *Renderer) drawString(dst draw.Image, str string, x, y int, clr color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(clr),
		Face: r.face,
		Dot:  fixed.P(x, y+r.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(str)
}

// MeasureText measures the width and height of text with the given scale.
func (r *Renderer) MeasureText(str string, scale float64) (width, height int) {
	if scale <= 0 {
		scale = 1
	}
	w := font.MeasureString(r.face, str).Ceil()
	h := r.face.Metrics().Height.Ceil()
	return int(math.Ceil(float64(w) * scale)), int(math.Ceil(float64(h) * scale))
}

func (r *Renderer) begin(img *Image) {
	w, h := img.Size()
	r.z.Reset(w, h)
}

func (r *Renderer) flush(img *Image, clr color.Color) {
	r.z.DrawOp = draw.Over
	r.z.Draw(img.img, img.img.Bounds(), image.NewUniform(clr), image.Point{})
}

// addPolygon adds a closed polygon to the rasterizer. The rasterizer sums
// signed coverage, so every polygon is wound the same way to keep
// overlapping shapes from cancelling out.
func (r *Renderer) addPolygon(pts [][2]float32) {
	if len(pts) < 3 {
		return
	}
	if signedArea(pts) > 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	r.z.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		r.z.LineTo(p[0], p[1])
	}
	r.z.ClosePath()
}

func (r *Renderer) addRect(x, y, width, height float32) {
	if width <= 0 || height <= 0 {
		return
	}
	r.addPolygon([][2]float32{
		{x, y},
		{x + width, y},
		{x + width, y + height},
		{x, y + height},
	})
}

func (r *Renderer) addCircle(cx, cy, radius float32) {
	if radius <= 0 {
		return
	}
	n := circleSegments(radius)
	pts := make([][2]float32, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float32{
			cx + radius*float32(math.Cos(a)),
			cy + radius*float32(math.Sin(a)),
		}
	}
	r.addPolygon(pts)
}

// circleSegments returns how many edges approximate a circle of the given
// radius: about one per two pixels of circumference, within fixed bounds.
func circleSegments(radius float32) int {
	n := int(radius * 2)
	return max(minCircleSegments, min(n, maxCircleSegments))
}

// addStroke adds a polyline of half-width hw: one quad per segment, a disc
// at every interior vertex, and the requested caps at both ends.
func (r *Renderer) addStroke(line [][2]float32, hw float32, lineCap render.LineCap) {
	line = dedupe(line)
	if len(line) == 1 {
		switch lineCap {
		case render.LineCapRound:
			r.addCircle(line[0][0], line[0][1], hw)
		case render.LineCapSquare:
			r.addRect(line[0][0]-hw, line[0][1]-hw, 2*hw, 2*hw)
		}
		return
	}

	last := len(line) - 1
	for i := 0; i < last; i++ {
		a, b := line[i], line[i+1]
		dx, dy := unit(a, b)
		if lineCap == render.LineCapSquare {
			if i == 0 {
				a = [2]float32{a[0] - dx*hw, a[1] - dy*hw}
			}
			if i == last-1 {
				b = [2]float32{b[0] + dx*hw, b[1] + dy*hw}
			}
		}
		nx, ny := -dy*hw, dx*hw
		r.addPolygon([][2]float32{
			{a[0] + nx, a[1] + ny},
			{b[0] + nx, b[1] + ny},
			{b[0] - nx, b[1] - ny},
			{a[0] - nx, a[1] - ny},
		})
		if i > 0 {
			r.addCircle(line[i][0], line[i][1], hw)
		}
	}

	if lineCap == render.LineCapRound {
		r.addCircle(line[0][0], line[0][1], hw)
		r.addCircle(line[last][0], line[last][1], hw)
	}
}

func dedupe(line [][2]float32) [][2]float32 {
	out := line[:1]
	for _, p := range line[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

func unit(a, b [2]float32) (float32, float32) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	l := float32(math.Hypot(float64(dx), float64(dy)))
	return dx / l, dy / l
}

func signedArea(pts [][2]float32) float32 {
	var sum float32
	j := len(pts) - 1
	for i := range pts {
		sum += pts[j][0]*pts[i][1] - pts[i][0]*pts[j][1]
		j = i
	}
	return sum / 2
}

// Image implements render.Image on an *image.RGBA.
type Image struct {
	img *image.RGBA
}

// Bounds returns the bounds of the image.
func (i *Image) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the width and height of the image.
func (i *Image) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// Fill replaces every pixel with the given color.
func (i *Image) Fill(clr color.Color) {
	draw.Draw(i.img, i.img.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}

// Clear clears the image to transparent.
func (i *Image) Clear() {
	i.Fill(color.Transparent)
}

// DrawImage composites the source image over this image at the origin.
func (i *Image) DrawImage(src render.Image) {
	srcImg := src.(*Image).img
	draw.Draw(i.img, i.img.Bounds(), srcImg, image.Point{}, draw.Over)
}

// Dispose is a no-op; the garbage collector owns the pixels.
func (i *Image) Dispose() {}

// RGBA returns the underlying pixels.
func (i *Image) RGBA() *image.RGBA {
	return i.img
}

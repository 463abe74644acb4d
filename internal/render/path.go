package render

// PathOp identifies a path command.
type PathOp int

const (
	PathMoveTo PathOp = iota
	PathQuadTo
)

// PathCommand is a single step of a Path. CX/CY hold the control point
// of a quadratic curve and are zero for MoveTo.
type PathCommand struct {
	Op     PathOp
	CX, CY float32
	X, Y   float32
}

// Path is a backend-neutral open path made of moves and quadratic curves.
type Path struct {
	Commands []PathCommand
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float32) {
	p.Commands = append(p.Commands, PathCommand{Op: PathMoveTo, X: x, Y: y})
}

// QuadTo adds a quadratic Bézier curve controlled by (cx, cy) and ending at (x, y).
func (p *Path) QuadTo(cx, cy, x, y float32) {
	p.Commands = append(p.Commands, PathCommand{Op: PathQuadTo, CX: cx, CY: cy, X: x, Y: y})
}

// Flatten approximates the path with polylines, splitting each curve into
// the given number of line segments. Each MoveTo starts a new polyline.
func (p *Path) Flatten(segments int) [][][2]float32 {
	if segments < 1 {
		segments = 1
	}

	var lines [][][2]float32
	var cur [][2]float32
	for _, c := range p.Commands {
		switch c.Op {
		case PathMoveTo:
			if len(cur) > 0 {
				lines = append(lines, cur)
			}
			cur = [][2]float32{{c.X, c.Y}}
		case PathQuadTo:
			if len(cur) == 0 {
				cur = [][2]float32{{c.CX, c.CY}}
			}
			start := cur[len(cur)-1]
			for i := 1; i <= segments; i++ {
				t := float32(i) / float32(segments)
				u := 1 - t
				x := u*u*start[0] + 2*u*t*c.CX + t*t*c.X
				y := u*u*start[1] + 2*u*t*c.CY + t*t*c.Y
				cur = append(cur, [2]float32{x, y})
			}
		}
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

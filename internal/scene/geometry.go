package scene

import (
	"math"

	"github.com/iburimskiy/spin-wheel/internal/config"
)

// Button is an axis-aligned clickable rectangle.
type Button struct {
	X, Y, W, H int
	Label      string
}

func DefaultButton() Button {
	return Button{
		X: config.ButtonX, Y: config.ButtonY,
		W: config.ButtonWidth, H: config.ButtonHeight,
		Label: config.ButtonLabel,
	}
}

// Contains reports whether (x, y) is inside the button, edges included.
func (b Button) Contains(x, y int) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

func (b Button) Center() Point {
	return Point{X: float32(b.X) + float32(b.W)/2, Y: float32(b.Y) + float32(b.H)/2}
}

// wedge returns a fan polygon: the center followed by steps+1 points along the arc.
func wedge(c Point, radius, start, sweep float64, steps int) []Point {
	pts := make([]Point, 0, steps+2)
	pts = append(pts, c)
	for j := 0; j <= steps; j++ {
		a := start + sweep*float64(j)/float64(steps)
		pts = append(pts, Point{
			X: c.X + float32(radius*math.Cos(a)),
			Y: c.Y + float32(radius*math.Sin(a)),
		})
	}
	return pts
}

// pointer is the triangle above the wheel, tip pointing at the rim.
func pointer(c Point, radius float32) []Point {
	return []Point{
		{X: c.X, Y: c.Y - radius - config.PointerTipOffset},
		{X: c.X - config.PointerHalfWidth, Y: c.Y - radius + config.PointerBaseOffset},
		{X: c.X + config.PointerHalfWidth, Y: c.Y - radius + config.PointerBaseOffset},
	}
}

func centroid(pts []Point) Point {
	var sx, sy float32
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float32(len(pts))
	return Point{X: sx / n, Y: sy / n}
}

// roundedRect traces a rectangle with quarter-circle corners, clockwise from
// the top-left corner.
func roundedRect(x, y, w, h, r float64, steps int) []Point {
	if r*2 > w {
		r = w / 2
	}
	if r*2 > h {
		r = h / 2
	}
	corners := []struct{ cx, cy, from float64 }{
		{x + r, y + r, math.Pi},
		{x + w - r, y + r, 1.5 * math.Pi},
		{x + w - r, y + h - r, 0},
		{x + r, y + h - r, 0.5 * math.Pi},
	}
	pts := make([]Point, 0, 4*(steps+1))
	for _, c := range corners {
		for j := 0; j <= steps; j++ {
			a := c.from + (math.Pi/2)*float64(j)/float64(steps)
			pts = append(pts, Point{
				X: float32(c.cx + r*math.Cos(a)),
				Y: float32(c.cy + r*math.Sin(a)),
			})
		}
	}
	return pts
}

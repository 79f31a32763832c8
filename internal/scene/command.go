package scene

import "image/color"

// Kind selects how the shell rasterizes a Command.
type Kind int

const (
	Clear Kind = iota
	FillCircle
	StrokeCircle
	FillPolygon
	StrokePolygon
	Text
	DebugText
)

func (k Kind) String() string {
	switch k {
	case Clear:
		return "clear"
	case FillCircle:
		return "fill-circle"
	case StrokeCircle:
		return "stroke-circle"
	case FillPolygon:
		return "fill-polygon"
	case StrokePolygon:
		return "stroke-polygon"
	case Text:
		return "text"
	case DebugText:
		return "debug-text"
	}
	return "unknown"
}

type Point struct {
	X, Y float32
}

// Command is one draw call. Only the fields relevant to Kind are set.
type Command struct {
	Kind   Kind
	Color  color.RGBA
	Center Point   // circles, Text (center of the text box), DebugText (top-left)
	Radius float32 // circles
	Width  float32 // strokes
	Points []Point // polygons
	Text   string
	Scale  float64 // Text glyph scale, 1 = native font size
	// Rotation is clockwise on screen, in radians, about Center.
	Rotation float64
}

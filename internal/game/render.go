package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/spin-wheel/internal/scene"
)

// renderer rasterizes scene commands. Vertex and index slices are reused
// across frames.
type renderer struct {
	face  text.Face
	white *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

func newRenderer() *renderer {
	return &renderer{
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// whiteSubImage is the 1x1 source for solid-color triangles. Created on first
// draw so building a Game never touches the graphics driver.
func (r *renderer) whiteSubImage() *ebiten.Image {
	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return r.white
}

func (r *renderer) draw(dst *ebiten.Image, c *scene.Command) {
	switch c.Kind {
	case scene.Clear:
		dst.Fill(c.Color)
	case scene.FillCircle:
		vector.DrawFilledCircle(dst, c.Center.X, c.Center.Y, c.Radius, c.Color, true)
	case scene.StrokeCircle:
		vector.StrokeCircle(dst, c.Center.X, c.Center.Y, c.Radius, c.Width, c.Color, true)
	case scene.FillPolygon:
		path := polygonPath(c.Points)
		if path == nil {
			return
		}
		r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
		r.drawTriangles(dst, c.Color)
	case scene.StrokePolygon:
		path := polygonPath(c.Points)
		if path == nil {
			return
		}
		r.vertices, r.indices = path.AppendVerticesAndIndicesForStroke(r.vertices[:0], r.indices[:0], &vector.StrokeOptions{
			Width:    c.Width,
			LineJoin: vector.LineJoinRound,
		})
		r.drawTriangles(dst, c.Color)
	case scene.Text:
		r.drawText(dst, c)
	case scene.DebugText:
		ebitenutil.DebugPrintAt(dst, c.Text, int(c.Center.X), int(c.Center.Y))
	}
}

func polygonPath(pts []scene.Point) *vector.Path {
	if len(pts) < 3 {
		return nil
	}
	var path vector.Path
	path.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		path.LineTo(p.X, p.Y)
	}
	path.Close()
	return &path
}

func (r *renderer) drawTriangles(dst *ebiten.Image, clr color.RGBA) {
	cr := float32(clr.R) / 0xff
	cg := float32(clr.G) / 0xff
	cb := float32(clr.B) / 0xff
	ca := float32(clr.A) / 0xff
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = cr
		r.vertices[i].ColorG = cg
		r.vertices[i].ColorB = cb
		r.vertices[i].ColorA = ca
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(r.vertices, r.indices, r.whiteSubImage(), op)
}

// drawText centers the string on c.Center, then scales and rotates it there.
func (r *renderer) drawText(dst *ebiten.Image, c *scene.Command) {
	w, h := text.Measure(c.Text, r.face, 0)
	scale := c.Scale
	if scale == 0 {
		scale = 1
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(c.Rotation)
	op.GeoM.Translate(float64(c.Center.X), float64(c.Center.Y))
	op.ColorScale.ScaleWithColor(c.Color)
	op.Filter = ebiten.FilterLinear
	text.Draw(dst, c.Text, r.face, op)
}

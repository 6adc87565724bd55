// Package render draws a session onto a half-block canvas.
package render

import (
	"math"

	"github.com/tomz197/survivors/internal/draw"
	"github.com/tomz197/survivors/internal/entity"
	"github.com/tomz197/survivors/internal/physics"
	"github.com/tomz197/survivors/internal/session"
)

// DefaultScale is world units per canvas pixel.
const DefaultScale = 5.0

// effectReach is the world radius an effect ring grows to at scale 1.
const effectReach = 30.0

// Camera maps world coordinates to canvas pixels, centered on a point.
type Camera struct {
	Center        physics.Vec2
	Scale         float64 // world units per pixel
	Width, Height int     // canvas size in pixels
}

// ToCanvas converts a world position to canvas pixels.
func (c Camera) ToCanvas(p physics.Vec2) draw.Point {
	return draw.Point{
		X: (p.X-c.Center.X)/c.Scale + float64(c.Width)/2,
		Y: (p.Y-c.Center.Y)/c.Scale + float64(c.Height)/2,
	}
}

// CellToWorld converts a 0-based terminal cell to the world position under
// its center.
func (c Camera) CellToWorld(col, row int) physics.Vec2 {
	px := float64(col) + 0.5
	py := float64(row)*2 + 1
	return physics.Vec2{
		X: (px-float64(c.Width)/2)*c.Scale + c.Center.X,
		Y: (py-float64(c.Height)/2)*c.Scale + c.Center.Y,
	}
}

// Visible reports whether a circle at p with world radius r touches the canvas.
func (c Camera) Visible(p physics.Vec2, r float64) bool {
	q := c.ToCanvas(p)
	m := r / c.Scale
	return q.X+m >= 0 && q.X-m < float64(c.Width) && q.Y+m >= 0 && q.Y-m < float64(c.Height)
}

// Renderer implements session.Renderer on a draw.Canvas.
type Renderer struct {
	canvas *draw.Canvas
	cam    Camera
	// Debug also outlines orb pickup radii.
	Debug bool
}

// New returns a renderer drawing on canvas.
func New(canvas *draw.Canvas) *Renderer {
	return &Renderer{canvas: canvas, cam: Camera{Scale: DefaultScale}}
}

// Camera returns the camera of the current frame.
func (r *Renderer) Camera() Camera { return r.cam }

// Frame clears the canvas and centers the camera on center.
func (r *Renderer) Frame(center physics.Vec2) {
	r.canvas.Clear()
	r.cam.Center = center
	r.cam.Width = r.canvas.Width()
	r.cam.Height = r.canvas.Height()
}

// Draw renders s centered on its player.
func (r *Renderer) Draw(s *session.Session) {
	r.Frame(s.Player().Pos)
	s.Render(r)
}

// DrawEntity draws one entity.
func (r *Renderer) DrawEntity(kind entity.Kind, pos physics.Vec2, vs session.VisualState) {
	if kind != entity.KindEffect && !r.cam.Visible(pos, math.Max(vs.Radius, r.cam.Scale)) {
		return
	}
	at := r.cam.ToCanvas(pos)
	px := vs.Radius / r.cam.Scale

	switch kind {
	case entity.KindOrb:
		r.canvas.SetFloat(at, draw.ColorCyan)
		if r.Debug {
			r.canvas.DrawCircle(at, px, draw.ColorGray)
		}
	case entity.KindEnemy:
		col := draw.ColorRed
		if vs.Health < 0.5 {
			col = draw.ColorMagenta
		}
		r.canvas.FillCircle(at, px, col)
	case entity.KindProjectile:
		r.canvas.SetFloat(at, draw.ColorYellow)
	case entity.KindSaw:
		r.drawSaw(at, px, float64(vs.Frame))
	case entity.KindEffect:
		r.drawEffect(at, vs)
	case entity.KindPlayer:
		r.drawPlayer(at, px, vs)
	}
}

func (r *Renderer) drawSaw(at draw.Point, px, angle float64) {
	r.canvas.DrawCircle(at, px, draw.ColorWhite)
	for k := 0; k < 2; k++ {
		h := physics.Heading(angle + float64(k)*90).Scale(px)
		r.canvas.DrawLine(
			draw.Point{X: at.X - h.X, Y: at.Y - h.Y},
			draw.Point{X: at.X + h.X, Y: at.Y + h.Y},
			draw.ColorGray,
		)
	}
}

func (r *Renderer) drawEffect(at draw.Point, vs session.VisualState) {
	frames := max(vs.Frames, 1)
	progress := float64(vs.Frame+1) / float64(frames)
	radius := progress * effectReach * vs.Scale / r.cam.Scale
	r.canvas.DrawCircle(at, radius, tintColor(vs.Tint))
}

func (r *Renderer) drawPlayer(at draw.Point, px float64, vs session.VisualState) {
	col := draw.ColorGreen
	if vs.Fury {
		col = draw.ColorYellow
	}
	r.canvas.FillCircle(at, px, col)

	// Facing marker, bobbing with the walk cycle.
	var d physics.Vec2
	switch vs.Facing {
	case entity.FacingUp:
		d = physics.Vec2{Y: -1}
	case entity.FacingDown:
		d = physics.Vec2{Y: 1}
	case entity.FacingLeft:
		d = physics.Vec2{X: -1}
	case entity.FacingRight:
		d = physics.Vec2{X: 1}
	default:
		return
	}
	reach := px + 1 + float64(vs.Frame%2)
	r.canvas.SetFloat(draw.Point{X: at.X + d.X*reach, Y: at.Y + d.Y*reach}, draw.ColorWhite)
}

func tintColor(t entity.Tint) draw.Color {
	switch t {
	case entity.TintYellow:
		return draw.ColorYellow
	case entity.TintBlue:
		return draw.ColorBlue
	case entity.TintGreen:
		return draw.ColorGreen
	default:
		return draw.ColorWhite
	}
}

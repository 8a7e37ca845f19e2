package termsink

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/actor"
)

// Glyph fills the cells covered by a W x H rectangle centered on the actor's
// origin with Rune. The top-left diffuse picks the foreground color; alpha
// darkens toward black and cells below MinAlpha are left alone.
type Glyph struct {
	Rune     rune
	W, H     float64
	MinAlpha float64
}

var _ actor.Drawer = (*Glyph)(nil)

// DrawPrimitives implements actor.Drawer. Sinks other than *Sink are ignored.
func (g *Glyph) DrawPrimitives(sink actor.TransformSink, st *actor.TweenState) {
	s, ok := sink.(*Sink)
	if !ok || s.Screen == nil {
		return
	}
	c := st.Diffuse[actor.TopLeft]
	if c.A < g.MinAlpha || c.A <= 0 {
		return
	}
	style := cellStyle(c, st)

	// Cropped local rectangle.
	l := -g.W/2 + clamp01(st.Crop.Left)*g.W
	r := g.W/2 - clamp01(st.Crop.Right)*g.W
	t := -g.H/2 + clamp01(st.Crop.Top)*g.H
	b := g.H/2 - clamp01(st.Crop.Bottom)*g.H
	if r <= l || b <= t {
		return
	}

	// Bounding box of the transformed corners, in cells.
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{l, t}, {r, t}, {l, b}, {r, b}} {
		x, y := s.Apply(p[0], p[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	x0, y0, x1, y1 := s.cellRange(minX, minY, maxX, maxY)
	sw, sh := s.Screen.Size()
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, sw-1), min(y1, sh-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.Screen.SetContent(x, y, g.Rune, nil, style)
		}
	}
}

// Label writes Text centered on the actor's transformed origin.
type Label struct {
	Text string
}

var _ actor.Drawer = (*Label)(nil)

// DrawPrimitives implements actor.Drawer. Sinks other than *Sink are ignored.
func (lb *Label) DrawPrimitives(sink actor.TransformSink, st *actor.TweenState) {
	s, ok := sink.(*Sink)
	if !ok || s.Screen == nil || st.Diffuse[actor.TopLeft].A <= 0 {
		return
	}
	style := cellStyle(st.Diffuse[actor.TopLeft], st)
	runes := []rune(lb.Text)
	cx, cy := s.cell(s.Apply(0, 0))
	x := cx - len(runes)/2
	sw, sh := s.Screen.Size()
	if cy < 0 || cy >= sh {
		return
	}
	for i, r := range runes {
		if x+i < 0 || x+i >= sw {
			continue
		}
		s.Screen.SetContent(x+i, cy, r, nil, style)
	}
}

// cellStyle converts a diffuse color to a foreground style. Alpha darkens
// toward black; a visible glow makes the cell bold.
func cellStyle(c actor.Color, st *actor.TweenState) tcell.Style {
	a := clamp01(c.A)
	fg := tcell.NewRGBColor(
		int32(clamp01(c.R)*a*255+0.5),
		int32(clamp01(c.G)*a*255+0.5),
		int32(clamp01(c.B)*a*255+0.5),
	)
	style := tcell.StyleDefault.Foreground(fg)
	if st.Glow.A > 0 {
		style = style.Bold(true)
	}
	return style
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

// Package ebitensink draws actors with Ebitengine.
//
// Sink keeps a stack of ebiten.GeoM matrices. Ebitengine is 2D, so Z
// components are dropped and rotations about X and Y are shown as
// foreshortening (a scale by the cosine of the angle).
package ebitensink

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/actor"
)

// Sink is an actor.TransformSink over ebiten.GeoM.
type Sink struct {
	Target *ebiten.Image

	cur   ebiten.GeoM
	stack []ebiten.GeoM
}

var _ actor.TransformSink = (*Sink)(nil)

// New creates a sink drawing into target with an identity transform.
func New(target *ebiten.Image) *Sink {
	return &Sink{Target: target, stack: make([]ebiten.GeoM, 0, 8)}
}

// Reset retargets the sink and clears the matrix stack. Call it at the start
// of every frame.
func (s *Sink) Reset(target *ebiten.Image) {
	s.Target = target
	s.cur.Reset()
	s.stack = s.stack[:0]
}

// GeoM returns the current matrix.
func (s *Sink) GeoM() ebiten.GeoM {
	return s.cur
}

// Depth returns the number of pushed matrices.
func (s *Sink) Depth() int {
	return len(s.stack)
}

// PushMatrix saves the current matrix.
func (s *Sink) PushMatrix() {
	s.stack = append(s.stack, s.cur)
}

// PopMatrix restores the last saved matrix. Panics on an empty stack.
func (s *Sink) PopMatrix() {
	if len(s.stack) == 0 {
		panic("ebitensink: PopMatrix without PushMatrix")
	}
	s.cur = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// local applies m in the current local space: points pass through m first,
// then the existing transform.
func (s *Sink) local(m ebiten.GeoM) {
	m.Concat(s.cur)
	s.cur = m
}

// Translate implements actor.TransformSink. z is ignored.
func (s *Sink) Translate(x, y, _ float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	s.local(m)
}

// Scale implements actor.TransformSink. z is ignored.
func (s *Sink) Scale(x, y, _ float64) {
	var m ebiten.GeoM
	m.Scale(x, y)
	s.local(m)
}

// RotateX foreshortens vertically.
func (s *Sink) RotateX(deg float64) {
	var m ebiten.GeoM
	m.Scale(1, math.Cos(mgl64.DegToRad(deg)))
	s.local(m)
}

// RotateY foreshortens horizontally.
func (s *Sink) RotateY(deg float64) {
	var m ebiten.GeoM
	m.Scale(math.Cos(mgl64.DegToRad(deg)), 1)
	s.local(m)
}

// RotateZ rotates in the screen plane.
func (s *Sink) RotateZ(deg float64) {
	var m ebiten.GeoM
	m.Rotate(mgl64.DegToRad(deg))
	s.local(m)
}

// MultiplyMatrix applies the 2D part of m: the upper-left 2x2 block and the
// X/Y translation.
func (s *Sink) MultiplyMatrix(m mgl64.Mat4) {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.At(0, 0))
	g.SetElement(0, 1, m.At(0, 1))
	g.SetElement(1, 0, m.At(1, 0))
	g.SetElement(1, 1, m.At(1, 1))
	g.SetElement(0, 2, m.At(0, 3))
	g.SetElement(1, 2, m.At(1, 3))
	s.local(g)
}

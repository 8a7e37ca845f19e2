// Package termsink draws actors into a terminal through tcell.
//
// World units map to cells through CellW and CellH. Transforms are kept as
// 2D homogeneous matrices; Z is dropped and X/Y rotations foreshorten, as
// with any flat backend.
package termsink

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/actor"
)

// Sink is an actor.TransformSink over a tcell.Screen.
type Sink struct {
	Screen tcell.Screen
	// CellW and CellH are the world units covered by one cell. Zero means 1.
	CellW, CellH float64

	cur   mgl64.Mat3
	stack []mgl64.Mat3
}

var _ actor.TransformSink = (*Sink)(nil)

// New creates a sink drawing to screen with an identity transform.
func New(screen tcell.Screen) *Sink {
	return &Sink{Screen: screen, cur: mgl64.Ident3(), stack: make([]mgl64.Mat3, 0, 8)}
}

// Reset clears the matrix stack. Call it at the start of every frame.
func (s *Sink) Reset() {
	s.cur = mgl64.Ident3()
	s.stack = s.stack[:0]
}

// Matrix returns the current transform.
func (s *Sink) Matrix() mgl64.Mat3 {
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
		panic("termsink: PopMatrix without PushMatrix")
	}
	s.cur = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// Translate implements actor.TransformSink. z is ignored.
func (s *Sink) Translate(x, y, _ float64) {
	s.cur = s.cur.Mul3(mgl64.Translate2D(x, y))
}

// Scale implements actor.TransformSink. z is ignored.
func (s *Sink) Scale(x, y, _ float64) {
	s.cur = s.cur.Mul3(mgl64.Scale2D(x, y))
}

// RotateX foreshortens vertically.
func (s *Sink) RotateX(deg float64) {
	s.cur = s.cur.Mul3(mgl64.Scale2D(1, math.Cos(mgl64.DegToRad(deg))))
}

// RotateY foreshortens horizontally.
func (s *Sink) RotateY(deg float64) {
	s.cur = s.cur.Mul3(mgl64.Scale2D(math.Cos(mgl64.DegToRad(deg)), 1))
}

// RotateZ rotates in the screen plane. Positive angles turn X toward Y,
// clockwise on a y-down terminal.
func (s *Sink) RotateZ(deg float64) {
	s.cur = s.cur.Mul3(mgl64.HomogRotate2D(mgl64.DegToRad(deg)))
}

// MultiplyMatrix applies the 2D part of m.
func (s *Sink) MultiplyMatrix(m mgl64.Mat4) {
	m3 := mgl64.Mat3{
		m.At(0, 0), m.At(1, 0), 0,
		m.At(0, 1), m.At(1, 1), 0,
		m.At(0, 3), m.At(1, 3), 1,
	}
	s.cur = s.cur.Mul3(m3)
}

// Apply maps a local point to world coordinates.
func (s *Sink) Apply(x, y float64) (float64, float64) {
	v := s.cur.Mul3x1(mgl64.Vec3{x, y, 1})
	return v[0], v[1]
}

func (s *Sink) cellSize() (float64, float64) {
	cw, ch := s.CellW, s.CellH
	if cw == 0 {
		cw = 1
	}
	if ch == 0 {
		ch = 1
	}
	return cw, ch
}

// cell maps a world point to the cell containing it.
func (s *Sink) cell(x, y float64) (int, int) {
	cw, ch := s.cellSize()
	return int(math.Floor(x / cw)), int(math.Floor(y / ch))
}

// cellRange returns the inclusive cell range overlapped by a world-space box.
// A box edge on a cell boundary does not reach into the next cell.
func (s *Sink) cellRange(minX, minY, maxX, maxY float64) (x0, y0, x1, y1 int) {
	cw, ch := s.cellSize()
	x0, y0 = int(math.Floor(minX/cw)), int(math.Floor(minY/ch))
	x1, y1 = int(math.Ceil(maxX/cw))-1, int(math.Ceil(maxY/ch))-1
	return x0, y0, x1, y1
}

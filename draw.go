package actor

import "github.com/go-gl/mathgl/mgl64"

// TransformSink is the matrix stack an actor draws into. Angles are in
// degrees. Every PushMatrix is matched by a PopMatrix before the actor's Draw
// returns, so siblings never observe each other's transforms.
type TransformSink interface {
	PushMatrix()
	PopMatrix()
	Translate(x, y, z float64)
	Scale(x, y, z float64)
	RotateX(deg float64)
	RotateY(deg float64)
	RotateZ(deg float64)
	MultiplyMatrix(m mgl64.Mat4)
}

// Drawer renders an actor's content after its transform has been pushed.
// state is the render state: the committed state with the effect overlay and
// base pose applied. It must not be retained.
type Drawer interface {
	DrawPrimitives(sink TransformSink, state *TweenState)
}

// DrawerFunc adapts a function to the Drawer interface.
type DrawerFunc func(sink TransformSink, state *TweenState)

// DrawPrimitives implements Drawer.
func (f DrawerFunc) DrawPrimitives(sink TransformSink, state *TweenState) {
	f(sink, state)
}

// RenderState returns the state handed to the renderer: a copy of the current
// state with the effect overlay applied, then the base zoom multiplied in and
// the base rotation added.
func (a *Actor) RenderState() TweenState {
	s := a.current
	a.applyEffect(&s)
	s.Scale = mgl64.Vec3{
		s.Scale[0] * a.BaseScale[0],
		s.Scale[1] * a.BaseScale[1],
		s.Scale[2] * a.BaseScale[2],
	}
	s.Rotation = s.Rotation.Add(a.BaseRotation)
	return s
}

// Draw pushes the actor's transform onto sink, lets the Drawer render, and
// pops the transform again. Hidden actors draw nothing.
//
// Transform order: translate, scale, Euler X, Y, Z (each skipped when zero),
// then the quaternion when it is not identity.
func (a *Actor) Draw(sink TransformSink) {
	if a.Hidden {
		return
	}
	s := a.RenderState()

	sink.PushMatrix()
	defer sink.PopMatrix()

	applyTransform(sink, &s)
	if a.Drawer != nil {
		a.Drawer.DrawPrimitives(sink, &s)
	}
}

func applyTransform(sink TransformSink, s *TweenState) {
	sink.Translate(s.Pos[0], s.Pos[1], s.Pos[2])
	sink.Scale(s.Scale[0], s.Scale[1], s.Scale[2])
	if s.Rotation[0] != 0 {
		sink.RotateX(s.Rotation[0])
	}
	if s.Rotation[1] != 0 {
		sink.RotateY(s.Rotation[1])
	}
	if s.Rotation[2] != 0 {
		sink.RotateZ(s.Rotation[2])
	}
	if s.Quat != mgl64.QuatIdent() {
		sink.MultiplyMatrix(s.Quat.Mat4())
	}
}

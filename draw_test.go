package actor

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// recordSink records every call as a string.
type recordSink struct {
	calls []string
	depth int
}

func (r *recordSink) PushMatrix() {
	r.depth++
	r.calls = append(r.calls, "push")
}

func (r *recordSink) PopMatrix() {
	r.depth--
	r.calls = append(r.calls, "pop")
}

func (r *recordSink) Translate(x, y, z float64) {
	r.calls = append(r.calls, fmt.Sprintf("translate %g %g %g", x, y, z))
}

func (r *recordSink) Scale(x, y, z float64) {
	r.calls = append(r.calls, fmt.Sprintf("scale %g %g %g", x, y, z))
}

func (r *recordSink) RotateX(deg float64) { r.calls = append(r.calls, fmt.Sprintf("rotx %g", deg)) }
func (r *recordSink) RotateY(deg float64) { r.calls = append(r.calls, fmt.Sprintf("roty %g", deg)) }
func (r *recordSink) RotateZ(deg float64) { r.calls = append(r.calls, fmt.Sprintf("rotz %g", deg)) }

func (r *recordSink) MultiplyMatrix(m mgl64.Mat4) { r.calls = append(r.calls, "matrix") }

func assertCalls(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("calls = %q, want %q", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDrawIdentity(t *testing.T) {
	var sink recordSink
	New("a").Draw(&sink)
	assertCalls(t, sink.calls, []string{
		"push",
		"translate 0 0 0",
		"scale 1 1 1",
		"pop",
	})
}

func TestDrawTransformOrder(t *testing.T) {
	var sink recordSink
	a := New("a")
	a.SetXY(10, 20)
	a.SetZoomX(2)
	a.SetRotationX(30)
	a.SetRotationZ(45)
	a.AddRotationH(90)
	a.Drawer = DrawerFunc(func(s TransformSink, st *TweenState) {
		s.(*recordSink).calls = append(s.(*recordSink).calls, "content")
	})

	a.Draw(&sink)
	assertCalls(t, sink.calls, []string{
		"push",
		"translate 10 20 0",
		"scale 2 1 1",
		"rotx 30",
		"rotz 45",
		"matrix",
		"content",
		"pop",
	})
}

func TestDrawHiddenDrawsNothing(t *testing.T) {
	var sink recordSink
	a := New("a")
	a.Hidden = true
	a.Drawer = DrawerFunc(func(TransformSink, *TweenState) { t.Error("hidden actor drew") })
	a.Draw(&sink)
	if len(sink.calls) != 0 {
		t.Errorf("calls = %q", sink.calls)
	}
}

func TestDrawPopsWhenDrawerPanics(t *testing.T) {
	var sink recordSink
	a := New("a")
	a.Drawer = DrawerFunc(func(TransformSink, *TweenState) { panic("boom") })
	func() {
		defer func() { _ = recover() }()
		a.Draw(&sink)
	}()
	if sink.depth != 0 {
		t.Errorf("depth = %d, want 0", sink.depth)
	}
}

func TestDrawAppliesBasePoseAndEffect(t *testing.T) {
	var sink recordSink
	var got TweenState
	a := New("a")
	a.SetZoom(2)
	a.SetBaseZoom(3)
	a.SetBaseRotationY(15)
	a.SetEffectSpin(mgl64.Vec3{0, 0, 90})
	a.Update(1)
	a.Drawer = DrawerFunc(func(_ TransformSink, st *TweenState) { got = *st })

	a.Draw(&sink)
	assertCalls(t, sink.calls, []string{
		"push",
		"translate 0 0 0",
		"scale 6 6 6",
		"roty 15",
		"rotz 90",
		"pop",
	})
	assertNear(t, "drawer zoom", got.Scale[0], 6)
	// Committed state is unchanged.
	assertNear(t, "current zoom", a.Zoom(), 2)
	assertNear(t, "current rotation", a.RotationZ(), 0)
}

func TestDrawSiblingsBalanced(t *testing.T) {
	var sink recordSink
	for i := range 3 {
		a := New(fmt.Sprint(i))
		a.SetX(float64(i))
		a.Draw(&sink)
		if sink.depth != 0 {
			t.Fatalf("depth after actor %d = %d", i, sink.depth)
		}
	}
}

package ebitensink

import (
	"image"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/actor"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestSinkTranslateThenScaleIsLocal(t *testing.T) {
	s := New(nil)
	s.Translate(100, 50, 0)
	s.Scale(2, 3, 1)

	g := s.GeoM()
	x, y := g.Apply(1, 1)
	assertNear(t, "x", x, 102)
	assertNear(t, "y", y, 53)
}

func TestSinkRotateZ(t *testing.T) {
	s := New(nil)
	s.RotateZ(90)
	g := s.GeoM()
	x, y := g.Apply(1, 0)
	assertNear(t, "x", x, 0)
	assertNear(t, "y", y, 1)
}

func TestSinkRotateXForeshortens(t *testing.T) {
	s := New(nil)
	s.RotateX(60)
	g := s.GeoM()
	x, y := g.Apply(10, 10)
	assertNear(t, "x", x, 10)
	assertNear(t, "y", y, 5)
}

func TestSinkPushPopRestores(t *testing.T) {
	s := New(nil)
	s.Translate(5, 5, 0)
	s.PushMatrix()
	s.Scale(10, 10, 1)
	s.RotateZ(45)
	s.PopMatrix()

	if s.Depth() != 0 {
		t.Fatalf("Depth = %d, want 0", s.Depth())
	}
	g := s.GeoM()
	x, y := g.Apply(0, 0)
	assertNear(t, "x", x, 5)
	assertNear(t, "y", y, 5)
}

func TestSinkPopEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New(nil).PopMatrix()
}

func TestSinkMultiplyMatrixQuat(t *testing.T) {
	s := New(nil)
	q := mgl64.QuatRotate(mgl64.DegToRad(90), mgl64.Vec3{0, 0, 1})
	s.MultiplyMatrix(q.Mat4())
	g := s.GeoM()
	x, y := g.Apply(1, 0)
	assertNear(t, "x", x, 0)
	assertNear(t, "y", y, 1)
}

func TestActorDrawBalancesStack(t *testing.T) {
	a := actor.New("a")
	a.SetXY(10, 20)
	a.SetRotationZ(30)
	var depth int
	a.Drawer = actor.DrawerFunc(func(sink actor.TransformSink, _ *actor.TweenState) {
		depth = sink.(*Sink).Depth()
	})

	s := New(nil)
	a.Draw(s)
	if depth != 1 {
		t.Errorf("depth during draw = %d, want 1", depth)
	}
	if s.Depth() != 0 {
		t.Errorf("depth after draw = %d, want 0", s.Depth())
	}
}

func TestSpriteQuadCenteredWithCornerColors(t *testing.T) {
	st := actor.NewTweenState()
	st.Diffuse[actor.TopRight] = actor.Color{R: 1, G: 0, B: 0, A: 0.5}

	var verts [4]ebiten.Vertex
	var geo ebiten.GeoM
	geo.Translate(100, 100)
	if !spriteQuad(&verts, image.Rect(0, 0, 20, 10), &st, &geo) {
		t.Fatal("spriteQuad reported nothing to draw")
	}

	assertNear(t, "TL.x", float64(verts[0].DstX), 90)
	assertNear(t, "TL.y", float64(verts[0].DstY), 95)
	assertNear(t, "BR.x", float64(verts[3].DstX), 110)
	assertNear(t, "BR.y", float64(verts[3].DstY), 105)

	// premultiplied
	assertNear(t, "TR.R", float64(verts[1].ColorR), 0.5)
	assertNear(t, "TR.G", float64(verts[1].ColorG), 0)
	assertNear(t, "TR.A", float64(verts[1].ColorA), 0.5)
	assertNear(t, "TL.A", float64(verts[0].ColorA), 1)
}

func TestSpriteQuadCrop(t *testing.T) {
	st := actor.NewTweenState()
	st.Crop.Left = 0.5

	var verts [4]ebiten.Vertex
	var geo ebiten.GeoM
	if !spriteQuad(&verts, image.Rect(0, 0, 20, 10), &st, &geo) {
		t.Fatal("spriteQuad reported nothing to draw")
	}
	assertNear(t, "TL.x", float64(verts[0].DstX), 0)
	assertNear(t, "TL.SrcX", float64(verts[0].SrcX), 10)
	assertNear(t, "TR.x", float64(verts[1].DstX), 10)

	st.Crop.Right = 0.5
	if spriteQuad(&verts, image.Rect(0, 0, 20, 10), &st, &geo) {
		t.Error("fully cropped quad should not draw")
	}
}

package actor

import "github.com/go-gl/mathgl/mgl64"

// TweenState is the full visual pose of one actor at one instant. It is a
// plain value: copying it snapshots the pose.
//
// Rotation is carried twice. Rotation holds the absolute Euler pose in
// degrees (applied X, then Y, then Z). Quat holds incremental adjustments
// accumulated through AddRotationH/P/R. Both contribute at draw time, Euler
// first, and either may be non-identity independently of the other.
type TweenState struct {
	Pos      mgl64.Vec3
	Rotation mgl64.Vec3
	Quat     mgl64.Quat
	Scale    mgl64.Vec3

	Crop      Rect4
	Fade      Rect4
	FadeColor Color

	Diffuse  [4]Color // indexed by Corner
	Glow     Color
	GlowMode GlowMode
}

// NewTweenState returns a TweenState initialized to identity.
func NewTweenState() TweenState {
	var s TweenState
	s.Init()
	return s
}

// Init resets every field to its identity value.
func (s *TweenState) Init() {
	s.Pos = mgl64.Vec3{}
	s.Rotation = mgl64.Vec3{}
	s.Quat = mgl64.QuatIdent()
	s.Scale = mgl64.Vec3{1, 1, 1}
	s.Crop = Rect4{}
	s.Fade = Rect4{}
	s.FadeColor = ColorTransparentWhite
	for i := range s.Diffuse {
		s.Diffuse[i] = ColorWhite
	}
	s.Glow = ColorTransparentWhite
	s.GlowMode = GlowWhiten
}

// Lerp blends every field of a toward b by p: component-wise linear for
// vectors, rectangles and colors, spherical for the quaternion. Discrete
// fields keep a's value.
//
// p is normally a distorted progress from Curve.Distort and may leave [0, 1]
// for curves that overshoot (spring, bounce); no clamping happens here.
func Lerp(a, b TweenState, p float64) TweenState {
	out := a
	out.Pos = lerpVec3(a.Pos, b.Pos, p)
	out.Rotation = lerpVec3(a.Rotation, b.Rotation, p)
	out.Scale = lerpVec3(a.Scale, b.Scale, p)
	if a.Quat != b.Quat {
		out.Quat = mgl64.QuatSlerp(a.Quat, b.Quat, p)
	}
	out.Crop = a.Crop.Lerp(b.Crop, p)
	out.Fade = a.Fade.Lerp(b.Fade, p)
	out.FadeColor = a.FadeColor.Lerp(b.FadeColor, p)
	for i := range out.Diffuse {
		out.Diffuse[i] = a.Diffuse[i].Lerp(b.Diffuse[i], p)
	}
	out.Glow = a.Glow.Lerp(b.Glow, p)
	return out
}

func lerpVec3(a, b mgl64.Vec3, p float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(p))
}

// SetDiffuse sets all four corners to c.
func (s *TweenState) SetDiffuse(c Color) {
	for i := range s.Diffuse {
		s.Diffuse[i] = c
	}
}

// SetDiffuseAlpha sets the alpha of all four corners, keeping their RGB.
func (s *TweenState) SetDiffuseAlpha(a float64) {
	for i := range s.Diffuse {
		s.Diffuse[i].A = a
	}
}

// SetDiffuseColor sets the RGB of all four corners, keeping their alpha.
func (s *TweenState) SetDiffuseColor(c Color) {
	for i := range s.Diffuse {
		s.Diffuse[i].R, s.Diffuse[i].G, s.Diffuse[i].B = c.R, c.G, c.B
	}
}

// SetZoom sets the scale on all three axes.
func (s *TweenState) SetZoom(z float64) {
	s.Scale = mgl64.Vec3{z, z, z}
}

// Zoom returns the X scale. Actors zoomed uniformly report their zoom here.
func (s *TweenState) Zoom() float64 {
	return s.Scale[0]
}

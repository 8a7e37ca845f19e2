package actor

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Setters act on the destination state: the newest queued target while
// tweening, the current state otherwise. Getters read the current state.

// --- Position ---

// SetX sets the destination X.
func (a *Actor) SetX(x float64) { a.destTweenState().Pos[0] = x }

// SetY sets the destination Y.
func (a *Actor) SetY(y float64) { a.destTweenState().Pos[1] = y }

// SetZ sets the destination Z.
func (a *Actor) SetZ(z float64) { a.destTweenState().Pos[2] = z }

// SetXY sets the destination X and Y.
func (a *Actor) SetXY(x, y float64) {
	d := a.destTweenState()
	d.Pos[0] = x
	d.Pos[1] = y
}

// AddX moves the destination along X.
func (a *Actor) AddX(dx float64) { a.destTweenState().Pos[0] += dx }

// AddY moves the destination along Y.
func (a *Actor) AddY(dy float64) { a.destTweenState().Pos[1] += dy }

// AddZ moves the destination along Z.
func (a *Actor) AddZ(dz float64) { a.destTweenState().Pos[2] += dz }

// X returns the current X.
func (a *Actor) X() float64 { return a.current.Pos[0] }

// Y returns the current Y.
func (a *Actor) Y() float64 { return a.current.Pos[1] }

// Z returns the current Z.
func (a *Actor) Z() float64 { return a.current.Pos[2] }

// --- Zoom ---

// SetZoom sets the destination scale on all axes.
func (a *Actor) SetZoom(z float64) { a.destTweenState().SetZoom(z) }

// SetZoomX sets the destination X scale.
func (a *Actor) SetZoomX(z float64) { a.destTweenState().Scale[0] = z }

// SetZoomY sets the destination Y scale.
func (a *Actor) SetZoomY(z float64) { a.destTweenState().Scale[1] = z }

// SetZoomZ sets the destination Z scale.
func (a *Actor) SetZoomZ(z float64) { a.destTweenState().Scale[2] = z }

// ZoomToWidth sets the X scale so the actor is w units wide. No-op when the
// unzoomed width is zero.
func (a *Actor) ZoomToWidth(w float64) {
	if a.Width == 0 {
		return
	}
	a.SetZoomX(w / a.Width)
}

// ZoomToHeight sets the Y scale so the actor is h units tall. No-op when the
// unzoomed height is zero.
func (a *Actor) ZoomToHeight(h float64) {
	if a.Height == 0 {
		return
	}
	a.SetZoomY(h / a.Height)
}

// Zoom returns the current X scale.
func (a *Actor) Zoom() float64 { return a.current.Scale[0] }

// ZoomX returns the current X scale.
func (a *Actor) ZoomX() float64 { return a.current.Scale[0] }

// ZoomY returns the current Y scale.
func (a *Actor) ZoomY() float64 { return a.current.Scale[1] }

// ZoomZ returns the current Z scale.
func (a *Actor) ZoomZ() float64 { return a.current.Scale[2] }

// --- Rotation ---

// SetRotationX sets the destination Euler X rotation in degrees.
func (a *Actor) SetRotationX(deg float64) { a.destTweenState().Rotation[0] = deg }

// SetRotationY sets the destination Euler Y rotation in degrees.
func (a *Actor) SetRotationY(deg float64) { a.destTweenState().Rotation[1] = deg }

// SetRotationZ sets the destination Euler Z rotation in degrees.
func (a *Actor) SetRotationZ(deg float64) { a.destTweenState().Rotation[2] = deg }

// AddRotationX adds to the destination Euler X rotation.
func (a *Actor) AddRotationX(deg float64) { a.destTweenState().Rotation[0] += deg }

// AddRotationY adds to the destination Euler Y rotation.
func (a *Actor) AddRotationY(deg float64) { a.destTweenState().Rotation[1] += deg }

// AddRotationZ adds to the destination Euler Z rotation.
func (a *Actor) AddRotationZ(deg float64) { a.destTweenState().Rotation[2] += deg }

// AddRotationH turns the destination quaternion by deg degrees of heading
// (about Y).
func (a *Actor) AddRotationH(deg float64) { a.addQuat(deg, mgl64.Vec3{0, 1, 0}) }

// AddRotationP turns the destination quaternion by deg degrees of pitch
// (about X).
func (a *Actor) AddRotationP(deg float64) { a.addQuat(deg, mgl64.Vec3{1, 0, 0}) }

// AddRotationR turns the destination quaternion by deg degrees of roll
// (about Z).
func (a *Actor) AddRotationR(deg float64) { a.addQuat(deg, mgl64.Vec3{0, 0, 1}) }

func (a *Actor) addQuat(deg float64, axis mgl64.Vec3) {
	d := a.destTweenState()
	d.Quat = d.Quat.Mul(mgl64.QuatRotate(mgl64.DegToRad(deg), axis)).Normalize()
}

// RotationX returns the current Euler X rotation in degrees.
func (a *Actor) RotationX() float64 { return a.current.Rotation[0] }

// RotationY returns the current Euler Y rotation in degrees.
func (a *Actor) RotationY() float64 { return a.current.Rotation[1] }

// RotationZ returns the current Euler Z rotation in degrees.
func (a *Actor) RotationZ() float64 { return a.current.Rotation[2] }

// --- Crop and fade ---

// SetCropLeft sets the fraction cropped from the left edge.
func (a *Actor) SetCropLeft(v float64) { a.destTweenState().Crop.Left = v }

// SetCropTop sets the fraction cropped from the top edge.
func (a *Actor) SetCropTop(v float64) { a.destTweenState().Crop.Top = v }

// SetCropRight sets the fraction cropped from the right edge.
func (a *Actor) SetCropRight(v float64) { a.destTweenState().Crop.Right = v }

// SetCropBottom sets the fraction cropped from the bottom edge.
func (a *Actor) SetCropBottom(v float64) { a.destTweenState().Crop.Bottom = v }

// SetFadeLeft sets the width of the feathered band on the left edge.
func (a *Actor) SetFadeLeft(v float64) { a.destTweenState().Fade.Left = v }

// SetFadeTop sets the width of the feathered band on the top edge.
func (a *Actor) SetFadeTop(v float64) { a.destTweenState().Fade.Top = v }

// SetFadeRight sets the width of the feathered band on the right edge.
func (a *Actor) SetFadeRight(v float64) { a.destTweenState().Fade.Right = v }

// SetFadeBottom sets the width of the feathered band on the bottom edge.
func (a *Actor) SetFadeBottom(v float64) { a.destTweenState().Fade.Bottom = v }

// SetFadeColor sets the color edges feather toward.
func (a *Actor) SetFadeColor(c Color) { a.destTweenState().FadeColor = c }

// --- Diffuse and glow ---

// SetDiffuse sets all four destination corner colors.
func (a *Actor) SetDiffuse(c Color) { a.destTweenState().SetDiffuse(c) }

// SetDiffuseCorner sets one destination corner color.
func (a *Actor) SetDiffuseCorner(corner Corner, c Color) { a.destTweenState().Diffuse[corner] = c }

// SetDiffuseUpperLeft sets the top-left corner color.
func (a *Actor) SetDiffuseUpperLeft(c Color) { a.SetDiffuseCorner(TopLeft, c) }

// SetDiffuseUpperRight sets the top-right corner color.
func (a *Actor) SetDiffuseUpperRight(c Color) { a.SetDiffuseCorner(TopRight, c) }

// SetDiffuseLowerLeft sets the bottom-left corner color.
func (a *Actor) SetDiffuseLowerLeft(c Color) { a.SetDiffuseCorner(BottomLeft, c) }

// SetDiffuseLowerRight sets the bottom-right corner color.
func (a *Actor) SetDiffuseLowerRight(c Color) { a.SetDiffuseCorner(BottomRight, c) }

// SetDiffuseTopEdge sets both top corners.
func (a *Actor) SetDiffuseTopEdge(c Color) {
	d := a.destTweenState()
	d.Diffuse[TopLeft] = c
	d.Diffuse[TopRight] = c
}

// SetDiffuseBottomEdge sets both bottom corners.
func (a *Actor) SetDiffuseBottomEdge(c Color) {
	d := a.destTweenState()
	d.Diffuse[BottomLeft] = c
	d.Diffuse[BottomRight] = c
}

// SetDiffuseLeftEdge sets both left corners.
func (a *Actor) SetDiffuseLeftEdge(c Color) {
	d := a.destTweenState()
	d.Diffuse[TopLeft] = c
	d.Diffuse[BottomLeft] = c
}

// SetDiffuseRightEdge sets both right corners.
func (a *Actor) SetDiffuseRightEdge(c Color) {
	d := a.destTweenState()
	d.Diffuse[TopRight] = c
	d.Diffuse[BottomRight] = c
}

// SetDiffuseAlpha sets the alpha of every destination corner, keeping RGB.
func (a *Actor) SetDiffuseAlpha(alpha float64) { a.destTweenState().SetDiffuseAlpha(alpha) }

// SetDiffuseColor sets the RGB of every destination corner, keeping alpha.
func (a *Actor) SetDiffuseColor(c Color) { a.destTweenState().SetDiffuseColor(c) }

// Diffuse returns the current top-left color.
func (a *Actor) Diffuse() Color { return a.current.Diffuse[TopLeft] }

// DiffuseAlpha returns the current top-left alpha.
func (a *Actor) DiffuseAlpha() float64 { return a.current.Diffuse[TopLeft].A }

// SetGlow sets the destination glow color.
func (a *Actor) SetGlow(c Color) { a.destTweenState().Glow = c }

// SetGlowMode sets the destination glow blend mode. The mode switches when
// the tween carrying it finishes.
func (a *Actor) SetGlowMode(m GlowMode) {
	if m >= numGlowModes {
		panic(fmt.Sprintf("actor: unknown glow mode %d", m))
	}
	a.destTweenState().GlowMode = m
}

// Glow returns the current glow color.
func (a *Actor) Glow() Color { return a.current.Glow }

// --- Base pose ---

// SetBaseZoom sets the intrinsic scale on all axes.
func (a *Actor) SetBaseZoom(z float64) { a.BaseScale = mgl64.Vec3{z, z, z} }

// SetBaseZoomX sets the intrinsic X scale.
func (a *Actor) SetBaseZoomX(z float64) { a.BaseScale[0] = z }

// SetBaseZoomY sets the intrinsic Y scale.
func (a *Actor) SetBaseZoomY(z float64) { a.BaseScale[1] = z }

// SetBaseZoomZ sets the intrinsic Z scale.
func (a *Actor) SetBaseZoomZ(z float64) { a.BaseScale[2] = z }

// SetBaseRotationX sets the intrinsic X rotation in degrees.
func (a *Actor) SetBaseRotationX(deg float64) { a.BaseRotation[0] = deg }

// SetBaseRotationY sets the intrinsic Y rotation in degrees.
func (a *Actor) SetBaseRotationY(deg float64) { a.BaseRotation[1] = deg }

// SetBaseRotationZ sets the intrinsic Z rotation in degrees.
func (a *Actor) SetBaseRotationZ(deg float64) { a.BaseRotation[2] = deg }

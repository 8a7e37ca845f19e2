package ebitensink

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/phanxgames/actor"
)

// Sprite draws an image centered on the actor's origin. Diffuse is applied
// per corner, crop trims the quad and its texture coordinates, and glow is
// drawn as a second pass. Fade bands are not drawn.
type Sprite struct {
	Image *ebiten.Image
	Blend ebiten.Blend

	verts [4]ebiten.Vertex
	inds  [6]uint32
}

var _ actor.Drawer = (*Sprite)(nil)

// NewSprite creates a sprite drawer for img.
func NewSprite(img *ebiten.Image) *Sprite {
	return &Sprite{Image: img, Blend: ebiten.BlendSourceOver}
}

// NewQuad creates a drawer for a solid w x h rectangle tinted by diffuse.
func NewQuad(w, h float64) *Sprite {
	return &Sprite{Image: quadImage(w, h), Blend: ebiten.BlendSourceOver}
}

// quadImage returns a white image of the given size, at least 1x1.
func quadImage(w, h float64) *ebiten.Image {
	img := ebiten.NewImage(max(1, int(w)), max(1, int(h)))
	img.Fill(color.White)
	return img
}

// DrawPrimitives implements actor.Drawer. Sinks other than *Sink are ignored.
func (sp *Sprite) DrawPrimitives(sink actor.TransformSink, st *actor.TweenState) {
	s, ok := sink.(*Sink)
	if !ok || sp.Image == nil || s.Target == nil {
		return
	}
	geo := s.GeoM()
	if !spriteQuad(&sp.verts, sp.Image.Bounds(), st, &geo) {
		return
	}
	sp.inds = [6]uint32{0, 1, 2, 1, 3, 2}

	var op ebiten.DrawTrianglesOptions
	op.Blend = sp.Blend
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	s.Target.DrawTriangles32(sp.verts[:], sp.inds[:], sp.Image, &op)

	if st.Glow.A > 0 {
		sp.drawGlow(s.Target, st, &geo)
	}
}

// drawGlow redraws the cropped image with its color replaced by the glow.
func (sp *Sprite) drawGlow(target *ebiten.Image, st *actor.TweenState, geo *ebiten.GeoM) {
	src, dx, dy := croppedRect(sp.Image.Bounds(), st.Crop)
	if src.Empty() {
		return
	}
	var cm colorm.ColorM
	cm.Scale(0, 0, 0, clamp01(st.Glow.A))
	cm.Translate(clamp01(st.Glow.R), clamp01(st.Glow.G), clamp01(st.Glow.B), 0)

	op := &colorm.DrawImageOptions{}
	op.GeoM.Translate(dx, dy)
	op.GeoM.Concat(*geo)
	op.Blend = ebiten.BlendSourceOver
	if st.GlowMode == actor.GlowBrighten {
		op.Blend = ebiten.BlendLighter
	}
	colorm.DrawImage(target, sp.Image.SubImage(src).(*ebiten.Image), cm, op)
}

// croppedRect trims b by the crop fractions and returns the remaining source
// rectangle and its top-left offset relative to the image center.
func croppedRect(b image.Rectangle, crop actor.Rect4) (image.Rectangle, float64, float64) {
	w, h := float64(b.Dx()), float64(b.Dy())
	l := int(clamp01(crop.Left) * w)
	t := int(clamp01(crop.Top) * h)
	r := int(clamp01(crop.Right) * w)
	bo := int(clamp01(crop.Bottom) * h)
	src := image.Rect(b.Min.X+l, b.Min.Y+t, b.Max.X-r, b.Max.Y-bo)
	if src.Dx() <= 0 || src.Dy() <= 0 {
		return image.Rectangle{}, 0, 0
	}
	return src, -w/2 + float64(l), -h/2 + float64(t)
}

// spriteQuad fills verts (TL, TR, BL, BR) for an image with bounds b drawn
// centered under geo. Reports false when crop leaves nothing to draw.
func spriteQuad(verts *[4]ebiten.Vertex, b image.Rectangle, st *actor.TweenState, geo *ebiten.GeoM) bool {
	src, ox, oy := croppedRect(b, st.Crop)
	if src.Empty() {
		return false
	}
	w, h := float64(src.Dx()), float64(src.Dy())
	lx := [4]float64{ox, ox + w, ox, ox + w}
	ly := [4]float64{oy, oy, oy + h, oy + h}
	sx := [4]float32{float32(src.Min.X), float32(src.Max.X), float32(src.Min.X), float32(src.Max.X)}
	sy := [4]float32{float32(src.Min.Y), float32(src.Min.Y), float32(src.Max.Y), float32(src.Max.Y)}
	corners := [4]actor.Corner{actor.TopLeft, actor.TopRight, actor.BottomLeft, actor.BottomRight}

	for i := range verts {
		c := st.Diffuse[corners[i]]
		a := float32(clamp01(c.A))
		dx, dy := geo.Apply(lx[i], ly[i])
		verts[i] = ebiten.Vertex{
			DstX:   float32(dx),
			DstY:   float32(dy),
			SrcX:   sx[i],
			SrcY:   sy[i],
			ColorR: float32(clamp01(c.R)) * a,
			ColorG: float32(clamp01(c.G)) * a,
			ColorB: float32(clamp01(c.B)) * a,
			ColorA: a,
		}
	}
	return true
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

package ebitensink

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/actor"
)

// fpsRefresh is how often the FPS text is redrawn.
const fpsRefresh = 500 * time.Millisecond

// fpsDrawer renders the current FPS and TPS into a small cached image.
type fpsDrawer struct {
	img  *ebiten.Image
	last time.Time
}

// NewFPSActor returns an actor that shows FPS and TPS in its top-left
// corner. It can be tweened like any other actor; Game adds one on top of
// the stage when RunConfig.ShowFPS is set.
func NewFPSActor() *actor.Actor {
	a := actor.New("fps")
	a.SetSize(100, 32)
	a.Drawer = &fpsDrawer{}
	return a
}

// DrawPrimitives implements actor.Drawer.
func (f *fpsDrawer) DrawPrimitives(sink actor.TransformSink, st *actor.TweenState) {
	s, ok := sink.(*Sink)
	if !ok || s.Target == nil {
		return
	}
	if f.img == nil {
		f.img = ebiten.NewImage(100, 32)
	}
	if now := time.Now(); now.Sub(f.last) >= fpsRefresh {
		f.last = now
		f.img.Clear()
		f.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = s.GeoM()
	op.ColorScale.ScaleAlpha(float32(st.Diffuse[actor.TopLeft].A))
	s.Target.DrawImage(f.img, op)
}

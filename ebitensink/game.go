package ebitensink

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/actor"
)

// RunConfig configures Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	ClearColor actor.Color
	ShowFPS    bool
	// ScreenshotDir is where Screenshot writes PNGs. Defaults to
	// DefaultScreenshotDir.
	ScreenshotDir string
	// Script, if set, is attached to the stage; its screenshot steps capture
	// the window.
	Script *actor.Script
	// OnUpdate, if set, runs every tick before the stage updates.
	OnUpdate func(dt float64) error
}

// Game adapts a Stage to ebiten.Game. The stage advances by 1/TPS each tick.
type Game struct {
	Stage  *actor.Stage
	Config RunConfig

	sink            *Sink
	fps             *actor.Actor
	screenshotQueue []string
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a Game for stage.
func NewGame(stage *actor.Stage, cfg RunConfig) *Game {
	g := &Game{Stage: stage, Config: cfg, sink: New(nil)}
	if cfg.ShowFPS {
		g.fps = NewFPSActor()
	}
	if cfg.Script != nil {
		cfg.Script.OnScreenshot = g.Screenshot
		stage.SetScript(cfg.Script)
	}
	return g
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if g.Config.OnUpdate != nil {
		if err := g.Config.OnUpdate(dt); err != nil {
			return err
		}
	}
	g.Stage.Update(dt)
	if g.fps != nil {
		g.fps.Update(dt)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	c := g.Config.ClearColor
	if c.A > 0 {
		screen.Fill(color.NRGBA{
			R: uint8(clamp01(c.R) * 255),
			G: uint8(clamp01(c.G) * 255),
			B: uint8(clamp01(c.B) * 255),
			A: uint8(clamp01(c.A) * 255),
		})
	}
	g.sink.Reset(screen)
	g.Stage.Draw(g.sink)
	g.flushScreenshots(screen)
	if g.fps != nil {
		g.fps.Draw(g.sink)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Config.Width > 0 && g.Config.Height > 0 {
		return g.Config.Width, g.Config.Height
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and drives stage until the window closes.
func Run(stage *actor.Stage, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	return ebiten.RunGame(NewGame(stage, cfg))
}

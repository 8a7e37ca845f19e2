package actor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Components may leave [0, 1] mid-tween when a curve overshoots; renderers clamp.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default diffuse (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparentWhite is the default glow and fade color.
var ColorTransparentWhite = Color{1, 1, 1, 0}

// Lerp returns c + (to-c)*t for every component. t is not clamped.
func (c Color) Lerp(to Color, t float64) Color {
	return Color{
		R: c.R + (to.R-c.R)*t,
		G: c.G + (to.G-c.G)*t,
		B: c.B + (to.B-c.B)*t,
		A: c.A + (to.A-c.A)*t,
	}
}

// Hex formats the color as #rrggbbaa, clamping each component to [0, 1].
func (c Color) Hex() string {
	cc := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
	return cc.Hex() + fmt.Sprintf("%02x", uint8(clamp01(c.A)*255+0.5))
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa". Colors without an alpha
// suffix are opaque.
func ParseColor(s string) (Color, error) {
	switch len(s) {
	case 4, 7:
		cc, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return Color{cc.R, cc.G, cc.B, 1}, nil
	case 9:
		cc, err := colorful.Hex(s[:7])
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return Color{cc.R, cc.G, cc.B, float64(a) / 255}, nil
	default:
		return Color{}, fmt.Errorf("parse color %q: expected #rgb, #rrggbb or #rrggbbaa", s)
	}
}

// Rect4 holds one value per edge. Used for crop (0 = uncropped, 1 = fully
// cropped from that edge) and fade (width of the feathered band per edge).
type Rect4 struct {
	Left, Top, Right, Bottom float64
}

// Lerp returns r + (to-r)*t for every edge.
func (r Rect4) Lerp(to Rect4, t float64) Rect4 {
	return Rect4{
		Left:   r.Left + (to.Left-r.Left)*t,
		Top:    r.Top + (to.Top-r.Top)*t,
		Right:  r.Right + (to.Right-r.Right)*t,
		Bottom: r.Bottom + (to.Bottom-r.Bottom)*t,
	}
}

// Corner indexes TweenState.Diffuse.
type Corner uint8

const (
	TopLeft     Corner = iota // upper-left vertex
	TopRight                  // upper-right vertex
	BottomLeft                // lower-left vertex
	BottomRight               // lower-right vertex
)

// GlowMode selects how the glow color is blended over the diffuse result.
type GlowMode uint8

const (
	GlowWhiten   GlowMode = iota // blend toward the glow color (default)
	GlowBrighten                 // add the glow color
	numGlowModes
)

// String implements fmt.Stringer.
func (m GlowMode) String() string {
	switch m {
	case GlowWhiten:
		return "whiten"
	case GlowBrighten:
		return "brighten"
	default:
		return "GlowMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseGlowMode looks up a glow mode by name, case-insensitively.
func ParseGlowMode(name string) (GlowMode, bool) {
	switch strings.ToLower(name) {
	case "whiten":
		return GlowWhiten, true
	case "brighten":
		return GlowBrighten, true
	}
	return 0, false
}

// EventType identifies a kind of tween notification.
type EventType uint8

const (
	EventTweenFinished EventType = iota // a queued tween reached its target
	EventTweensDrained                  // the last queued tween finished; the actor is idle
)

// TweenEvent carries a tween notification for an optional EventSink.
type TweenEvent struct {
	Type      EventType
	EntityID  uint32
	Name      string
	Remaining int // tweens still queued after this one
}

// EventSink receives tween notifications. Set one on a Stage (or directly on
// an Actor) to forward completions to an ECS or game logic.
type EventSink interface {
	EmitTweenEvent(event TweenEvent)
}

// finite reports whether v is neither infinite nor NaN.
func finite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package actor

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

type argKind uint8

const (
	argNumbers  argKind = iota // plain numbers
	argColor                   // #hex or 3-4 numbers, stored as R, G, B, A
	argGlowMode                // whiten | brighten
	argClock                   // timer | music | beat
	argBool                    // 0/1/true/false
	argText                    // a single name, stored in Command.Text
)

type opSpec struct {
	name             string
	kind             argKind
	minArgs, maxArgs int
	check            func(args []float64) error
}

func (s *opSpec) arity() string {
	switch {
	case s.minArgs == s.maxArgs:
		return fmt.Sprintf("expects %d args", s.minArgs)
	default:
		return fmt.Sprintf("expects %d-%d args", s.minArgs, s.maxArgs)
	}
}

type opHandler func(a *Actor, c *Command)

// Effect defaults used when a command omits its arguments.
var (
	defaultDiffuseEffectColor1 = Color{0.5, 0.5, 0.5, 1}
	defaultDiffuseEffectColor2 = Color{1, 1, 1, 1}
	defaultGlowEffectColor1    = Color{1, 1, 1, 0.2}
	defaultGlowEffectColor2    = Color{1, 1, 1, 0.8}
	defaultWagMagnitude        = mgl64.Vec3{0, 0, 20}
	defaultSpinMagnitude       = mgl64.Vec3{0, 0, 180}
	defaultVibrateMagnitude    = mgl64.Vec3{10, 10, 10}
	defaultBounceMagnitude     = mgl64.Vec3{0, 20, 0}
)

// maxPlayDepth bounds playcommand nesting so a set that plays itself stops.
const maxPlayDepth = 16

var (
	opTable    [numOps]opSpec
	opHandlers map[Op]opHandler
	opByName   map[string]Op
)

func nonNegative(args []float64) error {
	for _, v := range args {
		if v < 0 {
			return fmt.Errorf("negative value %v", v)
		}
	}
	return nil
}

func positivePeriod(args []float64) error {
	if len(args) > 0 && !(args[0] > 0) {
		return fmt.Errorf("period must be positive, got %v", args[0])
	}
	return nil
}

func num(n int) opSpec { return opSpec{kind: argNumbers, minArgs: n, maxArgs: n} }
func numRange(lo, hi int) opSpec { return opSpec{kind: argNumbers, minArgs: lo, maxArgs: hi} }
func colorSpec() opSpec { return opSpec{kind: argColor, minArgs: 4, maxArgs: 4} }

func withCheck(s opSpec, check func([]float64) error) opSpec {
	s.check = check
	return s
}

// The tables are filled in init because playcommand runs commands, which
// reads the tables.
func init() {
	opTable = [numOps]opSpec{
		OpLinear:         withCheck(num(1), nonNegative),
		OpAccelerate:     withCheck(num(1), nonNegative),
		OpDecelerate:     withCheck(num(1), nonNegative),
		OpBounceBegin:    withCheck(num(1), nonNegative),
		OpBounceEnd:      withCheck(num(1), nonNegative),
		OpSpring:         withCheck(num(1), nonNegative),
		OpSleep:          withCheck(num(1), nonNegative),
		OpStopTweening:   num(0),
		OpFinishTweening: num(0),
		OpHurryTweening:  withCheck(num(1), nonNegative),

		OpX: num(1), OpY: num(1), OpZ: num(1),
		OpAddX: num(1), OpAddY: num(1), OpAddZ: num(1),

		OpZoom: num(1), OpZoomX: num(1), OpZoomY: num(1), OpZoomZ: num(1),
		OpZoomToWidth: num(1), OpZoomToHeight: num(1),
		OpBaseZoom: num(1), OpBaseZoomX: num(1), OpBaseZoomY: num(1), OpBaseZoomZ: num(1),

		OpRotationX: num(1), OpRotationY: num(1), OpRotationZ: num(1),
		OpAddRotationX: num(1), OpAddRotationY: num(1), OpAddRotationZ: num(1),
		OpAddRotationH: num(1), OpAddRotationP: num(1), OpAddRotationR: num(1),
		OpBaseRotationX: num(1), OpBaseRotationY: num(1), OpBaseRotationZ: num(1),

		OpCropLeft: num(1), OpCropTop: num(1), OpCropRight: num(1), OpCropBottom: num(1),
		OpFadeLeft: num(1), OpFadeTop: num(1), OpFadeRight: num(1), OpFadeBottom: num(1),
		OpFadeColor: colorSpec(),

		OpDiffuse:           colorSpec(),
		OpDiffuseUpperLeft:  colorSpec(),
		OpDiffuseUpperRight: colorSpec(),
		OpDiffuseLowerLeft:  colorSpec(),
		OpDiffuseLowerRight: colorSpec(),
		OpDiffuseTopEdge:    colorSpec(),
		OpDiffuseBottomEdge: colorSpec(),
		OpDiffuseLeftEdge:   colorSpec(),
		OpDiffuseRightEdge:  colorSpec(),
		OpDiffuseAlpha:      num(1),
		OpDiffuseColor:      colorSpec(),
		OpGlow:              colorSpec(),
		OpGlowMode:          {kind: argGlowMode, minArgs: 1, maxArgs: 1},

		OpHidden:  {kind: argBool, minArgs: 0, maxArgs: 1},
		OpVisible: num(0),

		OpStopEffect:      num(0),
		OpDiffuseBlink:    withCheck(numRange(0, 1), positivePeriod),
		OpDiffuseShift:    withCheck(numRange(0, 1), positivePeriod),
		OpGlowBlink:       withCheck(numRange(0, 1), positivePeriod),
		OpGlowShift:       withCheck(numRange(0, 1), positivePeriod),
		OpRainbow:         withCheck(numRange(0, 1), positivePeriod),
		OpWag:             withCheck(numRange(0, 4), positivePeriod),
		OpSpin:            numRange(0, 3),
		OpVibrate:         numRange(0, 3),
		OpBounce:          withCheck(numRange(0, 4), positivePeriod),
		OpBob:             withCheck(numRange(0, 4), positivePeriod),
		OpPulse:           withCheck(numRange(0, 3), positivePeriod),
		OpEffectColor1:    colorSpec(),
		OpEffectColor2:    colorSpec(),
		OpEffectPeriod:    withCheck(num(1), positivePeriod),
		OpEffectDelay:     withCheck(num(1), nonNegative),
		OpEffectOffset:    num(1),
		OpEffectMagnitude: num(3),
		OpEffectClock:     {kind: argClock, minArgs: 1, maxArgs: 1},

		OpPlayCommand: {kind: argText},
	}

	names := [numOps]string{
		OpLinear: "linear", OpAccelerate: "accelerate", OpDecelerate: "decelerate",
		OpBounceBegin: "bouncebegin", OpBounceEnd: "bounceend", OpSpring: "spring",
		OpSleep: "sleep", OpStopTweening: "stoptweening", OpFinishTweening: "finishtweening",
		OpHurryTweening: "hurrytweening",

		OpX: "x", OpY: "y", OpZ: "z", OpAddX: "addx", OpAddY: "addy", OpAddZ: "addz",

		OpZoom: "zoom", OpZoomX: "zoomx", OpZoomY: "zoomy", OpZoomZ: "zoomz",
		OpZoomToWidth: "zoomtowidth", OpZoomToHeight: "zoomtoheight",
		OpBaseZoom: "basezoom", OpBaseZoomX: "basezoomx", OpBaseZoomY: "basezoomy", OpBaseZoomZ: "basezoomz",

		OpRotationX: "rotationx", OpRotationY: "rotationy", OpRotationZ: "rotationz",
		OpAddRotationX: "addrotationx", OpAddRotationY: "addrotationy", OpAddRotationZ: "addrotationz",
		OpAddRotationH: "addrotationh", OpAddRotationP: "addrotationp", OpAddRotationR: "addrotationr",
		OpBaseRotationX: "baserotationx", OpBaseRotationY: "baserotationy", OpBaseRotationZ: "baserotationz",

		OpCropLeft: "cropleft", OpCropTop: "croptop", OpCropRight: "cropright", OpCropBottom: "cropbottom",
		OpFadeLeft: "fadeleft", OpFadeTop: "fadetop", OpFadeRight: "faderight", OpFadeBottom: "fadebottom",
		OpFadeColor: "fadecolor",

		OpDiffuse: "diffuse", OpDiffuseUpperLeft: "diffuseupperleft", OpDiffuseUpperRight: "diffuseupperright",
		OpDiffuseLowerLeft: "diffuselowerleft", OpDiffuseLowerRight: "diffuselowerright",
		OpDiffuseTopEdge: "diffusetopedge", OpDiffuseBottomEdge: "diffusebottomedge",
		OpDiffuseLeftEdge: "diffuseleftedge", OpDiffuseRightEdge: "diffuserightedge",
		OpDiffuseAlpha: "diffusealpha", OpDiffuseColor: "diffusecolor",
		OpGlow: "glow", OpGlowMode: "glowmode",

		OpHidden: "hidden", OpVisible: "visible",

		OpStopEffect: "stopeffect", OpDiffuseBlink: "diffuseblink", OpDiffuseShift: "diffuseshift",
		OpGlowBlink: "glowblink", OpGlowShift: "glowshift", OpRainbow: "rainbow", OpWag: "wag",
		OpSpin: "spin", OpVibrate: "vibrate", OpBounce: "bounce", OpBob: "bob", OpPulse: "pulse",
		OpEffectColor1: "effectcolor1", OpEffectColor2: "effectcolor2", OpEffectPeriod: "effectperiod",
		OpEffectDelay: "effectdelay", OpEffectOffset: "effectoffset", OpEffectMagnitude: "effectmagnitude",
		OpEffectClock: "effectclock",

		OpPlayCommand: "playcommand",
	}
	opByName = make(map[string]Op, numOps)
	for op := range numOps {
		opTable[op].name = names[op]
		opByName[names[op]] = op
	}

	opHandlers = map[Op]opHandler{
		OpLinear:         tweenHandler(CurveLinear),
		OpAccelerate:     tweenHandler(CurveAccelerate),
		OpDecelerate:     tweenHandler(CurveDecelerate),
		OpBounceBegin:    tweenHandler(CurveBounceBegin),
		OpBounceEnd:      tweenHandler(CurveBounceEnd),
		OpSpring:         tweenHandler(CurveSpring),
		OpSleep:          func(a *Actor, c *Command) { a.Sleep(c.Args[0]) },
		OpStopTweening:   func(a *Actor, _ *Command) { a.StopTweening() },
		OpFinishTweening: func(a *Actor, _ *Command) { a.FinishTweening() },
		OpHurryTweening:  func(a *Actor, c *Command) { a.HurryTweening(c.Args[0]) },

		OpX:    f1((*Actor).SetX),
		OpY:    f1((*Actor).SetY),
		OpZ:    f1((*Actor).SetZ),
		OpAddX: f1((*Actor).AddX),
		OpAddY: f1((*Actor).AddY),
		OpAddZ: f1((*Actor).AddZ),

		OpZoom:         f1((*Actor).SetZoom),
		OpZoomX:        f1((*Actor).SetZoomX),
		OpZoomY:        f1((*Actor).SetZoomY),
		OpZoomZ:        f1((*Actor).SetZoomZ),
		OpZoomToWidth:  f1((*Actor).ZoomToWidth),
		OpZoomToHeight: f1((*Actor).ZoomToHeight),
		OpBaseZoom:     f1((*Actor).SetBaseZoom),
		OpBaseZoomX:    f1((*Actor).SetBaseZoomX),
		OpBaseZoomY:    f1((*Actor).SetBaseZoomY),
		OpBaseZoomZ:    f1((*Actor).SetBaseZoomZ),

		OpRotationX:     f1((*Actor).SetRotationX),
		OpRotationY:     f1((*Actor).SetRotationY),
		OpRotationZ:     f1((*Actor).SetRotationZ),
		OpAddRotationX:  f1((*Actor).AddRotationX),
		OpAddRotationY:  f1((*Actor).AddRotationY),
		OpAddRotationZ:  f1((*Actor).AddRotationZ),
		OpAddRotationH:  f1((*Actor).AddRotationH),
		OpAddRotationP:  f1((*Actor).AddRotationP),
		OpAddRotationR:  f1((*Actor).AddRotationR),
		OpBaseRotationX: f1((*Actor).SetBaseRotationX),
		OpBaseRotationY: f1((*Actor).SetBaseRotationY),
		OpBaseRotationZ: f1((*Actor).SetBaseRotationZ),

		OpCropLeft:   f1((*Actor).SetCropLeft),
		OpCropTop:    f1((*Actor).SetCropTop),
		OpCropRight:  f1((*Actor).SetCropRight),
		OpCropBottom: f1((*Actor).SetCropBottom),
		OpFadeLeft:   f1((*Actor).SetFadeLeft),
		OpFadeTop:    f1((*Actor).SetFadeTop),
		OpFadeRight:  f1((*Actor).SetFadeRight),
		OpFadeBottom: f1((*Actor).SetFadeBottom),
		OpFadeColor:  fc((*Actor).SetFadeColor),

		OpDiffuse:           fc((*Actor).SetDiffuse),
		OpDiffuseUpperLeft:  fc((*Actor).SetDiffuseUpperLeft),
		OpDiffuseUpperRight: fc((*Actor).SetDiffuseUpperRight),
		OpDiffuseLowerLeft:  fc((*Actor).SetDiffuseLowerLeft),
		OpDiffuseLowerRight: fc((*Actor).SetDiffuseLowerRight),
		OpDiffuseTopEdge:    fc((*Actor).SetDiffuseTopEdge),
		OpDiffuseBottomEdge: fc((*Actor).SetDiffuseBottomEdge),
		OpDiffuseLeftEdge:   fc((*Actor).SetDiffuseLeftEdge),
		OpDiffuseRightEdge:  fc((*Actor).SetDiffuseRightEdge),
		OpDiffuseAlpha:      f1((*Actor).SetDiffuseAlpha),
		OpDiffuseColor:      fc((*Actor).SetDiffuseColor),
		OpGlow:              fc((*Actor).SetGlow),
		OpGlowMode:          func(a *Actor, c *Command) { a.SetGlowMode(GlowMode(c.Args[0])) },

		OpHidden:  func(a *Actor, c *Command) { a.Hidden = len(c.Args) == 0 || c.Args[0] != 0 },
		OpVisible: func(a *Actor, _ *Command) { a.Hidden = false },

		OpStopEffect: func(a *Actor, _ *Command) { a.SetEffectNone() },
		OpDiffuseBlink: func(a *Actor, c *Command) {
			a.SetEffectDiffuseBlink(arg(c.Args, 0, 1), defaultDiffuseEffectColor1, defaultDiffuseEffectColor2)
		},
		OpDiffuseShift: func(a *Actor, c *Command) {
			a.SetEffectDiffuseShift(arg(c.Args, 0, 1), defaultDiffuseEffectColor1, defaultDiffuseEffectColor2)
		},
		OpGlowBlink: func(a *Actor, c *Command) {
			a.SetEffectGlowBlink(arg(c.Args, 0, 1), defaultGlowEffectColor1, defaultGlowEffectColor2)
		},
		OpGlowShift: func(a *Actor, c *Command) {
			a.SetEffectGlowShift(arg(c.Args, 0, 1), defaultGlowEffectColor1, defaultGlowEffectColor2)
		},
		OpRainbow: func(a *Actor, c *Command) { a.SetEffectRainbow(arg(c.Args, 0, 2)) },
		OpWag: func(a *Actor, c *Command) {
			a.SetEffectWag(arg(c.Args, 0, 2), vecArg(c.Args, 1, defaultWagMagnitude))
		},
		OpSpin:    func(a *Actor, c *Command) { a.SetEffectSpin(vecArg(c.Args, 0, defaultSpinMagnitude)) },
		OpVibrate: func(a *Actor, c *Command) { a.SetEffectVibrate(vecArg(c.Args, 0, defaultVibrateMagnitude)) },
		OpBounce: func(a *Actor, c *Command) {
			a.SetEffectBounce(arg(c.Args, 0, 2), vecArg(c.Args, 1, defaultBounceMagnitude))
		},
		OpBob: func(a *Actor, c *Command) {
			a.SetEffectBob(arg(c.Args, 0, 2), vecArg(c.Args, 1, defaultBounceMagnitude))
		},
		OpPulse: func(a *Actor, c *Command) {
			a.SetEffectPulse(arg(c.Args, 0, 2), arg(c.Args, 1, 0.5), arg(c.Args, 2, 1))
		},
		OpEffectColor1:    fc((*Actor).SetEffectColor1),
		OpEffectColor2:    fc((*Actor).SetEffectColor2),
		OpEffectPeriod:    f1((*Actor).SetEffectPeriod),
		OpEffectDelay:     f1((*Actor).SetEffectDelay),
		OpEffectOffset:    f1((*Actor).SetEffectOffset),
		OpEffectMagnitude: func(a *Actor, c *Command) { a.SetEffectMagnitude(vecArg(c.Args, 0, mgl64.Vec3{})) },
		OpEffectClock:     func(a *Actor, c *Command) { a.SetEffectClock(ClockSource(c.Args[0])) },

		OpPlayCommand: func(a *Actor, c *Command) { a.PlayCommand(c.Text) },
	}
}

func tweenHandler(curve Curve) opHandler {
	return func(a *Actor, c *Command) { a.BeginTweening(c.Args[0], curve) }
}

func f1(set func(*Actor, float64)) opHandler {
	return func(a *Actor, c *Command) { set(a, c.Args[0]) }
}

func fc(set func(*Actor, Color)) opHandler {
	return func(a *Actor, c *Command) { set(a, colorArg(c.Args)) }
}

func arg(args []float64, i int, def float64) float64 {
	if i < len(args) {
		return args[i]
	}
	return def
}

// vecArg reads up to three numbers starting at i. With none present it
// returns def; missing trailing components are zero.
func vecArg(args []float64, i int, def mgl64.Vec3) mgl64.Vec3 {
	if i >= len(args) {
		return def
	}
	var v mgl64.Vec3
	for j := 0; j < 3 && i+j < len(args); j++ {
		v[j] = args[i+j]
	}
	return v
}

func colorArg(args []float64) Color {
	return Color{R: args[0], G: args[1], B: args[2], A: args[3]}
}

// validate checks a command built in code rather than parsed.
func (c *Command) validate() error {
	if c.Op >= numOps {
		return fmt.Errorf("unknown op %d", c.Op)
	}
	spec := &opTable[c.Op]
	if spec.kind == argText {
		if c.Text == "" {
			return fmt.Errorf("%s: expects one name", spec.name)
		}
		return nil
	}
	if n := len(c.Args); n < spec.minArgs || n > spec.maxArgs {
		return fmt.Errorf("%s: %s, got %d", spec.name, spec.arity(), n)
	}
	for _, v := range c.Args {
		if !finite(v) {
			return fmt.Errorf("%s: non-finite value %v", spec.name, v)
		}
	}
	switch spec.kind {
	case argGlowMode:
		if !keywordIndex(c.Args[0], int(numGlowModes)) {
			return fmt.Errorf("%s: unknown glow mode %v", spec.name, c.Args[0])
		}
	case argClock:
		if !keywordIndex(c.Args[0], int(numClockSources)) {
			return fmt.Errorf("%s: unknown clock %v", spec.name, c.Args[0])
		}
	}
	if spec.check != nil {
		if err := spec.check(c.Args); err != nil {
			return fmt.Errorf("%s: %w", spec.name, err)
		}
	}
	return nil
}

func keywordIndex(v float64, n int) bool {
	return v >= 0 && v < float64(n) && v == math.Trunc(v)
}

// RunCommands applies cmds in order. A command whose arguments do not fit
// its op is logged and skipped.
func (a *Actor) RunCommands(cmds Commands) {
	for i := range cmds {
		c := &cmds[i]
		if err := c.validate(); err != nil {
			warnf("actor %q: %v", a.Name, err)
			continue
		}
		opHandlers[c.Op](a, c)
	}
}

// Run parses src and applies it. Statements that fail to parse are skipped
// and returned joined; the rest still run.
func (a *Actor) Run(src string) error {
	cmds, err := ParseCommands(src)
	a.RunCommands(cmds)
	return err
}

// AddCommand stores cmds under name, replacing any set with the same name.
// Names are case-insensitive.
func (a *Actor) AddCommand(name string, cmds Commands) {
	if a.commands == nil {
		a.commands = make(map[string]Commands)
	}
	a.commands[strings.ToLower(name)] = cmds
}

// HasCommand reports whether a command set is stored under name.
func (a *Actor) HasCommand(name string) bool {
	_, ok := a.commands[strings.ToLower(name)]
	return ok
}

// PlayCommand runs the command set stored under name. Unknown names are
// logged and ignored.
func (a *Actor) PlayCommand(name string) {
	cmds, ok := a.commands[strings.ToLower(name)]
	if !ok {
		warnf("actor %q has no command %q", a.Name, name)
		return
	}
	if a.playDepth >= maxPlayDepth {
		warnf("actor %q: playcommand %q nested deeper than %d", a.Name, name, maxPlayDepth)
		return
	}
	a.playDepth++
	defer func() { a.playDepth-- }()
	a.RunCommands(cmds)
}

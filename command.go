package actor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Op identifies one command. The set is closed; text is resolved to an Op
// when it is parsed, never when it runs.
type Op uint8

const (
	OpLinear Op = iota
	OpAccelerate
	OpDecelerate
	OpBounceBegin
	OpBounceEnd
	OpSpring
	OpSleep
	OpStopTweening
	OpFinishTweening
	OpHurryTweening

	OpX
	OpY
	OpZ
	OpAddX
	OpAddY
	OpAddZ

	OpZoom
	OpZoomX
	OpZoomY
	OpZoomZ
	OpZoomToWidth
	OpZoomToHeight
	OpBaseZoom
	OpBaseZoomX
	OpBaseZoomY
	OpBaseZoomZ

	OpRotationX
	OpRotationY
	OpRotationZ
	OpAddRotationX
	OpAddRotationY
	OpAddRotationZ
	OpAddRotationH
	OpAddRotationP
	OpAddRotationR
	OpBaseRotationX
	OpBaseRotationY
	OpBaseRotationZ

	OpCropLeft
	OpCropTop
	OpCropRight
	OpCropBottom
	OpFadeLeft
	OpFadeTop
	OpFadeRight
	OpFadeBottom
	OpFadeColor

	OpDiffuse
	OpDiffuseUpperLeft
	OpDiffuseUpperRight
	OpDiffuseLowerLeft
	OpDiffuseLowerRight
	OpDiffuseTopEdge
	OpDiffuseBottomEdge
	OpDiffuseLeftEdge
	OpDiffuseRightEdge
	OpDiffuseAlpha
	OpDiffuseColor
	OpGlow
	OpGlowMode

	OpHidden
	OpVisible

	OpStopEffect
	OpDiffuseBlink
	OpDiffuseShift
	OpGlowBlink
	OpGlowShift
	OpRainbow
	OpWag
	OpSpin
	OpVibrate
	OpBounce
	OpBob
	OpPulse
	OpEffectColor1
	OpEffectColor2
	OpEffectPeriod
	OpEffectDelay
	OpEffectOffset
	OpEffectMagnitude
	OpEffectClock

	OpPlayCommand
	numOps
)

// String returns the op's command name.
func (op Op) String() string {
	if op < numOps {
		return opTable[op].name
	}
	return fmt.Sprintf("Op(%d)", op)
}

// Command is one parsed command. Args are already converted: colors are four
// numbers (R, G, B, A), keywords are their enum values.
type Command struct {
	Op   Op
	Args []float64
	Text string // command set name for OpPlayCommand
}

// String formats the command back into its text form. Keyword args are
// written as their names.
func (c Command) String() string {
	var b strings.Builder
	b.WriteString(c.Op.String())
	if c.Text != "" {
		b.WriteByte(',')
		b.WriteString(c.Text)
	}
	for _, v := range c.Args {
		b.WriteByte(',')
		switch {
		case c.Op < numOps && opTable[c.Op].kind == argGlowMode:
			b.WriteString(GlowMode(v).String())
		case c.Op < numOps && opTable[c.Op].kind == argClock:
			b.WriteString(ClockSource(v).String())
		default:
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	return b.String()
}

// Commands is a parsed command list, run in order.
type Commands []Command

// String formats the list back into its text form.
func (cs Commands) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, ";")
}

// ParseCommands parses "name,arg,arg;name,arg". Names are case-insensitive
// and surrounding whitespace is ignored. A statement that cannot be parsed
// is logged as a warning and skipped; the rest still parse. The returned
// error joins every skipped statement's reason and is nil when all parsed.
func ParseCommands(src string) (Commands, error) {
	var (
		cmds Commands
		errs []error
	)
	for _, stmt := range strings.Split(src, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		cmd, err := parseCommand(stmt)
		if err != nil {
			warnf("%v", err)
			errs = append(errs, err)
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds, errors.Join(errs...)
}

// MustParseCommands is ParseCommands for literals known to be valid.
// Panics on any parse error.
func MustParseCommands(src string) Commands {
	cmds, err := ParseCommands(src)
	if err != nil {
		panic("actor: " + err.Error())
	}
	return cmds
}

// LookupOp finds an op by its command name.
func LookupOp(name string) (Op, bool) {
	op, ok := opByName[strings.ToLower(name)]
	return op, ok
}

func parseCommand(stmt string) (Command, error) {
	fields := strings.Split(stmt, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	op, ok := LookupOp(fields[0])
	if !ok {
		return Command{}, fmt.Errorf("unknown command %q", fields[0])
	}
	spec := &opTable[op]
	args := fields[1:]

	cmd := Command{Op: op}
	var err error
	switch spec.kind {
	case argNumbers:
		cmd.Args, err = parseNumbers(args)
	case argColor:
		cmd.Args, err = parseColorArgs(args)
	case argGlowMode:
		cmd.Args, err = parseKeyword(args, func(s string) (float64, bool) {
			m, ok := ParseGlowMode(s)
			return float64(m), ok
		})
	case argClock:
		cmd.Args, err = parseKeyword(args, func(s string) (float64, bool) {
			c, ok := ParseClockSource(strings.ToLower(s))
			return float64(c), ok
		})
	case argBool:
		cmd.Args, err = parseBools(args)
	case argText:
		if len(args) != 1 || args[0] == "" {
			err = errors.New("expects one name")
		} else {
			cmd.Text = args[0]
		}
	}
	if err != nil {
		return Command{}, fmt.Errorf("%s: %w", spec.name, err)
	}

	if err := cmd.validate(); err != nil {
		return Command{}, err
	}
	return cmd, nil
}

func parseNumbers(args []string) ([]float64, error) {
	if len(args) == 0 {
		return nil, nil
	}
	out := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || !finite(v) {
			return nil, fmt.Errorf("bad number %q", s)
		}
		out[i] = v
	}
	return out, nil
}

// parseColorArgs accepts "#hex" or three or four numbers. Alpha defaults to 1.
func parseColorArgs(args []string) ([]float64, error) {
	if len(args) == 1 && strings.HasPrefix(args[0], "#") {
		c, err := ParseColor(args[0])
		if err != nil {
			return nil, err
		}
		return []float64{c.R, c.G, c.B, c.A}, nil
	}
	if len(args) != 3 && len(args) != 4 {
		return nil, fmt.Errorf("expects #hex or 3-4 numbers, got %d args", len(args))
	}
	out, err := parseNumbers(args)
	if err != nil {
		return nil, err
	}
	if len(out) == 3 {
		out = append(out, 1)
	}
	return out, nil
}

func parseKeyword(args []string, lookup func(string) (float64, bool)) ([]float64, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expects one keyword, got %d args", len(args))
	}
	v, ok := lookup(args[0])
	if !ok {
		return nil, fmt.Errorf("unknown keyword %q", args[0])
	}
	return []float64{v}, nil
}

func parseBools(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("bad bool %q", s)
		}
		if b {
			out[i] = 1
		}
	}
	return out, nil
}

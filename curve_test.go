package actor

import (
	"math"
	"testing"

	"github.com/tanema/gween"
)

var allCurves = []Curve{CurveLinear, CurveAccelerate, CurveDecelerate, CurveBounceBegin, CurveBounceEnd, CurveSpring}

func TestDistortEndpoints(t *testing.T) {
	// Bounce curves miss the endpoints by sin(1.1)/0.89 - 1, about 0.0014.
	const tol = 0.002
	for _, c := range allCurves {
		t.Run(c.String(), func(t *testing.T) {
			if got := c.Distort(0); math.Abs(got) > tol {
				t.Errorf("Distort(0) = %v, want ~0", got)
			}
			if got := c.Distort(1); math.Abs(got-1) > tol {
				t.Errorf("Distort(1) = %v, want ~1", got)
			}
		})
	}
}

func TestDistortExactCurves(t *testing.T) {
	tests := []struct {
		c    Curve
		p    float64
		want float64
	}{
		{CurveLinear, 0.3, 0.3},
		{CurveAccelerate, 0.5, 0.25},
		{CurveDecelerate, 0.5, 0.75},
		{CurveSpring, 0, 0},
	}
	for _, tt := range tests {
		assertNear(t, tt.c.String(), tt.c.Distort(tt.p), tt.want)
	}
}

func TestDistortOvershoot(t *testing.T) {
	// Spring swings past the target before settling.
	maxV := 0.0
	for i := 0; i <= 100; i++ {
		maxV = math.Max(maxV, CurveSpring.Distort(float64(i)/100))
	}
	if maxV <= 1 {
		t.Errorf("spring never overshoots, max %v", maxV)
	}
	// Bounce begin dips below zero right after the start.
	if v := CurveBounceBegin.Distort(0.01); v >= 0 {
		t.Errorf("bouncebegin(0.01) = %v, want < 0", v)
	}
}

func TestDistortOutOfRangePanics(t *testing.T) {
	for _, p := range []float64{-0.01, 1.01, math.NaN()} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Distort(%v) did not panic", p)
				}
			}()
			CurveLinear.Distort(p)
		}()
	}
}

func TestDistortUnknownCurvePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Curve(99).Distort(0.5)
}

func TestParseCurve(t *testing.T) {
	for _, c := range allCurves {
		got, ok := ParseCurve(c.String())
		if !ok || got != c {
			t.Errorf("ParseCurve(%q) = %v, %v", c.String(), got, ok)
		}
	}
	if _, ok := ParseCurve("elastic"); ok {
		t.Error("ParseCurve(elastic) should fail")
	}
}

func TestCurveTweenFuncDrivesGween(t *testing.T) {
	tw := gween.New(0, 100, 1, CurveAccelerate.TweenFunc())
	v, done := tw.Update(0.5)
	if done {
		t.Fatal("done after half the duration")
	}
	if math.Abs(float64(v)-25) > 0.01 {
		t.Errorf("value = %v, want 25", v)
	}
	v, done = tw.Update(0.5)
	if !done || math.Abs(float64(v)-100) > 0.01 {
		t.Errorf("final = %v (done %v), want 100", v, done)
	}
}

package wind

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPreset(t *testing.T) {
	cases := map[string]mgl64.Vec3{
		"calm":    {},
		"Breeze":  {0.3, 0.1, 0.1},
		"UPDRAFT": {0, 0, 0.1},
	}
	for name, want := range cases {
		c, err := Preset(name)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if got := c.Wind(12.5); got != want {
			t.Errorf("%s: wind = %v, want %v", name, got, want)
		}
	}
	if _, err := Preset("hurricane"); err == nil {
		t.Fatalf("unknown preset accepted")
	}
	if names := PresetNames(); len(names) != 3 || names[0] != "breeze" {
		t.Fatalf("unexpected preset names %v", names)
	}
}

func TestGustDeterministic(t *testing.T) {
	a := NewGust(mgl64.Vec3{0.3, 0.1, 0.1}, 0.2, 0.5, 42)
	b := NewGust(mgl64.Vec3{0.3, 0.1, 0.1}, 0.2, 0.5, 42)

	varied := false
	first := a.Wind(0.37)
	for i := range 200 {
		tm := float64(i) * 0.137
		wa, wb := a.Wind(tm), b.Wind(tm)
		if wa != wb {
			t.Fatalf("t=%f: same seed produced %v and %v", tm, wa, wb)
		}
		for _, c := range wa {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				t.Fatalf("t=%f: non-finite wind %v", tm, wa)
			}
		}
		if wa.Sub(mgl64.Vec3{0.3, 0.1, 0.1}).Len() > 0.2*math.Sqrt(3)*2 {
			t.Fatalf("t=%f: wind %v strayed too far from base", tm, wa)
		}
		if wa != first {
			varied = true
		}
	}
	if !varied {
		t.Fatalf("gust never changed")
	}
}

func TestGustZeroAmplitude(t *testing.T) {
	g := NewGust(mgl64.Vec3{1, 2, 3}, 0, 1, 7)
	for _, tm := range []float64{0, 0.5, 10} {
		if got := g.Wind(tm); got != (mgl64.Vec3{1, 2, 3}) {
			t.Fatalf("t=%f: wind %v, want base", tm, got)
		}
	}
}

func TestGustScalesTimeByFrequency(t *testing.T) {
	base := mgl64.Vec3{0.3, 0.1, 0.1}
	slow := NewGust(base, 0.5, 1, 7)
	fast := NewGust(base, 0.5, 4, 7)
	for _, at := range []float64{0.1, 0.35, 1.2, 3.7} {
		if got, want := fast.Wind(at), slow.Wind(at*4); !got.ApproxEqualThreshold(want, 1e-12) {
			t.Fatalf("wind at %f = %v, want %v", at, got, want)
		}
	}

	w := fast.Wind(0.35)
	if w[0] == w[1] && w[1] == w[2] {
		t.Fatalf("every axis sampled the same noise: %v", w)
	}
	if Breeze.Wind(0) != Breeze.Wind(42) {
		t.Fatalf("constant wind changed over time")
	}
}

package omath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

func TestIsFinite(t *testing.T) {
	cases := []struct {
		v    mgl64.Vec3
		want bool
	}{
		{mgl64.Vec3{1, 2, 3}, true},
		{mgl64.Vec3{math.NaN(), 0, 0}, false},
		{mgl64.Vec3{0, math.Inf(1), 0}, false},
		{mgl64.Vec3{0, 0, math.Inf(-1)}, false},
	}
	for _, c := range cases {
		if got := IsFinite(c.v); got != c.want {
			t.Errorf("IsFinite(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestNormalizeOr(t *testing.T) {
	fallback := mgl64.Vec3{0, 0, 1}
	if got := NormalizeOr(mgl64.Vec3{}, fallback, 1e-9); got != fallback {
		t.Fatalf("zero vector should use fallback, got %v", got)
	}
	got := NormalizeOr(mgl64.Vec3{3, 0, 4}, fallback, 1e-9)
	if !Vec3ApproxEq(got, mgl64.Vec3{0.6, 0, 0.8}, 1e-12) {
		t.Fatalf("unexpected normalized vector %v", got)
	}

	got32 := Normalize32Or(mgl32.Vec3{0, 2, 0}, mgl32.Vec3{0, 0, 1}, 1e-6)
	if got32 != (mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("unexpected normalized 32 bit vector %v", got32)
	}
}

func TestVecConversion(t *testing.T) {
	v := mgl64.Vec3{1.5, -2.25, 8}
	if got := Vec32To64(Vec64To32(v)); got != v {
		t.Fatalf("round trip through float32 changed exactly representable vector: %v", got)
	}
}

func TestSampleWindow(t *testing.T) {
	w := NewSampleWindow(3)
	if w.Mean() != 0 {
		t.Fatalf("empty window mean should be 0")
	}
	for _, v := range []float64{1, 2, 3, 4, 5} {
		w.Push(v)
	}
	if w.Len() != 3 || w.Cap() != 3 {
		t.Fatalf("len/cap = %d/%d, want 3/3", w.Len(), w.Cap())
	}
	got := w.Samples()
	want := []float64{3, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("samples = %v, want %v", got, want)
		}
	}
	if w.Mean() != 4 {
		t.Fatalf("mean = %f, want 4", w.Mean())
	}
	if !ApproxEq(w.StandardDeviation(), math.Sqrt(2.0/3.0), 1e-12) {
		t.Fatalf("stddev = %f", w.StandardDeviation())
	}
}

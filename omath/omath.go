package omath

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Vec64To32 converts a 64 bit vector to a 32 bit one.
func Vec64To32(vec3 mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(vec3[0]), float32(vec3[1]), float32(vec3[2])}
}

// Vec32To64 converts a 32 bit vector to a 64 bit one.
func Vec32To64(vec3 mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(vec3[0]), float64(vec3[1]), float64(vec3[2])}
}

// IsFinite returns true if none of the components of the vector are NaN or infinite.
func IsFinite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// ApproxEq determines whether two numbers are within eps of each other.
func ApproxEq(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// Vec3ApproxEq determines whether every component of two vectors is within eps of the other.
func Vec3ApproxEq(a, b mgl64.Vec3, eps float64) bool {
	return ApproxEq(a[0], b[0], eps) && ApproxEq(a[1], b[1], eps) && ApproxEq(a[2], b[2], eps)
}

// NormalizeOr returns v scaled to unit length, or fallback if v is too short to have a direction.
func NormalizeOr(v, fallback mgl64.Vec3, eps float64) mgl64.Vec3 {
	l := v.Len()
	if l <= eps {
		return fallback
	}
	return v.Mul(1 / l)
}

// Normalize32Or is NormalizeOr for 32 bit vectors.
func Normalize32Or(v, fallback mgl32.Vec3, eps float32) mgl32.Vec3 {
	l := math32.Sqrt(v.Dot(v))
	if l <= eps {
		return fallback
	}
	return v.Mul(1 / l)
}

// Clamp clamps the given value to the given range.
func Clamp(num, min, max float64) float64 {
	if num < min {
		return min
	}
	return math.Min(num, max)
}

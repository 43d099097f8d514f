package wind

import (
	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	gustAlpha  = 2.0
	gustBeta   = 2.0
	gustOctave = 3
)

// axisOffsets separates the noise samples of the three axes so they do not move in lockstep.
var axisOffsets = [3]float64{0, 101.3, 233.7}

// Gust is a base wind perturbed on every axis by Perlin noise. A Gust built with the same seed
// always produces the same wind for the same time.
type Gust struct {
	Base      mgl64.Vec3
	Amplitude float64
	// Frequency is the number of noise periods sampled per second.
	Frequency float64

	noise *perlin.Perlin
}

// NewGust returns a gust around base. amplitude bounds how far the wind strays from base on each
// axis, roughly.
func NewGust(base mgl64.Vec3, amplitude, frequency float64, seed int64) *Gust {
	return &Gust{
		Base:      base,
		Amplitude: amplitude,
		Frequency: frequency,
		noise:     perlin.NewPerlin(gustAlpha, gustBeta, gustOctave, seed),
	}
}

// Wind samples the noise at t*Frequency on each axis, shifting the sample point by a fixed offset
// per axis, and adds the result scaled by Amplitude to Base.
func (g *Gust) Wind(t float64) mgl64.Vec3 {
	x := t * g.Frequency
	var d mgl64.Vec3
	for i, off := range axisOffsets {
		d[i] = g.noise.Noise1D(x + off)
	}
	return g.Base.Add(d.Mul(g.Amplitude))
}

// Package matrix contains random samplers used to generate attitude test data.
package matrix

import (
	"math/rand/v2"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/stat/distuv"
)

// NewSource returns a deterministic random source for the given seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// SampleUniform samples n values uniformly in [vMin, vMax).
func SampleUniform(n int, vMin, vMax float64, src rand.Source) []float64 {
	dist := distuv.Uniform{
		Min: vMin,
		Max: vMax,
		Src: src,
	}
	z := make([]float64, n)
	for i := range z {
		z[i] = dist.Rand()
	}
	return z
}

// SampleNormal samples n values from a normal distribution.
func SampleNormal(n int, mu, sigma float64, src rand.Source) []float64 {
	dist := distuv.Normal{
		Mu:    mu,
		Sigma: sigma,
		Src:   src,
	}
	z := make([]float64, n)
	for i := range z {
		z[i] = dist.Rand()
	}
	return z
}

// SampleUnitVectors samples n directions uniformly distributed on the unit sphere.
func SampleUnitVectors(n int, src rand.Source) []r3.Vector {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	vs := make([]r3.Vector, 0, n)
	for len(vs) < n {
		v := r3.Vector{X: dist.Rand(), Y: dist.Rand(), Z: dist.Rand()}
		if v.Norm() < 1e-6 {
			continue
		}
		vs = append(vs, v.Normalize())
	}
	return vs
}

// SampleHPR samples n heading/pitch/roll triads in degrees covering
// heading [0, 360), pitch [-90, 90) and roll [-180, 180).
func SampleHPR(n int, src rand.Source) (heading, pitch, roll []float64) {
	return SampleUniform(n, 0, 360, src), SampleUniform(n, -90, 90, src), SampleUniform(n, -180, 180, src)
}

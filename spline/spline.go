// Package spline fits smooth attitude trajectories through time-stamped rotations.
//
// Between consecutive knots the rotation is C_k * exp(r(τ)) where r is a cubic in the
// elapsed time τ. Knot angular rates are chosen so that angular velocity and angular
// acceleration are continuous across knots.
package spline

import (
	"math"
	"sort"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/attitude/spatialmath"
)

// RotationSpline is a fitted attitude trajectory. It is immutable once New returns and its
// query methods are safe for concurrent use.
type RotationSpline struct {
	times     []float64
	rotations []*spatialmath.RotationMatrix
	// per-segment coefficients of r(τ) = c3 τ³ + c2 τ² + c1 τ
	c1, c2, c3 []r3.Vector
}

// New fits a spline through rotations[i] at times[i]. Times must be finite and strictly
// increasing, and at least two knots are required.
func New(times []float64, rotations []*spatialmath.RotationMatrix, opts ...Option) (*RotationSpline, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt.apply(o)
	}
	if err := o.cfg.Validate("spline"); err != nil {
		return nil, err
	}
	if err := validateKnots(times, rotations); err != nil {
		return nil, err
	}

	n := len(times)
	h := make([]float64, n-1)
	deltas := make([]r3.Vector, n-1)
	for k := range h {
		h[k] = times[k+1] - times[k]
		deltas[k] = spatialmath.ToRotationVector(rotations[k].Transpose().Mul(rotations[k+1]))
	}

	start := o.clock.Now()
	rates, iterations, converged, err := solveRates(h, deltas, o.cfg)
	if err != nil {
		return nil, err
	}
	if !converged {
		o.logger.Warnw("knot rate iteration did not converge",
			"knots", n, "iterations", iterations, "tolerance", o.cfg.Tolerance)
	}
	o.logger.Debugw("fitted rotation spline",
		"knots", n, "iterations", iterations, "converged", converged, "elapsed", o.clock.Since(start))

	s := &RotationSpline{
		times:     append([]float64(nil), times...),
		rotations: append([]*spatialmath.RotationMatrix(nil), rotations...),
		c1:        make([]r3.Vector, n-1),
		c2:        make([]r3.Vector, n-1),
		c3:        make([]r3.Vector, n-1),
	}
	for k, dt := range h {
		// Hermite match of r(0) = 0, r'(0) = ω_k, r(h) = Δ_k, r'(h) = A(Δ_k) ω_{k+1}
		w0 := rates[k]
		w1 := spatialmath.RotationVectorRate(deltas[k], rates[k+1])
		d := deltas[k]
		s.c1[k] = w0
		s.c2[k] = d.Mul(3).Sub(w0.Mul(2 * dt)).Sub(w1.Mul(dt)).Mul(1 / (dt * dt))
		s.c3[k] = d.Mul(-2).Add(w0.Mul(dt)).Add(w1.Mul(dt)).Mul(1 / (dt * dt * dt))
	}
	return s, nil
}

func validateKnots(times []float64, rotations []*spatialmath.RotationMatrix) error {
	if len(times) != len(rotations) {
		return spatialmath.NewInvalidArgumentError("got %d times and %d rotations", len(times), len(rotations))
	}
	if len(times) < 2 {
		return spatialmath.NewInvalidArgumentError("need at least 2 knots, got %d", len(times))
	}
	for i, t := range times {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return spatialmath.NewInvalidArgumentError("time %d is %v", i, t)
		}
		if i > 0 && t <= times[i-1] {
			return spatialmath.NewInvalidArgumentError("times must be strictly increasing, got %v after %v", t, times[i-1])
		}
		if rotations[i] == nil {
			return spatialmath.NewInvalidArgumentError("rotation %d is nil", i)
		}
	}
	return nil
}

// solveRates returns the angular rate at every knot. End rates are fixed by the first and last
// segments; interior rates solve a block tridiagonal system whose right hand side depends on the
// rates themselves, so it is re-solved until the rates stop changing.
func solveRates(h []float64, deltas []r3.Vector, cfg Config) ([]r3.Vector, int, bool, error) {
	n := len(h) + 1
	rates := make([]r3.Vector, n)
	rates[0] = deltas[0].Mul(1 / h[0])
	rates[n-1] = deltas[n-2].Mul(1 / h[n-2])
	if n == 2 {
		return rates, 0, true, nil
	}
	for k := 1; k < n-1; k++ {
		rates[k] = deltas[k-1].Mul(1 / h[k-1])
	}

	m := n - 2
	solver, err := newBlockTridiagonal(h, deltas)
	if err != nil {
		return nil, 0, false, err
	}

	b := make([]r3.Vector, m)
	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		for i := 0; i < m; i++ {
			b[i] = deltas[i].Mul(6 / (h[i] * h[i])).
				Add(deltas[i+1].Mul(6 / (h[i+1] * h[i+1]))).
				Sub(nonlinearTerm(deltas[i], spatialmath.RotationVectorRate(deltas[i], rates[i+1])))
		}
		b[0] = b[0].Sub(spatialmath.AngularRate(deltas[0], rates[0]).Mul(2 / h[0]))
		b[m-1] = b[m-1].Sub(spatialmath.RotationVectorRate(deltas[m], rates[n-1]).Mul(2 / h[m]))

		x, err := solver.solve(b)
		if err != nil {
			return nil, iter, false, err
		}

		var change, size float64
		for i, xi := range x {
			change = math.Max(change, xi.Sub(rates[i+1]).Norm())
			size = math.Max(size, xi.Norm())
			rates[i+1] = xi
		}
		if change < cfg.Tolerance*(1+size) {
			return rates, iter, true, nil
		}
	}
	return rates, cfg.MaxIterations, false, nil
}

// nonlinearTerm is the part of the angular acceleration of exp(r) that depends only on the
// first derivative of r.
func nonlinearTerm(r, rdot r3.Vector) r3.Vector {
	return spatialmath.AngularAcceleration(r, rdot, r3.Vector{})
}

// blockTridiagonal holds the forward elimination of the constant left hand side
//
//	L_i x_{i-1} + D_i x_i + U_i x_{i+1} = b_i
//
// with 3x3 blocks, so each iteration only redoes the right hand side sweeps.
type blockTridiagonal struct {
	pivots []mat.LU     // factorized modified diagonal blocks
	upper  []*mat.Dense // U_i
	mults  []*mat.Dense // L_i * D'_{i-1}⁻¹, nil for i = 0
}

func newBlockTridiagonal(h []float64, deltas []r3.Vector) (*blockTridiagonal, error) {
	m := len(h) - 1
	bt := &blockTridiagonal{
		pivots: make([]mat.LU, m),
		upper:  make([]*mat.Dense, m),
		mults:  make([]*mat.Dense, m),
	}
	for i := 0; i < m; i++ {
		if i < m-1 {
			bt.upper[i] = spatialmath.RotationVectorRateMatrix(deltas[i+1])
			bt.upper[i].Scale(2/h[i+1], bt.upper[i])
		}

		d := 4 * (1/h[i] + 1/h[i+1])
		diag := mat.NewDense(3, 3, []float64{d, 0, 0, 0, d, 0, 0, 0, d})
		if i > 0 {
			lower := spatialmath.AngularRateMatrix(deltas[i])
			lower.Scale(2/h[i], lower)

			// W = L_i D'_{i-1}⁻¹, from D'_{i-1}ᵀ Wᵀ = L_iᵀ
			var wt mat.Dense
			if err := bt.pivots[i-1].SolveTo(&wt, true, lower.T()); err != nil {
				return nil, errors.Wrap(spatialmath.ErrNumericalSingularity, err.Error())
			}
			w := mat.DenseCopyOf(wt.T())
			bt.mults[i] = w

			var wu mat.Dense
			wu.Mul(w, bt.upper[i-1])
			diag.Sub(diag, &wu)
		}
		bt.pivots[i].Factorize(diag)
	}
	return bt, nil
}

func (bt *blockTridiagonal) solve(b []r3.Vector) ([]r3.Vector, error) {
	m := len(b)
	rhs := make([]*mat.VecDense, m)
	for i, bi := range b {
		rhs[i] = toVec(bi)
		if i > 0 {
			var wb mat.VecDense
			wb.MulVec(bt.mults[i], rhs[i-1])
			rhs[i].SubVec(rhs[i], &wb)
		}
	}

	x := make([]r3.Vector, m)
	for i := m - 1; i >= 0; i-- {
		if i < m-1 {
			var ux mat.VecDense
			ux.MulVec(bt.upper[i], toVec(x[i+1]))
			rhs[i].SubVec(rhs[i], &ux)
		}
		var xi mat.VecDense
		if err := bt.pivots[i].SolveVecTo(&xi, false, rhs[i]); err != nil {
			return nil, errors.Wrap(spatialmath.ErrNumericalSingularity, err.Error())
		}
		x[i] = r3.Vector{X: xi.AtVec(0), Y: xi.AtVec(1), Z: xi.AtVec(2)}
	}
	return x, nil
}

func toVec(v r3.Vector) *mat.VecDense {
	return mat.NewVecDense(3, []float64{v.X, v.Y, v.Z})
}

// Times returns a copy of the knot times.
func (s *RotationSpline) Times() []float64 {
	return append([]float64(nil), s.times...)
}

// segment returns the index of the segment that covers t and the time elapsed since its start.
// Times before the first knot or after the last one extrapolate the end segments.
func (s *RotationSpline) segment(t float64) (int, float64) {
	k := sort.Search(len(s.times), func(i int) bool { return s.times[i] > t }) - 1
	if k < 0 {
		k = 0
	}
	if k > len(s.times)-2 {
		k = len(s.times) - 2
	}
	return k, t - s.times[k]
}

// eval returns r, r' and r'' on segment k at elapsed time tau.
func (s *RotationSpline) eval(k int, tau float64) (r, rdot, rddot r3.Vector) {
	c1, c2, c3 := s.c1[k], s.c2[k], s.c3[k]
	r = c3.Mul(tau).Add(c2).Mul(tau).Add(c1).Mul(tau)
	rdot = c3.Mul(3 * tau).Add(c2.Mul(2)).Mul(tau).Add(c1)
	rddot = c3.Mul(6 * tau).Add(c2.Mul(2))
	return r, rdot, rddot
}

// Rotation returns the interpolated rotation at time t.
func (s *RotationSpline) Rotation(t float64) *spatialmath.RotationMatrix {
	k, tau := s.segment(t)
	r, _, _ := s.eval(k, tau)
	return s.rotations[k].Mul(spatialmath.FromRotationVector(r))
}

// Rotations returns the interpolated rotation at each of ts, in order.
func (s *RotationSpline) Rotations(ts []float64) []*spatialmath.RotationMatrix {
	out := make([]*spatialmath.RotationMatrix, len(ts))
	for i, t := range ts {
		out[i] = s.Rotation(t)
	}
	return out
}

// AngularRates returns the body-frame angular velocity at each of ts in radians per time unit.
func (s *RotationSpline) AngularRates(ts []float64) []r3.Vector {
	out := make([]r3.Vector, len(ts))
	for i, t := range ts {
		r, rdot, _ := s.eval(s.segment(t))
		out[i] = spatialmath.AngularRate(r, rdot)
	}
	return out
}

// AngularAccelerations returns the body-frame angular acceleration at each of ts in radians per
// time unit squared.
func (s *RotationSpline) AngularAccelerations(ts []float64) []r3.Vector {
	out := make([]r3.Vector, len(ts))
	for i, t := range ts {
		r, rdot, rddot := s.eval(s.segment(t))
		out[i] = spatialmath.AngularAcceleration(r, rdot, rddot)
	}
	return out
}

// Derivatives returns the angular rate (order 1) or angular acceleration (order 2) at each of ts.
// Use Rotations for order 0.
func (s *RotationSpline) Derivatives(ts []float64, order int) ([]r3.Vector, error) {
	switch order {
	case 1:
		return s.AngularRates(ts), nil
	case 2:
		return s.AngularAccelerations(ts), nil
	default:
		return nil, spatialmath.NewInvalidArgumentError("derivative order must be 1 or 2, got %d", order)
	}
}

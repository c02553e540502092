package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// collinearTolerance bounds the ratio of the second to the first singular value of the
// correlation matrix below which the observations are treated as collinear.
const collinearTolerance = 1e-10

// MatchVectors solves Wahba's problem: it returns the rotation C minimizing
// sum(w_i * |va_i - C * vb_i|²). A nil weights slice weights every pair equally.
func MatchVectors(va, vb []r3.Vector, weights []float64) (*RotationMatrix, error) {
	rm, _, err := MatchVectorsWithResidual(va, vb, weights)
	return rm, err
}

// MatchVectorsWithResidual is MatchVectors but also returns the weighted root mean square
// of |va_i - C * vb_i|.
func MatchVectorsWithResidual(va, vb []r3.Vector, weights []float64) (*RotationMatrix, float64, error) {
	if len(va) != len(vb) {
		return nil, 0, NewInvalidArgumentError("got %d vectors in frame a and %d in frame b", len(va), len(vb))
	}
	if len(va) == 0 {
		return nil, 0, NewInvalidArgumentError("no vectors to match")
	}
	if weights == nil {
		weights = make([]float64, len(va))
		for i := range weights {
			weights[i] = 1
		}
	}
	if len(weights) != len(va) {
		return nil, 0, NewInvalidArgumentError("got %d weights for %d vector pairs", len(weights), len(va))
	}

	var total float64
	b := mat.NewDense(3, 3, nil)
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, 0, NewInvalidArgumentError("weight %d is %v", i, w)
		}
		total += w
		a, c := va[i], vb[i]
		outer := mat.NewDense(3, 3, []float64{
			a.X * c.X, a.X * c.Y, a.X * c.Z,
			a.Y * c.X, a.Y * c.Y, a.Y * c.Z,
			a.Z * c.X, a.Z * c.Y, a.Z * c.Z,
		})
		outer.Scale(w, outer)
		b.Add(b, outer)
	}
	if total == 0 {
		return nil, 0, NewInvalidArgumentError("weights sum to zero")
	}

	var svd mat.SVD
	if ok := svd.Factorize(b, mat.SVDFull); !ok {
		return nil, 0, NewNumericalSingularityError("SVD of the correlation matrix failed")
	}
	s := svd.Values(nil)
	if s[1] <= collinearTolerance*s[0] {
		return nil, 0, NewInvalidArgumentError("vectors are collinear, rotation is under-determined")
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	d := mat.NewDiagDense(3, []float64{1, 1, mat.Det(&u) * mat.Det(&v)})
	var c mat.Dense
	c.Product(&u, d, v.T())

	rm := &RotationMatrix{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rm.mat[3*i+j] = c.At(i, j)
		}
	}

	var sse float64
	for i, w := range weights {
		sse += w * va[i].Sub(rm.MulVec(vb[i])).Norm2()
	}
	return rm, math.Sqrt(sse / total), nil
}

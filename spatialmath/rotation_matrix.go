package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// orthonormalTolerance is how far RᵀR may be from the identity for NewRotationMatrix to accept R.
const orthonormalTolerance = 1e-6

// RotationMatrix is a direction cosine matrix: a 3x3 proper orthogonal matrix, stored row-major,
// which maps coordinates expressed in frame b to coordinates expressed in frame a.
// It implements gonum's mat.Matrix.
type RotationMatrix struct {
	mat [9]float64
}

// NewRotationMatrix creates a rotation matrix from a row-major slice of 9 elements.
func NewRotationMatrix(m []float64) (*RotationMatrix, error) {
	if len(m) != 9 {
		return nil, NewInvalidArgumentError("input slice has %d elements, need exactly 9", len(m))
	}
	rm := &RotationMatrix{}
	copy(rm.mat[:], m)
	if !rm.IsOrthonormal(orthonormalTolerance) {
		return nil, NewInvalidArgumentError("matrix is not a proper rotation (det %.6g)", rm.Determinant())
	}
	return rm, nil
}

// NewIdentityRotationMatrix returns the identity rotation.
func NewIdentityRotationMatrix() *RotationMatrix {
	return &RotationMatrix{[9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}
}

// Dims returns the dimensions of the matrix, always 3x3.
func (rm *RotationMatrix) Dims() (r, c int) {
	return 3, 3
}

// At returns the element at row i, column j.
func (rm *RotationMatrix) At(i, j int) float64 {
	if uint(i) >= 3 || uint(j) >= 3 {
		panic(mat.ErrIndexOutOfRange)
	}
	return rm.mat[3*i+j]
}

// T returns the implicit transpose of the matrix.
func (rm *RotationMatrix) T() mat.Matrix {
	return mat.Transpose{Matrix: rm}
}

// Row returns the i-th row as a vector.
func (rm *RotationMatrix) Row(i int) r3.Vector {
	return r3.Vector{X: rm.At(i, 0), Y: rm.At(i, 1), Z: rm.At(i, 2)}
}

// Col returns the j-th column as a vector.
func (rm *RotationMatrix) Col(j int) r3.Vector {
	return r3.Vector{X: rm.At(0, j), Y: rm.At(1, j), Z: rm.At(2, j)}
}

// Data returns a row-major copy of the matrix elements.
func (rm *RotationMatrix) Data() []float64 {
	out := make([]float64, 9)
	copy(out, rm.mat[:])
	return out
}

// Transpose returns the inverse rotation.
func (rm *RotationMatrix) Transpose() *RotationMatrix {
	m := rm.mat
	return &RotationMatrix{[9]float64{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}}
}

// Mul returns the composition rm * other.
func (rm *RotationMatrix) Mul(other *RotationMatrix) *RotationMatrix {
	a, b := &rm.mat, &other.mat
	var out [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[3*i+j] = a[3*i]*b[j] + a[3*i+1]*b[3+j] + a[3*i+2]*b[6+j]
		}
	}
	return &RotationMatrix{out}
}

// MulVec rotates v, i.e. returns rm * v.
func (rm *RotationMatrix) MulVec(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: rm.Row(0).Dot(v),
		Y: rm.Row(1).Dot(v),
		Z: rm.Row(2).Dot(v),
	}
}

// Determinant returns the determinant of the matrix, +1 for a proper rotation.
func (rm *RotationMatrix) Determinant() float64 {
	return rm.Row(0).Dot(rm.Row(1).Cross(rm.Row(2)))
}

// IsOrthonormal reports whether RᵀR is the identity and det R is +1, within tol.
func (rm *RotationMatrix) IsOrthonormal(tol float64) bool {
	for _, v := range rm.mat {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	id := NewIdentityRotationMatrix()
	return rm.Transpose().Mul(rm).AlmostEqual(id, tol) && scalar.EqualWithinAbs(rm.Determinant(), 1, tol)
}

// AlmostEqual reports whether every element of rm is within tol of the matching element of other.
func (rm *RotationMatrix) AlmostEqual(other *RotationMatrix, tol float64) bool {
	return floats.EqualApprox(rm.mat[:], other.mat[:], tol)
}

// String implements fmt.Stringer.
func (rm *RotationMatrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(rm, mat.Squeeze()))
}

// Skew returns the cross-product matrix [v]x such that [v]x * w == v x w.
func Skew(v r3.Vector) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		0, -v.Z, v.Y,
		v.Z, 0, -v.X,
		-v.Y, v.X, 0,
	})
}

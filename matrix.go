package bary

import (
	"github.com/soypat/bary/vec3"
	"gonum.org/v1/gonum/mat"
)

// m33 is a row-major 3x3 matrix.
type m33[T vec3.Scalar] [9]T

// m44 is a row-major 4x4 matrix.
type m44[T vec3.Scalar] [16]T

// inverse returns the inverse of a. Inversion is performed in double
// precision regardless of T. A mat.Condition error is returned if a is
// singular or too ill-conditioned to be inverted reliably.
func (a m33[T]) inverse() (m33[T], error) {
	var inv m33[T]
	err := invertInto(inv[:], a[:], 3)
	return inv, err
}

// inverse returns the inverse of a. See m33.inverse.
func (a m44[T]) inverse() (m44[T], error) {
	var inv m44[T]
	err := invertInto(inv[:], a[:], 4)
	return inv, err
}

func invertInto[T vec3.Scalar](dst, src []T, n int) error {
	data := make([]float64, n*n)
	for i, v := range src {
		data[i] = float64(v)
	}
	var inv mat.Dense
	err := inv.Inverse(mat.NewDense(n, n, data))
	if err != nil {
		return err
	}
	for i := range dst {
		dst[i] = T(inv.At(i/n, i%n))
	}
	return nil
}

// mulVec4 returns the product a·v where v is a column vector.
func (a m44[T]) mulVec4(v [4]T) (r [4]T) {
	for i := 0; i < 4; i++ {
		r[i] = a[4*i]*v[0] + a[4*i+1]*v[1] + a[4*i+2]*v[2] + a[4*i+3]*v[3]
	}
	return r
}

// mulVec returns a·v for a vector v of 3 components.
func (a m33[T]) mulVec(v vec3.Vec[T]) vec3.Vec[T] {
	return vec3.Vec[T]{
		X: a[0]*v.X + a[1]*v.Y + a[2]*v.Z,
		Y: a[3]*v.X + a[4]*v.Y + a[5]*v.Z,
		Z: a[6]*v.X + a[7]*v.Y + a[8]*v.Z,
	}
}

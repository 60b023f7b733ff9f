package d3

import (
	"github.com/soypat/bary/vec3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform represents a 3D affine transformation.
// The zero value of Transform is the identity transform.
type Transform[T vec3.Scalar] struct {
	// in order to make the zero value of Transform represent the identity
	// transform we store it with the identity matrix subtracted.
	// These diagonal elements are subtracted such that
	//  d00 = x00-1, d11 = x11-1, d22 = x22-1
	// where x00, x11, x22 are the matrix diagonal elements.
	d00, x01, x02, x03 T
	x10, d11, x12, x13 T
	x20, x21, d22, x23 T
}

// Transform applies the Transform to the argument vector
// and returns the result.
func (t Transform[T]) Transform(v vec3.Vec[T]) vec3.Vec[T] {
	return vec3.Vec[T]{
		X: (t.d00+1)*v.X + t.x01*v.Y + t.x02*v.Z + t.x03,
		Y: t.x10*v.X + (t.d11+1)*v.Y + t.x12*v.Z + t.x13,
		Z: t.x20*v.X + t.x21*v.Y + (t.d22+1)*v.Z + t.x23,
	}
}

// ComposeTransform creates a new transform for a given translation to
// positon, uniform scale and quaternion rotation. The quaternion
// is expected to be of unit length.
// The identity Transform is constructed with
//
//	ComposeTransform(Vec{}, 1, r3.Rotation{Real: 1})
func ComposeTransform[T vec3.Scalar](position vec3.Vec[T], scale T, q r3.Rotation) Transform[T] {
	x2 := q.Imag + q.Imag
	y2 := q.Jmag + q.Jmag
	z2 := q.Kmag + q.Kmag
	xx := q.Imag * x2
	yy := q.Jmag * y2
	zz := q.Kmag * z2
	xy := q.Imag * y2
	xz := q.Imag * z2
	yz := q.Jmag * z2
	wx := q.Real * x2
	wy := q.Real * y2
	wz := q.Real * z2
	s := float64(scale)

	var t Transform[T]
	t.d00 = T((1-(yy+zz))*s - 1)
	t.x10 = T((xy + wz) * s)
	t.x20 = T((xz - wy) * s)

	t.x01 = T((xy - wz) * s)
	t.d11 = T((1-(xx+zz))*s - 1)
	t.x21 = T((yz + wx) * s)

	t.x02 = T((xz + wy) * s)
	t.x12 = T((yz - wx) * s)
	t.d22 = T((1-(xx+yy))*s - 1)

	t.x03 = position.X
	t.x13 = position.Y
	t.x23 = position.Z
	return t
}

// Translate adds v to the positional Transform.
func (t Transform[T]) Translate(v vec3.Vec[T]) Transform[T] {
	t.x03 += v.X
	t.x13 += v.Y
	t.x23 += v.Z
	return t
}

// Package vec3 implements a 3D vector generic over the floating point
// precision, along with the free functions needed to compute barycentric
// projections. The function set mirrors gonum's spatial/r3 package.
package vec3

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Scalar is the numeric field vectors and projectors are defined over.
type Scalar interface {
	~float32 | ~float64
}

// Vec is a 3D vector or point.
type Vec[T Scalar] struct {
	X, Y, Z T
}

// Elem returns a vector with all components set to v.
func Elem[T Scalar](v T) Vec[T] {
	return Vec[T]{X: v, Y: v, Z: v}
}

// Add returns the vector sum of p and q.
func Add[T Scalar](p, q Vec[T]) Vec[T] {
	return Vec[T]{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the vector sum of p and -q.
func Sub[T Scalar](p, q Vec[T]) Vec[T] {
	return Vec[T]{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Scale returns the vector p scaled by f.
func Scale[T Scalar](f T, p Vec[T]) Vec[T] {
	return Vec[T]{X: f * p.X, Y: f * p.Y, Z: f * p.Z}
}

// Dot returns the dot product p·q.
func Dot[T Scalar](p, q Vec[T]) T {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product p×q.
func Cross[T Scalar](p, q Vec[T]) Vec[T] {
	return Vec[T]{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Norm2 returns the Euclidean squared norm of p
//
//	|p|² = p_x² + p_y² + p_z².
func Norm2[T Scalar](p Vec[T]) T {
	return p.X*p.X + p.Y*p.Y + p.Z*p.Z
}

// Norm returns the Euclidean norm of p.
func Norm[T Scalar](p Vec[T]) T {
	return Sqrt(Norm2(p))
}

// Dist2 returns the squared Euclidean distance between p and q.
func Dist2[T Scalar](p, q Vec[T]) T {
	return Norm2(Sub(p, q))
}

// Sqrt returns the square root of x at the precision of T.
func Sqrt[T Scalar](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sqrt(v))
	case float64:
		return T(math.Sqrt(v))
	}
	return T(math.Sqrt(float64(x)))
}

// Abs returns the absolute value of x.
func Abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// IsFinite reports whether every component of p is neither NaN nor infinite.
func IsFinite[T Scalar](p Vec[T]) bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}

func isFinite[T Scalar](x T) bool {
	switch v := any(x).(type) {
	case float32:
		return !math32.IsNaN(v) && !math32.IsInf(v, 0)
	}
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// EqualWithin returns true if all components of a and b are within tol of each other.
func EqualWithin[T Scalar](a, b Vec[T], tol T) bool {
	return Abs(a.X-b.X) <= tol &&
		Abs(a.Y-b.Y) <= tol &&
		Abs(a.Z-b.Z) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem[T Scalar](a, b Vec[T]) Vec[T] {
	return Vec[T]{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem[T Scalar](a, b Vec[T]) Vec[T] {
	return Vec[T]{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)}
}

// FromR3 converts a gonum vector to a Vec.
func FromR3[T Scalar](v r3.Vec) Vec[T] {
	return Vec[T]{X: T(v.X), Y: T(v.Y), Z: T(v.Z)}
}

// R3 converts p to a gonum vector.
func (p Vec[T]) R3() r3.Vec {
	return r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}

// FromMS3 converts a glgl single precision vector to a Vec.
func FromMS3[T Scalar](v ms3.Vec) Vec[T] {
	return Vec[T]{X: T(v.X), Y: T(v.Y), Z: T(v.Z)}
}

// MS3 converts p to a glgl single precision vector.
func (p Vec[T]) MS3() ms3.Vec {
	return ms3.Vec{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}
}

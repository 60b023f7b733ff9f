package d3

import (
	"math/rand"

	"github.com/soypat/bary/vec3"
)

// Box is a 3d axis aligned bounding box.
type Box[T vec3.Scalar] struct {
	Min, Max vec3.Vec[T]
}

// NewBox creates a 3d box with a given center and size.
func NewBox[T vec3.Scalar](center, size vec3.Vec[T]) Box[T] {
	half := vec3.Scale(0.5, size)
	return Box[T]{Min: vec3.Sub(center, half), Max: vec3.Add(center, half)}
}

// BoundingBox returns the smallest box containing all points in set.
// It returns the zero Box if set is empty.
func BoundingBox[T vec3.Scalar](set ...vec3.Vec[T]) Box[T] {
	if len(set) == 0 {
		return Box[T]{}
	}
	b := Box[T]{Min: set[0], Max: set[0]}
	for _, v := range set[1:] {
		b = b.Include(v)
	}
	return b
}

// Equals test the equality of 3d boxes.
func (a Box[T]) Equals(b Box[T], tol T) bool {
	return vec3.EqualWithin(a.Min, b.Min, tol) && vec3.EqualWithin(a.Max, b.Max, tol)
}

// Include enlarges a 3d box to include a point.
func (a Box[T]) Include(v vec3.Vec[T]) Box[T] {
	return Box[T]{
		Min: vec3.MinElem(a.Min, v),
		Max: vec3.MaxElem(a.Max, v),
	}
}

// Size returns the size of a 3d box.
func (a Box[T]) Size() vec3.Vec[T] {
	return vec3.Sub(a.Max, a.Min)
}

// Center returns the center of a 3d box.
func (a Box[T]) Center() vec3.Vec[T] {
	return vec3.Add(a.Min, vec3.Scale(0.5, a.Size()))
}

// ScaleAboutCenter returns a new 3d box scaled about the center of a box.
func (a Box[T]) ScaleAboutCenter(k T) Box[T] {
	return NewBox(a.Center(), vec3.Scale(k, a.Size()))
}

// Contains checks if the 3d box contains the given vector (considering bounds as inside).
func (a Box[T]) Contains(v vec3.Vec[T]) bool {
	return a.Min.X <= v.X && a.Min.Y <= v.Y && a.Min.Z <= v.Z &&
		v.X <= a.Max.X && v.Y <= a.Max.Y && v.Z <= a.Max.Z
}

// Random returns a random point within a bounding box.
func (a Box[T]) Random(rng *rand.Rand) vec3.Vec[T] {
	return vec3.Vec[T]{
		X: randomRange(rng, a.Min.X, a.Max.X),
		Y: randomRange(rng, a.Min.Y, a.Max.Y),
		Z: randomRange(rng, a.Min.Z, a.Max.Z),
	}
}

// RandomSet returns a set of random points from within a bounding box.
func (a Box[T]) RandomSet(rng *rand.Rand, n int) []vec3.Vec[T] {
	s := make([]vec3.Vec[T], n)
	for i := range s {
		s[i] = a.Random(rng)
	}
	return s
}

// randomRange returns a random value in [a,b)
func randomRange[T vec3.Scalar](rng *rand.Rand, a, b T) T {
	return a + (b-a)*T(rng.Float64())
}

package bary

import "github.com/soypat/bary/vec3"

// Line projects points onto the line through two vertices a and b.
// Barycentric coordinates (1-t, t) correspond to the point a + t*(b-a).
type Line[T vec3.Scalar] struct {
	origin vec3.Vec[T]
	dir    vec3.Vec[T]
	norm2  T
}

// NewLine returns a projector for the line segment between a and b.
// A zero length segment is valid: all points project onto a.
func NewLine[T vec3.Scalar](a, b vec3.Vec[T]) (*Line[T], error) {
	l, err := makeLine(a, b)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func makeLine[T vec3.Scalar](a, b vec3.Vec[T]) (Line[T], error) {
	if !vec3.IsFinite(a) || !vec3.IsFinite(b) {
		return Line[T]{}, degenerateErrf("non-finite line vertex %v, %v", a, b)
	}
	dir := vec3.Sub(b, a)
	return Line[T]{
		origin: a,
		dir:    dir,
		norm2:  vec3.Norm2(dir),
	}, nil
}

// Project returns the barycentric coordinates of the orthogonal projection
// of p onto the line. The result is not restricted to the segment.
func (l *Line[T]) Project(p vec3.Vec[T]) Weights2[T] {
	if l.norm2 == 0 {
		// Segment is a point.
		return Weights2[T]{1, 0}
	}
	op := vec3.Sub(p, l.origin)
	if vec3.Norm2(op) == 0 {
		return Weights2[T]{1, 0}
	}
	t := vec3.Dot(op, l.dir) / l.norm2
	return Weights2[T]{1 - t, t}
}

// BaryToPoint returns the point on the line with barycentric coordinates w.
func (l *Line[T]) BaryToPoint(w Weights2[T]) vec3.Vec[T] {
	return vec3.Add(l.origin, vec3.Scale(w[1], l.dir))
}

// ClippingProject returns the barycentric coordinates of the point on the
// segment closest to p. clipped is true if the projection fell outside the
// segment and was moved to one of the endpoints.
func (l *Line[T]) ClippingProject(p vec3.Vec[T]) (w Weights2[T], clipped bool) {
	w = l.Project(p)
	switch {
	case w[0] < 0:
		return Weights2[T]{0, 1}, true
	case w[1] < 0:
		return Weights2[T]{1, 0}, true
	}
	return w, false
}

package bary

import (
	"github.com/soypat/bary/internal/d3"
	"github.com/soypat/bary/vec3"
)

// Tetrahedron maps points to barycentric coordinates over 4 vertices.
// The map is affine and defined on all of space; points outside the
// tetrahedron get one or more negative weights.
type Tetrahedron[T vec3.Scalar] struct {
	// toBary is the inverse of fromBary.
	toBary m44[T]
	// fromBary has the homogeneous vertex coordinates as columns:
	//  [ x1 x2 x3 x4 ]
	//  [ y1 y2 y3 y4 ]
	//  [ z1 z2 z3 z4 ]
	//  [ 1  1  1  1  ]
	fromBary m44[T]
}

// NewTetrahedron returns a projector for the tetrahedron with the given
// vertices. It fails with ErrDegenerate if the vertices are coplanar.
func NewTetrahedron[T vec3.Scalar](vertices [4]vec3.Vec[T]) (*Tetrahedron[T], error) {
	t, err := makeTetrahedron(vertices)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func makeTetrahedron[T vec3.Scalar](v [4]vec3.Vec[T]) (Tetrahedron[T], error) {
	var from m44[T]
	for i, p := range v {
		if !vec3.IsFinite(p) {
			return Tetrahedron[T]{}, degenerateErrf("non-finite tetrahedron vertex %v", p)
		}
		from[i] = p.X
		from[4+i] = p.Y
		from[8+i] = p.Z
		from[12+i] = 1
	}
	to, err := from.inverse()
	if err != nil {
		return Tetrahedron[T]{}, degenerateErrf("coplanar tetrahedron vertices: %v", err)
	}
	return Tetrahedron[T]{toBary: to, fromBary: from}, nil
}

// Project returns the barycentric coordinates of p.
func (t *Tetrahedron[T]) Project(p vec3.Vec[T]) Weights4[T] {
	return t.toBary.mulVec4([4]T{p.X, p.Y, p.Z, 1})
}

// BaryToPoint returns the point with barycentric coordinates w.
// Weights that do not sum to 1 are treated as homogeneous coordinates.
func (t *Tetrahedron[T]) BaryToPoint(w Weights4[T]) vec3.Vec[T] {
	h := t.fromBary.mulVec4(w)
	p := vec3.Vec[T]{X: h[0], Y: h[1], Z: h[2]}
	if h[3] != 0 && h[3] != 1 {
		p = vec3.Scale(1/h[3], p)
	}
	return p
}

// Vertex returns the i'th vertex of the tetrahedron.
func (t *Tetrahedron[T]) Vertex(i int) vec3.Vec[T] {
	return vec3.Vec[T]{X: t.fromBary[i], Y: t.fromBary[4+i], Z: t.fromBary[8+i]}
}

// Bounds returns the minimum and maximum corners of the tetrahedron's
// axis aligned bounding box.
func (t *Tetrahedron[T]) Bounds() (min, max vec3.Vec[T]) {
	bb := d3.BoundingBox(t.Vertex(0), t.Vertex(1), t.Vertex(2), t.Vertex(3))
	return bb.Min, bb.Max
}

package bary

import "github.com/soypat/bary/vec3"

// Triangle maps points to barycentric coordinates (w, u, v) over 3 vertices
// such that the projection of a point onto the triangle's plane is
//
//	P = w*v1 + u*v2 + v*v3
//
// The map is affine and defined on all of space. Points whose projection
// lies outside the triangle get one or more negative weights.
type Triangle[T vec3.Scalar] struct {
	v1 vec3.Vec[T]
	// e1, e2 are the edges v1->v2 and v1->v3.
	e1, e2 vec3.Vec[T]
	// proj is the 2x3 row-major matrix mapping P-v1 to (u, v).
	proj [6]T
}

// NewTriangle returns a projector for the triangle with the given vertices.
// It fails with ErrDegenerate if the vertices are collinear.
func NewTriangle[T vec3.Scalar](vertices [3]vec3.Vec[T]) (*Triangle[T], error) {
	t, err := makeTriangle(vertices)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func makeTriangle[T vec3.Scalar](v [3]vec3.Vec[T]) (Triangle[T], error) {
	// Moeller-Trumbore: solve
	//  -t*normal + u*e1 + v*e2 = P - v1
	// for (t, u, v) by inverting the matrix with columns (-normal, e1, e2).
	for _, p := range v {
		if !vec3.IsFinite(p) {
			return Triangle[T]{}, degenerateErrf("non-finite triangle vertex %v", p)
		}
	}
	e1 := vec3.Sub(v[1], v[0])
	e2 := vec3.Sub(v[2], v[0])
	n := vec3.Cross(e1, e2)
	if vec3.Norm2(n) == 0 {
		return Triangle[T]{}, degenerateErrf("collinear triangle vertices %v", v)
	}
	premul := m33[T]{
		-n.X, e1.X, e2.X,
		-n.Y, e1.Y, e2.Y,
		-n.Z, e1.Z, e2.Z,
	}
	inv, err := premul.inverse()
	if err != nil {
		return Triangle[T]{}, degenerateErrf("collinear triangle vertices: %v", err)
	}
	t := Triangle[T]{v1: v[0], e1: e1, e2: e2}
	// Drop the first row which computes distance along the normal.
	copy(t.proj[:], inv[3:])
	return t, nil
}

// Project returns the barycentric coordinates of p's projection onto the
// triangle's plane.
func (t *Triangle[T]) Project(p vec3.Vec[T]) Weights3[T] {
	d := vec3.Sub(p, t.v1)
	u := t.proj[0]*d.X + t.proj[1]*d.Y + t.proj[2]*d.Z
	v := t.proj[3]*d.X + t.proj[4]*d.Y + t.proj[5]*d.Z
	return Weights3[T]{1 - u - v, u, v}
}

// BaryToPoint returns the point on the triangle's plane with barycentric
// coordinates w. w is expected to sum to 1.
func (t *Triangle[T]) BaryToPoint(w Weights3[T]) vec3.Vec[T] {
	return vec3.Add(t.v1, vec3.Add(vec3.Scale(w[1], t.e1), vec3.Scale(w[2], t.e2)))
}

// Normal returns the unnormalized normal of the triangle, (v2-v1)×(v3-v1).
func (t *Triangle[T]) Normal() vec3.Vec[T] {
	return vec3.Cross(t.e1, t.e2)
}

// ClippingTriangle projects points onto the closed triangle, moving
// projections that fall outside of it to the closest point on its edges.
type ClippingTriangle[T vec3.Scalar] struct {
	// vertices as columns such that vertices·w is the point with weights w.
	vertices m33[T]
	// lines[i] is the edge opposite to vertex i, running from
	// vertex (i+1)%3 to vertex (i+2)%3.
	lines [3]Line[T]
	plane Triangle[T]
}

// NewClippingTriangle returns a clipping projector for the triangle with the
// given vertices. It fails with ErrDegenerate if the vertices are collinear.
func NewClippingTriangle[T vec3.Scalar](vertices [3]vec3.Vec[T]) (*ClippingTriangle[T], error) {
	plane, err := makeTriangle(vertices)
	if err != nil {
		return nil, err
	}
	ct := &ClippingTriangle[T]{plane: plane}
	for i := range ct.lines {
		ct.lines[i], err = makeLine(vertices[(i+1)%3], vertices[(i+2)%3])
		if err != nil {
			return nil, err
		}
	}
	for i, v := range vertices {
		ct.vertices[i] = v.X
		ct.vertices[3+i] = v.Y
		ct.vertices[6+i] = v.Z
	}
	return ct, nil
}

// Project returns the unclipped barycentric coordinates of p's projection
// onto the triangle's plane. See Triangle.Project.
func (ct *ClippingTriangle[T]) Project(p vec3.Vec[T]) Weights3[T] {
	return ct.plane.Project(p)
}

// BaryToPoint returns the point with barycentric coordinates w.
func (ct *ClippingTriangle[T]) BaryToPoint(w Weights3[T]) vec3.Vec[T] {
	return ct.vertices.mulVec(vec3.Vec[T]{X: w[0], Y: w[1], Z: w[2]})
}

// ClippingProject returns the barycentric coordinates of the point of the
// closed triangle closest to p. All returned weights are non-negative and sum to 1.
// clipped reports whether p's projection fell outside the triangle. When
// several candidate points had to be compared, haveDist2 is true and dist2 is
// the squared distance from p to the returned point.
func (ct *ClippingTriangle[T]) ClippingProject(p vec3.Vec[T]) (w Weights3[T], clipped bool, dist2 T, haveDist2 bool) {
	raw := ct.Project(p)
	if raw.Min() >= 0 {
		return raw, false, 0, false
	}
	// Baseline: clamp and renormalize the raw weights.
	best := raw
	haveBest := clampNormalize(best[:])
	if haveBest {
		dist2 = vec3.Dist2(ct.BaryToPoint(best), p)
	}
	for i := 0; i < 3; i++ {
		if raw[i] >= 0 {
			continue
		}
		// Negative weight on vertex i: p lies beyond the opposite edge.
		lw, lineClipped := ct.lines[i].ClippingProject(p)
		var candidate Weights3[T]
		candidate[(i+1)%3] = lw[0]
		candidate[(i+2)%3] = lw[1]
		if !lineClipped {
			// Projection falls strictly within the edge,
			// which is then the closest point of the triangle.
			return candidate, true, 0, false
		}
		// Clipped to an endpoint, not necessarily the closest.
		d2 := vec3.Dist2(ct.BaryToPoint(candidate), p)
		if !haveBest || d2 < dist2 {
			best, dist2, haveBest = candidate, d2, true
		}
	}
	return best, true, dist2, true
}

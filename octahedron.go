package bary

import (
	"github.com/soypat/bary/internal/d3"
	"github.com/soypat/bary/vec3"
)

// Octahedron vertex indices. The two poles come first, followed by the
// four equatorial vertices in cyclic order.
const (
	North = iota
	South
	EquatorA
	EquatorB
	EquatorC
	EquatorD
)

// Index tables mapping the local vertex order of each sub-projector to
// octahedron vertex indices.
var (
	// wedgeVerts[i] is the tetrahedron north, south, equator i, equator i+1.
	wedgeVerts = [4][4]int{
		{North, South, EquatorA, EquatorB},
		{North, South, EquatorB, EquatorC},
		{North, South, EquatorC, EquatorD},
		{North, South, EquatorD, EquatorA},
	}
	// faceVerts[i] is the outer face pole, equator i%4, equator (i+1)%4.
	// Faces 0-3 touch the north pole, faces 4-7 the south pole.
	faceVerts = [8][3]int{
		{North, EquatorA, EquatorB},
		{North, EquatorB, EquatorC},
		{North, EquatorC, EquatorD},
		{North, EquatorD, EquatorA},
		{South, EquatorA, EquatorB},
		{South, EquatorB, EquatorC},
		{South, EquatorC, EquatorD},
		{South, EquatorD, EquatorA},
	}
	// edgeVerts: edges 0-3 join the north pole to each equatorial vertex,
	// edges 4-7 the south pole, and edges 8-11 form the equatorial ring.
	edgeVerts = [12][2]int{
		{North, EquatorA}, {North, EquatorB}, {North, EquatorC}, {North, EquatorD},
		{South, EquatorA}, {South, EquatorB}, {South, EquatorC}, {South, EquatorD},
		{EquatorA, EquatorB}, {EquatorB, EquatorC}, {EquatorC, EquatorD}, {EquatorD, EquatorA},
	}
)

// Octahedron finds the closest point of a convex octahedron to a point
// and returns it as barycentric coordinates over the octahedron's 6 vertices.
// The octahedron is split into 4 wedges, tetrahedra that span both poles
// and one edge of the equatorial ring.
type Octahedron[T vec3.Scalar] struct {
	vertices [6]vec3.Vec[T]
	wedges   [4]Tetrahedron[T]
	faces    [8]Triangle[T]
	edges    [12]Line[T]
}

// NewOctahedron returns a projector for the octahedron with the given
// vertices: north pole, south pole and then the 4 equatorial vertices in
// cyclic order. It fails with ErrDegenerate if any wedge or face is degenerate.
func NewOctahedron[T vec3.Scalar](vertices [6]vec3.Vec[T]) (*Octahedron[T], error) {
	o := &Octahedron[T]{vertices: vertices}
	var err error
	for i, idx := range wedgeVerts {
		o.wedges[i], err = makeTetrahedron([4]vec3.Vec[T]{
			vertices[idx[0]], vertices[idx[1]], vertices[idx[2]], vertices[idx[3]],
		})
		if err != nil {
			return nil, err
		}
	}
	for i, idx := range faceVerts {
		o.faces[i], err = makeTriangle([3]vec3.Vec[T]{
			vertices[idx[0]], vertices[idx[1]], vertices[idx[2]],
		})
		if err != nil {
			return nil, err
		}
	}
	for i, idx := range edgeVerts {
		o.edges[i], err = makeLine(vertices[idx[0]], vertices[idx[1]])
		if err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Project returns the barycentric coordinates of the point of the octahedron
// closest to p. Points inside the octahedron map to themselves. Vertices
// that do not take part in the result have weight zero. The returned weights
// are non-negative and sum to 1.
func (o *Octahedron[T]) Project(p vec3.Vec[T]) Weights6[T] {
	var edgesToCheck [12]bool
	var checkEdges bool
	var best Weights4[T]
	var bestMin T
	bestWedge := -1
	for wi := range o.wedges {
		local := o.wedges[wi].Project(p)
		lmin := local.Min()
		if lmin >= 0 {
			return wedgeToGlobal(wi, local)
		}
		// Keep the wedge with the largest minimum weight in case p lies in
		// the rounding errors between wedges.
		if bestWedge < 0 || lmin > bestMin {
			best, bestMin, bestWedge = local, lmin, wi
		}
		// The faces north-south-a and north-south-b are shared with the
		// neighboring wedges. Only the outer faces pole-a-b are of interest:
		// a non-positive weight on a pole means p lies beyond the outer face
		// of the opposite pole.
		for pole := 0; pole < 2; pole++ {
			if local[pole] > 0 {
				continue
			}
			fi := (1-pole)*4 + wi
			flocal := o.faces[fi].Project(p)
			if flocal.Min() >= 0 {
				// p projects cleanly onto the outer face, which is
				// the closest point of the convex octahedron.
				return faceToGlobal(fi, flocal)
			}
			if flocal[0] <= 0 {
				// Beyond the equatorial edge of the face.
				edgesToCheck[8+fi%4] = true
				checkEdges = true
			}
			for j := 0; j < 2; j++ {
				if flocal[1+j] <= 0 {
					// Beyond the pole edge to the other equatorial vertex.
					other := (fi%4 + 1 - j) % 4
					edgesToCheck[(fi/4)*4+other] = true
					checkEdges = true
				}
			}
		}
	}
	if !checkEdges {
		return o.fallback(p, bestWedge, best)
	}
	var result Weights6[T]
	var bestDist2 T
	bestEdge := -1
	for ei := range o.edges {
		if !edgesToCheck[ei] {
			continue
		}
		edge := &o.edges[ei]
		local, _ := edge.ClippingProject(p)
		d2 := vec3.Dist2(edge.BaryToPoint(local), p)
		if bestEdge < 0 || d2 < bestDist2 {
			result, bestDist2, bestEdge = edgeToGlobal(ei, local), d2, ei
		}
	}
	return result
}

// fallback handles points that no wedge, face or edge claims cleanly, which
// happens only within rounding error of a boundary between wedges. The best
// wedge's weights are clamped and renormalized. If nothing is left after
// clamping the nearest vertex is returned.
func (o *Octahedron[T]) fallback(p vec3.Vec[T], wedge int, local Weights4[T]) Weights6[T] {
	if clampNormalize(local[:]) {
		return wedgeToGlobal(wedge, local)
	}
	nearest := 0
	nearestDist2 := vec3.Dist2(o.vertices[0], p)
	for i := 1; i < len(o.vertices); i++ {
		d2 := vec3.Dist2(o.vertices[i], p)
		if d2 < nearestDist2 {
			nearest, nearestDist2 = i, d2
		}
	}
	var w Weights6[T]
	w[nearest] = 1
	return w
}

// BaryToPoint returns the point with barycentric coordinates w over the
// octahedron's vertices.
func (o *Octahedron[T]) BaryToPoint(w Weights6[T]) vec3.Vec[T] {
	var p vec3.Vec[T]
	for i, v := range o.vertices {
		p = vec3.Add(p, vec3.Scale(w[i], v))
	}
	return p
}

// Vertices returns the vertices the octahedron was constructed with.
func (o *Octahedron[T]) Vertices() [6]vec3.Vec[T] {
	return o.vertices
}

// Bounds returns the minimum and maximum corners of the octahedron's
// axis aligned bounding box.
func (o *Octahedron[T]) Bounds() (min, max vec3.Vec[T]) {
	bb := d3.BoundingBox(o.vertices[:]...)
	return bb.Min, bb.Max
}

func wedgeToGlobal[T vec3.Scalar](i int, local Weights4[T]) (w Weights6[T]) {
	for k, vi := range wedgeVerts[i] {
		w[vi] = local[k]
	}
	return w
}

func faceToGlobal[T vec3.Scalar](i int, local Weights3[T]) (w Weights6[T]) {
	for k, vi := range faceVerts[i] {
		w[vi] = local[k]
	}
	return w
}

func edgeToGlobal[T vec3.Scalar](i int, local Weights2[T]) (w Weights6[T]) {
	for k, vi := range edgeVerts[i] {
		w[vi] = local[k]
	}
	return w
}

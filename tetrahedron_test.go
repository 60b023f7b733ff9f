package bary

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/soypat/bary/internal/d3"
	"github.com/soypat/bary/vec3"
)

var testTetrahedron = [4]v3{
	{X: 0, Y: 0, Z: 0},
	{X: 2, Y: 0.1, Z: -0.2},
	{X: 0.3, Y: 1.5, Z: 0},
	{X: -0.2, Y: 0.4, Z: 1.8},
}

func TestTetrahedronRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	tet, err := NewTetrahedron(testTetrahedron)
	if err != nil {
		t.Fatal(err)
	}
	box := d3.NewBox(v3{}, vec3.Elem(10.0))
	for _, p := range box.RandomSet(rng, 1000) {
		w := tet.Project(p)
		if math.Abs(w.Sum()-1) > tol {
			t.Fatalf("weights %v do not sum to 1", w)
		}
		got := tet.BaryToPoint(w)
		if !vec3.EqualWithin(got, p, tol) {
			t.Fatalf("round trip of %v: got %v", p, got)
		}
	}
	for i, v := range testTetrahedron {
		w := tet.Project(v)
		for j := range w {
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(w[j]-want) > tol {
				t.Errorf("vertex %d: got weights %v", i, w)
				break
			}
		}
		if tet.Vertex(i) != v {
			t.Errorf("Vertex(%d)=%v, want %v", i, tet.Vertex(i), v)
		}
	}
	min, max := tet.Bounds()
	if min != (v3{X: -0.2, Y: 0, Z: -0.2}) || max != (v3{X: 2, Y: 1.5, Z: 1.8}) {
		t.Errorf("bad bounds %v %v", min, max)
	}
}

func TestTetrahedronInside(t *testing.T) {
	tet, err := NewTetrahedron(testTetrahedron)
	if err != nil {
		t.Fatal(err)
	}
	centroid := vec3.Scale(0.25, vec3.Add(
		vec3.Add(testTetrahedron[0], testTetrahedron[1]),
		vec3.Add(testTetrahedron[2], testTetrahedron[3]),
	))
	w := tet.Project(centroid)
	for i := range w {
		if math.Abs(w[i]-0.25) > tol {
			t.Fatalf("centroid weights %v", w)
		}
	}
	// Beyond the face opposite vertex 3.
	w = tet.Project(v3{X: 0.5, Y: 0.5, Z: -5})
	if w[3] >= 0 {
		t.Fatalf("expected negative weight for vertex 3: %v", w)
	}
}

func TestTetrahedronDegenerate(t *testing.T) {
	for _, v := range [][4]v3{
		// Coplanar.
		{{}, {X: 1}, {Y: 1}, {X: 1, Y: 1}},
		// Repeated vertex.
		{{}, {X: 1}, {Y: 1}, {Y: 1}},
		{{}, {}, {}, {}},
		{{}, {X: 1}, {Y: 1}, {Z: math.Inf(1)}},
	} {
		_, err := NewTetrahedron(v)
		if !errors.Is(err, ErrDegenerate) {
			t.Errorf("NewTetrahedron(%v): want ErrDegenerate, got %v", v, err)
		}
	}
}

package bary

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/soypat/bary/internal/d3"
	"github.com/soypat/bary/vec3"
)

var testTriangle = [3]v3{
	{X: 0.5, Y: -1, Z: 0.2},
	{X: 2, Y: 0.5, Z: -0.3},
	{X: -0.5, Y: 1.5, Z: 1},
}

func TestTriangleRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	tri, err := NewTriangle(testTriangle)
	if err != nil {
		t.Fatal(err)
	}
	v := testTriangle
	for i := 0; i < 1000; i++ {
		// Affine combinations cover the whole plane, not just the triangle.
		u, w := 6*rng.Float64()-3, 6*rng.Float64()-3
		p := vec3.Add(v[0], vec3.Add(vec3.Scale(u, vec3.Sub(v[1], v[0])), vec3.Scale(w, vec3.Sub(v[2], v[0]))))
		bw := tri.Project(p)
		if math.Abs(bw[1]-u) > tol || math.Abs(bw[2]-w) > tol {
			t.Fatalf("got weights %v, want [%g %g %g]", bw, 1-u-w, u, w)
		}
		got := tri.BaryToPoint(bw)
		if !vec3.EqualWithin(got, p, tol) {
			t.Fatalf("round trip of %v: got %v", p, got)
		}
	}
	// Points off the plane map to their orthogonal projection onto the plane.
	n := tri.Normal()
	box := d3.NewBox(v3{}, vec3.Elem(8.0))
	for _, p := range box.RandomSet(rng, 1000) {
		bw := tri.Project(p)
		if math.Abs(bw.Sum()-1) > tol {
			t.Fatalf("weights %v do not sum to 1", bw)
		}
		residual := vec3.Sub(p, tri.BaryToPoint(bw))
		if vec3.Norm(vec3.Cross(residual, n)) > tol*vec3.Norm(n)*(1+vec3.Norm(residual)) {
			t.Fatalf("residual %v of %v not parallel to normal %v", residual, p, n)
		}
	}
}

func TestTriangleVertices(t *testing.T) {
	tri, err := NewClippingTriangle(testTriangle)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range testTriangle {
		w, _, _, _ := tri.ClippingProject(v)
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
	}
}

func TestTriangleDegenerate(t *testing.T) {
	for _, v := range [][3]v3{
		{{}, {X: 1}, {X: 2}},
		{{X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 3, Y: 2, Z: 1}},
		{{}, {}, {}},
		{{}, {X: 1}, {Y: math.NaN()}},
	} {
		_, err := NewTriangle(v)
		if !errors.Is(err, ErrDegenerate) {
			t.Errorf("NewTriangle(%v): want ErrDegenerate, got %v", v, err)
		}
		_, err = NewClippingTriangle(v)
		if !errors.Is(err, ErrDegenerate) {
			t.Errorf("NewClippingTriangle(%v): want ErrDegenerate, got %v", v, err)
		}
	}
}

func TestClippingTriangleCases(t *testing.T) {
	// Right triangle in the XY plane.
	tri, err := NewClippingTriangle([3]v3{{}, {X: 1}, {Y: 1}})
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		p       v3
		want    Weights3[float64]
		clipped bool
	}{
		// Inside, above the plane.
		{p: v3{X: 0.25, Y: 0.25, Z: 3}, want: Weights3[float64]{0.5, 0.25, 0.25}},
		// Beyond the hypotenuse.
		{p: v3{X: 1, Y: 1}, want: Weights3[float64]{0, 0.5, 0.5}, clipped: true},
		// Beyond the edge along the X axis.
		{p: v3{X: 0.5, Y: -2, Z: 1}, want: Weights3[float64]{0.5, 0.5, 0}, clipped: true},
		// Beyond a corner.
		{p: v3{X: 3, Y: -1}, want: Weights3[float64]{0, 1, 0}, clipped: true},
		{p: v3{X: -1, Y: -1}, want: Weights3[float64]{1, 0, 0}, clipped: true},
	} {
		got, clipped, _, _ := tri.ClippingProject(test.p)
		if clipped != test.clipped {
			t.Errorf("%v: got clipped=%t, want %t", test.p, clipped, test.clipped)
		}
		for i := range got {
			if math.Abs(got[i]-test.want[i]) > tol {
				t.Errorf("%v: got %v, want %v", test.p, got, test.want)
				break
			}
		}
	}
}

func TestClippingTriangleClosest(t *testing.T) {
	const samples = 60
	rng := rand.New(rand.NewSource(3))
	tri, err := NewClippingTriangle(testTriangle)
	if err != nil {
		t.Fatal(err)
	}
	// Brute force: dense grid of points on the triangle.
	var grid []v3
	for i := 0; i <= samples; i++ {
		for j := 0; i+j <= samples; j++ {
			u, v := float64(i)/samples, float64(j)/samples
			grid = append(grid, tri.BaryToPoint(Weights3[float64]{1 - u - v, u, v}))
		}
	}
	box := d3.NewBox(v3{}, vec3.Elem(8.0))
	for _, p := range box.RandomSet(rng, 500) {
		w, _, dist2, haveDist2 := tri.ClippingProject(p)
		if w.Min() < 0 || math.Abs(w.Sum()-1) > tol {
			t.Fatalf("%v: invalid weights %v", p, w)
		}
		got := vec3.Dist2(tri.BaryToPoint(w), p)
		if haveDist2 && math.Abs(got-dist2) > tol {
			t.Fatalf("%v: reported squared distance %g, actual %g", p, dist2, got)
		}
		for _, g := range grid {
			if vec3.Dist2(g, p) < got-tol {
				t.Fatalf("%v: grid point %v closer than clipped projection %v", p, g, w)
			}
		}
	}
}

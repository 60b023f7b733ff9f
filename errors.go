package bary

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrDegenerate is returned by projector constructors when the vertices do
// not span a simplex of the expected dimension, i.e. collinear triangle
// vertices or coplanar tetrahedron vertices, or when a vertex coordinate is
// not finite. Test for it with errors.Is.
var ErrDegenerate = errors.New("degenerate geometry")

// degenerateErrf returns an error wrapping ErrDegenerate prefixed with
// the calling function's name and line number.
func degenerateErrf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	pc, _, line, ok := runtime.Caller(1)
	if !ok {
		return fmt.Errorf("?: %s: %w", msg, ErrDegenerate)
	}
	fn := runtime.FuncForPC(pc)
	return fmt.Errorf("%s line %d: %s: %w", fn.Name(), line, msg, ErrDegenerate)
}

// Must panics if err is not nil and returns p otherwise. It is meant for
// projectors built from fixed vertices known to be non-degenerate:
//
//	var gamut = bary.Must(bary.NewOctahedron(vertices))
func Must[P any](p P, err error) P {
	if err != nil {
		panic(err)
	}
	return p
}

package bary

import "github.com/soypat/bary/vec3"

// Barycentric coordinate vectors. Each component is the weight of the
// corresponding vertex of the projector that produced them. Weights of a
// point inside the simplex are all non-negative and sum to 1.
type (
	Weights2[T vec3.Scalar] [2]T
	Weights3[T vec3.Scalar] [3]T
	Weights4[T vec3.Scalar] [4]T
	Weights6[T vec3.Scalar] [6]T
)

// Min returns the smallest weight.
func (w Weights2[T]) Min() T { return minElem(w[:]) }

// Sum returns the sum of the weights.
func (w Weights2[T]) Sum() T { return sumElem(w[:]) }

// Min returns the smallest weight.
func (w Weights3[T]) Min() T { return minElem(w[:]) }

// Sum returns the sum of the weights.
func (w Weights3[T]) Sum() T { return sumElem(w[:]) }

// Min returns the smallest weight.
func (w Weights4[T]) Min() T { return minElem(w[:]) }

// Sum returns the sum of the weights.
func (w Weights4[T]) Sum() T { return sumElem(w[:]) }

// Min returns the smallest weight.
func (w Weights6[T]) Min() T { return minElem(w[:]) }

// Sum returns the sum of the weights.
func (w Weights6[T]) Sum() T { return sumElem(w[:]) }

// ArgMax returns the index of the largest weight. The lowest index wins ties.
func (w Weights6[T]) ArgMax() int {
	best := 0
	for i := 1; i < len(w); i++ {
		if w[i] > w[best] {
			best = i
		}
	}
	return best
}

func minElem[T vec3.Scalar](w []T) T {
	m := w[0]
	for _, v := range w[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func sumElem[T vec3.Scalar](w []T) (sum T) {
	for _, v := range w {
		sum += v
	}
	return sum
}

// clampNormalize sets negative weights to zero and rescales the rest so they
// sum to 1. If the clamped weights do not have a positive sum w is left
// clamped but not rescaled and false is returned.
func clampNormalize[T vec3.Scalar](w []T) bool {
	var sum T
	for i, v := range w {
		if v < 0 {
			w[i] = 0
			continue
		}
		sum += v
	}
	if !(sum > 0) {
		return false
	}
	for i := range w {
		w[i] /= sum
	}
	return true
}

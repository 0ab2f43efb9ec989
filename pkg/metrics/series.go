package metrics

import "golang.org/x/exp/constraints"

// Series converts an ordered numeric slice into the float64 form the
// calculators operate on.
func Series[T constraints.Integer | constraints.Float](values []T) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

package metrics

import (
	"fmt"
	"math"
)

func validateSeries(values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: series is empty", ErrInvalidInput)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: value at index %d is not finite", ErrInvalidInput, i)
		}
	}
	return nil
}

func validateWindow(window, length int) error {
	if window < 1 {
		return fmt.Errorf("%w: window must be positive, got %d", ErrInvalidInput, window)
	}
	if window > length {
		return fmt.Errorf("%w: window %d exceeds series length %d", ErrInvalidInput, window, length)
	}
	return nil
}

package metrics

import "errors"

var (
	// ErrInvalidInput covers empty or too-short series, non-finite
	// elements, and out-of-range window sizes.
	ErrInvalidInput = errors.New("invalid input")

	// ErrZeroVolatility is returned by SharpeRatio when the return series
	// has zero dispersion and the ratio is undefined.
	ErrZeroVolatility = errors.New("zero volatility")
)

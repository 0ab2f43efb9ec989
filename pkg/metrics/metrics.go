// Package metrics provides basic quantitative metrics over in-memory
// price and return series: simple moving averages, volatility as the
// sample standard deviation of returns, and the Sharpe ratio.
package metrics

import (
	"fmt"
	"math"
)

// SimpleMovingAverage computes the windowed arithmetic mean of prices.
// The result has length len(prices)-window+1, ordered oldest window
// start first.
func SimpleMovingAverage(prices []float64, window int) ([]float64, error) {
	if err := validateSeries(prices); err != nil {
		return nil, err
	}
	if err := validateWindow(window, len(prices)); err != nil {
		return nil, err
	}

	averages := make([]float64, 0, len(prices)-window+1)
	sum := 0.0
	for i, price := range prices {
		sum += price
		if i >= window {
			sum -= prices[i-window]
		}
		if i >= window-1 {
			averages = append(averages, sum/float64(window))
		}
	}
	return averages, nil
}

// Returns computes period-to-period simple returns from a price series.
// The result has length len(prices)-1; a single price yields an empty
// result.
func Returns(prices []float64) ([]float64, error) {
	if err := validateSeries(prices); err != nil {
		return nil, err
	}
	if len(prices) < 2 {
		return nil, nil
	}

	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		prev := prices[i-1]
		if prev == 0 {
			return nil, fmt.Errorf("%w: zero price at index %d", ErrInvalidInput, i-1)
		}
		returns = append(returns, (prices[i]-prev)/prev)
	}
	return returns, nil
}

// Volatility computes the sample standard deviation of a return series
// using Bessel's correction. At least two returns are required.
func Volatility(returns []float64) (float64, error) {
	if err := validateSeries(returns); err != nil {
		return 0, err
	}
	if len(returns) < 2 {
		return 0, fmt.Errorf("%w: need at least two returns, got %d", ErrInvalidInput, len(returns))
	}

	m := mean(returns)
	sumSq := 0.0
	for _, r := range returns {
		diff := r - m
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(returns)-1)), nil
}

// SharpeRatio computes the mean excess return over the risk-free rate
// divided by Volatility(returns). A series with zero dispersion yields
// ErrZeroVolatility.
func SharpeRatio(returns []float64, riskFreeRate float64) (float64, error) {
	if math.IsNaN(riskFreeRate) || math.IsInf(riskFreeRate, 0) {
		return 0, fmt.Errorf("%w: risk-free rate is not finite", ErrInvalidInput)
	}

	volatility, err := Volatility(returns)
	if err != nil {
		return 0, err
	}
	if volatility == 0 {
		return 0, fmt.Errorf("%w: returns have no dispersion", ErrZeroVolatility)
	}
	return (mean(returns) - riskFreeRate) / volatility, nil
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

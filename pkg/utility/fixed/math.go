package fixed

func Mean(points []Point) Point {
	if len(points) == 0 {
		return Zero
	}
	sum := Zero
	for _, point := range points {
		sum = sum.Add(point)
	}
	return sum.DivInt(len(points))
}

func SampleVariance(points []Point) Point {
	if len(points) <= 1 {
		return Zero
	}

	mean := Mean(points)
	sum := Zero
	for _, point := range points {
		diff := point.Sub(mean)
		sum = sum.Add(diff.Mul(diff))
	}
	return sum.DivInt(len(points) - 1)
}

func SampleStdDev(points []Point) Point {
	return SampleVariance(points).Sqrt()
}

// Sma computes the windowed arithmetic means of the series. A window
// outside [1, len(points)] yields nil.
func Sma(points []Point, window int) []Point {
	if window < 1 || window > len(points) {
		return nil
	}

	out := make([]Point, 0, len(points)-window+1)
	sum := Zero
	for i, point := range points {
		sum = sum.Add(point)
		if i >= window {
			sum = sum.Sub(points[i-window])
		}
		if i >= window-1 {
			out = append(out, sum.DivInt(window))
		}
	}
	return out
}

func SharpeRatio(points []Point, riskFreeRate Point) Point {
	volatility := SampleStdDev(points)
	if volatility.IsZero() {
		return Zero
	}
	return Mean(points).Sub(riskFreeRate).Div(volatility)
}

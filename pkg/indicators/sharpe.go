package indicators

import (
	"errors"

	"quantcalc/pkg/utility/fixed"
)

type Sharpe struct {
	windowSize   int
	riskFreeRate fixed.Point
	data         *fixed.Ring
}

func NewSharpe(windowSize int, riskFreeRate fixed.Point) *Sharpe {
	return &Sharpe{
		windowSize:   windowSize,
		riskFreeRate: riskFreeRate,
		data:         fixed.NewRing(windowSize),
	}
}

func (s *Sharpe) AddPoint(p fixed.Point) {
	s.data.Add(p)
}

func (s *Sharpe) Value() (fixed.Point, error) {
	if !s.IsReady() {
		return fixed.Point{}, errors.New("not enough data")
	}

	volatility := s.data.SampleStdDev()
	if volatility.IsZero() {
		return fixed.Point{}, errors.New("zero volatility")
	}
	return s.data.Mean().Sub(s.riskFreeRate).Div(volatility), nil
}

func (s *Sharpe) IsReady() bool {
	return s.data.IsFull()
}

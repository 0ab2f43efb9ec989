// Package indicators provides streaming counterparts of the batch
// calculators, fed one point at a time over a rolling window.
package indicators

import (
	"errors"

	"quantcalc/pkg/utility/fixed"
)

type Sma struct {
	windowSize int
	data       *fixed.Ring
}

func NewSma(windowSize int) *Sma {
	return &Sma{
		windowSize: windowSize,
		data:       fixed.NewRing(windowSize),
	}
}

func (s *Sma) AddPoint(p fixed.Point) {
	s.data.Add(p)
}

func (s *Sma) Value() (fixed.Point, error) {
	if !s.IsReady() {
		return fixed.Point{}, errors.New("not enough data")
	}
	return s.data.Mean(), nil
}

func (s *Sma) IsReady() bool {
	return s.data.IsFull()
}

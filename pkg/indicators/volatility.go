package indicators

import (
	"errors"

	"quantcalc/pkg/utility/fixed"
)

type Volatility struct {
	windowSize int
	data       *fixed.Ring
}

func NewVolatility(windowSize int) *Volatility {
	return &Volatility{
		windowSize: windowSize,
		data:       fixed.NewRing(windowSize),
	}
}

func (v *Volatility) AddPoint(p fixed.Point) {
	v.data.Add(p)
}

func (v *Volatility) Value() (fixed.Point, error) {
	if !v.IsReady() {
		return fixed.Point{}, errors.New("not enough data")
	}
	return v.data.SampleStdDev(), nil
}

func (v *Volatility) IsReady() bool {
	return v.data.IsFull()
}

package main

var DemoPrices = []int{100, 102, 101, 103, 105, 107, 106, 108, 110, 112}

const (
	SmaWindow    = 3
	RiskFreeRate = 0.01
)

package main

import (
	"go.uber.org/zap"

	"quantcalc/internal/dbg"
	"quantcalc/pkg/metrics"
	"quantcalc/pkg/utility"
)

func main() {
	logger := dbg.NewLogger()
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	logger.Info("quantcalc demo",
		zap.Stringer("run_id", utility.GetRunID()),
		zap.Float64("risk_free_rate", RiskFreeRate))

	prices := metrics.Series(DemoPrices)
	logger.Info("prices", zap.Float64s("values", prices))

	sma, err := metrics.SimpleMovingAverage(prices, SmaWindow)
	if err != nil {
		logger.Fatal("sma calculation failed", zap.Error(err))
	}
	logger.Info("simple moving average",
		zap.Int("window", SmaWindow),
		zap.Float64s("values", sma))

	returns, err := metrics.Returns(prices)
	if err != nil {
		logger.Fatal("returns calculation failed", zap.Error(err))
	}
	logger.Info("returns", zap.Float64s("values", returns))

	volatility, err := metrics.Volatility(returns)
	if err != nil {
		logger.Fatal("volatility calculation failed", zap.Error(err))
	}

	sharpe, err := metrics.SharpeRatio(returns, RiskFreeRate)
	if err != nil {
		logger.Fatal("sharpe calculation failed", zap.Error(err))
	}

	logger.Info("risk metrics",
		zap.Float64("volatility", volatility),
		zap.Float64("sharpe_ratio", sharpe))
}

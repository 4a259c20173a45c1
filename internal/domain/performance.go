package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EquityPoint struct {
	Timestamp time.Time
	Value     decimal.Decimal
}

// PortfolioPerformance summarizes the brokerage account's equity curve over
// a requested period. The stats fields are fractions, not percents.
type PortfolioPerformance struct {
	PortfolioValue       decimal.Decimal
	PeriodReturnFraction float64
	DailyReturnMean      float64
	DailyReturnStdev     float64
	Equity               []EquityPoint
}

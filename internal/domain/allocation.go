package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StrategyAllocation is one row of the per-strategy breakdown in an
// AllocationSummary. AllocatedAmount is always set; a strategy with no
// allocation reads as zero.
type StrategyAllocation struct {
	StrategyID      uuid.UUID
	StrategyName    string
	AllocatedAmount decimal.Decimal
	IsActive        bool
}

// AllocationSummary is a point-in-time view of how a user's tradable funds
// are divided among their strategies. It is derived from a single strategy
// snapshot plus the brokerage balance fetched at computation time, and is
// never persisted.
//
// AvailableToAllocate may be negative when the brokerage balance has fallen
// below committed allocations. Callers must surface that, not clamp it.
type AllocationSummary struct {
	AvailableFunds      decimal.Decimal
	TotalAllocated      decimal.Decimal
	AvailableToAllocate decimal.Decimal
	Allocations         []StrategyAllocation

	TotalStrategies          int
	ActiveStrategies         int
	StrategiesWithAllocation int
}

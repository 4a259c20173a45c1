package api

import (
	"testing"
	"tradedesk/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_allocationSummaryResponseFromDomain(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		strategyID := uuid.New()
		in := domain.AllocationSummary{
			AvailableFunds:      decimal.NewFromInt(10000),
			TotalAllocated:      decimal.NewFromInt(5000),
			AvailableToAllocate: decimal.NewFromInt(5000),
			Allocations: []domain.StrategyAllocation{
				{
					StrategyID:      strategyID,
					StrategyName:    "momentum",
					AllocatedAmount: decimal.NewFromInt(5000),
					IsActive:        true,
				},
			},
			TotalStrategies:          1,
			ActiveStrategies:         1,
			StrategiesWithAllocation: 1,
		}

		out := allocationSummaryResponseFromDomain(in)

		expected := getAllocationSummaryResponse{
			AvailableFunds:      10000,
			TotalAllocated:      5000,
			AvailableToAllocate: 5000,
			Allocations: []allocationResponse{
				{
					ID:              strategyID,
					Name:            "momentum",
					AllocatedAmount: 5000,
					IsActive:        true,
				},
			},
			Summary: allocationCountsResponse{
				TotalStrategies:          1,
				ActiveStrategies:         1,
				StrategiesWithAllocation: 1,
			},
		}
		require.Empty(t, cmp.Diff(expected, out))
	})

	t.Run("negative availableToAllocate passes through", func(t *testing.T) {
		out := allocationSummaryResponseFromDomain(domain.AllocationSummary{
			AvailableFunds:      decimal.NewFromInt(6000),
			TotalAllocated:      decimal.NewFromInt(8000),
			AvailableToAllocate: decimal.NewFromInt(-2000),
		})

		require.Equal(t, float64(-2000), out.AvailableToAllocate)
		require.Empty(t, out.Allocations)
	})
}

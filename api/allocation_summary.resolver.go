package api

import (
	"tradedesk/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type getAllocationSummaryResponse struct {
	AvailableFunds      float64                  `json:"availableFunds"`
	TotalAllocated      float64                  `json:"totalAllocated"`
	AvailableToAllocate float64                  `json:"availableToAllocate"`
	Allocations         []allocationResponse     `json:"allocations"`
	Summary             allocationCountsResponse `json:"summary"`
}

type allocationResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	AllocatedAmount float64   `json:"allocatedAmount"`
	IsActive        bool      `json:"isActive"`
}

type allocationCountsResponse struct {
	TotalStrategies          int `json:"totalStrategies"`
	ActiveStrategies         int `json:"activeStrategies"`
	StrategiesWithAllocation int `json:"strategiesWithAllocation"`
}

func allocationSummaryResponseFromDomain(in domain.AllocationSummary) getAllocationSummaryResponse {
	allocations := []allocationResponse{}
	for _, a := range in.Allocations {
		allocations = append(allocations, allocationResponse{
			ID:              a.StrategyID,
			Name:            a.StrategyName,
			AllocatedAmount: a.AllocatedAmount.InexactFloat64(),
			IsActive:        a.IsActive,
		})
	}

	return getAllocationSummaryResponse{
		AvailableFunds: in.AvailableFunds.InexactFloat64(),
		TotalAllocated: in.TotalAllocated.InexactFloat64(),
		// negative means the account balance dropped below committed
		// allocations - passed through for the UI to flag
		AvailableToAllocate: in.AvailableToAllocate.InexactFloat64(),
		Allocations:         allocations,
		Summary: allocationCountsResponse{
			TotalStrategies:          in.TotalStrategies,
			ActiveStrategies:         in.ActiveStrategies,
			StrategiesWithAllocation: in.StrategiesWithAllocation,
		},
	}
}

func (m ApiHandler) getAllocationSummary(c *gin.Context) {
	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnApiError(c, err)
		return
	}

	summary, err := m.AllocationService.GetSummary(c.Request.Context(), userAccountID)
	if err != nil {
		returnApiError(c, err)
		return
	}

	c.JSON(200, allocationSummaryResponseFromDomain(*summary))
}

package api

import (
	"tradedesk/internal/db/models/postgres/public/model"
	"tradedesk/internal/domain"
	"tradedesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type updateStrategyRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	IsActive        *bool    `json:"isActive"`
	AllocatedAmount *float64 `json:"allocatedAmount"`
}

func (r updateStrategyRequest) hasDetailsUpdate() bool {
	return r.Name != nil || r.Description != nil || r.IsActive != nil
}

func (m ApiHandler) updateStrategy(c *gin.Context) {
	ctx := c.Request.Context()

	strategyID, err := uuid.Parse(c.Param("strategyID"))
	if err != nil {
		returnApiError(c, domain.InvalidArgumentError{Reason: "malformed strategy id"})
		return
	}

	var requestBody updateStrategyRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnApiError(c, domain.InvalidArgumentError{Reason: err.Error()})
		return
	}
	if !requestBody.hasDetailsUpdate() && requestBody.AllocatedAmount == nil {
		returnApiError(c, domain.InvalidArgumentError{Reason: "no updatable fields provided"})
		return
	}

	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnApiError(c, err)
		return
	}

	// the allocation change runs first: it is the validated path, and if
	// the ledger rejects it nothing else should have moved
	var updated *model.Strategy
	if requestBody.AllocatedAmount != nil {
		updated, err = m.AllocationService.SetAllocation(
			ctx,
			userAccountID,
			strategyID,
			decimal.NewFromFloat(*requestBody.AllocatedAmount),
		)
		if err != nil {
			returnApiError(c, err)
			return
		}
	}

	if requestBody.hasDetailsUpdate() {
		updated, err = m.StrategyService.UpdateDetails(ctx, userAccountID, strategyID, service.StrategyDetailsUpdate{
			StrategyName: requestBody.Name,
			Description:  requestBody.Description,
			IsActive:     requestBody.IsActive,
		})
		if err != nil {
			returnApiError(c, err)
			return
		}
	}

	c.JSON(200, strategyResponseFromModel(*updated))
}

package api

import (
	"time"
	"tradedesk/internal/db/models/postgres/public/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type strategyResponse struct {
	StrategyID      uuid.UUID `json:"strategyID"`
	StrategyName    string    `json:"strategyName"`
	Description     *string   `json:"description"`
	IsActive        bool      `json:"isActive"`
	AllocatedAmount *float64  `json:"allocatedAmount"`
	CreatedAt       string    `json:"createdAt"`
	ModifiedAt      string    `json:"modifiedAt"`
}

func strategyResponseFromModel(m model.Strategy) strategyResponse {
	var allocatedAmount *float64
	if m.AllocatedAmount != nil {
		f := m.AllocatedAmount.InexactFloat64()
		allocatedAmount = &f
	}

	return strategyResponse{
		StrategyID:      m.StrategyID,
		StrategyName:    m.StrategyName,
		Description:     m.Description,
		IsActive:        m.IsActive,
		AllocatedAmount: allocatedAmount,
		CreatedAt:       m.CreatedAt.Format(time.RFC3339),
		ModifiedAt:      m.ModifiedAt.Format(time.RFC3339),
	}
}

func (m ApiHandler) listStrategies(c *gin.Context) {
	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnApiError(c, err)
		return
	}

	strategies, err := m.StrategyService.List(c.Request.Context(), userAccountID)
	if err != nil {
		returnApiError(c, err)
		return
	}

	out := []strategyResponse{}
	for _, s := range strategies {
		out = append(out, strategyResponseFromModel(s))
	}

	c.JSON(200, out)
}

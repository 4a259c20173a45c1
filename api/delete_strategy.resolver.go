package api

import (
	"tradedesk/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) deleteStrategy(c *gin.Context) {
	strategyID, err := uuid.Parse(c.Param("strategyID"))
	if err != nil {
		returnApiError(c, domain.InvalidArgumentError{Reason: "malformed strategy id"})
		return
	}

	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnApiError(c, err)
		return
	}

	err = m.StrategyService.Delete(c.Request.Context(), userAccountID, strategyID)
	if err != nil {
		returnApiError(c, err)
		return
	}

	out := map[string]bool{
		"success": true,
	}

	c.JSON(200, out)
}

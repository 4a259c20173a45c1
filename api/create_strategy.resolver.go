package api

import (
	"github.com/gin-gonic/gin"
)

type createStrategyRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (m ApiHandler) createStrategy(c *gin.Context) {
	var requestBody createStrategyRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnApiError(c, err)
		return
	}

	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnApiError(c, err)
		return
	}

	strategy, err := m.StrategyService.Create(c.Request.Context(), userAccountID, requestBody.Name, requestBody.Description)
	if err != nil {
		returnApiError(c, err)
		return
	}

	c.JSON(200, strategyResponseFromModel(*strategy))
}

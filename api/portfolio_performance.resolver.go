package api

import (
	"time"
	"tradedesk/internal/domain"

	"github.com/gin-gonic/gin"
)

type getPortfolioPerformanceResponse struct {
	PortfolioValue       float64       `json:"portfolioValue"`
	PeriodReturnFraction float64       `json:"periodReturnFraction"`
	DailyReturnMean      float64       `json:"dailyReturnMean"`
	DailyReturnStdev     float64       `json:"dailyReturnStdev"`
	Equity               []equityPoint `json:"equity"`
}

type equityPoint struct {
	Timestamp string  `json:"timestamp"`
	Value     float64 `json:"value"`
}

func portfolioPerformanceResponseFromDomain(in domain.PortfolioPerformance) getPortfolioPerformanceResponse {
	equity := []equityPoint{}
	for _, p := range in.Equity {
		equity = append(equity, equityPoint{
			Timestamp: p.Timestamp.Format(time.RFC3339),
			Value:     p.Value.InexactFloat64(),
		})
	}

	return getPortfolioPerformanceResponse{
		PortfolioValue:       in.PortfolioValue.InexactFloat64(),
		PeriodReturnFraction: in.PeriodReturnFraction,
		DailyReturnMean:      in.DailyReturnMean,
		DailyReturnStdev:     in.DailyReturnStdev,
		Equity:               equity,
	}
}

func (m ApiHandler) getPortfolioPerformance(c *gin.Context) {
	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnApiError(c, err)
		return
	}

	period := c.DefaultQuery("period", "1M")

	performance, err := m.PerformanceService.GetPerformance(c.Request.Context(), userAccountID, period)
	if err != nil {
		returnApiError(c, err)
		return
	}

	c.JSON(200, portfolioPerformanceResponseFromDomain(*performance))
}

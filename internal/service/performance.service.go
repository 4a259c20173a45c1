package service

import (
	"context"
	"fmt"
	"time"
	"tradedesk/internal/domain"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
)

type PerformanceService interface {
	GetPerformance(ctx context.Context, userAccountID uuid.UUID, period string) (*domain.PortfolioPerformance, error)
}

type performanceServiceHandler struct {
	AlpacaClients AlpacaClientProvider
}

func NewPerformanceService(alpacaClients AlpacaClientProvider) PerformanceService {
	return performanceServiceHandler{
		AlpacaClients: alpacaClients,
	}
}

func (h performanceServiceHandler) GetPerformance(ctx context.Context, userAccountID uuid.UUID, period string) (*domain.PortfolioPerformance, error) {
	if period == "" {
		period = "1M"
	}

	client, err := h.AlpacaClients.ForUser(userAccountID)
	if err != nil {
		return nil, err
	}

	history, err := client.GetPortfolioHistory(ctx, period)
	if err != nil {
		return nil, domain.UpstreamUnavailableError{Upstream: "brokerage", Err: err}
	}

	equity := []domain.EquityPoint{}
	for i, value := range history.Equity {
		if i >= len(history.Timestamp) {
			break
		}
		equity = append(equity, domain.EquityPoint{
			Timestamp: time.Unix(history.Timestamp[i], 0).UTC(),
			Value:     value,
		})
	}

	if len(equity) == 0 {
		return nil, domain.UpstreamUnavailableError{
			Upstream: "brokerage",
			Err:      fmt.Errorf("empty portfolio history for period %s", period),
		}
	}

	dailyReturns := []float64{}
	for i := 1; i < len(equity); i++ {
		prev := equity[i-1].Value
		if prev.IsZero() {
			continue
		}
		dailyReturns = append(
			dailyReturns,
			equity[i].Value.Sub(prev).Div(prev).InexactFloat64(),
		)
	}

	out := &domain.PortfolioPerformance{
		PortfolioValue: equity[len(equity)-1].Value,
		Equity:         equity,
	}

	first := equity[0].Value
	if !first.IsZero() {
		out.PeriodReturnFraction = equity[len(equity)-1].Value.Sub(first).Div(first).InexactFloat64()
	}
	if len(dailyReturns) > 0 {
		out.DailyReturnMean, _ = stats.Mean(dailyReturns)
	}
	if len(dailyReturns) > 1 {
		out.DailyReturnStdev, _ = stats.StandardDeviationSample(dailyReturns)
	}

	return out, nil
}

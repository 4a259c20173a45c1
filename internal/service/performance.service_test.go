package service

import (
	"context"
	"errors"
	"testing"
	"tradedesk/internal/domain"
	mock_repository "tradedesk/internal/repository/mocks"
	mock_service "tradedesk/internal/service/mocks"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetPerformance(t *testing.T) {
	t.Run("returns and stats computed from equity curve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
		alpacaClients := mock_service.NewMockAlpacaClientProvider(ctrl)

		userAccountID := uuid.New()
		alpacaClients.EXPECT().ForUser(userAccountID).Return(alpacaRepository, nil)
		alpacaRepository.EXPECT().
			GetPortfolioHistory(gomock.Any(), "1M").
			Return(&alpaca.PortfolioHistory{
				Timestamp: []int64{1700000000, 1700086400, 1700172800},
				Equity: []decimal.Decimal{
					decimal.NewFromInt(10000),
					decimal.NewFromInt(10100),
					decimal.NewFromInt(10201),
				},
			}, nil)

		handler := performanceServiceHandler{AlpacaClients: alpacaClients}

		performance, err := handler.GetPerformance(context.Background(), userAccountID, "1M")
		require.NoError(t, err)

		require.True(t, performance.PortfolioValue.Equal(decimal.NewFromInt(10201)))
		require.InDelta(t, 0.0201, performance.PeriodReturnFraction, 1e-9)
		require.InDelta(t, 0.01, performance.DailyReturnMean, 1e-9)
		require.Len(t, performance.Equity, 3)
	})

	t.Run("empty period defaults to 1M", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
		alpacaClients := mock_service.NewMockAlpacaClientProvider(ctrl)

		userAccountID := uuid.New()
		alpacaClients.EXPECT().ForUser(userAccountID).Return(alpacaRepository, nil)
		alpacaRepository.EXPECT().
			GetPortfolioHistory(gomock.Any(), "1M").
			Return(&alpaca.PortfolioHistory{
				Timestamp: []int64{1700000000},
				Equity:    []decimal.Decimal{decimal.NewFromInt(5000)},
			}, nil)

		handler := performanceServiceHandler{AlpacaClients: alpacaClients}

		performance, err := handler.GetPerformance(context.Background(), userAccountID, "")
		require.NoError(t, err)
		require.Zero(t, performance.PeriodReturnFraction)
		require.Zero(t, performance.DailyReturnStdev)
	})

	t.Run("empty history surfaces as upstream unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
		alpacaClients := mock_service.NewMockAlpacaClientProvider(ctrl)

		userAccountID := uuid.New()
		alpacaClients.EXPECT().ForUser(userAccountID).Return(alpacaRepository, nil)
		alpacaRepository.EXPECT().
			GetPortfolioHistory(gomock.Any(), "1W").
			Return(&alpaca.PortfolioHistory{}, nil)

		handler := performanceServiceHandler{AlpacaClients: alpacaClients}

		_, err := handler.GetPerformance(context.Background(), userAccountID, "1W")
		require.Error(t, err)

		upstreamErr := domain.UpstreamUnavailableError{}
		require.ErrorAs(t, err, &upstreamErr)
	})

	t.Run("no linked brokerage account propagates not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaClients := mock_service.NewMockAlpacaClientProvider(ctrl)

		userAccountID := uuid.New()
		alpacaClients.EXPECT().
			ForUser(userAccountID).
			Return(nil, domain.ErrNotFound)

		handler := performanceServiceHandler{AlpacaClients: alpacaClients}

		_, err := handler.GetPerformance(context.Background(), userAccountID, "1M")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("history call failure wraps as upstream unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
		alpacaClients := mock_service.NewMockAlpacaClientProvider(ctrl)

		userAccountID := uuid.New()
		alpacaClients.EXPECT().ForUser(userAccountID).Return(alpacaRepository, nil)
		alpacaRepository.EXPECT().
			GetPortfolioHistory(gomock.Any(), "1M").
			Return(nil, errors.New("503"))

		handler := performanceServiceHandler{AlpacaClients: alpacaClients}

		_, err := handler.GetPerformance(context.Background(), userAccountID, "1M")
		require.Error(t, err)

		upstreamErr := domain.UpstreamUnavailableError{}
		require.ErrorAs(t, err, &upstreamErr)
		require.Equal(t, "brokerage", upstreamErr.Upstream)
	})
}

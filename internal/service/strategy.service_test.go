package service

import (
	"context"
	"fmt"
	"testing"
	"tradedesk/internal/db/models/postgres/public/model"
	"tradedesk/internal/domain"
	mock_repository "tradedesk/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateStrategy(t *testing.T) {
	t.Run("new strategy starts inactive with no allocation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		strategyRepository := mock_repository.NewMockStrategyRepository(ctrl)

		userAccountID := uuid.New()
		description := "buys winners"

		strategyRepository.EXPECT().
			Add(model.Strategy{
				UserAccountID: userAccountID,
				StrategyName:  "momentum",
				Description:   &description,
				IsActive:      false,
			}).
			DoAndReturn(func(m model.Strategy) (*model.Strategy, error) {
				m.StrategyID = uuid.New()
				return &m, nil
			})

		handler := strategyServiceHandler{StrategyRepository: strategyRepository}

		created, err := handler.Create(context.Background(), userAccountID, "momentum", &description)
		require.NoError(t, err)
		require.Equal(t, "momentum", created.StrategyName)
		require.False(t, created.IsActive)
		require.Nil(t, created.AllocatedAmount)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		strategyRepository := mock_repository.NewMockStrategyRepository(ctrl)

		handler := strategyServiceHandler{StrategyRepository: strategyRepository}

		_, err := handler.Create(context.Background(), uuid.New(), "   ", nil)
		require.Error(t, err)

		invalidErr := domain.InvalidArgumentError{}
		require.ErrorAs(t, err, &invalidErr)
	})
}

func TestUpdateStrategyDetails(t *testing.T) {
	t.Run("nil fields leave current values unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		strategyRepository := mock_repository.NewMockStrategyRepository(ctrl)

		userAccountID := uuid.New()
		description := "buys winners"
		strategy := newStrategy(userAccountID, "momentum", nil, false)
		strategy.Description = &description

		isActive := true
		expected := strategy
		expected.IsActive = true

		strategyRepository.EXPECT().Get(strategy.StrategyID).Return(&strategy, nil)
		strategyRepository.EXPECT().UpdateDetails(expected).Return(&expected, nil)

		handler := strategyServiceHandler{StrategyRepository: strategyRepository}

		updated, err := handler.UpdateDetails(context.Background(), userAccountID, strategy.StrategyID, StrategyDetailsUpdate{
			IsActive: &isActive,
		})
		require.NoError(t, err)
		require.True(t, updated.IsActive)
		require.Equal(t, "momentum", updated.StrategyName)
	})

	t.Run("blank replacement name rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		strategyRepository := mock_repository.NewMockStrategyRepository(ctrl)

		userAccountID := uuid.New()
		strategy := newStrategy(userAccountID, "momentum", nil, false)

		strategyRepository.EXPECT().Get(strategy.StrategyID).Return(&strategy, nil)

		handler := strategyServiceHandler{StrategyRepository: strategyRepository}

		blank := "  "
		_, err := handler.UpdateDetails(context.Background(), userAccountID, strategy.StrategyID, StrategyDetailsUpdate{
			StrategyName: &blank,
		})
		require.Error(t, err)

		invalidErr := domain.InvalidArgumentError{}
		require.ErrorAs(t, err, &invalidErr)
	})

	t.Run("another user's strategy returns forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		strategyRepository := mock_repository.NewMockStrategyRepository(ctrl)

		strategy := newStrategy(uuid.New(), "momentum", nil, false)
		strategyRepository.EXPECT().Get(strategy.StrategyID).Return(&strategy, nil)

		handler := strategyServiceHandler{StrategyRepository: strategyRepository}

		name := "renamed"
		_, err := handler.UpdateDetails(context.Background(), uuid.New(), strategy.StrategyID, StrategyDetailsUpdate{
			StrategyName: &name,
		})
		require.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestDeleteStrategy(t *testing.T) {
	t.Run("owner may delete an allocated strategy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		strategyRepository := mock_repository.NewMockStrategyRepository(ctrl)

		userAccountID := uuid.New()
		strategy := newStrategy(userAccountID, "momentum", decimalPointer(decimal.NewFromInt(3000)), true)

		strategyRepository.EXPECT().Get(strategy.StrategyID).Return(&strategy, nil)
		strategyRepository.EXPECT().Delete(strategy.StrategyID).Return(nil)

		handler := strategyServiceHandler{StrategyRepository: strategyRepository}

		err := handler.Delete(context.Background(), userAccountID, strategy.StrategyID)
		require.NoError(t, err)
	})

	t.Run("unknown strategy returns not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		strategyRepository := mock_repository.NewMockStrategyRepository(ctrl)

		strategyID := uuid.New()
		strategyRepository.EXPECT().
			Get(strategyID).
			Return(nil, fmt.Errorf("strategy %s: %w", strategyID.String(), domain.ErrNotFound))

		handler := strategyServiceHandler{StrategyRepository: strategyRepository}

		err := handler.Delete(context.Background(), uuid.New(), strategyID)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("another user's strategy returns forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		strategyRepository := mock_repository.NewMockStrategyRepository(ctrl)

		strategy := newStrategy(uuid.New(), "momentum", nil, false)
		strategyRepository.EXPECT().Get(strategy.StrategyID).Return(&strategy, nil)

		handler := strategyServiceHandler{StrategyRepository: strategyRepository}

		err := handler.Delete(context.Background(), uuid.New(), strategy.StrategyID)
		require.ErrorIs(t, err, domain.ErrForbidden)
	})
}

package service

import (
	"sync"
	"testing"
	"tradedesk/internal/db/models/postgres/public/model"
	"tradedesk/internal/domain"
	"tradedesk/internal/repository"
	mock_repository "tradedesk/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestForUser(t *testing.T) {
	t.Run("client is built once per credential set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		brokerageAccountRepository := mock_repository.NewMockBrokerageAccountRepository(ctrl)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)

		userAccountID := uuid.New()
		brokerageAccountRepository.EXPECT().
			GetByUser(userAccountID).
			Return(&model.BrokerageAccount{
				UserAccountID: userAccountID,
				Provider:      repository.BrokerageProviderAlpaca,
				APIKey:        "key",
				APISecret:     "secret",
				Endpoint:      "https://paper-api.alpaca.markets",
			}, nil).
			Times(2)

		builds := 0
		handler := alpacaClientProviderHandler{
			BrokerageAccountRepository: brokerageAccountRepository,
			newClient: func(apiKey, apiSecret, endpoint string) repository.AlpacaRepository {
				builds++
				return alpacaRepository
			},
			mu:      &sync.RWMutex{},
			clients: map[string]repository.AlpacaRepository{},
		}

		first, err := handler.ForUser(userAccountID)
		require.NoError(t, err)
		second, err := handler.ForUser(userAccountID)
		require.NoError(t, err)

		require.Equal(t, 1, builds)
		require.Same(t, first, second)
	})

	t.Run("re-linking with new credentials builds a fresh client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		brokerageAccountRepository := mock_repository.NewMockBrokerageAccountRepository(ctrl)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)

		userAccountID := uuid.New()
		gomock.InOrder(
			brokerageAccountRepository.EXPECT().
				GetByUser(userAccountID).
				Return(&model.BrokerageAccount{APIKey: "old", Endpoint: "e"}, nil),
			brokerageAccountRepository.EXPECT().
				GetByUser(userAccountID).
				Return(&model.BrokerageAccount{APIKey: "new", Endpoint: "e"}, nil),
		)

		builds := 0
		handler := alpacaClientProviderHandler{
			BrokerageAccountRepository: brokerageAccountRepository,
			newClient: func(apiKey, apiSecret, endpoint string) repository.AlpacaRepository {
				builds++
				return alpacaRepository
			},
			mu:      &sync.RWMutex{},
			clients: map[string]repository.AlpacaRepository{},
		}

		_, err := handler.ForUser(userAccountID)
		require.NoError(t, err)
		_, err = handler.ForUser(userAccountID)
		require.NoError(t, err)

		require.Equal(t, 2, builds)
	})

	t.Run("no linked account propagates not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		brokerageAccountRepository := mock_repository.NewMockBrokerageAccountRepository(ctrl)

		userAccountID := uuid.New()
		brokerageAccountRepository.EXPECT().
			GetByUser(userAccountID).
			Return(nil, domain.ErrNotFound)

		handler := alpacaClientProviderHandler{
			BrokerageAccountRepository: brokerageAccountRepository,
			mu:                         &sync.RWMutex{},
			clients:                    map[string]repository.AlpacaRepository{},
		}

		_, err := handler.ForUser(userAccountID)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

package service

import (
	"sync"
	"tradedesk/internal/repository"

	"github.com/google/uuid"
)

// AlpacaClientProvider hands out an alpaca client built from the user's
// linked brokerage credentials. Returns domain.ErrNotFound (wrapped) when the
// user has never linked an account.
type AlpacaClientProvider interface {
	ForUser(userAccountID uuid.UUID) (repository.AlpacaRepository, error)
}

type alpacaClientProviderHandler struct {
	BrokerageAccountRepository repository.BrokerageAccountRepository
	newClient                  func(apiKey, apiSecret, endpoint string) repository.AlpacaRepository

	mu *sync.RWMutex
	// cache key: api key + "|" + endpoint, so re-linking with new
	// credentials never serves a stale client
	clients map[string]repository.AlpacaRepository
}

func NewAlpacaClientProvider(brokerageAccountRepository repository.BrokerageAccountRepository) AlpacaClientProvider {
	return alpacaClientProviderHandler{
		BrokerageAccountRepository: brokerageAccountRepository,
		newClient:                  repository.NewAlpacaRepository,
		mu:                         &sync.RWMutex{},
		clients:                    map[string]repository.AlpacaRepository{},
	}
}

func (h alpacaClientProviderHandler) ForUser(userAccountID uuid.UUID) (repository.AlpacaRepository, error) {
	brokerageAccount, err := h.BrokerageAccountRepository.GetByUser(userAccountID)
	if err != nil {
		return nil, err
	}

	cacheKey := brokerageAccount.APIKey + "|" + brokerageAccount.Endpoint

	h.mu.RLock()
	if client, ok := h.clients[cacheKey]; ok {
		h.mu.RUnlock()
		return client, nil
	}
	h.mu.RUnlock()

	client := h.newClient(brokerageAccount.APIKey, brokerageAccount.APISecret, brokerageAccount.Endpoint)

	h.mu.Lock()
	h.clients[cacheKey] = client
	h.mu.Unlock()

	return client, nil
}

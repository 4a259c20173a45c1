package repository

import (
	"context"
	"fmt"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
)

type AlpacaRepository interface {
	GetAccount(ctx context.Context) (*alpaca.Account, error)
	GetPortfolioHistory(ctx context.Context, period string) (*alpaca.PortfolioHistory, error)
}

func NewAlpacaRepository(apiKey, apiSecret string, endpoint string) AlpacaRepository {
	client := alpaca.NewClient(alpaca.ClientOpts{
		APIKey:     apiKey,
		APISecret:  apiSecret,
		BaseURL:    endpoint,
		RetryLimit: 3,
	})

	return &alpacaRepositoryHandler{
		Client: client,
	}
}

type alpacaRepositoryHandler struct {
	Client *alpaca.Client
}

// the alpaca client doesn't take a ctx, so run the call on the side and
// honor cancellation ourselves. a timed-out call's response is discarded.
func (h alpacaRepositoryHandler) GetAccount(ctx context.Context) (*alpaca.Account, error) {
	type result struct {
		acct *alpaca.Account
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		acct, err := h.Client.GetAccount()
		ch <- result{acct, err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("get account: %w", ctx.Err())
	case r := <-ch:
		if r.err != nil {
			return nil, fmt.Errorf("failed to get account: %w", r.err)
		}
		return r.acct, nil
	}
}

func (h alpacaRepositoryHandler) GetPortfolioHistory(ctx context.Context, period string) (*alpaca.PortfolioHistory, error) {
	type result struct {
		history *alpaca.PortfolioHistory
		err     error
	}
	ch := make(chan result, 1)
	go func() {
		history, err := h.Client.GetPortfolioHistory(alpaca.GetPortfolioHistoryRequest{
			Period:    period,
			TimeFrame: alpaca.Day1,
		})
		ch <- result{history, err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("get portfolio history: %w", ctx.Err())
	case r := <-ch:
		if r.err != nil {
			return nil, fmt.Errorf("failed to get portfolio history: %w", r.err)
		}
		return r.history, nil
	}
}

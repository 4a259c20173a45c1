package service

import (
	"context"
	"tradedesk/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountBalanceProvider returns the user's total tradable funds from the
// brokerage. The figure is treated as ground truth at call time; no
// reconciliation against settlement lag is attempted.
type AccountBalanceProvider interface {
	GetAvailableFunds(ctx context.Context, userAccountID uuid.UUID) (decimal.Decimal, error)
}

type brokerageBalanceProvider struct {
	AlpacaClients AlpacaClientProvider
}

func NewAccountBalanceProvider(alpacaClients AlpacaClientProvider) AccountBalanceProvider {
	return brokerageBalanceProvider{
		AlpacaClients: alpacaClients,
	}
}

func (h brokerageBalanceProvider) GetAvailableFunds(ctx context.Context, userAccountID uuid.UUID) (decimal.Decimal, error) {
	client, err := h.AlpacaClients.ForUser(userAccountID)
	if err != nil {
		// no linked account surfaces as NotFound, never as a funds figure
		return decimal.Zero, err
	}

	account, err := client.GetAccount(ctx)
	if err != nil {
		return decimal.Zero, domain.UpstreamUnavailableError{Upstream: "brokerage", Err: err}
	}

	return account.BuyingPower, nil
}

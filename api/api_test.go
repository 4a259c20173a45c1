package api

import (
	"errors"
	"fmt"
	"testing"
	"tradedesk/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_errorStatusCode(t *testing.T) {
	t.Run("invalid argument", func(t *testing.T) {
		require.Equal(t, 400, errorStatusCode(domain.InvalidArgumentError{Reason: "bad"}))
	})

	t.Run("forbidden", func(t *testing.T) {
		require.Equal(t, 403, errorStatusCode(domain.ErrForbidden))
	})

	t.Run("wrapped not found", func(t *testing.T) {
		err := fmt.Errorf("strategy abc: %w", domain.ErrNotFound)
		require.Equal(t, 404, errorStatusCode(err))
	})

	t.Run("insufficient funds", func(t *testing.T) {
		require.Equal(t, 422, errorStatusCode(domain.InsufficientFundsError{
			Requested:    decimal.NewFromInt(7001),
			MaxAllowable: decimal.NewFromInt(7000),
		}))
	})

	t.Run("upstream unavailable", func(t *testing.T) {
		require.Equal(t, 502, errorStatusCode(domain.UpstreamUnavailableError{
			Upstream: "brokerage",
			Err:      errors.New("timeout"),
		}))
	})

	t.Run("persistence failure", func(t *testing.T) {
		require.Equal(t, 500, errorStatusCode(domain.PersistenceFailureError{
			Err: errors.New("deadlock detected"),
		}))
	})

	t.Run("unknown errors default to 500", func(t *testing.T) {
		require.Equal(t, 500, errorStatusCode(errors.New("boom")))
	})
}

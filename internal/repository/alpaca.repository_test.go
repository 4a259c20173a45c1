package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// a brokerage that never answers in time; the wrapper must honor the ctx
// instead of waiting on the client
func newSlowBrokerageServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(250 * time.Millisecond)
		w.WriteHeader(200)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestAlpacaRepositoryHonorsContext(t *testing.T) {
	t.Run("canceled context aborts the account call", func(t *testing.T) {
		server := newSlowBrokerageServer(t)
		handler := NewAlpacaRepository("key", "secret", server.URL)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := handler.GetAccount(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("canceled context aborts the portfolio history call", func(t *testing.T) {
		server := newSlowBrokerageServer(t)
		handler := NewAlpacaRepository("key", "secret", server.URL)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := handler.GetPortfolioHistory(ctx, "1M")
		require.ErrorIs(t, err, context.Canceled)
	})
}

package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

// InvalidArgumentError covers malformed input caught before any I/O.
type InvalidArgumentError struct {
	Reason string
}

func (e InvalidArgumentError) Error() string {
	return e.Reason
}

// InsufficientFundsError is returned when a requested allocation would push
// the user's committed total past their available funds. MaxAllowable is the
// precise ceiling so the UI can render "Maximum available: $X" without a
// second round trip.
type InsufficientFundsError struct {
	Requested    decimal.Decimal
	MaxAllowable decimal.Decimal
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf(
		"insufficient funds: requested allocation $%s exceeds maximum available $%s",
		e.Requested.StringFixed(2),
		e.MaxAllowable.StringFixed(2),
	)
}

// UpstreamUnavailableError means a remote collaborator (brokerage API or
// strategy store) could not be reached or timed out. It is never conflated
// with a failed funds validation.
type UpstreamUnavailableError struct {
	Upstream string
	Err      error
}

func (e UpstreamUnavailableError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Upstream, e.Err)
}

func (e UpstreamUnavailableError) Unwrap() error {
	return e.Err
}

// PersistenceFailureError means a validated write could not be committed.
// The strategy's allocation is unchanged when this is returned.
type PersistenceFailureError struct {
	Err error
}

func (e PersistenceFailureError) Error() string {
	return fmt.Sprintf("failed to persist update: %v", e.Err)
}

func (e PersistenceFailureError) Unwrap() error {
	return e.Err
}

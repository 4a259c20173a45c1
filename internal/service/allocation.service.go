package service

import (
	"context"
	"sync"
	"tradedesk/internal/db/models/postgres/public/model"
	"tradedesk/internal/domain"
	"tradedesk/internal/logger"
	"tradedesk/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocationService owns the fund-allocation invariant: at the moment a
// write commits, the sum of allocatedAmount across all of a user's
// strategies never exceeds the funds available in their brokerage account.
type AllocationService interface {
	GetSummary(ctx context.Context, userAccountID uuid.UUID) (*domain.AllocationSummary, error)
	SetAllocation(ctx context.Context, userAccountID, strategyID uuid.UUID, newAmount decimal.Decimal) (*model.Strategy, error)
}

type allocationServiceHandler struct {
	StrategyRepository repository.StrategyRepository
	BalanceProvider    AccountBalanceProvider

	userLocks keyedMutex
}

func NewAllocationService(
	strategyRepository repository.StrategyRepository,
	balanceProvider AccountBalanceProvider,
) AllocationService {
	return allocationServiceHandler{
		StrategyRepository: strategyRepository,
		BalanceProvider:    balanceProvider,
		userLocks: keyedMutex{
			mu:    &sync.Mutex{},
			locks: map[uuid.UUID]*sync.Mutex{},
		},
	}
}

// keyedMutex serializes allocation writes per user. Two concurrent writes
// for the same user would otherwise both validate against the same stale
// total and jointly over-allocate.
type keyedMutex struct {
	mu    *sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func (k keyedMutex) forUser(userAccountID uuid.UUID) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	if _, ok := k.locks[userAccountID]; !ok {
		k.locks[userAccountID] = &sync.Mutex{}
	}
	return k.locks[userAccountID]
}

func allocatedOrZero(m model.Strategy) decimal.Decimal {
	if m.AllocatedAmount == nil {
		return decimal.Zero
	}
	return *m.AllocatedAmount
}

func (h allocationServiceHandler) GetSummary(ctx context.Context, userAccountID uuid.UUID) (*domain.AllocationSummary, error) {
	log := logger.FromContext(ctx)

	strategies, availableFunds, err := h.fetchLedgerInputs(ctx, userAccountID)
	if err != nil {
		return nil, err
	}

	summary := buildAllocationSummary(strategies, availableFunds)
	if summary.AvailableToAllocate.IsNegative() {
		// valid output - the account balance fell below committed
		// allocations (e.g. market losses). surfaced, never clamped.
		log.Warnf(
			"user %s allocations ($%s) exceed available funds ($%s)",
			userAccountID.String(),
			summary.TotalAllocated.StringFixed(2),
			summary.AvailableFunds.StringFixed(2),
		)
	}

	return summary, nil
}

func (h allocationServiceHandler) SetAllocation(ctx context.Context, userAccountID, strategyID uuid.UUID, newAmount decimal.Decimal) (*model.Strategy, error) {
	if newAmount.IsNegative() {
		return nil, domain.InvalidArgumentError{Reason: "allocatedAmount cannot be negative"}
	}

	lock := h.userLocks.forUser(userAccountID)
	lock.Lock()
	defer lock.Unlock()

	strategy, err := h.StrategyRepository.Get(strategyID)
	if err != nil {
		return nil, err
	}
	if strategy.UserAccountID != userAccountID {
		return nil, domain.ErrForbidden
	}

	// decreasing (or repeating) an allocation can never violate the
	// invariant, so only increases pay for the balance lookup
	if newAmount.GreaterThan(allocatedOrZero(*strategy)) {
		strategies, availableFunds, err := h.fetchLedgerInputs(ctx, userAccountID)
		if err != nil {
			return nil, err
		}

		allocatedToOthers := decimal.Zero
		for _, s := range strategies {
			if s.StrategyID == strategyID {
				continue
			}
			allocatedToOthers = allocatedToOthers.Add(allocatedOrZero(s))
		}

		maxAllowable := availableFunds.Sub(allocatedToOthers)
		if newAmount.GreaterThan(maxAllowable) {
			return nil, domain.InsufficientFundsError{
				Requested:    newAmount,
				MaxAllowable: maxAllowable,
			}
		}
	}

	updated, err := h.StrategyRepository.UpdateAllocation(strategyID, &newAmount)
	if err != nil {
		return nil, domain.PersistenceFailureError{Err: err}
	}

	return updated, nil
}

// fetchLedgerInputs grabs the strategy snapshot and the brokerage balance
// concurrently. The two reads are independent; nothing downstream cares
// which lands first, only that both are present before any comparison.
func (h allocationServiceHandler) fetchLedgerInputs(ctx context.Context, userAccountID uuid.UUID) ([]model.Strategy, decimal.Decimal, error) {
	var (
		wg             sync.WaitGroup
		strategies     []model.Strategy
		strategiesErr  error
		availableFunds decimal.Decimal
		fundsErr       error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		strategies, strategiesErr = h.StrategyRepository.List(userAccountID)
	}()
	go func() {
		defer wg.Done()
		availableFunds, fundsErr = h.BalanceProvider.GetAvailableFunds(ctx, userAccountID)
	}()
	wg.Wait()

	if strategiesErr != nil {
		return nil, decimal.Zero, domain.UpstreamUnavailableError{Upstream: "strategy store", Err: strategiesErr}
	}
	if fundsErr != nil {
		return nil, decimal.Zero, fundsErr
	}

	return strategies, availableFunds, nil
}

// buildAllocationSummary derives every figure from the one snapshot it is
// handed - the per-strategy list, the totals, and the counts always agree.
func buildAllocationSummary(strategies []model.Strategy, availableFunds decimal.Decimal) *domain.AllocationSummary {
	summary := &domain.AllocationSummary{
		AvailableFunds:  availableFunds,
		TotalAllocated:  decimal.Zero,
		Allocations:     []domain.StrategyAllocation{},
		TotalStrategies: len(strategies),
	}

	for _, s := range strategies {
		allocated := allocatedOrZero(s)
		summary.TotalAllocated = summary.TotalAllocated.Add(allocated)
		summary.Allocations = append(summary.Allocations, domain.StrategyAllocation{
			StrategyID:      s.StrategyID,
			StrategyName:    s.StrategyName,
			AllocatedAmount: allocated,
			IsActive:        s.IsActive,
		})

		if s.IsActive {
			summary.ActiveStrategies++
		}
		if allocated.GreaterThan(decimal.Zero) {
			summary.StrategiesWithAllocation++
		}
	}

	summary.AvailableToAllocate = availableFunds.Sub(summary.TotalAllocated)

	return summary
}

package service

import (
	"context"
	"strings"
	"tradedesk/internal/db/models/postgres/public/model"
	"tradedesk/internal/domain"
	"tradedesk/internal/logger"
	"tradedesk/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StrategyService interface {
	List(ctx context.Context, userAccountID uuid.UUID) ([]model.Strategy, error)
	Create(ctx context.Context, userAccountID uuid.UUID, name string, description *string) (*model.Strategy, error)
	UpdateDetails(ctx context.Context, userAccountID, strategyID uuid.UUID, update StrategyDetailsUpdate) (*model.Strategy, error)
	Delete(ctx context.Context, userAccountID, strategyID uuid.UUID) error
}

// StrategyDetailsUpdate carries the optionally-updatable display fields of a
// PATCH. Nil means "leave unchanged". Allocation changes do not travel here -
// they go through AllocationService.SetAllocation.
type StrategyDetailsUpdate struct {
	StrategyName *string
	Description  *string
	IsActive     *bool
}

type strategyServiceHandler struct {
	StrategyRepository repository.StrategyRepository
}

func NewStrategyService(strategyRepository repository.StrategyRepository) StrategyService {
	return strategyServiceHandler{
		StrategyRepository: strategyRepository,
	}
}

func (h strategyServiceHandler) List(ctx context.Context, userAccountID uuid.UUID) ([]model.Strategy, error) {
	return h.StrategyRepository.List(userAccountID)
}

func (h strategyServiceHandler) Create(ctx context.Context, userAccountID uuid.UUID, name string, description *string) (*model.Strategy, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.InvalidArgumentError{Reason: "strategy name cannot be empty"}
	}

	// new strategies start with no reserved capital
	newModel := model.Strategy{
		UserAccountID: userAccountID,
		StrategyName:  name,
		Description:   description,
		IsActive:      false,
	}

	return h.StrategyRepository.Add(newModel)
}

func (h strategyServiceHandler) UpdateDetails(ctx context.Context, userAccountID, strategyID uuid.UUID, update StrategyDetailsUpdate) (*model.Strategy, error) {
	strategy, err := h.StrategyRepository.Get(strategyID)
	if err != nil {
		return nil, err
	}
	if strategy.UserAccountID != userAccountID {
		return nil, domain.ErrForbidden
	}

	if update.StrategyName != nil {
		if strings.TrimSpace(*update.StrategyName) == "" {
			return nil, domain.InvalidArgumentError{Reason: "strategy name cannot be empty"}
		}
		strategy.StrategyName = *update.StrategyName
	}
	if update.Description != nil {
		strategy.Description = update.Description
	}
	if update.IsActive != nil {
		strategy.IsActive = *update.IsActive
	}

	updated, err := h.StrategyRepository.UpdateDetails(*strategy)
	if err != nil {
		return nil, domain.PersistenceFailureError{Err: err}
	}

	return updated, nil
}

func (h strategyServiceHandler) Delete(ctx context.Context, userAccountID, strategyID uuid.UUID) error {
	log := logger.FromContext(ctx)

	strategy, err := h.StrategyRepository.Get(strategyID)
	if err != nil {
		return err
	}
	if strategy.UserAccountID != userAccountID {
		return domain.ErrForbidden
	}

	if err := h.StrategyRepository.Delete(strategyID); err != nil {
		return domain.PersistenceFailureError{Err: err}
	}

	// deleting releases the strategy's reserved capital back to the pool,
	// since it no longer appears in the user's strategy set
	released := allocatedOrZero(*strategy)
	if released.GreaterThan(decimal.Zero) {
		log.Infof("deleted strategy %s released $%s back to available funds", strategyID.String(), released.StringFixed(2))
	}

	return nil
}

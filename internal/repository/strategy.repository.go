package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
	"tradedesk/internal/db/models/postgres/public/model"
	"tradedesk/internal/db/models/postgres/public/table"
	"tradedesk/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StrategyRepository interface {
	List(userAccountID uuid.UUID) ([]model.Strategy, error)
	Get(strategyID uuid.UUID) (*model.Strategy, error)
	Add(m model.Strategy) (*model.Strategy, error)
	UpdateDetails(m model.Strategy) (*model.Strategy, error)
	UpdateAllocation(strategyID uuid.UUID, amount *decimal.Decimal) (*model.Strategy, error)
	Delete(strategyID uuid.UUID) error
}

type strategyRepositoryHandler struct {
	Db *sql.DB
}

func NewStrategyRepository(db *sql.DB) StrategyRepository {
	return strategyRepositoryHandler{db}
}

func (h strategyRepositoryHandler) List(userAccountID uuid.UUID) ([]model.Strategy, error) {
	query := table.Strategy.
		SELECT(table.Strategy.AllColumns).
		WHERE(table.Strategy.UserAccountID.EQ(postgres.UUID(userAccountID))).
		ORDER_BY(table.Strategy.CreatedAt.DESC())

	out := []model.Strategy{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list strategies: %w", err)
	}

	return out, nil
}

func (h strategyRepositoryHandler) Get(strategyID uuid.UUID) (*model.Strategy, error) {
	query := table.Strategy.
		SELECT(table.Strategy.AllColumns).
		WHERE(table.Strategy.StrategyID.EQ(postgres.UUID(strategyID)))

	out := model.Strategy{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("strategy %s: %w", strategyID.String(), domain.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get strategy: %w", err)
	}

	return &out, nil
}

func (h strategyRepositoryHandler) Add(m model.Strategy) (*model.Strategy, error) {
	m.CreatedAt = time.Now().UTC()
	m.ModifiedAt = time.Now().UTC()

	query := table.Strategy.
		INSERT(table.Strategy.MutableColumns).
		MODEL(m).
		RETURNING(table.Strategy.AllColumns)

	out := model.Strategy{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert strategy: %w", err)
	}

	return &out, nil
}

// UpdateDetails writes the display fields only. allocated_amount is
// deliberately excluded - it is mutated exclusively through UpdateAllocation.
func (h strategyRepositoryHandler) UpdateDetails(m model.Strategy) (*model.Strategy, error) {
	m.ModifiedAt = time.Now().UTC()

	query := table.Strategy.
		UPDATE(
			table.Strategy.StrategyName,
			table.Strategy.Description,
			table.Strategy.IsActive,
			table.Strategy.ModifiedAt,
		).
		MODEL(m).
		WHERE(table.Strategy.StrategyID.EQ(postgres.UUID(m.StrategyID))).
		RETURNING(table.Strategy.AllColumns)

	out := model.Strategy{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("strategy %s: %w", m.StrategyID.String(), domain.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to update strategy: %w", err)
	}

	return &out, nil
}

func (h strategyRepositoryHandler) UpdateAllocation(strategyID uuid.UUID, amount *decimal.Decimal) (*model.Strategy, error) {
	m := model.Strategy{
		AllocatedAmount: amount,
		ModifiedAt:      time.Now().UTC(),
	}

	query := table.Strategy.
		UPDATE(
			table.Strategy.AllocatedAmount,
			table.Strategy.ModifiedAt,
		).
		MODEL(m).
		WHERE(table.Strategy.StrategyID.EQ(postgres.UUID(strategyID))).
		RETURNING(table.Strategy.AllColumns)

	out := model.Strategy{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("strategy %s: %w", strategyID.String(), domain.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to update strategy allocation: %w", err)
	}

	return &out, nil
}

func (h strategyRepositoryHandler) Delete(strategyID uuid.UUID) error {
	query := table.Strategy.
		DELETE().
		WHERE(table.Strategy.StrategyID.EQ(postgres.UUID(strategyID)))

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to delete strategy: %w", err)
	}

	return nil
}

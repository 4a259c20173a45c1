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
)

const BrokerageProviderAlpaca = "ALPACA"

type BrokerageAccountRepository interface {
	GetByUser(userAccountID uuid.UUID) (*model.BrokerageAccount, error)
	Upsert(m model.BrokerageAccount) (*model.BrokerageAccount, error)
}

type brokerageAccountRepositoryHandler struct {
	Db *sql.DB
}

func NewBrokerageAccountRepository(db *sql.DB) BrokerageAccountRepository {
	return brokerageAccountRepositoryHandler{db}
}

func (h brokerageAccountRepositoryHandler) GetByUser(userAccountID uuid.UUID) (*model.BrokerageAccount, error) {
	t := table.BrokerageAccount

	query := t.SELECT(t.AllColumns).
		WHERE(t.UserAccountID.EQ(postgres.UUID(userAccountID)))

	out := model.BrokerageAccount{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("no brokerage account linked for user %s: %w", userAccountID.String(), domain.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get brokerage account: %w", err)
	}

	return &out, nil
}

// Upsert replaces the user's linked credentials. One brokerage account per
// user (unique index on user_account_id).
func (h brokerageAccountRepositoryHandler) Upsert(m model.BrokerageAccount) (*model.BrokerageAccount, error) {
	t := table.BrokerageAccount

	m.CreatedAt = time.Now().UTC()
	m.UpdatedAt = time.Now().UTC()

	query := t.INSERT(t.MutableColumns).
		MODEL(m).
		ON_CONFLICT(t.UserAccountID).
		DO_UPDATE(postgres.SET(
			t.Provider.SET(postgres.String(m.Provider)),
			t.APIKey.SET(postgres.String(m.APIKey)),
			t.APISecret.SET(postgres.String(m.APISecret)),
			t.Endpoint.SET(postgres.String(m.Endpoint)),
			t.UpdatedAt.SET(postgres.TimestampT(m.UpdatedAt)),
		)).
		RETURNING(t.AllColumns)

	out := model.BrokerageAccount{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert brokerage account: %w", err)
	}

	return &out, nil
}

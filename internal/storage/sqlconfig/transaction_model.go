package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashbook-server/internal/ledger"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID              uuid.UUID                `db:"id"`
	OwnerID         uuid.UUID                `db:"owner_id"`
	Type            ledger.Type              `db:"type"`
	Amount          decimal.Decimal          `db:"amount"`
	Details         string                   `db:"details"`
	TransferID      string                   `db:"transfer_id"`
	Status          ledger.TransactionStatus `db:"status"`
	TransactionDate time.Time                `db:"transaction_date"`
	AccountID       uuid.UUID                `db:"account_id"`
	HeaderID        uuid.NullUUID            `db:"header_id"`
	TagID           uuid.NullUUID            `db:"tag_id"`
	EntityID        uuid.NullUUID            `db:"entity_id"`
	BudgetID        uuid.NullUUID            `db:"budget_id"`
	CreatedAt       time.Time                `db:"created_at"`
	UpdatedAt       time.Time                `db:"updated_at"`
}

var transactionColumns = []string{
	"id", "owner_id", "type", "amount", "details", "transfer_id", "status",
	"transaction_date", "account_id", "header_id", "tag_id", "entity_id",
	"budget_id", "created_at", "updated_at",
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	OwnerID         uuid.UUID
	Type            ledger.Type
	Amount          decimal.Decimal
	Details         string
	TransferID      string
	Status          ledger.TransactionStatus
	TransactionDate time.Time // defaults to now if zero
	AccountID       uuid.UUID
	HeaderID        uuid.NullUUID
	TagID           uuid.NullUUID
	EntityID        uuid.NullUUID
	BudgetID        uuid.NullUUID
}

// TransactionUpdate lists the columns to overwrite. Unset fields are left alone.
type TransactionUpdate struct {
	Amount          omit.Val[decimal.Decimal]
	Details         omit.Val[string]
	TransferID      omit.Val[string]
	Status          omit.Val[ledger.TransactionStatus]
	TransactionDate omit.Val[time.Time]
	AccountID       omit.Val[uuid.UUID]
	HeaderID        omit.Val[uuid.NullUUID]
	TagID           omit.Val[uuid.NullUUID]
	EntityID        omit.Val[uuid.NullUUID]
	BudgetID        omit.Val[uuid.NullUUID]
}

// ITransactionTable defines the interface for transaction storage operations.
// Every method is scoped to a single owner.
//
//go:generate mockery --name ITransactionTable --inpackage --with-expecter --filename mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, update *TransactionUpdate) (*Transaction, error)
	List(ctx context.Context, query ledger.Query) ([]*Transaction, error)
}

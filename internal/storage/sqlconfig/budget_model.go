package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashbook-server/internal/ledger"
)

// Budget represents a budget record.
type Budget struct {
	ID              uuid.UUID           `db:"id"`
	OwnerID         uuid.UUID           `db:"owner_id"`
	Type            ledger.Type         `db:"type"`
	Amount          decimal.Decimal     `db:"amount"`
	Details         string              `db:"details"`
	TransferID      string              `db:"transfer_id"`
	Status          ledger.BudgetStatus `db:"status"`
	TransactionDate time.Time           `db:"transaction_date"`
	AccountID       uuid.UUID           `db:"account_id"`
	HeaderID        uuid.NullUUID       `db:"header_id"`
	TagID           uuid.NullUUID       `db:"tag_id"`
	EntityID        uuid.NullUUID       `db:"entity_id"`
	CreatedAt       time.Time           `db:"created_at"`
	UpdatedAt       time.Time           `db:"updated_at"`
}

var budgetColumns = []string{
	"id", "owner_id", "type", "amount", "details", "transfer_id", "status",
	"transaction_date", "account_id", "header_id", "tag_id", "entity_id",
	"created_at", "updated_at",
}

// BudgetCreate is the input for creating a new budget.
type BudgetCreate struct {
	OwnerID         uuid.UUID
	Type            ledger.Type
	Amount          decimal.Decimal
	Details         string
	TransferID      string
	Status          ledger.BudgetStatus
	TransactionDate time.Time
	AccountID       uuid.UUID
	HeaderID        uuid.NullUUID
	TagID           uuid.NullUUID
	EntityID        uuid.NullUUID
}

// BudgetUpdate lists the columns to overwrite. Unset fields are left alone.
type BudgetUpdate struct {
	Amount          omit.Val[decimal.Decimal]
	Details         omit.Val[string]
	TransferID      omit.Val[string]
	Status          omit.Val[ledger.BudgetStatus]
	TransactionDate omit.Val[time.Time]
	AccountID       omit.Val[uuid.UUID]
	HeaderID        omit.Val[uuid.NullUUID]
	TagID           omit.Val[uuid.NullUUID]
	EntityID        omit.Val[uuid.NullUUID]
}

// IBudgetTable defines the interface for budget storage operations.
//
//go:generate mockery --name IBudgetTable --inpackage --with-expecter --filename mock_IBudgetTable.go
type IBudgetTable interface {
	FindByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*Budget, error)
	Insert(ctx context.Context, create *BudgetCreate) (*Budget, error)
	Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, update *BudgetUpdate) (*Budget, error)
	List(ctx context.Context, query ledger.Query) ([]*Budget, error)
}

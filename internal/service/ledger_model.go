package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashbook-server/internal/ledger"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

// LedgerRequest is the caller's view of a dual page request. The owner is
// passed separately and never comes from the request itself.
type LedgerRequest struct {
	Filter       ledger.Filter
	Limit        int
	CreditCursor *uuid.UUID
	DebitCursor  *uuid.UUID
}

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID              uuid.UUID
	Type            ledger.Type
	Amount          decimal.Decimal
	Details         string
	TransferID      string
	Status          ledger.TransactionStatus
	TransactionDate time.Time
	AccountID       uuid.UUID
	HeaderID        *uuid.UUID
	TagID           *uuid.UUID
	EntityID        *uuid.UUID
	BudgetID        *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TransactionInput carries the writable fields of a new transaction.
type TransactionInput struct {
	Type            ledger.Type
	Amount          decimal.Decimal
	Details         string
	TransferID      string
	Status          ledger.TransactionStatus
	TransactionDate *time.Time
	AccountID       uuid.UUID
	HeaderID        *uuid.UUID
	TagID           *uuid.UUID
	EntityID        *uuid.UUID
	BudgetID        *uuid.UUID
}

// Budget represents a budget in the service layer.
type Budget struct {
	ID              uuid.UUID
	Type            ledger.Type
	Amount          decimal.Decimal
	Details         string
	TransferID      string
	Status          ledger.BudgetStatus
	TransactionDate time.Time
	AccountID       uuid.UUID
	HeaderID        *uuid.UUID
	TagID           *uuid.UUID
	EntityID        *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type BudgetInput struct {
	Type            ledger.Type
	Amount          decimal.Decimal
	Details         string
	TransferID      string
	TransactionDate time.Time
	AccountID       uuid.UUID
	HeaderID        *uuid.UUID
	TagID           *uuid.UUID
	EntityID        *uuid.UUID
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:              row.ID,
		Type:            row.Type,
		Amount:          row.Amount,
		Details:         row.Details,
		TransferID:      row.TransferID,
		Status:          row.Status,
		TransactionDate: row.TransactionDate,
		AccountID:       row.AccountID,
		HeaderID:        sqlconfig.UUIDPtr(row.HeaderID),
		TagID:           sqlconfig.UUIDPtr(row.TagID),
		EntityID:        sqlconfig.UUIDPtr(row.EntityID),
		BudgetID:        sqlconfig.UUIDPtr(row.BudgetID),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func budgetFromStorage(row *sqlconfig.Budget) Budget {
	return Budget{
		ID:              row.ID,
		Type:            row.Type,
		Amount:          row.Amount,
		Details:         row.Details,
		TransferID:      row.TransferID,
		Status:          row.Status,
		TransactionDate: row.TransactionDate,
		AccountID:       row.AccountID,
		HeaderID:        sqlconfig.UUIDPtr(row.HeaderID),
		TagID:           sqlconfig.UUIDPtr(row.TagID),
		EntityID:        sqlconfig.UUIDPtr(row.EntityID),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

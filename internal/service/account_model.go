package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

// AccountType represents an account type in the service layer.
type AccountType int8

const (
	AccountTypeCash AccountType = iota
	AccountTypeBankCredit
	AccountTypeBankSavings
	AccountTypeCreditCard
	AccountTypeDemat
	AccountTypeLoan
	AccountTypeTrading
	AccountTypeUPI
	AccountTypeOther
)

func (t AccountType) Valid() bool {
	return t >= AccountTypeCash && t <= AccountTypeOther
}

// Account represents an account in the service layer.
type Account struct {
	ID            uuid.UUID
	Name          string
	Type          AccountType
	AccountNumber string
	Details       string
	Status        sqlconfig.AccountStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type AccountInput struct {
	Name          string
	Type          AccountType
	AccountNumber string
	Details       string
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

// Header is a ledger category.
type Header struct {
	ID        uuid.UUID
	Name      string
	Details   string
	Status    sqlconfig.HeaderStatus
	CreatedAt time.Time
}

func accountTypeToStorage(t AccountType) sqlconfig.AccountType {
	return sqlconfig.AccountType(t)
}

func accountTypeFromStorage(t sqlconfig.AccountType) AccountType {
	return AccountType(t)
}

func accountFromStorage(row *sqlconfig.Account) Account {
	return Account{
		ID:            row.ID,
		Name:          row.Name,
		Type:          accountTypeFromStorage(row.Type),
		AccountNumber: row.AccountNumber,
		Details:       row.Details,
		Status:        row.Status,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func headerFromStorage(row *sqlconfig.Header) Header {
	return Header{
		ID:        row.ID,
		Name:      row.Name,
		Details:   row.Details,
		Status:    row.Status,
		CreatedAt: row.CreatedAt,
	}
}

package service

import (
	"context"
	"errors"

	"github.com/carson-networks/cashbook-server/internal/operator/actions"
	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

var (
	// ErrNotFound reports a record, or a referenced record, the owner does not have.
	ErrNotFound = sqlconfig.ErrNotFound
	// ErrConflict reports a unique constraint violation.
	ErrConflict           = sqlconfig.ErrDuplicate
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// actionProcessor runs a write action inside a database transaction.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Budget      *BudgetService
	Account     *AccountService
	Header      *HeaderService
	Tag         *TagService
	Entity      *EntityService
	User        *UserService
}

// NewService creates a new Service. Reads go to store, writes to processor.
func NewService(store *storage.Storage, processor actionProcessor, bcryptCost int) *Service {
	return &Service{
		Transaction: NewTransactionService(store, processor),
		Budget:      NewBudgetService(store, processor),
		Account:     NewAccountService(store, processor),
		Header:      NewHeaderService(store, processor),
		Tag:         NewTagService(store, processor),
		Entity:      NewEntityService(store, processor),
		User:        NewUserService(store, bcryptCost),
	}
}

package service

import (
	"context"
	"fmt"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/operator/actions"
	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

const defaultAccountLimit = 20

// AccountService handles account business logic.
type AccountService struct {
	storage  *storage.Storage
	operator actionProcessor
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage, processor actionProcessor) *AccountService {
	return &AccountService{storage: store, operator: processor}
}

// CreateAccount creates a new ACTIVE account.
func (s *AccountService) CreateAccount(ctx context.Context, ownerID uuid.UUID, input AccountInput) (*Account, error) {
	action := &actions.CreateAccount{Create: sqlconfig.AccountCreate{
		OwnerID:       ownerID,
		Name:          input.Name,
		Type:          accountTypeToStorage(input.Type),
		AccountNumber: input.AccountNumber,
		Details:       input.Details,
		Status:        sqlconfig.AccountStatusActive,
	}}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	result := accountFromStorage(action.Result)
	return &result, nil
}

// GetAccount retrieves an owned account by ID.
func (s *AccountService) GetAccount(ctx context.Context, ownerID, id uuid.UUID) (*Account, error) {
	row, err := s.storage.Accounts.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("account: %w", err)
	}
	result := accountFromStorage(row)
	return &result, nil
}

// ListAccounts returns a page of the owner's accounts, newest first.
func (s *AccountService) ListAccounts(ctx context.Context, ownerID uuid.UUID, cursor *AccountCursor) ([]Account, *AccountCursor, error) {
	limit := defaultAccountLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	filter := &sqlconfig.AccountFilter{
		OwnerID: ownerID,
		Limit:   limit,
		Offset:  offset,
	}

	var nextCursor *AccountCursor
	accounts, err := s.storage.Accounts.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(accounts) > limit {
		accounts = accounts[:limit]
		nextCursor = &AccountCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	convertedAccounts := make([]Account, len(accounts))
	for i, account := range accounts {
		convertedAccounts[i] = accountFromStorage(account)
	}

	return convertedAccounts, nextCursor, nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, ownerID, id uuid.UUID, update sqlconfig.AccountUpdate) (*Account, error) {
	action := &actions.UpdateAccount{OwnerID: ownerID, ID: id, Update: update}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}
	result := accountFromStorage(action.Result)
	return &result, nil
}

func (s *AccountService) UpdateAccountStatus(ctx context.Context, ownerID, id uuid.UUID, status sqlconfig.AccountStatus) (*Account, error) {
	return s.UpdateAccount(ctx, ownerID, id, sqlconfig.AccountUpdate{Status: omit.From(status)})
}

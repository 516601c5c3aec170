package service

import (
	"context"
	"fmt"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/ledger"
	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/operator/actions"
	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage  *storage.Storage
	operator actionProcessor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor actionProcessor) *TransactionService {
	return &TransactionService{storage: store, operator: processor}
}

// ListTransactions returns one CREDIT and one DEBIT page of the owner's
// transactions. Both pages are fetched concurrently and either both succeed
// or the call fails.
func (s *TransactionService) ListTransactions(ctx context.Context, ownerID uuid.UUID, req LedgerRequest) (ledger.Ledger[Transaction], error) {
	defer logging.GetLogData(ctx).AddTiming("listTransactionsMs")()

	find := func(ctx context.Context, q ledger.Query) ([]Transaction, error) {
		rows, err := s.storage.Transactions.List(ctx, q)
		if err != nil {
			return nil, err
		}
		converted := make([]Transaction, len(rows))
		for i, row := range rows {
			converted[i] = transactionFromStorage(row)
		}
		return converted, nil
	}

	return ledger.PaginateBoth(ctx, find, func(t Transaction) uuid.UUID { return t.ID },
		ownerID, req.Filter, req.Limit, req.CreditCursor, req.DebitCursor)
}

// CreateTransaction records a transaction for the owner. Status defaults to PENDING.
func (s *TransactionService) CreateTransaction(ctx context.Context, ownerID uuid.UUID, input TransactionInput) (*Transaction, error) {
	create := sqlconfig.TransactionCreate{
		OwnerID:    ownerID,
		Type:       input.Type,
		Amount:     input.Amount,
		Details:    input.Details,
		TransferID: input.TransferID,
		Status:     input.Status,
		AccountID:  input.AccountID,
		HeaderID:   sqlconfig.NullUUIDFrom(input.HeaderID),
		TagID:      sqlconfig.NullUUIDFrom(input.TagID),
		EntityID:   sqlconfig.NullUUIDFrom(input.EntityID),
		BudgetID:   sqlconfig.NullUUIDFrom(input.BudgetID),
	}
	if input.TransactionDate != nil {
		create.TransactionDate = *input.TransactionDate
	}

	action := &actions.CreateTransaction{Create: create}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	result := transactionFromStorage(action.Result)
	return &result, nil
}

// UpdateTransaction overwrites the set fields. The type is never changed.
func (s *TransactionService) UpdateTransaction(ctx context.Context, ownerID, id uuid.UUID, update sqlconfig.TransactionUpdate) (*Transaction, error) {
	action := &actions.UpdateTransaction{OwnerID: ownerID, ID: id, Update: update}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	result := transactionFromStorage(action.Result)
	return &result, nil
}

func (s *TransactionService) UpdateTransactionStatus(ctx context.Context, ownerID, id uuid.UUID, status ledger.TransactionStatus) (*Transaction, error) {
	return s.UpdateTransaction(ctx, ownerID, id, sqlconfig.TransactionUpdate{Status: omit.From(status)})
}

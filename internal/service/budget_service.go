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

// BudgetService handles budget business logic.
type BudgetService struct {
	storage  *storage.Storage
	operator actionProcessor
}

func NewBudgetService(store *storage.Storage, processor actionProcessor) *BudgetService {
	return &BudgetService{storage: store, operator: processor}
}

// ListBudgets is the budget counterpart of ListTransactions.
func (s *BudgetService) ListBudgets(ctx context.Context, ownerID uuid.UUID, req LedgerRequest) (ledger.Ledger[Budget], error) {
	defer logging.GetLogData(ctx).AddTiming("listBudgetsMs")()

	find := func(ctx context.Context, q ledger.Query) ([]Budget, error) {
		rows, err := s.storage.Budgets.List(ctx, q)
		if err != nil {
			return nil, err
		}
		converted := make([]Budget, len(rows))
		for i, row := range rows {
			converted[i] = budgetFromStorage(row)
		}
		return converted, nil
	}

	return ledger.PaginateBoth(ctx, find, func(b Budget) uuid.UUID { return b.ID },
		ownerID, req.Filter, req.Limit, req.CreditCursor, req.DebitCursor)
}

func (s *BudgetService) CreateBudget(ctx context.Context, ownerID uuid.UUID, input BudgetInput) (*Budget, error) {
	action := &actions.CreateBudget{Create: sqlconfig.BudgetCreate{
		OwnerID:         ownerID,
		Type:            input.Type,
		Amount:          input.Amount,
		Details:         input.Details,
		TransferID:      input.TransferID,
		TransactionDate: input.TransactionDate,
		AccountID:       input.AccountID,
		HeaderID:        sqlconfig.NullUUIDFrom(input.HeaderID),
		TagID:           sqlconfig.NullUUIDFrom(input.TagID),
		EntityID:        sqlconfig.NullUUIDFrom(input.EntityID),
	}}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, fmt.Errorf("create budget: %w", err)
	}
	result := budgetFromStorage(action.Result)
	return &result, nil
}

func (s *BudgetService) UpdateBudget(ctx context.Context, ownerID, id uuid.UUID, update sqlconfig.BudgetUpdate) (*Budget, error) {
	action := &actions.UpdateBudget{OwnerID: ownerID, ID: id, Update: update}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, fmt.Errorf("update budget: %w", err)
	}
	result := budgetFromStorage(action.Result)
	return &result, nil
}

// UpdateBudgetStatus accepts any status from any state.
func (s *BudgetService) UpdateBudgetStatus(ctx context.Context, ownerID, id uuid.UUID, status ledger.BudgetStatus) (*Budget, error) {
	return s.UpdateBudget(ctx, ownerID, id, sqlconfig.BudgetUpdate{Status: omit.From(status)})
}

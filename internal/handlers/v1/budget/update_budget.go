package budget

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/handlers/httperr"
	"github.com/carson-networks/cashbook-server/internal/handlers/request"
	"github.com/carson-networks/cashbook-server/internal/ledger"
	"github.com/carson-networks/cashbook-server/internal/service"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

// UpdateBudgetBody lists the fields to overwrite. An empty string clears an
// optional reference.
type UpdateBudgetBody struct {
	Amount          *string `json:"amount,omitempty"`
	Details         *string `json:"details,omitempty" maxLength:"1000"`
	TransferID      *string `json:"transferId,omitempty" maxLength:"200"`
	Status          *string `json:"status,omitempty" enum:"UNDER_PROCESS,COMPLETE_EXACT,COMPLETE_UNDERPAID,COMPLETE_OVERPAID,PARTIALLY_PAID,STALLED,CANCELLED"`
	TransactionDate *string `json:"transactionDate,omitempty"`
	AccountID       *string `json:"accountId,omitempty"`
	HeaderID        *string `json:"headerId,omitempty"`
	TagID           *string `json:"tagId,omitempty"`
	EntityID        *string `json:"entityId,omitempty"`
}

type UpdateBudgetInput struct {
	ID   string `path:"id" doc:"Budget UUID"`
	Body UpdateBudgetBody
}

type UpdateBudgetStatusInput struct {
	ID   string `path:"id" doc:"Budget UUID"`
	Body struct {
		Status string `json:"status" enum:"UNDER_PROCESS,COMPLETE_EXACT,COMPLETE_UNDERPAID,COMPLETE_OVERPAID,PARTIALLY_PAID,STALLED,CANCELLED"`
	}
}

type UpdateBudgetOutput struct {
	Body Budget
}

type budgetUpdater interface {
	UpdateBudget(ctx context.Context, ownerID, id uuid.UUID, update sqlconfig.BudgetUpdate) (*service.Budget, error)
	UpdateBudgetStatus(ctx context.Context, ownerID, id uuid.UUID, status ledger.BudgetStatus) (*service.Budget, error)
}

type UpdateBudgetHandler struct {
	BudgetService budgetUpdater
}

func NewUpdateBudgetHandler(svc budgetUpdater) *UpdateBudgetHandler {
	return &UpdateBudgetHandler{BudgetService: svc}
}

func (h *UpdateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-budget",
		Method:      http.MethodPut,
		Path:        "/v1/budget/{id}",
		Summary:     "Update budget",
		Tags:        []string{"Budgets"},
		Security:    request.SessionSecurity,
	}, h.handleUpdate)

	huma.Register(api, huma.Operation{
		OperationID: "update-budget-status",
		Method:      http.MethodPatch,
		Path:        "/v1/budget/{id}/status",
		Summary:     "Update budget status",
		Tags:        []string{"Budgets"},
		Security:    request.SessionSecurity,
	}, h.handleStatus)
}

func parseUpdateBudgetBody(body *UpdateBudgetBody) (sqlconfig.BudgetUpdate, error) {
	var update sqlconfig.BudgetUpdate
	if body.Amount != nil {
		amount, err := request.Amount("body.amount", *body.Amount)
		if err != nil {
			return update, err
		}
		update.Amount = omit.From(amount)
	}
	if body.Details != nil {
		update.Details = omit.From(*body.Details)
	}
	if body.TransferID != nil {
		update.TransferID = omit.From(*body.TransferID)
	}
	if body.Status != nil {
		update.Status = omit.From(ledger.BudgetStatus(*body.Status))
	}
	if body.TransactionDate != nil {
		date, err := request.Date("body.transactionDate", *body.TransactionDate)
		if err != nil {
			return update, err
		}
		update.TransactionDate = omit.From(date)
	}
	if body.AccountID != nil {
		id, err := request.UUID("body.accountId", *body.AccountID)
		if err != nil {
			return update, err
		}
		update.AccountID = omit.From(id)
	}

	nullable := []struct {
		location string
		raw      *string
		dest     *omit.Val[uuid.NullUUID]
	}{
		{"body.headerId", body.HeaderID, &update.HeaderID},
		{"body.tagId", body.TagID, &update.TagID},
		{"body.entityId", body.EntityID, &update.EntityID},
	}
	for _, field := range nullable {
		if field.raw == nil {
			continue
		}
		id, err := request.NullableUUID(field.location, *field.raw)
		if err != nil {
			return update, err
		}
		*field.dest = omit.From(id)
	}
	return update, nil
}

func (h *UpdateBudgetHandler) handleUpdate(ctx context.Context, input *UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := request.UUID("path.id", input.ID)
	if err != nil {
		return nil, err
	}
	update, err := parseUpdateBudgetBody(&input.Body)
	if err != nil {
		return nil, err
	}

	updated, err := h.BudgetService.UpdateBudget(ctx, ownerID, id, update)
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to update budget")
	}
	return &UpdateBudgetOutput{Body: fromService(*updated)}, nil
}

func (h *UpdateBudgetHandler) handleStatus(ctx context.Context, input *UpdateBudgetStatusInput) (*UpdateBudgetOutput, error) {
	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := request.UUID("path.id", input.ID)
	if err != nil {
		return nil, err
	}

	updated, err := h.BudgetService.UpdateBudgetStatus(ctx, ownerID, id, ledger.BudgetStatus(input.Body.Status))
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to update budget status")
	}
	return &UpdateBudgetOutput{Body: fromService(*updated)}, nil
}

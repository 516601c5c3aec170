package transaction

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

// UpdateTransactionBody lists the fields to overwrite. Absent fields are kept;
// an empty string clears an optional reference. The type cannot change.
type UpdateTransactionBody struct {
	Amount          *string `json:"amount,omitempty"`
	Details         *string `json:"details,omitempty" maxLength:"1000"`
	TransferID      *string `json:"transferId,omitempty" maxLength:"200"`
	Status          *string `json:"status,omitempty" enum:"PENDING,COMPLETE"`
	TransactionDate *string `json:"transactionDate,omitempty"`
	AccountID       *string `json:"accountId,omitempty"`
	HeaderID        *string `json:"headerId,omitempty"`
	TagID           *string `json:"tagId,omitempty"`
	EntityID        *string `json:"entityId,omitempty"`
	BudgetID        *string `json:"budgetId,omitempty"`
}

type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body UpdateTransactionBody
}

type UpdateTransactionStatusInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body struct {
		Status string `json:"status" enum:"PENDING,COMPLETE"`
	}
}

type UpdateTransactionOutput struct {
	Body Transaction
}

type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, ownerID, id uuid.UUID, update sqlconfig.TransactionUpdate) (*service.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, ownerID, id uuid.UUID, status ledger.TransactionStatus) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /v1/transaction/{id} and
// PATCH /v1/transaction/{id}/status.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/{id}",
		Summary:     "Update transaction",
		Tags:        []string{"Transactions"},
		Security:    request.SessionSecurity,
	}, h.handleUpdate)

	huma.Register(api, huma.Operation{
		OperationID: "update-transaction-status",
		Method:      http.MethodPatch,
		Path:        "/v1/transaction/{id}/status",
		Summary:     "Update transaction status",
		Tags:        []string{"Transactions"},
		Security:    request.SessionSecurity,
	}, h.handleStatus)
}

func parseUpdateTransactionBody(body *UpdateTransactionBody) (sqlconfig.TransactionUpdate, error) {
	var update sqlconfig.TransactionUpdate
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
		update.Status = omit.From(ledger.TransactionStatus(*body.Status))
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
		{"body.budgetId", body.BudgetID, &update.BudgetID},
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

func (h *UpdateTransactionHandler) handleUpdate(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := request.UUID("path.id", input.ID)
	if err != nil {
		return nil, err
	}
	update, err := parseUpdateTransactionBody(&input.Body)
	if err != nil {
		return nil, err
	}

	updated, err := h.TransactionService.UpdateTransaction(ctx, ownerID, id, update)
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to update transaction")
	}
	return &UpdateTransactionOutput{Body: fromService(*updated)}, nil
}

func (h *UpdateTransactionHandler) handleStatus(ctx context.Context, input *UpdateTransactionStatusInput) (*UpdateTransactionOutput, error) {
	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := request.UUID("path.id", input.ID)
	if err != nil {
		return nil, err
	}

	updated, err := h.TransactionService.UpdateTransactionStatus(ctx, ownerID, id, ledger.TransactionStatus(input.Body.Status))
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to update transaction status")
	}
	return &UpdateTransactionOutput{Body: fromService(*updated)}, nil
}

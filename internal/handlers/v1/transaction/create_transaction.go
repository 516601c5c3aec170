package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/handlers/httperr"
	"github.com/carson-networks/cashbook-server/internal/handlers/request"
	"github.com/carson-networks/cashbook-server/internal/ledger"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Type            string `json:"type" enum:"CREDIT,DEBIT"`
	Amount          string `json:"amount" doc:"Positive decimal amount"`
	AccountID       string `json:"accountId" doc:"Account UUID, must belong to the caller"`
	HeaderID        string `json:"headerId,omitempty" doc:"Header UUID"`
	TagID           string `json:"tagId,omitempty"`
	EntityID        string `json:"entityId,omitempty"`
	BudgetID        string `json:"budgetId,omitempty" doc:"Budget UUID"`
	Details         string `json:"details,omitempty" maxLength:"1000"`
	TransferID      string `json:"transferId,omitempty" maxLength:"200"`
	Status          string `json:"status,omitempty" enum:"PENDING,COMPLETE" doc:"Defaults to PENDING"`
	TransactionDate string `json:"transactionDate,omitempty" doc:"RFC3339 or YYYY-MM-DD, defaults to now"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body Transaction
}

type transactionCreator interface {
	CreateTransaction(ctx context.Context, ownerID uuid.UUID, input service.TransactionInput) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Creates a new transaction on one of the caller's accounts.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
		Security:      request.SessionSecurity,
	}, h.handle)
}

func parseCreateTransactionBody(body *CreateTransactionBody) (service.TransactionInput, error) {
	input := service.TransactionInput{
		Type:       ledger.Type(body.Type),
		Details:    body.Details,
		TransferID: body.TransferID,
		Status:     ledger.TransactionStatus(body.Status),
	}
	var err error
	if input.Amount, err = request.Amount("body.amount", body.Amount); err != nil {
		return input, err
	}
	if input.AccountID, err = request.UUID("body.accountId", body.AccountID); err != nil {
		return input, err
	}
	if input.HeaderID, err = request.OptionalUUID("body.headerId", body.HeaderID); err != nil {
		return input, err
	}
	if input.TagID, err = request.OptionalUUID("body.tagId", body.TagID); err != nil {
		return input, err
	}
	if input.EntityID, err = request.OptionalUUID("body.entityId", body.EntityID); err != nil {
		return input, err
	}
	if input.BudgetID, err = request.OptionalUUID("body.budgetId", body.BudgetID); err != nil {
		return input, err
	}
	if input.TransactionDate, err = request.OptionalDate("body.transactionDate", body.TransactionDate); err != nil {
		return input, err
	}
	return input, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	create, err := parseCreateTransactionBody(&input.Body)
	if err != nil {
		return nil, err
	}

	created, err := h.TransactionService.CreateTransaction(ctx, ownerID, create)
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to create transaction")
	}

	return &CreateTransactionOutput{Body: fromService(*created)}, nil
}

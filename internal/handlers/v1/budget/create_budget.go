package budget

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

// CreateBudgetBody is the request body for creating a budget. New budgets
// always start UNDER_PROCESS.
type CreateBudgetBody struct {
	Type            string `json:"type" enum:"CREDIT,DEBIT"`
	Amount          string `json:"amount" doc:"Positive decimal amount"`
	AccountID       string `json:"accountId"`
	TransactionDate string `json:"transactionDate" doc:"Planned date, RFC3339 or YYYY-MM-DD"`
	HeaderID        string `json:"headerId,omitempty"`
	TagID           string `json:"tagId,omitempty"`
	EntityID        string `json:"entityId,omitempty"`
	Details         string `json:"details,omitempty" maxLength:"1000"`
	TransferID      string `json:"transferId,omitempty" maxLength:"200"`
}

type CreateBudgetInput struct {
	Body CreateBudgetBody
}

type CreateBudgetOutput struct {
	Body Budget
}

type budgetCreator interface {
	CreateBudget(ctx context.Context, ownerID uuid.UUID, input service.BudgetInput) (*service.Budget, error)
}

type CreateBudgetHandler struct {
	BudgetService budgetCreator
}

func NewCreateBudgetHandler(svc budgetCreator) *CreateBudgetHandler {
	return &CreateBudgetHandler{BudgetService: svc}
}

func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-budget",
		Method:        http.MethodPost,
		Path:          "/v1/budget",
		Summary:       "Create budget",
		Tags:          []string{"Budgets"},
		DefaultStatus: http.StatusCreated,
		Security:      request.SessionSecurity,
	}, h.handle)
}

func parseCreateBudgetBody(body *CreateBudgetBody) (service.BudgetInput, error) {
	input := service.BudgetInput{
		Type:       ledger.Type(body.Type),
		Details:    body.Details,
		TransferID: body.TransferID,
	}
	var err error
	if input.Amount, err = request.Amount("body.amount", body.Amount); err != nil {
		return input, err
	}
	if input.AccountID, err = request.UUID("body.accountId", body.AccountID); err != nil {
		return input, err
	}
	if input.TransactionDate, err = request.Date("body.transactionDate", body.TransactionDate); err != nil {
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
	return input, nil
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	create, err := parseCreateBudgetBody(&input.Body)
	if err != nil {
		return nil, err
	}

	created, err := h.BudgetService.CreateBudget(ctx, ownerID, create)
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to create budget")
	}
	return &CreateBudgetOutput{Body: fromService(*created)}, nil
}

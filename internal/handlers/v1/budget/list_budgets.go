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

type ListBudgetsInput struct {
	request.LedgerQuery
}

type ListBudgetsResponseBody struct {
	Credit BudgetPage `json:"credit"`
	Debit  BudgetPage `json:"debit"`
}

type ListBudgetsOutput struct {
	Body ListBudgetsResponseBody
}

type budgetLister interface {
	ListBudgets(ctx context.Context, ownerID uuid.UUID, req service.LedgerRequest) (ledger.Ledger[service.Budget], error)
}

// ListBudgetsHandler handles GET /v1/budgets.
type ListBudgetsHandler struct {
	BudgetService budgetLister
}

func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{BudgetService: svc}
}

func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/v1/budgets",
		Summary:     "List budgets",
		Description: "Returns one credit page and one debit page of the caller's budgets.",
		Tags:        []string{"Budgets"},
		Security:    request.SessionSecurity,
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	req, err := input.Parse()
	if err != nil {
		return nil, err
	}

	result, err := h.BudgetService.ListBudgets(ctx, ownerID, req)
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to list budgets")
	}
	return &ListBudgetsOutput{Body: ListBudgetsResponseBody{
		Credit: toPage(result.Credit),
		Debit:  toPage(result.Debit),
	}}, nil
}

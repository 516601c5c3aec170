package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/handlers/httperr"
	"github.com/carson-networks/cashbook-server/internal/handlers/request"
	"github.com/carson-networks/cashbook-server/internal/ledger"
	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	request.LedgerQuery
}

// ListTransactionsResponseBody holds one independent page per partition.
type ListTransactionsResponseBody struct {
	Credit TransactionPage `json:"credit"`
	Debit  TransactionPage `json:"debit"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, ownerID uuid.UUID, req service.LedgerRequest) (ledger.Ledger[service.Transaction], error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns one credit page and one debit page of the caller's transactions. Each page has its own cursor.",
		Tags:        []string{"Transactions"},
		Security:    request.SessionSecurity,
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	req, err := input.Parse()
	if err != nil {
		return nil, err
	}

	result, err := h.TransactionService.ListTransactions(ctx, ownerID, req)
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to list transactions")
	}

	logData := logging.GetLogData(ctx)
	logData.AddData("creditCount", len(result.Credit.Items))
	logData.AddData("debitCount", len(result.Debit.Items))

	return &ListTransactionsOutput{Body: ListTransactionsResponseBody{
		Credit: toPage(result.Credit),
		Debit:  toPage(result.Debit),
	}}, nil
}

func toPage(page ledger.Page[service.Transaction]) TransactionPage {
	out := TransactionPage{
		Items:      make([]Transaction, len(page.Items)),
		NextCursor: idString(page.NextCursor),
	}
	for i, tx := range page.Items {
		out.Items[i] = fromService(tx)
	}
	return out
}

package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/handlers/httperr"
	"github.com/carson-networks/cashbook-server/internal/handlers/request"
	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// ListAccountsInput is the Huma input for listing accounts.
type ListAccountsInput struct {
	Position int `query:"position" minimum:"0" doc:"Offset for pagination"`
	Limit    int `query:"limit" minimum:"1" maximum:"100" default:"20" doc:"Page size"`
}

// ListAccountsCursor is the offset cursor returned for the next page.
type ListAccountsCursor struct {
	Position int `json:"position" doc:"Offset for next page"`
	Limit    int `json:"limit" doc:"Page size"`
}

// ListAccountsResponseBody is the response body for listing accounts.
type ListAccountsResponseBody struct {
	Accounts   []Account           `json:"accounts" doc:"Page of accounts"`
	NextCursor *ListAccountsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListAccountsOutput is the Huma output for listing accounts.
type ListAccountsOutput struct {
	Body ListAccountsResponseBody
}

// accountLister is the interface for listing accounts.
type accountLister interface {
	ListAccounts(ctx context.Context, ownerID uuid.UUID, cursor *service.AccountCursor) ([]service.Account, *service.AccountCursor, error)
}

// ListAccountsHandler handles GET /v1/accounts.
type ListAccountsHandler struct {
	AccountService accountLister
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/v1/accounts",
		Summary:     "List accounts",
		Description: "Returns a paginated list of the caller's accounts, newest first.",
		Tags:        []string{"Accounts"},
		Security:    request.SessionSecurity,
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, input *ListAccountsInput) (*ListAccountsOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("listAccountsMs")
	accounts, next, err := h.AccountService.ListAccounts(ctx, ownerID, &service.AccountCursor{
		Position: input.Position,
		Limit:    input.Limit,
	})
	stopTimer()
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to list accounts")
	}

	logData.AddData("accountCount", len(accounts))

	resp := ListAccountsResponseBody{
		Accounts: make([]Account, len(accounts)),
	}
	for i, acc := range accounts {
		resp.Accounts[i] = fromService(acc)
	}
	if next != nil {
		resp.NextCursor = &ListAccountsCursor{Position: next.Position, Limit: next.Limit}
	}

	return &ListAccountsOutput{Body: resp}, nil
}

package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/handlers/httperr"
	"github.com/carson-networks/cashbook-server/internal/handlers/request"
	"github.com/carson-networks/cashbook-server/internal/service"
)

type GetAccountInput struct {
	ID string `path:"id" doc:"Account UUID"`
}

type GetAccountOutput struct {
	Body Account
}

type accountGetter interface {
	GetAccount(ctx context.Context, ownerID, id uuid.UUID) (*service.Account, error)
}

// GetAccountHandler handles GET /v1/account/{id}.
type GetAccountHandler struct {
	AccountService accountGetter
}

func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/account/{id}",
		Summary:     "Get an account",
		Tags:        []string{"Accounts"},
		Security:    request.SessionSecurity,
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := request.UUID("path.id", input.ID)
	if err != nil {
		return nil, err
	}

	found, err := h.AccountService.GetAccount(ctx, ownerID, id)
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to get account")
	}
	return &GetAccountOutput{Body: fromService(*found)}, nil
}

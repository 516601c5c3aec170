package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/handlers/httperr"
	"github.com/carson-networks/cashbook-server/internal/handlers/request"
)

type MeOutput struct {
	Body User
}

// MeHandler handles GET /v1/user/me.
type MeHandler struct {
	UserService userService
}

func NewMeHandler(svc userService) *MeHandler {
	return &MeHandler{UserService: svc}
}

func (h *MeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-me",
		Method:      http.MethodGet,
		Path:        "/v1/user/me",
		Summary:     "Current user",
		Tags:        []string{"Users"},
		Security:    request.SessionSecurity,
	}, h.handle)
}

func (h *MeHandler) handle(ctx context.Context, _ *struct{}) (*MeOutput, error) {
	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	u, err := h.UserService.GetUser(ctx, ownerID)
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to load user")
	}
	return &MeOutput{Body: fromService(*u)}, nil
}

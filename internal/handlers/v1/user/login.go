package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/handlers/httperr"
	"github.com/carson-networks/cashbook-server/internal/logging"
)

type LoginInput struct {
	Body struct {
		Email    string `json:"email" maxLength:"254"`
		Password string `json:"password"`
	}
}

// LoginHandler handles POST /v1/auth/login.
type LoginHandler struct {
	UserService userService
	Sessions    sessionManager
}

func NewLoginHandler(svc userService, sessions sessionManager) *LoginHandler {
	return &LoginHandler{UserService: svc, Sessions: sessions}
}

func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/auth/login",
		Summary:     "Log in",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*SessionOutput, error) {
	u, err := h.UserService.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to log in")
	}
	logging.GetLogData(ctx).AddData("userID", u.ID.String())

	out, err := sessionOutput(h.Sessions, u)
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to start session")
	}
	return out, nil
}

package user

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/auth"
	"github.com/carson-networks/cashbook-server/internal/handlers/httperr"
)

type LogoutInput struct {
	Token         string `cookie:"token" doc:"Session cookie"`
	Authorization string `header:"Authorization" doc:"Bearer session token"`
}

type LogoutOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
}

// LogoutHandler handles POST /v1/auth/logout.
type LogoutHandler struct {
	Sessions sessionManager
}

func NewLogoutHandler(sessions sessionManager) *LogoutHandler {
	return &LogoutHandler{Sessions: sessions}
}

func (h *LogoutHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "logout",
		Method:        http.MethodPost,
		Path:          "/v1/auth/logout",
		Summary:       "Log out",
		Description:   "Revokes the current session, if still valid, and always clears the cookie.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *LogoutHandler) handle(ctx context.Context, input *LogoutInput) (*LogoutOutput, error) {
	token := input.Token
	if token == "" {
		if bearer, ok := strings.CutPrefix(input.Authorization, "Bearer "); ok {
			token = strings.TrimSpace(bearer)
		}
	}
	if token == "" {
		return &LogoutOutput{SetCookie: h.Sessions.ClearCookie()}, nil
	}

	session, err := h.Sessions.Verify(ctx, token)
	switch {
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrRevokedToken):
		// expired, forged or already logged out: nothing left to revoke
	case err != nil:
		return nil, httperr.FromService(ctx, err, "failed to log out")
	default:
		if err := h.Sessions.Revoke(ctx, session); err != nil {
			return nil, httperr.FromService(ctx, err, "failed to log out")
		}
	}
	return &LogoutOutput{SetCookie: h.Sessions.ClearCookie()}, nil
}

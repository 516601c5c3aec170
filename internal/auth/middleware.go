package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/logging"
)

// SecurityScheme is the name operations list in their Security requirement.
const SecurityScheme = "cookieAuth"

type sessionKey struct{}

// SessionFrom returns the verified session of the request, if any.
func SessionFrom(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}

// OwnerID returns the authenticated owner of the request.
func OwnerID(ctx context.Context) (uuid.UUID, bool) {
	s, ok := SessionFrom(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return s.OwnerID, true
}

// Middleware rejects requests to secured operations that do not carry a
// valid session, and stores the session on the context of those that do.
func Middleware(api huma.API, sessions *SessionManager) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !requiresSession(ctx.Operation()) {
			next(ctx)
			return
		}

		token := tokenFrom(ctx)
		if token == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "unauthorized")
			return
		}

		session, err := sessions.Verify(ctx.Context(), token)
		if err != nil {
			if !errors.Is(err, ErrInvalidToken) && !errors.Is(err, ErrRevokedToken) {
				logging.GetLogData(ctx.Context()).AddData("authError", err.Error())
			}
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "unauthorized")
			return
		}

		logging.GetLogData(ctx.Context()).AddData("ownerId", session.OwnerID.String())
		next(huma.WithValue(ctx, sessionKey{}, session))
	}
}

func requiresSession(op *huma.Operation) bool {
	if op == nil {
		return false
	}
	for _, requirement := range op.Security {
		if _, ok := requirement[SecurityScheme]; ok {
			return true
		}
	}
	return false
}

// tokenFrom reads the session cookie, falling back to a bearer header.
func tokenFrom(ctx huma.Context) string {
	if header := ctx.Header("Cookie"); header != "" {
		if cookies, err := http.ParseCookie(header); err == nil {
			for _, c := range cookies {
				if c.Name == CookieName && c.Value != "" {
					return c.Value
				}
			}
		}
	}
	if bearer, ok := strings.CutPrefix(ctx.Header("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(bearer)
	}
	return ""
}

// Package handlertest wires a humatest API with the session middleware so
// handler tests exercise the same authentication path as the server.
package handlertest

import (
	"context"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashbook-server/internal/auth"
)

type revocations map[string]struct{}

func (r revocations) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	r[tokenID] = struct{}{}
	return nil
}

func (r revocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := r[tokenID]
	return ok, nil
}

// NewSessions returns a session manager backed by an in-memory revocation list.
func NewSessions() *auth.SessionManager {
	return auth.NewSessionManager("handlertest-secret", time.Hour, false, revocations{})
}

// NewAPI returns a test API with the session middleware installed.
func NewAPI(t *testing.T, sessions *auth.SessionManager) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(auth.Middleware(api, sessions))
	return api
}

// Bearer issues a session for ownerID and returns it as a humatest header argument.
func Bearer(t *testing.T, sessions *auth.SessionManager, ownerID uuid.UUID) string {
	t.Helper()
	session, err := sessions.Issue(ownerID)
	require.NoError(t, err)
	return "Authorization: Bearer " + session.Token
}

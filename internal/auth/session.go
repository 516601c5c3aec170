package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie carrying the session token.
const CookieName = "token"

var (
	ErrInvalidToken = errors.New("auth: invalid session token")
	ErrRevokedToken = errors.New("auth: session revoked")
)

// Claims is the JWT payload. The subject is the owner id and the token id
// is the handle used for revocation.
type Claims struct {
	jwt.RegisteredClaims
}

// Session is a verified or freshly issued session.
type Session struct {
	OwnerID   uuid.UUID
	TokenID   string
	ExpiresAt time.Time
	Token     string
}

type revocationList interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// SessionManager issues, verifies and revokes HS256 session tokens.
type SessionManager struct {
	secret      []byte
	ttl         time.Duration
	secure      bool
	revocations revocationList
	now         func() time.Time
}

func NewSessionManager(secret string, ttl time.Duration, production bool, revocations revocationList) *SessionManager {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &SessionManager{
		secret:      []byte(secret),
		ttl:         ttl,
		secure:      production,
		revocations: revocations,
		now:         time.Now,
	}
}

func (m *SessionManager) Issue(ownerID uuid.UUID) (*Session, error) {
	tokenID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("uuid.NewV4: %w", err)
	}

	now := m.now()
	expiresAt := now.Add(m.ttl)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ownerID.String(),
			ID:        tokenID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("jwt.SignedString: %w", err)
	}

	return &Session{
		OwnerID:   ownerID,
		TokenID:   tokenID.String(),
		ExpiresAt: expiresAt,
		Token:     token,
	}, nil
}

// Verify checks the signature, expiry and revocation state of token.
func (m *SessionManager) Verify(ctx context.Context, token string) (*Session, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	ownerID, err := uuid.FromString(claims.Subject)
	if err != nil || ownerID == uuid.Nil || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	revoked, err := m.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("revocations.IsRevoked: %w", err)
	}
	if revoked {
		return nil, ErrRevokedToken
	}

	return &Session{
		OwnerID:   ownerID,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
		Token:     token,
	}, nil
}

// Revoke blocks the session for the rest of its lifetime.
func (m *SessionManager) Revoke(ctx context.Context, session *Session) error {
	remaining := session.ExpiresAt.Sub(m.now())
	if remaining <= 0 {
		return nil
	}
	return m.revocations.Revoke(ctx, session.TokenID, remaining)
}

// Cookie builds the session cookie for s.
func (m *SessionManager) Cookie(s *Session) http.Cookie {
	cookie := m.baseCookie()
	cookie.Value = s.Token
	cookie.Expires = s.ExpiresAt
	cookie.MaxAge = int(s.ExpiresAt.Sub(m.now()).Seconds())
	return cookie
}

// ClearCookie builds a cookie that removes the session cookie.
func (m *SessionManager) ClearCookie() http.Cookie {
	cookie := m.baseCookie()
	cookie.Expires = time.Unix(0, 0)
	cookie.MaxAge = -1
	return cookie
}

func (m *SessionManager) baseCookie() http.Cookie {
	cookie := http.Cookie{
		Name:     CookieName,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if m.secure {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteStrictMode
	}
	return cookie
}

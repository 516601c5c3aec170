// Package user serves registration, login, logout and the caller's profile.
package user

import (
	"context"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/auth"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// User is the API response model for a user profile.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email" format:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	CompanyName string `json:"companyName"`
	Country     string `json:"country"`
	CreatedAt   string `json:"createdAt"`
}

// SessionResponse is returned by register and login. The token is also set
// as the session cookie.
type SessionResponse struct {
	User      User   `json:"user"`
	Token     string `json:"token" doc:"Session token, usable as a Bearer credential"`
	ExpiresAt string `json:"expiresAt"`
}

// SessionOutput carries the session cookie alongside the body.
type SessionOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      SessionResponse
}

type userService interface {
	Register(ctx context.Context, input service.RegisterInput) (*service.User, error)
	Login(ctx context.Context, email, password string) (*service.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*service.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input service.ProfileUpdate) (*service.User, error)
}

type sessionManager interface {
	Issue(ownerID uuid.UUID) (*auth.Session, error)
	Verify(ctx context.Context, token string) (*auth.Session, error)
	Revoke(ctx context.Context, session *auth.Session) error
	Cookie(s *auth.Session) http.Cookie
	ClearCookie() http.Cookie
}

func fromService(u service.User) User {
	return User{
		ID:          u.ID.String(),
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Phone:       u.Phone,
		CompanyName: u.CompanyName,
		Country:     u.Country,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}

func sessionOutput(sessions sessionManager, u *service.User) (*SessionOutput, error) {
	session, err := sessions.Issue(u.ID)
	if err != nil {
		return nil, err
	}
	return &SessionOutput{
		SetCookie: sessions.Cookie(session),
		Body: SessionResponse{
			User:      fromService(*u),
			Token:     session.Token,
			ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
		},
	}, nil
}

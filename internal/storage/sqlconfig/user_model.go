package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// User represents a registered user.
type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Phone        string    `db:"phone"`
	CompanyName  string    `db:"company_name"`
	Country      string    `db:"country"`
	CreatedAt    time.Time `db:"created_at"`
}

var userColumns = []string{
	"id", "email", "password_hash", "first_name", "last_name", "phone",
	"company_name", "country", "created_at",
}

type UserCreate struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	CompanyName  string
	Country      string
}

// UserUpdate lists the profile columns to overwrite.
type UserUpdate struct {
	FirstName omit.Val[string]
	LastName  omit.Val[string]
}

// IUserTable defines the interface for user storage operations.
// Insert returns ErrDuplicate when the email is already registered.
//
//go:generate mockery --name IUserTable --inpackage --with-expecter --filename mock_IUserTable.go
type IUserTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Insert(ctx context.Context, create *UserCreate) (*User, error)
	Update(ctx context.Context, id uuid.UUID, update *UserUpdate) (*User, error)
}

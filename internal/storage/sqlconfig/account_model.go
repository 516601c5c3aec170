package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// Account represents an account record.
type Account struct {
	ID            uuid.UUID     `db:"id"`
	OwnerID       uuid.UUID     `db:"owner_id"`
	Name          string        `db:"name"`
	Type          AccountType   `db:"type"`
	AccountNumber string        `db:"account_number"`
	Details       string        `db:"details"`
	Status        AccountStatus `db:"status"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}

var accountColumns = []string{
	"id", "owner_id", "name", "type", "account_number", "details", "status",
	"created_at", "updated_at",
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	OwnerID       uuid.UUID
	Name          string
	Type          AccountType
	AccountNumber string
	Details       string
	Status        AccountStatus
}

// AccountUpdate lists the columns to overwrite. Unset fields are left alone.
type AccountUpdate struct {
	Name          omit.Val[string]
	Type          omit.Val[AccountType]
	AccountNumber omit.Val[string]
	Details       omit.Val[string]
	Status        omit.Val[AccountStatus]
}

// AccountFilter specifies filters for listing accounts.
type AccountFilter struct {
	OwnerID uuid.UUID
	Limit   int
	Offset  int
}

// IAccountTable defines the interface for account storage operations.
// This abstraction allows swapping the implementation without changing callers.
//
//go:generate mockery --name IAccountTable --inpackage --with-expecter --filename mock_IAccountTable.go
type IAccountTable interface {
	FindByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (*Account, error)
	Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, update *AccountUpdate) (*Account, error)
	List(ctx context.Context, filter *AccountFilter) ([]*Account, error)
}

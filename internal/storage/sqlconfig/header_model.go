package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Header represents a header (ledger category) record.
type Header struct {
	ID        uuid.UUID    `db:"id"`
	OwnerID   uuid.UUID    `db:"owner_id"`
	Name      string       `db:"name"`
	Details   string       `db:"details"`
	Status    HeaderStatus `db:"status"`
	CreatedAt time.Time    `db:"created_at"`
}

var headerColumns = []string{"id", "owner_id", "name", "details", "status", "created_at"}

type HeaderCreate struct {
	OwnerID uuid.UUID
	Name    string
	Details string
	Status  HeaderStatus
}

//go:generate mockery --name IHeaderTable --inpackage --with-expecter --filename mock_IHeaderTable.go
type IHeaderTable interface {
	FindByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*Header, error)
	Insert(ctx context.Context, create *HeaderCreate) (*Header, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*Header, error)
	UpdateStatus(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, status HeaderStatus) (*Header, error)
}

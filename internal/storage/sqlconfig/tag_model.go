package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// Tag is a free-form label a ledger row can carry.
type Tag struct {
	ID        uuid.UUID `db:"id"`
	OwnerID   uuid.UUID `db:"owner_id"`
	Name      string    `db:"name"`
	Details   string    `db:"details"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var tagColumns = []string{"id", "owner_id", "name", "details", "created_at", "updated_at"}

type TagCreate struct {
	OwnerID uuid.UUID
	Name    string
	Details string
}

type TagUpdate struct {
	Name    omit.Val[string]
	Details omit.Val[string]
}

//go:generate mockery --name ITagTable --inpackage --with-expecter --filename mock_ITagTable.go
type ITagTable interface {
	FindByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*Tag, error)
	Insert(ctx context.Context, create *TagCreate) (*Tag, error)
	Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, update *TagUpdate) (*Tag, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*Tag, error)
}

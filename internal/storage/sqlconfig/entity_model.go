package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// Entity is a counterparty money comes from or goes to.
type Entity struct {
	ID         uuid.UUID `db:"id"`
	OwnerID    uuid.UUID `db:"owner_id"`
	Name       string    `db:"name"`
	GST        string    `db:"gst"`
	PAN        string    `db:"pan"`
	Address    string    `db:"address"`
	State      string    `db:"state"`
	PIN        string    `db:"pin"`
	Country    string    `db:"country"`
	NationalID string    `db:"national_id"`
	Details    string    `db:"details"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

var entityColumns = []string{
	"id", "owner_id", "name", "gst", "pan", "address", "state", "pin",
	"country", "national_id", "details", "created_at", "updated_at",
}

type EntityCreate struct {
	OwnerID    uuid.UUID
	Name       string
	GST        string
	PAN        string
	Address    string
	State      string
	PIN        string
	Country    string
	NationalID string
	Details    string
}

// EntityUpdate lists the columns to overwrite. Unset fields are left alone.
type EntityUpdate struct {
	Name       omit.Val[string]
	GST        omit.Val[string]
	PAN        omit.Val[string]
	Address    omit.Val[string]
	State      omit.Val[string]
	PIN        omit.Val[string]
	Country    omit.Val[string]
	NationalID omit.Val[string]
	Details    omit.Val[string]
}

//go:generate mockery --name IEntityTable --inpackage --with-expecter --filename mock_IEntityTable.go
type IEntityTable interface {
	FindByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*Entity, error)
	Insert(ctx context.Context, create *EntityCreate) (*Entity, error)
	Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, update *EntityUpdate) (*Entity, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*Entity, error)
}

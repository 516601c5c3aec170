package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/operator/actions"
	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

// Entity is a source or destination of money: a vendor, customer or person.
type Entity struct {
	ID         uuid.UUID
	Name       string
	GST        string
	PAN        string
	Address    string
	State      string
	PIN        string
	Country    string
	NationalID string
	Details    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EntityInput is the data needed to create an entity.
type EntityInput struct {
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

type EntityService struct {
	storage  *storage.Storage
	operator actionProcessor
}

func NewEntityService(store *storage.Storage, processor actionProcessor) *EntityService {
	return &EntityService{storage: store, operator: processor}
}

func (s *EntityService) CreateEntity(ctx context.Context, ownerID uuid.UUID, input EntityInput) (*Entity, error) {
	action := &actions.CreateEntity{Create: sqlconfig.EntityCreate{
		OwnerID:    ownerID,
		Name:       input.Name,
		GST:        input.GST,
		PAN:        input.PAN,
		Address:    input.Address,
		State:      input.State,
		PIN:        input.PIN,
		Country:    input.Country,
		NationalID: input.NationalID,
		Details:    input.Details,
	}}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, fmt.Errorf("create entity: %w", err)
	}
	result := entityFromStorage(action.Result)
	return &result, nil
}

// ListEntities returns every entity of the owner, ordered by name.
func (s *EntityService) ListEntities(ctx context.Context, ownerID uuid.UUID) ([]Entity, error) {
	rows, err := s.storage.Entities.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	entities := make([]Entity, len(rows))
	for i, row := range rows {
		entities[i] = entityFromStorage(row)
	}
	return entities, nil
}

func (s *EntityService) UpdateEntity(ctx context.Context, ownerID, id uuid.UUID, update sqlconfig.EntityUpdate) (*Entity, error) {
	action := &actions.UpdateEntity{OwnerID: ownerID, ID: id, Update: update}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, fmt.Errorf("update entity: %w", err)
	}
	result := entityFromStorage(action.Result)
	return &result, nil
}

func entityFromStorage(row *sqlconfig.Entity) Entity {
	return Entity{
		ID:         row.ID,
		Name:       row.Name,
		GST:        row.GST,
		PAN:        row.PAN,
		Address:    row.Address,
		State:      row.State,
		PIN:        row.PIN,
		Country:    row.Country,
		NationalID: row.NationalID,
		Details:    row.Details,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

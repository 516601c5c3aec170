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

// Tag is a free-form label for ledger rows.
type Tag struct {
	ID        uuid.UUID
	Name      string
	Details   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TagService struct {
	storage  *storage.Storage
	operator actionProcessor
}

func NewTagService(store *storage.Storage, processor actionProcessor) *TagService {
	return &TagService{storage: store, operator: processor}
}

func (s *TagService) CreateTag(ctx context.Context, ownerID uuid.UUID, name, details string) (*Tag, error) {
	action := &actions.CreateTag{Create: sqlconfig.TagCreate{
		OwnerID: ownerID,
		Name:    name,
		Details: details,
	}}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}
	result := tagFromStorage(action.Result)
	return &result, nil
}

// ListTags returns every tag of the owner, ordered by name.
func (s *TagService) ListTags(ctx context.Context, ownerID uuid.UUID) ([]Tag, error) {
	rows, err := s.storage.Tags.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	tags := make([]Tag, len(rows))
	for i, row := range rows {
		tags[i] = tagFromStorage(row)
	}
	return tags, nil
}

func (s *TagService) UpdateTag(ctx context.Context, ownerID, id uuid.UUID, update sqlconfig.TagUpdate) (*Tag, error) {
	action := &actions.UpdateTag{OwnerID: ownerID, ID: id, Update: update}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, fmt.Errorf("update tag: %w", err)
	}
	result := tagFromStorage(action.Result)
	return &result, nil
}

func tagFromStorage(row *sqlconfig.Tag) Tag {
	return Tag{
		ID:        row.ID,
		Name:      row.Name,
		Details:   row.Details,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

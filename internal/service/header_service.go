package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/operator/actions"
	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

type HeaderService struct {
	storage  *storage.Storage
	operator actionProcessor
}

func NewHeaderService(store *storage.Storage, processor actionProcessor) *HeaderService {
	return &HeaderService{storage: store, operator: processor}
}

func (s *HeaderService) CreateHeader(ctx context.Context, ownerID uuid.UUID, name, details string) (*Header, error) {
	action := &actions.CreateHeader{Create: sqlconfig.HeaderCreate{
		OwnerID: ownerID,
		Name:    name,
		Details: details,
		Status:  sqlconfig.HeaderStatusActive,
	}}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, fmt.Errorf("create header: %w", err)
	}
	result := headerFromStorage(action.Result)
	return &result, nil
}

// ListHeaders returns every header of the owner, ordered by name.
func (s *HeaderService) ListHeaders(ctx context.Context, ownerID uuid.UUID) ([]Header, error) {
	rows, err := s.storage.Headers.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	headers := make([]Header, len(rows))
	for i, row := range rows {
		headers[i] = headerFromStorage(row)
	}
	return headers, nil
}

func (s *HeaderService) UpdateHeaderStatus(ctx context.Context, ownerID, id uuid.UUID, status sqlconfig.HeaderStatus) (*Header, error) {
	action := &actions.UpdateHeaderStatus{OwnerID: ownerID, ID: id, Status: status}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, fmt.Errorf("update header: %w", err)
	}
	result := headerFromStorage(action.Result)
	return &result, nil
}

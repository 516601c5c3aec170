package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

type CreateEntity struct {
	Create sqlconfig.EntityCreate

	Result *sqlconfig.Entity
}

func (c *CreateEntity) Perform(ctx context.Context, writer *storage.Writer) error {
	entity, err := writer.Entities.Insert(ctx, &c.Create)
	if err != nil {
		return fmt.Errorf("insert entity: %w", err)
	}
	c.Result = entity
	return nil
}

type UpdateEntity struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
	Update  sqlconfig.EntityUpdate

	Result *sqlconfig.Entity
}

func (u *UpdateEntity) Perform(ctx context.Context, writer *storage.Writer) error {
	entity, err := writer.Entities.Update(ctx, u.OwnerID, u.ID, &u.Update)
	if err != nil {
		return wrapReference("entity", err)
	}
	u.Result = entity
	return nil
}

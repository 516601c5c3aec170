package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

type CreateTag struct {
	Create sqlconfig.TagCreate

	Result *sqlconfig.Tag
}

func (c *CreateTag) Perform(ctx context.Context, writer *storage.Writer) error {
	tag, err := writer.Tags.Insert(ctx, &c.Create)
	if err != nil {
		return fmt.Errorf("insert tag: %w", err)
	}
	c.Result = tag
	return nil
}

type UpdateTag struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
	Update  sqlconfig.TagUpdate

	Result *sqlconfig.Tag
}

func (u *UpdateTag) Perform(ctx context.Context, writer *storage.Writer) error {
	tag, err := writer.Tags.Update(ctx, u.OwnerID, u.ID, &u.Update)
	if err != nil {
		return wrapReference("tag", err)
	}
	u.Result = tag
	return nil
}

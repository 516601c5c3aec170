package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

type CreateHeader struct {
	Create sqlconfig.HeaderCreate

	Result *sqlconfig.Header
}

func (c *CreateHeader) Perform(ctx context.Context, writer *storage.Writer) error {
	header, err := writer.Headers.Insert(ctx, &c.Create)
	if err != nil {
		return fmt.Errorf("insert header: %w", err)
	}
	c.Result = header
	return nil
}

type UpdateHeaderStatus struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
	Status  sqlconfig.HeaderStatus

	Result *sqlconfig.Header
}

func (u *UpdateHeaderStatus) Perform(ctx context.Context, writer *storage.Writer) error {
	header, err := writer.Headers.UpdateStatus(ctx, u.OwnerID, u.ID, u.Status)
	if err != nil {
		return wrapReference("header", err)
	}
	u.Result = header
	return nil
}

package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

type CreateAccount struct {
	Create sqlconfig.AccountCreate

	Result *sqlconfig.Account
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.Accounts.Insert(ctx, &c.Create)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	c.Result = account
	return nil
}

// UpdateAccount overwrites the set fields of an owned account. A status
// change is an UpdateAccount with only Status set.
type UpdateAccount struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
	Update  sqlconfig.AccountUpdate

	Result *sqlconfig.Account
}

func (u *UpdateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.Accounts.Update(ctx, u.OwnerID, u.ID, &u.Update)
	if err != nil {
		return wrapReference("account", err)
	}
	u.Result = account
	return nil
}

package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

// IAction is one unit of write work. Perform runs inside a database
// transaction that is rolled back when it returns an error.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// references lists the rows a ledger write points at. Every set id must
// belong to the owner.
type references struct {
	ownerID   uuid.UUID
	accountID uuid.NullUUID
	headerID  uuid.NullUUID
	tagID     uuid.NullUUID
	entityID  uuid.NullUUID
	budgetID  uuid.NullUUID
}

func (r references) check(ctx context.Context, writer *storage.Writer) error {
	if r.accountID.Valid {
		if _, err := writer.Accounts.FindByID(ctx, r.ownerID, r.accountID.UUID); err != nil {
			return wrapReference("account", err)
		}
	}
	if r.headerID.Valid {
		if _, err := writer.Headers.FindByID(ctx, r.ownerID, r.headerID.UUID); err != nil {
			return wrapReference("header", err)
		}
	}
	if r.tagID.Valid {
		if _, err := writer.Tags.FindByID(ctx, r.ownerID, r.tagID.UUID); err != nil {
			return wrapReference("tag", err)
		}
	}
	if r.entityID.Valid {
		if _, err := writer.Entities.FindByID(ctx, r.ownerID, r.entityID.UUID); err != nil {
			return wrapReference("entity", err)
		}
	}
	if r.budgetID.Valid {
		if _, err := writer.Budgets.FindByID(ctx, r.ownerID, r.budgetID.UUID); err != nil {
			return wrapReference("budget", err)
		}
	}
	return nil
}

func wrapReference(name string, err error) error {
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return fmt.Errorf("%s: %w", name, sqlconfig.ErrNotFound)
	}
	return fmt.Errorf("find %s: %w", name, err)
}

func validID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: true}
}

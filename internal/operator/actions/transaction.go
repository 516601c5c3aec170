package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/ledger"
	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

// CreateTransaction records a transaction after checking that the account,
// and the header, tag, entity and budget when given, belong to the owner.
type CreateTransaction struct {
	Create sqlconfig.TransactionCreate

	Result *sqlconfig.Transaction
}

func (c *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	refs := references{
		ownerID:   c.Create.OwnerID,
		accountID: validID(c.Create.AccountID),
		headerID:  c.Create.HeaderID,
		tagID:     c.Create.TagID,
		entityID:  c.Create.EntityID,
		budgetID:  c.Create.BudgetID,
	}
	if err := refs.check(ctx, writer); err != nil {
		return err
	}

	if c.Create.Status == "" {
		c.Create.Status = ledger.TransactionStatusPending
	}

	transaction, err := writer.Transactions.Insert(ctx, &c.Create)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	c.Result = transaction
	return nil
}

// UpdateTransaction overwrites the set fields of an owned transaction.
// Changed references are checked the same way as on create.
type UpdateTransaction struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
	Update  sqlconfig.TransactionUpdate

	Result *sqlconfig.Transaction
}

func (u *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	refs := references{ownerID: u.OwnerID}
	if v, ok := u.Update.AccountID.Get(); ok {
		refs.accountID = validID(v)
	}
	if v, ok := u.Update.HeaderID.Get(); ok {
		refs.headerID = v
	}
	if v, ok := u.Update.TagID.Get(); ok {
		refs.tagID = v
	}
	if v, ok := u.Update.EntityID.Get(); ok {
		refs.entityID = v
	}
	if v, ok := u.Update.BudgetID.Get(); ok {
		refs.budgetID = v
	}
	if err := refs.check(ctx, writer); err != nil {
		return err
	}

	transaction, err := writer.Transactions.Update(ctx, u.OwnerID, u.ID, &u.Update)
	if err != nil {
		return wrapReference("transaction", err)
	}
	u.Result = transaction
	return nil
}

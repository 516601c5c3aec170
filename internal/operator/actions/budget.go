package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/ledger"
	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

// CreateBudget records a budget. New budgets always start UNDER_PROCESS.
type CreateBudget struct {
	Create sqlconfig.BudgetCreate

	Result *sqlconfig.Budget
}

func (c *CreateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	refs := references{
		ownerID:   c.Create.OwnerID,
		accountID: validID(c.Create.AccountID),
		headerID:  c.Create.HeaderID,
		tagID:     c.Create.TagID,
		entityID:  c.Create.EntityID,
	}
	if err := refs.check(ctx, writer); err != nil {
		return err
	}

	c.Create.Status = ledger.BudgetStatusUnderProcess

	budget, err := writer.Budgets.Insert(ctx, &c.Create)
	if err != nil {
		return fmt.Errorf("insert budget: %w", err)
	}
	c.Result = budget
	return nil
}

type UpdateBudget struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
	Update  sqlconfig.BudgetUpdate

	Result *sqlconfig.Budget
}

func (u *UpdateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
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
	if err := refs.check(ctx, writer); err != nil {
		return err
	}

	budget, err := writer.Budgets.Update(ctx, u.OwnerID, u.ID, &u.Update)
	if err != nil {
		return wrapReference("budget", err)
	}
	u.Result = budget
	return nil
}

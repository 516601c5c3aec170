package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const accountsTable = "accounts"

// AccountsTable provides access to the accounts table.
type AccountsTable struct {
	exec bob.Executor
}

// Ensure AccountsTable implements IAccountTable at compile time.
var _ IAccountTable = (*AccountsTable)(nil)

// NewAccountsTable creates an AccountsTable on the given executor.
func NewAccountsTable(exec bob.Executor) *AccountsTable {
	return &AccountsTable{exec: exec}
}

// FindByID retrieves an account by primary key, scoped to its owner.
func (t *AccountsTable) FindByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*Account, error) {
	query := psql.Select(
		sm.Columns(quotedColumns(accountColumns)...),
		sm.From(psql.Quote(accountsTable)),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Account]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// Insert creates a new account and returns the stored row.
func (t *AccountsTable) Insert(ctx context.Context, create *AccountCreate) (*Account, error) {
	status := create.Status
	if status == "" {
		status = AccountStatusActive
	}
	query := psql.Insert(
		im.Into(psql.Quote(accountsTable), "owner_id", "name", "type", "account_number", "details", "status"),
		im.Values(
			psql.Arg(create.OwnerID),
			psql.Arg(create.Name),
			psql.Arg(int16(create.Type)),
			psql.Arg(create.AccountNumber),
			psql.Arg(create.Details),
			psql.Arg(status),
		),
		im.Returning(quotedColumns(accountColumns)...),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Account]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// Update overwrites the set fields of an owned account.
func (t *AccountsTable) Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, update *AccountUpdate) (*Account, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(psql.Quote(accountsTable)),
		um.SetCol("updated_at").To(psql.Raw("now()")),
	}
	if v, ok := update.Name.Get(); ok {
		queryMods = append(queryMods, um.SetCol("name").ToArg(v))
	}
	if v, ok := update.Type.Get(); ok {
		queryMods = append(queryMods, um.SetCol("type").ToArg(int16(v)))
	}
	if v, ok := update.AccountNumber.Get(); ok {
		queryMods = append(queryMods, um.SetCol("account_number").ToArg(v))
	}
	if v, ok := update.Details.Get(); ok {
		queryMods = append(queryMods, um.SetCol("details").ToArg(v))
	}
	if v, ok := update.Status.Get(); ok {
		queryMods = append(queryMods, um.SetCol("status").ToArg(v))
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		um.Returning(quotedColumns(accountColumns)...),
	)

	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[Account]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// List returns the owner's accounts, newest first. A positive Limit fetches Limit+1 rows.
func (t *AccountsTable) List(ctx context.Context, filter *AccountFilter) ([]*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(quotedColumns(accountColumns)...),
		sm.From(psql.Quote(accountsTable)),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(filter.OwnerID))),
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit+1))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}
	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}
	result := make([]*Account, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

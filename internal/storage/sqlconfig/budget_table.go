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

	"github.com/carson-networks/cashbook-server/internal/ledger"
)

const budgetsTable = "budgets"

var _ IBudgetTable = (*BudgetsTable)(nil)

type BudgetsTable struct {
	exec bob.Executor
}

func NewBudgetsTable(exec bob.Executor) *BudgetsTable {
	return &BudgetsTable{exec: exec}
}

func (t *BudgetsTable) FindByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*Budget, error) {
	query := psql.Select(
		sm.Columns(quotedColumns(budgetColumns)...),
		sm.From(psql.Quote(budgetsTable)),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Budget]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

func (t *BudgetsTable) Insert(ctx context.Context, create *BudgetCreate) (*Budget, error) {
	query := psql.Insert(
		im.Into(psql.Quote(budgetsTable),
			"owner_id", "type", "amount", "details", "transfer_id", "status",
			"transaction_date", "account_id", "header_id", "tag_id", "entity_id",
		),
		im.Values(
			psql.Arg(create.OwnerID),
			psql.Arg(create.Type),
			psql.Arg(create.Amount),
			psql.Arg(create.Details),
			psql.Arg(create.TransferID),
			psql.Arg(create.Status),
			psql.Arg(create.TransactionDate),
			psql.Arg(create.AccountID),
			psql.Arg(create.HeaderID),
			psql.Arg(create.TagID),
			psql.Arg(create.EntityID),
		),
		im.Returning(quotedColumns(budgetColumns)...),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Budget]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

func (t *BudgetsTable) Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, update *BudgetUpdate) (*Budget, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(psql.Quote(budgetsTable)),
		um.SetCol("updated_at").To(psql.Raw("now()")),
	}
	if v, ok := update.Amount.Get(); ok {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(v))
	}
	if v, ok := update.Details.Get(); ok {
		queryMods = append(queryMods, um.SetCol("details").ToArg(v))
	}
	if v, ok := update.TransferID.Get(); ok {
		queryMods = append(queryMods, um.SetCol("transfer_id").ToArg(v))
	}
	if v, ok := update.Status.Get(); ok {
		queryMods = append(queryMods, um.SetCol("status").ToArg(v))
	}
	if v, ok := update.TransactionDate.Get(); ok {
		queryMods = append(queryMods, um.SetCol("transaction_date").ToArg(v))
	}
	if v, ok := update.AccountID.Get(); ok {
		queryMods = append(queryMods, um.SetCol("account_id").ToArg(v))
	}
	if v, ok := update.HeaderID.Get(); ok {
		queryMods = append(queryMods, um.SetCol("header_id").ToArg(v))
	}
	if v, ok := update.TagID.Get(); ok {
		queryMods = append(queryMods, um.SetCol("tag_id").ToArg(v))
	}
	if v, ok := update.EntityID.Get(); ok {
		queryMods = append(queryMods, um.SetCol("entity_id").ToArg(v))
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		um.Returning(quotedColumns(budgetColumns)...),
	)

	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[Budget]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// List returns up to query.Limit+1 budgets of one owner and partition.
func (t *BudgetsTable) List(ctx context.Context, query ledger.Query) ([]*Budget, error) {
	if err := checkCursor(ctx, t.exec, budgetsTable, query); err != nil {
		return nil, err
	}
	rows, err := bob.All(ctx, t.exec,
		psql.Select(ledgerSelectMods(budgetsTable, budgetColumns, query)...),
		scan.StructMapper[Budget]())
	if err != nil {
		return nil, err
	}
	result := make([]*Budget, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

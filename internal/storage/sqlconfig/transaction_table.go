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

const transactionsTable = "transactions"

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindByID retrieves a transaction by primary key, scoped to its owner.
func (t *TransactionsTable) FindByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*Transaction, error) {
	query := psql.Select(
		sm.Columns(quotedColumns(transactionColumns)...),
		sm.From(psql.Quote(transactionsTable)),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// Insert creates a new transaction and returns the stored row.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	columns := []string{
		"owner_id", "type", "amount", "details", "transfer_id", "status",
		"account_id", "header_id", "tag_id", "entity_id", "budget_id",
	}
	values := []bob.Expression{
		psql.Arg(create.OwnerID),
		psql.Arg(create.Type),
		psql.Arg(create.Amount),
		psql.Arg(create.Details),
		psql.Arg(create.TransferID),
		psql.Arg(create.Status),
		psql.Arg(create.AccountID),
		psql.Arg(create.HeaderID),
		psql.Arg(create.TagID),
		psql.Arg(create.EntityID),
		psql.Arg(create.BudgetID),
	}
	if !create.TransactionDate.IsZero() {
		columns = append(columns, "transaction_date")
		values = append(values, psql.Arg(create.TransactionDate))
	}

	query := psql.Insert(
		im.Into(psql.Quote(transactionsTable), columns...),
		im.Values(values...),
		im.Returning(quotedColumns(transactionColumns)...),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// Update overwrites the set fields of an owned transaction and returns the stored row.
func (t *TransactionsTable) Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, update *TransactionUpdate) (*Transaction, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(psql.Quote(transactionsTable)),
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
	if v, ok := update.BudgetID.Get(); ok {
		queryMods = append(queryMods, um.SetCol("budget_id").ToArg(v))
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		um.Returning(quotedColumns(transactionColumns)...),
	)

	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// List returns up to query.Limit+1 transactions of one owner and partition.
func (t *TransactionsTable) List(ctx context.Context, query ledger.Query) ([]*Transaction, error) {
	if err := checkCursor(ctx, t.exec, transactionsTable, query); err != nil {
		return nil, err
	}
	rows, err := bob.All(ctx, t.exec,
		psql.Select(ledgerSelectMods(transactionsTable, transactionColumns, query)...),
		scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

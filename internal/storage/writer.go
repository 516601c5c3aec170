package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

// Writer exposes the tables bound to one database transaction.
type Writer struct {
	tx           bob.Tx
	Accounts     sqlconfig.IAccountTable
	Headers      sqlconfig.IHeaderTable
	Tags         sqlconfig.ITagTable
	Entities     sqlconfig.IEntityTable
	Transactions sqlconfig.ITransactionTable
	Budgets      sqlconfig.IBudgetTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:           tx,
		Accounts:     sqlconfig.NewAccountsTable(tx),
		Headers:      sqlconfig.NewHeadersTable(tx),
		Tags:         sqlconfig.NewTagsTable(tx),
		Entities:     sqlconfig.NewEntitiesTable(tx),
		Transactions: sqlconfig.NewTransactionsTable(tx),
		Budgets:      sqlconfig.NewBudgetsTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}

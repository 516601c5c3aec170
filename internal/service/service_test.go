package service

import (
	"context"
	"testing"

	"github.com/carson-networks/cashbook-server/internal/operator/actions"
	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

// inlineProcessor runs actions directly against a writer backed by mocks.
type inlineProcessor struct {
	writer *storage.Writer
}

func (p *inlineProcessor) Process(ctx context.Context, action actions.IAction) error {
	return action.Perform(ctx, p.writer)
}

type testMocks struct {
	users        *sqlconfig.MockIUserTable
	accounts     *sqlconfig.MockIAccountTable
	headers      *sqlconfig.MockIHeaderTable
	tags         *sqlconfig.MockITagTable
	entities     *sqlconfig.MockIEntityTable
	transactions *sqlconfig.MockITransactionTable
	budgets      *sqlconfig.MockIBudgetTable
}

func newTestService(t *testing.T) (*Service, testMocks) {
	t.Helper()
	m := testMocks{
		users:        sqlconfig.NewMockIUserTable(t),
		accounts:     sqlconfig.NewMockIAccountTable(t),
		headers:      sqlconfig.NewMockIHeaderTable(t),
		tags:         sqlconfig.NewMockITagTable(t),
		entities:     sqlconfig.NewMockIEntityTable(t),
		transactions: sqlconfig.NewMockITransactionTable(t),
		budgets:      sqlconfig.NewMockIBudgetTable(t),
	}
	store := &storage.Storage{
		Users:        m.users,
		Accounts:     m.accounts,
		Headers:      m.headers,
		Tags:         m.tags,
		Entities:     m.entities,
		Transactions: m.transactions,
		Budgets:      m.budgets,
	}
	processor := &inlineProcessor{writer: &storage.Writer{
		Accounts:     m.accounts,
		Headers:      m.headers,
		Tags:         m.tags,
		Entities:     m.entities,
		Transactions: m.transactions,
		Budgets:      m.budgets,
	}}
	return NewService(store, processor, 4), m
}

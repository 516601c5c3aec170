package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashbook-server/internal/ledger"
	"github.com/carson-networks/cashbook-server/internal/storage"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

type writerMocks struct {
	accounts     *sqlconfig.MockIAccountTable
	headers      *sqlconfig.MockIHeaderTable
	tags         *sqlconfig.MockITagTable
	entities     *sqlconfig.MockIEntityTable
	transactions *sqlconfig.MockITransactionTable
	budgets      *sqlconfig.MockIBudgetTable
}

func newTestWriter(t *testing.T) (*storage.Writer, writerMocks) {
	m := writerMocks{
		accounts:     sqlconfig.NewMockIAccountTable(t),
		headers:      sqlconfig.NewMockIHeaderTable(t),
		tags:         sqlconfig.NewMockITagTable(t),
		entities:     sqlconfig.NewMockIEntityTable(t),
		transactions: sqlconfig.NewMockITransactionTable(t),
		budgets:      sqlconfig.NewMockIBudgetTable(t),
	}
	return &storage.Writer{
		Accounts:     m.accounts,
		Headers:      m.headers,
		Tags:         m.tags,
		Entities:     m.entities,
		Transactions: m.transactions,
		Budgets:      m.budgets,
	}, m
}

var (
	ownerID   = uuid.Must(uuid.NewV4())
	accountID = uuid.Must(uuid.NewV4())
	headerID  = uuid.Must(uuid.NewV4())
	budgetID  = uuid.Must(uuid.NewV4())
	tagID     = uuid.Must(uuid.NewV4())
	entityID  = uuid.Must(uuid.NewV4())
)

func TestCreateAccount_Perform(t *testing.T) {
	writer, m := newTestWriter(t)
	stored := &sqlconfig.Account{ID: accountID, OwnerID: ownerID, Name: "Wallet"}

	action := &CreateAccount{Create: sqlconfig.AccountCreate{OwnerID: ownerID, Name: "Wallet", Type: sqlconfig.AccountTypeCash}}
	m.accounts.EXPECT().Insert(mock.Anything, &action.Create).Return(stored, nil)

	require.NoError(t, action.Perform(context.Background(), writer))
	assert.Equal(t, stored, action.Result)
}

func TestUpdateAccount_NotFound(t *testing.T) {
	writer, m := newTestWriter(t)

	action := &UpdateAccount{OwnerID: ownerID, ID: accountID, Update: sqlconfig.AccountUpdate{Status: omit.From(sqlconfig.AccountStatusFrozen)}}
	m.accounts.EXPECT().Update(mock.Anything, ownerID, accountID, &action.Update).Return(nil, sqlconfig.ErrNotFound)

	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
	assert.Nil(t, action.Result)
}

func TestUpdateHeaderStatus_Perform(t *testing.T) {
	writer, m := newTestWriter(t)
	stored := &sqlconfig.Header{ID: headerID, Status: sqlconfig.HeaderStatusNotActive}

	m.headers.EXPECT().UpdateStatus(mock.Anything, ownerID, headerID, sqlconfig.HeaderStatusNotActive).Return(stored, nil)

	action := &UpdateHeaderStatus{OwnerID: ownerID, ID: headerID, Status: sqlconfig.HeaderStatusNotActive}
	require.NoError(t, action.Perform(context.Background(), writer))
	assert.Equal(t, stored, action.Result)
}

func TestCreateTransaction_Perform(t *testing.T) {
	writer, m := newTestWriter(t)

	action := &CreateTransaction{Create: sqlconfig.TransactionCreate{
		OwnerID:   ownerID,
		Type:      ledger.TypeCredit,
		Amount:    decimal.RequireFromString("12.50"),
		AccountID: accountID,
		HeaderID:  uuid.NullUUID{UUID: headerID, Valid: true},
		BudgetID:  uuid.NullUUID{UUID: budgetID, Valid: true},
	}}
	stored := &sqlconfig.Transaction{ID: uuid.Must(uuid.NewV4())}

	m.accounts.EXPECT().FindByID(mock.Anything, ownerID, accountID).Return(&sqlconfig.Account{ID: accountID}, nil)
	m.headers.EXPECT().FindByID(mock.Anything, ownerID, headerID).Return(&sqlconfig.Header{ID: headerID}, nil)
	m.budgets.EXPECT().FindByID(mock.Anything, ownerID, budgetID).Return(&sqlconfig.Budget{ID: budgetID}, nil)
	m.transactions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.Status == ledger.TransactionStatusPending && c.AccountID == accountID
	})).Return(stored, nil)

	require.NoError(t, action.Perform(context.Background(), writer))
	assert.Equal(t, stored, action.Result)
}

func TestCreateTransaction_ForeignAccount(t *testing.T) {
	writer, m := newTestWriter(t)

	m.accounts.EXPECT().FindByID(mock.Anything, ownerID, accountID).Return(nil, sqlconfig.ErrNotFound)

	action := &CreateTransaction{Create: sqlconfig.TransactionCreate{OwnerID: ownerID, AccountID: accountID}}
	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
	assert.EqualError(t, err, "account: record not found")
}

func TestCreateTransaction_ForeignHeader(t *testing.T) {
	writer, m := newTestWriter(t)

	m.accounts.EXPECT().FindByID(mock.Anything, ownerID, accountID).Return(&sqlconfig.Account{}, nil)
	m.headers.EXPECT().FindByID(mock.Anything, ownerID, headerID).Return(nil, sqlconfig.ErrNotFound)

	action := &CreateTransaction{Create: sqlconfig.TransactionCreate{
		OwnerID:   ownerID,
		AccountID: accountID,
		HeaderID:  uuid.NullUUID{UUID: headerID, Valid: true},
	}}
	err := action.Perform(context.Background(), writer)
	assert.EqualError(t, err, "header: record not found")
}

func TestCreateTransaction_StoreError(t *testing.T) {
	writer, m := newTestWriter(t)

	m.accounts.EXPECT().FindByID(mock.Anything, ownerID, accountID).Return(nil, errors.New("connection reset"))

	action := &CreateTransaction{Create: sqlconfig.TransactionCreate{OwnerID: ownerID, AccountID: accountID}}
	err := action.Perform(context.Background(), writer)
	require.Error(t, err)
	assert.NotErrorIs(t, err, sqlconfig.ErrNotFound)
}

func TestUpdateTransaction_OnlyChangedReferencesChecked(t *testing.T) {
	writer, m := newTestWriter(t)
	id := uuid.Must(uuid.NewV4())

	update := sqlconfig.TransactionUpdate{
		Status:   omit.From(ledger.TransactionStatusComplete),
		HeaderID: omit.From(uuid.NullUUID{UUID: headerID, Valid: true}),
	}
	m.headers.EXPECT().FindByID(mock.Anything, ownerID, headerID).Return(&sqlconfig.Header{}, nil)
	m.transactions.EXPECT().Update(mock.Anything, ownerID, id, mock.Anything).Return(&sqlconfig.Transaction{ID: id}, nil)

	action := &UpdateTransaction{OwnerID: ownerID, ID: id, Update: update}
	require.NoError(t, action.Perform(context.Background(), writer))
	assert.Equal(t, id, action.Result.ID)
}

func TestUpdateTransaction_ClearingHeaderSkipsCheck(t *testing.T) {
	writer, m := newTestWriter(t)
	id := uuid.Must(uuid.NewV4())

	update := sqlconfig.TransactionUpdate{HeaderID: omit.From(uuid.NullUUID{})}
	m.transactions.EXPECT().Update(mock.Anything, ownerID, id, mock.Anything).Return(&sqlconfig.Transaction{ID: id}, nil)

	action := &UpdateTransaction{OwnerID: ownerID, ID: id, Update: update}
	require.NoError(t, action.Perform(context.Background(), writer))
}

func TestUpdateTransaction_Missing(t *testing.T) {
	writer, m := newTestWriter(t)
	id := uuid.Must(uuid.NewV4())

	m.transactions.EXPECT().Update(mock.Anything, ownerID, id, mock.Anything).Return(nil, sqlconfig.ErrNotFound)

	action := &UpdateTransaction{OwnerID: ownerID, ID: id}
	err := action.Perform(context.Background(), writer)
	assert.EqualError(t, err, "transaction: record not found")
}

func TestCreateBudget_ForcesUnderProcess(t *testing.T) {
	writer, m := newTestWriter(t)

	m.accounts.EXPECT().FindByID(mock.Anything, ownerID, accountID).Return(&sqlconfig.Account{}, nil)
	m.budgets.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.BudgetCreate) bool {
		return c.Status == ledger.BudgetStatusUnderProcess
	})).Return(&sqlconfig.Budget{Status: ledger.BudgetStatusUnderProcess}, nil)

	action := &CreateBudget{Create: sqlconfig.BudgetCreate{
		OwnerID:         ownerID,
		Type:            ledger.TypeDebit,
		Status:          ledger.BudgetStatusCancelled,
		AccountID:       accountID,
		TransactionDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}}
	require.NoError(t, action.Perform(context.Background(), writer))
	assert.Equal(t, ledger.BudgetStatusUnderProcess, action.Result.Status)
}

func TestUpdateBudget_ForeignAccount(t *testing.T) {
	writer, m := newTestWriter(t)
	id := uuid.Must(uuid.NewV4())

	m.accounts.EXPECT().FindByID(mock.Anything, ownerID, accountID).Return(nil, sqlconfig.ErrNotFound)

	action := &UpdateBudget{OwnerID: ownerID, ID: id, Update: sqlconfig.BudgetUpdate{AccountID: omit.From(accountID)}}
	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
}

func TestCreateTransaction_ForeignTag(t *testing.T) {
	writer, m := newTestWriter(t)

	m.accounts.EXPECT().FindByID(mock.Anything, ownerID, accountID).Return(&sqlconfig.Account{}, nil)
	m.tags.EXPECT().FindByID(mock.Anything, ownerID, tagID).Return(nil, sqlconfig.ErrNotFound)

	action := &CreateTransaction{Create: sqlconfig.TransactionCreate{
		OwnerID:   ownerID,
		AccountID: accountID,
		TagID:     uuid.NullUUID{UUID: tagID, Valid: true},
	}}
	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
	assert.EqualError(t, err, "tag: record not found")
}

func TestCreateBudget_ForeignEntity(t *testing.T) {
	writer, m := newTestWriter(t)

	m.accounts.EXPECT().FindByID(mock.Anything, ownerID, accountID).Return(&sqlconfig.Account{}, nil)
	m.tags.EXPECT().FindByID(mock.Anything, ownerID, tagID).Return(&sqlconfig.Tag{ID: tagID}, nil)
	m.entities.EXPECT().FindByID(mock.Anything, ownerID, entityID).Return(nil, sqlconfig.ErrNotFound)

	action := &CreateBudget{Create: sqlconfig.BudgetCreate{
		OwnerID:   ownerID,
		AccountID: accountID,
		TagID:     uuid.NullUUID{UUID: tagID, Valid: true},
		EntityID:  uuid.NullUUID{UUID: entityID, Valid: true},
	}}
	err := action.Perform(context.Background(), writer)
	assert.EqualError(t, err, "entity: record not found")
}

func TestUpdateTransaction_ChecksEntity(t *testing.T) {
	writer, m := newTestWriter(t)
	id := uuid.Must(uuid.NewV4())

	m.entities.EXPECT().FindByID(mock.Anything, ownerID, entityID).Return(nil, sqlconfig.ErrNotFound)

	action := &UpdateTransaction{OwnerID: ownerID, ID: id, Update: sqlconfig.TransactionUpdate{
		EntityID: omit.From(uuid.NullUUID{UUID: entityID, Valid: true}),
	}}
	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
}

func TestUpdateBudget_ChecksTag(t *testing.T) {
	writer, m := newTestWriter(t)
	id := uuid.Must(uuid.NewV4())

	m.tags.EXPECT().FindByID(mock.Anything, ownerID, tagID).Return(&sqlconfig.Tag{ID: tagID}, nil)
	m.budgets.EXPECT().Update(mock.Anything, ownerID, id, mock.Anything).Return(&sqlconfig.Budget{ID: id}, nil)

	action := &UpdateBudget{OwnerID: ownerID, ID: id, Update: sqlconfig.BudgetUpdate{
		TagID: omit.From(uuid.NullUUID{UUID: tagID, Valid: true}),
	}}
	require.NoError(t, action.Perform(context.Background(), writer))
	assert.Equal(t, id, action.Result.ID)
}

func TestUpdateTag_NotFound(t *testing.T) {
	writer, m := newTestWriter(t)

	m.tags.EXPECT().Update(mock.Anything, ownerID, tagID, mock.Anything).Return(nil, sqlconfig.ErrNotFound)

	action := &UpdateTag{OwnerID: ownerID, ID: tagID, Update: sqlconfig.TagUpdate{Name: omit.From("Travel")}}
	err := action.Perform(context.Background(), writer)
	assert.EqualError(t, err, "tag: record not found")
}

func TestCreateEntity_Perform(t *testing.T) {
	writer, m := newTestWriter(t)
	stored := &sqlconfig.Entity{ID: entityID, OwnerID: ownerID, Name: "Acme Traders"}

	action := &CreateEntity{Create: sqlconfig.EntityCreate{OwnerID: ownerID, Name: "Acme Traders", PAN: "ABCDE1234F"}}
	m.entities.EXPECT().Insert(mock.Anything, &action.Create).Return(stored, nil)

	require.NoError(t, action.Perform(context.Background(), writer))
	assert.Equal(t, stored, action.Result)
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

func makeAccounts(n int) []*sqlconfig.Account {
	rows := make([]*sqlconfig.Account, n)
	for i := range rows {
		rows[i] = &sqlconfig.Account{ID: uuid.Must(uuid.NewV4()), Name: "acct", Type: sqlconfig.AccountTypeUPI}
	}
	return rows
}

func TestListAccounts_FirstPage(t *testing.T) {
	svc, m := newTestService(t)
	ownerID := uuid.Must(uuid.NewV4())

	m.accounts.EXPECT().List(mock.Anything, &sqlconfig.AccountFilter{OwnerID: ownerID, Limit: 20}).
		Return(makeAccounts(21), nil)

	accounts, next, err := svc.Account.ListAccounts(context.Background(), ownerID, nil)
	require.NoError(t, err)
	assert.Len(t, accounts, 20)
	assert.Equal(t, AccountTypeUPI, accounts[0].Type)
	require.NotNil(t, next)
	assert.Equal(t, AccountCursor{Position: 20, Limit: 20}, *next)
}

func TestListAccounts_LastPage(t *testing.T) {
	svc, m := newTestService(t)
	ownerID := uuid.Must(uuid.NewV4())

	m.accounts.EXPECT().List(mock.Anything, &sqlconfig.AccountFilter{OwnerID: ownerID, Limit: 5, Offset: 10}).
		Return(makeAccounts(2), nil)

	accounts, next, err := svc.Account.ListAccounts(context.Background(), ownerID, &AccountCursor{Position: 10, Limit: 5})
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Nil(t, next)
}

func TestListAccounts_StorageError(t *testing.T) {
	svc, m := newTestService(t)

	m.accounts.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	_, _, err := svc.Account.ListAccounts(context.Background(), uuid.Must(uuid.NewV4()), nil)
	assert.EqualError(t, err, "connection refused")
}

func TestCreateAccount(t *testing.T) {
	svc, m := newTestService(t)
	ownerID := uuid.Must(uuid.NewV4())

	m.accounts.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.AccountCreate) bool {
		return c.OwnerID == ownerID && c.Type == sqlconfig.AccountTypeCreditCard && c.Status == sqlconfig.AccountStatusActive
	})).RunAndReturn(func(_ context.Context, c *sqlconfig.AccountCreate) (*sqlconfig.Account, error) {
		return &sqlconfig.Account{ID: uuid.Must(uuid.NewV4()), Name: c.Name, Type: c.Type, Status: c.Status}, nil
	})

	created, err := svc.Account.CreateAccount(context.Background(), ownerID, AccountInput{Name: "Visa", Type: AccountTypeCreditCard})
	require.NoError(t, err)
	assert.Equal(t, "Visa", created.Name)
	assert.Equal(t, sqlconfig.AccountStatusActive, created.Status)
}

func TestUpdateAccountStatus_NotFound(t *testing.T) {
	svc, m := newTestService(t)

	m.accounts.EXPECT().Update(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, sqlconfig.ErrNotFound)

	_, err := svc.Account.UpdateAccountStatus(context.Background(), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), sqlconfig.AccountStatusClosed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListHeaders(t *testing.T) {
	svc, m := newTestService(t)
	ownerID := uuid.Must(uuid.NewV4())

	m.headers.EXPECT().List(mock.Anything, ownerID).Return([]*sqlconfig.Header{
		{ID: uuid.Must(uuid.NewV4()), Name: "Food", Status: sqlconfig.HeaderStatusActive},
		{ID: uuid.Must(uuid.NewV4()), Name: "Rent", Status: sqlconfig.HeaderStatusNotActive},
	}, nil)

	headers, err := svc.Header.ListHeaders(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, headers, 2)
	assert.Equal(t, "Rent", headers[1].Name)
}

func TestCreateHeader(t *testing.T) {
	svc, m := newTestService(t)
	ownerID := uuid.Must(uuid.NewV4())

	m.headers.EXPECT().Insert(mock.Anything, &sqlconfig.HeaderCreate{
		OwnerID: ownerID, Name: "Travel", Status: sqlconfig.HeaderStatusActive,
	}).Return(&sqlconfig.Header{Name: "Travel", Status: sqlconfig.HeaderStatusActive}, nil)

	header, err := svc.Header.CreateHeader(context.Background(), ownerID, "Travel", "")
	require.NoError(t, err)
	assert.Equal(t, "Travel", header.Name)
}

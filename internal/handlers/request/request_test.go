package request

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashbook-server/internal/ledger"
)

func requireFieldError(t *testing.T, err error, location string) {
	t.Helper()
	var model *huma.ErrorModel
	require.True(t, errors.As(err, &model), "expected a huma error, got %v", err)
	assert.Equal(t, http.StatusBadRequest, model.Status)
	require.Len(t, model.Errors, 1)
	assert.Equal(t, location, model.Errors[0].Location)
}

func TestDate(t *testing.T) {
	got, err := Date("query.startDate", "2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)

	got, err = Date("query.startDate", "2024-03-05T10:30:00+02:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC)))

	_, err = Date("query.startDate", "05/03/2024")
	requireFieldError(t, err, "query.startDate")
}

func TestAmount(t *testing.T) {
	got, err := Amount("body.amount", "12.50")
	require.NoError(t, err)
	assert.Equal(t, "12.5", got.String())

	_, err = Amount("body.amount", "0")
	requireFieldError(t, err, "body.amount")

	_, err = Amount("body.amount", "-3")
	requireFieldError(t, err, "body.amount")

	_, err = Amount("body.amount", "ten")
	requireFieldError(t, err, "body.amount")
}

func TestNullableUUID(t *testing.T) {
	cleared, err := NullableUUID("body.headerId", "")
	require.NoError(t, err)
	assert.False(t, cleared.Valid)

	id := uuid.Must(uuid.NewV4())
	set, err := NullableUUID("body.headerId", id.String())
	require.NoError(t, err)
	assert.Equal(t, uuid.NullUUID{UUID: id, Valid: true}, set)

	_, err = NullableUUID("body.headerId", "nope")
	requireFieldError(t, err, "body.headerId")
}

func TestOwner_MissingSession(t *testing.T) {
	_, err := Owner(context.Background())
	var model *huma.ErrorModel
	require.True(t, errors.As(err, &model))
	assert.Equal(t, http.StatusUnauthorized, model.Status)
}

func TestLedgerQuery_Parse(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	cursor := uuid.Must(uuid.NewV4())

	q := LedgerQuery{
		StartDate:   "2024-01-01",
		EndDate:     "2024-12-31",
		AccountID:   accountID.String(),
		Search:      "rent",
		SortBy:      "transactionDate",
		SortOrder:   "asc",
		Limit:       10,
		DebitCursor: cursor.String(),
	}
	req, err := q.Parse()
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), *req.Filter.EndDate)
	assert.Equal(t, accountID, *req.Filter.AccountID)
	assert.Nil(t, req.Filter.HeaderID)
	assert.Equal(t, ledger.SortByTransactionDate, req.Filter.SortBy)
	assert.Equal(t, ledger.SortAsc, req.Filter.SortOrder)
	assert.Equal(t, 10, req.Limit)
	assert.Nil(t, req.CreditCursor)
	assert.Equal(t, cursor, *req.DebitCursor)
}

func TestLedgerQuery_ParseErrors(t *testing.T) {
	cases := map[string]struct {
		query    LedgerQuery
		location string
	}{
		"malformed start": {LedgerQuery{StartDate: "yesterday"}, "query.startDate"},
		"malformed end":   {LedgerQuery{EndDate: "2024-13-01"}, "query.endDate"},
		"inverted range":  {LedgerQuery{StartDate: "2024-02-01", EndDate: "2024-01-01"}, "query.startDate"},
		"bad account":     {LedgerQuery{AccountID: "42"}, "query.accountId"},
		"bad cursor":      {LedgerQuery{CreditCursor: "abc"}, "query.creditCursor"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tc.query.Parse()
			requireFieldError(t, err, tc.location)
		})
	}
}

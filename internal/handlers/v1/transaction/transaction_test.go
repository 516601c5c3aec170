package transaction

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashbook-server/internal/handlers/handlertest"
	"github.com/carson-networks/cashbook-server/internal/ledger"
	"github.com/carson-networks/cashbook-server/internal/service"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, ownerID uuid.UUID, req service.LedgerRequest) (ledger.Ledger[service.Transaction], error) {
	args := m.Called(ctx, ownerID, req)
	return args.Get(0).(ledger.Ledger[service.Transaction]), args.Error(1)
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, ownerID uuid.UUID, input service.TransactionInput) (*service.Transaction, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Transaction), args.Error(1)
}

func (m *mockTransactionService) UpdateTransaction(ctx context.Context, ownerID, id uuid.UUID, update sqlconfig.TransactionUpdate) (*service.Transaction, error) {
	args := m.Called(ctx, ownerID, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Transaction), args.Error(1)
}

func (m *mockTransactionService) UpdateTransactionStatus(ctx context.Context, ownerID, id uuid.UUID, status ledger.TransactionStatus) (*service.Transaction, error) {
	args := m.Called(ctx, ownerID, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Transaction), args.Error(1)
}

// newTestAPI registers every transaction handler and returns the API plus a
// bearer header for ownerID.
func newTestAPI(t *testing.T, svc *mockTransactionService, ownerID uuid.UUID) (humatest.TestAPI, string) {
	t.Helper()
	sessions := handlertest.NewSessions()
	api := handlertest.NewAPI(t, sessions)
	NewListTransactionsHandler(svc).Register(api)
	NewCreateTransactionHandler(svc).Register(api)
	NewUpdateTransactionHandler(svc).Register(api)
	return api, handlertest.Bearer(t, sessions, ownerID)
}

func sampleTransaction(txType ledger.Type) *service.Transaction {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &service.Transaction{
		ID:              uuid.Must(uuid.NewV4()),
		Type:            txType,
		Amount:          decimal.RequireFromString("12.50"),
		Details:         "Coffee",
		Status:          ledger.TransactionStatusPending,
		TransactionDate: now,
		AccountID:       uuid.Must(uuid.NewV4()),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestParseCreateTransactionBody(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	budgetID := uuid.Must(uuid.NewV4())

	input, err := parseCreateTransactionBody(&CreateTransactionBody{
		Type:            "DEBIT",
		Amount:          "99.99",
		AccountID:       accountID.String(),
		BudgetID:        budgetID.String(),
		TransactionDate: "2025-01-15",
	})
	require.NoError(t, err)
	assert.Equal(t, ledger.TypeDebit, input.Type)
	assert.Equal(t, accountID, input.AccountID)
	assert.True(t, input.Amount.Equal(decimal.RequireFromString("99.99")))
	require.NotNil(t, input.BudgetID)
	assert.Equal(t, budgetID, *input.BudgetID)
	assert.Nil(t, input.HeaderID)
	require.NotNil(t, input.TransactionDate)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), *input.TransactionDate)
}

func TestParseUpdateTransactionBody_ClearsReference(t *testing.T) {
	empty := ""
	details := "groceries"

	update, err := parseUpdateTransactionBody(&UpdateTransactionBody{HeaderID: &empty, Details: &details})
	require.NoError(t, err)

	header, ok := update.HeaderID.Get()
	require.True(t, ok)
	assert.False(t, header.Valid)
	assert.Equal(t, "groceries", update.Details.GetOrZero())
	assert.True(t, update.Amount.IsUnset())
	assert.True(t, update.BudgetID.IsUnset())
}

func TestHTTP_ListTransactions_Success(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	credit := sampleTransaction(ledger.TypeCredit)
	debit := sampleTransaction(ledger.TypeDebit)
	next := uuid.Must(uuid.NewV4())

	svc := new(mockTransactionService)
	svc.On("ListTransactions", mock.Anything, ownerID, mock.MatchedBy(func(req service.LedgerRequest) bool {
		return req.Limit == 1 && req.Filter.Search == "coffee" && req.CreditCursor == nil
	})).Return(ledger.Ledger[service.Transaction]{
		Credit: ledger.Page[service.Transaction]{Items: []service.Transaction{*credit}, NextCursor: &next},
		Debit:  ledger.Page[service.Transaction]{Items: []service.Transaction{*debit}},
	}, nil)

	api, bearer := newTestAPI(t, svc, ownerID)
	resp := api.Get("/v1/transactions?limit=1&search=coffee", bearer)

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Credit.Items, 1)
	assert.Equal(t, credit.ID.String(), body.Credit.Items[0].ID)
	assert.Equal(t, "12.5", body.Credit.Items[0].Amount)
	require.NotNil(t, body.Credit.NextCursor)
	assert.Equal(t, next.String(), *body.Credit.NextCursor)
	require.Len(t, body.Debit.Items, 1)
	assert.Nil(t, body.Debit.NextCursor)
	svc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_RequiresSession(t *testing.T) {
	api, _ := newTestAPI(t, new(mockTransactionService), uuid.Must(uuid.NewV4()))

	resp := api.Get("/v1/transactions")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHTTP_ListTransactions_InvalidCursor(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	cursor := uuid.Must(uuid.NewV4())

	svc := new(mockTransactionService)
	svc.On("ListTransactions", mock.Anything, ownerID, mock.MatchedBy(func(req service.LedgerRequest) bool {
		return req.DebitCursor != nil && *req.DebitCursor == cursor
	})).Return(ledger.Ledger[service.Transaction]{}, fmt.Errorf("debit: %w", ledger.ErrInvalidCursor))

	api, bearer := newTestAPI(t, svc, ownerID)
	resp := api.Get("/v1/transactions?debitCursor="+cursor.String(), bearer)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_BadQuery(t *testing.T) {
	api, bearer := newTestAPI(t, new(mockTransactionService), uuid.Must(uuid.NewV4()))

	tests := []struct {
		name  string
		query string
		code  int
	}{
		{"limit too large", "limit=101", http.StatusUnprocessableEntity},
		{"unknown sort", "sortBy=name", http.StatusUnprocessableEntity},
		{"malformed cursor", "creditCursor=nope", http.StatusBadRequest},
		{"reversed range", "startDate=2025-02-01&endDate=2025-01-01", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := api.Get("/v1/transactions?"+tt.query, bearer)
			assert.Equal(t, tt.code, resp.Code, resp.Body.String())
		})
	}
}

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	created := sampleTransaction(ledger.TypeDebit)

	svc := new(mockTransactionService)
	svc.On("CreateTransaction", mock.Anything, ownerID, mock.MatchedBy(func(in service.TransactionInput) bool {
		return in.AccountID == created.AccountID &&
			in.Type == ledger.TypeDebit &&
			in.Amount.Equal(decimal.RequireFromString("12.50")) &&
			in.TransactionDate == nil
	})).Return(created, nil)

	api, bearer := newTestAPI(t, svc, ownerID)
	resp := api.Post("/v1/transaction", bearer, CreateTransactionBody{
		Type:      "DEBIT",
		Amount:    "12.50",
		AccountID: created.AccountID.String(),
		Details:   "Coffee",
	})

	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, created.ID.String(), body.ID)
	assert.Equal(t, "PENDING", body.Status)
	svc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_InvalidAmount(t *testing.T) {
	api, bearer := newTestAPI(t, new(mockTransactionService), uuid.Must(uuid.NewV4()))

	for _, amount := range []string{"abc", "0", "-5"} {
		resp := api.Post("/v1/transaction", bearer, CreateTransactionBody{
			Type:      "CREDIT",
			Amount:    amount,
			AccountID: uuid.Must(uuid.NewV4()).String(),
		})
		assert.Equal(t, http.StatusBadRequest, resp.Code, amount)
	}
}

func TestHTTP_CreateTransaction_UnknownAccount(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	svc := new(mockTransactionService)
	svc.On("CreateTransaction", mock.Anything, ownerID, mock.Anything).
		Return(nil, fmt.Errorf("create transaction: account: %w", service.ErrNotFound))

	api, bearer := newTestAPI(t, svc, ownerID)
	resp := api.Post("/v1/transaction", bearer, CreateTransactionBody{
		Type:      "CREDIT",
		Amount:    "10",
		AccountID: uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	updated := sampleTransaction(ledger.TypeCredit)

	svc := new(mockTransactionService)
	svc.On("UpdateTransaction", mock.Anything, ownerID, updated.ID, mock.MatchedBy(func(u sqlconfig.TransactionUpdate) bool {
		budget, ok := u.BudgetID.Get()
		return ok && !budget.Valid && u.Amount.GetOrZero().Equal(decimal.RequireFromString("7"))
	})).Return(updated, nil)

	api, bearer := newTestAPI(t, svc, ownerID)
	resp := api.Put("/v1/transaction/"+updated.ID.String(), bearer, map[string]any{
		"amount":   "7",
		"budgetId": "",
	})

	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	svc.AssertExpectations(t)
}

func TestHTTP_UpdateTransactionStatus(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	updated := sampleTransaction(ledger.TypeCredit)
	updated.Status = ledger.TransactionStatusComplete

	svc := new(mockTransactionService)
	svc.On("UpdateTransactionStatus", mock.Anything, ownerID, updated.ID, ledger.TransactionStatusComplete).
		Return(updated, nil)

	api, bearer := newTestAPI(t, svc, ownerID)
	resp := api.Patch("/v1/transaction/"+updated.ID.String()+"/status", bearer, map[string]any{"status": "COMPLETE"})

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "COMPLETE", body.Status)
	svc.AssertExpectations(t)
}

func TestHTTP_UpdateTransactionStatus_NotFound(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())

	svc := new(mockTransactionService)
	svc.On("UpdateTransactionStatus", mock.Anything, ownerID, id, ledger.TransactionStatusPending).
		Return(nil, fmt.Errorf("update transaction: %w", service.ErrNotFound))

	api, bearer := newTestAPI(t, svc, ownerID)
	resp := api.Patch("/v1/transaction/"+id.String()+"/status", bearer, map[string]any{"status": "PENDING"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	svc.AssertExpectations(t)
}

package header

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashbook-server/internal/handlers/handlertest"
	"github.com/carson-networks/cashbook-server/internal/service"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

type mockHeaderService struct {
	mock.Mock
}

func (m *mockHeaderService) CreateHeader(ctx context.Context, ownerID uuid.UUID, name, details string) (*service.Header, error) {
	args := m.Called(ctx, ownerID, name, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Header), args.Error(1)
}

func (m *mockHeaderService) ListHeaders(ctx context.Context, ownerID uuid.UUID) ([]service.Header, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Header), args.Error(1)
}

func (m *mockHeaderService) UpdateHeaderStatus(ctx context.Context, ownerID, id uuid.UUID, status sqlconfig.HeaderStatus) (*service.Header, error) {
	args := m.Called(ctx, ownerID, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Header), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockHeaderService, ownerID uuid.UUID) (humatest.TestAPI, string) {
	t.Helper()
	sessions := handlertest.NewSessions()
	api := handlertest.NewAPI(t, sessions)
	NewHandler(svc).Register(api)
	return api, handlertest.Bearer(t, sessions, ownerID)
}

func sampleHeader(name string) *service.Header {
	return &service.Header{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      name,
		Status:    sqlconfig.HeaderStatusActive,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestHTTP_CreateHeader(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	created := sampleHeader("Groceries")

	svc := new(mockHeaderService)
	svc.On("CreateHeader", mock.Anything, ownerID, "Groceries", "food").Return(created, nil)

	api, bearer := newTestAPI(t, svc, ownerID)
	resp := api.Post("/v1/header", bearer, map[string]any{"name": "Groceries", "details": "food"})

	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var body Header
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, created.ID.String(), body.ID)
	svc.AssertExpectations(t)
}

func TestHTTP_CreateHeader_Duplicate(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())

	svc := new(mockHeaderService)
	svc.On("CreateHeader", mock.Anything, ownerID, "Rent", "").
		Return(nil, fmt.Errorf("create header: %w", service.ErrConflict))

	api, bearer := newTestAPI(t, svc, ownerID)
	resp := api.Post("/v1/header", bearer, map[string]any{"name": "Rent"})

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_ListHeaders(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())

	svc := new(mockHeaderService)
	svc.On("ListHeaders", mock.Anything, ownerID).
		Return([]service.Header{*sampleHeader("Bills"), *sampleHeader("Food")}, nil)

	api, bearer := newTestAPI(t, svc, ownerID)
	resp := api.Get("/v1/headers", bearer)

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body struct {
		Headers []Header `json:"headers"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Headers, 2)
	assert.Equal(t, "Bills", body.Headers[0].Name)
}

func TestHTTP_UpdateHeaderStatus(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	updated := sampleHeader("Bills")
	updated.Status = sqlconfig.HeaderStatusNotActive

	svc := new(mockHeaderService)
	svc.On("UpdateHeaderStatus", mock.Anything, ownerID, updated.ID, sqlconfig.HeaderStatusNotActive).Return(updated, nil)

	api, bearer := newTestAPI(t, svc, ownerID)
	resp := api.Patch("/v1/header/"+updated.ID.String()+"/status", bearer, map[string]any{"status": "NOT_ACTIVE"})

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body Header
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "NOT_ACTIVE", body.Status)
	svc.AssertExpectations(t)
}

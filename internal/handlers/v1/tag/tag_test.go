package tag

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashbook-server/internal/handlers/handlertest"
	"github.com/carson-networks/cashbook-server/internal/service"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

type mockTagService struct {
	mock.Mock
}

func (m *mockTagService) CreateTag(ctx context.Context, ownerID uuid.UUID, name, details string) (*service.Tag, error) {
	args := m.Called(ctx, ownerID, name, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Tag), args.Error(1)
}

func (m *mockTagService) ListTags(ctx context.Context, ownerID uuid.UUID) ([]service.Tag, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Tag), args.Error(1)
}

func (m *mockTagService) UpdateTag(ctx context.Context, ownerID, id uuid.UUID, update sqlconfig.TagUpdate) (*service.Tag, error) {
	args := m.Called(ctx, ownerID, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Tag), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockTagService, ownerID uuid.UUID) (humatest.TestAPI, string) {
	t.Helper()
	sessions := handlertest.NewSessions()
	api := handlertest.NewAPI(t, sessions)
	NewHandler(svc).Register(api)
	return api, handlertest.Bearer(t, sessions, ownerID)
}

func sampleTag(name string) *service.Tag {
	created := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	return &service.Tag{ID: uuid.Must(uuid.NewV4()), Name: name, CreatedAt: created, UpdatedAt: created}
}

func TestHTTP_CreateTag(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	created := sampleTag("Travel")

	svc := new(mockTagService)
	svc.On("CreateTag", mock.Anything, ownerID, "Travel", "").Return(created, nil)

	api, bearer := newTestAPI(t, svc, ownerID)
	resp := api.Post("/v1/tag", bearer, map[string]any{"name": "Travel"})

	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var body Tag
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, created.ID.String(), body.ID)
	assert.Equal(t, "2025-02-01T00:00:00Z", body.CreatedAt)
	svc.AssertExpectations(t)
}

func TestHTTP_CreateTag_EmptyName(t *testing.T) {
	svc := new(mockTagService)
	api, bearer := newTestAPI(t, svc, uuid.Must(uuid.NewV4()))

	resp := api.Post("/v1/tag", bearer, map[string]any{"name": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "CreateTag", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_ListTags(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())

	svc := new(mockTagService)
	svc.On("ListTags", mock.Anything, ownerID).
		Return([]service.Tag{*sampleTag("Food"), *sampleTag("Travel")}, nil)

	api, bearer := newTestAPI(t, svc, ownerID)
	resp := api.Get("/v1/tags", bearer)

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body struct {
		Tags []Tag `json:"tags"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Tags, 2)
	assert.Equal(t, "Travel", body.Tags[1].Name)
}

func TestHTTP_UpdateTag_OnlySentFields(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	updated := sampleTag("Trips")

	svc := new(mockTagService)
	svc.On("UpdateTag", mock.Anything, ownerID, updated.ID, sqlconfig.TagUpdate{Name: omit.From("Trips")}).
		Return(updated, nil)

	api, bearer := newTestAPI(t, svc, ownerID)
	resp := api.Put("/v1/tag/"+updated.ID.String(), bearer, map[string]any{"name": "Trips"})

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	svc.AssertExpectations(t)
}

func TestHTTP_UpdateTag_NotOwned(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())

	svc := new(mockTagService)
	svc.On("UpdateTag", mock.Anything, ownerID, id, mock.Anything).
		Return(nil, fmt.Errorf("update tag: tag: %w", service.ErrNotFound))

	api, bearer := newTestAPI(t, svc, ownerID)
	resp := api.Put("/v1/tag/"+id.String(), bearer, map[string]any{"details": "x"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_Tags_RequireSession(t *testing.T) {
	api, _ := newTestAPI(t, new(mockTagService), uuid.Must(uuid.NewV4()))

	assert.Equal(t, http.StatusUnauthorized, api.Get("/v1/tags").Code)
}

package header

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/handlers/httperr"
	"github.com/carson-networks/cashbook-server/internal/handlers/request"
	"github.com/carson-networks/cashbook-server/internal/service"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

// Header is the API response model for a ledger header.
type Header struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Details   string `json:"details"`
	Status    string `json:"status" enum:"ACTIVE,NOT_ACTIVE"`
	CreatedAt string `json:"createdAt"`
}

func fromService(h service.Header) Header {
	return Header{
		ID:        h.ID.String(),
		Name:      h.Name,
		Details:   h.Details,
		Status:    string(h.Status),
		CreatedAt: h.CreatedAt.Format(time.RFC3339),
	}
}

type CreateHeaderInput struct {
	Body struct {
		Name    string `json:"name" minLength:"1" maxLength:"200"`
		Details string `json:"details,omitempty" maxLength:"1000"`
	}
}

type ListHeadersInput struct{}

type UpdateHeaderStatusInput struct {
	ID   string `path:"id" doc:"Header UUID"`
	Body struct {
		Status string `json:"status" enum:"ACTIVE,NOT_ACTIVE"`
	}
}

type HeaderOutput struct {
	Body Header
}

type ListHeadersOutput struct {
	Body struct {
		Headers []Header `json:"headers"`
	}
}

type headerService interface {
	CreateHeader(ctx context.Context, ownerID uuid.UUID, name, details string) (*service.Header, error)
	ListHeaders(ctx context.Context, ownerID uuid.UUID) ([]service.Header, error)
	UpdateHeaderStatus(ctx context.Context, ownerID, id uuid.UUID, status sqlconfig.HeaderStatus) (*service.Header, error)
}

// Handler serves the header endpoints under /v1/header.
type Handler struct {
	HeaderService headerService
}

func NewHandler(svc headerService) *Handler {
	return &Handler{HeaderService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-header",
		Method:        http.MethodPost,
		Path:          "/v1/header",
		Summary:       "Create header",
		Tags:          []string{"Headers"},
		DefaultStatus: http.StatusCreated,
		Security:      request.SessionSecurity,
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID: "list-headers",
		Method:      http.MethodGet,
		Path:        "/v1/headers",
		Summary:     "List headers",
		Description: "Returns every header of the caller ordered by name.",
		Tags:        []string{"Headers"},
		Security:    request.SessionSecurity,
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID: "update-header-status",
		Method:      http.MethodPatch,
		Path:        "/v1/header/{id}/status",
		Summary:     "Update header status",
		Tags:        []string{"Headers"},
		Security:    request.SessionSecurity,
	}, h.updateStatus)
}

func (h *Handler) create(ctx context.Context, input *CreateHeaderInput) (*HeaderOutput, error) {
	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	created, err := h.HeaderService.CreateHeader(ctx, ownerID, input.Body.Name, input.Body.Details)
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to create header")
	}
	return &HeaderOutput{Body: fromService(*created)}, nil
}

func (h *Handler) list(ctx context.Context, _ *ListHeadersInput) (*ListHeadersOutput, error) {
	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	headers, err := h.HeaderService.ListHeaders(ctx, ownerID)
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to list headers")
	}

	out := &ListHeadersOutput{}
	out.Body.Headers = make([]Header, len(headers))
	for i, header := range headers {
		out.Body.Headers[i] = fromService(header)
	}
	return out, nil
}

func (h *Handler) updateStatus(ctx context.Context, input *UpdateHeaderStatusInput) (*HeaderOutput, error) {
	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := request.UUID("path.id", input.ID)
	if err != nil {
		return nil, err
	}
	updated, err := h.HeaderService.UpdateHeaderStatus(ctx, ownerID, id, sqlconfig.HeaderStatus(input.Body.Status))
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to update header status")
	}
	return &HeaderOutput{Body: fromService(*updated)}, nil
}

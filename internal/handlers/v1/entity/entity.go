// Package entity serves the sources and destinations of money a ledger row
// can name.
package entity

import (
	"context"
	"net/http"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/handlers/httperr"
	"github.com/carson-networks/cashbook-server/internal/handlers/request"
	"github.com/carson-networks/cashbook-server/internal/service"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

type Entity struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	GST        string `json:"gst"`
	PAN        string `json:"pan"`
	Address    string `json:"address"`
	State      string `json:"state"`
	PIN        string `json:"pin"`
	Country    string `json:"country"`
	NationalID string `json:"nationalId"`
	Details    string `json:"details"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

func fromService(e service.Entity) Entity {
	return Entity{
		ID:         e.ID.String(),
		Name:       e.Name,
		GST:        e.GST,
		PAN:        e.PAN,
		Address:    e.Address,
		State:      e.State,
		PIN:        e.PIN,
		Country:    e.Country,
		NationalID: e.NationalID,
		Details:    e.Details,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  e.UpdatedAt.Format(time.RFC3339),
	}
}

type CreateEntityBody struct {
	Name       string `json:"name" minLength:"3" maxLength:"200"`
	GST        string `json:"gst,omitempty" maxLength:"32"`
	PAN        string `json:"pan,omitempty" maxLength:"32"`
	Address    string `json:"address,omitempty" maxLength:"500"`
	State      string `json:"state,omitempty" maxLength:"100"`
	PIN        string `json:"pin,omitempty" maxLength:"16"`
	Country    string `json:"country,omitempty" maxLength:"100"`
	NationalID string `json:"nationalId,omitempty" maxLength:"64"`
	Details    string `json:"details,omitempty" maxLength:"1000"`
}

type CreateEntityInput struct {
	Body CreateEntityBody
}

type ListEntitiesInput struct{}

// UpdateEntityBody holds the fields to change. Omitted fields keep their value.
type UpdateEntityBody struct {
	Name       *string `json:"name,omitempty" minLength:"3" maxLength:"200"`
	GST        *string `json:"gst,omitempty" maxLength:"32"`
	PAN        *string `json:"pan,omitempty" maxLength:"32"`
	Address    *string `json:"address,omitempty" maxLength:"500"`
	State      *string `json:"state,omitempty" maxLength:"100"`
	PIN        *string `json:"pin,omitempty" maxLength:"16"`
	Country    *string `json:"country,omitempty" maxLength:"100"`
	NationalID *string `json:"nationalId,omitempty" maxLength:"64"`
	Details    *string `json:"details,omitempty" maxLength:"1000"`
}

type UpdateEntityInput struct {
	ID   string `path:"id" doc:"Entity UUID"`
	Body UpdateEntityBody
}

type EntityOutput struct {
	Body Entity
}

type ListEntitiesOutput struct {
	Body struct {
		Entities []Entity `json:"entities"`
	}
}

type entityService interface {
	CreateEntity(ctx context.Context, ownerID uuid.UUID, input service.EntityInput) (*service.Entity, error)
	ListEntities(ctx context.Context, ownerID uuid.UUID) ([]service.Entity, error)
	UpdateEntity(ctx context.Context, ownerID, id uuid.UUID, update sqlconfig.EntityUpdate) (*service.Entity, error)
}

type Handler struct {
	EntityService entityService
}

func NewHandler(svc entityService) *Handler {
	return &Handler{EntityService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-entity",
		Method:        http.MethodPost,
		Path:          "/v1/entity",
		Summary:       "Create source/destination entity",
		Tags:          []string{"Entities"},
		DefaultStatus: http.StatusCreated,
		Security:      request.SessionSecurity,
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID: "list-entities",
		Method:      http.MethodGet,
		Path:        "/v1/entities",
		Summary:     "List source/destination entities",
		Tags:        []string{"Entities"},
		Security:    request.SessionSecurity,
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID: "update-entity",
		Method:      http.MethodPut,
		Path:        "/v1/entity/{id}",
		Summary:     "Update source/destination entity",
		Tags:        []string{"Entities"},
		Security:    request.SessionSecurity,
	}, h.update)
}

func (h *Handler) create(ctx context.Context, input *CreateEntityInput) (*EntityOutput, error) {
	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	b := input.Body
	created, err := h.EntityService.CreateEntity(ctx, ownerID, service.EntityInput{
		Name:       b.Name,
		GST:        b.GST,
		PAN:        b.PAN,
		Address:    b.Address,
		State:      b.State,
		PIN:        b.PIN,
		Country:    b.Country,
		NationalID: b.NationalID,
		Details:    b.Details,
	})
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to create entity")
	}
	return &EntityOutput{Body: fromService(*created)}, nil
}

func (h *Handler) list(ctx context.Context, _ *ListEntitiesInput) (*ListEntitiesOutput, error) {
	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	entities, err := h.EntityService.ListEntities(ctx, ownerID)
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to list entities")
	}

	out := &ListEntitiesOutput{}
	out.Body.Entities = make([]Entity, len(entities))
	for i, e := range entities {
		out.Body.Entities[i] = fromService(e)
	}
	return out, nil
}

func (h *Handler) update(ctx context.Context, input *UpdateEntityInput) (*EntityOutput, error) {
	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := request.UUID("path.id", input.ID)
	if err != nil {
		return nil, err
	}
	updated, err := h.EntityService.UpdateEntity(ctx, ownerID, id, parseUpdateEntityBody(input.Body))
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to update entity")
	}
	return &EntityOutput{Body: fromService(*updated)}, nil
}

func parseUpdateEntityBody(b UpdateEntityBody) sqlconfig.EntityUpdate {
	return sqlconfig.EntityUpdate{
		Name:       omit.FromPtr(b.Name),
		GST:        omit.FromPtr(b.GST),
		PAN:        omit.FromPtr(b.PAN),
		Address:    omit.FromPtr(b.Address),
		State:      omit.FromPtr(b.State),
		PIN:        omit.FromPtr(b.PIN),
		Country:    omit.FromPtr(b.Country),
		NationalID: omit.FromPtr(b.NationalID),
		Details:    omit.FromPtr(b.Details),
	}
}

package tag

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

// Tag is the API response model for a tag.
type Tag struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Details   string `json:"details"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func fromService(t service.Tag) Tag {
	return Tag{
		ID:        t.ID.String(),
		Name:      t.Name,
		Details:   t.Details,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}

type CreateTagInput struct {
	Body struct {
		Name    string `json:"name" minLength:"1" maxLength:"200"`
		Details string `json:"details,omitempty" maxLength:"1000"`
	}
}

type ListTagsInput struct{}

type UpdateTagInput struct {
	ID   string `path:"id" doc:"Tag UUID"`
	Body struct {
		Name    *string `json:"name,omitempty" minLength:"1" maxLength:"200"`
		Details *string `json:"details,omitempty" maxLength:"1000"`
	}
}

type TagOutput struct {
	Body Tag
}

type ListTagsOutput struct {
	Body struct {
		Tags []Tag `json:"tags"`
	}
}

type tagService interface {
	CreateTag(ctx context.Context, ownerID uuid.UUID, name, details string) (*service.Tag, error)
	ListTags(ctx context.Context, ownerID uuid.UUID) ([]service.Tag, error)
	UpdateTag(ctx context.Context, ownerID, id uuid.UUID, update sqlconfig.TagUpdate) (*service.Tag, error)
}

// Handler serves the tag endpoints.
type Handler struct {
	TagService tagService
}

func NewHandler(svc tagService) *Handler {
	return &Handler{TagService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-tag",
		Method:        http.MethodPost,
		Path:          "/v1/tag",
		Summary:       "Create tag",
		Tags:          []string{"Tags"},
		DefaultStatus: http.StatusCreated,
		Security:      request.SessionSecurity,
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID: "list-tags",
		Method:      http.MethodGet,
		Path:        "/v1/tags",
		Summary:     "List tags",
		Description: "Returns every tag of the caller ordered by name.",
		Tags:        []string{"Tags"},
		Security:    request.SessionSecurity,
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID: "update-tag",
		Method:      http.MethodPut,
		Path:        "/v1/tag/{id}",
		Summary:     "Update tag",
		Tags:        []string{"Tags"},
		Security:    request.SessionSecurity,
	}, h.update)
}

func (h *Handler) create(ctx context.Context, input *CreateTagInput) (*TagOutput, error) {
	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	created, err := h.TagService.CreateTag(ctx, ownerID, input.Body.Name, input.Body.Details)
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to create tag")
	}
	return &TagOutput{Body: fromService(*created)}, nil
}

func (h *Handler) list(ctx context.Context, _ *ListTagsInput) (*ListTagsOutput, error) {
	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := h.TagService.ListTags(ctx, ownerID)
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to list tags")
	}

	out := &ListTagsOutput{}
	out.Body.Tags = make([]Tag, len(tags))
	for i, tag := range tags {
		out.Body.Tags[i] = fromService(tag)
	}
	return out, nil
}

func (h *Handler) update(ctx context.Context, input *UpdateTagInput) (*TagOutput, error) {
	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := request.UUID("path.id", input.ID)
	if err != nil {
		return nil, err
	}

	update := sqlconfig.TagUpdate{
		Name:    omit.FromPtr(input.Body.Name),
		Details: omit.FromPtr(input.Body.Details),
	}
	updated, err := h.TagService.UpdateTag(ctx, ownerID, id, update)
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to update tag")
	}
	return &TagOutput{Body: fromService(*updated)}, nil
}

package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/handlers/httperr"
	"github.com/carson-networks/cashbook-server/internal/handlers/request"
	"github.com/carson-networks/cashbook-server/internal/service"
)

type UpdateProfileInput struct {
	Body struct {
		FirstName *string `json:"firstName,omitempty" minLength:"1" maxLength:"100"`
		LastName  *string `json:"lastName,omitempty" maxLength:"100"`
	}
}

// UpdateProfileHandler handles PUT /v1/user/me.
type UpdateProfileHandler struct {
	UserService userService
}

func NewUpdateProfileHandler(svc userService) *UpdateProfileHandler {
	return &UpdateProfileHandler{UserService: svc}
}

func (h *UpdateProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-me",
		Method:      http.MethodPut,
		Path:        "/v1/user/me",
		Summary:     "Update current user",
		Description: "Changes the first and last name. Omitted fields keep their value.",
		Tags:        []string{"Users"},
		Security:    request.SessionSecurity,
	}, h.handle)
}

func (h *UpdateProfileHandler) handle(ctx context.Context, input *UpdateProfileInput) (*MeOutput, error) {
	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	u, err := h.UserService.UpdateProfile(ctx, ownerID, service.ProfileUpdate{
		FirstName: input.Body.FirstName,
		LastName:  input.Body.LastName,
	})
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to update user")
	}
	return &MeOutput{Body: fromService(*u)}, nil
}

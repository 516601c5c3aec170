package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/handlers/httperr"
	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/service"
)

type RegisterBody struct {
	Email       string `json:"email" format:"email" maxLength:"254"`
	Password    string `json:"password" doc:"At least 6 characters and at most 72 bytes"`
	FirstName   string `json:"firstName" minLength:"1" maxLength:"100"`
	LastName    string `json:"lastName,omitempty" maxLength:"100"`
	Phone       string `json:"phone,omitempty" maxLength:"32"`
	CompanyName string `json:"companyName,omitempty" maxLength:"200"`
	Country     string `json:"country,omitempty" maxLength:"100"`
}

type RegisterInput struct {
	Body RegisterBody
}

// RegisterHandler handles POST /v1/auth/register.
type RegisterHandler struct {
	UserService userService
	Sessions    sessionManager
}

func NewRegisterHandler(svc userService, sessions sessionManager) *RegisterHandler {
	return &RegisterHandler{UserService: svc, Sessions: sessions}
}

func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "register",
		Method:        http.MethodPost,
		Path:          "/v1/auth/register",
		Summary:       "Register",
		Description:   "Creates a user and starts a session.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*SessionOutput, error) {
	created, err := h.UserService.Register(ctx, service.RegisterInput{
		Email:       input.Body.Email,
		Password:    input.Body.Password,
		FirstName:   input.Body.FirstName,
		LastName:    input.Body.LastName,
		Phone:       input.Body.Phone,
		CompanyName: input.Body.CompanyName,
		Country:     input.Body.Country,
	})
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to register")
	}
	logging.GetLogData(ctx).AddData("userID", created.ID.String())

	out, err := sessionOutput(h.Sessions, created)
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to start session")
	}
	return out, nil
}

package account

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/handlers/httperr"
	"github.com/carson-networks/cashbook-server/internal/handlers/request"
	"github.com/carson-networks/cashbook-server/internal/service"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

type UpdateAccountBody struct {
	Name          *string `json:"name,omitempty" minLength:"1" maxLength:"200"`
	Type          *int    `json:"type,omitempty" minimum:"0" maximum:"8"`
	AccountNumber *string `json:"accountNumber,omitempty" maxLength:"64"`
	Details       *string `json:"details,omitempty" maxLength:"1000"`
	Status        *string `json:"status,omitempty" enum:"ACTIVE,FROZEN,CLOSED"`
}

type UpdateAccountInput struct {
	ID   string `path:"id" doc:"Account UUID"`
	Body UpdateAccountBody
}

type UpdateAccountStatusInput struct {
	ID   string `path:"id" doc:"Account UUID"`
	Body struct {
		Status string `json:"status" enum:"ACTIVE,FROZEN,CLOSED"`
	}
}

type UpdateAccountOutput struct {
	Body Account
}

type accountUpdater interface {
	UpdateAccount(ctx context.Context, ownerID, id uuid.UUID, update sqlconfig.AccountUpdate) (*service.Account, error)
	UpdateAccountStatus(ctx context.Context, ownerID, id uuid.UUID, status sqlconfig.AccountStatus) (*service.Account, error)
}

// UpdateAccountHandler handles PUT /v1/account/{id} and PATCH /v1/account/{id}/status.
type UpdateAccountHandler struct {
	AccountService accountUpdater
}

func NewUpdateAccountHandler(svc accountUpdater) *UpdateAccountHandler {
	return &UpdateAccountHandler{AccountService: svc}
}

func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPut,
		Path:        "/v1/account/{id}",
		Summary:     "Update an account",
		Tags:        []string{"Accounts"},
		Security:    request.SessionSecurity,
	}, h.handleUpdate)

	huma.Register(api, huma.Operation{
		OperationID: "update-account-status",
		Method:      http.MethodPatch,
		Path:        "/v1/account/{id}/status",
		Summary:     "Update account status",
		Tags:        []string{"Accounts"},
		Security:    request.SessionSecurity,
	}, h.handleStatus)
}

func parseUpdateAccountBody(body *UpdateAccountBody) (sqlconfig.AccountUpdate, error) {
	var update sqlconfig.AccountUpdate
	if body.Name != nil {
		update.Name = omit.From(*body.Name)
	}
	if body.Type != nil {
		accountType := service.AccountType(*body.Type)
		if !accountType.Valid() {
			return update, request.InvalidField("body.type", "unknown account type", *body.Type)
		}
		update.Type = omit.From(sqlconfig.AccountType(accountType))
	}
	if body.AccountNumber != nil {
		update.AccountNumber = omit.From(*body.AccountNumber)
	}
	if body.Details != nil {
		update.Details = omit.From(*body.Details)
	}
	if body.Status != nil {
		update.Status = omit.From(sqlconfig.AccountStatus(*body.Status))
	}
	return update, nil
}

func (h *UpdateAccountHandler) handleUpdate(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := request.UUID("path.id", input.ID)
	if err != nil {
		return nil, err
	}
	update, err := parseUpdateAccountBody(&input.Body)
	if err != nil {
		return nil, err
	}

	updated, err := h.AccountService.UpdateAccount(ctx, ownerID, id, update)
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to update account")
	}
	return &UpdateAccountOutput{Body: fromService(*updated)}, nil
}

func (h *UpdateAccountHandler) handleStatus(ctx context.Context, input *UpdateAccountStatusInput) (*UpdateAccountOutput, error) {
	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := request.UUID("path.id", input.ID)
	if err != nil {
		return nil, err
	}

	updated, err := h.AccountService.UpdateAccountStatus(ctx, ownerID, id, sqlconfig.AccountStatus(input.Body.Status))
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to update account status")
	}
	return &UpdateAccountOutput{Body: fromService(*updated)}, nil
}

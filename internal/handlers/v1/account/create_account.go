package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/handlers/httperr"
	"github.com/carson-networks/cashbook-server/internal/handlers/request"
	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountBody is the request body fields for creating an account.
type CreateAccountBody struct {
	Name          string `json:"name" minLength:"1" maxLength:"200" doc:"Account name"`
	Type          int    `json:"type" minimum:"0" maximum:"8" doc:"Account type: 0=Cash, 1=Bank Credit, 2=Bank Savings, 3=Credit Card, 4=Demat, 5=Loan, 6=Trading, 7=UPI, 8=Other"`
	AccountNumber string `json:"accountNumber,omitempty" maxLength:"64"`
	Details       string `json:"details,omitempty" maxLength:"1000"`
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Body Account
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, ownerID uuid.UUID, input service.AccountInput) (*service.Account, error)
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPost,
		Path:          "/v1/account",
		Summary:       "Create an account",
		Description:   "Creates a new active account owned by the caller.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusCreated,
		Security:      request.SessionSecurity,
	}, h.handle)
}

func parseCreateAccountBody(body *CreateAccountBody) (service.AccountInput, error) {
	accountType := service.AccountType(body.Type)
	if !accountType.Valid() {
		return service.AccountInput{}, request.InvalidField("body.type", "unknown account type", body.Type)
	}
	return service.AccountInput{
		Name:          body.Name,
		Type:          accountType,
		AccountNumber: body.AccountNumber,
		Details:       body.Details,
	}, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	ownerID, err := request.Owner(ctx)
	if err != nil {
		return nil, err
	}
	create, err := parseCreateAccountBody(&input.Body)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("createAccountMs")
	created, err := h.AccountService.CreateAccount(ctx, ownerID, create)
	stopTimer()
	if err != nil {
		return nil, httperr.FromService(ctx, err, "failed to create account")
	}

	logData.AddData("accountID", created.ID.String())
	return &CreateAccountOutput{Body: fromService(*created)}, nil
}

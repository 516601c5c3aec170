package httperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashbook-server/internal/ledger"
	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/service"
)

func statusOf(t *testing.T, err error) *huma.ErrorModel {
	t.Helper()
	var model *huma.ErrorModel
	require.True(t, errors.As(err, &model))
	return model
}

func TestFromService(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"not found", fmt.Errorf("create transaction: account: %w", service.ErrNotFound), http.StatusNotFound, "create transaction: account: record not found"},
		{"conflict", fmt.Errorf("email already registered: %w", service.ErrConflict), http.StatusConflict, "email already registered: record already exists"},
		{"credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
		{"cursor", fmt.Errorf("debit: %w", ledger.ErrInvalidCursor), http.StatusBadRequest, "invalid cursor"},
		{"internal", errors.New("pq: relation does not exist"), http.StatusInternalServerError, "failed to list"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			model := statusOf(t, FromService(ctx, tc.err, "failed to list"))
			assert.Equal(t, tc.status, model.Status)
			assert.Equal(t, tc.detail, model.Detail)
		})
	}
}

func TestFromService_InternalCauseIsLoggedNotReturned(t *testing.T) {
	logData := logging.NewLogData(logrus.New())
	ctx := logging.WithLogData(context.Background(), logData)

	err := FromService(ctx, errors.New("pq: password authentication failed"), "failed to create account")
	model := statusOf(t, err)
	assert.NotContains(t, model.Detail, "password")
	assert.Empty(t, model.Errors)
	assert.Equal(t, "pq: password authentication failed", logData.Log().Data["error"])
}

func TestFromService_ValidationErrors(t *testing.T) {
	type input struct {
		Email string `validate:"required,email"`
	}
	err := validator.New().Struct(input{Email: "nope"})

	model := statusOf(t, FromService(context.Background(), err, "failed"))
	assert.Equal(t, http.StatusUnprocessableEntity, model.Status)
	require.Len(t, model.Errors, 1)
	assert.Equal(t, "body.email", model.Errors[0].Location)
	assert.Nil(t, model.Errors[0].Value)
}

func TestFromService_ValidationErrorsOmitSubmittedValue(t *testing.T) {
	type input struct {
		Password string `validate:"min=6"`
	}
	err := validator.New().Struct(input{Password: "abc12"})

	model := statusOf(t, FromService(context.Background(), err, "failed"))
	require.Len(t, model.Errors, 1)
	assert.Equal(t, "body.password", model.Errors[0].Location)
	assert.Equal(t, "failed min=6 validation", model.Errors[0].Message)
	assert.Nil(t, model.Errors[0].Value)
	assert.NotContains(t, model.Error(), "abc12")
}

func TestFromService_Nil(t *testing.T) {
	assert.NoError(t, FromService(context.Background(), nil, "unused"))
}

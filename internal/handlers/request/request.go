// Package request holds the input parsing shared by the v1 handlers. Every
// parse failure is a 400 that names the offending field.
package request

import (
	"context"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashbook-server/internal/auth"
)

const dateOnly = "2006-01-02"

// SessionSecurity marks an operation as requiring a session.
var SessionSecurity = []map[string][]string{{auth.SecurityScheme: {}}}

// InvalidField builds the 400 returned for a field that failed parsing.
func InvalidField(location, message string, value any) error {
	return huma.Error400BadRequest("invalid "+location, &huma.ErrorDetail{
		Location: location,
		Message:  message,
		Value:    value,
	})
}

// Owner returns the authenticated owner id of the request.
func Owner(ctx context.Context) (uuid.UUID, error) {
	ownerID, ok := auth.OwnerID(ctx)
	if !ok {
		return uuid.Nil, huma.Error401Unauthorized("unauthorized")
	}
	return ownerID, nil
}

func UUID(location, raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, InvalidField(location, "expected a UUID", raw)
	}
	return id, nil
}

// OptionalUUID returns nil for an empty value.
func OptionalUUID(location, raw string) (*uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	id, err := UUID(location, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// NullableUUID parses an update field where an empty string clears the reference.
func NullableUUID(location, raw string) (uuid.NullUUID, error) {
	id, err := OptionalUUID(location, raw)
	if err != nil || id == nil {
		return uuid.NullUUID{}, err
	}
	return uuid.NullUUID{UUID: *id, Valid: true}, nil
}

// Amount parses a strictly positive decimal.
func Amount(location, raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, InvalidField(location, "expected a decimal number", raw)
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, InvalidField(location, "must be greater than zero", raw)
	}
	return amount, nil
}

// Date accepts RFC3339 or YYYY-MM-DD. A date without a time is midnight UTC.
func Date(location, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(dateOnly, raw); err == nil {
		return t, nil
	}
	return time.Time{}, InvalidField(location, "expected RFC3339 or YYYY-MM-DD", raw)
}

func OptionalDate(location, raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := Date(location, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

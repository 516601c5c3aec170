package account

import (
	"time"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID            string `json:"id" doc:"Account UUID"`
	Name          string `json:"name" doc:"Account name"`
	Type          int    `json:"type" doc:"Account type: 0=Cash, 1=Bank Credit, 2=Bank Savings, 3=Credit Card, 4=Demat, 5=Loan, 6=Trading, 7=UPI, 8=Other"`
	AccountNumber string `json:"accountNumber"`
	Details       string `json:"details"`
	Status        string `json:"status" enum:"ACTIVE,FROZEN,CLOSED"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

func fromService(a service.Account) Account {
	return Account{
		ID:            a.ID.String(),
		Name:          a.Name,
		Type:          int(a.Type),
		AccountNumber: a.AccountNumber,
		Details:       a.Details,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     a.UpdatedAt.Format(time.RFC3339),
	}
}

package transaction

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string  `json:"id" doc:"Transaction UUID"`
	Type            string  `json:"type" enum:"CREDIT,DEBIT"`
	Amount          string  `json:"amount" doc:"Decimal amount"`
	Details         string  `json:"details"`
	TransferID      string  `json:"transferId" doc:"External transfer reference"`
	Status          string  `json:"status" enum:"PENDING,COMPLETE"`
	TransactionDate string  `json:"transactionDate" doc:"RFC3339 transaction date"`
	AccountID       string  `json:"accountId" doc:"Account UUID"`
	HeaderID        *string `json:"headerId" doc:"Header UUID"`
	TagID           *string `json:"tagId"`
	EntityID        *string `json:"entityId"`
	BudgetID        *string `json:"budgetId" doc:"Budget this transaction settles"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// TransactionPage is one partition of the ledger response.
type TransactionPage struct {
	Items      []Transaction `json:"items"`
	NextCursor *string       `json:"nextCursor" doc:"Pass back as creditCursor/debitCursor; null on the last page"`
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:              tx.ID.String(),
		Type:            string(tx.Type),
		Amount:          tx.Amount.String(),
		Details:         tx.Details,
		TransferID:      tx.TransferID,
		Status:          string(tx.Status),
		TransactionDate: tx.TransactionDate.Format(time.RFC3339),
		AccountID:       tx.AccountID.String(),
		HeaderID:        idString(tx.HeaderID),
		TagID:           idString(tx.TagID),
		EntityID:        idString(tx.EntityID),
		BudgetID:        idString(tx.BudgetID),
		CreatedAt:       tx.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       tx.UpdatedAt.Format(time.RFC3339),
	}
}

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

package budget

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cashbook-server/internal/ledger"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// Budget is the API response model for a planned income or expense.
type Budget struct {
	ID              string  `json:"id"`
	Type            string  `json:"type" enum:"CREDIT,DEBIT"`
	Amount          string  `json:"amount"`
	Details         string  `json:"details"`
	TransferID      string  `json:"transferId"`
	Status          string  `json:"status" enum:"UNDER_PROCESS,COMPLETE_EXACT,COMPLETE_UNDERPAID,COMPLETE_OVERPAID,PARTIALLY_PAID,STALLED,CANCELLED"`
	TransactionDate string  `json:"transactionDate" doc:"Planned date"`
	AccountID       string  `json:"accountId"`
	HeaderID        *string `json:"headerId"`
	TagID           *string `json:"tagId"`
	EntityID        *string `json:"entityId"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

type BudgetPage struct {
	Items      []Budget `json:"items"`
	NextCursor *string  `json:"nextCursor"`
}

func fromService(b service.Budget) Budget {
	return Budget{
		ID:              b.ID.String(),
		Type:            string(b.Type),
		Amount:          b.Amount.String(),
		Details:         b.Details,
		TransferID:      b.TransferID,
		Status:          string(b.Status),
		TransactionDate: b.TransactionDate.Format(time.RFC3339),
		AccountID:       b.AccountID.String(),
		HeaderID:        idString(b.HeaderID),
		TagID:           idString(b.TagID),
		EntityID:        idString(b.EntityID),
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}
}

func toPage(page ledger.Page[service.Budget]) BudgetPage {
	out := BudgetPage{
		Items:      make([]Budget, len(page.Items)),
		NextCursor: idString(page.NextCursor),
	}
	for i, b := range page.Items {
		out.Items[i] = fromService(b)
	}
	return out
}

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

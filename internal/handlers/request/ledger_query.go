package request

import (
	"github.com/carson-networks/cashbook-server/internal/ledger"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// LedgerQuery is the query string of the dual page ledger endpoints.
type LedgerQuery struct {
	StartDate    string `query:"startDate" doc:"Earliest transaction date, RFC3339 or YYYY-MM-DD"`
	EndDate      string `query:"endDate" doc:"Latest transaction date, RFC3339 or YYYY-MM-DD (inclusive)"`
	AccountID    string `query:"accountId" doc:"Only records of this account"`
	HeaderID     string `query:"headerId" doc:"Only records under this header"`
	Search       string `query:"search" maxLength:"200" doc:"Case-insensitive match on details or transfer id"`
	SortBy       string `query:"sortBy" enum:"createdAt,updatedAt,transactionDate,amount" default:"createdAt"`
	SortOrder    string `query:"sortOrder" enum:"asc,desc" default:"desc"`
	Limit        int    `query:"limit" minimum:"1" maximum:"100" default:"30" doc:"Page size per partition"`
	CreditCursor string `query:"creditCursor" doc:"nextCursor of the previous credit page"`
	DebitCursor  string `query:"debitCursor" doc:"nextCursor of the previous debit page"`
}

// Parse validates the query and builds the service request.
func (q *LedgerQuery) Parse() (service.LedgerRequest, error) {
	var req service.LedgerRequest
	var err error

	if req.Filter.StartDate, err = OptionalDate("query.startDate", q.StartDate); err != nil {
		return req, err
	}
	if req.Filter.EndDate, err = OptionalDate("query.endDate", q.EndDate); err != nil {
		return req, err
	}
	if req.Filter.StartDate != nil && req.Filter.EndDate != nil && req.Filter.StartDate.After(*req.Filter.EndDate) {
		return req, InvalidField("query.startDate", "must not be after endDate", q.StartDate)
	}
	if req.Filter.AccountID, err = OptionalUUID("query.accountId", q.AccountID); err != nil {
		return req, err
	}
	if req.Filter.HeaderID, err = OptionalUUID("query.headerId", q.HeaderID); err != nil {
		return req, err
	}
	if req.CreditCursor, err = OptionalUUID("query.creditCursor", q.CreditCursor); err != nil {
		return req, err
	}
	if req.DebitCursor, err = OptionalUUID("query.debitCursor", q.DebitCursor); err != nil {
		return req, err
	}

	req.Filter.Search = q.Search
	req.Filter.SortBy = ledger.SortField(q.SortBy)
	req.Filter.SortOrder = ledger.SortOrder(q.SortOrder)
	req.Limit = q.Limit
	return req, nil
}

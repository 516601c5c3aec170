package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Type is the partition discriminant of a ledger record.
type Type string

const (
	TypeCredit Type = "CREDIT"
	TypeDebit  Type = "DEBIT"
)

func (t Type) Valid() bool {
	return t == TypeCredit || t == TypeDebit
}

// TransactionStatus is the status of a transaction record.
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "PENDING"
	TransactionStatusComplete TransactionStatus = "COMPLETE"
)

func (s TransactionStatus) Valid() bool {
	return s == TransactionStatusPending || s == TransactionStatusComplete
}

// BudgetStatus is the status of a budget record. Any status may follow any other.
type BudgetStatus string

const (
	BudgetStatusUnderProcess      BudgetStatus = "UNDER_PROCESS"
	BudgetStatusCompleteExact     BudgetStatus = "COMPLETE_EXACT"
	BudgetStatusCompleteUnderpaid BudgetStatus = "COMPLETE_UNDERPAID"
	BudgetStatusCompleteOverpaid  BudgetStatus = "COMPLETE_OVERPAID"
	BudgetStatusPartiallyPaid     BudgetStatus = "PARTIALLY_PAID"
	BudgetStatusStalled           BudgetStatus = "STALLED"
	BudgetStatusCancelled         BudgetStatus = "CANCELLED"
)

// BudgetStatuses lists every legal budget status.
var BudgetStatuses = []BudgetStatus{
	BudgetStatusUnderProcess,
	BudgetStatusCompleteExact,
	BudgetStatusCompleteUnderpaid,
	BudgetStatusCompleteOverpaid,
	BudgetStatusPartiallyPaid,
	BudgetStatusStalled,
	BudgetStatusCancelled,
}

func (s BudgetStatus) Valid() bool {
	for _, status := range BudgetStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// SortField names a sortable ledger column using its API spelling.
type SortField string

const (
	SortByCreatedAt       SortField = "createdAt"
	SortByUpdatedAt       SortField = "updatedAt"
	SortByTransactionDate SortField = "transactionDate"
	SortByAmount          SortField = "amount"
)

// Column returns the database column backing the field. Unknown fields sort by creation time.
func (f SortField) Column() string {
	switch f {
	case SortByUpdatedAt:
		return "updated_at"
	case SortByTransactionDate:
		return "transaction_date"
	case SortByAmount:
		return "amount"
	default:
		return "created_at"
	}
}

// SortOrder is either ascending or descending.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	DefaultLimit = 30
	MaxLimit     = 100
)

// Filter holds the caller supplied predicates shared by both partitions.
type Filter struct {
	StartDate *time.Time
	EndDate   *time.Time
	AccountID *uuid.UUID
	HeaderID  *uuid.UUID
	Search    string
	SortBy    SortField
	SortOrder SortOrder
}

// Query is one page request against one partition of one owner.
// Stores answering a Query return at most Limit+1 records that match
// OwnerID, Type and Filter, ordered by (SortBy, id) in SortOrder and
// starting at the record identified by Cursor.
type Query struct {
	OwnerID uuid.UUID
	Type    Type
	Filter  Filter
	Limit   int
	Cursor  *uuid.UUID
}

// Page is a single page of one partition.
type Page[T any] struct {
	Items      []T
	NextCursor *uuid.UUID
}

// Ledger is the pair of independent CREDIT and DEBIT pages.
type Ledger[T any] struct {
	Credit Page[T]
	Debit  Page[T]
}

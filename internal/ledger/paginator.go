package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrInvalidCursor is returned when a cursor does not name a record of the
	// requested owner and partition.
	ErrInvalidCursor = errors.New("ledger: invalid cursor")
	ErrMissingOwner  = errors.New("ledger: owner id required")
)

// Finder fetches up to q.Limit+1 records for q.
type Finder[T any] func(ctx context.Context, q Query) ([]T, error)

// Normalize fills defaults and clamps the limit.
func (q Query) Normalize() Query {
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.Filter.SortBy == "" {
		q.Filter.SortBy = SortByCreatedAt
	}
	if q.Filter.SortOrder != SortAsc {
		q.Filter.SortOrder = SortDesc
	}
	return q
}

// Paginate returns one page of q's partition. The store is asked for one
// record more than the page size; when that extra record exists it is cut
// from the page and its id becomes the next cursor.
func Paginate[T any](ctx context.Context, find Finder[T], idOf func(T) uuid.UUID, q Query) (Page[T], error) {
	if q.OwnerID == uuid.Nil {
		return Page[T]{}, ErrMissingOwner
	}
	if !q.Type.Valid() {
		return Page[T]{}, fmt.Errorf("ledger: unknown partition %q", q.Type)
	}
	q = q.Normalize()

	rows, err := find(ctx, q)
	if err != nil {
		return Page[T]{}, err
	}

	page := Page[T]{Items: rows}
	if len(rows) > q.Limit {
		next := idOf(rows[q.Limit])
		page.Items = rows[:q.Limit]
		page.NextCursor = &next
	}
	if page.Items == nil {
		page.Items = []T{}
	}
	return page, nil
}

// PaginateBoth runs Paginate for the CREDIT and DEBIT partitions concurrently.
// Each partition has its own cursor; a failure in either fails the whole call.
func PaginateBoth[T any](
	ctx context.Context,
	find Finder[T],
	idOf func(T) uuid.UUID,
	ownerID uuid.UUID,
	filter Filter,
	limit int,
	creditCursor, debitCursor *uuid.UUID,
) (Ledger[T], error) {
	var result Ledger[T]
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		page, err := Paginate(gctx, find, idOf, Query{
			OwnerID: ownerID,
			Type:    TypeCredit,
			Filter:  filter,
			Limit:   limit,
			Cursor:  creditCursor,
		})
		if err != nil {
			return fmt.Errorf("credit: %w", err)
		}
		result.Credit = page
		return nil
	})

	g.Go(func() error {
		page, err := Paginate(gctx, find, idOf, Query{
			OwnerID: ownerID,
			Type:    TypeDebit,
			Filter:  filter,
			Limit:   limit,
			Cursor:  debitCursor,
		})
		if err != nil {
			return fmt.Errorf("debit: %w", err)
		}
		result.Debit = page
		return nil
	})

	if err := g.Wait(); err != nil {
		return Ledger[T]{}, err
	}
	return result, nil
}

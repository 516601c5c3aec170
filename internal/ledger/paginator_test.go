package ledger

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Type            Type
	AccountID       uuid.UUID
	HeaderID        *uuid.UUID
	Amount          decimal.Decimal
	Details         string
	TransferID      string
	TransactionDate time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func recordID(r record) uuid.UUID { return r.ID }

// memStore answers Queries the way the SQL tables do: filter, order by
// (sort column, id) and seek to the cursor row.
type memStore struct {
	mu      sync.Mutex
	records []record
	calls   []Query
}

func (m *memStore) add(r record) {
	m.records = append(m.records, r)
}

func sortValue(r record, f SortField) string {
	switch f {
	case SortByTransactionDate:
		return r.TransactionDate.UTC().Format(time.RFC3339Nano)
	case SortByUpdatedAt:
		return r.UpdatedAt.UTC().Format(time.RFC3339Nano)
	default:
		return r.CreatedAt.UTC().Format(time.RFC3339Nano)
	}
}

func less(a, b record, f SortField) bool {
	if f == SortByAmount {
		if c := a.Amount.Cmp(b.Amount); c != 0 {
			return c < 0
		}
		return a.ID.String() < b.ID.String()
	}
	av, bv := sortValue(a, f), sortValue(b, f)
	if av != bv {
		return av < bv
	}
	return a.ID.String() < b.ID.String()
}

func (m *memStore) matching(q Query) []record {
	var out []record
	for _, r := range m.records {
		if r.OwnerID != q.OwnerID || r.Type != q.Type {
			continue
		}
		f := q.Filter
		if f.StartDate != nil && r.TransactionDate.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && r.TransactionDate.After(*f.EndDate) {
			continue
		}
		if f.AccountID != nil && r.AccountID != *f.AccountID {
			continue
		}
		if f.HeaderID != nil && (r.HeaderID == nil || *r.HeaderID != *f.HeaderID) {
			continue
		}
		if f.Search != "" {
			needle := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(r.Details), needle) &&
				!strings.Contains(strings.ToLower(r.TransferID), needle) {
				continue
			}
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if q.Filter.SortOrder == SortAsc {
			return less(out[i], out[j], q.Filter.SortBy)
		}
		return less(out[j], out[i], q.Filter.SortBy)
	})
	return out
}

func (m *memStore) find(_ context.Context, q Query) ([]record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, q)

	rows := m.matching(q)
	if q.Cursor != nil {
		var cursorRow *record
		for i := range m.records {
			r := m.records[i]
			if r.ID == *q.Cursor && r.OwnerID == q.OwnerID && r.Type == q.Type {
				cursorRow = &r
				break
			}
		}
		if cursorRow == nil {
			return nil, ErrInvalidCursor
		}
		start := len(rows)
		for i, r := range rows {
			var before bool
			if q.Filter.SortOrder == SortAsc {
				before = less(r, *cursorRow, q.Filter.SortBy)
			} else {
				before = less(*cursorRow, r, q.Filter.SortBy)
			}
			if !before {
				start = i
				break
			}
		}
		rows = rows[start:]
	}
	if len(rows) > q.Limit+1 {
		rows = rows[:q.Limit+1]
	}
	return rows, nil
}

var base = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

func seed(store *memStore, owner uuid.UUID, t Type, n int) []record {
	account := uuid.Must(uuid.NewV4())
	out := make([]record, n)
	for i := 0; i < n; i++ {
		r := record{
			ID:              uuid.Must(uuid.NewV4()),
			OwnerID:         owner,
			Type:            t,
			AccountID:       account,
			Amount:          decimal.NewFromInt(int64(100 + i%7)),
			Details:         "entry",
			TransactionDate: base.AddDate(0, 0, i*10),
			CreatedAt:       base.Add(time.Duration(i%5) * time.Hour),
			UpdatedAt:       base,
		}
		store.add(r)
		out[i] = r
	}
	return out
}

func collect(t *testing.T, store *memStore, q Query) []record {
	t.Helper()
	var all []record
	for pages := 0; pages < 100; pages++ {
		page, err := Paginate(context.Background(), store.find, recordID, q)
		require.NoError(t, err)
		all = append(all, page.Items...)
		if page.NextCursor == nil {
			return all
		}
		q.Cursor = page.NextCursor
	}
	t.Fatal("pagination did not terminate")
	return nil
}

func ids(rows []record) []uuid.UUID {
	out := make([]uuid.UUID, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestPaginate_MissingOwner(t *testing.T) {
	store := &memStore{}
	_, err := Paginate(context.Background(), store.find, recordID, Query{Type: TypeCredit})
	assert.ErrorIs(t, err, ErrMissingOwner)
	assert.Empty(t, store.calls)
}

func TestPaginate_UnknownPartition(t *testing.T) {
	store := &memStore{}
	_, err := Paginate(context.Background(), store.find, recordID, Query{
		OwnerID: uuid.Must(uuid.NewV4()),
		Type:    Type("TRANSFER"),
	})
	assert.Error(t, err)
	assert.Empty(t, store.calls)
}

func TestPaginate_Defaults(t *testing.T) {
	store := &memStore{}
	owner := uuid.Must(uuid.NewV4())

	page, err := Paginate(context.Background(), store.find, recordID, Query{OwnerID: owner, Type: TypeDebit})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Nil(t, page.NextCursor)

	require.Len(t, store.calls, 1)
	assert.Equal(t, DefaultLimit, store.calls[0].Limit)
	assert.Equal(t, SortByCreatedAt, store.calls[0].Filter.SortBy)
	assert.Equal(t, SortDesc, store.calls[0].Filter.SortOrder)
}

func TestPaginate_LimitClamped(t *testing.T) {
	store := &memStore{}
	_, err := Paginate(context.Background(), store.find, recordID, Query{
		OwnerID: uuid.Must(uuid.NewV4()),
		Type:    TypeCredit,
		Limit:   MaxLimit + 50,
	})
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, store.calls[0].Limit)
}

func TestPaginate_SinglePageWhenAtMostLimit(t *testing.T) {
	store := &memStore{}
	owner := uuid.Must(uuid.NewV4())
	seed(store, owner, TypeCredit, 10)

	page, err := Paginate(context.Background(), store.find, recordID, Query{OwnerID: owner, Type: TypeCredit, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 10)
	assert.Nil(t, page.NextCursor)
}

func TestPaginate_LimitPlusK(t *testing.T) {
	store := &memStore{}
	owner := uuid.Must(uuid.NewV4())
	seed(store, owner, TypeCredit, 13)

	q := Query{OwnerID: owner, Type: TypeCredit, Limit: 10}
	first, err := Paginate(context.Background(), store.find, recordID, q)
	require.NoError(t, err)
	assert.Len(t, first.Items, 10)
	require.NotNil(t, first.NextCursor)

	q.Cursor = first.NextCursor
	second, err := Paginate(context.Background(), store.find, recordID, q)
	require.NoError(t, err)
	assert.Len(t, second.Items, 3)
	assert.Nil(t, second.NextCursor)
	assert.Equal(t, *first.NextCursor, second.Items[0].ID)
}

func TestPaginate_NoGapNoOverlap(t *testing.T) {
	store := &memStore{}
	owner := uuid.Must(uuid.NewV4())
	seed(store, owner, TypeCredit, 47)
	seed(store, owner, TypeDebit, 5)

	for _, sortBy := range []SortField{SortByCreatedAt, SortByTransactionDate, SortByAmount, SortByUpdatedAt} {
		for _, order := range []SortOrder{SortAsc, SortDesc} {
			filter := Filter{SortBy: sortBy, SortOrder: order}
			want := store.matching(Query{OwnerID: owner, Type: TypeCredit, Filter: filter})

			for _, limit := range []int{1, 4, 7, 46, 47, 48} {
				got := collect(t, store, Query{OwnerID: owner, Type: TypeCredit, Filter: filter, Limit: limit})
				if !assert.Equal(t, ids(want), ids(got), "sortBy=%s order=%s limit=%d", sortBy, order, limit) {
					t.Log(spew.Sdump(got))
				}
			}
		}
	}
}

func TestPaginate_AscReversesDesc(t *testing.T) {
	store := &memStore{}
	owner := uuid.Must(uuid.NewV4())
	seed(store, owner, TypeDebit, 23)

	desc := collect(t, store, Query{OwnerID: owner, Type: TypeDebit, Limit: 5,
		Filter: Filter{SortBy: SortByAmount, SortOrder: SortDesc}})
	asc := collect(t, store, Query{OwnerID: owner, Type: TypeDebit, Limit: 5,
		Filter: Filter{SortBy: SortByAmount, SortOrder: SortAsc}})

	require.Len(t, asc, len(desc))
	for i := range desc {
		assert.Equal(t, desc[i].ID, asc[len(asc)-1-i].ID)
	}
}

func TestPaginate_OwnerIsolation(t *testing.T) {
	store := &memStore{}
	userA := uuid.Must(uuid.NewV4())
	userB := uuid.Must(uuid.NewV4())
	seed(store, userA, TypeCredit, 12)
	seed(store, userB, TypeCredit, 3)

	got := collect(t, store, Query{OwnerID: userB, Type: TypeCredit, Limit: 2})
	assert.Len(t, got, 3)
	for _, r := range got {
		assert.Equal(t, userB, r.OwnerID)
	}
}

func TestPaginate_CursorFromOtherOwnerRejected(t *testing.T) {
	store := &memStore{}
	userA := uuid.Must(uuid.NewV4())
	userB := uuid.Must(uuid.NewV4())
	foreign := seed(store, userA, TypeCredit, 1)[0]
	seed(store, userB, TypeCredit, 3)

	_, err := Paginate(context.Background(), store.find, recordID, Query{
		OwnerID: userB,
		Type:    TypeCredit,
		Cursor:  &foreign.ID,
	})
	assert.ErrorIs(t, err, ErrInvalidCursor)
}

func TestPaginate_Search(t *testing.T) {
	store := &memStore{}
	owner := uuid.Must(uuid.NewV4())
	rent := record{ID: uuid.Must(uuid.NewV4()), OwnerID: owner, Type: TypeDebit, Details: "Office rent", CreatedAt: base}
	transfer := record{ID: uuid.Must(uuid.NewV4()), OwnerID: owner, Type: TypeDebit, Details: "Wire", TransferID: "PAN1234XYZ", CreatedAt: base}
	store.add(rent)
	store.add(transfer)

	page, err := Paginate(context.Background(), store.find, recordID, Query{
		OwnerID: owner, Type: TypeDebit, Filter: Filter{Search: "RENT"},
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{rent.ID}, ids(page.Items))

	page, err = Paginate(context.Background(), store.find, recordID, Query{
		OwnerID: owner, Type: TypeDebit, Filter: Filter{Search: "pan1234"},
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{transfer.ID}, ids(page.Items))
}

func TestPaginate_ThirtyFiveCreditsByTransactionDate(t *testing.T) {
	store := &memStore{}
	owner := uuid.Must(uuid.NewV4())
	seeded := seed(store, owner, TypeCredit, 35)

	byRecency := append([]record(nil), seeded...)
	sort.Slice(byRecency, func(i, j int) bool {
		return byRecency[i].TransactionDate.After(byRecency[j].TransactionDate)
	})

	q := Query{
		OwnerID: owner,
		Type:    TypeCredit,
		Limit:   30,
		Filter:  Filter{SortBy: SortByTransactionDate, SortOrder: SortDesc},
	}
	first, err := Paginate(context.Background(), store.find, recordID, q)
	require.NoError(t, err)
	assert.Equal(t, ids(byRecency[:30]), ids(first.Items))
	require.NotNil(t, first.NextCursor)
	assert.Equal(t, byRecency[30].ID, *first.NextCursor)

	q.Cursor = first.NextCursor
	second, err := Paginate(context.Background(), store.find, recordID, q)
	require.NoError(t, err)
	assert.Equal(t, ids(byRecency[30:]), ids(second.Items))
	assert.Nil(t, second.NextCursor)
}

func TestPaginate_StoreErrorReturnsNoItems(t *testing.T) {
	find := func(context.Context, Query) ([]record, error) {
		return []record{{ID: uuid.Must(uuid.NewV4())}}, errors.New("connection reset")
	}
	page, err := Paginate(context.Background(), find, recordID, Query{OwnerID: uuid.Must(uuid.NewV4()), Type: TypeCredit})
	assert.EqualError(t, err, "connection reset")
	assert.Nil(t, page.Items)
}

func TestPaginateBoth_IndependentCursors(t *testing.T) {
	store := &memStore{}
	owner := uuid.Must(uuid.NewV4())
	seed(store, owner, TypeCredit, 5)
	seed(store, owner, TypeDebit, 2)

	first, err := PaginateBoth(context.Background(), store.find, recordID, owner, Filter{}, 2, nil, nil)
	require.NoError(t, err)
	assert.Len(t, first.Credit.Items, 2)
	assert.NotNil(t, first.Credit.NextCursor)
	assert.Len(t, first.Debit.Items, 2)
	assert.Nil(t, first.Debit.NextCursor)

	second, err := PaginateBoth(context.Background(), store.find, recordID, owner, Filter{}, 2, first.Credit.NextCursor, nil)
	require.NoError(t, err)
	assert.Len(t, second.Credit.Items, 2)
	assert.Equal(t, *first.Credit.NextCursor, second.Credit.Items[0].ID)
	assert.Equal(t, ids(first.Debit.Items), ids(second.Debit.Items), "debit restarts from the top")
	for _, r := range second.Credit.Items {
		assert.Equal(t, TypeCredit, r.Type)
	}
	for _, r := range second.Debit.Items {
		assert.Equal(t, TypeDebit, r.Type)
	}
}

func TestPaginateBoth_FailureIsAllOrNothing(t *testing.T) {
	store := &memStore{}
	owner := uuid.Must(uuid.NewV4())
	seed(store, owner, TypeCredit, 3)
	stale := uuid.Must(uuid.NewV4())

	result, err := PaginateBoth(context.Background(), store.find, recordID, owner, Filter{}, 10, nil, &stale)
	assert.ErrorIs(t, err, ErrInvalidCursor)
	assert.Empty(t, result.Credit.Items)
	assert.Empty(t, result.Debit.Items)
}

package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/cashbook-server/internal/ledger"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// checkCursor verifies the cursor row belongs to the owner and partition being paged.
func checkCursor(ctx context.Context, exec bob.Executor, table string, q ledger.Query) error {
	if q.Cursor == nil {
		return nil
	}
	query := psql.Select(
		sm.Columns(psql.Quote("id")),
		sm.From(psql.Quote(table)),
		sm.Where(psql.Quote("id").EQ(psql.Arg(*q.Cursor))),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(q.OwnerID))),
		sm.Where(psql.Quote("type").EQ(psql.Arg(q.Type))),
	)
	_, err := bob.One(ctx, exec, query, scan.SingleColumnMapper[uuid.UUID])
	if errors.Is(err, sql.ErrNoRows) {
		return ledger.ErrInvalidCursor
	}
	return err
}

// ledgerSelectMods builds the owner scoped, filtered, ordered seek query for
// a ledger table. It asks for Limit+1 rows so the caller can detect a next page.
func ledgerSelectMods(table string, columns []string, q ledger.Query) []bob.Mod[*dialect.SelectQuery] {
	f := q.Filter
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(quotedColumns(columns)...),
		sm.From(psql.Quote(table)),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(q.OwnerID))),
		sm.Where(psql.Quote("type").EQ(psql.Arg(q.Type))),
	}

	if f.StartDate != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(*f.StartDate))))
	}
	if f.EndDate != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("transaction_date").LTE(psql.Arg(*f.EndDate))))
	}
	if f.AccountID != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("account_id").EQ(psql.Arg(*f.AccountID))))
	}
	if f.HeaderID != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("header_id").EQ(psql.Arg(*f.HeaderID))))
	}
	if f.Search != "" {
		pattern := "%" + likeEscaper.Replace(f.Search) + "%"
		queryMods = append(queryMods, sm.Where(psql.Or(
			psql.Raw(`"details" ILIKE ?`, pattern),
			psql.Raw(`"transfer_id" ILIKE ?`, pattern),
		)))
	}

	column := f.SortBy.Column()
	if q.Cursor != nil {
		op := "<="
		if f.SortOrder == ledger.SortAsc {
			op = ">="
		}
		seek := fmt.Sprintf(`(%q, "id") %s (SELECT %q, "id" FROM %q WHERE "id" = ?)`, column, op, column, table)
		queryMods = append(queryMods, sm.Where(psql.Raw(seek, *q.Cursor)))
	}

	if f.SortOrder == ledger.SortAsc {
		queryMods = append(queryMods,
			sm.OrderBy(psql.Quote(column)).Asc(),
			sm.OrderBy(psql.Quote("id")).Asc(),
		)
	} else {
		queryMods = append(queryMods,
			sm.OrderBy(psql.Quote(column)).Desc(),
			sm.OrderBy(psql.Quote("id")).Desc(),
		)
	}

	return append(queryMods, sm.Limit(q.Limit+1))
}

package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const headersTable = "headers"

var _ IHeaderTable = (*HeadersTable)(nil)

type HeadersTable struct {
	exec bob.Executor
}

func NewHeadersTable(exec bob.Executor) *HeadersTable {
	return &HeadersTable{exec: exec}
}

func (t *HeadersTable) FindByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*Header, error) {
	query := psql.Select(
		sm.Columns(quotedColumns(headerColumns)...),
		sm.From(psql.Quote(headersTable)),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Header]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

func (t *HeadersTable) Insert(ctx context.Context, create *HeaderCreate) (*Header, error) {
	status := create.Status
	if status == "" {
		status = HeaderStatusActive
	}
	query := psql.Insert(
		im.Into(psql.Quote(headersTable), "owner_id", "name", "details", "status"),
		im.Values(
			psql.Arg(create.OwnerID),
			psql.Arg(create.Name),
			psql.Arg(create.Details),
			psql.Arg(status),
		),
		im.Returning(quotedColumns(headerColumns)...),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Header]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// List returns all headers of the owner ordered by name.
func (t *HeadersTable) List(ctx context.Context, ownerID uuid.UUID) ([]*Header, error) {
	query := psql.Select(
		sm.Columns(quotedColumns(headerColumns)...),
		sm.From(psql.Quote(headersTable)),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy(psql.Quote("name")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[Header]())
	if err != nil {
		return nil, err
	}
	result := make([]*Header, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (t *HeadersTable) UpdateStatus(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, status HeaderStatus) (*Header, error) {
	query := psql.Update(
		um.Table(psql.Quote(headersTable)),
		um.SetCol("status").ToArg(status),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		um.Returning(quotedColumns(headerColumns)...),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Header]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

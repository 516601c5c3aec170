package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const tagsTable = "tags"

var _ ITagTable = (*TagsTable)(nil)

type TagsTable struct {
	exec bob.Executor
}

func NewTagsTable(exec bob.Executor) *TagsTable {
	return &TagsTable{exec: exec}
}

func (t *TagsTable) FindByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*Tag, error) {
	query := psql.Select(
		sm.Columns(quotedColumns(tagColumns)...),
		sm.From(psql.Quote(tagsTable)),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Tag]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

func (t *TagsTable) Insert(ctx context.Context, create *TagCreate) (*Tag, error) {
	query := psql.Insert(
		im.Into(psql.Quote(tagsTable), "owner_id", "name", "details"),
		im.Values(
			psql.Arg(create.OwnerID),
			psql.Arg(create.Name),
			psql.Arg(create.Details),
		),
		im.Returning(quotedColumns(tagColumns)...),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Tag]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

func (t *TagsTable) Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, update *TagUpdate) (*Tag, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(psql.Quote(tagsTable)),
		um.SetCol("updated_at").To(psql.Raw("now()")),
	}
	if v, ok := update.Name.Get(); ok {
		queryMods = append(queryMods, um.SetCol("name").ToArg(v))
	}
	if v, ok := update.Details.Get(); ok {
		queryMods = append(queryMods, um.SetCol("details").ToArg(v))
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		um.Returning(quotedColumns(tagColumns)...),
	)

	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[Tag]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// List returns all tags of the owner ordered by name.
func (t *TagsTable) List(ctx context.Context, ownerID uuid.UUID) ([]*Tag, error) {
	query := psql.Select(
		sm.Columns(quotedColumns(tagColumns)...),
		sm.From(psql.Quote(tagsTable)),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy(psql.Quote("name")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[Tag]())
	if err != nil {
		return nil, err
	}
	result := make([]*Tag, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

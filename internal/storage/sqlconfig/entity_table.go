package sqlconfig

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const entitiesTable = "entities"

var _ IEntityTable = (*EntitiesTable)(nil)

type EntitiesTable struct {
	exec bob.Executor
}

func NewEntitiesTable(exec bob.Executor) *EntitiesTable {
	return &EntitiesTable{exec: exec}
}

func (t *EntitiesTable) FindByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*Entity, error) {
	query := psql.Select(
		sm.Columns(quotedColumns(entityColumns)...),
		sm.From(psql.Quote(entitiesTable)),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Entity]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

func (t *EntitiesTable) Insert(ctx context.Context, create *EntityCreate) (*Entity, error) {
	query := psql.Insert(
		im.Into(psql.Quote(entitiesTable),
			"owner_id", "name", "gst", "pan", "address", "state", "pin",
			"country", "national_id", "details",
		),
		im.Values(
			psql.Arg(create.OwnerID),
			psql.Arg(create.Name),
			psql.Arg(create.GST),
			psql.Arg(create.PAN),
			psql.Arg(create.Address),
			psql.Arg(create.State),
			psql.Arg(create.PIN),
			psql.Arg(create.Country),
			psql.Arg(create.NationalID),
			psql.Arg(create.Details),
		),
		im.Returning(quotedColumns(entityColumns)...),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Entity]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

func (t *EntitiesTable) Update(ctx context.Context, ownerID uuid.UUID, id uuid.UUID, update *EntityUpdate) (*Entity, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(psql.Quote(entitiesTable)),
		um.SetCol("updated_at").To(psql.Raw("now()")),
	}
	for _, col := range []struct {
		name  string
		value omit.Val[string]
	}{
		{"name", update.Name},
		{"gst", update.GST},
		{"pan", update.PAN},
		{"address", update.Address},
		{"state", update.State},
		{"pin", update.PIN},
		{"country", update.Country},
		{"national_id", update.NationalID},
		{"details", update.Details},
	} {
		if v, ok := col.value.Get(); ok {
			queryMods = append(queryMods, um.SetCol(col.name).ToArg(v))
		}
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		um.Returning(quotedColumns(entityColumns)...),
	)

	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[Entity]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// List returns all entities of the owner ordered by name.
func (t *EntitiesTable) List(ctx context.Context, ownerID uuid.UUID) ([]*Entity, error) {
	query := psql.Select(
		sm.Columns(quotedColumns(entityColumns)...),
		sm.From(psql.Quote(entitiesTable)),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy(psql.Quote("name")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[Entity]())
	if err != nil {
		return nil, err
	}
	result := make([]*Entity, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

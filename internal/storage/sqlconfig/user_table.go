package sqlconfig

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const usersTable = "users"

var _ IUserTable = (*UsersTable)(nil)

type UsersTable struct {
	exec bob.Executor
}

func NewUsersTable(exec bob.Executor) *UsersTable {
	return &UsersTable{exec: exec}
}

func (t *UsersTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return t.findOne(ctx, psql.Quote("id").EQ(psql.Arg(id)))
}

// FindByEmail looks a user up by email, ignoring case.
func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	return t.findOne(ctx, psql.Quote("email").EQ(psql.Arg(strings.ToLower(email))))
}

func (t *UsersTable) findOne(ctx context.Context, where bob.Expression) (*User, error) {
	query := psql.Select(
		sm.Columns(quotedColumns(userColumns)...),
		sm.From(psql.Quote(usersTable)),
		sm.Where(where),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[User]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	query := psql.Insert(
		im.Into(psql.Quote(usersTable),
			"email", "password_hash", "first_name", "last_name", "phone", "company_name", "country"),
		im.Values(
			psql.Arg(strings.ToLower(create.Email)),
			psql.Arg(create.PasswordHash),
			psql.Arg(create.FirstName),
			psql.Arg(create.LastName),
			psql.Arg(create.Phone),
			psql.Arg(create.CompanyName),
			psql.Arg(create.Country),
		),
		im.Returning(quotedColumns(userColumns)...),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[User]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// Update overwrites the set profile fields. Email and password are not
// editable here.
func (t *UsersTable) Update(ctx context.Context, id uuid.UUID, update *UserUpdate) (*User, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(psql.Quote(usersTable)),
	}
	set := 0
	if v, ok := update.FirstName.Get(); ok {
		queryMods = append(queryMods, um.SetCol("first_name").ToArg(v))
		set++
	}
	if v, ok := update.LastName.Get(); ok {
		queryMods = append(queryMods, um.SetCol("last_name").ToArg(v))
		set++
	}
	if set == 0 {
		return t.FindByID(ctx, id)
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(quotedColumns(userColumns)...),
	)

	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[User]())
	if err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/cashbook-server/internal/config"
	"github.com/carson-networks/cashbook-server/internal/storage/sqlconfig"
)

// Storage is the read side of the database. Writes go through Write, which
// hands out a transaction scoped Writer.
type Storage struct {
	sqlDB        *sql.DB
	db           bob.DB
	Users        sqlconfig.IUserTable
	Accounts     sqlconfig.IAccountTable
	Headers      sqlconfig.IHeaderTable
	Tags         sqlconfig.ITagTable
	Entities     sqlconfig.IEntityTable
	Transactions sqlconfig.ITransactionTable
	Budgets      sqlconfig.IBudgetTable
}

func ConnectionString(env *config.Config) string {
	return "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", ConnectionString(env))
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	return NewStorageFromDB(db), nil
}

// NewStorageFromDB wraps an already opened database handle.
func NewStorageFromDB(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)
	return &Storage{
		sqlDB:        db,
		db:           bobDB,
		Users:        sqlconfig.NewUsersTable(bobDB),
		Accounts:     sqlconfig.NewAccountsTable(bobDB),
		Headers:      sqlconfig.NewHeadersTable(bobDB),
		Tags:         sqlconfig.NewTagsTable(bobDB),
		Entities:     sqlconfig.NewEntitiesTable(bobDB),
		Transactions: sqlconfig.NewTransactionsTable(bobDB),
		Budgets:      sqlconfig.NewBudgetsTable(bobDB),
	}
}

// Write begins a database transaction. The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("storage.Write begin: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.sqlDB.Close()
}

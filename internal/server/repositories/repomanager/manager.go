package repomanager

import (
	"context"
	"database/sql"

	"github.com/energichain/server/internal/dbx"
	"github.com/energichain/server/internal/server/repositories/trades"
	"github.com/energichain/server/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Trades(db dbx.DBTX) trades.Repository
}

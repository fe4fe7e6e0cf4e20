// Package repomanager vends repositories bound to a database handle or a
// transaction and runs schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/studyhub/internal/dbx"
	"github.com/dmitrijs2005/studyhub/internal/server/repositories/notes"
	"github.com/dmitrijs2005/studyhub/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/studyhub/internal/server/repositories/subjects"
	"github.com/dmitrijs2005/studyhub/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Subjects(db dbx.DBTX) subjects.Repository
	Notes(db dbx.DBTX) notes.Repository
}

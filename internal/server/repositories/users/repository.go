// Package users declares the server-side repository contract for user
// accounts and its PostgreSQL implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/studyhub/internal/server/models"
)

// Repository stores user accounts. Lookups return common.ErrorNotFound when
// no row matches. Writes that collide with a unique constraint return
// *common.DuplicateError naming the field.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateUsername(ctx context.Context, id int64, username string) (*models.User, error)
}

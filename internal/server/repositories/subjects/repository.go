// Package subjects declares the repository contract for study subjects and
// its PostgreSQL implementation. Every list query is scoped to one owner.
package subjects

import (
	"context"

	"github.com/dmitrijs2005/studyhub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, subject *models.Subject) (*models.Subject, error)
	Get(ctx context.Context, id int64) (*models.Subject, error)
	Update(ctx context.Context, subject *models.Subject) (*models.Subject, error)
	Delete(ctx context.Context, id int64) error
	ListByUser(ctx context.Context, userID int64) ([]models.Subject, error)
	Search(ctx context.Context, userID int64, query string) ([]models.Subject, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	Stats(ctx context.Context, userID int64) ([]models.SubjectStat, error)
}

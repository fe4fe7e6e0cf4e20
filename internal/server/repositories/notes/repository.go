// Package notes declares the repository contract for notes and its
// PostgreSQL implementation. Cross-subject views join through subjects so
// they stay scoped to the owning user.
package notes

import (
	"context"

	"github.com/dmitrijs2005/studyhub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	Get(ctx context.Context, id int64) (*models.Note, error)
	Update(ctx context.Context, note *models.Note) (*models.Note, error)
	TogglePinned(ctx context.Context, id int64) (*models.Note, error)
	Delete(ctx context.Context, id int64) error
	DeleteBySubject(ctx context.Context, subjectID int64) (int64, error)
	ListBySubject(ctx context.Context, subjectID int64) ([]models.Note, error)
	Recent(ctx context.Context, userID int64, limit int) ([]models.NoteSummary, error)
	Search(ctx context.Context, userID int64, query string) ([]models.NoteSummary, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
}

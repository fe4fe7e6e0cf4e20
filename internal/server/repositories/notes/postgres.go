package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/dbx"
	"github.com/dmitrijs2005/studyhub/internal/server/models"
)

const summaryColumns = `
	SELECT n.id, n.subject_id, n.title, n.content, n.is_pinned, n.created_at, n.updated_at,
	       s.name, s.color
	FROM notes n
	JOIN subjects s ON s.id = n.subject_id
`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	query := `
		INSERT INTO notes (subject_id, title, content, is_pinned, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		note.SubjectID, note.Title, note.Content, note.IsPinned, note.CreatedAt, note.UpdatedAt).Scan(&note.ID)
	if err != nil {
		if dbx.ForeignKeyViolation(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return note, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Note, error) {
	query := `
		SELECT id, subject_id, title, content, is_pinned, created_at, updated_at
		FROM notes
		WHERE id = $1
	`
	n := &models.Note{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&n.ID, &n.SubjectID, &n.Title, &n.Content, &n.IsPinned, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// Update writes title, content and updated_at. The subject and the creation
// time are never changed.
func (r *PostgresRepository) Update(ctx context.Context, note *models.Note) (*models.Note, error) {
	query := `
		UPDATE notes SET title = $1, content = $2, updated_at = $3
		WHERE id = $4
	`
	res, err := r.db.ExecContext(ctx, query, note.Title, note.Content, note.UpdatedAt, note.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return nil, err
	}
	return note, nil
}

// TogglePinned flips is_pinned in place and returns the updated note.
func (r *PostgresRepository) TogglePinned(ctx context.Context, id int64) (*models.Note, error) {
	query := `
		UPDATE notes SET is_pinned = NOT is_pinned
		WHERE id = $1
		RETURNING id, subject_id, title, content, is_pinned, created_at, updated_at
	`
	n := &models.Note{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&n.ID, &n.SubjectID, &n.Title, &n.Content, &n.IsPinned, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireAffected(res)
}

// DeleteBySubject removes every note of a subject and returns how many
// were removed.
func (r *PostgresRepository) DeleteBySubject(ctx context.Context, subjectID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE subject_id = $1`, subjectID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// ListBySubject returns pinned notes first, then the most recently updated.
func (r *PostgresRepository) ListBySubject(ctx context.Context, subjectID int64) ([]models.Note, error) {
	query := `
		SELECT id, subject_id, title, content, is_pinned, created_at, updated_at
		FROM notes
		WHERE subject_id = $1
		ORDER BY is_pinned DESC, updated_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, subjectID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.SubjectID, &n.Title, &n.Content, &n.IsPinned, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return notes, nil
}

// Recent returns up to limit of the user's notes, most recently updated
// first, ties broken by the higher id.
func (r *PostgresRepository) Recent(ctx context.Context, userID int64, limit int) ([]models.NoteSummary, error) {
	query := summaryColumns + `
		WHERE s.user_id = $1
		ORDER BY n.updated_at DESC, n.id DESC
		LIMIT $2
	`
	return r.summaries(ctx, query, userID, limit)
}

// Search matches query case-insensitively as a substring of the title or
// content of the user's notes.
func (r *PostgresRepository) Search(ctx context.Context, userID int64, query string) ([]models.NoteSummary, error) {
	q := summaryColumns + `
		WHERE s.user_id = $1 AND (n.title ILIKE $2 OR n.content ILIKE $2)
		ORDER BY n.updated_at DESC, n.id DESC
	`
	return r.summaries(ctx, q, userID, dbx.ContainsPattern(query))
}

func (r *PostgresRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM notes n
		JOIN subjects s ON s.id = n.subject_id
		WHERE s.user_id = $1
	`
	return r.scalar(ctx, query, userID)
}

func (r *PostgresRepository) scalar(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) summaries(ctx context.Context, query string, args ...any) ([]models.NoteSummary, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]models.NoteSummary, 0)
	for rows.Next() {
		var s models.NoteSummary
		if err := rows.Scan(&s.ID, &s.SubjectID, &s.Title, &s.Content, &s.IsPinned, &s.CreatedAt, &s.UpdatedAt,
			&s.SubjectName, &s.SubjectColor); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

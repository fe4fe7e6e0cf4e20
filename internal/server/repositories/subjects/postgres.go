package subjects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/dbx"
	"github.com/dmitrijs2005/studyhub/internal/server/models"
)

const selectColumns = `
	SELECT s.id, s.user_id, s.name, s.description, s.color, s.created_at,
	       (SELECT COUNT(*) FROM notes n WHERE n.subject_id = s.id) AS note_count
	FROM subjects s
`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, subject *models.Subject) (*models.Subject, error) {
	query := `
		INSERT INTO subjects (user_id, name, description, color, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		subject.UserID, subject.Name, subject.Description, subject.Color, subject.CreatedAt).Scan(&subject.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return subject, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Subject, error) {
	query := selectColumns + `WHERE s.id = $1`

	s := &models.Subject{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&s.ID, &s.UserID, &s.Name, &s.Description, &s.Color, &s.CreatedAt, &s.NoteCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

// Update writes name, description and color. Owner and creation time are
// never changed.
func (r *PostgresRepository) Update(ctx context.Context, subject *models.Subject) (*models.Subject, error) {
	query := `
		UPDATE subjects SET name = $1, description = $2, color = $3
		WHERE id = $4
	`
	res, err := r.db.ExecContext(ctx, query, subject.Name, subject.Description, subject.Color, subject.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return nil, err
	}
	return subject, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireAffected(res)
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]models.Subject, error) {
	query := selectColumns + `
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC, s.id DESC
	`
	return r.list(ctx, query, userID)
}

// Search matches query case-insensitively as a substring of the name or
// description of the user's subjects.
func (r *PostgresRepository) Search(ctx context.Context, userID int64, query string) ([]models.Subject, error) {
	q := selectColumns + `
		WHERE s.user_id = $1 AND (s.name ILIKE $2 OR s.description ILIKE $2)
		ORDER BY s.name ASC, s.id ASC
	`
	return r.list(ctx, q, userID, dbx.ContainsPattern(query))
}

func (r *PostgresRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subjects WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// Stats returns per-subject note and word counts, busiest subject first.
// Words are runs of non-whitespace characters.
func (r *PostgresRepository) Stats(ctx context.Context, userID int64) ([]models.SubjectStat, error) {
	query := `
		SELECT s.id, s.name, s.color, COUNT(n.id) AS note_count,
		       COALESCE(SUM(cardinality(regexp_split_to_array(NULLIF(btrim(n.content, E' \t\r\n'), ''), E'\\s+'))), 0) AS word_count
		FROM subjects s
		LEFT JOIN notes n ON n.subject_id = s.id
		WHERE s.user_id = $1
		GROUP BY s.id, s.name, s.color
		ORDER BY note_count DESC, s.id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	stats := make([]models.SubjectStat, 0)
	for rows.Next() {
		var st models.SubjectStat
		if err := rows.Scan(&st.ID, &st.Name, &st.Color, &st.NoteCount, &st.WordCount); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return stats, nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]models.Subject, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	subjects := make([]models.Subject, 0)
	for rows.Next() {
		var s models.Subject
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Description, &s.Color, &s.CreatedAt, &s.NoteCount); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return subjects, nil
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

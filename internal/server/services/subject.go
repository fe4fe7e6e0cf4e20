package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/studyhub/internal/dbx"
	"github.com/dmitrijs2005/studyhub/internal/server/models"
	"github.com/dmitrijs2005/studyhub/internal/server/repositories/repomanager"
)

type SubjectService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSubjectService(db *sql.DB, m repomanager.RepositoryManager) *SubjectService {
	return &SubjectService{db: db, repomanager: m}
}

// Create stores a new subject owned by actor.
func (s *SubjectService) Create(ctx context.Context, actor models.Actor, in models.SubjectInput) (*models.Subject, error) {
	in.Normalize()
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	subject := &models.Subject{
		UserID:      actor.UserID,
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
		CreatedAt:   now(),
	}
	return s.repomanager.Subjects(s.db).Create(ctx, subject)
}

func (s *SubjectService) Get(ctx context.Context, actor models.Actor, id int64) (*models.Subject, error) {
	return ownedSubject(ctx, s.repomanager, s.db, actor, id)
}

// Update replaces name, description and color. Ownership is checked before
// the input is validated.
func (s *SubjectService) Update(ctx context.Context, actor models.Actor, id int64, in models.SubjectInput) (*models.Subject, error) {
	subject, err := ownedSubject(ctx, s.repomanager, s.db, actor, id)
	if err != nil {
		return nil, err
	}

	in.Normalize()
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	subject.Name = in.Name
	subject.Description = in.Description
	subject.Color = in.Color
	return s.repomanager.Subjects(s.db).Update(ctx, subject)
}

// Delete removes the subject and all of its notes in one transaction and
// returns how many notes went with it.
func (s *SubjectService) Delete(ctx context.Context, actor models.Actor, id int64) (int64, error) {
	if _, err := ownedSubject(ctx, s.repomanager, s.db, actor, id); err != nil {
		return 0, err
	}

	var removed int64
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		n, err := s.repomanager.Notes(tx).DeleteBySubject(ctx, id)
		if err != nil {
			return fmt.Errorf("error deleting notes: %w", err)
		}
		if err := s.repomanager.Subjects(tx).Delete(ctx, id); err != nil {
			return err
		}
		removed = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// List returns the actor's subjects, newest first, with their note counts.
func (s *SubjectService) List(ctx context.Context, actor models.Actor) ([]models.Subject, error) {
	return s.repomanager.Subjects(s.db).ListByUser(ctx, actor.UserID)
}

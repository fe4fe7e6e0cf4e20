package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/studyhub/internal/server/models"
	"github.com/dmitrijs2005/studyhub/internal/server/repositories/repomanager"
)

type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNoteService(db *sql.DB, m repomanager.RepositoryManager) *NoteService {
	return &NoteService{db: db, repomanager: m}
}

// Create adds a note to a subject owned by actor. New notes are unpinned
// and carry equal created and updated times.
func (s *NoteService) Create(ctx context.Context, actor models.Actor, subjectID int64, in models.NoteInput) (*models.Note, error) {
	if _, err := ownedSubject(ctx, s.repomanager, s.db, actor, subjectID); err != nil {
		return nil, err
	}

	in.Normalize()
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	t := now()
	note := &models.Note{
		SubjectID: subjectID,
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: t,
		UpdatedAt: t,
	}
	return s.repomanager.Notes(s.db).Create(ctx, note)
}

func (s *NoteService) Get(ctx context.Context, actor models.Actor, id int64) (*models.Note, error) {
	note, _, err := ownedNote(ctx, s.repomanager, s.db, actor, id)
	return note, err
}

// Update replaces title and content. updated_at never moves backwards even
// if the clock does.
func (s *NoteService) Update(ctx context.Context, actor models.Actor, id int64, in models.NoteInput) (*models.Note, error) {
	note, _, err := ownedNote(ctx, s.repomanager, s.db, actor, id)
	if err != nil {
		return nil, err
	}

	in.Normalize()
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	note.Title = in.Title
	note.Content = in.Content
	if t := now(); t.After(note.UpdatedAt) {
		note.UpdatedAt = t
	}
	return s.repomanager.Notes(s.db).Update(ctx, note)
}

func (s *NoteService) Delete(ctx context.Context, actor models.Actor, id int64) error {
	if _, _, err := ownedNote(ctx, s.repomanager, s.db, actor, id); err != nil {
		return err
	}
	return s.repomanager.Notes(s.db).Delete(ctx, id)
}

// List returns the notes of one subject: pinned first, then most recently
// updated.
func (s *NoteService) List(ctx context.Context, actor models.Actor, subjectID int64) ([]models.Note, error) {
	if _, err := ownedSubject(ctx, s.repomanager, s.db, actor, subjectID); err != nil {
		return nil, err
	}
	return s.repomanager.Notes(s.db).ListBySubject(ctx, subjectID)
}

// TogglePin flips the pinned flag. It is not an edit, so updated_at is kept.
func (s *NoteService) TogglePin(ctx context.Context, actor models.Actor, id int64) (*models.Note, error) {
	if _, _, err := ownedNote(ctx, s.repomanager, s.db, actor, id); err != nil {
		return nil, err
	}
	return s.repomanager.Notes(s.db).TogglePinned(ctx, id)
}

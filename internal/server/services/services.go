// Package services contains the server-side business logic. Every
// operation on user data takes an explicit models.Actor and checks
// ownership through package authz before touching a subject or note.
package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/studyhub/internal/dbx"
	"github.com/dmitrijs2005/studyhub/internal/server/authz"
	"github.com/dmitrijs2005/studyhub/internal/server/models"
	"github.com/dmitrijs2005/studyhub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/studyhub/internal/validatex"
)

// now is a seam for the wall clock. Stored timestamps are UTC.
var now = func() time.Time { return time.Now().UTC() }

var validate = validatex.New()

// ownedSubject loads subject id and checks that actor owns it.
func ownedSubject(ctx context.Context, m repomanager.RepositoryManager, db dbx.DBTX, actor models.Actor, id int64) (*models.Subject, error) {
	subject, err := m.Subjects(db).Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Subject(actor, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// ownedNote loads note id with its subject and checks that actor owns both.
func ownedNote(ctx context.Context, m repomanager.RepositoryManager, db dbx.DBTX, actor models.Actor, id int64) (*models.Note, *models.Subject, error) {
	note, err := m.Notes(db).Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	subject, err := m.Subjects(db).Get(ctx, note.SubjectID)
	if err != nil {
		return nil, nil, err
	}
	if err := authz.Note(actor, note, subject); err != nil {
		return nil, nil, err
	}
	return note, subject, nil
}

// Package authz decides whether an actor may act on a subject or note.
// Ownership is transitive: a note belongs to whoever owns its subject.
package authz

import (
	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/server/models"
)

// Subject returns nil when actor owns s and common.ErrorForbidden otherwise.
func Subject(actor models.Actor, s *models.Subject) error {
	if s == nil || actor.UserID == 0 || s.UserID != actor.UserID {
		return common.ErrorForbidden
	}
	return nil
}

// Note returns nil when n belongs to subject and actor owns subject.
func Note(actor models.Actor, n *models.Note, subject *models.Subject) error {
	if n == nil || subject == nil || n.SubjectID != subject.ID {
		return common.ErrorForbidden
	}
	return Subject(actor, subject)
}

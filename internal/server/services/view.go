package services

import (
	"context"
	"database/sql"
	"math"
	"strings"

	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/server/models"
	"github.com/dmitrijs2005/studyhub/internal/server/repositories/repomanager"
)

// ViewService builds the read-only, cross-subject views of a user's data.
type ViewService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewViewService(db *sql.DB, m repomanager.RepositoryManager) *ViewService {
	return &ViewService{db: db, repomanager: m}
}

// Search finds the actor's subjects and notes containing q, ignoring case.
// A blank query is a validation error on field "q".
func (s *ViewService) Search(ctx context.Context, actor models.Actor, q string) (*models.SearchResult, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, common.NewValidationError("q", "is required")
	}

	subjects, err := s.repomanager.Subjects(s.db).Search(ctx, actor.UserID, q)
	if err != nil {
		return nil, err
	}
	notes, err := s.repomanager.Notes(s.db).Search(ctx, actor.UserID, q)
	if err != nil {
		return nil, err
	}
	return &models.SearchResult{Query: q, Subjects: subjects, Notes: notes}, nil
}

// Statistics summarizes the actor's study data. The per-subject rows come
// ordered by note count, so totals are derived from the same snapshot.
func (s *ViewService) Statistics(ctx context.Context, actor models.Actor) (*models.Statistics, error) {
	stats, err := s.repomanager.Subjects(s.db).Stats(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	res := &models.Statistics{Subjects: stats}
	for _, st := range stats {
		res.SubjectCount++
		res.NoteCount += st.NoteCount
		res.TotalWords += st.WordCount
	}
	res.AverageNotesPerSubject = averagePerSubject(res.NoteCount, res.SubjectCount)
	return res, nil
}

// RecentNotes returns the actor's most recently updated notes.
func (s *ViewService) RecentNotes(ctx context.Context, actor models.Actor) ([]models.NoteSummary, error) {
	return s.repomanager.Notes(s.db).Recent(ctx, actor.UserID, common.RecentNotesLimit)
}

// Dashboard collects the subjects list, recent notes and the two counters
// shown on the landing page.
func (s *ViewService) Dashboard(ctx context.Context, actor models.Actor) (*models.Dashboard, error) {
	subjects, err := s.repomanager.Subjects(s.db).ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	recent, err := s.RecentNotes(ctx, actor)
	if err != nil {
		return nil, err
	}
	notes, err := s.repomanager.Notes(s.db).CountByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return &models.Dashboard{
		Subjects:     subjects,
		RecentNotes:  recent,
		SubjectCount: int64(len(subjects)),
		NoteCount:    notes,
	}, nil
}

// averagePerSubject rounds to one decimal place; zero subjects give 0.
func averagePerSubject(notes, subjects int64) float64 {
	if subjects == 0 {
		return 0
	}
	return math.Round(float64(notes)/float64(subjects)*10) / 10
}

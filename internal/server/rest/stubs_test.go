package rest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/studyhub/internal/logging"
	"github.com/dmitrijs2005/studyhub/internal/server/auth"
	"github.com/dmitrijs2005/studyhub/internal/server/config"
	"github.com/dmitrijs2005/studyhub/internal/server/models"
	"github.com/dmitrijs2005/studyhub/internal/server/services"
)

const testSecret = "test-secret"

type stubUsers struct {
	registerErr error
	session     *services.Session
	loginErr    error
	pair        *services.TokenPair
	refreshErr  error
	gotRefresh  string
	loggedOut   string
	user        *models.User
}

func (s *stubUsers) Register(_ context.Context, in models.RegisterInput) (*models.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &models.User{ID: 1, Username: in.Username, Email: in.Email}, nil
}

func (s *stubUsers) Login(context.Context, models.LoginInput) (*services.Session, error) {
	return s.session, s.loginErr
}

func (s *stubUsers) RefreshToken(_ context.Context, tok string) (*services.TokenPair, error) {
	s.gotRefresh = tok
	return s.pair, s.refreshErr
}

func (s *stubUsers) Logout(_ context.Context, tok string) error {
	s.loggedOut = tok
	return nil
}

func (s *stubUsers) GetUser(_ context.Context, a models.Actor) (*models.User, error) {
	return &models.User{ID: a.UserID, Username: "alice"}, nil
}

func (s *stubUsers) UpdateUsername(_ context.Context, a models.Actor, in models.UpdateUsernameInput) (*models.User, error) {
	return &models.User{ID: a.UserID, Username: in.Username}, nil
}

type stubSubjects struct {
	err   error
	actor models.Actor
}

func (s *stubSubjects) Create(_ context.Context, a models.Actor, in models.SubjectInput) (*models.Subject, error) {
	s.actor = a
	if s.err != nil {
		return nil, s.err
	}
	return &models.Subject{ID: 10, UserID: a.UserID, Name: in.Name}, nil
}

func (s *stubSubjects) Get(_ context.Context, a models.Actor, id int64) (*models.Subject, error) {
	s.actor = a
	if s.err != nil {
		return nil, s.err
	}
	return &models.Subject{ID: id, UserID: a.UserID, Name: "Math"}, nil
}

func (s *stubSubjects) Update(_ context.Context, a models.Actor, id int64, in models.SubjectInput) (*models.Subject, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Subject{ID: id, UserID: a.UserID, Name: in.Name}, nil
}

func (s *stubSubjects) Delete(context.Context, models.Actor, int64) (int64, error) {
	return 3, s.err
}

func (s *stubSubjects) List(_ context.Context, a models.Actor) ([]models.Subject, error) {
	s.actor = a
	return []models.Subject{{ID: 10, UserID: a.UserID, Name: "Math"}}, s.err
}

type stubNotes struct {
	err error
}

func (s *stubNotes) Create(_ context.Context, _ models.Actor, subjectID int64, in models.NoteInput) (*models.Note, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Note{ID: 20, SubjectID: subjectID, Title: in.Title, Content: in.Content}, nil
}

func (s *stubNotes) Get(_ context.Context, _ models.Actor, id int64) (*models.Note, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Note{ID: id, Title: "L1"}, nil
}

func (s *stubNotes) Update(_ context.Context, _ models.Actor, id int64, in models.NoteInput) (*models.Note, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Note{ID: id, Title: in.Title}, nil
}

func (s *stubNotes) Delete(context.Context, models.Actor, int64) error { return s.err }

func (s *stubNotes) List(context.Context, models.Actor, int64) ([]models.Note, error) {
	return []models.Note{}, s.err
}

func (s *stubNotes) TogglePin(_ context.Context, _ models.Actor, id int64) (*models.Note, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Note{ID: id, IsPinned: true}, nil
}

type stubViews struct {
	err    error
	gotQ   string
	actors []models.Actor
}

func (s *stubViews) Search(_ context.Context, a models.Actor, q string) (*models.SearchResult, error) {
	s.gotQ = q
	if s.err != nil {
		return nil, s.err
	}
	return &models.SearchResult{Query: q, Subjects: []models.Subject{}, Notes: []models.NoteSummary{}}, nil
}

func (s *stubViews) Statistics(context.Context, models.Actor) (*models.Statistics, error) {
	return &models.Statistics{SubjectCount: 1, NoteCount: 1, Subjects: []models.SubjectStat{}}, s.err
}

func (s *stubViews) RecentNotes(_ context.Context, a models.Actor) ([]models.NoteSummary, error) {
	s.actors = append(s.actors, a)
	return []models.NoteSummary{}, s.err
}

func (s *stubViews) Dashboard(context.Context, models.Actor) (*models.Dashboard, error) {
	return &models.Dashboard{SubjectCount: 2}, s.err
}

type stubExports struct {
	err error
}

func (s *stubExports) ExportNote(context.Context, models.Actor, int64) (*models.NoteExport, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.NoteExport{FileName: "L1.txt", Content: "body"}, nil
}

func (s *stubExports) ArchiveNote(context.Context, models.Actor, int64) (*models.ArchivedExport, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.ArchivedExport{Key: "exports/1/k.txt", URL: "http://s3/k"}, nil
}

type fixture struct {
	users    *stubUsers
	subjects *stubSubjects
	notes    *stubNotes
	views    *stubViews
	exports  *stubExports
	handler  http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:    &stubUsers{},
		subjects: &stubSubjects{},
		notes:    &stubNotes{},
		views:    &stubViews{},
		exports:  &stubExports{},
	}
	cfg := &config.Config{
		HTTPAddr:                     "127.0.0.1:0",
		SecretKey:                    testSecret,
		AccessTokenValidityDuration:  15 * time.Minute,
		RefreshTokenValidityDuration: time.Hour,
		AllowedOrigins:               []string{"http://localhost:3000"},
	}
	srv := NewServer(cfg, logging.New(logging.FormatJSON, io.Discard), Services{
		Users: f.users, Subjects: f.subjects, Notes: f.notes, Views: f.views, Exports: f.exports,
	})
	f.handler = srv.Handler()
	return f
}

func tokenFor(t *testing.T, userID int64, validity time.Duration) string {
	t.Helper()
	tok, err := auth.GenerateToken(userID, []byte(testSecret), validity)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return tok
}

// do sends a request authenticated as user 1 unless userID is 0.
func (f *fixture) do(t *testing.T, method, path, body string, userID int64) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != 0 {
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, userID, time.Minute))
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

package services

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/dbx"
	"github.com/dmitrijs2005/studyhub/internal/server/config"
	"github.com/dmitrijs2005/studyhub/internal/server/models"
	notesrepo "github.com/dmitrijs2005/studyhub/internal/server/repositories/notes"
	refreshtokensrepo "github.com/dmitrijs2005/studyhub/internal/server/repositories/refreshtokens"
	subjectsrepo "github.com/dmitrijs2005/studyhub/internal/server/repositories/subjects"
	usersrepo "github.com/dmitrijs2005/studyhub/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
		S3Region:                     "us-east-1",
		S3BaseEndpoint:               "http://127.0.0.1:9000/",
	}
}

// fixClock pins now to t for the duration of a test.
func fixClock(t *testing.T, at time.Time) {
	t.Helper()
	orig := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = orig })
}

// --- in-memory store ---

type memStore struct {
	users    map[int64]*models.User
	tokens   map[string]*models.RefreshToken
	subjects map[int64]*models.Subject
	notes    map[int64]*models.Note
	nextID   int64

	failCreateUser  error
	failCreateToken error
	failDeleteNotes error
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[int64]*models.User{},
		tokens:   map[string]*models.RefreshToken{},
		subjects: map[int64]*models.Subject{},
		notes:    map[int64]*models.Note{},
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) addUser(username, email, password string) *models.User {
	u := &models.User{ID: m.id(), Username: username, Email: email, PasswordHash: hashFor(password)}
	m.users[u.ID] = u
	return u
}

func (m *memStore) addSubject(userID int64, name string) *models.Subject {
	s := &models.Subject{ID: m.id(), UserID: userID, Name: name, Color: common.DefaultSubjectColor, CreatedAt: now()}
	m.subjects[s.ID] = s
	return s
}

func (m *memStore) addNote(subjectID int64, title, content string, updated time.Time) *models.Note {
	n := &models.Note{ID: m.id(), SubjectID: subjectID, Title: title, Content: content, CreatedAt: updated, UpdatedAt: updated}
	m.notes[n.ID] = n
	return n
}

func (m *memStore) noteCount(subjectID int64) int64 {
	var c int64
	for _, n := range m.notes {
		if n.SubjectID == subjectID {
			c++
		}
	}
	return c
}

type fakeRepoManager struct {
	s *memStore
}

func (f *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (f *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository          { return (*fakeUsers)(f.s) }
func (f *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokensrepo.Repository {
	return (*fakeTokens)(f.s)
}
func (f *fakeRepoManager) Subjects(dbx.DBTX) subjectsrepo.Repository { return (*fakeSubjects)(f.s) }
func (f *fakeRepoManager) Notes(dbx.DBTX) notesrepo.Repository       { return (*fakeNotes)(f.s) }

// --- users ---

type fakeUsers memStore

func (f *fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	s := (*memStore)(f)
	if s.failCreateUser != nil {
		return nil, s.failCreateUser
	}
	u.ID = s.id()
	cp := *u
	s.users[u.ID] = &cp
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsers) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUsers) UpdateUsername(_ context.Context, id int64, username string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u.Username = username
	cp := *u
	return &cp, nil
}

// --- refresh tokens ---

type fakeTokens memStore

func (f *fakeTokens) Create(_ context.Context, userID int64, token string, expiresAt time.Time) error {
	if f.failCreateToken != nil {
		return f.failCreateToken
	}
	f.tokens[token] = &models.RefreshToken{UserID: userID, Token: token, Expires: expiresAt}
	return nil
}

func (f *fakeTokens) Consume(_ context.Context, token string) (*models.RefreshToken, error) {
	t, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(f.tokens, token)
	return t, nil
}

func (f *fakeTokens) Delete(_ context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

// --- subjects ---

type fakeSubjects memStore

func (f *fakeSubjects) Create(_ context.Context, s *models.Subject) (*models.Subject, error) {
	st := (*memStore)(f)
	s.ID = st.id()
	cp := *s
	st.subjects[s.ID] = &cp
	return s, nil
}

func (f *fakeSubjects) Get(_ context.Context, id int64) (*models.Subject, error) {
	s, ok := f.subjects[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *s
	cp.NoteCount = (*memStore)(f).noteCount(id)
	return &cp, nil
}

func (f *fakeSubjects) Update(_ context.Context, s *models.Subject) (*models.Subject, error) {
	if _, ok := f.subjects[s.ID]; !ok {
		return nil, common.ErrorNotFound
	}
	cp := *s
	f.subjects[s.ID] = &cp
	return s, nil
}

func (f *fakeSubjects) Delete(_ context.Context, id int64) error {
	if _, ok := f.subjects[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.subjects, id)
	return nil
}

func (f *fakeSubjects) ListByUser(_ context.Context, userID int64) ([]models.Subject, error) {
	out := make([]models.Subject, 0)
	for _, s := range f.subjects {
		if s.UserID == userID {
			cp := *s
			cp.NoteCount = (*memStore)(f).noteCount(s.ID)
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (f *fakeSubjects) Search(ctx context.Context, userID int64, query string) ([]models.Subject, error) {
	all, _ := f.ListByUser(ctx, userID)
	q := strings.ToLower(query)
	out := make([]models.Subject, 0)
	for _, s := range all {
		if strings.Contains(strings.ToLower(s.Name), q) || strings.Contains(strings.ToLower(s.Description), q) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubjects) CountByUser(ctx context.Context, userID int64) (int64, error) {
	all, _ := f.ListByUser(ctx, userID)
	return int64(len(all)), nil
}

func (f *fakeSubjects) Stats(ctx context.Context, userID int64) ([]models.SubjectStat, error) {
	all, _ := f.ListByUser(ctx, userID)
	out := make([]models.SubjectStat, 0, len(all))
	for _, s := range all {
		st := models.SubjectStat{ID: s.ID, Name: s.Name, Color: s.Color, NoteCount: s.NoteCount}
		for _, n := range f.notes {
			if n.SubjectID == s.ID {
				st.WordCount += int64(len(strings.Fields(n.Content)))
			}
		}
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].NoteCount != out[j].NoteCount {
			return out[i].NoteCount > out[j].NoteCount
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// --- notes ---

type fakeNotes memStore

func (f *fakeNotes) Create(_ context.Context, n *models.Note) (*models.Note, error) {
	st := (*memStore)(f)
	n.ID = st.id()
	cp := *n
	st.notes[n.ID] = &cp
	return n, nil
}

func (f *fakeNotes) Get(_ context.Context, id int64) (*models.Note, error) {
	n, ok := f.notes[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *n
	return &cp, nil
}

func (f *fakeNotes) Update(_ context.Context, n *models.Note) (*models.Note, error) {
	cur, ok := f.notes[n.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cur.Title, cur.Content, cur.UpdatedAt = n.Title, n.Content, n.UpdatedAt
	return n, nil
}

func (f *fakeNotes) TogglePinned(_ context.Context, id int64) (*models.Note, error) {
	n, ok := f.notes[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	n.IsPinned = !n.IsPinned
	cp := *n
	return &cp, nil
}

func (f *fakeNotes) Delete(_ context.Context, id int64) error {
	if _, ok := f.notes[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.notes, id)
	return nil
}

func (f *fakeNotes) DeleteBySubject(_ context.Context, subjectID int64) (int64, error) {
	if f.failDeleteNotes != nil {
		return 0, f.failDeleteNotes
	}
	var c int64
	for id, n := range f.notes {
		if n.SubjectID == subjectID {
			delete(f.notes, id)
			c++
		}
	}
	return c, nil
}

func (f *fakeNotes) ListBySubject(_ context.Context, subjectID int64) ([]models.Note, error) {
	out := make([]models.Note, 0)
	for _, n := range f.notes {
		if n.SubjectID == subjectID {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsPinned != out[j].IsPinned {
			return out[i].IsPinned
		}
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (f *fakeNotes) summaries(userID int64, keep func(*models.Note) bool) []models.NoteSummary {
	out := make([]models.NoteSummary, 0)
	for _, n := range f.notes {
		s, ok := f.subjects[n.SubjectID]
		if !ok || s.UserID != userID || !keep(n) {
			continue
		}
		out = append(out, models.NoteSummary{Note: *n, SubjectName: s.Name, SubjectColor: s.Color})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (f *fakeNotes) Recent(_ context.Context, userID int64, limit int) ([]models.NoteSummary, error) {
	out := f.summaries(userID, func(*models.Note) bool { return true })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeNotes) Search(_ context.Context, userID int64, query string) ([]models.NoteSummary, error) {
	q := strings.ToLower(query)
	return f.summaries(userID, func(n *models.Note) bool {
		return strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Content), q)
	}), nil
}

func (f *fakeNotes) CountByUser(_ context.Context, userID int64) (int64, error) {
	return int64(len(f.summaries(userID, func(*models.Note) bool { return true }))), nil
}

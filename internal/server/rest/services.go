package rest

import (
	"context"

	"github.com/dmitrijs2005/studyhub/internal/server/models"
	"github.com/dmitrijs2005/studyhub/internal/server/services"
)

// The handler depends on these narrow views of the service layer so tests
// can substitute stubs.

type UserService interface {
	Register(ctx context.Context, in models.RegisterInput) (*models.User, error)
	Login(ctx context.Context, in models.LoginInput) (*services.Session, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	GetUser(ctx context.Context, actor models.Actor) (*models.User, error)
	UpdateUsername(ctx context.Context, actor models.Actor, in models.UpdateUsernameInput) (*models.User, error)
}

type SubjectService interface {
	Create(ctx context.Context, actor models.Actor, in models.SubjectInput) (*models.Subject, error)
	Get(ctx context.Context, actor models.Actor, id int64) (*models.Subject, error)
	Update(ctx context.Context, actor models.Actor, id int64, in models.SubjectInput) (*models.Subject, error)
	Delete(ctx context.Context, actor models.Actor, id int64) (int64, error)
	List(ctx context.Context, actor models.Actor) ([]models.Subject, error)
}

type NoteService interface {
	Create(ctx context.Context, actor models.Actor, subjectID int64, in models.NoteInput) (*models.Note, error)
	Get(ctx context.Context, actor models.Actor, id int64) (*models.Note, error)
	Update(ctx context.Context, actor models.Actor, id int64, in models.NoteInput) (*models.Note, error)
	Delete(ctx context.Context, actor models.Actor, id int64) error
	List(ctx context.Context, actor models.Actor, subjectID int64) ([]models.Note, error)
	TogglePin(ctx context.Context, actor models.Actor, id int64) (*models.Note, error)
}

type ViewService interface {
	Search(ctx context.Context, actor models.Actor, q string) (*models.SearchResult, error)
	Statistics(ctx context.Context, actor models.Actor) (*models.Statistics, error)
	RecentNotes(ctx context.Context, actor models.Actor) ([]models.NoteSummary, error)
	Dashboard(ctx context.Context, actor models.Actor) (*models.Dashboard, error)
}

type ExportService interface {
	ExportNote(ctx context.Context, actor models.Actor, id int64) (*models.NoteExport, error)
	ArchiveNote(ctx context.Context, actor models.Actor, id int64) (*models.ArchivedExport, error)
}

// Services groups the dependencies of Server.
type Services struct {
	Users    UserService
	Subjects SubjectService
	Notes    NoteService
	Views    ViewService
	Exports  ExportService
}

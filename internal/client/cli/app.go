package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/studyhub/internal/client/client"
	"github.com/dmitrijs2005/studyhub/internal/client/config"
	"github.com/dmitrijs2005/studyhub/internal/server/models"
)

// apiClient is the part of client.APIClient the commands use.
type apiClient interface {
	LoggedIn() bool
	Register(ctx context.Context, in models.RegisterInput) (*models.User, error)
	Login(ctx context.Context, in models.LoginInput) (*models.User, error)
	Logout(ctx context.Context) error
	UpdateUsername(ctx context.Context, username string) (*models.User, error)
	Subjects(ctx context.Context) ([]models.Subject, error)
	CreateSubject(ctx context.Context, in models.SubjectInput) (*models.Subject, error)
	DeleteSubject(ctx context.Context, id int64) (int64, error)
	Notes(ctx context.Context, subjectID int64) ([]models.Note, error)
	CreateNote(ctx context.Context, subjectID int64, in models.NoteInput) (*models.Note, error)
	Note(ctx context.Context, id int64) (*models.Note, error)
	UpdateNote(ctx context.Context, id int64, in models.NoteInput) (*models.Note, error)
	DeleteNote(ctx context.Context, id int64) error
	TogglePin(ctx context.Context, id int64) (*models.Note, error)
	Search(ctx context.Context, q string) (*models.SearchResult, error)
	Statistics(ctx context.Context) (*models.Statistics, error)
	RecentNotes(ctx context.Context) ([]models.NoteSummary, error)
	Dashboard(ctx context.Context) (*models.Dashboard, error)
	ExportNote(ctx context.Context, id int64) (*models.NoteExport, error)
	ArchiveNote(ctx context.Context, id int64) (*models.ArchivedExport, error)
}

type App struct {
	config   *config.Config
	api      apiClient
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    client.NewAPIClient(c.ServerURL, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.api.LoggedIn()
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// Run starts the REPL on stdin and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to StudyHub CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

package client

import (
	"context"
	"io"
	"net/http"

	"github.com/dmitrijs2005/studyhub/internal/server/models"
)

type loginResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type deleteSubjectResponse struct {
	DeletedNotes int64 `json:"deleted_notes"`
}

func (c *APIClient) Register(ctx context.Context, in models.RegisterInput) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login authenticates and keeps the issued token pair for later calls.
func (c *APIClient) Login(ctx context.Context, in models.LoginInput) (*models.User, error) {
	var res loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", in, &res); err != nil {
		return nil, err
	}
	c.setTokens(res.AccessToken, res.RefreshToken)
	return res.User, nil
}

// Refresh rotates the token pair. The pair is dropped when the server
// rejects the refresh token.
func (c *APIClient) Refresh(ctx context.Context) error {
	_, refresh := c.tokens()

	resp, err := c.send(ctx, http.MethodPost, "/api/auth/refresh", refreshRequest{RefreshToken: refresh})
	if err != nil {
		return err
	}
	if apiErr := responseError(resp); apiErr != nil {
		c.setTokens("", "")
		return apiErr
	}
	defer resp.Body.Close()

	var pair tokenPair
	if err := decodeJSON(resp.Body, &pair); err != nil {
		return err
	}
	c.setTokens(pair.AccessToken, pair.RefreshToken)
	return nil
}

// Logout revokes the refresh token on the server and forgets both tokens.
func (c *APIClient) Logout(ctx context.Context) error {
	_, refresh := c.tokens()
	defer c.setTokens("", "")
	return c.do(ctx, http.MethodPost, "/api/auth/logout", refreshRequest{RefreshToken: refresh}, nil)
}

func (c *APIClient) Me(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/api/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *APIClient) UpdateUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPut, "/api/me/username", models.UpdateUsernameInput{Username: username}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *APIClient) Subjects(ctx context.Context) ([]models.Subject, error) {
	var list []models.Subject
	if err := c.do(ctx, http.MethodGet, "/api/subjects", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *APIClient) CreateSubject(ctx context.Context, in models.SubjectInput) (*models.Subject, error) {
	var s models.Subject
	if err := c.do(ctx, http.MethodPost, "/api/subjects", in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteSubject returns the number of notes removed with the subject.
func (c *APIClient) DeleteSubject(ctx context.Context, id int64) (int64, error) {
	var res deleteSubjectResponse
	if err := c.do(ctx, http.MethodDelete, idPath("/api/subjects/%d", id), nil, &res); err != nil {
		return 0, err
	}
	return res.DeletedNotes, nil
}

func (c *APIClient) Notes(ctx context.Context, subjectID int64) ([]models.Note, error) {
	var list []models.Note
	if err := c.do(ctx, http.MethodGet, idPath("/api/subjects/%d/notes", subjectID), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *APIClient) CreateNote(ctx context.Context, subjectID int64, in models.NoteInput) (*models.Note, error) {
	var n models.Note
	if err := c.do(ctx, http.MethodPost, idPath("/api/subjects/%d/notes", subjectID), in, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *APIClient) Note(ctx context.Context, id int64) (*models.Note, error) {
	var n models.Note
	if err := c.do(ctx, http.MethodGet, idPath("/api/notes/%d", id), nil, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *APIClient) UpdateNote(ctx context.Context, id int64, in models.NoteInput) (*models.Note, error) {
	var n models.Note
	if err := c.do(ctx, http.MethodPut, idPath("/api/notes/%d", id), in, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *APIClient) DeleteNote(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/api/notes/%d", id), nil, nil)
}

func (c *APIClient) TogglePin(ctx context.Context, id int64) (*models.Note, error) {
	var n models.Note
	if err := c.do(ctx, http.MethodPost, idPath("/api/notes/%d/pin", id), nil, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *APIClient) Search(ctx context.Context, q string) (*models.SearchResult, error) {
	var res models.SearchResult
	if err := c.do(ctx, http.MethodGet, queryPath("/api/search", "q", q), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *APIClient) Statistics(ctx context.Context) (*models.Statistics, error) {
	var st models.Statistics
	if err := c.do(ctx, http.MethodGet, "/api/statistics", nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *APIClient) RecentNotes(ctx context.Context) ([]models.NoteSummary, error) {
	var list []models.NoteSummary
	if err := c.do(ctx, http.MethodGet, "/api/notes/recent", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *APIClient) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	var d models.Dashboard
	if err := c.do(ctx, http.MethodGet, "/api/dashboard", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ExportNote downloads the plain-text export of a note.
func (c *APIClient) ExportNote(ctx context.Context, id int64) (*models.NoteExport, error) {
	resp, err := c.roundTrip(ctx, http.MethodGet, idPath("/api/notes/%d/export", id), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &models.NoteExport{
		FileName: filenameFrom(resp.Header.Get("Content-Disposition")),
		Content:  string(body),
	}, nil
}

func (c *APIClient) ArchiveNote(ctx context.Context, id int64) (*models.ArchivedExport, error) {
	var a models.ArchivedExport
	if err := c.do(ctx, http.MethodPost, idPath("/api/notes/%d/archive", id), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

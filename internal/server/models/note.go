package models

import "time"

type Note struct {
	ID        int64     `json:"id"`
	SubjectID int64     `json:"subject_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsPinned  bool      `json:"is_pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteSummary is a note listed together with its subject, as shown in the
// recent notes and search views.
type NoteSummary struct {
	Note
	SubjectName  string `json:"subject_name"`
	SubjectColor string `json:"subject_color"`
}

type NoteInput struct {
	Title   string `json:"title" validate:"required,min=2,max=200"`
	Content string `json:"content" validate:"required,min=10"`
}

func (in *NoteInput) Normalize() {
	in.Title = trim(in.Title)
	in.Content = trim(in.Content)
}

// NoteExport is a rendered plain-text export of a note.
type NoteExport struct {
	FileName string
	Content  string
}

// ArchivedExport locates an export stored in object storage.
type ArchivedExport struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

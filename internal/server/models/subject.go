package models

import (
	"time"

	"github.com/dmitrijs2005/studyhub/internal/common"
)

type Subject struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	NoteCount   int64     `json:"note_count"`
}

type SubjectInput struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
	Color       string `json:"color" validate:"color"`
}

// Normalize trims text fields and applies the default color.
func (in *SubjectInput) Normalize() {
	in.Name = trim(in.Name)
	in.Description = trim(in.Description)
	in.Color = trim(in.Color)
	if in.Color == "" {
		in.Color = common.DefaultSubjectColor
	}
}

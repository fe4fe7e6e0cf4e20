package cli

import (
	"fmt"

	"github.com/dmitrijs2005/studyhub/internal/server/models"
)

const timeLayout = "Jan 02, 2006 15:04"

func formatSubject(s models.Subject) string {
	line := fmt.Sprintf("[%d] %s (%d notes)", s.ID, s.Name, s.NoteCount)
	if s.Description != "" {
		line += " - " + s.Description
	}
	return line
}

func formatNote(n models.Note) string {
	pin := " "
	if n.IsPinned {
		pin = "*"
	}
	return fmt.Sprintf("%s[%d] %s  (updated %s)", pin, n.ID, n.Title, n.UpdatedAt.Local().Format(timeLayout))
}

func formatSummary(n models.NoteSummary) string {
	return fmt.Sprintf("%s  <%s>", formatNote(n.Note), n.SubjectName)
}

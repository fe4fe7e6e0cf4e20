package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/studyhub/internal/server/models"
)

func (a *App) ListNotes(ctx context.Context, args []string) error {
	subjectID, err := parseID(args, "notes <subject id>")
	if err != nil {
		return err
	}

	list, err := a.api.Notes(ctx, subjectID)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		printlnFn("No notes in this subject")
		return nil
	}
	for _, n := range list {
		printlnFn(formatNote(n))
	}
	return nil
}

func (a *App) AddNote(ctx context.Context, args []string) error {
	subjectID, err := parseID(args, "addnote <subject id>")
	if err != nil {
		return err
	}

	in, err := a.readNote()
	if err != nil {
		return err
	}

	n, err := a.api.CreateNote(ctx, subjectID, in)
	if err != nil {
		return err
	}
	printlnFn("Created note", n.ID)
	return nil
}

func (a *App) ShowNote(ctx context.Context, args []string) error {
	id, err := parseID(args, "show <id>")
	if err != nil {
		return err
	}

	n, err := a.api.Note(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(formatNote(*n))
	printlnFn("Created:", n.CreatedAt.Local().Format(timeLayout), "  Updated:", n.UpdatedAt.Local().Format(timeLayout))
	printlnFn()
	printlnFn(n.Content)
	return nil
}

func (a *App) EditNote(ctx context.Context, args []string) error {
	id, err := parseID(args, "editnote <id>")
	if err != nil {
		return err
	}

	cur, err := a.api.Note(ctx, id)
	if err != nil {
		return err
	}
	printlnFn("Editing:", cur.Title, "(leave title empty to keep it)")

	in, err := a.readNote()
	if err != nil {
		return err
	}
	if in.Title == "" {
		in.Title = cur.Title
	}
	if in.Content == "" {
		in.Content = cur.Content
	}

	if _, err := a.api.UpdateNote(ctx, id, in); err != nil {
		return err
	}
	printlnFn("Updated note", id)
	return nil
}

func (a *App) DeleteNote(ctx context.Context, args []string) error {
	id, err := parseID(args, "delnote <id>")
	if err != nil {
		return err
	}
	if err := a.api.DeleteNote(ctx, id); err != nil {
		return err
	}
	printlnFn("Deleted note", id)
	return nil
}

func (a *App) PinNote(ctx context.Context, args []string) error {
	id, err := parseID(args, "pin <id>")
	if err != nil {
		return err
	}

	n, err := a.api.TogglePin(ctx, id)
	if err != nil {
		return err
	}
	if n.IsPinned {
		printlnFn("Pinned note", id)
	} else {
		printlnFn("Unpinned note", id)
	}
	return nil
}

func (a *App) readNote() (models.NoteInput, error) {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return models.NoteInput{}, err
	}
	content, err := getMultiline(a.reader, "Content", os.Stdout)
	if err != nil {
		return models.NoteInput{}, err
	}
	return models.NoteInput{Title: title, Content: content}, nil
}

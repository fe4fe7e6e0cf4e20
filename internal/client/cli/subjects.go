package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/studyhub/internal/server/models"
)

func parseID(args []string, usage string) (int64, error) {
	if len(args) == 0 {
		return 0, errors.New("usage: " + usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

func (a *App) ListSubjects(ctx context.Context, _ []string) error {
	list, err := a.api.Subjects(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		printlnFn("No subjects yet. Use addsubject to create one.")
		return nil
	}
	for _, s := range list {
		printlnFn(formatSubject(s))
	}
	return nil
}

func (a *App) AddSubject(ctx context.Context, _ []string) error {
	name, err := getSimpleText(a.reader, "Subject name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	color, err := getSimpleText(a.reader, "Color, e.g. #0d6efd (optional)", os.Stdout)
	if err != nil {
		return err
	}

	s, err := a.api.CreateSubject(ctx, models.SubjectInput{Name: name, Description: description, Color: color})
	if err != nil {
		return err
	}
	printlnFn("Created subject", s.ID)
	return nil
}

func (a *App) DeleteSubject(ctx context.Context, args []string) error {
	id, err := parseID(args, "delsubject <id>")
	if err != nil {
		return err
	}

	answer, err := getSimpleText(a.reader, "Delete the subject and all of its notes? (y/N)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "Y" {
		printlnFn("Cancelled")
		return nil
	}

	n, err := a.api.DeleteSubject(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Deleted subject %d and %d note(s)", id, n))
	return nil
}

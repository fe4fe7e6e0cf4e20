package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

func (a *App) Dashboard(ctx context.Context, _ []string) error {
	d, err := a.api.Dashboard(ctx)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("%d subject(s), %d note(s)", d.SubjectCount, d.NoteCount))
	for _, s := range d.Subjects {
		printlnFn(formatSubject(s))
	}
	if len(d.RecentNotes) > 0 {
		printlnFn("Recent notes:")
		for _, n := range d.RecentNotes {
			printlnFn(formatSummary(n))
		}
	}
	return nil
}

func (a *App) Search(ctx context.Context, args []string) error {
	q := strings.Join(args, " ")
	if q == "" {
		return errors.New("usage: search <text>")
	}

	res, err := a.api.Search(ctx, q)
	if err != nil {
		return err
	}
	if len(res.Subjects) == 0 && len(res.Notes) == 0 {
		printlnFn("Nothing found for", fmt.Sprintf("%q", res.Query))
		return nil
	}
	for _, s := range res.Subjects {
		printlnFn(formatSubject(s))
	}
	for _, n := range res.Notes {
		printlnFn(formatSummary(n))
	}
	return nil
}

func (a *App) Stats(ctx context.Context, _ []string) error {
	st, err := a.api.Statistics(ctx)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Subjects: %d  Notes: %d  Words: %d  Notes per subject: %.1f",
		st.SubjectCount, st.NoteCount, st.TotalWords, st.AverageNotesPerSubject))
	for i, s := range st.Subjects {
		printlnFn(fmt.Sprintf("%2d. %s: %d note(s), %d word(s)", i+1, s.Name, s.NoteCount, s.WordCount))
	}
	return nil
}

func (a *App) Recent(ctx context.Context, _ []string) error {
	list, err := a.api.RecentNotes(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		printlnFn("No notes yet")
		return nil
	}
	for _, n := range list {
		printlnFn(formatSummary(n))
	}
	return nil
}

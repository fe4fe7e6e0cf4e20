package cli

import (
	"context"

	"github.com/dmitrijs2005/studyhub/internal/filex"
)

// Export saves a note as a text file in the export directory, or with the
// "archive" argument asks the server to store it and prints a download link.
func (a *App) Export(ctx context.Context, args []string) error {
	id, err := parseID(args, "export <id> [archive]")
	if err != nil {
		return err
	}

	if len(args) > 1 && args[1] == "archive" {
		arc, err := a.api.ArchiveNote(ctx, id)
		if err != nil {
			return err
		}
		printlnFn("Archived as", arc.Key)
		printlnFn("Download (valid until", arc.ExpiresAt.Local().Format(timeLayout)+"):", arc.URL)
		return nil
	}

	exp, err := a.api.ExportNote(ctx, id)
	if err != nil {
		return err
	}

	path, err := filex.SaveFile(a.config.ExportDir, exp.FileName, []byte(exp.Content))
	if err != nil {
		return err
	}
	printlnFn("Saved", path)
	return nil
}

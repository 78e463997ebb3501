package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophdiary/internal/models"
)

// viewEntries pages through a snapshot of the entries matching filter. The
// snapshot is not re-read after a delete; the deleted entry is always the one
// on screen, so moving on never shows it again.
func (a *App) viewEntries(ctx context.Context, filter string) error {
	list, err := a.entries.List(ctx, filter)
	if err != nil {
		return err
	}

	for i := range list {
		e := &list[i]

		a.screen.Clear()
		renderEntry(a.out, e)

		action, err := ReadLine(a.reader, a.out, "action: [n/d/q] ")
		if err != nil {
			return err
		}

		switch strings.ToLower(action) {
		case "q":
			return nil
		case "d":
			if err := a.deleteEntry(ctx, e); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *App) searchEntries(ctx context.Context) error {
	query, err := ReadLine(a.reader, a.out, "Search query: ")
	if err != nil {
		return err
	}
	return a.viewEntries(ctx, query)
}

func renderEntry(w io.Writer, e *models.Entry) {
	header := e.Header()
	rule := models.Rule(header)

	fmt.Fprintln(w, header)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, e.Content)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "n) next entry")
	fmt.Fprintln(w, "d) delete entry")
	fmt.Fprintln(w, "q) return to main menu")
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophdiary/internal/models"
)

// deleteEntry removes e after an explicit "y". Any other answer keeps it.
func (a *App) deleteEntry(ctx context.Context, e *models.Entry) error {
	answer, err := ReadLine(a.reader, a.out, "Are you sure? [y/n] ")
	if err != nil {
		return err
	}
	if strings.ToLower(answer) != "y" {
		return nil
	}

	if err := a.entries.Delete(ctx, e.ID); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Entry deleted.")
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) addEntry(ctx context.Context) error {
	fmt.Fprintln(a.out, "Enter your entry. Press ctrl+d when finished.")

	text, err := ReadUntilEOF(a.reader)
	if err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	answer, err := ReadLine(a.reader, a.out, "\nSave entry? [y/n] ")
	if err != nil {
		return err
	}
	if strings.ToLower(answer) == "n" {
		return nil
	}

	if _, err := a.entries.Add(ctx, text); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Saved successfully!")
	return nil
}

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophdiary/internal/common"
)

// QuitKey ends the menu loop.
const QuitKey = "q"

// Command is one menu action.
type Command struct {
	Key   string
	Label string
	Run   func(ctx context.Context) error
}

func findCommand(commands []Command, key string) (Command, bool) {
	for _, c := range commands {
		if c.Key == key {
			return c, true
		}
	}
	return Command{}, false
}

// runMenu renders the menu and dispatches commands until QuitKey is entered
// or input closes at the prompt. Unknown keys re-prompt silently. The first
// error returned by a command stops the loop and is returned.
func runMenu(ctx context.Context, w io.Writer, reader *bufio.Reader, screen Screen, commands []Command) error {
	for {
		screen.Clear()
		fmt.Fprintf(w, "Enter '%s' to quit.\n", QuitKey)
		for _, c := range commands {
			fmt.Fprintf(w, "%s) %s\n", c.Key, c.Label)
		}

		choice, err := ReadLine(reader, w, "Action: ")
		if err != nil {
			if errors.Is(err, common.ErrInputClosed) {
				fmt.Fprintln(w)
				return nil
			}
			return err
		}
		choice = strings.ToLower(choice)

		if choice == QuitKey {
			return nil
		}

		cmd, ok := findCommand(commands, choice)
		if !ok {
			continue
		}
		screen.Clear()
		if err := cmd.Run(ctx); err != nil {
			return err
		}
	}
}

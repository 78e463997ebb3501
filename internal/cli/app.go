package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/gophdiary/internal/config"
	"github.com/dmitrijs2005/gophdiary/internal/database"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
	"github.com/dmitrijs2005/gophdiary/internal/services"
)

type App struct {
	entries  services.EntryService
	reader   *bufio.Reader
	out      io.Writer
	screen   Screen
	log      logging.Logger
	commands []Command
	closeFn  func() error
}

// New builds an App around an entry service and the given terminal streams.
// A nil screen disables clearing and a nil logger discards records.
func New(es services.EntryService, in io.Reader, out io.Writer, screen Screen, log logging.Logger) *App {
	if screen == nil {
		screen = nopScreen{}
	}
	if log == nil {
		log = logging.Nop()
	}
	a := &App{
		entries: es,
		reader:  bufio.NewReader(in),
		out:     out,
		screen:  screen,
		log:     log.With("component", "cli"),
		closeFn: func() error { return nil },
	}
	a.commands = []Command{
		{Key: "a", Label: "Add an entry", Run: a.addEntry},
		{Key: "v", Label: "View previous entries", Run: func(ctx context.Context) error { return a.viewEntries(ctx, "") }},
		{Key: "s", Label: "Search entries for a word", Run: a.searchEntries},
	}
	return a
}

// NewApp opens the database named in c and wires an App to the process's
// standard streams.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	repos, err := database.Open(ctx, c.DatabasePath, database.Options{
		BusyTimeout: c.BusyTimeout,
		Logger:      log,
	})
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	es := services.NewEntryService(repos.Entries, services.WithLogger(log))
	a := New(es, os.Stdin, os.Stdout, NewScreen(os.Stdout, c.ClearScreen), log)
	a.closeFn = repos.Close
	return a, nil
}

// Commands returns the menu commands in display order.
func (a *App) Commands() []Command {
	return a.commands
}

// Run drives the menu loop until the user quits.
func (a *App) Run(ctx context.Context) error {
	if err := runMenu(ctx, a.out, a.reader, a.screen, a.commands); err != nil {
		a.log.Error(ctx, "menu stopped", "error", err)
		return err
	}
	return nil
}

// Close releases the database.
func (a *App) Close() error {
	return a.closeFn()
}

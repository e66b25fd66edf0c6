// Command advisor runs the investment advisory pipeline from the terminal
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/charmbracelet/glamour"
	"github.com/findosh/advisor/internal/config"
	"github.com/findosh/advisor/internal/logger"
	"github.com/findosh/advisor/internal/storage"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

var (
	plain = flag.Bool("plain", false, "print raw markdown instead of styled terminal output")

	cfg *config.Config
	log zerolog.Logger
)

func main() {
	cfg = config.Load()
	log = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
		Output: os.Stderr,
	})

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	commander.Register(&assetsCmd{}, "catalog")
	commander.Register(&questionnaireCmd{}, "catalog")
	commander.Register(&adviseCmd{}, "advice")
	commander.Register(&viewCmd{}, "database")
	commander.Register(&dropCmd{}, "database")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// printMarkdown renders markdown for the terminal, falling back to raw text
func printMarkdown(md string) {
	if *plain {
		fmt.Print(md)
		return
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// openStore opens the configured database and makes sure the tables exist
func openStore() (*storage.DB, *storage.Store, error) {
	db, err := storage.New(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, storage.NewStore(db), nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/findosh/advisor/internal/renderer"
	"github.com/google/subcommands"
)

// viewCmd dumps the stored users and portfolios
type viewCmd struct{}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "show the saved users and portfolios" }
func (*viewCmd) Usage() string {
	return `advisor view

  Prints the users and portfolios tables of the configured database.
`
}

func (*viewCmd) SetFlags(*flag.FlagSet) {}

func (*viewCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	users, err := store.Users.List(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing users: %v\n", err)
		return subcommands.ExitFailure
	}
	portfolios, err := store.Portfolios.List(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing portfolios: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ProfilesMarkdown(users) + "\n" + renderer.PortfoliosMarkdown(portfolios))
	return subcommands.ExitSuccess
}

// dropCmd removes every table
type dropCmd struct {
	yes bool
}

func (*dropCmd) Name() string     { return "drop" }
func (*dropCmd) Synopsis() string { return "delete all saved users, portfolios and reports" }
func (*dropCmd) Usage() string {
	return `advisor drop -yes

  Drops the users, portfolios and reports tables.
`
}

func (c *dropCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "confirm dropping the tables")
}

func (c *dropCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		fmt.Fprintln(os.Stderr, "Refusing to drop tables without -yes")
		return subcommands.ExitUsageError
	}

	db, _, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	if err := db.Drop(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Info().Str("database", cfg.DatabaseURL).Msg("tables dropped")
	return subcommands.ExitSuccess
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/findosh/advisor/internal/models"
	"github.com/findosh/advisor/internal/renderer"
	"github.com/findosh/advisor/internal/services/advisor"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// adviseCmd holds the flags for the 'advise' subcommand
type adviseCmd struct {
	name    string
	income  string
	savings string
	target  string
	goals   string
	answers string
	amount  string
	years   int
	save    bool
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "score a profile, allocate it and project the portfolio" }
func (*adviseCmd) Usage() string {
	return `advisor advise -name <name> -income <n> -savings <n> -target <fraction> -goals <list> -answers <list> [-amount <n>] [-years <n>] [-save]

  Scores the questionnaire answers, allocates the profile and projects the
  investment over the horizon. Goals and answers are comma separated, for
  example -goals retirement,education -answers 0,1,0,0.
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "investor name")
	f.StringVar(&c.income, "income", "0", "annual income")
	f.StringVar(&c.savings, "savings", "0", "total savings")
	f.StringVar(&c.target, "target", "0.08", "target annual return as a fraction")
	f.StringVar(&c.goals, "goals", string(models.GoalWealthBuilding), "comma separated investment goals")
	f.StringVar(&c.answers, "answers", "", "comma separated questionnaire option indexes")
	f.StringVar(&c.amount, "amount", "", "investment amount, defaults to total savings")
	f.IntVar(&c.years, "years", cfg.DefaultHorizonYears, "projection horizon in years")
	f.BoolVar(&c.save, "save", false, "persist the profile, portfolio and report")
}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	input, err := c.profileInput()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	amount := input.TotalSavings
	if c.amount != "" {
		if amount, err = decimal.NewFromString(c.amount); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	opts := advisor.Options{
		SessionTTL:      cfg.SessionDuration,
		MaxHorizonYears: cfg.MaxHorizonYears,
		Logger:          log,
	}
	if c.save {
		db, store, err := openStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
			return subcommands.ExitFailure
		}
		defer db.Close()
		opts.Store = store
	}
	svc := advisor.NewService(opts)

	session, err := svc.StartSession(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitStatus(err)
	}

	report, err := svc.Analyze(ctx, session, advisor.AnalysisInput{
		InvestmentAmount: amount,
		HorizonYears:     c.years,
	})
	if report == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitStatus(err)
	}

	printMarkdown(renderer.ReportMarkdown(report, svc.Catalog()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.save {
		fmt.Fprintf(os.Stderr, "Saved portfolio %s for %s\n", report.PortfolioID, session.Profile.ID)
	}
	return subcommands.ExitSuccess
}

func (c *adviseCmd) profileInput() (advisor.ProfileInput, error) {
	var in advisor.ProfileInput
	var err error

	in.Name = c.name
	if in.AnnualIncome, err = decimal.NewFromString(c.income); err != nil {
		return in, fmt.Errorf("invalid income: %w", err)
	}
	if in.TotalSavings, err = decimal.NewFromString(c.savings); err != nil {
		return in, fmt.Errorf("invalid savings: %w", err)
	}
	if in.TargetAnnualReturn, err = decimal.NewFromString(c.target); err != nil {
		return in, fmt.Errorf("invalid target: %w", err)
	}

	for _, g := range splitList(c.goals) {
		goal, err := models.ParseInvestmentGoal(g)
		if err != nil {
			return in, err
		}
		in.InvestmentGoals = append(in.InvestmentGoals, goal)
	}

	for _, a := range splitList(c.answers) {
		idx, err := strconv.Atoi(a)
		if err != nil {
			return in, fmt.Errorf("invalid answer %q: %w", a, err)
		}
		in.Answers = append(in.Answers, idx)
	}
	return in, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func exitStatus(err error) subcommands.ExitStatus {
	if errors.Is(err, models.ErrInvalidInput) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

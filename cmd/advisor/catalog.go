package main

import (
	"context"
	"flag"

	"github.com/findosh/advisor/internal/models"
	"github.com/findosh/advisor/internal/renderer"
	"github.com/findosh/advisor/internal/services/risk"
	"github.com/google/subcommands"
)

// assetsCmd prints the asset catalog and the allocation policy
type assetsCmd struct{}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list the asset catalog and allocation policy" }
func (*assetsCmd) Usage() string {
	return `advisor assets

  Lists every asset with its expected annual return, risk level and reference
  price, followed by the target split per asset type and risk category.
`
}

func (*assetsCmd) SetFlags(*flag.FlagSet) {}

func (*assetsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.AssetsMarkdown(models.DefaultAssets()) + "\n" + renderer.PolicyMarkdown())
	return subcommands.ExitSuccess
}

// questionnaireCmd prints the risk questions and their option indexes
type questionnaireCmd struct{}

func (*questionnaireCmd) Name() string     { return "questionnaire" }
func (*questionnaireCmd) Synopsis() string { return "show the risk tolerance questions" }
func (*questionnaireCmd) Usage() string {
	return `advisor questionnaire

  Shows the risk questions. Pass the chosen option indexes to 'advise -answers'.
`
}

func (*questionnaireCmd) SetFlags(*flag.FlagSet) {}

func (*questionnaireCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.QuestionnaireMarkdown(risk.DefaultQuestionnaire()))
	return subcommands.ExitSuccess
}

// Package renderer turns advisory results into markdown documents.
//
// The output is plain markdown so it can be printed raw or styled for a
// terminal by the caller.
package renderer

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/findosh/advisor/internal/models"
	"github.com/findosh/advisor/internal/services/allocation"
	"github.com/findosh/advisor/internal/services/risk"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Money formats an amount with thousands separators and two decimals
func Money(v decimal.Decimal) string {
	return humanize.FormatFloat("#,###.##", v.InexactFloat64())
}

// Percent formats a fraction as a percentage with two decimals
func Percent(v decimal.Decimal) string {
	return v.Mul(hundred).StringFixed(2) + "%"
}

// AssetsMarkdown renders the asset catalog
func AssetsMarkdown(catalog []models.Asset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Assets\n\n")
	fmt.Fprintln(&b, "| Asset | Type | Annual Return | Risk | Price |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
	for _, a := range catalog {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			a.Name,
			a.Type.DisplayName(),
			Percent(a.AnnualReturn),
			a.RiskLevel.StringFixed(2),
			Money(a.ReferencePrice),
		)
	}
	return b.String()
}

// PolicyMarkdown renders the allocation policy table
func PolicyMarkdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Allocation Policy\n\n")
	fmt.Fprintln(&b, "| Type | Low | Medium | High |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, row := range allocation.Policy() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			row.Type.DisplayName(),
			Percent(row.Targets[models.RiskLow]),
			Percent(row.Targets[models.RiskMedium]),
			Percent(row.Targets[models.RiskHigh]),
		)
	}
	return b.String()
}

// QuestionnaireMarkdown renders the questions with numbered options
func QuestionnaireMarkdown(q *risk.Questionnaire) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Risk Questionnaire\n\n")
	for i, question := range q.Questions {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, question.Prompt)
		for j, opt := range question.Options {
			fmt.Fprintf(&b, "   - `%d` %s\n", j, opt.Text)
		}
	}
	return b.String()
}

// SessionMarkdown renders a profile with its risk category and allocation
func SessionMarkdown(s *models.Session, catalog []models.Asset) string {
	var b strings.Builder
	p := s.Profile

	fmt.Fprintf(&b, "# Profile: %s\n\n", p.Name)
	fmt.Fprintf(&b, "- Annual income: %s\n", Money(p.AnnualIncome))
	fmt.Fprintf(&b, "- Total savings: %s\n", Money(p.TotalSavings))
	fmt.Fprintf(&b, "- Target annual return: %s\n", Percent(p.TargetAnnualReturn))
	fmt.Fprintf(&b, "- Goals: %s\n", goalNames(p.InvestmentGoals))
	fmt.Fprintf(&b, "- Risk score: %s (%s)\n\n", p.RiskScore.StringFixed(3), s.RiskCategory)

	b.WriteString(allocationTable(s.Allocation, catalog, nil))
	return b.String()
}

// ReportMarkdown renders a complete analysis report
func ReportMarkdown(r *models.Report, catalog []models.Asset) string {
	var b strings.Builder
	state := r.State

	fmt.Fprintf(&b, "# Investment Report\n\n")
	if state.Profile != nil {
		fmt.Fprintf(&b, "- Investor: %s\n", state.Profile.Name)
	}
	fmt.Fprintf(&b, "- Initial investment: %s\n", Money(state.InitialInvestment))
	fmt.Fprintf(&b, "- Horizon: %d years\n", r.HorizonYears)
	fmt.Fprintf(&b, "- Expected annual return: %s\n", Percent(r.ExpectedReturn))
	if final, ok := r.FinalRow(); ok {
		fmt.Fprintf(&b, "- Projected value: %s (%s in today's money)\n",
			Money(final.TotalValue), Money(final.InflationAdjustedValue))
	}
	b.WriteString("\n")

	amount := state.InitialInvestment
	b.WriteString(allocationTable(state.Allocation, catalog, &amount))
	b.WriteString("\n")
	b.WriteString(ProjectionMarkdown(r.Simulation))
	b.WriteString("\n")
	b.WriteString(RecommendationsMarkdown(r.Recommendations))
	return b.String()
}

// ProjectionMarkdown renders one row per projected year
func ProjectionMarkdown(rows []models.SimulationRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Projection\n\n")
	fmt.Fprintln(&b, "| Year | Date | Total Value | Inflation Adjusted |")
	fmt.Fprintln(&b, "|---:|:---|---:|---:|")
	for _, row := range rows {
		if row.Month%12 != 0 {
			continue
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n",
			row.Month/12,
			row.Date.Format("2006-01-02"),
			Money(row.TotalValue),
			Money(row.InflationAdjustedValue),
		)
	}
	return b.String()
}

// RecommendationsMarkdown renders the findings as a list
func RecommendationsMarkdown(recs []models.Recommendation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Recommendations\n\n")
	if len(recs) == 0 {
		b.WriteString("No recommendations: the portfolio matches your profile.\n")
		return b.String()
	}
	for _, rec := range recs {
		marker := ""
		if rec.Severity == models.SeverityWarning {
			marker = " ⚠"
		}
		fmt.Fprintf(&b, "- **%s**%s: %s\n", rec.Title, marker, rec.Message)
	}
	return b.String()
}

// ProfilesMarkdown renders the stored profiles table
func ProfilesMarkdown(users []*models.UserProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Users\n\n")
	fmt.Fprintln(&b, "| ID | Name | Income | Savings | Risk Score | Target Return | Goals |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|:---|")
	for _, u := range users {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			u.ID,
			u.Name,
			Money(u.AnnualIncome),
			Money(u.TotalSavings),
			u.RiskScore.StringFixed(3),
			Percent(u.TargetAnnualReturn),
			goalNames(u.InvestmentGoals),
		)
	}
	return b.String()
}

// PortfoliosMarkdown renders the stored portfolios table
func PortfoliosMarkdown(portfolios []*models.Portfolio) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolios\n\n")
	fmt.Fprintln(&b, "| ID | User | Investment | Assets | Created |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|:---|")
	for _, p := range portfolios {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s |\n",
			p.ID,
			p.UserID,
			Money(p.InitialInvestment),
			len(p.Allocation),
			p.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return b.String()
}

func allocationTable(alloc models.Allocation, catalog []models.Asset, amount *decimal.Decimal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Allocation\n\n")
	if amount != nil {
		fmt.Fprintln(&b, "| Asset | Type | Share | Amount |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|")
	} else {
		fmt.Fprintln(&b, "| Asset | Type | Share |")
		fmt.Fprintln(&b, "|:---|:---|---:|")
	}

	for _, e := range alloc {
		typ := "-"
		if a, ok := models.FindAsset(catalog, e.Asset); ok {
			typ = a.Type.DisplayName()
		}
		if amount != nil {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", e.Asset, typ, Percent(e.Fraction), Money(amount.Mul(e.Fraction)))
		} else {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", e.Asset, typ, Percent(e.Fraction))
		}
	}

	if rest := alloc.Unallocated(); rest.IsPositive() {
		fmt.Fprintf(&b, "\n_%s of the investment is not allocated._\n", Percent(rest))
	}
	return b.String()
}

func goalNames(goals []models.InvestmentGoal) string {
	names := make([]string, len(goals))
	for i, g := range goals {
		names[i] = g.DisplayName()
	}
	return strings.Join(names, ", ")
}

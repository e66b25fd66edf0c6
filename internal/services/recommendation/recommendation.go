// Package recommendation derives advisory findings from a projected portfolio
package recommendation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/findosh/advisor/internal/models"
	"github.com/shopspring/decimal"
)

// Thresholds defines when each rule fires
type Thresholds struct {
	ConcentrationFraction decimal.Decimal // single asset max fraction
	SavingsRate           decimal.Decimal // recommended share of annual income
	MinTotalGrowth        decimal.Decimal // minimum growth over the horizon
}

// DefaultThresholds returns the default recommendation thresholds
func DefaultThresholds() Thresholds {
	return Thresholds{
		ConcentrationFraction: decimal.NewFromFloat(0.30),
		SavingsRate:           decimal.NewFromFloat(0.20),
		MinTotalGrowth:        decimal.NewFromFloat(0.50),
	}
}

// Engine evaluates the recommendation rules
type Engine struct {
	Thresholds Thresholds
}

// NewEngine creates an engine with default thresholds
func NewEngine() *Engine {
	return &Engine{Thresholds: DefaultThresholds()}
}

type rule struct {
	name  string
	check func(*input) (*models.Recommendation, error)
}

type input struct {
	profile *models.UserProfile
	state   *models.PortfolioState
	catalog []models.Asset
	rows    []models.SimulationRow
}

// Recommend evaluates every rule in a stable order and returns all findings.
// Rules are independent: a failing rule does not stop the others, and the
// failures are returned as a ComputationError next to the partial list.
func (e *Engine) Recommend(profile *models.UserProfile, state *models.PortfolioState, catalog []models.Asset, rows []models.SimulationRow) ([]models.Recommendation, error) {
	if profile == nil {
		return nil, models.InvalidInput("profile is required")
	}
	if state == nil {
		return nil, models.InvalidInput("portfolio state is required")
	}

	in := &input{profile: profile, state: state, catalog: catalog, rows: rows}
	rules := []rule{
		{"return_gap", e.returnGap},
		{"concentration", e.concentration},
		{"under_saving", e.underSaving},
		{"long_term_growth", e.longTermGrowth},
	}

	recs := []models.Recommendation{}
	var errs []error
	for _, r := range rules {
		rec, err := runRule(r, in)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.name, err))
			continue
		}
		if rec != nil {
			recs = append(recs, *rec)
		}
	}

	if len(errs) > 0 {
		return recs, &models.ComputationError{Stage: models.StageRecommendation, Err: errors.Join(errs...)}
	}
	return recs, nil
}

func runRule(r rule, in *input) (rec *models.Recommendation, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return r.check(in)
}

// returnGap flags an allocation whose expected return misses the target
func (e *Engine) returnGap(in *input) (*models.Recommendation, error) {
	expected := in.state.Allocation.ExpectedReturn(in.catalog)
	target := in.profile.TargetAnnualReturn
	if !expected.LessThan(target) {
		return nil, nil
	}

	gap := target.Sub(expected).Mul(decimal.NewFromInt(100))
	return &models.Recommendation{
		Kind:     models.RecommendReturnGap,
		Severity: models.SeverityWarning,
		Title:    "Return Gap",
		Message: fmt.Sprintf("Your current allocation may not meet your target annual return of %s%%. "+
			"Consider increasing your allocation to higher-return assets to close the %s%% gap.",
			target.Mul(decimal.NewFromInt(100)).StringFixed(2), gap.StringFixed(2)),
		ExpectedReturn: ptr(expected),
		TargetReturn:   ptr(target),
		GapPercent:     ptr(gap.Round(4)),
	}, nil
}

// concentration finds assets holding more than the threshold fraction
func (e *Engine) concentration(in *input) (*models.Recommendation, error) {
	var heavy []string
	for _, entry := range in.state.Allocation {
		if entry.Fraction.GreaterThan(e.Thresholds.ConcentrationFraction) {
			heavy = append(heavy, entry.Asset)
		}
	}
	if len(heavy) == 0 {
		return nil, nil
	}

	return &models.Recommendation{
		Kind:     models.RecommendConcentrationRisk,
		Severity: models.SeverityWarning,
		Title:    "Concentration Risk",
		Message: fmt.Sprintf("You have a high concentration in %s. Consider diversifying to reduce risk.",
			strings.Join(heavy, ", ")),
		Assets: heavy,
	}, nil
}

// underSaving compares the investment against a share of annual income
func (e *Engine) underSaving(in *input) (*models.Recommendation, error) {
	recommended := in.profile.AnnualIncome.Mul(e.Thresholds.SavingsRate)
	current := in.state.InitialInvestment
	if !current.LessThan(recommended) {
		return nil, nil
	}

	return &models.Recommendation{
		Kind:     models.RecommendUnderSaving,
		Severity: models.SeverityInfo,
		Title:    "Increase Investment",
		Message: fmt.Sprintf("Consider increasing your investment amount. A good target is %s%% of your annual income (Rs.%s).",
			e.Thresholds.SavingsRate.Mul(decimal.NewFromInt(100)).String(), FormatMoney(recommended)),
		RecommendedSavings: ptr(recommended),
		CurrentInvestment:  ptr(current),
	}, nil
}

// longTermGrowth flags projections that grow less than the minimum over the horizon
func (e *Engine) longTermGrowth(in *input) (*models.Recommendation, error) {
	if len(in.rows) == 0 {
		return nil, nil
	}

	initial := in.state.InitialInvestment
	if initial.IsZero() {
		return nil, errors.New("growth is undefined for a zero initial investment")
	}

	final := in.rows[len(in.rows)-1].TotalValue
	growth := final.Sub(initial).Div(initial)
	if !growth.LessThan(e.Thresholds.MinTotalGrowth) {
		return nil, nil
	}

	return &models.Recommendation{
		Kind:     models.RecommendLowLongTermGrowth,
		Severity: models.SeverityInfo,
		Title:    "Low Long-Term Growth",
		Message: "Your long-term growth projection is lower than average. Consider increasing your investment " +
			"horizon or adjusting your asset allocation for better long-term results.",
		TotalGrowth: ptr(growth.Round(6)),
		FinalValue:  ptr(final),
	}, nil
}

// FormatMoney renders an amount with thousands separators and two decimals
func FormatMoney(v decimal.Decimal) string {
	return humanize.FormatFloat("#,###.##", v.InexactFloat64())
}

func ptr(v decimal.Decimal) *decimal.Decimal {
	return &v
}

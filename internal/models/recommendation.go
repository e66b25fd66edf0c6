package models

import (
	"github.com/shopspring/decimal"
)

// RecommendationKind categorizes advisory findings
type RecommendationKind string

const (
	RecommendReturnGap         RecommendationKind = "return_gap"           // expected return below target
	RecommendConcentrationRisk RecommendationKind = "concentration_risk"   // >30% in a single asset
	RecommendUnderSaving       RecommendationKind = "under_saving"         // invested <20% of income
	RecommendLowLongTermGrowth RecommendationKind = "low_long_term_growth" // <50% growth over horizon
)

// Severity levels for recommendations
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Recommendation is one advisory finding together with the facts that triggered it
type Recommendation struct {
	Kind     RecommendationKind `json:"kind" msgpack:"kind"`
	Severity Severity           `json:"severity" msgpack:"severity"`
	Title    string             `json:"title" msgpack:"title"`
	Message  string             `json:"message" msgpack:"message"`

	// return_gap
	ExpectedReturn *decimal.Decimal `json:"expected_return,omitempty" msgpack:"expected_return,omitempty"`
	TargetReturn   *decimal.Decimal `json:"target_return,omitempty" msgpack:"target_return,omitempty"`
	GapPercent     *decimal.Decimal `json:"gap_percent,omitempty" msgpack:"gap_percent,omitempty"`

	// concentration_risk
	Assets []string `json:"assets,omitempty" msgpack:"assets,omitempty"`

	// under_saving
	RecommendedSavings *decimal.Decimal `json:"recommended_savings,omitempty" msgpack:"recommended_savings,omitempty"`
	CurrentInvestment  *decimal.Decimal `json:"current_investment,omitempty" msgpack:"current_investment,omitempty"`

	// low_long_term_growth
	TotalGrowth *decimal.Decimal `json:"total_growth,omitempty" msgpack:"total_growth,omitempty"`
	FinalValue  *decimal.Decimal `json:"final_value,omitempty" msgpack:"final_value,omitempty"`
}

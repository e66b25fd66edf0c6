package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RiskCategory is the coarse classification of a risk score
type RiskCategory string

const (
	RiskLow    RiskCategory = "low"
	RiskMedium RiskCategory = "medium"
	RiskHigh   RiskCategory = "high"
)

// Category thresholds: a score equal to a threshold belongs to the upper band
var (
	MediumRiskThreshold = decimal.NewFromFloat(0.3)
	HighRiskThreshold   = decimal.NewFromFloat(0.7)
)

// CategoryForScore maps a normalized risk score onto its category.
// Every stage that needs a category must go through this function.
func CategoryForScore(score decimal.Decimal) RiskCategory {
	switch {
	case score.LessThan(MediumRiskThreshold):
		return RiskLow
	case score.LessThan(HighRiskThreshold):
		return RiskMedium
	default:
		return RiskHigh
	}
}

// ParseRiskCategory validates a category name
func ParseRiskCategory(s string) (RiskCategory, error) {
	c := RiskCategory(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", InvalidInput("unknown risk category %q", s)
	}
	return c, nil
}

// IsValid reports whether c is one of the known categories
func (c RiskCategory) IsValid() bool {
	switch c {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

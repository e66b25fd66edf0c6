package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCategoryForScore(t *testing.T) {
	tests := []struct {
		score    string
		expected RiskCategory
	}{
		{"0", RiskLow},
		{"0.1", RiskLow},
		{"0.2999", RiskLow},
		{"0.3", RiskMedium},
		{"0.5", RiskMedium},
		{"0.6999", RiskMedium},
		{"0.7", RiskHigh},
		{"0.85", RiskHigh},
		{"1", RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.score, func(t *testing.T) {
			got := CategoryForScore(decimal.RequireFromString(tt.score))
			if got != tt.expected {
				t.Errorf("CategoryForScore(%s) = %s, expected %s", tt.score, got, tt.expected)
			}
		})
	}
}

func TestParseRiskCategory(t *testing.T) {
	for _, s := range []string{"low", "Medium", " HIGH "} {
		if _, err := ParseRiskCategory(s); err != nil {
			t.Errorf("Expected %q to parse, got %v", s, err)
		}
	}

	_, err := ParseRiskCategory("extreme")
	if err == nil {
		t.Fatal("Expected error for unknown category")
	}
	if !IsInvalidInput(err) {
		t.Errorf("Expected invalid input error, got %v", err)
	}
}

func TestUserProfile_RiskCategory(t *testing.T) {
	p := &UserProfile{RiskScore: decimal.NewFromFloat(0.7)}
	if p.RiskCategory() != RiskHigh {
		t.Errorf("Expected high category at boundary 0.7, got %s", p.RiskCategory())
	}
}

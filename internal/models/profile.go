// Package models defines core domain types
package models

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentGoal is one of the goals an investor can select
type InvestmentGoal string

const (
	GoalRetirement     InvestmentGoal = "retirement"
	GoalEducation      InvestmentGoal = "education"
	GoalHomePurchase   InvestmentGoal = "home_purchase"
	GoalVacation       InvestmentGoal = "vacation"
	GoalWealthBuilding InvestmentGoal = "wealth_building"
)

// AllInvestmentGoals returns the selectable goals in display order
func AllInvestmentGoals() []InvestmentGoal {
	return []InvestmentGoal{
		GoalRetirement,
		GoalEducation,
		GoalHomePurchase,
		GoalVacation,
		GoalWealthBuilding,
	}
}

// DisplayName returns human-readable name for the goal
func (g InvestmentGoal) DisplayName() string {
	switch g {
	case GoalRetirement:
		return "Retirement"
	case GoalEducation:
		return "Education"
	case GoalHomePurchase:
		return "Home Purchase"
	case GoalVacation:
		return "Vacation"
	case GoalWealthBuilding:
		return "Wealth Building"
	default:
		return string(g)
	}
}

// ParseInvestmentGoal accepts either the identifier or the display name
func ParseInvestmentGoal(s string) (InvestmentGoal, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, " ", "_")
	for _, g := range AllInvestmentGoals() {
		if string(g) == key {
			return g, nil
		}
	}
	return "", InvalidInput("unknown investment goal %q", s)
}

// NormalizeGoals deduplicates goals and orders them as AllInvestmentGoals does
func NormalizeGoals(goals []InvestmentGoal) []InvestmentGoal {
	rank := make(map[InvestmentGoal]int)
	for i, g := range AllInvestmentGoals() {
		rank[g] = i
	}

	seen := make(map[InvestmentGoal]bool, len(goals))
	out := make([]InvestmentGoal, 0, len(goals))
	for _, g := range goals {
		if seen[g] {
			continue
		}
		seen[g] = true
		out = append(out, g)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rank[out[i]] < rank[out[j]]
	})
	return out
}

// UserProfile is the investor's financial profile, fixed for a session
type UserProfile struct {
	ID                 uuid.UUID        `json:"id" msgpack:"id"`
	Name               string           `json:"name" msgpack:"name"`
	AnnualIncome       decimal.Decimal  `json:"annual_income" msgpack:"annual_income"`
	TotalSavings       decimal.Decimal  `json:"total_savings" msgpack:"total_savings"`
	RiskScore          decimal.Decimal  `json:"risk_score" msgpack:"risk_score"`                     // 0-1
	TargetAnnualReturn decimal.Decimal  `json:"target_annual_return" msgpack:"target_annual_return"` // fraction
	InvestmentGoals    []InvestmentGoal `json:"investment_goals" msgpack:"investment_goals"`
	CreatedAt          time.Time        `json:"created_at" msgpack:"created_at"`
}

// RiskCategory derives the category from the stored score
func (p *UserProfile) RiskCategory() RiskCategory {
	return CategoryForScore(p.RiskScore)
}

// PortfolioState is the aggregate handed from the allocator to later stages
type PortfolioState struct {
	Profile           *UserProfile    `json:"profile" msgpack:"profile"`
	Allocation        Allocation      `json:"allocation" msgpack:"allocation"`
	InitialInvestment decimal.Decimal `json:"initial_investment" msgpack:"initial_investment"`
}

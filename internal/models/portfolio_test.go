package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewPortfolio(t *testing.T) {
	userID := uuid.New()
	alloc := Allocation{
		{Asset: "Gold ETF", Fraction: d("0.5")},
		{Asset: "Treasury Bonds", Fraction: d("0.3")},
	}

	p := NewPortfolio(userID, alloc, d("1000"))

	if p.ID == uuid.Nil {
		t.Error("Expected ID to be generated")
	}
	if p.UserID != userID {
		t.Errorf("Expected user %s, got %s", userID, p.UserID)
	}
	if !p.Invested().Equal(d("800")) {
		t.Errorf("Expected invested 800, got %s", p.Invested())
	}

	amounts := p.Amounts()
	if !amounts["Gold ETF"].Equal(d("500")) {
		t.Errorf("Expected Gold ETF 500, got %s", amounts["Gold ETF"])
	}
}

func TestPortfolioFromReport(t *testing.T) {
	profile := &UserProfile{ID: uuid.New()}
	generated := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	report := &Report{
		ID:          uuid.New(),
		PortfolioID: uuid.New(),
		State: PortfolioState{
			Profile:           profile,
			Allocation:        Allocation{{Asset: "Gold ETF", Fraction: d("1")}},
			InitialInvestment: d("250"),
		},
		GeneratedAt: generated,
	}

	p := PortfolioFromReport(report)

	if p.ID != report.PortfolioID {
		t.Errorf("Expected portfolio ID %s, got %s", report.PortfolioID, p.ID)
	}
	if p.UserID != profile.ID {
		t.Errorf("Expected user %s, got %s", profile.ID, p.UserID)
	}
	if !p.CreatedAt.Equal(generated) {
		t.Errorf("Expected created %s, got %s", generated, p.CreatedAt)
	}
	if len(p.Allocation) != 1 {
		t.Errorf("Expected 1 allocation entry, got %d", len(p.Allocation))
	}
}

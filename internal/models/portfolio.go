package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Portfolio is a saved allocation of one investment for a profile
type Portfolio struct {
	ID                uuid.UUID       `json:"id"`
	UserID            uuid.UUID       `json:"user_id"`
	Allocation        Allocation      `json:"allocation"`
	InitialInvestment decimal.Decimal `json:"initial_investment"`
	CreatedAt         time.Time       `json:"created_at"`
}

// NewPortfolio creates a portfolio with a generated ID
func NewPortfolio(userID uuid.UUID, alloc Allocation, investment decimal.Decimal) *Portfolio {
	return &Portfolio{
		ID:                uuid.New(),
		UserID:            userID,
		Allocation:        alloc,
		InitialInvestment: investment,
		CreatedAt:         time.Now().UTC(),
	}
}

// PortfolioFromReport derives the saved portfolio an analysis produced
func PortfolioFromReport(r *Report) *Portfolio {
	p := &Portfolio{
		ID:                r.PortfolioID,
		Allocation:        r.State.Allocation,
		InitialInvestment: r.State.InitialInvestment,
		CreatedAt:         r.GeneratedAt,
	}
	if r.State.Profile != nil {
		p.UserID = r.State.Profile.ID
	}
	return p
}

// Amounts splits the initial investment across the allocation
func (p *Portfolio) Amounts() map[string]decimal.Decimal {
	return p.Allocation.Amounts(p.InitialInvestment)
}

// Invested is the part of the initial investment that the allocation covers
func (p *Portfolio) Invested() decimal.Decimal {
	return p.InitialInvestment.Mul(p.Allocation.Total())
}

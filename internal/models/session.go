package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Session carries one advisory session through the pipeline
type Session struct {
	ID           uuid.UUID    `json:"id"`
	Profile      *UserProfile `json:"profile"`
	RiskCategory RiskCategory `json:"risk_category"`
	Allocation   Allocation   `json:"allocation"`
	CreatedAt    time.Time    `json:"created_at"`
	ExpiresAt    time.Time    `json:"expires_at"`
}

// NewSession creates a session for a scored profile and its allocation
func NewSession(profile *UserProfile, allocation Allocation, ttl time.Duration) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:           uuid.New(),
		Profile:      profile,
		RiskCategory: profile.RiskCategory(),
		Allocation:   allocation,
		CreatedAt:    now,
		ExpiresAt:    now.Add(ttl),
	}
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().UTC().After(s.ExpiresAt)
}

// Report is the output of one analysis run within a session
type Report struct {
	ID              uuid.UUID        `json:"id" msgpack:"id"`
	PortfolioID     uuid.UUID        `json:"portfolio_id" msgpack:"portfolio_id"`
	State           PortfolioState   `json:"state" msgpack:"state"`
	HorizonYears    int              `json:"horizon_years" msgpack:"horizon_years"`
	ExpectedReturn  decimal.Decimal  `json:"expected_return" msgpack:"expected_return"`
	Simulation      []SimulationRow  `json:"simulation" msgpack:"simulation"`
	Recommendations []Recommendation `json:"recommendations" msgpack:"recommendations"`
	GeneratedAt     time.Time        `json:"generated_at" msgpack:"generated_at"`
}

// FinalRow returns the last simulated month, if any
func (r *Report) FinalRow() (SimulationRow, bool) {
	if len(r.Simulation) == 0 {
		return SimulationRow{}, false
	}
	return r.Simulation[len(r.Simulation)-1], true
}

// Package advisor runs the advisory pipeline for one investor session:
// questionnaire scoring, allocation, projection and recommendations.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/findosh/advisor/internal/models"
	"github.com/findosh/advisor/internal/services/allocation"
	"github.com/findosh/advisor/internal/services/recommendation"
	"github.com/findosh/advisor/internal/services/risk"
	"github.com/findosh/advisor/internal/services/simulation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Defaults applied when Options leaves a field empty
const (
	DefaultSessionTTL      = 2 * time.Hour
	DefaultMaxHorizonYears = 15
)

// Store persists the outcome of an analysis
type Store interface {
	SaveAdvice(ctx context.Context, report *models.Report) error
}

// Options configures a Service
type Options struct {
	Catalog         []models.Asset
	Questionnaire   *risk.Questionnaire
	Simulator       *simulation.Simulator
	Engine          *recommendation.Engine
	Sessions        *SessionStore
	Store           Store // optional
	SessionTTL      time.Duration
	MaxHorizonYears int
	Logger          zerolog.Logger
}

// Service coordinates the pipeline stages. The catalog and questionnaire are
// read-only once the service is built, so sessions only share those.
type Service struct {
	catalog       []models.Asset
	questionnaire *risk.Questionnaire
	simulator     *simulation.Simulator
	engine        *recommendation.Engine
	sessions      *SessionStore
	store         Store
	ttl           time.Duration
	maxHorizon    int
	log           zerolog.Logger
}

// NewService creates an advisory service, filling unset options with defaults
func NewService(opts Options) *Service {
	s := &Service{
		catalog:       opts.Catalog,
		questionnaire: opts.Questionnaire,
		simulator:     opts.Simulator,
		engine:        opts.Engine,
		sessions:      opts.Sessions,
		store:         opts.Store,
		ttl:           opts.SessionTTL,
		maxHorizon:    opts.MaxHorizonYears,
		log:           opts.Logger.With().Str("component", "advisor").Logger(),
	}
	if s.catalog == nil {
		s.catalog = models.DefaultAssets()
	}
	if s.questionnaire == nil {
		s.questionnaire = risk.DefaultQuestionnaire()
	}
	if s.simulator == nil {
		s.simulator = simulation.NewSimulator()
	}
	if s.engine == nil {
		s.engine = recommendation.NewEngine()
	}
	if s.sessions == nil {
		s.sessions = NewSessionStore()
	}
	if s.ttl <= 0 {
		s.ttl = DefaultSessionTTL
	}
	if s.maxHorizon <= 0 {
		s.maxHorizon = DefaultMaxHorizonYears
	}
	if s.maxHorizon > simulation.MaxHorizonYears {
		s.maxHorizon = simulation.MaxHorizonYears
	}
	return s
}

// Catalog returns a copy of the asset catalog
func (s *Service) Catalog() []models.Asset {
	out := make([]models.Asset, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Questionnaire returns the risk questionnaire
func (s *Service) Questionnaire() *risk.Questionnaire {
	return s.questionnaire
}

// MaxHorizonYears is the longest projection an analysis accepts
func (s *Service) MaxHorizonYears() int {
	return s.maxHorizon
}

// ProfileInput is what the investor supplies to open a session
type ProfileInput struct {
	Name               string                  `json:"name"`
	AnnualIncome       decimal.Decimal         `json:"annual_income"`
	TotalSavings       decimal.Decimal         `json:"total_savings"`
	TargetAnnualReturn decimal.Decimal         `json:"target_annual_return"`
	InvestmentGoals    []models.InvestmentGoal `json:"investment_goals"`
	Answers            []int                   `json:"answers"`
}

// Validate checks the profile fields the pipeline relies on
func (in ProfileInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return models.InvalidInput("name is required")
	}
	if len(in.InvestmentGoals) == 0 {
		return models.InvalidInput("at least one investment goal is required")
	}
	for _, g := range in.InvestmentGoals {
		if _, err := models.ParseInvestmentGoal(string(g)); err != nil {
			return err
		}
	}
	if in.AnnualIncome.IsNegative() {
		return models.InvalidInput("annual income must not be negative")
	}
	if in.TotalSavings.IsNegative() {
		return models.InvalidInput("total savings must not be negative")
	}
	if !in.TargetAnnualReturn.IsPositive() || in.TargetAnnualReturn.GreaterThan(decimal.NewFromInt(1)) {
		return models.InvalidInput("target annual return must be in (0, 1]")
	}
	return nil
}

// StartSession scores the questionnaire, builds the profile and allocates it
func (s *Service) StartSession(in ProfileInput) (*models.Session, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	assessment, err := s.questionnaire.Score(in.Answers)
	if err != nil {
		return nil, err
	}

	goals := make([]models.InvestmentGoal, 0, len(in.InvestmentGoals))
	for _, g := range in.InvestmentGoals {
		parsed, _ := models.ParseInvestmentGoal(string(g))
		goals = append(goals, parsed)
	}

	profile := &models.UserProfile{
		ID:                 uuid.New(),
		Name:               strings.TrimSpace(in.Name),
		AnnualIncome:       in.AnnualIncome,
		TotalSavings:       in.TotalSavings,
		RiskScore:          assessment.Score,
		TargetAnnualReturn: in.TargetAnnualReturn,
		InvestmentGoals:    models.NormalizeGoals(goals),
		CreatedAt:          time.Now().UTC(),
	}

	alloc, err := allocation.Allocate(s.catalog, profile.RiskCategory())
	if err != nil {
		return nil, err
	}

	session := models.NewSession(profile, alloc, s.ttl)
	s.sessions.Put(session)

	s.log.Info().
		Str("session_id", session.ID.String()).
		Str("risk_category", string(session.RiskCategory)).
		Str("risk_score", assessment.Score.StringFixed(3)).
		Int("assets", len(alloc)).
		Msg("session started")

	return session, nil
}

// Session looks up a live session
func (s *Service) Session(id uuid.UUID) (*models.Session, error) {
	return s.sessions.Get(id)
}

// EndSession discards a session
func (s *Service) EndSession(id uuid.UUID) {
	s.sessions.Delete(id)
}

// CleanupExpiredSessions drops sessions past their expiry
func (s *Service) CleanupExpiredSessions() int {
	n := s.sessions.DeleteExpired()
	if n > 0 {
		s.log.Debug().Int("removed", n).Msg("expired sessions removed")
	}
	return n
}

// AnalysisInput selects how much to invest and for how long
type AnalysisInput struct {
	InvestmentAmount decimal.Decimal `json:"investment_amount"`
	HorizonYears     int             `json:"horizon_years"`
}

// Analyze projects the session's allocation and derives recommendations.
//
// When only the recommendation stage fails, the report is still returned,
// carrying every finding that could be produced, together with the error.
func (s *Service) Analyze(ctx context.Context, session *models.Session, in AnalysisInput) (*models.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if session == nil || session.Profile == nil {
		return nil, models.InvalidInput("session is required")
	}
	if session.IsExpired() {
		return nil, models.ErrSessionExpired
	}

	profile := session.Profile
	if in.InvestmentAmount.IsNegative() {
		return nil, models.InvalidInput("investment amount must not be negative")
	}
	if in.InvestmentAmount.GreaterThan(profile.TotalSavings) {
		return nil, models.InvalidInput("investment amount %s exceeds total savings %s",
			in.InvestmentAmount, profile.TotalSavings)
	}
	if in.HorizonYears < 1 || in.HorizonYears > s.maxHorizon {
		return nil, models.InvalidInput("horizon must be between 1 and %d years", s.maxHorizon)
	}

	state := models.PortfolioState{
		Profile:           profile,
		Allocation:        session.Allocation,
		InitialInvestment: in.InvestmentAmount,
	}

	rows, err := s.simulator.Simulate(state.InitialInvestment, state.Allocation, s.catalog, in.HorizonYears)
	if err != nil {
		return nil, err
	}

	recs, recErr := s.engine.Recommend(profile, &state, s.catalog, rows)
	if recErr != nil && !errors.Is(recErr, models.ErrComputation) {
		return nil, recErr
	}

	report := &models.Report{
		ID:              uuid.New(),
		PortfolioID:     uuid.New(),
		State:           state,
		HorizonYears:    in.HorizonYears,
		ExpectedReturn:  state.Allocation.ExpectedReturn(s.catalog),
		Simulation:      rows,
		Recommendations: recs,
		GeneratedAt:     time.Now().UTC(),
	}

	logEvent := s.log.Info()
	if recErr != nil {
		logEvent = s.log.Warn().Err(recErr)
	}
	logEvent.
		Str("session_id", session.ID.String()).
		Str("investment", in.InvestmentAmount.String()).
		Int("horizon_years", in.HorizonYears).
		Int("recommendations", len(recs)).
		Msg("analysis complete")

	if s.store != nil {
		if err := s.store.SaveAdvice(ctx, report); err != nil {
			return report, errors.Join(recErr, fmt.Errorf("failed to save advice: %w", err))
		}
	}

	return report, recErr
}

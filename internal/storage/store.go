package storage

import (
	"context"
	"fmt"

	"github.com/findosh/advisor/internal/models"
)

// Store groups the repositories and writes analysis results atomically
type Store struct {
	db         *DB
	Users      *UserRepository
	Portfolios *PortfolioRepository
	Reports    *ReportRepository
}

// NewStore creates a store over an open database
func NewStore(db *DB) *Store {
	return &Store{
		db:         db,
		Users:      NewUserRepository(db),
		Portfolios: NewPortfolioRepository(db),
		Reports:    NewReportRepository(db),
	}
}

// SaveAdvice writes the profile, the portfolio and the report snapshot in
// one transaction
func (s *Store) SaveAdvice(ctx context.Context, report *models.Report) error {
	if report == nil || report.State.Profile == nil {
		return models.InvalidInput("report with a profile is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.Users.save(ctx, tx, report.State.Profile); err != nil {
		return err
	}
	if err := s.Portfolios.create(ctx, tx, models.PortfolioFromReport(report)); err != nil {
		return err
	}
	if err := s.Reports.create(ctx, tx, report); err != nil {
		return err
	}

	return tx.Commit()
}

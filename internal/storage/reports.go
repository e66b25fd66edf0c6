package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/findosh/advisor/internal/models"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// ReportRepository stores analysis snapshots as msgpack blobs
type ReportRepository struct {
	db *DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create inserts a report snapshot
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	return r.create(ctx, r.db, report)
}

func (r *ReportRepository) create(ctx context.Context, ex execer, report *models.Report) error {
	payload, err := msgpack.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	query := `
		INSERT INTO reports (id, portfolio_id, horizon_years, payload, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err = ex.ExecContext(ctx, query,
		report.ID.String(),
		report.PortfolioID.String(),
		report.HorizonYears,
		payload,
		report.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// GetByID retrieves a report, nil when absent
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, "SELECT payload FROM reports WHERE id = ?", id.String()).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load report: %w", err)
	}
	return decodeReport(payload)
}

// GetByPortfolioID retrieves the reports of a portfolio, oldest first
func (r *ReportRepository) GetByPortfolioID(ctx context.Context, portfolioID uuid.UUID) ([]*models.Report, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT payload FROM reports WHERE portfolio_id = ? ORDER BY created_at", portfolioID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*models.Report
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		report, err := decodeReport(payload)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

func decodeReport(payload []byte) (*models.Report, error) {
	var report models.Report
	if err := msgpack.Unmarshal(payload, &report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &report, nil
}

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/findosh/advisor/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PortfolioRepository provides portfolio data access
type PortfolioRepository struct {
	db *DB
}

// NewPortfolioRepository creates a new portfolio repository
func NewPortfolioRepository(db *DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// Create inserts a new portfolio
func (r *PortfolioRepository) Create(ctx context.Context, p *models.Portfolio) error {
	return r.create(ctx, r.db, p)
}

func (r *PortfolioRepository) create(ctx context.Context, ex execer, p *models.Portfolio) error {
	alloc, err := json.Marshal(p.Allocation)
	if err != nil {
		return fmt.Errorf("failed to encode allocation: %w", err)
	}

	query := `
		INSERT INTO portfolios (id, user_id, allocation, initial_investment, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err = ex.ExecContext(ctx, query,
		p.ID.String(),
		p.UserID.String(),
		string(alloc),
		p.InitialInvestment.String(),
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create portfolio: %w", err)
	}
	return nil
}

const selectPortfolios = `
	SELECT id, user_id, allocation, initial_investment, created_at
	FROM portfolios
`

// GetByID retrieves a portfolio by ID, nil when absent
func (r *PortfolioRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Portfolio, error) {
	p, err := scanPortfolio(r.db.QueryRowContext(ctx, selectPortfolios+" WHERE id = ?", id.String()))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

// GetByUserID retrieves all portfolios for a profile, newest first
func (r *PortfolioRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Portfolio, error) {
	return r.query(ctx, selectPortfolios+" WHERE user_id = ? ORDER BY created_at DESC", userID.String())
}

// List returns every stored portfolio, oldest first
func (r *PortfolioRepository) List(ctx context.Context) ([]*models.Portfolio, error) {
	return r.query(ctx, selectPortfolios+" ORDER BY created_at")
}

// Delete removes a portfolio and its reports
func (r *PortfolioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM portfolios WHERE id = ?", id.String())
	return err
}

func (r *PortfolioRepository) query(ctx context.Context, query string, args ...interface{}) ([]*models.Portfolio, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var portfolios []*models.Portfolio
	for rows.Next() {
		p, err := scanPortfolio(rows)
		if err != nil {
			return nil, err
		}
		portfolios = append(portfolios, p)
	}
	return portfolios, rows.Err()
}

func scanPortfolio(row scanner) (*models.Portfolio, error) {
	var p models.Portfolio
	var id, userID, alloc, investment string

	err := row.Scan(&id, &userID, &alloc, &investment, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan portfolio: %w", err)
	}

	p.ID, _ = uuid.Parse(id)
	p.UserID, _ = uuid.Parse(userID)
	p.InitialInvestment, _ = decimal.NewFromString(investment)
	if err := json.Unmarshal([]byte(alloc), &p.Allocation); err != nil {
		return nil, fmt.Errorf("failed to decode allocation: %w", err)
	}

	return &p, nil
}

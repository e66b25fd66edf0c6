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

// UserRepository provides investor profile data access
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// Save inserts a profile or refreshes the stored copy
func (r *UserRepository) Save(ctx context.Context, p *models.UserProfile) error {
	return r.save(ctx, r.db, p)
}

func (r *UserRepository) save(ctx context.Context, ex execer, p *models.UserProfile) error {
	goals, err := json.Marshal(p.InvestmentGoals)
	if err != nil {
		return fmt.Errorf("failed to encode goals: %w", err)
	}

	query := `
		INSERT INTO users (id, name, income, savings, risk_score, target_return, investment_goals, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			income = excluded.income,
			savings = excluded.savings,
			risk_score = excluded.risk_score,
			target_return = excluded.target_return,
			investment_goals = excluded.investment_goals
	`
	_, err = ex.ExecContext(ctx, query,
		p.ID.String(),
		p.Name,
		p.AnnualIncome.String(),
		p.TotalSavings.String(),
		p.RiskScore.String(),
		p.TargetAnnualReturn.String(),
		string(goals),
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

const selectUsers = `
	SELECT id, name, income, savings, risk_score, target_return, investment_goals, created_at
	FROM users
`

// GetByID retrieves a profile by ID, nil when absent
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error) {
	p, err := scanUser(r.db.QueryRowContext(ctx, selectUsers+" WHERE id = ?", id.String()))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

// List returns every stored profile, oldest first
func (r *UserRepository) List(ctx context.Context) ([]*models.UserProfile, error) {
	rows, err := r.db.QueryContext(ctx, selectUsers+" ORDER BY created_at, name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.UserProfile
	for rows.Next() {
		p, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, p)
	}
	return users, rows.Err()
}

// Delete removes a profile and, through the foreign keys, its portfolios
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id.String())
	return err
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row scanner) (*models.UserProfile, error) {
	var p models.UserProfile
	var id, income, savings, risk, target, goals string

	err := row.Scan(&id, &p.Name, &income, &savings, &risk, &target, &goals, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	p.ID, _ = uuid.Parse(id)
	p.AnnualIncome, _ = decimal.NewFromString(income)
	p.TotalSavings, _ = decimal.NewFromString(savings)
	p.RiskScore, _ = decimal.NewFromString(risk)
	p.TargetAnnualReturn, _ = decimal.NewFromString(target)
	if err := json.Unmarshal([]byte(goals), &p.InvestmentGoals); err != nil {
		return nil, fmt.Errorf("failed to decode goals: %w", err)
	}

	return &p, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"versekids/internal/database"
	"versekids/internal/models"
)

// AccountRepository handles database operations for parent accounts
type AccountRepository struct {
	db database.DBTX
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db database.DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = "id, email, name, plan_name, is_admin, created_at, updated_at"

// Create inserts an account, assigning an ID when none is set
func (r *AccountRepository) Create(ctx context.Context, a *models.Account) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.PlanName == "" {
		a.PlanName = "free"
	}
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))

	query := "INSERT INTO accounts (" + accountColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?)"
	if _, err := r.db.ExecContext(ctx, query, a.ID, a.Email, a.Name, a.PlanName, a.IsAdmin, a.CreatedAt, a.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	return r.getOne(ctx, "SELECT "+accountColumns+" FROM accounts WHERE id = ?", id)
}

// GetByEmail retrieves an account by email address
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.getOne(ctx, "SELECT "+accountColumns+" FROM accounts WHERE email = ?", strings.ToLower(strings.TrimSpace(email)))
}

// ListAll returns every account ordered by creation time
func (r *AccountRepository) ListAll(ctx context.Context) ([]models.Account, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+accountColumns+" FROM accounts ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.Email, &a.Name, &a.PlanName, &a.IsAdmin, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *AccountRepository) getOne(ctx context.Context, query string, arg any) (*models.Account, error) {
	a := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&a.ID,
		&a.Email,
		&a.Name,
		&a.PlanName,
		&a.IsAdmin,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return a, nil
}

// UpdatePlan changes the subscription plan of an account
func (r *AccountRepository) UpdatePlan(ctx context.Context, id, planName string) error {
	res, err := r.db.ExecContext(ctx, "UPDATE accounts SET plan_name = ?, updated_at = ? WHERE id = ?", planName, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}
	return expectOneRow(res)
}

// PlanFor returns the plan used by the access policy for an account
func (r *AccountRepository) PlanFor(ctx context.Context, accountID string) (models.Plan, error) {
	a, err := r.GetByID(ctx, accountID)
	if err != nil {
		return models.Plan{}, err
	}
	return models.PlanFor(a), nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"versekids/internal/database"
	"versekids/internal/models"
)

// LearnerRepository handles database operations for learner profiles
type LearnerRepository struct {
	db *database.DB
}

// NewLearnerRepository creates a new learner repository
func NewLearnerRepository(db *database.DB) *LearnerRepository {
	return &LearnerRepository{db: db}
}

const learnerColumns = "id, account_id, name, nickname, age, timezone, created_at, updated_at"

// Create inserts a learner together with its initial progress record
func (r *LearnerRepository) Create(ctx context.Context, l *models.Learner, p *models.LearnerProgress) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now
	p.LearnerID = l.ID

	return r.db.WithTx(ctx, func(tx *database.Tx) error {
		query := "INSERT INTO learners (" + learnerColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
		if _, err := tx.ExecContext(ctx, query, l.ID, l.AccountID, l.Name, l.Nickname, l.Age, l.Timezone, l.CreatedAt, l.UpdatedAt); err != nil {
			return fmt.Errorf("failed to create learner: %w", err)
		}
		return insertProgress(ctx, tx, p)
	})
}

// GetByID retrieves a learner by ID
func (r *LearnerRepository) GetByID(ctx context.Context, id string) (*models.Learner, error) {
	l := &models.Learner{}
	err := r.db.QueryRowContext(ctx, "SELECT "+learnerColumns+" FROM learners WHERE id = ?", id).Scan(
		&l.ID,
		&l.AccountID,
		&l.Name,
		&l.Nickname,
		&l.Age,
		&l.Timezone,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get learner: %w", err)
	}
	return l, nil
}

// ListByAccount retrieves the learners owned by an account
func (r *LearnerRepository) ListByAccount(ctx context.Context, accountID string) ([]models.Learner, error) {
	return r.list(ctx, "SELECT "+learnerColumns+" FROM learners WHERE account_id = ? ORDER BY created_at ASC", accountID)
}

// ListAll retrieves every learner
func (r *LearnerRepository) ListAll(ctx context.Context) ([]models.Learner, error) {
	return r.list(ctx, "SELECT "+learnerColumns+" FROM learners ORDER BY created_at ASC")
}

func (r *LearnerRepository) list(ctx context.Context, query string, args ...any) ([]models.Learner, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query learners: %w", err)
	}
	defer rows.Close()

	var learners []models.Learner
	for rows.Next() {
		var l models.Learner
		if err := rows.Scan(&l.ID, &l.AccountID, &l.Name, &l.Nickname, &l.Age, &l.Timezone, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan learner: %w", err)
		}
		learners = append(learners, l)
	}
	return learners, rows.Err()
}

// Update changes a learner's profile. The progress age follows the profile.
func (r *LearnerRepository) Update(ctx context.Context, l *models.Learner) error {
	l.UpdatedAt = time.Now().UTC()
	return r.db.WithTx(ctx, func(tx *database.Tx) error {
		res, err := tx.ExecContext(ctx,
			"UPDATE learners SET name = ?, nickname = ?, age = ?, timezone = ?, updated_at = ? WHERE id = ?",
			l.Name, l.Nickname, l.Age, l.Timezone, l.UpdatedAt, l.ID)
		if err != nil {
			return fmt.Errorf("failed to update learner: %w", err)
		}
		if err := expectOneRow(res); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			"UPDATE learner_progress SET age = ?, version = version + 1, updated_at = ? WHERE learner_id = ?",
			l.Age, l.UpdatedAt, l.ID)
		if err != nil {
			return fmt.Errorf("failed to update learner progress age: %w", err)
		}
		return nil
	})
}

// Delete removes a learner. Progress and completions cascade.
func (r *LearnerRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM learners WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete learner: %w", err)
	}
	return expectOneRow(res)
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"versekids/internal/database"
	"versekids/internal/models"
)

// ProgressRepository persists learner progress with optimistic versioning
type ProgressRepository struct {
	db *database.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *database.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

var completionColumns = []string{"learner_id", "program_year", "week", "kind", "variant", "completed_at"}

// Load reads a learner's progress and completion set
func (r *ProgressRepository) Load(ctx context.Context, learnerID string) (*models.LearnerProgress, error) {
	p := &models.LearnerProgress{LearnerID: learnerID}
	var last sql.NullTime

	query := `
		SELECT age, program_year, current_week, day_of_week, last_activity_date, streak,
		       bible_book_mastery_level, bible_book_week, quiz_passes, version, updated_at
		FROM learner_progress
		WHERE learner_id = ?
	`
	err := r.db.QueryRowContext(ctx, query, learnerID).Scan(
		&p.Age,
		&p.ProgramYear,
		&p.CurrentWeek,
		&p.DayOfWeek,
		&last,
		&p.Streak,
		&p.BibleBookMasteryLevel,
		&p.BibleBookWeek,
		&p.QuizPasses,
		&p.Version,
		&p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	if last.Valid {
		p.LastActivityDate = last.Time
	}

	completions, err := r.completions(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	p.ActivityCompletion = completions
	return p, nil
}

func (r *ProgressRepository) completions(ctx context.Context, learnerID string) (map[models.CompletionKey]bool, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT program_year, week, kind, variant FROM activity_completions WHERE learner_id = ?", learnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query completions: %w", err)
	}
	defer rows.Close()

	completions := make(map[models.CompletionKey]bool)
	for rows.Next() {
		var key models.CompletionKey
		var kind, variant string
		if err := rows.Scan(&key.ProgramYear, &key.Week, &kind, &variant); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		key.Kind = models.CompletionKind(kind)
		key.Variant = models.Variant(variant)
		completions[key] = true
	}
	return completions, rows.Err()
}

// Save writes p if nobody else has saved since it was loaded. On success
// p.Version is advanced; a lost race returns ErrVersionConflict and p is
// left unchanged.
func (r *ProgressRepository) Save(ctx context.Context, p *models.LearnerProgress) error {
	now := time.Now().UTC()

	err := r.db.WithTx(ctx, func(tx *database.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE learner_progress
			SET age = ?, program_year = ?, current_week = ?, day_of_week = ?, last_activity_date = ?,
			    streak = ?, bible_book_mastery_level = ?, bible_book_week = ?, quiz_passes = ?,
			    version = version + 1, updated_at = ?
			WHERE learner_id = ? AND version = ?`,
			p.Age, p.ProgramYear, p.CurrentWeek, p.DayOfWeek, nullTime(p.LastActivityDate),
			p.Streak, p.BibleBookMasteryLevel, p.BibleBookWeek, p.QuizPasses,
			now, p.LearnerID, p.Version)
		if err != nil {
			return fmt.Errorf("failed to save progress: %w", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if n == 0 {
			var exists int
			err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM learner_progress WHERE learner_id = ?", p.LearnerID).Scan(&exists)
			if err != nil {
				return fmt.Errorf("failed to check progress: %w", err)
			}
			if exists == 0 {
				return ErrNotFound
			}
			return ErrVersionConflict
		}

		return insertCompletions(ctx, tx, p, now)
	})
	if err != nil {
		return err
	}

	p.Version++
	p.UpdatedAt = now
	return nil
}

// Replace overwrites a learner's progress regardless of version. It is used
// when restoring a backup.
func (r *ProgressRepository) Replace(ctx context.Context, p *models.LearnerProgress) error {
	return r.db.WithTx(ctx, func(tx *database.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM activity_completions WHERE learner_id = ?", p.LearnerID); err != nil {
			return fmt.Errorf("failed to clear completions: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM learner_progress WHERE learner_id = ?", p.LearnerID); err != nil {
			return fmt.Errorf("failed to clear progress: %w", err)
		}
		return insertProgress(ctx, tx, p)
	})
}

// insertProgress writes a new progress row and its completions
func insertProgress(ctx context.Context, q database.DBTX, p *models.LearnerProgress) error {
	if p.Version == 0 {
		p.Version = 1
	}
	p.UpdatedAt = time.Now().UTC()

	_, err := q.ExecContext(ctx, `
		INSERT INTO learner_progress (
			learner_id, age, program_year, current_week, day_of_week, last_activity_date, streak,
			bible_book_mastery_level, bible_book_week, quiz_passes, version, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.LearnerID, p.Age, p.ProgramYear, p.CurrentWeek, p.DayOfWeek, nullTime(p.LastActivityDate), p.Streak,
		p.BibleBookMasteryLevel, p.BibleBookWeek, p.QuizPasses, p.Version, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert progress: %w", err)
	}
	return insertCompletions(ctx, q, p, p.UpdatedAt)
}

// insertCompletions records every completion key. Keys already stored are
// skipped, so the table only ever grows.
func insertCompletions(ctx context.Context, q database.DBTX, p *models.LearnerProgress, at time.Time) error {
	if len(p.ActivityCompletion) == 0 {
		return nil
	}
	query := q.GetDialect().InsertIgnoreQuery("activity_completions", completionColumns)
	for key, done := range p.ActivityCompletion {
		if !done {
			continue
		}
		if _, err := q.ExecContext(ctx, query, p.LearnerID, key.ProgramYear, key.Week, string(key.Kind), string(key.Variant), at); err != nil {
			return fmt.Errorf("failed to record completion: %w", err)
		}
	}
	return nil
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t.UTC(), Valid: !t.IsZero()}
}

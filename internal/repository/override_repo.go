package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"versekids/internal/database"
	"versekids/internal/models"
)

const (
	settingOverrideEnabled   = "override_enabled"
	settingOverrideUnlockAll = "override_unlock_all"
	settingOverrideForceDay  = "override_force_day"
)

// OverrideRepository stores the administrator override in the settings table
type OverrideRepository struct {
	db database.DBTX
}

// NewOverrideRepository creates a new override repository
func NewOverrideRepository(db database.DBTX) *OverrideRepository {
	return &OverrideRepository{db: db}
}

// GetSetting retrieves a setting value by key
func (r *OverrideRepository) GetSetting(ctx context.Context, key string) (string, time.Time, error) {
	var value string
	var updated time.Time
	err := r.db.QueryRowContext(ctx, "SELECT setting_value, updated_at FROM settings WHERE setting_key = ?", key).Scan(&value, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return "", time.Time{}, ErrNotFound
	}
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return value, updated, nil
}

// SetSetting updates or inserts a setting
func (r *OverrideRepository) SetSetting(ctx context.Context, key, value string) error {
	query := r.db.GetDialect().UpsertQuery("settings", []string{"setting_key"}, []string{"setting_key", "setting_value", "updated_at"})
	if _, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}
	return nil
}

// Get returns the current override. Missing settings read as disabled.
func (r *OverrideRepository) Get(ctx context.Context) (models.OverrideConfig, error) {
	var cfg models.OverrideConfig

	enabled, updated, err := r.GetSetting(ctx, settingOverrideEnabled)
	if errors.Is(err, ErrNotFound) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	cfg.Enabled = enabled == "true"
	cfg.UpdatedAt = updated

	unlock, _, err := r.GetSetting(ctx, settingOverrideUnlockAll)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return cfg, err
	}
	cfg.UnlockAll = unlock == "true"

	day, _, err := r.GetSetting(ctx, settingOverrideForceDay)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return cfg, err
	}
	if n, convErr := strconv.Atoi(day); convErr == nil {
		cfg.ForceDayOfWeek = n
	}
	return cfg, nil
}

// Set stores the override
func (r *OverrideRepository) Set(ctx context.Context, cfg models.OverrideConfig) error {
	if cfg.ForceDayOfWeek < 0 || cfg.ForceDayOfWeek > 7 {
		return fmt.Errorf("force day %d out of range", cfg.ForceDayOfWeek)
	}
	if err := r.SetSetting(ctx, settingOverrideUnlockAll, strconv.FormatBool(cfg.UnlockAll)); err != nil {
		return err
	}
	if err := r.SetSetting(ctx, settingOverrideForceDay, strconv.Itoa(cfg.ForceDayOfWeek)); err != nil {
		return err
	}
	// written last so a reader never sees enabled with stale options
	return r.SetSetting(ctx, settingOverrideEnabled, strconv.FormatBool(cfg.Enabled))
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"versekids/internal/database"
	"versekids/internal/models"
	"versekids/internal/repository"
)

const backupVersion = "1.0"

// BackupData represents the complete database backup structure
type BackupData struct {
	Version      string           `json:"version"`
	ExportedAt   time.Time        `json:"exported_at"`
	DatabaseType string           `json:"database_type"`
	Accounts     []AccountBackup  `json:"accounts"`
	Learners     []LearnerBackup  `json:"learners"`
	Override     OverrideBackup   `json:"override"`
	Questions    []QuestionBackup `json:"questions"`
}

// AccountBackup represents a parent account for backup
type AccountBackup struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	PlanName  string    `json:"plan_name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// LearnerBackup represents a learner profile and its progress
type LearnerBackup struct {
	ID        string         `json:"id"`
	AccountID string         `json:"account_id"`
	Name      string         `json:"name"`
	Nickname  string         `json:"nickname"`
	Age       int            `json:"age"`
	Timezone  string         `json:"timezone"`
	Progress  ProgressBackup `json:"progress"`
}

// ProgressBackup represents a learner's curriculum position
type ProgressBackup struct {
	ProgramYear           int                `json:"program_year"`
	CurrentWeek           int                `json:"current_week"`
	DayOfWeek             int                `json:"day_of_week"`
	LastActivityDate      time.Time          `json:"last_activity_date"`
	Streak                int                `json:"streak"`
	BibleBookMasteryLevel int                `json:"bible_book_mastery_level"`
	BibleBookWeek         int                `json:"bible_book_week"`
	QuizPasses            int                `json:"quiz_passes"`
	Completions           []CompletionBackup `json:"completions"`
}

// CompletionBackup represents one completed activity
type CompletionBackup struct {
	ProgramYear int    `json:"program_year"`
	Week        int    `json:"week"`
	Kind        string `json:"kind"`
	Variant     string `json:"variant,omitempty"`
}

// OverrideBackup represents the administrator override
type OverrideBackup struct {
	Enabled        bool `json:"enabled"`
	UnlockAll      bool `json:"unlock_all"`
	ForceDayOfWeek int  `json:"force_day_of_week"`
}

// QuestionBackup represents an authored quiz question
type QuestionBackup struct {
	ID          string   `json:"id"`
	ProgramYear int      `json:"program_year"`
	Week        int      `json:"week"`
	MinAge      int      `json:"min_age"`
	MaxAge      int      `json:"max_age"`
	Position    int      `json:"position"`
	Prompt      string   `json:"prompt"`
	Choices     []string `json:"choices"`
	Answer      int      `json:"answer"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db        *database.DB
	accounts  *repository.AccountRepository
	learners  *repository.LearnerRepository
	progress  *repository.ProgressRepository
	overrides *repository.OverrideRepository
	questions *repository.QuizRepository
	logger    *slog.Logger
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB, logger *slog.Logger) *BackupService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BackupService{
		db:        db,
		accounts:  repository.NewAccountRepository(db),
		learners:  repository.NewLearnerRepository(db),
		progress:  repository.NewProgressRepository(db),
		overrides: repository.NewOverrideRepository(db),
		questions: repository.NewQuizRepository(db),
		logger:    logger,
	}
}

// Export creates a complete backup of the database to a file
func (s *BackupService) Export(ctx context.Context, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(ctx, file); err != nil {
		return err
	}
	s.logger.Info("database exported", "path", outputPath)
	return nil
}

// ExportToWriter writes a backup as indented JSON
func (s *BackupService) ExportToWriter(ctx context.Context, w io.Writer) error {
	backup := &BackupData{
		Version:      backupVersion,
		ExportedAt:   time.Now().UTC(),
		DatabaseType: s.db.Dialect.DriverName(),
	}

	if err := s.exportAccounts(ctx, backup); err != nil {
		return fmt.Errorf("failed to export accounts: %w", err)
	}
	if err := s.exportLearners(ctx, backup); err != nil {
		return fmt.Errorf("failed to export learners: %w", err)
	}
	if err := s.exportOverride(ctx, backup); err != nil {
		return fmt.Errorf("failed to export override: %w", err)
	}
	if err := s.exportQuestions(ctx, backup); err != nil {
		return fmt.Errorf("failed to export questions: %w", err)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	s.logger.Info("export complete",
		"accounts", len(backup.Accounts),
		"learners", len(backup.Learners),
		"questions", len(backup.Questions),
	)
	return nil
}

// Import restores a database from a backup file
func (s *BackupService) Import(ctx context.Context, inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(ctx, file)
}

// ImportFromReader restores a backup. Existing accounts and learners are
// kept; learner progress is replaced by the backed-up record.
func (s *BackupService) ImportFromReader(ctx context.Context, reader io.Reader) error {
	var backup BackupData
	if err := json.NewDecoder(reader).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}
	if backup.Version != backupVersion {
		return fmt.Errorf("unsupported backup version %q", backup.Version)
	}

	s.logger.Info("importing backup", "version", backup.Version, "exported_at", backup.ExportedAt)

	if err := s.importAccounts(ctx, backup.Accounts); err != nil {
		return fmt.Errorf("failed to import accounts: %w", err)
	}
	if err := s.importLearners(ctx, backup.Learners); err != nil {
		return fmt.Errorf("failed to import learners: %w", err)
	}
	if err := s.importOverride(ctx, backup.Override); err != nil {
		return fmt.Errorf("failed to import override: %w", err)
	}
	if err := s.importQuestions(ctx, backup.Questions); err != nil {
		return fmt.Errorf("failed to import questions: %w", err)
	}

	s.logger.Info("database import completed")
	return nil
}

func (s *BackupService) exportAccounts(ctx context.Context, backup *BackupData) error {
	accounts, err := s.accounts.ListAll(ctx)
	if err != nil {
		return err
	}
	for _, a := range accounts {
		backup.Accounts = append(backup.Accounts, AccountBackup{
			ID:        a.ID,
			Email:     a.Email,
			Name:      a.Name,
			PlanName:  a.PlanName,
			IsAdmin:   a.IsAdmin,
			CreatedAt: a.CreatedAt,
		})
	}
	return nil
}

func (s *BackupService) exportLearners(ctx context.Context, backup *BackupData) error {
	learners, err := s.learners.ListAll(ctx)
	if err != nil {
		return err
	}
	for _, l := range learners {
		p, err := s.progress.Load(ctx, l.ID)
		if err != nil {
			return fmt.Errorf("learner %s: %w", l.ID, err)
		}
		backup.Learners = append(backup.Learners, LearnerBackup{
			ID:        l.ID,
			AccountID: l.AccountID,
			Name:      l.Name,
			Nickname:  l.Nickname,
			Age:       l.Age,
			Timezone:  l.Timezone,
			Progress:  progressBackup(p),
		})
	}
	return nil
}

func (s *BackupService) exportOverride(ctx context.Context, backup *BackupData) error {
	cfg, err := s.overrides.Get(ctx)
	if err != nil {
		return err
	}
	backup.Override = OverrideBackup{Enabled: cfg.Enabled, UnlockAll: cfg.UnlockAll, ForceDayOfWeek: cfg.ForceDayOfWeek}
	return nil
}

func (s *BackupService) exportQuestions(ctx context.Context, backup *BackupData) error {
	records, err := s.questions.All(ctx)
	if err != nil {
		return err
	}
	for _, rec := range records {
		backup.Questions = append(backup.Questions, QuestionBackup{
			ID:          rec.Question.ID,
			ProgramYear: rec.ProgramYear,
			Week:        rec.Week,
			MinAge:      rec.MinAge,
			MaxAge:      rec.MaxAge,
			Position:    rec.Position,
			Prompt:      rec.Question.Prompt,
			Choices:     rec.Question.Choices,
			Answer:      rec.Question.Answer,
		})
	}
	return nil
}

func (s *BackupService) importAccounts(ctx context.Context, accounts []AccountBackup) error {
	for _, a := range accounts {
		_, err := s.accounts.GetByID(ctx, a.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		account := &models.Account{
			ID:        a.ID,
			Email:     a.Email,
			Name:      a.Name,
			PlanName:  a.PlanName,
			IsAdmin:   a.IsAdmin,
			CreatedAt: a.CreatedAt,
		}
		if err := s.accounts.Create(ctx, account); err != nil {
			return fmt.Errorf("account %s: %w", a.ID, err)
		}
	}
	return nil
}

func (s *BackupService) importLearners(ctx context.Context, learners []LearnerBackup) error {
	for _, lb := range learners {
		p := restoreProgress(lb)

		_, err := s.learners.GetByID(ctx, lb.ID)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			l := &models.Learner{
				ID:        lb.ID,
				AccountID: lb.AccountID,
				Name:      lb.Name,
				Nickname:  lb.Nickname,
				Age:       lb.Age,
				Timezone:  lb.Timezone,
			}
			if err := s.learners.Create(ctx, l, p); err != nil {
				return fmt.Errorf("learner %s: %w", lb.ID, err)
			}
		case err != nil:
			return err
		default:
			if err := s.progress.Replace(ctx, p); err != nil {
				return fmt.Errorf("learner %s: %w", lb.ID, err)
			}
		}
	}
	return nil
}

func (s *BackupService) importOverride(ctx context.Context, o OverrideBackup) error {
	return s.overrides.Set(ctx, models.OverrideConfig{
		Enabled:        o.Enabled,
		UnlockAll:      o.UnlockAll,
		ForceDayOfWeek: o.ForceDayOfWeek,
	})
}

func (s *BackupService) importQuestions(ctx context.Context, questions []QuestionBackup) error {
	existing, err := s.questions.All(ctx)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, rec := range existing {
		seen[rec.Question.ID] = true
	}

	for _, q := range questions {
		if seen[q.ID] {
			continue
		}
		rec := &repository.QuestionRecord{
			ProgramYear: q.ProgramYear,
			Week:        q.Week,
			MinAge:      q.MinAge,
			MaxAge:      q.MaxAge,
			Position:    q.Position,
		}
		rec.Question.ID = q.ID
		rec.Question.Prompt = q.Prompt
		rec.Question.Choices = q.Choices
		rec.Question.Answer = q.Answer
		if err := s.questions.Add(ctx, rec); err != nil {
			return fmt.Errorf("question %s: %w", q.ID, err)
		}
	}
	return nil
}

func progressBackup(p *models.LearnerProgress) ProgressBackup {
	b := ProgressBackup{
		ProgramYear:           p.ProgramYear,
		CurrentWeek:           p.CurrentWeek,
		DayOfWeek:             p.DayOfWeek,
		LastActivityDate:      p.LastActivityDate,
		Streak:                p.Streak,
		BibleBookMasteryLevel: p.BibleBookMasteryLevel,
		BibleBookWeek:         p.BibleBookWeek,
		QuizPasses:            p.QuizPasses,
	}
	for key, done := range p.ActivityCompletion {
		if !done {
			continue
		}
		b.Completions = append(b.Completions, CompletionBackup{
			ProgramYear: key.ProgramYear,
			Week:        key.Week,
			Kind:        string(key.Kind),
			Variant:     string(key.Variant),
		})
	}
	return b
}

func restoreProgress(lb LearnerBackup) *models.LearnerProgress {
	b := lb.Progress
	p := models.NewLearnerProgress(lb.ID, lb.Age, b.DayOfWeek)
	p.ProgramYear = b.ProgramYear
	p.CurrentWeek = b.CurrentWeek
	p.LastActivityDate = b.LastActivityDate
	p.Streak = b.Streak
	p.BibleBookMasteryLevel = b.BibleBookMasteryLevel
	p.BibleBookWeek = b.BibleBookWeek
	p.QuizPasses = b.QuizPasses
	for _, c := range b.Completions {
		p.ActivityCompletion[models.CompletionKey{
			ProgramYear: c.ProgramYear,
			Week:        c.Week,
			Kind:        models.CompletionKind(c.Kind),
			Variant:     models.Variant(c.Variant),
		}] = true
	}
	return p
}

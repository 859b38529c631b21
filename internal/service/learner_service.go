package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"versekids/internal/curriculum"
	"versekids/internal/models"
	"versekids/internal/nickname"
	"versekids/internal/validation"
)

// LearnerRepository persists learner profiles
type LearnerRepository interface {
	Create(ctx context.Context, l *models.Learner, p *models.LearnerProgress) error
	GetByID(ctx context.Context, id string) (*models.Learner, error)
	ListByAccount(ctx context.Context, accountID string) ([]models.Learner, error)
	Update(ctx context.Context, l *models.Learner) error
	Delete(ctx context.Context, id string) error
}

// LearnerService manages the learner profiles of a parent account
type LearnerService struct {
	learners LearnerRepository
	location *time.Location
	logger   *slog.Logger
	now      func() time.Time
}

// NewLearnerService creates a new learner service
func NewLearnerService(learners LearnerRepository, location *time.Location, logger *slog.Logger) *LearnerService {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LearnerService{learners: learners, location: location, logger: logger, now: time.Now}
}

// CreateLearnerInput holds the fields a parent supplies for a new learner
type CreateLearnerInput struct {
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Age      int    `json:"age"`
	Timezone string `json:"timezone"`
}

// Create adds a learner to accountID, generating a nickname when none is
// given. Progress starts at week 1 of year 1 on today's calendar day.
func (s *LearnerService) Create(ctx context.Context, accountID string, in CreateLearnerInput) (*models.Learner, error) {
	nick, err := nickname.OrDefault(in.Nickname)
	if err != nil {
		return nil, fmt.Errorf("failed to generate nickname: %w", err)
	}

	l := &models.Learner{
		AccountID: accountID,
		Name:      strings.TrimSpace(in.Name),
		Nickname:  nick,
		Age:       in.Age,
		Timezone:  strings.TrimSpace(in.Timezone),
	}
	if err := validation.ValidateLearner(l); err != nil {
		return nil, err
	}

	day := curriculum.CalendarDayOfWeek(s.now().In(l.Location(s.location)))
	if err := s.learners.Create(ctx, l, models.NewLearnerProgress("", l.Age, day)); err != nil {
		return nil, err
	}

	s.logger.Info("learner created", "learner_id", l.ID, "account_id", accountID, "age", l.Age)
	return l, nil
}

// Get returns a learner owned by accountID
func (s *LearnerService) Get(ctx context.Context, accountID, learnerID string) (*models.Learner, error) {
	l, err := s.learners.GetByID(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if l.AccountID != accountID {
		return nil, ErrForbidden
	}
	return l, nil
}

// List returns every learner owned by accountID
func (s *LearnerService) List(ctx context.Context, accountID string) ([]models.Learner, error) {
	return s.learners.ListByAccount(ctx, accountID)
}

// UpdateAge changes a learner's age, which moves them between content bands
func (s *LearnerService) UpdateAge(ctx context.Context, accountID, learnerID string, age int) (*models.Learner, error) {
	if err := validation.ValidateAge(age); err != nil {
		return nil, err
	}
	l, err := s.Get(ctx, accountID, learnerID)
	if err != nil {
		return nil, err
	}
	l.Age = age
	if err := s.learners.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Delete removes a learner and, through the schema, their progress
func (s *LearnerService) Delete(ctx context.Context, accountID, learnerID string) error {
	if _, err := s.Get(ctx, accountID, learnerID); err != nil {
		return err
	}
	if err := s.learners.Delete(ctx, learnerID); err != nil {
		return err
	}
	s.logger.Info("learner deleted", "learner_id", learnerID, "account_id", accountID)
	return nil
}

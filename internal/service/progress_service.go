package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"versekids/internal/bookgame"
	"versekids/internal/content"
	"versekids/internal/curriculum"
	"versekids/internal/models"
	"versekids/internal/quiz"
)

// ProgressRepository loads and saves learner progress. Load returns
// repository.ErrNotFound for unknown learners; Save returns
// repository.ErrVersionConflict when the record changed since it was loaded.
type ProgressRepository interface {
	Load(ctx context.Context, learnerID string) (*models.LearnerProgress, error)
	Save(ctx context.Context, p *models.LearnerProgress) error
}

// LearnerStore reads learner profiles
type LearnerStore interface {
	GetByID(ctx context.Context, id string) (*models.Learner, error)
}

// PlanStore looks up the subscription plan of an account
type PlanStore interface {
	PlanFor(ctx context.Context, accountID string) (models.Plan, error)
}

// OverrideStore reads the administrator override record
type OverrideStore interface {
	Get(ctx context.Context) (models.OverrideConfig, error)
}

// Speaker turns text into a playable audio file and returns its name
type Speaker interface {
	Speak(ctx context.Context, text string) (string, error)
}

// Listener captures one utterance and returns its transcript
type Listener interface {
	ListenOnce(ctx context.Context) (string, error)
}

// Notifier tells parents about milestones
type Notifier interface {
	NotifyYearComplete(ctx context.Context, learner *models.Learner, completedYear int) error
	NotifyBooksMastered(ctx context.Context, learner *models.Learner, books []string) error
}

// ProgressService runs the daily curriculum for a learner
type ProgressService struct {
	progress   ProgressRepository
	learners   LearnerStore
	plans      PlanStore
	overrides  OverrideStore
	questions  quiz.QuestionBank
	speaker    Speaker
	notifier   Notifier
	games      *bookgame.Registry
	prefetcher *Prefetcher
	logger     *slog.Logger
	location   *time.Location
	now        func() time.Time
}

// ProgressDeps bundles the collaborators of a ProgressService. Questions,
// Speaker, Notifier and Prefetcher are optional.
type ProgressDeps struct {
	Progress   ProgressRepository
	Learners   LearnerStore
	Plans      PlanStore
	Overrides  OverrideStore
	Questions  quiz.QuestionBank
	Speaker    Speaker
	Notifier   Notifier
	Games      *bookgame.Registry
	Prefetcher *Prefetcher
	Logger     *slog.Logger
	Location   *time.Location
}

// NewProgressService creates a new progress service
func NewProgressService(deps ProgressDeps) *ProgressService {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	loc := deps.Location
	if loc == nil {
		loc = time.UTC
	}
	games := deps.Games
	if games == nil {
		games = bookgame.NewRegistry(context.Background())
	}
	return &ProgressService{
		progress:   deps.Progress,
		learners:   deps.Learners,
		plans:      deps.Plans,
		overrides:  deps.Overrides,
		questions:  deps.Questions,
		speaker:    deps.Speaker,
		notifier:   deps.Notifier,
		games:      games,
		prefetcher: deps.Prefetcher,
		logger:     logger,
		location:   loc,
		now:        time.Now,
	}
}

// session is one learner's synced state for the duration of a request
type session struct {
	learner  *models.Learner
	progress *models.LearnerProgress
	plan     models.Plan
	override models.OverrideConfig
	now      time.Time
	premium  bool
	sync     curriculum.SyncResult
}

func (s *session) gates() curriculum.Gates {
	return curriculum.Evaluate(curriculum.GateInput{
		Progress:  s.progress,
		Override:  s.override,
		TimeOfDay: curriculum.TimeOfDayAt(s.now),
		Premium:   s.premium,
	})
}

// day returns the day content is selected for
func (s *session) day() int {
	return curriculum.EffectiveDay(s.progress, s.override)
}

// open loads a learner and syncs their progress with the calendar in memory
func (s *ProgressService) open(ctx context.Context, learnerID string) (*session, error) {
	learner, err := s.learners.GetByID(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load learner: %w", err)
	}

	p, err := s.progress.Load(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	now := s.now().In(learner.Location(s.location))
	sess := &session{
		learner:  learner,
		progress: p,
		plan:     s.planFor(ctx, learner),
		override: s.overrideConfig(ctx),
		now:      now,
	}
	sess.premium = curriculum.HasPremiumAccess(sess.plan, now)
	sess.sync = curriculum.Sync(p, sess.plan, now)
	return sess, nil
}

// planFor fails closed: a failed lookup is the free tier
func (s *ProgressService) planFor(ctx context.Context, learner *models.Learner) models.Plan {
	plan, err := s.plans.PlanFor(ctx, learner.AccountID)
	if err != nil {
		s.logger.Warn("plan lookup failed, using free tier", "account_id", learner.AccountID, "error", err)
		return models.Plan{}
	}
	return plan
}

func (s *ProgressService) overrideConfig(ctx context.Context) models.OverrideConfig {
	if s.overrides == nil {
		return models.OverrideConfig{}
	}
	cfg, err := s.overrides.Get(ctx)
	if err != nil {
		s.logger.Warn("override lookup failed, treating as disabled", "error", err)
		return models.OverrideConfig{}
	}
	return cfg
}

// commit saves the session's progress and sends any rollover notification
func (s *ProgressService) commit(ctx context.Context, sess *session) error {
	if err := s.progress.Save(ctx, sess.progress); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	if sess.sync.YearRolledOver {
		s.logger.Info("program year completed", "learner_id", sess.learner.ID, "program_year", sess.progress.ProgramYear)
		if s.notifier != nil {
			if err := s.notifier.NotifyYearComplete(ctx, sess.learner, sess.progress.ProgramYear-1); err != nil {
				s.logger.Error("failed to send year complete email", "learner_id", sess.learner.ID, "error", err)
			}
		}
		sess.sync.YearRolledOver = false
	}
	return nil
}

// TodayView is everything the daily page renders
type TodayView struct {
	LearnerID       string                `json:"learner_id"`
	Name            string                `json:"name"`
	Nickname        string                `json:"nickname"`
	Age             int                   `json:"age"`
	ProgramYear     int                   `json:"program_year"`
	Week            int                   `json:"week"`
	DayOfWeek       int                   `json:"day_of_week"`
	EffectiveDay    int                   `json:"effective_day"`
	TimeOfDay       curriculum.TimeOfDay  `json:"time_of_day"`
	Premium         bool                  `json:"premium"`
	MaxWeeks        int                   `json:"max_weeks"`
	Streak          int                   `json:"streak"`
	Theme           string                `json:"theme"`
	Verse           content.Verse         `json:"verse"`
	VerseA          *content.Verse        `json:"verse_a,omitempty"`
	VerseB          *content.Verse        `json:"verse_b,omitempty"`
	Devotional      content.Devotional    `json:"devotional"`
	Gates           curriculum.Gates      `json:"gates"`
	Books           []string              `json:"books"`
	MasteryLevel    int                   `json:"mastery_level"`
	MasteryRequired int                   `json:"mastery_required"`
	Completed       []models.ActivityKind `json:"completed"`
	WeekAdvanced    bool                  `json:"week_advanced"`
}

// Today syncs the learner with the calendar, persists the sync if anything
// moved, and builds the daily page.
func (s *ProgressService) Today(ctx context.Context, learnerID string) (*TodayView, error) {
	sess, err := s.open(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	advanced := sess.sync.WeekAdvanced
	if sess.sync.Changed {
		if err := s.commit(ctx, sess); err != nil {
			return nil, err
		}
	}

	return s.view(sess, advanced), nil
}

func (s *ProgressService) view(sess *session, advanced bool) *TodayView {
	p := sess.progress
	day := sess.day()
	week := content.WeekContentFor(p.Age, p.CurrentWeek, p.ProgramYear)

	v := &TodayView{
		LearnerID:       sess.learner.ID,
		Name:            sess.learner.Name,
		Nickname:        sess.learner.Nickname,
		Age:             p.Age,
		ProgramYear:     p.ProgramYear,
		Week:            p.CurrentWeek,
		DayOfWeek:       p.DayOfWeek,
		EffectiveDay:    day,
		TimeOfDay:       curriculum.TimeOfDayAt(sess.now),
		Premium:         sess.premium,
		MaxWeeks:        curriculum.MaxWeeks(sess.plan, sess.now),
		Streak:          p.Streak,
		Theme:           week.Content.ThemeOld,
		Verse:           content.VerseFor(p.CurrentWeek, p.Age, p.ProgramYear, day),
		Devotional:      content.DevotionalFor(p.CurrentWeek, p.ProgramYear, p.Age),
		Gates:           sess.gates(),
		Books:           bookgame.BooksForWeek(p.CurrentWeek, p.Age),
		MasteryLevel:    p.BibleBookMasteryLevel,
		MasteryRequired: bookgame.MasteryRequired(p.Age),
		Completed:       completedKinds(p),
		WeekAdvanced:    advanced,
	}
	if models.IsYounger(p.Age) {
		v.Theme = week.Content.ThemeYoung
		a, b := content.BothVersesFor(p.CurrentWeek, p.Age, p.ProgramYear)
		v.VerseA, v.VerseB = &a, &b
	}
	return v
}

func completedKinds(p *models.LearnerProgress) []models.ActivityKind {
	var done []models.ActivityKind
	for _, kind := range models.AllActivityKinds {
		ck, variant := models.CompletionFor(kind)
		if p.IsCompleted(ck, variant) {
			done = append(done, kind)
		}
	}
	return done
}

// CompletionResult reports the outcome of completing an activity
type CompletionResult struct {
	Activity models.ActivityKind `json:"activity"`
	Newly    bool                `json:"newly_completed"`
	Streak   int                 `json:"streak"`
	Week     int                 `json:"week"`
}

// CompleteActivity marks kind done for the learner's current week. Quiz and
// book activities complete through their own flows.
func (s *ProgressService) CompleteActivity(ctx context.Context, learnerID string, kind models.ActivityKind) (*CompletionResult, error) {
	switch kind {
	case models.ActivityQuiz, models.ActivityBibleBooks, models.ActivityBookArrange:
		return nil, ErrNotCompletable
	}

	sess, err := s.open(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if err := requireInteractable(sess, kind); err != nil {
		return nil, err
	}

	res := s.complete(sess, kind)
	if err := s.commit(ctx, sess); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ProgressService) complete(sess *session, kind models.ActivityKind) *CompletionResult {
	p := sess.progress
	ck, variant := models.CompletionFor(kind)
	newly := p.MarkCompleted(ck, variant)
	curriculum.RecordActivity(p, sess.now)

	s.logger.Info("activity completed",
		"learner_id", p.LearnerID,
		"activity", kind,
		"program_year", p.ProgramYear,
		"week", p.CurrentWeek,
		"newly", newly,
	)
	return &CompletionResult{Activity: kind, Newly: newly, Streak: p.Streak, Week: p.CurrentWeek}
}

func requireInteractable(sess *session, kind models.ActivityKind) error {
	g, ok := sess.gates()[kind]
	if !ok || !g.Interactable {
		return fmt.Errorf("%w: %s", ErrActivityLocked, kind)
	}
	return nil
}

// nextWeek returns the week after the learner's current one, rolling into
// the next program year, and false when the plan cap stops progression.
func nextWeek(sess *session) (week, year int, ok bool) {
	p := sess.progress
	week, year = p.CurrentWeek+1, p.ProgramYear
	if week > curriculum.YearLength(year) {
		return 1, year + 1, true
	}
	if week > curriculum.MaxWeeks(sess.plan, sess.now) {
		return 0, 0, false
	}
	return week, year, true
}

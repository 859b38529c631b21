package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"versekids/internal/bookgame"
	"versekids/internal/models"
	"versekids/internal/quiz"
	"versekids/internal/repository"
)

var (
	friday    = time.Date(2026, 10, 9, 10, 0, 0, 0, time.UTC)
	monday    = time.Date(2026, 10, 12, 10, 0, 0, 0, time.UTC)
	wednesday = time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	saturday  = time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type memProgress struct {
	mu      sync.Mutex
	records map[string]*models.LearnerProgress
	saves   int
	saveErr error
}

func newMemProgress() *memProgress {
	return &memProgress{records: make(map[string]*models.LearnerProgress)}
}

func (m *memProgress) put(p *models.LearnerProgress) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.Version == 0 {
		p.Version = 1
	}
	m.records[p.LearnerID] = p.Clone()
}

func (m *memProgress) get(id string) *models.LearnerProgress {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records[id].Clone()
}

func (m *memProgress) Load(_ context.Context, id string) (*models.LearnerProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p.Clone(), nil
}

func (m *memProgress) Save(_ context.Context, p *models.LearnerProgress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	stored, ok := m.records[p.LearnerID]
	if !ok {
		return repository.ErrNotFound
	}
	if stored.Version != p.Version {
		return repository.ErrVersionConflict
	}
	p.Version++
	m.records[p.LearnerID] = p.Clone()
	m.saves++
	return nil
}

type memLearners map[string]*models.Learner

func (m memLearners) GetByID(_ context.Context, id string) (*models.Learner, error) {
	l, ok := m[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := *l
	return &c, nil
}

type stubPlans struct {
	plan models.Plan
	err  error
}

func (s stubPlans) PlanFor(context.Context, string) (models.Plan, error) {
	return s.plan, s.err
}

type stubOverrides struct {
	cfg models.OverrideConfig
}

func (s stubOverrides) Get(context.Context) (models.OverrideConfig, error) {
	return s.cfg, nil
}

type stubBank struct {
	questions []quiz.Question
}

func (s stubBank) Questions(context.Context, int, int, int) ([]quiz.Question, error) {
	return s.questions, nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	years    []int
	mastered [][]string
}

func (n *recordingNotifier) NotifyYearComplete(_ context.Context, _ *models.Learner, year int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.years = append(n.years, year)
	return nil
}

func (n *recordingNotifier) NotifyBooksMastered(_ context.Context, _ *models.Learner, books []string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.mastered = append(n.mastered, books)
	return nil
}

type stubSpeaker struct {
	mu    sync.Mutex
	calls []string
	err   error
	delay time.Duration
}

func (s *stubSpeaker) Speak(ctx context.Context, text string) (string, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.calls = append(s.calls, text)
	return "verse_test.mp3", nil
}

func (s *stubSpeaker) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

type fixture struct {
	svc      *ProgressService
	progress *memProgress
	notifier *recordingNotifier
	speaker  *stubSpeaker
	learner  *models.Learner
}

type fixtureOption func(*ProgressDeps)

func withPlans(p PlanStore) fixtureOption {
	return func(d *ProgressDeps) { d.Plans = p }
}

func withOverride(cfg models.OverrideConfig) fixtureOption {
	return func(d *ProgressDeps) { d.Overrides = stubOverrides{cfg: cfg} }
}

func withBank(questions ...quiz.Question) fixtureOption {
	return func(d *ProgressDeps) { d.Questions = stubBank{questions: questions} }
}

// newFixture builds a service for one learner whose clock reads now
func newFixture(t *testing.T, age int, now time.Time, p *models.LearnerProgress, opts ...fixtureOption) *fixture {
	t.Helper()

	learner := &models.Learner{ID: "learner-1", AccountID: "account-1", Name: "Ada", Age: age, Timezone: "UTC"}
	if p == nil {
		p = models.NewLearnerProgress(learner.ID, age, 1)
		p.LastActivityDate = now
	}
	p.LearnerID = learner.ID
	p.Age = age

	f := &fixture{
		progress: newMemProgress(),
		notifier: &recordingNotifier{},
		speaker:  &stubSpeaker{},
		learner:  learner,
	}
	f.progress.put(p)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	deps := ProgressDeps{
		Progress:  f.progress,
		Learners:  memLearners{learner.ID: learner},
		Plans:     stubPlans{plan: models.Plan{Name: "starter", AccountCreatedAt: now.AddDate(-1, 0, 0), Known: true}},
		Overrides: stubOverrides{},
		Speaker:   f.speaker,
		Notifier:  f.notifier,
		Games:     bookgame.NewRegistry(ctx),
		Logger:    discardLogger(),
	}
	for _, opt := range opts {
		opt(&deps)
	}

	f.svc = NewProgressService(deps)
	f.svc.now = func() time.Time { return now }
	return f
}

func freePlan(now time.Time) stubPlans {
	return stubPlans{plan: models.Plan{Name: "free", AccountCreatedAt: now.AddDate(-1, 0, 0), Known: true}}
}

package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versekids/internal/database"
	"versekids/internal/models"
	"versekids/internal/quiz"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Initialize(filepath.Join(t.TempDir(), "repo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.RunMigrations(context.Background(), "../../migrations"))
	return db
}

func seedLearner(t *testing.T, db *database.DB, age int) (*models.Account, *models.Learner) {
	t.Helper()
	ctx := context.Background()

	account := &models.Account{Email: "Parent@Example.com", Name: "Parent", PlanName: "starter"}
	require.NoError(t, NewAccountRepository(db).Create(ctx, account))

	learner := &models.Learner{AccountID: account.ID, Name: "Ada", Nickname: "Brave Lion", Age: age, Timezone: "Europe/London"}
	require.NoError(t, NewLearnerRepository(db).Create(ctx, learner, models.NewLearnerProgress("", age, 3)))
	return account, learner
}

func TestAccountRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	a := &models.Account{Email: " Mum@Example.com ", Name: "Mum"}
	require.NoError(t, repo.Create(ctx, a))
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "free", a.PlanName)

	got, err := repo.GetByEmail(ctx, "MUM@example.com")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, "mum@example.com", got.Email)

	require.NoError(t, repo.UpdatePlan(ctx, a.ID, "starter_monthly"))
	plan, err := repo.PlanFor(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, plan.Known)
	assert.Equal(t, "starter_monthly", plan.Name)
	assert.WithinDuration(t, a.CreatedAt, plan.AccountCreatedAt, time.Second)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.UpdatePlan(ctx, "missing", "free"), ErrNotFound)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, a.ID, all[0].ID)
}

func TestLearnerRepository(t *testing.T) {
	db := newTestDB(t)
	account, learner := seedLearner(t, db, 6)
	repo := NewLearnerRepository(db)
	ctx := context.Background()

	got, err := repo.GetByID(ctx, learner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "Europe/London", got.Timezone)

	list, err := repo.ListByAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	got.Age = 8
	got.Name = "Ada L"
	require.NoError(t, repo.Update(ctx, got))

	progress, err := NewProgressRepository(db).Load(ctx, learner.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, progress.Age, "progress age follows the profile")
	assert.Equal(t, int64(2), progress.Version)

	require.NoError(t, repo.Delete(ctx, learner.ID))
	_, err = repo.GetByID(ctx, learner.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = NewProgressRepository(db).Load(ctx, learner.ID)
	assert.ErrorIs(t, err, ErrNotFound, "progress is deleted with the learner")
	assert.ErrorIs(t, repo.Delete(ctx, learner.ID), ErrNotFound)
}

func TestProgressRoundTrip(t *testing.T) {
	db := newTestDB(t)
	_, learner := seedLearner(t, db, 5)
	repo := NewProgressRepository(db)
	ctx := context.Background()

	p, err := repo.Load(ctx, learner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, p.ProgramYear)
	assert.Equal(t, 1, p.CurrentWeek)
	assert.Equal(t, 3, p.DayOfWeek)
	assert.True(t, p.LastActivityDate.IsZero())
	assert.Empty(t, p.ActivityCompletion)
	assert.Equal(t, int64(1), p.Version)

	last := time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC)
	p.CurrentWeek = 4
	p.BibleBookWeek = 4
	p.BibleBookMasteryLevel = 2
	p.LastActivityDate = last
	p.MarkCompleted(models.CompletionVerse, models.VariantA)
	p.MarkCompleted(models.CompletionBookGame, models.VariantNone)
	require.NoError(t, repo.Save(ctx, p))
	assert.Equal(t, int64(2), p.Version)

	loaded, err := repo.Load(ctx, learner.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, loaded.CurrentWeek)
	assert.Equal(t, 2, loaded.BibleBookMasteryLevel)
	assert.True(t, last.Equal(loaded.LastActivityDate))
	assert.True(t, loaded.IsCompleted(models.CompletionVerse, models.VariantA))
	assert.True(t, loaded.IsCompleted(models.CompletionBookGame, models.VariantNone))
	assert.False(t, loaded.IsCompleted(models.CompletionVerse, models.VariantB))
	assert.Equal(t, int64(2), loaded.Version)

	// saving again with the same completions is fine
	require.NoError(t, repo.Save(ctx, loaded))
}

func TestProgressVersionConflict(t *testing.T) {
	db := newTestDB(t)
	_, learner := seedLearner(t, db, 9)
	repo := NewProgressRepository(db)
	ctx := context.Background()

	first, err := repo.Load(ctx, learner.ID)
	require.NoError(t, err)
	second, err := repo.Load(ctx, learner.ID)
	require.NoError(t, err)

	first.QuizPasses = 1
	require.NoError(t, repo.Save(ctx, first))

	second.Streak = 3
	err = repo.Save(ctx, second)
	assert.ErrorIs(t, err, ErrVersionConflict)
	assert.Equal(t, int64(1), second.Version, "failed save leaves the version alone")

	stored, err := repo.Load(ctx, learner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.QuizPasses)
	assert.Equal(t, 0, stored.Streak)
}

func TestProgressSaveMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)
	err := repo.Save(context.Background(), models.NewLearnerProgress("ghost", 6, 1))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProgressReplace(t *testing.T) {
	db := newTestDB(t)
	_, learner := seedLearner(t, db, 6)
	repo := NewProgressRepository(db)
	ctx := context.Background()

	p, err := repo.Load(ctx, learner.ID)
	require.NoError(t, err)
	p.MarkCompleted(models.CompletionWriting, models.VariantNone)
	require.NoError(t, repo.Save(ctx, p))

	restored := models.NewLearnerProgress(learner.ID, 6, 2)
	restored.ProgramYear = 2
	restored.CurrentWeek = 7
	restored.Version = 9
	restored.MarkCompleted(models.CompletionPrayer, models.VariantNone)
	require.NoError(t, repo.Replace(ctx, restored))

	loaded, err := repo.Load(ctx, learner.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.ProgramYear)
	assert.Equal(t, int64(9), loaded.Version)
	assert.Len(t, loaded.ActivityCompletion, 1)
	assert.True(t, loaded.IsCompleted(models.CompletionPrayer, models.VariantNone))
}

func TestOverrideRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewOverrideRepository(db)
	ctx := context.Background()

	cfg, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)

	require.NoError(t, repo.Set(ctx, models.OverrideConfig{Enabled: true, UnlockAll: true, ForceDayOfWeek: 5}))
	cfg, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, cfg.UnlockAllActive())
	day, ok := cfg.ForcedDay()
	assert.True(t, ok)
	assert.Equal(t, 5, day)
	assert.False(t, cfg.UpdatedAt.IsZero())

	require.NoError(t, repo.Set(ctx, models.OverrideConfig{}))
	cfg, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
	assert.Zero(t, cfg.ForceDayOfWeek)

	assert.Error(t, repo.Set(ctx, models.OverrideConfig{ForceDayOfWeek: 8}))
}

func TestQuizRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuizRepository(db)
	ctx := context.Background()

	records := []*QuestionRecord{
		{ProgramYear: 1, Week: 3, MinAge: 8, MaxAge: 12, Position: 2, Question: quiz.Question{Prompt: "second", Choices: []string{"x", "y"}, Answer: 1}},
		{ProgramYear: 1, Week: 3, MinAge: 8, MaxAge: 12, Position: 1, Question: quiz.Question{Prompt: "first", Choices: []string{"a", "b", "c"}, Answer: 0}},
		{ProgramYear: 1, Week: 3, MinAge: 11, MaxAge: 12, Position: 3, Question: quiz.Question{Prompt: "older only", Choices: []string{"a", "b"}, Answer: 0}},
		{ProgramYear: 1, Week: 4, MinAge: 8, MaxAge: 12, Question: quiz.Question{Prompt: "other week", Choices: []string{"a", "b"}, Answer: 0}},
	}
	for _, rec := range records {
		require.NoError(t, repo.Add(ctx, rec))
	}

	qs, err := repo.Questions(ctx, 9, 3, 1)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "first", qs[0].Prompt)
	assert.Equal(t, []string{"a", "b", "c"}, qs[0].Choices)
	assert.Equal(t, 1, qs[1].Answer)

	qs, err = repo.Questions(ctx, 12, 3, 1)
	require.NoError(t, err)
	assert.Len(t, qs, 3)

	qs, err = repo.Questions(ctx, 9, 5, 1)
	require.NoError(t, err)
	assert.Empty(t, qs)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "first", all[0].Question.Prompt)
	assert.Equal(t, 4, all[3].Week)

	bad := &QuestionRecord{ProgramYear: 1, Week: 1, Question: quiz.Question{Prompt: "bad", Choices: []string{"a"}, Answer: 3}}
	assert.Error(t, repo.Add(ctx, bad))
}

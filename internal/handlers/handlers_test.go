package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versekids/internal/bookgame"
	"versekids/internal/database"
	"versekids/internal/models"
	"versekids/internal/repository"
	"versekids/internal/security"
	"versekids/internal/service"
	"versekids/internal/speech"
)

const testAdminKey = "correct-horse-battery"

type testServer struct {
	handler   http.Handler
	db        *database.DB
	tokens    *security.TokenIssuer
	overrides *repository.OverrideRepository
	parent    *models.Account
	other     *models.Account
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := database.Initialize(filepath.Join(t.TempDir(), "handlers.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.RunMigrations(context.Background(), "../../migrations"))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := discardLogger()
	accounts := repository.NewAccountRepository(db)
	learners := repository.NewLearnerRepository(db)
	overrides := repository.NewOverrideRepository(db)

	progress := service.NewProgressService(service.ProgressDeps{
		Progress:  repository.NewProgressRepository(db),
		Learners:  learners,
		Plans:     accounts,
		Overrides: overrides,
		Questions: repository.NewQuizRepository(db),
		Games:     bookgame.NewRegistry(ctx),
		Logger:    logger,
		Location:  time.UTC,
	})

	hash, err := security.HashAdminKey(testAdminKey)
	require.NoError(t, err)
	tokens := security.NewTokenIssuer("test-secret", time.Hour)
	mw := NewMiddleware(tokens, hash, security.NewRateLimiter(3, time.Minute), logger)

	rt := &Router{
		Learners:   NewLearnerHandler(service.NewLearnerService(learners, time.UTC, logger), progress, logger),
		Admin:      NewAdminHandler(overrides, logger),
		Middleware: mw,
		Audio:      speech.NewTTSService(t.TempDir()),
		DB:         db,
		Logger:     logger,
	}

	parent := &models.Account{Email: "parent@example.com", Name: "Parent", PlanName: "starter"}
	require.NoError(t, accounts.Create(context.Background(), parent))
	other := &models.Account{Email: "other@example.com", Name: "Other", PlanName: "starter"}
	require.NoError(t, accounts.Create(context.Background(), other))

	return &testServer{
		handler:   rt.Routes(),
		db:        db,
		tokens:    tokens,
		overrides: overrides,
		parent:    parent,
		other:     other,
	}
}

// pinWednesday unlocks every gate so tests do not depend on the wall clock
func (s *testServer) pinWednesday(t *testing.T) {
	t.Helper()
	cfg := models.OverrideConfig{Enabled: true, UnlockAll: true, ForceDayOfWeek: 3}
	require.NoError(t, s.overrides.Set(context.Background(), cfg))
}

func (s *testServer) token(t *testing.T, account *models.Account) string {
	t.Helper()
	tok, err := s.tokens.Issue(account.ID, false)
	require.NoError(t, err)
	return tok
}

func (s *testServer) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) createLearner(t *testing.T, token string, age int) learnerResponse {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/learners", token, `{"name":"Sam","age":`+itoa(age)+`}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var l learnerResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&l))
	return l
}

func itoa(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRequireAccount(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/learners", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/learners", "not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/learners", s.token(t, s.parent), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestLearnerLifecycle(t *testing.T) {
	s := newTestServer(t)
	tok := s.token(t, s.parent)

	l := s.createLearner(t, tok, 6)
	assert.NotEmpty(t, l.ID)
	assert.NotEmpty(t, l.Nickname)

	rec := s.do(t, http.MethodPost, "/api/learners", tok, `{"name":"Too Old","age":40}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/learners", tok, `{"name":"x","age":6,"shoe_size":3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPatch, "/api/learners/"+l.ID, tok, `{"age":9}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated learnerResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	assert.Equal(t, 9, updated.Age)

	rec = s.do(t, http.MethodGet, "/api/learners/"+l.ID, s.token(t, s.other), "")
	assert.Equal(t, http.StatusNotFound, rec.Code, "other accounts cannot see the learner")

	rec = s.do(t, http.MethodDelete, "/api/learners/"+l.ID, s.token(t, s.other), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodDelete, "/api/learners/"+l.ID, tok, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/learners/"+l.ID, tok, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTodayAndComplete(t *testing.T) {
	s := newTestServer(t)
	s.pinWednesday(t)
	tok := s.token(t, s.parent)
	l := s.createLearner(t, tok, 9)
	base := "/api/learners/" + l.ID

	rec := s.do(t, http.MethodGet, base+"/today", tok, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var today service.TodayView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&today))
	assert.Equal(t, 3, today.EffectiveDay)
	assert.True(t, today.Gates[models.ActivityTodayVerse].Interactable)

	rec = s.do(t, http.MethodPost, base+"/activities/today_verse/complete", tok, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res service.CompletionResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.True(t, res.Newly)
	assert.Equal(t, 1, res.Streak)

	rec = s.do(t, http.MethodPost, base+"/activities/today_verse/complete", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.False(t, res.Newly, "completing twice is idempotent")

	rec = s.do(t, http.MethodPost, base+"/activities/quiz/complete", tok, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "the quiz completes only through submission")

	rec = s.do(t, http.MethodPost, base+"/activities/dance/complete", tok, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/learners/"+l.ID+"/today", s.token(t, s.other), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLockedActivity(t *testing.T) {
	s := newTestServer(t)
	tok := s.token(t, s.parent)
	l := s.createLearner(t, tok, 9)

	// the quiz opens on Wednesday
	require.NoError(t, s.overrides.Set(context.Background(), models.OverrideConfig{Enabled: true, ForceDayOfWeek: 1}))

	rec := s.do(t, http.MethodGet, "/api/learners/"+l.ID+"/quiz", tok, "")
	assert.Equal(t, http.StatusLocked, rec.Code)
}

func TestQuiz(t *testing.T) {
	s := newTestServer(t)
	s.pinWednesday(t)
	tok := s.token(t, s.parent)
	l := s.createLearner(t, tok, 9)
	base := "/api/learners/" + l.ID

	rec := s.do(t, http.MethodGet, base+"/quiz", tok, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var view service.QuizView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.NotEmpty(t, view.Questions)

	rec = s.do(t, http.MethodPost, base+"/quiz", tok, `{"answers":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookGameFlow(t *testing.T) {
	s := newTestServer(t)
	s.pinWednesday(t)
	tok := s.token(t, s.parent)
	l := s.createLearner(t, tok, 6)
	base := "/api/learners/" + l.ID

	rec := s.do(t, http.MethodPost, base+"/books/tap", tok, `{"book":"Genesis"}`)
	assert.Equal(t, http.StatusConflict, rec.Code, "tapping without a game")

	rec = s.do(t, http.MethodPost, base+"/books/start", tok, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var view service.BookGameView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, "tap", view.Mode)
	require.NotEmpty(t, view.Board)

	rec = s.do(t, http.MethodPost, base+"/books/tap", tok, `{"book":"`+view.Board[0]+`"}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, base+"/books/start?mode=arrange", tok, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, "order", view.Mode)

	rec = s.do(t, http.MethodPost, base+"/books/retry", tok, "")
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRecite(t *testing.T) {
	s := newTestServer(t)
	s.pinWednesday(t)
	tok := s.token(t, s.parent)
	l := s.createLearner(t, tok, 9)
	base := "/api/learners/" + l.ID

	rec := s.do(t, http.MethodPost, base+"/recite", tok, `{"transcript":"   "}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(t, http.MethodPost, base+"/recite", tok, `{"transcript":"purple monkey dishwasher"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res service.RecitationResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.False(t, res.Matched)
	assert.Nil(t, res.Completion)

	rec = s.do(t, http.MethodGet, base+"/today", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var today service.TodayView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&today))

	body, err := json.Marshal(map[string]string{"transcript": today.Verse.Text})
	require.NoError(t, err)
	rec = s.do(t, http.MethodPost, base+"/recite", tok, string(body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.True(t, res.Matched)
	require.NotNil(t, res.Completion)
	assert.Equal(t, models.ActivityTodayVerse, res.Completion.Activity)
}

func TestAudioWithoutSpeaker(t *testing.T) {
	s := newTestServer(t)
	s.pinWednesday(t)
	tok := s.token(t, s.parent)
	l := s.createLearner(t, tok, 6)

	rec := s.do(t, http.MethodGet, "/api/learners/"+l.ID+"/audio?variant=A", tok, "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRateLimitOnSubmissions(t *testing.T) {
	s := newTestServer(t)
	s.pinWednesday(t)
	tok := s.token(t, s.parent)
	l := s.createLearner(t, tok, 9)

	var last *httptest.ResponseRecorder
	for range 4 {
		last = s.do(t, http.MethodPost, "/api/learners/"+l.ID+"/recite", tok, `{"transcript":"hello"}`)
	}
	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Equal(t, "60", last.Header().Get("Retry-After"))
}

func TestAdminOverride(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/override", nil)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	put := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, "/api/admin/override", strings.NewReader(body))
		req.Header.Set(AdminKeyHeader, testAdminKey)
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)
		return rec
	}

	rec = put(`{"enabled":true,"unlock_all":false,"force_day_of_week":9}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = put(`{"enabled":true,"unlock_all":true,"force_day_of_week":5}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/api/admin/override", nil)
	req.Header.Set(AdminKeyHeader, testAdminKey)
	rec = httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"enabled":true,"unlock_all":true,"force_day_of_week":5}`, rec.Body.String())
}

func TestServeAudio(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/audio/notes.txt", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/audio/missing.mp3", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

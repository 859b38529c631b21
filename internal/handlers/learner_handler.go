package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"versekids/internal/models"
	"versekids/internal/service"
	"versekids/internal/speech"
)

// LearnerHandler serves a parent's learners and their daily curriculum
type LearnerHandler struct {
	learners *service.LearnerService
	progress *service.ProgressService
	logger   *slog.Logger
}

// NewLearnerHandler creates a new learner handler
func NewLearnerHandler(learners *service.LearnerService, progress *service.ProgressService, logger *slog.Logger) *LearnerHandler {
	return &LearnerHandler{learners: learners, progress: progress, logger: logger}
}

type learnerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Age      int    `json:"age"`
	Timezone string `json:"timezone,omitempty"`
}

func toLearnerResponse(l *models.Learner) learnerResponse {
	return learnerResponse{ID: l.ID, Name: l.Name, Nickname: l.Nickname, Age: l.Age, Timezone: l.Timezone}
}

// learnerID resolves the {id} path value to a learner owned by the caller
func (h *LearnerHandler) learnerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	accountID := GetAccountIDFromContext(r.Context())
	l, err := h.learners.Get(r.Context(), accountID, r.PathValue("id"))
	if err != nil {
		respondWithServiceError(w, h.logger, "failed to load learner", err)
		return "", false
	}
	return l.ID, true
}

// CreateLearner adds a learner to the caller's account
func (h *LearnerHandler) CreateLearner(w http.ResponseWriter, r *http.Request) {
	var in service.CreateLearnerInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondWithError(w, h.logger, http.StatusBadRequest, ErrInvalidJSON, "", err)
		return
	}

	l, err := h.learners.Create(r.Context(), GetAccountIDFromContext(r.Context()), in)
	if err != nil {
		respondWithServiceError(w, h.logger, "failed to create learner", err)
		return
	}
	respondJSON(w, http.StatusCreated, toLearnerResponse(l))
}

// ListLearners returns the caller's learners
func (h *LearnerHandler) ListLearners(w http.ResponseWriter, r *http.Request) {
	list, err := h.learners.List(r.Context(), GetAccountIDFromContext(r.Context()))
	if err != nil {
		respondWithServiceError(w, h.logger, "failed to list learners", err)
		return
	}
	out := make([]learnerResponse, 0, len(list))
	for i := range list {
		out = append(out, toLearnerResponse(&list[i]))
	}
	respondJSON(w, http.StatusOK, out)
}

// GetLearner returns one learner
func (h *LearnerHandler) GetLearner(w http.ResponseWriter, r *http.Request) {
	l, err := h.learners.Get(r.Context(), GetAccountIDFromContext(r.Context()), r.PathValue("id"))
	if err != nil {
		respondWithServiceError(w, h.logger, "failed to load learner", err)
		return
	}
	respondJSON(w, http.StatusOK, toLearnerResponse(l))
}

// UpdateLearner changes a learner's age
func (h *LearnerHandler) UpdateLearner(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Age int `json:"age"`
	}
	if err := decodeJSON(w, r, &in); err != nil {
		respondWithError(w, h.logger, http.StatusBadRequest, ErrInvalidJSON, "", err)
		return
	}

	l, err := h.learners.UpdateAge(r.Context(), GetAccountIDFromContext(r.Context()), r.PathValue("id"), in.Age)
	if err != nil {
		respondWithServiceError(w, h.logger, "failed to update learner", err)
		return
	}
	respondJSON(w, http.StatusOK, toLearnerResponse(l))
}

// DeleteLearner removes a learner and their progress
func (h *LearnerHandler) DeleteLearner(w http.ResponseWriter, r *http.Request) {
	if err := h.learners.Delete(r.Context(), GetAccountIDFromContext(r.Context()), r.PathValue("id")); err != nil {
		respondWithServiceError(w, h.logger, "failed to delete learner", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Today returns the learner's daily page
func (h *LearnerHandler) Today(w http.ResponseWriter, r *http.Request) {
	id, ok := h.learnerID(w, r)
	if !ok {
		return
	}
	view, err := h.progress.Today(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, h.logger, "failed to load today", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// CompleteActivity marks an activity done for the current week
func (h *LearnerHandler) CompleteActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := h.learnerID(w, r)
	if !ok {
		return
	}
	kind, ok := models.ParseActivityKind(r.PathValue("kind"))
	if !ok {
		respondWithError(w, h.logger, http.StatusNotFound, ErrNotFound, "", nil)
		return
	}

	res, err := h.progress.CompleteActivity(r.Context(), id, kind)
	if err != nil {
		respondWithServiceError(w, h.logger, "failed to complete activity", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// GetQuiz returns this week's quiz questions
func (h *LearnerHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := h.learnerID(w, r)
	if !ok {
		return
	}
	view, err := h.progress.Quiz(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, h.logger, "failed to load quiz", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// SubmitQuiz scores a set of answers
func (h *LearnerHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := h.learnerID(w, r)
	if !ok {
		return
	}
	var in struct {
		Answers []int `json:"answers"`
	}
	if err := decodeJSON(w, r, &in); err != nil {
		respondWithError(w, h.logger, http.StatusBadRequest, ErrInvalidJSON, "", err)
		return
	}

	out, err := h.progress.SubmitQuiz(r.Context(), id, in.Answers)
	if err != nil {
		respondWithServiceError(w, h.logger, "failed to submit quiz", err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

// StartBooks begins a book game
func (h *LearnerHandler) StartBooks(w http.ResponseWriter, r *http.Request) {
	id, ok := h.learnerID(w, r)
	if !ok {
		return
	}
	kind := models.ActivityBibleBooks
	if r.URL.Query().Get("mode") == "arrange" {
		kind = models.ActivityBookArrange
	}

	view, err := h.progress.StartBooks(r.Context(), id, kind)
	if err != nil {
		respondWithServiceError(w, h.logger, "failed to start book game", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// TapBook records one tap
func (h *LearnerHandler) TapBook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.learnerID(w, r)
	if !ok {
		return
	}
	var in struct {
		Book string `json:"book"`
	}
	if err := decodeJSON(w, r, &in); err != nil {
		respondWithError(w, h.logger, http.StatusBadRequest, ErrInvalidJSON, "", err)
		return
	}

	view, err := h.progress.TapBook(r.Context(), id, in.Book)
	if err != nil {
		respondWithServiceError(w, h.logger, "failed to record tap", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// SubmitBooks checks an ordering attempt
func (h *LearnerHandler) SubmitBooks(w http.ResponseWriter, r *http.Request) {
	id, ok := h.learnerID(w, r)
	if !ok {
		return
	}
	var in struct {
		Order []string `json:"order"`
	}
	if err := decodeJSON(w, r, &in); err != nil {
		respondWithError(w, h.logger, http.StatusBadRequest, ErrInvalidJSON, "", err)
		return
	}

	view, err := h.progress.SubmitBooks(r.Context(), id, in.Order)
	if err != nil {
		respondWithServiceError(w, h.logger, "failed to submit book order", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// RetryBooks restarts the ordering game
func (h *LearnerHandler) RetryBooks(w http.ResponseWriter, r *http.Request) {
	id, ok := h.learnerID(w, r)
	if !ok {
		return
	}
	view, err := h.progress.RetryBooks(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, h.logger, "failed to restart book game", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// Recite checks a transcript recognized on the device against the verse
func (h *LearnerHandler) Recite(w http.ResponseWriter, r *http.Request) {
	id, ok := h.learnerID(w, r)
	if !ok {
		return
	}
	var in struct {
		Transcript string `json:"transcript"`
		Variant    string `json:"variant"`
	}
	if err := decodeJSON(w, r, &in); err != nil {
		respondWithError(w, h.logger, http.StatusBadRequest, ErrInvalidJSON, "", err)
		return
	}

	res, err := h.progress.Recite(r.Context(), id, parseVariant(in.Variant), speech.Transcript(in.Transcript))
	if res != nil && errors.Is(err, service.ErrNoMatch) {
		respondJSON(w, http.StatusOK, res)
		return
	}
	if err != nil {
		respondWithServiceError(w, h.logger, "failed to check recitation", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// Audio returns the audio file for the learner's verse
func (h *LearnerHandler) Audio(w http.ResponseWriter, r *http.Request) {
	id, ok := h.learnerID(w, r)
	if !ok {
		return
	}
	res, err := h.progress.Audio(r.Context(), id, parseVariant(r.URL.Query().Get("variant")))
	if err != nil {
		respondWithServiceError(w, h.logger, "failed to synthesize verse", err)
		return
	}
	respondJSON(w, http.StatusOK, struct {
		*service.AudioResult
		URL string `json:"url"`
	}{res, "/audio/" + res.File})
}

// Prefetch warms next week's audio in the background
func (h *LearnerHandler) Prefetch(w http.ResponseWriter, r *http.Request) {
	id, ok := h.learnerID(w, r)
	if !ok {
		return
	}
	started, err := h.progress.PrefetchNext(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, h.logger, "failed to prefetch", err)
		return
	}
	respondJSON(w, http.StatusAccepted, map[string]bool{"started": started})
}

func parseVariant(s string) models.Variant {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return models.VariantA
	case "B":
		return models.VariantB
	default:
		return models.VariantNone
	}
}

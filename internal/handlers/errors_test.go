package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versekids/internal/repository"
	"versekids/internal/service"
	"versekids/internal/validation"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRespondWithErrorWritesStatusAndBody(t *testing.T) {
	recorder := httptest.NewRecorder()

	respondWithError(recorder, discardLogger(), http.StatusTeapot, "Teapot", "", nil)

	assert.Equal(t, http.StatusTeapot, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body errorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, "Teapot", body.Error)
}

func TestRespondWithErrorLogsCause(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	recorder := httptest.NewRecorder()

	respondWithError(recorder, logger, http.StatusInternalServerError, ErrInternalServerError, "", errors.New("boom"))

	logOutput := buf.String()
	assert.Contains(t, logOutput, ErrInternalServerError)
	assert.Contains(t, logOutput, "boom")
	assert.NotContains(t, recorder.Body.String(), "boom", "internal causes stay out of the response")
}

func TestRespondWithServiceError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", validation.ValidationError{Field: "age", Message: "bad age"}, http.StatusBadRequest},
		{"not found", fmt.Errorf("load: %w", repository.ErrNotFound), http.StatusNotFound},
		{"other account", service.ErrForbidden, http.StatusNotFound},
		{"conflict", fmt.Errorf("save: %w", repository.ErrVersionConflict), http.StatusConflict},
		{"locked", fmt.Errorf("%w: quiz", service.ErrActivityLocked), http.StatusLocked},
		{"not completable", service.ErrNotCompletable, http.StatusBadRequest},
		{"no game", service.ErrNoActiveGame, http.StatusConflict},
		{"no match", service.ErrNoMatch, http.StatusUnprocessableEntity},
		{"speech down", service.ErrSpeechUnavailable, http.StatusServiceUnavailable},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respondWithServiceError(recorder, discardLogger(), "test", tt.err)
			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	var dst struct {
		Age int `json:"age"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"age": 7, "extra": true}`))
	assert.Error(t, decodeJSON(httptest.NewRecorder(), req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"age": 7}`))
	require.NoError(t, decodeJSON(httptest.NewRecorder(), req, &dst))
	assert.Equal(t, 7, dst.Age)
}

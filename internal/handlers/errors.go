package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"versekids/internal/repository"
	"versekids/internal/service"
	"versekids/internal/validation"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondWithError(w http.ResponseWriter, logger *slog.Logger, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		if status >= http.StatusInternalServerError {
			logger.Error(logMsg, "error", err)
		} else {
			logger.Debug(logMsg, "error", err)
		}
	}

	respondJSON(w, status, errorResponse{Error: userMsg})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// decodeJSON reads a request body into dst, rejecting unknown fields
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// respondWithServiceError maps domain errors to statuses
func respondWithServiceError(w http.ResponseWriter, logger *slog.Logger, logMsg string, err error) {
	var verr validation.ValidationError
	switch {
	case errors.As(err, &verr):
		respondWithError(w, logger, http.StatusBadRequest, verr.Error(), logMsg, err)
	case errors.Is(err, repository.ErrNotFound):
		respondWithError(w, logger, http.StatusNotFound, ErrNotFound, logMsg, err)
	case errors.Is(err, service.ErrForbidden):
		respondWithError(w, logger, http.StatusNotFound, ErrNotFound, logMsg, err)
	case errors.Is(err, repository.ErrVersionConflict):
		respondWithError(w, logger, http.StatusConflict, ErrConflict, logMsg, err)
	case errors.Is(err, service.ErrActivityLocked):
		respondWithError(w, logger, http.StatusLocked, ErrLocked, logMsg, err)
	case errors.Is(err, service.ErrNotCompletable):
		respondWithError(w, logger, http.StatusBadRequest, service.ErrNotCompletable.Error(), logMsg, err)
	case errors.Is(err, service.ErrNoActiveGame):
		respondWithError(w, logger, http.StatusConflict, service.ErrNoActiveGame.Error(), logMsg, err)
	case errors.Is(err, service.ErrNoMatch):
		respondWithError(w, logger, http.StatusUnprocessableEntity, service.ErrNoMatch.Error(), logMsg, err)
	case errors.Is(err, service.ErrSpeechUnavailable):
		respondWithError(w, logger, http.StatusServiceUnavailable, service.ErrSpeechUnavailable.Error(), logMsg, err)
	default:
		respondWithError(w, logger, http.StatusInternalServerError, ErrInternalServerError, logMsg, err)
	}
}

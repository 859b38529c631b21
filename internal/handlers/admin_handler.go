package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"versekids/internal/models"
	"versekids/internal/validation"
)

// OverrideStore reads and writes the administrator override
type OverrideStore interface {
	Get(ctx context.Context) (models.OverrideConfig, error)
	Set(ctx context.Context, cfg models.OverrideConfig) error
}

// AdminHandler serves the administrator override
type AdminHandler struct {
	overrides OverrideStore
	logger    *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(overrides OverrideStore, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{overrides: overrides, logger: logger}
}

type overridePayload struct {
	Enabled        bool `json:"enabled"`
	UnlockAll      bool `json:"unlock_all"`
	ForceDayOfWeek int  `json:"force_day_of_week"`
}

// GetOverride returns the current override
func (h *AdminHandler) GetOverride(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.overrides.Get(r.Context())
	if err != nil {
		respondWithServiceError(w, h.logger, "failed to load override", err)
		return
	}
	respondJSON(w, http.StatusOK, overridePayload{Enabled: cfg.Enabled, UnlockAll: cfg.UnlockAll, ForceDayOfWeek: cfg.ForceDayOfWeek})
}

// PutOverride replaces the override
func (h *AdminHandler) PutOverride(w http.ResponseWriter, r *http.Request) {
	var in overridePayload
	if err := decodeJSON(w, r, &in); err != nil {
		respondWithError(w, h.logger, http.StatusBadRequest, ErrInvalidJSON, "", err)
		return
	}
	if err := validation.ValidateDayOfWeek(in.ForceDayOfWeek); err != nil {
		respondWithServiceError(w, h.logger, "invalid override", err)
		return
	}

	cfg := models.OverrideConfig{Enabled: in.Enabled, UnlockAll: in.UnlockAll, ForceDayOfWeek: in.ForceDayOfWeek}
	if err := h.overrides.Set(r.Context(), cfg); err != nil {
		respondWithServiceError(w, h.logger, "failed to save override", err)
		return
	}

	h.logger.Info("override updated", "enabled", in.Enabled, "unlock_all", in.UnlockAll, "force_day_of_week", in.ForceDayOfWeek)
	respondJSON(w, http.StatusOK, in)
}

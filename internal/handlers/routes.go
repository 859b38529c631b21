package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Pinger reports database reachability
type Pinger interface {
	PingContext(ctx context.Context) error
}

// AudioFiles resolves cached audio file names to paths on disk
type AudioFiles interface {
	Path(filename string) (string, error)
}

// Router bundles everything the HTTP surface needs
type Router struct {
	Learners   *LearnerHandler
	Admin      *AdminHandler
	Middleware *Middleware
	Audio      AudioFiles
	DB         Pinger
	Logger     *slog.Logger
}

// Routes registers every endpoint on a new mux
func (rt *Router) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mw := rt.Middleware
	lh := rt.Learners

	mux.HandleFunc("GET /healthz", rt.health)
	mux.HandleFunc("GET /audio/{file}", rt.serveAudio)

	mux.HandleFunc("POST /api/learners", mw.RequireAccount(lh.CreateLearner))
	mux.HandleFunc("GET /api/learners", mw.RequireAccount(lh.ListLearners))
	mux.HandleFunc("GET /api/learners/{id}", mw.RequireAccount(lh.GetLearner))
	mux.HandleFunc("PATCH /api/learners/{id}", mw.RequireAccount(lh.UpdateLearner))
	mux.HandleFunc("DELETE /api/learners/{id}", mw.RequireAccount(lh.DeleteLearner))

	mux.HandleFunc("GET /api/learners/{id}/today", mw.RequireAccount(lh.Today))
	mux.HandleFunc("POST /api/learners/{id}/activities/{kind}/complete", mw.RequireAccount(lh.CompleteActivity))
	mux.HandleFunc("GET /api/learners/{id}/quiz", mw.RequireAccount(lh.GetQuiz))
	mux.HandleFunc("POST /api/learners/{id}/quiz", mw.RequireAccount(mw.RateLimit(lh.SubmitQuiz)))
	mux.HandleFunc("POST /api/learners/{id}/books/start", mw.RequireAccount(lh.StartBooks))
	mux.HandleFunc("POST /api/learners/{id}/books/tap", mw.RequireAccount(lh.TapBook))
	mux.HandleFunc("POST /api/learners/{id}/books/submit", mw.RequireAccount(lh.SubmitBooks))
	mux.HandleFunc("POST /api/learners/{id}/books/retry", mw.RequireAccount(lh.RetryBooks))
	mux.HandleFunc("POST /api/learners/{id}/recite", mw.RequireAccount(mw.RateLimit(lh.Recite)))
	mux.HandleFunc("GET /api/learners/{id}/audio", mw.RequireAccount(lh.Audio))
	mux.HandleFunc("POST /api/learners/{id}/prefetch", mw.RequireAccount(lh.Prefetch))

	mux.HandleFunc("GET /api/admin/override", mw.RequireAdmin(rt.Admin.GetOverride))
	mux.HandleFunc("PUT /api/admin/override", mw.RequireAdmin(rt.Admin.PutOverride))

	return mux
}

func (rt *Router) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if rt.DB != nil {
		if err := rt.DB.PingContext(ctx); err != nil {
			respondWithError(w, rt.Logger, http.StatusServiceUnavailable, "database unavailable", "health check failed", err)
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) serveAudio(w http.ResponseWriter, r *http.Request) {
	path, err := rt.Audio.Path(r.PathValue("file"))
	if err != nil {
		respondWithError(w, rt.Logger, http.StatusNotFound, ErrNotFound, "", err)
		return
	}
	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeFile(w, r, path)
}

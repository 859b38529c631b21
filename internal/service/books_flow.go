package service

import (
	"context"
	"errors"
	"fmt"

	"versekids/internal/bookgame"
	"versekids/internal/models"
)

// BookGameView describes the live book game
type BookGameView struct {
	Mode            string                `json:"mode"`
	Board           []string              `json:"board"`
	State           string                `json:"state,omitempty"`
	Remaining       int                   `json:"remaining,omitempty"`
	Tap             *bookgame.TapResult   `json:"tap,omitempty"`
	Order           *bookgame.OrderResult `json:"order,omitempty"`
	MasteryLevel    int                   `json:"mastery_level"`
	MasteryRequired int                   `json:"mastery_required"`
	Mastered        bool                  `json:"mastered"`
}

const (
	modeTap   = "tap"
	modeOrder = "order"
)

// StartBooks begins a book game for this week's set. kind is BibleBooks or,
// for younger learners, BookArrange which plays the timed ordering game.
func (s *ProgressService) StartBooks(ctx context.Context, learnerID string, kind models.ActivityKind) (*BookGameView, error) {
	if kind != models.ActivityBibleBooks && kind != models.ActivityBookArrange {
		return nil, fmt.Errorf("%w: %s", ErrActivityLocked, kind)
	}

	sess, err := s.open(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if err := requireInteractable(sess, kind); err != nil {
		return nil, err
	}
	if sess.sync.Changed {
		if err := s.commit(ctx, sess); err != nil {
			return nil, err
		}
	}

	p := sess.progress
	books := bookgame.BooksForWeek(p.CurrentWeek, p.Age)
	var g bookgame.Game
	if kind == models.ActivityBookArrange {
		g = s.games.StartOrder(learnerID, books)
	} else {
		g = s.games.Start(learnerID, p.Age, books)
	}

	s.logger.Debug("book game started", "learner_id", learnerID, "activity", kind, "week", p.CurrentWeek)
	return gameView(g, p), nil
}

// TapBook records a tap in the learner's tap game
func (s *ProgressService) TapBook(ctx context.Context, learnerID, book string) (*BookGameView, error) {
	g, ok := s.games.Get(learnerID)
	if !ok || g.Tap == nil {
		return nil, ErrNoActiveGame
	}

	res := g.Tap.Tap(book)
	if !res.Complete || !res.Accepted {
		view := gameView(g, nil)
		view.Tap = &res
		return view, nil
	}

	s.games.Finish(learnerID)
	view, err := s.recordBookSuccess(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	view.Mode = modeTap
	view.Board = g.Tap.Board()
	view.Tap = &res
	return view, nil
}

// SubmitBooks checks an ordering attempt. A timed-out game reports the
// timeout and records nothing.
func (s *ProgressService) SubmitBooks(ctx context.Context, learnerID string, order []string) (*BookGameView, error) {
	g, ok := s.games.Get(learnerID)
	if !ok || g.Order == nil {
		return nil, ErrNoActiveGame
	}

	res, err := g.Order.Submit(order)
	if errors.Is(err, bookgame.ErrGameNotRunning) {
		return nil, ErrNoActiveGame
	}
	if err != nil {
		return nil, err
	}
	if !res.Correct {
		view := gameView(g, nil)
		view.Order = &res
		return view, nil
	}

	snap := g.Order.Snapshot()
	s.games.Finish(learnerID)
	view, err := s.recordBookSuccess(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	view.Mode = modeOrder
	view.Board = snap.Books
	view.State = snap.State
	view.Order = &res
	return view, nil
}

// RetryBooks reshuffles the ordering game and restarts its clock
func (s *ProgressService) RetryBooks(_ context.Context, learnerID string) (*BookGameView, error) {
	g, ok := s.games.Retry(learnerID)
	if !ok {
		return nil, ErrNoActiveGame
	}
	s.logger.Debug("book game restarted", "learner_id", learnerID)
	return gameView(g, nil), nil
}

// recordBookSuccess counts a completed round toward this week's mastery
func (s *ProgressService) recordBookSuccess(ctx context.Context, learnerID string) (*BookGameView, error) {
	sess, err := s.open(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	p := sess.progress
	mastered := bookgame.RecordSuccess(p)
	s.complete(sess, models.ActivityBibleBooks)
	if err := s.commit(ctx, sess); err != nil {
		return nil, err
	}

	if mastered {
		books := bookgame.BooksForWeek(p.CurrentWeek, p.Age)
		s.logger.Info("book set mastered", "learner_id", learnerID, "week", p.CurrentWeek)
		if s.notifier != nil {
			if err := s.notifier.NotifyBooksMastered(ctx, sess.learner, books); err != nil {
				s.logger.Error("failed to send mastery email", "learner_id", learnerID, "error", err)
			}
		}
	}

	return &BookGameView{
		MasteryLevel:    p.BibleBookMasteryLevel,
		MasteryRequired: bookgame.MasteryRequired(p.Age),
		Mastered:        bookgame.IsMastered(p),
	}, nil
}

func gameView(g bookgame.Game, p *models.LearnerProgress) *BookGameView {
	view := &BookGameView{}
	switch {
	case g.Tap != nil:
		view.Mode = modeTap
		view.Board = g.Tap.Board()
	case g.Order != nil:
		snap := g.Order.Snapshot()
		view.Mode = modeOrder
		view.Board = snap.Books
		view.State = snap.State
		view.Remaining = snap.Remaining
	}
	if p != nil {
		view.MasteryLevel = p.BibleBookMasteryLevel
		view.MasteryRequired = bookgame.MasteryRequired(p.Age)
		view.Mastered = bookgame.IsMastered(p)
	}
	return view
}

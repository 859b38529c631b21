package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"versekids/internal/content"
	"versekids/internal/models"
)

// Prefetcher warms the audio cache for upcoming weeks in the background.
// Concurrent requests for the same week share one run, and a week fetched
// within the TTL is skipped.
type Prefetcher struct {
	ctx     context.Context
	speaker Speaker
	ttl     time.Duration
	logger  *slog.Logger
	group   singleflight.Group
	now     func() time.Time
	wg      sync.WaitGroup

	mu      sync.Mutex
	fetched map[string]time.Time
}

// NewPrefetcher creates a prefetcher whose background runs stop with ctx
func NewPrefetcher(ctx context.Context, speaker Speaker, ttl time.Duration, logger *slog.Logger) *Prefetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Prefetcher{
		ctx:     ctx,
		speaker: speaker,
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
		fetched: make(map[string]time.Time),
	}
}

func prefetchKey(age, week, year int) string {
	return fmt.Sprintf("%d:%d:%d", age, week, year)
}

// Trigger starts a background prefetch and returns immediately. It reports
// whether a run was started.
func (p *Prefetcher) Trigger(age, week, year int) bool {
	if p.Fresh(age, week, year) {
		return false
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if err := p.Prefetch(p.ctx, age, week, year); err != nil {
			p.logger.Warn("prefetch failed", "age", age, "week", week, "program_year", year, "error", err)
		}
	}()
	return true
}

// Wait blocks until every triggered run has returned
func (p *Prefetcher) Wait() {
	p.wg.Wait()
}

// Fresh reports whether the week was fetched within the TTL
func (p *Prefetcher) Fresh(age, week, year int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	at, ok := p.fetched[prefetchKey(age, week, year)]
	return ok && p.now().Sub(at) < p.ttl
}

// Prefetch synthesizes every verse of the week. The week is only marked as
// fetched when ctx is still live once the work completes.
func (p *Prefetcher) Prefetch(ctx context.Context, age, week, year int) error {
	key := prefetchKey(age, week, year)
	_, err, _ := p.group.Do(key, func() (any, error) {
		if p.Fresh(age, week, year) {
			return nil, nil
		}
		for _, text := range weekTexts(age, week, year) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if _, err := p.speaker.Speak(ctx, text); err != nil {
				return nil, fmt.Errorf("failed to synthesize week %d: %w", week, err)
			}
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		p.mu.Lock()
		p.fetched[key] = p.now()
		p.mu.Unlock()
		p.logger.Debug("prefetched week", "age", age, "week", week, "program_year", year)
		return nil, nil
	})
	return err
}

// weekTexts lists the verse texts a learner hears during a week
func weekTexts(age, week, year int) []string {
	if !models.IsYounger(age) {
		return []string{content.VerseFor(week, age, year, 1).Text}
	}
	a, b := content.BothVersesFor(week, age, year)
	return []string{a.Text, b.Text}
}

// PrefetchNext warms the audio for the week after the learner's current
// one. It reports false when there is nothing to fetch.
func (s *ProgressService) PrefetchNext(ctx context.Context, learnerID string) (bool, error) {
	if s.prefetcher == nil {
		return false, nil
	}
	sess, err := s.open(ctx, learnerID)
	if err != nil {
		return false, err
	}
	week, year, ok := nextWeek(sess)
	if !ok {
		return false, nil
	}
	return s.prefetcher.Trigger(sess.progress.Age, week, year), nil
}

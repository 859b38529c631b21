package bookgame

import (
	"context"
	"sync"
)

// Game is the live game for one learner. Exactly one of Tap and Order is set.
type Game struct {
	Tap   *TapGame
	Order *OrderGame
}

func (g Game) stop() {
	if g.Order != nil {
		g.Order.Stop()
	}
}

// Registry holds one live game per learner. Starting a new game replaces
// and stops the previous one.
type Registry struct {
	ctx   context.Context
	mu    sync.Mutex
	games map[string]Game
	opts  []OrderOption
}

// NewRegistry returns a registry whose countdowns stop when ctx is done.
func NewRegistry(ctx context.Context, opts ...OrderOption) *Registry {
	return &Registry{
		ctx:   ctx,
		games: make(map[string]Game),
		opts:  opts,
	}
}

// Start begins the age-appropriate game for learnerID over books.
func (r *Registry) Start(learnerID string, age int, books []string) Game {
	if age >= olderAge {
		return r.StartOrder(learnerID, books)
	}
	return r.put(learnerID, Game{Tap: NewTapGame(books)})
}

// StartOrder begins a timed ordering game regardless of age.
func (r *Registry) StartOrder(learnerID string, books []string) Game {
	return r.put(learnerID, Game{Order: newRunningOrderGame(r.ctx, books, r.opts...)})
}

func (r *Registry) put(learnerID string, g Game) Game {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.games[learnerID]; ok {
		prev.stop()
	}
	r.games[learnerID] = g
	return g
}

// Get returns the live game for learnerID.
func (r *Registry) Get(learnerID string) (Game, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.games[learnerID]
	return g, ok
}

// Retry reshuffles and restarts the learner's ordering game. It reports
// false when the learner has no ordering game.
func (r *Registry) Retry(learnerID string) (Game, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.games[learnerID]
	if !ok || g.Order == nil {
		return Game{}, false
	}
	g.Order.Retry(r.ctx)
	return g, true
}

// Finish stops and forgets the game for learnerID.
func (r *Registry) Finish(learnerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if g, ok := r.games[learnerID]; ok {
		g.stop()
		delete(r.games, learnerID)
	}
}

// Len returns the number of live games.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.games)
}

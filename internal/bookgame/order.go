package bookgame

import (
	"context"
	"errors"
	"sync"
	"time"
)

// State is the lifecycle of an OrderGame.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateSuccess
	StateTimeout
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateSuccess:
		return "success"
	case StateTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// DefaultTimeLimit is the number of ticks an order game lasts.
const DefaultTimeLimit = 60

var (
	ErrGameNotRunning = errors.New("game is not running")
	ErrGameStarted    = errors.New("game already started")
)

// OrderResult is the outcome of a submitted order.
type OrderResult struct {
	Correct      bool `json:"correct"`
	TimedOut     bool `json:"timed_out"`
	FirstMistake int  `json:"first_mistake"`
}

// EvaluateBookOrder compares a submitted order with the canonical one.
// FirstMistake is the index of the first wrong position, or -1.
func EvaluateBookOrder(submitted, canonical []string) OrderResult {
	for i, book := range canonical {
		if i >= len(submitted) || !sameBook(submitted[i], book) {
			return OrderResult{FirstMistake: i}
		}
	}
	if len(submitted) != len(canonical) {
		return OrderResult{FirstMistake: len(canonical)}
	}
	return OrderResult{Correct: true, FirstMistake: -1}
}

// Snapshot is a point-in-time view of an OrderGame.
type Snapshot struct {
	State     string   `json:"state"`
	Remaining int      `json:"remaining"`
	Books     []string `json:"books"`
}

// OrderOption configures an OrderGame.
type OrderOption func(*OrderGame)

// WithTick sets the countdown interval.
func WithTick(d time.Duration) OrderOption {
	return func(g *OrderGame) { g.tick = d }
}

// WithTimeLimit sets the number of ticks before the game times out.
func WithTimeLimit(ticks int) OrderOption {
	return func(g *OrderGame) { g.limit = ticks }
}

// WithShuffle replaces the shuffle used on start and retry.
func WithShuffle(fn func([]string) []string) OrderOption {
	return func(g *OrderGame) { g.shuffle = fn }
}

// OrderGame is the older learners' game: arrange the week's books in
// canonical order before the countdown runs out.
type OrderGame struct {
	mu        sync.Mutex
	canonical []string
	board     []string
	state     State
	remaining int
	gen       int
	cancel    context.CancelFunc

	tick    time.Duration
	limit   int
	shuffle func([]string) []string
}

// NewOrderGame prepares an idle game over books given in canonical order.
func NewOrderGame(books []string, opts ...OrderOption) *OrderGame {
	g := &OrderGame{
		canonical: append([]string(nil), books...),
		tick:      time.Second,
		limit:     DefaultTimeLimit,
		shuffle:   shuffled,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.remaining = g.limit
	return g
}

// newRunningOrderGame returns a game whose countdown is already running
func newRunningOrderGame(ctx context.Context, books []string, opts ...OrderOption) *OrderGame {
	g := NewOrderGame(books, opts...)
	g.mu.Lock()
	defer g.mu.Unlock()
	g.startLocked(ctx)
	return g
}

// Start moves an idle game to running. The countdown stops when ctx is
// cancelled.
func (g *OrderGame) Start(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateIdle {
		return ErrGameStarted
	}
	g.startLocked(ctx)
	return nil
}

// Retry reshuffles the books and restarts the clock from any state.
func (g *OrderGame) Retry(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.stopLocked()
	g.startLocked(ctx)
}

// Submit checks an arrangement. A timeout that has already fired wins over
// a correct submission. A wrong order leaves the game running.
func (g *OrderGame) Submit(order []string) (OrderResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state {
	case StateTimeout:
		return OrderResult{TimedOut: true, FirstMistake: -1}, nil
	case StateRunning:
	default:
		return OrderResult{}, ErrGameNotRunning
	}

	res := EvaluateBookOrder(order, g.canonical)
	if res.Correct {
		g.state = StateSuccess
		g.stopLocked()
	}
	return res, nil
}

// Stop cancels the countdown without changing the state.
func (g *OrderGame) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopLocked()
}

// State returns the current state.
func (g *OrderGame) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Snapshot returns the state, remaining ticks and board.
func (g *OrderGame) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Snapshot{
		State:     g.state.String(),
		Remaining: g.remaining,
		Books:     append([]string(nil), g.board...),
	}
}

func (g *OrderGame) startLocked(ctx context.Context) {
	g.board = g.shuffle(g.canonical)
	g.state = StateRunning
	g.remaining = g.limit
	g.gen++

	runCtx, cancel := context.WithCancel(ctx)
	g.cancel = cancel
	go g.countdown(runCtx, g.gen)
}

func (g *OrderGame) stopLocked() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}

func (g *OrderGame) countdown(ctx context.Context, gen int) {
	ticker := time.NewTicker(g.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if g.tickOnce(gen) {
				return
			}
		}
	}
}

// tickOnce advances the countdown and reports whether it has finished.
func (g *OrderGame) tickOnce(gen int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gen != gen || g.state != StateRunning {
		return true
	}
	g.remaining--
	if g.remaining <= 0 {
		g.remaining = 0
		g.state = StateTimeout
		g.stopLocked()
		return true
	}
	return false
}

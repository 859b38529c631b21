package bookgame

import (
	"math/rand/v2"
	"strings"
	"sync"
)

// TapResult describes the outcome of a single tap.
type TapResult struct {
	Accepted bool   `json:"accepted"`
	Complete bool   `json:"complete"`
	Next     string `json:"next,omitempty"`
	Tapped   int    `json:"tapped"`
}

// TapGame is the younger learners' game: the books are shown scrambled and
// must be tapped in canonical order. A wrong tap is rejected and progress
// is kept. Only the tap that places the last book reports Accepted and
// Complete together.
type TapGame struct {
	mu       sync.Mutex
	books    []string
	shuffled []string
	next     int
}

// NewTapGame starts a tap game over books given in canonical order.
func NewTapGame(books []string) *TapGame {
	g := &TapGame{books: append([]string(nil), books...)}
	g.shuffled = shuffled(g.books)
	return g
}

// Board returns the books in display order.
func (g *TapGame) Board() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.shuffled...)
}

// Tap records a tap on book.
func (g *TapGame) Tap(book string) TapResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.completeLocked() {
		return TapResult{Complete: true, Tapped: g.next}
	}
	if !sameBook(book, g.books[g.next]) {
		return TapResult{Next: g.books[g.next], Tapped: g.next}
	}
	g.next++
	res := TapResult{Accepted: true, Complete: g.completeLocked(), Tapped: g.next}
	if !res.Complete {
		res.Next = g.books[g.next]
	}
	return res
}

// Complete reports whether every book has been tapped.
func (g *TapGame) Complete() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.completeLocked()
}

func (g *TapGame) completeLocked() bool {
	return g.next >= len(g.books)
}

func sameBook(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func shuffled(books []string) []string {
	out := append([]string(nil), books...)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

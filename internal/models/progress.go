package models

import "time"

// LearnerProgress is the mutable per-learner curriculum record
type LearnerProgress struct {
	LearnerID             string
	Age                   int
	ProgramYear           int
	CurrentWeek           int
	DayOfWeek             int
	LastActivityDate      time.Time
	Streak                int
	ActivityCompletion    map[CompletionKey]bool
	BibleBookMasteryLevel int
	BibleBookWeek         int
	QuizPasses            int
	Version               int64
	UpdatedAt             time.Time
}

// NewLearnerProgress returns the initial record for a freshly created learner
func NewLearnerProgress(learnerID string, age, dayOfWeek int) *LearnerProgress {
	return &LearnerProgress{
		LearnerID:          learnerID,
		Age:                age,
		ProgramYear:        1,
		CurrentWeek:        1,
		DayOfWeek:          dayOfWeek,
		ActivityCompletion: make(map[CompletionKey]bool),
		BibleBookWeek:      1,
	}
}

// Key builds a completion key for the learner's current year and week
func (p *LearnerProgress) Key(kind CompletionKind, variant Variant) CompletionKey {
	return CompletionKey{
		ProgramYear: p.ProgramYear,
		Week:        p.CurrentWeek,
		Kind:        kind,
		Variant:     variant,
	}
}

// IsCompleted reports whether the given activity is done for the current week
func (p *LearnerProgress) IsCompleted(kind CompletionKind, variant Variant) bool {
	return p.ActivityCompletion[p.Key(kind, variant)]
}

// MarkCompleted records a completion for the current week. It returns false
// when the key was already present. Keys are never removed.
func (p *LearnerProgress) MarkCompleted(kind CompletionKind, variant Variant) bool {
	if p.ActivityCompletion == nil {
		p.ActivityCompletion = make(map[CompletionKey]bool)
	}
	key := p.Key(kind, variant)
	if p.ActivityCompletion[key] {
		return false
	}
	p.ActivityCompletion[key] = true
	return true
}

// EnsureBookWeek moves the book mastery counter to the current week,
// zeroing it when it belonged to another week. It reports whether it reset.
func (p *LearnerProgress) EnsureBookWeek() bool {
	if p.BibleBookWeek == p.CurrentWeek {
		return false
	}
	p.BibleBookWeek = p.CurrentWeek
	p.BibleBookMasteryLevel = 0
	return true
}

// Clone returns a deep copy so callers can compare before and after a sync
func (p *LearnerProgress) Clone() *LearnerProgress {
	c := *p
	c.ActivityCompletion = make(map[CompletionKey]bool, len(p.ActivityCompletion))
	for k, v := range p.ActivityCompletion {
		c.ActivityCompletion[k] = v
	}
	return &c
}

package models

import "time"

// Learner represents a child profile in the system
type Learner struct {
	ID        string
	AccountID string
	Name      string
	Nickname  string
	Age       int
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location returns the learner's time zone, falling back to fallback when
// the stored zone is empty or unknown.
func (l *Learner) Location(fallback *time.Location) *time.Location {
	if l.Timezone == "" {
		return fallback
	}
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return fallback
	}
	return loc
}

// IsYounger reports whether the learner is in the 4-7 band that learns two
// verse variants per week.
func IsYounger(age int) bool {
	return age < 8
}

// Age bounds for a learner profile
const (
	MinAge = 4
	MaxAge = 12
)

package models

import "time"

// OverrideConfig is the administrator-controlled switch set used for demos
// and testing. ForceDayOfWeek is 0 when no day is forced.
type OverrideConfig struct {
	Enabled        bool
	UnlockAll      bool
	ForceDayOfWeek int
	UpdatedAt      time.Time
}

// UnlockAllActive reports whether every gated activity should be unlocked
func (o OverrideConfig) UnlockAllActive() bool {
	return o.Enabled && o.UnlockAll
}

// ForcedDay returns the forced day and true when the override pins the day
func (o OverrideConfig) ForcedDay() (int, bool) {
	if !o.Enabled || o.ForceDayOfWeek < 1 || o.ForceDayOfWeek > 7 {
		return 0, false
	}
	return o.ForceDayOfWeek, true
}

package bookgame

import "versekids/internal/models"

// EnsureWeek resets the mastery counter when it belongs to an earlier week.
// It reports whether a reset happened.
func EnsureWeek(p *models.LearnerProgress) bool {
	return p.EnsureBookWeek()
}

// RecordSuccess counts one successful run for the current week and reports
// whether this run reached mastery. Runs after mastery still count.
func RecordSuccess(p *models.LearnerProgress) bool {
	EnsureWeek(p)
	p.BibleBookMasteryLevel++
	return p.BibleBookMasteryLevel == MasteryRequired(p.Age)
}

// IsMastered reports whether the current week's set is mastered.
func IsMastered(p *models.LearnerProgress) bool {
	return p.BibleBookWeek == p.CurrentWeek && p.BibleBookMasteryLevel >= MasteryRequired(p.Age)
}

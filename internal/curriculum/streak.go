package curriculum

import (
	"time"

	"versekids/internal/models"
)

// RecordActivity stamps a completed activity at now (learner local time) and
// maintains the daily streak: the same day keeps it, the next day extends
// it, and any gap restarts it at 1.
func RecordActivity(p *models.LearnerProgress, now time.Time) {
	last := p.LastActivityDate
	p.LastActivityDate = now

	if last.IsZero() {
		p.Streak = 1
		return
	}

	switch daysBetween(last.In(now.Location()), now) {
	case 0:
		if p.Streak == 0 {
			p.Streak = 1
		}
	case 1:
		p.Streak++
	default:
		p.Streak = 1
	}
}

func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

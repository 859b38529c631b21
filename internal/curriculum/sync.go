package curriculum

import (
	"time"

	"versekids/internal/models"
)

// SyncResult describes what a sync changed
type SyncResult struct {
	Changed        bool
	WeekAdvanced   bool
	YearRolledOver bool
	MasteryReset   bool
}

// Sync folds the plan cap and the calendar into p. now must already be in the
// learner's time zone. The caller persists p when Changed is true.
func Sync(p *models.LearnerProgress, plan models.Plan, now time.Time) SyncResult {
	before := *p
	var res SyncResult

	limit := min(MaxWeeks(plan, now), YearLength(p.ProgramYear))
	if p.ProgramYear < 1 {
		p.ProgramYear = 1
	}
	if p.CurrentWeek < 1 {
		p.CurrentWeek = 1
	}
	if p.CurrentWeek > limit {
		p.CurrentWeek = limit
	}

	if IsNewWeek(p.LastActivityDate, now) {
		next := p.CurrentWeek + 1
		if next > YearLength(p.ProgramYear) {
			p.ProgramYear++
			p.CurrentWeek = 1
			res.YearRolledOver = true
		} else {
			p.CurrentWeek = CapWeek(next, plan, now)
		}
		res.WeekAdvanced = p.CurrentWeek != before.CurrentWeek || res.YearRolledOver
		// Stamp the rollover so later loads on the same Monday do not advance again.
		p.LastActivityDate = now
	}

	p.DayOfWeek = CalendarDayOfWeek(now)

	res.MasteryReset = p.EnsureBookWeek()

	res.Changed = p.ProgramYear != before.ProgramYear ||
		p.CurrentWeek != before.CurrentWeek ||
		p.DayOfWeek != before.DayOfWeek ||
		!p.LastActivityDate.Equal(before.LastActivityDate) ||
		p.BibleBookWeek != before.BibleBookWeek ||
		p.BibleBookMasteryLevel != before.BibleBookMasteryLevel
	return res
}

package curriculum

import "time"

// Day numbers used throughout the curriculum, Monday first
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// CalendarDayOfWeek converts t's weekday to the 1=Monday..7=Sunday convention
func CalendarDayOfWeek(t time.Time) int {
	wd := t.Weekday()
	if wd == time.Sunday {
		return Sunday
	}
	return int(wd)
}

// IsWeekend reports whether day is Saturday or Sunday
func IsWeekend(day int) bool {
	return day == Saturday || day == Sunday
}

// IsNewWeek reports whether a learner whose last activity was at last should
// advance a week at now. It only fires when the last activity fell on
// Friday, Saturday or Sunday and now is a Monday; longer absences and
// mid-week last activity are not detected. last is read in now's location, so
// a timestamp stored in UTC is judged by the learner's own calendar.
func IsNewWeek(last, now time.Time) bool {
	if last.IsZero() {
		return false
	}
	lastDay := CalendarDayOfWeek(last.In(now.Location()))
	if lastDay < Friday {
		return false
	}
	return CalendarDayOfWeek(now) == Monday
}

// TimeOfDay is a coarse part of the day used by the evening-only activities
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// TimeOfDayAt buckets t by its local hour
func TimeOfDayAt(t time.Time) TimeOfDay {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return Morning
	case h >= 12 && h < 18:
		return Afternoon
	default:
		return Evening
	}
}

// YearLength is the number of weeks in a program year
func YearLength(programYear int) int {
	if programYear <= 1 {
		return 52
	}
	return 48
}

package curriculum

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2026-10-12 is a Monday
func day(offset int, hour int) time.Time {
	return time.Date(2026, 10, 12+offset, hour, 0, 0, 0, time.UTC)
}

func TestCalendarDayOfWeek(t *testing.T) {
	want := []int{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
	for i, w := range want {
		assert.Equal(t, w, CalendarDayOfWeek(day(i, 10)), "offset %d", i)
	}
}

func TestIsNewWeek(t *testing.T) {
	nextMonday := day(7, 8)

	tests := []struct {
		name string
		last time.Time
		now  time.Time
		want bool
	}{
		{name: "friday to monday", last: day(4, 17), now: nextMonday, want: true},
		{name: "saturday to monday", last: day(5, 10), now: nextMonday, want: true},
		{name: "sunday to monday", last: day(6, 20), now: nextMonday, want: true},
		{name: "thursday to monday is not detected", last: day(3, 10), now: nextMonday, want: false},
		{name: "monday to next monday is not detected", last: day(0, 10), now: nextMonday, want: false},
		{name: "friday to tuesday", last: day(4, 10), now: day(8, 10), want: false},
		{name: "multi week absence from friday", last: day(-10, 10), now: nextMonday, want: true},
		{name: "never active", last: time.Time{}, now: nextMonday, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNewWeek(tt.last, tt.now))
		})
	}
}

func TestTimeOfDayAt(t *testing.T) {
	assert.Equal(t, Evening, TimeOfDayAt(day(0, 2)))
	assert.Equal(t, Morning, TimeOfDayAt(day(0, 5)))
	assert.Equal(t, Morning, TimeOfDayAt(day(0, 11)))
	assert.Equal(t, Afternoon, TimeOfDayAt(day(0, 12)))
	assert.Equal(t, Afternoon, TimeOfDayAt(day(0, 17)))
	assert.Equal(t, Evening, TimeOfDayAt(day(0, 18)))
	assert.Equal(t, Evening, TimeOfDayAt(day(0, 23)))
}

func TestYearLength(t *testing.T) {
	assert.Equal(t, 52, YearLength(1))
	assert.Equal(t, 48, YearLength(2))
	assert.Equal(t, 48, YearLength(9))
}

func TestIsNewWeekReadsStoredTimeInLearnerZone(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Skip("time zone data unavailable")
	}
	monday := time.Date(2026, 10, 19, 9, 0, 0, 0, la)

	tests := []struct {
		name string
		last time.Time
		want bool
	}{
		// Monday 02:00 in UTC
		{name: "sunday evening local", last: time.Date(2026, 10, 18, 19, 0, 0, 0, la).UTC(), want: true},
		// Friday 03:00 in UTC
		{name: "thursday evening local", last: time.Date(2026, 10, 15, 20, 0, 0, 0, la).UTC(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNewWeek(tt.last, monday))
		})
	}
}

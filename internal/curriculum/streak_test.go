package curriculum

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"versekids/internal/models"
)

func TestRecordActivity(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("time zone data unavailable")
	}
	morning := time.Date(2026, 10, 13, 8, 0, 0, 0, loc)

	tests := []struct {
		name   string
		last   time.Time
		streak int
		want   int
	}{
		{name: "first activity", want: 1},
		{name: "same day keeps streak", last: morning.Add(-time.Hour), streak: 4, want: 4},
		{name: "next day extends", last: morning.AddDate(0, 0, -1), streak: 4, want: 5},
		{name: "gap restarts", last: morning.AddDate(0, 0, -3), streak: 4, want: 1},
		{name: "late evening utc is still yesterday locally", last: time.Date(2026, 10, 13, 2, 0, 0, 0, time.UTC), streak: 2, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &models.LearnerProgress{LastActivityDate: tt.last, Streak: tt.streak}
			RecordActivity(p, morning)
			assert.Equal(t, tt.want, p.Streak)
			assert.True(t, p.LastActivityDate.Equal(morning))
		})
	}
}

package curriculum

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"versekids/internal/models"
)

func TestPlanTier(t *testing.T) {
	tests := []struct {
		name     string
		planName string
		want     Tier
	}{
		{name: "starter monthly", planName: "Starter Monthly", want: TierStarter},
		{name: "upper case", planName: "STARTER", want: TierStarter},
		{name: "free", planName: "free", want: TierFree},
		{name: "empty", planName: "", want: TierFree},
		{name: "unrelated paid name", planName: "family", want: TierFree},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlanTier(tt.planName))
		})
	}
}

func TestHasPremiumAccess(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		plan models.Plan
		want bool
	}{
		{
			name: "starter plan",
			plan: models.Plan{Name: "starter", AccountCreatedAt: now.AddDate(-2, 0, 0), Known: true},
			want: true,
		},
		{
			name: "free plan inside early access",
			plan: models.Plan{Name: "free", AccountCreatedAt: now.AddDate(0, -5, 0), Known: true},
			want: true,
		},
		{
			name: "free plan after early access",
			plan: models.Plan{Name: "free", AccountCreatedAt: now.AddDate(0, -7, 0), Known: true},
			want: false,
		},
		{
			name: "early access ends exactly now",
			plan: models.Plan{Name: "free", AccountCreatedAt: now.AddDate(0, -6, 0), Known: true},
			want: false,
		},
		{
			name: "unknown plan fails closed",
			plan: models.Plan{Name: "starter", AccountCreatedAt: now, Known: false},
			want: false,
		},
		{
			name: "missing creation date",
			plan: models.Plan{Name: "free", Known: true},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPremiumAccess(tt.plan, now))
		})
	}
}

func TestCapWeekNeverExceedsMaxWeeks(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	plans := []models.Plan{
		{},
		{Name: "free", AccountCreatedAt: now.AddDate(-1, 0, 0), Known: true},
		{Name: "free", AccountCreatedAt: now.AddDate(0, -1, 0), Known: true},
		{Name: "Starter", AccountCreatedAt: now.AddDate(-3, 0, 0), Known: true},
	}

	for _, plan := range plans {
		for week := -2; week <= 120; week++ {
			got := CapWeek(week, plan, now)
			assert.LessOrEqual(t, got, MaxWeeks(plan, now), "plan %+v week %d", plan, week)
		}
	}
	assert.Equal(t, FreeWeekCap, MaxWeeks(plans[1], now))
	assert.Equal(t, PremiumWeekCap, MaxWeeks(plans[3], now))
}

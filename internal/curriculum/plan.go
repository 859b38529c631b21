package curriculum

import (
	"strings"
	"time"

	"versekids/internal/models"
)

// Tier is the subscription tier derived from a plan name
type Tier string

const (
	TierFree    Tier = "free"
	TierStarter Tier = "starter"
)

const (
	// FreeWeekCap is the last week a free learner can reach
	FreeWeekCap = 8
	// PremiumWeekCap is the last week of a full program year
	PremiumWeekCap = 52
	// earlyAccessMonths is the trial window measured from account creation
	earlyAccessMonths = 6
)

// PlanTier returns the tier for a plan name
func PlanTier(planName string) Tier {
	if strings.Contains(strings.ToLower(planName), string(TierStarter)) {
		return TierStarter
	}
	return TierFree
}

// EarlyAccessUntil returns the end of the trial window for an account
func EarlyAccessUntil(accountCreatedAt time.Time) time.Time {
	return accountCreatedAt.AddDate(0, earlyAccessMonths, 0)
}

// HasPremiumAccess reports whether the plan unlocks premium content at now.
// A plan that could not be read never has premium access.
func HasPremiumAccess(plan models.Plan, now time.Time) bool {
	if !plan.Known {
		return false
	}
	if PlanTier(plan.Name) == TierStarter {
		return true
	}
	if plan.AccountCreatedAt.IsZero() {
		return false
	}
	return now.Before(EarlyAccessUntil(plan.AccountCreatedAt))
}

// MaxWeeks returns the week cap for the plan at now
func MaxWeeks(plan models.Plan, now time.Time) int {
	if HasPremiumAccess(plan, now) {
		return PremiumWeekCap
	}
	return FreeWeekCap
}

// CapWeek clamps week to the plan's cap
func CapWeek(week int, plan models.Plan, now time.Time) int {
	return min(week, MaxWeeks(plan, now))
}

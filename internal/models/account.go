package models

import "time"

// Account represents a parent account that owns learners and a subscription plan
type Account struct {
	ID        string
	Email     string
	Name      string
	PlanName  string
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Plan is the subscription data needed by the plan policy. Known is false
// when the plan could not be read; such a plan is always treated as free.
type Plan struct {
	Name             string
	AccountCreatedAt time.Time
	Known            bool
}

// PlanFor builds the plan view of an account
func PlanFor(a *Account) Plan {
	if a == nil {
		return Plan{}
	}
	return Plan{Name: a.PlanName, AccountCreatedAt: a.CreatedAt, Known: true}
}

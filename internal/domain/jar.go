package domain

import "time"

// FundraisingJar represents a donation goal backed by a provider-hosted jar
// ExternalID is the provider's opaque jar/account identifier echoed in webhooks
type FundraisingJar struct {
	ID            int64
	ExternalID    string
	Title         string
	Description   *string
	GoalAmount    *float64
	CurrentAmount float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsGoalReached returns true if the jar has collected its goal amount
func (j *FundraisingJar) IsGoalReached() bool {
	return j.GoalAmount != nil && j.CurrentAmount >= *j.GoalAmount
}

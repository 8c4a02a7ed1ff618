package dto

import "time"

type JourneyOutput struct {
	ID             string
	StartedAt      time.Time
	LastUpdatedAt  time.Time
	CompletedAt    *time.Time
	CompletedRules []int
	Complete       bool
	Themes         []string
	NotePath       string
}

type UpdateInput struct {
	Rule  string
	Field string
	Value string
	// Slot addresses one of the rule-4 parallel arrays; pass -1 for scalars.
	Slot int
}

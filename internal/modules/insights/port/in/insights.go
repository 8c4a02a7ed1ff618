package in

import (
	"context"

	"inward/internal/modules/insights/domain"
)

// Report is the bundle the dashboard shows for a window of days.
type Report struct {
	Days           int
	CheckInCount   int
	Emotions       []domain.FrequencyCount
	ThoughtTags    []domain.FrequencyCount
	Behaviours     []domain.FrequencyCount
	AlignmentScore int
}

// Usecase is the inbound surface of the insight engine.
type Usecase interface {
	Report(ctx context.Context, days int) (Report, error)
	DetectPatterns(ctx context.Context) ([]domain.Pattern, error)
	Patterns(ctx context.Context) ([]domain.Pattern, error)
	MarkPatternTested(ctx context.Context, id string) error
	BuildWeekly(ctx context.Context) (domain.WeeklyInsight, error)
	WeeklyHistory(ctx context.Context) ([]domain.WeeklyInsight, error)
	Narrative(ctx context.Context) (domain.JourneyInsights, error)
}

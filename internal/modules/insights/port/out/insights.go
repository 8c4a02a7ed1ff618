package out

import (
	"context"

	"inward/internal/modules/insights/domain"
)

// PatternStore holds the latest pattern snapshot. Detection fully
// recomputes the list, so Replace overwrites rather than merges.
type PatternStore interface {
	List(ctx context.Context) []domain.Pattern
	Replace(ctx context.Context, patterns []domain.Pattern)
}

// WeeklyStore holds the weekly summaries, newest first.
type WeeklyStore interface {
	List(ctx context.Context) []domain.WeeklyInsight
	Replace(ctx context.Context, insights []domain.WeeklyInsight)
}

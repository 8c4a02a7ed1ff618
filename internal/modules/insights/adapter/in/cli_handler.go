package in

import (
	"context"

	"inward/internal/modules/insights/domain"
	insightsin "inward/internal/modules/insights/port/in"
)

type CLIHandler struct {
	usecase insightsin.Usecase
}

func NewCLIHandler(usecase insightsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Report(ctx context.Context, days int) (insightsin.Report, error) {
	return h.usecase.Report(ctx, days)
}

func (h CLIHandler) DetectPatterns(ctx context.Context) ([]domain.Pattern, error) {
	return h.usecase.DetectPatterns(ctx)
}

func (h CLIHandler) Patterns(ctx context.Context) ([]domain.Pattern, error) {
	return h.usecase.Patterns(ctx)
}

func (h CLIHandler) MarkPatternTested(ctx context.Context, id string) error {
	return h.usecase.MarkPatternTested(ctx, id)
}

func (h CLIHandler) BuildWeekly(ctx context.Context) (domain.WeeklyInsight, error) {
	return h.usecase.BuildWeekly(ctx)
}

func (h CLIHandler) WeeklyHistory(ctx context.Context) ([]domain.WeeklyInsight, error) {
	return h.usecase.WeeklyHistory(ctx)
}

func (h CLIHandler) Narrative(ctx context.Context) (domain.JourneyInsights, error) {
	return h.usecase.Narrative(ctx)
}

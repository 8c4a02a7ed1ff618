package in

import (
	"context"
	"time"

	"inward/internal/modules/checkin/domain"
	"inward/internal/modules/checkin/dto"
	checkinin "inward/internal/modules/checkin/port/in"
)

type CLIHandler struct {
	usecase checkinin.Usecase
}

func NewCLIHandler(usecase checkinin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, input dto.CheckInInput) (domain.CheckIn, error) {
	return h.usecase.Save(ctx, input)
}

func (h CLIHandler) List(ctx context.Context) ([]domain.CheckIn, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) Range(ctx context.Context, start, end time.Time) ([]domain.CheckIn, error) {
	return h.usecase.ForDateRange(ctx, start, end)
}

func (h CLIHandler) LastDays(ctx context.Context, days int) ([]domain.CheckIn, error) {
	return h.usecase.ForLastDays(ctx, days)
}

func (h CLIHandler) Today(ctx context.Context) (domain.CheckIn, bool, error) {
	return h.usecase.Today(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) (int, error) {
	return h.usecase.Reindex(ctx)
}

func (h CLIHandler) EmotionCounts(ctx context.Context) ([]dto.EmotionCount, error) {
	return h.usecase.EmotionCounts(ctx)
}

func (h CLIHandler) DailyCounts(ctx context.Context, days int) ([]dto.DayCount, error) {
	return h.usecase.DailyCounts(ctx, days)
}

package in

import (
	"context"
	"time"

	"inward/internal/modules/checkin/domain"
	"inward/internal/modules/checkin/dto"
)

// Usecase is the inbound surface of the check-in module.
type Usecase interface {
	Save(ctx context.Context, input dto.CheckInInput) (domain.CheckIn, error)
	List(ctx context.Context) ([]domain.CheckIn, error)
	Delete(ctx context.Context, id string) error
	ForDateRange(ctx context.Context, start, end time.Time) ([]domain.CheckIn, error)
	ForLastDays(ctx context.Context, days int) ([]domain.CheckIn, error)
	Today(ctx context.Context) (domain.CheckIn, bool, error)
	Reindex(ctx context.Context) (int, error)
	EmotionCounts(ctx context.Context) ([]dto.EmotionCount, error)
	DailyCounts(ctx context.Context, days int) ([]dto.DayCount, error)
}

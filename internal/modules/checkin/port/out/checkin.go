package out

import (
	"context"

	"inward/internal/modules/checkin/domain"
	"inward/internal/modules/checkin/dto"
)

// Store persists the check-in list as one record, newest first. The
// list is the source of truth; the index is derived from it.
type Store interface {
	List(ctx context.Context) []domain.CheckIn
	Replace(ctx context.Context, checkIns []domain.CheckIn)
}

// IndexProjector maintains a queryable read model of the check-in
// list. Projection failures must not block the write path.
type IndexProjector interface {
	Upsert(ctx context.Context, c domain.CheckIn) error
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context) error
	EmotionCounts(ctx context.Context) ([]dto.EmotionCount, error)
	DailyCounts(ctx context.Context, days int) ([]dto.DayCount, error)
}

package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"inward/internal/modules/checkin/domain"
	"inward/internal/modules/checkin/dto"
	checkinin "inward/internal/modules/checkin/port/in"
	checkinout "inward/internal/modules/checkin/port/out"
	"inward/internal/modules/checkin/service"
)

// Interactor wires the check-in service to the optional sqlite index.
// The JSON list stays authoritative; index failures are logged and
// never surface to the caller of a write.
type Interactor struct {
	svc   *service.CheckInService
	index checkinout.IndexProjector
	log   *zap.Logger
}

func NewInteractor(svc *service.CheckInService, index checkinout.IndexProjector, log *zap.Logger) checkinin.Usecase {
	return &Interactor{svc: svc, index: index, log: log}
}

func (i *Interactor) Save(ctx context.Context, input dto.CheckInInput) (domain.CheckIn, error) {
	c := i.svc.Save(ctx, domain.CheckIn{
		Emotion: domain.Emotion{
			Primary:      input.Primary,
			Secondary:    input.Secondary,
			Intensity:    input.Intensity,
			BodyLocation: input.BodyLocation,
		},
		Thought:         input.Thought,
		ThoughtTags:     input.ThoughtTags,
		BehaviourUrge:   input.BehaviourUrge,
		BehaviourAction: input.BehaviourAction,
		Value:           input.Value,
		Context:         input.Context,
	})
	if i.index != nil {
		if err := i.index.Upsert(ctx, c); err != nil {
			i.log.Warn("index check-in", zap.String("id", c.ID), zap.Error(err))
		}
	}
	return c, nil
}

func (i *Interactor) List(ctx context.Context) ([]domain.CheckIn, error) {
	return i.svc.List(ctx), nil
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	if err := i.svc.Delete(ctx, id); err != nil {
		return err
	}
	if i.index != nil {
		if err := i.index.Delete(ctx, id); err != nil {
			i.log.Warn("unindex check-in", zap.String("id", id), zap.Error(err))
		}
	}
	return nil
}

func (i *Interactor) ForDateRange(ctx context.Context, start, end time.Time) ([]domain.CheckIn, error) {
	return i.svc.ForDateRange(ctx, start, end), nil
}

func (i *Interactor) ForLastDays(ctx context.Context, days int) ([]domain.CheckIn, error) {
	return i.svc.ForLastDays(ctx, days), nil
}

func (i *Interactor) Today(ctx context.Context) (domain.CheckIn, bool, error) {
	c, ok := i.svc.Today(ctx)
	return c, ok, nil
}

// Reindex rebuilds the sqlite read model from the JSON source of
// truth and returns the number of rows projected.
func (i *Interactor) Reindex(ctx context.Context) (int, error) {
	if i.index == nil {
		return 0, nil
	}
	if err := i.index.Reset(ctx); err != nil {
		return 0, err
	}
	checkIns := i.svc.List(ctx)
	for _, c := range checkIns {
		if err := i.index.Upsert(ctx, c); err != nil {
			return 0, err
		}
	}
	return len(checkIns), nil
}

func (i *Interactor) EmotionCounts(ctx context.Context) ([]dto.EmotionCount, error) {
	if i.index == nil {
		return nil, nil
	}
	return i.index.EmotionCounts(ctx)
}

func (i *Interactor) DailyCounts(ctx context.Context, days int) ([]dto.DayCount, error) {
	if i.index == nil {
		return nil, nil
	}
	return i.index.DailyCounts(ctx, days)
}

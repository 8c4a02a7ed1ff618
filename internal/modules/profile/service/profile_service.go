package service

import (
	"context"

	"inward/internal/modules/profile/domain"
	profilein "inward/internal/modules/profile/port/in"
	profileout "inward/internal/modules/profile/port/out"
	"inward/internal/platform/clock"
	apperrors "inward/internal/platform/errors"
)

// ProfileService owns the single-slot profile records. It implements
// the inbound port directly; there is no orchestration beyond the
// store.
type ProfileService struct {
	clock clock.Clock
	store profileout.Store
}

func NewProfileService(clock clock.Clock, store profileout.Store) *ProfileService {
	return &ProfileService{clock: clock, store: store}
}

var _ profilein.Usecase = (*ProfileService)(nil)

func (s *ProfileService) Preferences(ctx context.Context) domain.Preferences {
	if p, ok := s.store.LoadPreferences(ctx); ok {
		return p
	}
	return domain.DefaultPreferences()
}

func (s *ProfileService) SavePreferences(ctx context.Context, p domain.Preferences) error {
	s.store.SavePreferences(ctx, p)
	return nil
}

func (s *ProfileService) Values(ctx context.Context) (domain.UserValues, bool) {
	return s.store.LoadValues(ctx)
}

func (s *ProfileService) SaveValues(ctx context.Context, topValues []string) (domain.UserValues, error) {
	if len(topValues) == 0 {
		return domain.UserValues{}, apperrors.ErrInvalidInput
	}
	v := domain.UserValues{TopValues: topValues, SortedAt: s.clock.Now()}
	s.store.SaveValues(ctx, v)
	return v, nil
}

func (s *ProfileService) Progress(ctx context.Context) domain.ModuleProgress {
	if p, ok := s.store.LoadProgress(ctx); ok {
		return p
	}
	return domain.DefaultProgress()
}

func (s *ProfileService) RecordLesson(ctx context.Context, track string) (domain.ModuleProgress, error) {
	return s.record(ctx, track, func(t *domain.TrackProgress) { t.LessonsCompleted++ })
}

func (s *ProfileService) RecordPractice(ctx context.Context, track string) (domain.ModuleProgress, error) {
	return s.record(ctx, track, func(t *domain.TrackProgress) { t.PracticesCompleted++ })
}

func (s *ProfileService) record(ctx context.Context, track string, bump func(*domain.TrackProgress)) (domain.ModuleProgress, error) {
	progress := s.Progress(ctx)
	slot, ok := trackSlot(&progress, track)
	if !ok {
		return domain.ModuleProgress{}, apperrors.ErrInvalidInput
	}
	bump(slot)
	s.store.SaveProgress(ctx, progress)
	return progress, nil
}

func trackSlot(p *domain.ModuleProgress, track string) (*domain.TrackProgress, bool) {
	switch track {
	case "emotion":
		return &p.Emotion, true
	case "thought":
		return &p.Thought, true
	case "behaviour":
		return &p.Behaviour, true
	case "values":
		return &p.Values, true
	case "blind-spots":
		return &p.BlindSpots, true
	default:
		return nil, false
	}
}

func (s *ProfileService) Baseline(ctx context.Context) (domain.BaselineSnapshot, bool) {
	return s.store.LoadBaseline(ctx)
}

func (s *ProfileService) SaveBaseline(ctx context.Context, b domain.BaselineSnapshot) (domain.BaselineSnapshot, error) {
	b.CapturedAt = s.clock.Now()
	s.store.SaveBaseline(ctx, b)
	return b, nil
}

func (s *ProfileService) OnboardingCompleted(ctx context.Context) bool {
	return s.store.OnboardingCompleted(ctx)
}

func (s *ProfileService) CompleteOnboarding(ctx context.Context) error {
	s.store.SetOnboardingCompleted(ctx, true)
	return nil
}

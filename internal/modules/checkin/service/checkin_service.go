package service

import (
	"context"
	"time"

	"inward/internal/modules/checkin/domain"
	checkinout "inward/internal/modules/checkin/port/out"
	"inward/internal/platform/clock"
	apperrors "inward/internal/platform/errors"
	"inward/internal/platform/id"
)

// CheckInService owns the check-in list. New entries are prepended so
// the list reads newest first; duplicates on the same day are allowed.
type CheckInService struct {
	clock clock.Clock
	idGen id.Generator
	store checkinout.Store
	loc   *time.Location
}

func NewCheckInService(clock clock.Clock, idGen id.Generator, store checkinout.Store, loc *time.Location) *CheckInService {
	if loc == nil {
		loc = time.Local
	}
	return &CheckInService{clock: clock, idGen: idGen, store: store, loc: loc}
}

func (s *CheckInService) Save(ctx context.Context, c domain.CheckIn) domain.CheckIn {
	c.ID = s.idGen.New(domain.IDPrefix)
	c.Timestamp = s.clock.Now()
	if c.ThoughtTags == nil {
		c.ThoughtTags = []string{}
	}
	checkIns := append([]domain.CheckIn{c}, s.store.List(ctx)...)
	s.store.Replace(ctx, checkIns)
	return c
}

func (s *CheckInService) List(ctx context.Context) []domain.CheckIn {
	return s.store.List(ctx)
}

func (s *CheckInService) Delete(ctx context.Context, id string) error {
	checkIns := s.store.List(ctx)
	kept := make([]domain.CheckIn, 0, len(checkIns))
	for _, c := range checkIns {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(checkIns) {
		return apperrors.ErrNotFound
	}
	s.store.Replace(ctx, kept)
	return nil
}

func (s *CheckInService) ForDateRange(ctx context.Context, start, end time.Time) []domain.CheckIn {
	return domain.FilterRange(s.store.List(ctx), start, end)
}

func (s *CheckInService) ForLastDays(ctx context.Context, days int) []domain.CheckIn {
	end := s.clock.Now()
	start := end.AddDate(0, 0, -days)
	return domain.FilterRange(s.store.List(ctx), start, end)
}

// Today returns the first check-in whose calendar date, in the service
// location, matches the current date. The list is newest first, so the
// first match is the most recent one.
func (s *CheckInService) Today(ctx context.Context) (domain.CheckIn, bool) {
	now := s.clock.Now()
	for _, c := range s.store.List(ctx) {
		if domain.SameLocalDay(c.Timestamp, now, s.loc) {
			return c, true
		}
	}
	return domain.CheckIn{}, false
}

package service

import (
	"context"

	"inward/internal/modules/journey/domain"
	journeyout "inward/internal/modules/journey/port/out"
	"inward/internal/platform/clock"
	"inward/internal/platform/id"
)

const maxHistory = 10

// JourneyService owns the persistence choreography around a journey's
// lifecycle: creation, current-slot saves, and archival into the bounded
// history.
type JourneyService struct {
	clock   clock.Clock
	idGen   id.Generator
	current journeyout.CurrentStore
	history journeyout.HistoryStore
	notes   journeyout.NoteStore
}

func NewJourneyService(clock clock.Clock, idGen id.Generator, current journeyout.CurrentStore, history journeyout.HistoryStore, notes journeyout.NoteStore) *JourneyService {
	return &JourneyService{clock: clock, idGen: idGen, current: current, history: history, notes: notes}
}

func (s *JourneyService) NewJourney() domain.Journey {
	return domain.New(s.idGen.New(domain.IDPrefix), s.clock.Now())
}

// SaveCurrent stamps the last-updated time and overwrites the current slot.
// Returns the stamped copy so callers keep their in-memory state aligned
// with what was persisted.
func (s *JourneyService) SaveCurrent(ctx context.Context, j domain.Journey) domain.Journey {
	j.LastUpdatedAt = s.clock.Now()
	s.current.Save(ctx, j)
	return j
}

func (s *JourneyService) LoadCurrent(ctx context.Context) (domain.Journey, bool) {
	return s.current.Load(ctx)
}

// Archive moves a journey into history as one logical unit: stamp the copy's
// completion time if absent, merge it at the head of the recency-sorted
// history, truncate to the bound, write the history back, then clear the
// current slot. The note render is best effort and cannot fail archival.
func (s *JourneyService) Archive(ctx context.Context, j domain.Journey) (domain.Journey, string) {
	if j.CompletedAt == nil {
		at := s.clock.Now()
		j.CompletedAt = &at
	}

	history := s.history.List(ctx)
	domain.SortByRecency(history)
	history = append([]domain.Journey{j}, history...)
	if len(history) > maxHistory {
		history = history[:maxHistory]
	}
	s.history.Replace(ctx, history)
	s.current.Clear(ctx)

	notePath := ""
	if s.notes != nil {
		notePath = s.notes.Save(ctx, j, domain.IdentifyThemes(j))
	}
	return j, notePath
}

func (s *JourneyService) History(ctx context.Context) []domain.Journey {
	return s.history.List(ctx)
}

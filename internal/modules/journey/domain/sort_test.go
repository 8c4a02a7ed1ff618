package domain_test

import (
	"testing"
	"time"

	"inward/internal/modules/journey/domain"
)

func journeyAt(id string, completed time.Time) domain.Journey {
	j := domain.New(id, completed.Add(-time.Hour))
	j.LastUpdatedAt = completed.Add(-time.Minute)
	j.CompletedAt = &completed
	return j
}

func TestSortByRecencyPrefersCompletionDate(t *testing.T) {
	t.Parallel()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	older := journeyAt("journey-100-a", base)
	newer := journeyAt("journey-50-b", base.Add(time.Hour))

	history := []domain.Journey{older, newer}
	domain.SortByRecency(history)
	if history[0].ID != "journey-50-b" {
		t.Fatalf("later completion must sort first regardless of id timestamp")
	}
}

func TestSortByRecencyBreaksTiesByEmbeddedIDTimestampThenRawID(t *testing.T) {
	t.Parallel()
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	a := journeyAt("journey-1000-aaa", at)
	b := journeyAt("journey-2000-aaa", at)
	history := []domain.Journey{a, b}
	domain.SortByRecency(history)
	if history[0].ID != "journey-2000-aaa" {
		t.Fatalf("larger embedded timestamp must win the tie, got %s first", history[0].ID)
	}

	c := journeyAt("journey-3000-aaa", at)
	d := journeyAt("journey-3000-zzz", at)
	history = []domain.Journey{c, d}
	domain.SortByRecency(history)
	if history[0].ID != "journey-3000-zzz" {
		t.Fatalf("raw id comparison must decide the final tie, got %s first", history[0].ID)
	}

	// Same input, shuffled: the order must be identical.
	history = []domain.Journey{d, c}
	domain.SortByRecency(history)
	if history[0].ID != "journey-3000-zzz" {
		t.Fatalf("ordering must be deterministic under permutation")
	}
}

func TestSortByRecencyFallsBackToLastUpdatedThenStarted(t *testing.T) {
	t.Parallel()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	inProgress := domain.New("journey-10-a", base)
	inProgress.LastUpdatedAt = base.Add(2 * time.Hour)
	done := journeyAt("journey-20-b", base.Add(time.Hour))

	history := []domain.Journey{done, inProgress}
	domain.SortByRecency(history)
	if history[0].ID != "journey-10-a" {
		t.Fatalf("newer lastUpdatedAt must outrank an older completedAt")
	}
}

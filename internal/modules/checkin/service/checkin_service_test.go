package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"inward/internal/modules/checkin/domain"
	"inward/internal/modules/checkin/service"
	apperrors "inward/internal/platform/errors"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type fakeID struct {
	n int
}

func (f *fakeID) New(prefix string) string {
	f.n++
	return fmt.Sprintf("%s-%d", prefix, f.n)
}

type memoryStore struct {
	checkIns []domain.CheckIn
}

func (m *memoryStore) List(_ context.Context) []domain.CheckIn {
	return append([]domain.CheckIn{}, m.checkIns...)
}

func (m *memoryStore) Replace(_ context.Context, checkIns []domain.CheckIn) {
	m.checkIns = checkIns
}

func newService(start time.Time) (*service.CheckInService, *fakeClock, *memoryStore) {
	clk := &fakeClock{now: start}
	store := &memoryStore{}
	return service.NewCheckInService(clk, &fakeID{}, store, time.UTC), clk, store
}

func TestSavePrependsNewestFirst(t *testing.T) {
	t.Parallel()
	svc, clk, _ := newService(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	first := svc.Save(ctx, domain.CheckIn{Emotion: domain.Emotion{Primary: "anxious", Intensity: 6}})
	clk.now = clk.now.Add(time.Hour)
	second := svc.Save(ctx, domain.CheckIn{Emotion: domain.Emotion{Primary: "calm", Intensity: 3}})

	list := svc.List(ctx)
	if len(list) != 2 {
		t.Fatalf("expected 2 check-ins, got %d", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("list must be newest first, got %s then %s", list[0].ID, list[1].ID)
	}
	if list[0].ThoughtTags == nil {
		t.Fatalf("thought tags must be normalized to an empty slice")
	}
}

func TestSaveAllowsSameDayDuplicates(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	svc.Save(ctx, domain.CheckIn{Emotion: domain.Emotion{Primary: "anxious", Intensity: 6}})
	svc.Save(ctx, domain.CheckIn{Emotion: domain.Emotion{Primary: "anxious", Intensity: 6}})
	if got := len(svc.List(ctx)); got != 2 {
		t.Fatalf("same-day duplicates must both be kept, got %d", got)
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	kept := svc.Save(ctx, domain.CheckIn{Emotion: domain.Emotion{Primary: "calm"}})
	doomed := svc.Save(ctx, domain.CheckIn{Emotion: domain.Emotion{Primary: "angry"}})

	if err := svc.Delete(ctx, doomed.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list := svc.List(ctx)
	if len(list) != 1 || list[0].ID != kept.ID {
		t.Fatalf("only the deleted entry may disappear, got %v", list)
	}
	if err := svc.Delete(ctx, doomed.ID); err != apperrors.ErrNotFound {
		t.Fatalf("deleting a missing id must return ErrNotFound, got %v", err)
	}
}

func TestForDateRangeIsInclusive(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	svc, clk, _ := newService(start)
	ctx := context.Background()

	var ids []string
	for day := 0; day < 5; day++ {
		clk.now = start.AddDate(0, 0, day)
		c := svc.Save(ctx, domain.CheckIn{Emotion: domain.Emotion{Primary: "calm"}})
		ids = append(ids, c.ID)
	}

	// Bounds land exactly on the day-1 and day-3 timestamps.
	got := svc.ForDateRange(ctx, start.AddDate(0, 0, 1), start.AddDate(0, 0, 3))
	if len(got) != 3 {
		t.Fatalf("inclusive range must keep both boundary entries, got %d", len(got))
	}
	for _, c := range got {
		if c.ID == ids[0] || c.ID == ids[4] {
			t.Fatalf("entry %s is outside the range", c.ID)
		}
	}
}

func TestForLastDays(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, clk, _ := newService(start)
	ctx := context.Background()

	old := svc.Save(ctx, domain.CheckIn{Emotion: domain.Emotion{Primary: "tired"}})
	clk.now = start.AddDate(0, 0, 10)
	recent := svc.Save(ctx, domain.CheckIn{Emotion: domain.Emotion{Primary: "calm"}})

	got := svc.ForLastDays(ctx, 7)
	if len(got) != 1 || got[0].ID != recent.ID {
		t.Fatalf("only the recent entry falls in the last 7 days, got %v", got)
	}
	_ = old
}

func TestTodayUsesLocalCalendarDate(t *testing.T) {
	t.Parallel()
	// UTC+13: 23:30 UTC on March 1st is already March 2nd locally.
	loc := time.FixedZone("UTC+13", 13*60*60)
	clk := &fakeClock{now: time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)}
	store := &memoryStore{}
	svc := service.NewCheckInService(clk, &fakeID{}, store, loc)
	ctx := context.Background()

	c := svc.Save(ctx, domain.CheckIn{Emotion: domain.Emotion{Primary: "calm"}})

	if got, ok := svc.Today(ctx); !ok || got.ID != c.ID {
		t.Fatalf("check-in saved now must count as today")
	}

	// 01:00 UTC next day is still March 2nd in UTC+13.
	clk.now = time.Date(2024, 3, 2, 1, 0, 0, 0, time.UTC)
	if _, ok := svc.Today(ctx); !ok {
		t.Fatalf("same local day must still match")
	}

	// A full local day later there is no check-in for today.
	clk.now = time.Date(2024, 3, 3, 1, 0, 0, 0, time.UTC)
	if _, ok := svc.Today(ctx); ok {
		t.Fatalf("yesterday's check-in must not count as today")
	}
}

func TestTodayReturnsMostRecentMatch(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	svc, clk, _ := newService(start)
	ctx := context.Background()

	svc.Save(ctx, domain.CheckIn{Emotion: domain.Emotion{Primary: "anxious"}})
	clk.now = start.Add(6 * time.Hour)
	evening := svc.Save(ctx, domain.CheckIn{Emotion: domain.Emotion{Primary: "calm"}})

	got, ok := svc.Today(ctx)
	if !ok || got.ID != evening.ID {
		t.Fatalf("the newest same-day entry wins, got %v", got.ID)
	}
}

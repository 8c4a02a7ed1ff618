package service_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	profileout "inward/internal/modules/profile/adapter/out"
	"inward/internal/modules/profile/domain"
	"inward/internal/modules/profile/service"
	apperrors "inward/internal/platform/errors"
	"inward/internal/platform/kv"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func newService(t *testing.T) (*service.ProfileService, *fakeClock) {
	t.Helper()
	clk := &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	store := profileout.NewKVProfileStore(kv.NewFileStore(t.TempDir(), zap.NewNop()))
	return service.NewProfileService(clk, store), clk
}

func TestPreferencesDefaultUntilSaved(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	got := svc.Preferences(ctx)
	want := domain.Preferences{
		Goal:         "understand-moods",
		ReminderTime: "09:00",
		Tone:         "gentle",
		Depth:        "quick",
		Privacy:      "local",
	}
	if got != want {
		t.Fatalf("defaults mismatch: %+v", got)
	}

	got.Tone = "direct"
	got.Depth = "deep"
	if err := svc.SavePreferences(ctx, got); err != nil {
		t.Fatalf("save preferences: %v", err)
	}
	if reloaded := svc.Preferences(ctx); reloaded != got {
		t.Fatalf("saved preferences must round-trip, got %+v", reloaded)
	}
}

func TestValues(t *testing.T) {
	t.Parallel()
	svc, clk := newService(t)
	ctx := context.Background()

	if _, ok := svc.Values(ctx); ok {
		t.Fatalf("no values before the card sort")
	}
	if _, err := svc.SaveValues(ctx, nil); err != apperrors.ErrInvalidInput {
		t.Fatalf("empty card sort must be rejected, got %v", err)
	}

	v, err := svc.SaveValues(ctx, []string{"honesty", "growth", "connection"})
	if err != nil {
		t.Fatalf("save values: %v", err)
	}
	if !v.SortedAt.Equal(clk.now) {
		t.Fatalf("sortedAt must be stamped from the clock")
	}
	got, ok := svc.Values(ctx)
	if !ok || len(got.TopValues) != 3 || got.TopValues[0] != "honesty" {
		t.Fatalf("values must round-trip, got %+v", got)
	}
}

func TestProgressTracks(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	start := svc.Progress(ctx)
	if start.Emotion.Level != 1 || start.BlindSpots.Level != 1 {
		t.Fatalf("all tracks start at level 1, got %+v", start)
	}

	p, err := svc.RecordLesson(ctx, "emotion")
	if err != nil {
		t.Fatalf("record lesson: %v", err)
	}
	if p.Emotion.LessonsCompleted != 1 {
		t.Fatalf("lesson count must increment, got %+v", p.Emotion)
	}
	p, err = svc.RecordPractice(ctx, "blind-spots")
	if err != nil {
		t.Fatalf("record practice: %v", err)
	}
	if p.BlindSpots.PracticesCompleted != 1 {
		t.Fatalf("practice count must increment, got %+v", p.BlindSpots)
	}
	if p.Emotion.LessonsCompleted != 1 {
		t.Fatalf("other tracks must be preserved across saves")
	}

	if _, err := svc.RecordLesson(ctx, "astral"); err != apperrors.ErrInvalidInput {
		t.Fatalf("unknown track must be rejected, got %v", err)
	}
}

func TestBaselineStampsCaptureTime(t *testing.T) {
	t.Parallel()
	svc, clk := newService(t)
	ctx := context.Background()

	if _, ok := svc.Baseline(ctx); ok {
		t.Fatalf("no baseline before onboarding")
	}
	b, err := svc.SaveBaseline(ctx, domain.BaselineSnapshot{
		CurrentMood:        "anxious",
		WhatMatters:        []string{"family", "health"},
		SelfAwarenessLevel: 3,
	})
	if err != nil {
		t.Fatalf("save baseline: %v", err)
	}
	if !b.CapturedAt.Equal(clk.now) {
		t.Fatalf("capturedAt must come from the clock")
	}
	got, ok := svc.Baseline(ctx)
	if !ok || got.CurrentMood != "anxious" {
		t.Fatalf("baseline must round-trip, got %+v", got)
	}
}

func TestOnboardingFlag(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	if svc.OnboardingCompleted(ctx) {
		t.Fatalf("onboarding starts incomplete")
	}
	if err := svc.CompleteOnboarding(ctx); err != nil {
		t.Fatalf("complete onboarding: %v", err)
	}
	if !svc.OnboardingCompleted(ctx) {
		t.Fatalf("flag must persist")
	}
}

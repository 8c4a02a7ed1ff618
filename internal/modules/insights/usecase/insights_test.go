package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	checkinout "inward/internal/modules/checkin/adapter/out"
	checkindto "inward/internal/modules/checkin/dto"
	checkinservice "inward/internal/modules/checkin/service"
	checkinin "inward/internal/modules/checkin/port/in"
	checkinusecase "inward/internal/modules/checkin/usecase"
	insightsout "inward/internal/modules/insights/adapter/out"
	insightsin "inward/internal/modules/insights/port/in"
	"inward/internal/modules/insights/usecase"
	journeyout "inward/internal/modules/journey/adapter/out"
	journeydto "inward/internal/modules/journey/dto"
	journeyservice "inward/internal/modules/journey/service"
	journeyusecase "inward/internal/modules/journey/usecase"
	profileout "inward/internal/modules/profile/adapter/out"
	profileservice "inward/internal/modules/profile/service"
	apperrors "inward/internal/platform/errors"
	"inward/internal/platform/kv"
	"inward/internal/platform/timer"
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
	return fmt.Sprintf("%s-%d-seq%03d", prefix, f.n*1000, f.n)
}

type fixture struct {
	clock    *fakeClock
	checkUC  checkinin.Usecase
	insights insightsin.Usecase
	journeys *journeyusecase.Controller
	profile  *profileservice.ProfileService
}

func newFixture(t *testing.T) (*fixture, insightsin.Usecase) {
	t.Helper()
	clk := &fakeClock{now: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)}
	idGen := &fakeID{}
	store := kv.NewFileStore(t.TempDir(), zap.NewNop())

	checkSvc := checkinservice.NewCheckInService(clk, idGen, checkinout.NewKVCheckInStore(store), time.UTC)
	checkUC := checkinusecase.NewInteractor(checkSvc, nil, zap.NewNop())

	profileSvc := profileservice.NewProfileService(clk, profileout.NewKVProfileStore(store))

	journeySvc := journeyservice.NewJourneyService(
		clk, idGen,
		journeyout.NewKVCurrentStore(store),
		journeyout.NewKVHistoryStore(store),
		nil,
	)
	journeys := journeyusecase.NewController(journeySvc, clk, timer.AfterFuncScheduler{})

	insights := usecase.NewInteractor(
		clk, idGen,
		checkUC,
		profileSvc,
		journeys,
		insightsout.NewKVPatternStore(store),
		insightsout.NewKVWeeklyStore(store),
	)
	f := &fixture{clock: clk, checkUC: checkUC, insights: insights, journeys: journeys, profile: profileSvc}
	return f, insights
}

func TestReportAggregatesWindow(t *testing.T) {
	t.Parallel()
	f, insights := newFixture(t)
	ctx := context.Background()

	checkUC := f.checkUC
	entries := []checkindto.CheckInInput{
		{Primary: "anxious", BehaviourAction: "doomscroll", Value: "honesty", ThoughtTags: []string{"catastrophising"}},
		{Primary: "anxious", BehaviourAction: "doomscroll", Value: "success", ThoughtTags: []string{"catastrophising"}},
		{Primary: "calm", BehaviourAction: "read", Value: "honesty"},
	}
	for _, e := range entries {
		if _, err := checkUC.Save(ctx, e); err != nil {
			t.Fatalf("save check-in: %v", err)
		}
		f.clock.now = f.clock.now.Add(time.Hour)
	}
	if _, err := f.profile.SaveValues(ctx, []string{"honesty"}); err != nil {
		t.Fatalf("save values: %v", err)
	}

	report, err := insights.Report(ctx, 7)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report.CheckInCount != 3 {
		t.Fatalf("expected 3 check-ins in window, got %d", report.CheckInCount)
	}
	if report.Emotions[0].Item != "anxious" || report.Emotions[0].Count != 2 {
		t.Fatalf("unexpected emotions: %v", report.Emotions)
	}
	if report.AlignmentScore != 67 {
		t.Fatalf("2/3 aligned rounds to 67, got %d", report.AlignmentScore)
	}
}

func TestDetectPersistsSnapshotAndMarkTested(t *testing.T) {
	t.Parallel()
	f, insights := newFixture(t)
	ctx := context.Background()

	checkUC := f.checkUC
	for i := 0; i < 3; i++ {
		if _, err := checkUC.Save(ctx, checkindto.CheckInInput{Primary: "anxious", BehaviourAction: "doomscroll"}); err != nil {
			t.Fatalf("save check-in: %v", err)
		}
	}

	detected, err := insights.DetectPatterns(ctx)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if len(detected) != 1 || detected[0].Frequency != 3 {
		t.Fatalf("expected one pattern with frequency 3, got %v", detected)
	}

	stored, err := insights.Patterns(ctx)
	if err != nil {
		t.Fatalf("patterns: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != detected[0].ID {
		t.Fatalf("snapshot must be persisted, got %v", stored)
	}

	if err := insights.MarkPatternTested(ctx, detected[0].ID); err != nil {
		t.Fatalf("mark tested: %v", err)
	}
	stored, _ = insights.Patterns(ctx)
	if !stored[0].Tested {
		t.Fatalf("tested flag must persist")
	}
	if err := insights.MarkPatternTested(ctx, "pattern-unknown"); err != apperrors.ErrNotFound {
		t.Fatalf("unknown id must return ErrNotFound, got %v", err)
	}
}

func TestBuildWeeklyBoundsHistory(t *testing.T) {
	t.Parallel()
	f, insights := newFixture(t)
	ctx := context.Background()

	checkUC := f.checkUC
	if _, err := checkUC.Save(ctx, checkindto.CheckInInput{Primary: "calm", BehaviourAction: "read"}); err != nil {
		t.Fatalf("save check-in: %v", err)
	}

	for week := 0; week < 13; week++ {
		if _, err := insights.BuildWeekly(ctx); err != nil {
			t.Fatalf("build weekly %d: %v", week, err)
		}
		f.clock.now = f.clock.now.AddDate(0, 0, 7)
	}

	history, err := insights.WeeklyHistory(ctx)
	if err != nil {
		t.Fatalf("weekly history: %v", err)
	}
	if len(history) != 12 {
		t.Fatalf("weekly history must stay bounded at 12, got %d", len(history))
	}
	if !history[0].WeekStarting.After(history[11].WeekStarting) {
		t.Fatalf("newest summary must be first")
	}
}

func TestWeeklyIncludesBlindSpotsFromUntestedPatterns(t *testing.T) {
	t.Parallel()
	f, insights := newFixture(t)
	ctx := context.Background()

	checkUC := f.checkUC
	for i := 0; i < 3; i++ {
		if _, err := checkUC.Save(ctx, checkindto.CheckInInput{Primary: "anxious", BehaviourAction: "doomscroll"}); err != nil {
			t.Fatalf("save check-in: %v", err)
		}
	}
	if _, err := insights.DetectPatterns(ctx); err != nil {
		t.Fatalf("detect: %v", err)
	}

	weekly, err := insights.BuildWeekly(ctx)
	if err != nil {
		t.Fatalf("build weekly: %v", err)
	}
	if len(weekly.BlindSpotSuggestions) != 1 {
		t.Fatalf("expected one blind-spot suggestion, got %v", weekly.BlindSpotSuggestions)
	}
	if weekly.BlindSpotSuggestions[0] != "Test this hypothesis: When you feel anxious → you doomscroll" {
		t.Fatalf("unexpected suggestion: %q", weekly.BlindSpotSuggestions[0])
	}
}

func TestNarrativeRequiresCurrentJourney(t *testing.T) {
	t.Parallel()
	f, insights := newFixture(t)
	ctx := context.Background()

	if _, err := insights.Narrative(ctx); err != apperrors.ErrNoCurrentJourney {
		t.Fatalf("expected ErrNoCurrentJourney, got %v", err)
	}

	if _, err := f.journeys.StartNew(ctx); err != nil {
		t.Fatalf("start journey: %v", err)
	}
	updates := []journeydto.UpdateInput{
		{Rule: "rule1", Field: "trigger", Value: "My boss", Slot: -1},
		{Rule: "rule1", Field: "mirror", Value: "I do this sometimes too", Slot: -1},
		{Rule: "rule2", Field: "conclusion", Value: "This is about needing control", Slot: -1},
		{Rule: "rule3", Field: "integration", Value: "I am driven AND I can rest", Slot: -1},
	}
	for _, u := range updates {
		if err := f.journeys.UpdateResponse(ctx, u); err != nil {
			t.Fatalf("update %s.%s: %v", u.Rule, u.Field, err)
		}
	}

	narrative, err := insights.Narrative(ctx)
	if err != nil {
		t.Fatalf("narrative: %v", err)
	}
	if narrative.Rule1 == nil || narrative.Rule2 == nil || narrative.Rule3 == nil {
		t.Fatalf("answered rules must have insights: %+v", narrative)
	}
	if narrative.OverallTheme == "" {
		t.Fatalf("three answered rules must produce the overall theme")
	}
}

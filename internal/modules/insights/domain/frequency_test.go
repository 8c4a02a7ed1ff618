package domain

import (
	"testing"

	checkin "inward/internal/modules/checkin/domain"
)

func withEmotion(primary string) checkin.CheckIn {
	return checkin.CheckIn{Emotion: checkin.Emotion{Primary: primary}}
}

func TestEmotionFrequencyOrdersByCountDescending(t *testing.T) {
	t.Parallel()
	checkIns := []checkin.CheckIn{
		withEmotion("calm"),
		withEmotion("anxious"),
		withEmotion("anxious"),
		withEmotion("calm"),
		withEmotion("anxious"),
	}
	got := EmotionFrequency(checkIns)
	want := []FrequencyCount{{Item: "anxious", Count: 3}, {Item: "calm", Count: 2}}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: want %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestFrequencyTiesKeepFirstOccurrenceOrder(t *testing.T) {
	t.Parallel()
	checkIns := []checkin.CheckIn{
		withEmotion("angry"),
		withEmotion("calm"),
		withEmotion("anxious"),
		withEmotion("calm"),
		withEmotion("angry"),
		withEmotion("anxious"),
	}
	got := EmotionFrequency(checkIns)
	if got[0].Item != "angry" || got[1].Item != "calm" || got[2].Item != "anxious" {
		t.Fatalf("equal counts must keep first-occurrence order, got %v", got)
	}
}

func TestThoughtTagFrequencyCountsEveryTag(t *testing.T) {
	t.Parallel()
	checkIns := []checkin.CheckIn{
		{ThoughtTags: []string{"catastrophising", "mind-reading"}},
		{ThoughtTags: []string{"catastrophising"}},
		{ThoughtTags: nil},
	}
	got := ThoughtTagFrequency(checkIns)
	if len(got) != 2 || got[0] != (FrequencyCount{Item: "catastrophising", Count: 2}) {
		t.Fatalf("unexpected tag table: %v", got)
	}
}

func TestBehaviourFrequencySkipsEmptyActions(t *testing.T) {
	t.Parallel()
	checkIns := []checkin.CheckIn{
		{BehaviourAction: "doomscroll"},
		{BehaviourAction: ""},
		{BehaviourAction: "doomscroll"},
	}
	got := BehaviourFrequency(checkIns)
	if len(got) != 1 || got[0].Count != 2 {
		t.Fatalf("empty actions must not be counted, got %v", got)
	}
}

func TestValueAlignmentScore(t *testing.T) {
	t.Parallel()
	top := []string{"honesty", "growth"}
	aligned := checkin.CheckIn{Value: "honesty"}
	other := checkin.CheckIn{Value: "success"}

	if got := ValueAlignmentScore(nil, top); got != 0 {
		t.Fatalf("no check-ins must score 0, got %d", got)
	}
	if got := ValueAlignmentScore([]checkin.CheckIn{aligned}, nil); got != 0 {
		t.Fatalf("no sorted values must score 0, got %d", got)
	}
	if got := ValueAlignmentScore([]checkin.CheckIn{aligned, aligned, other}, top); got != 67 {
		t.Fatalf("2/3 aligned must round to 67, got %d", got)
	}
	// 1/8 = 12.5 sits exactly on the boundary and rounds up.
	eighth := []checkin.CheckIn{aligned, other, other, other, other, other, other, other}
	if got := ValueAlignmentScore(eighth, top); got != 13 {
		t.Fatalf("12.5 must round half up to 13, got %d", got)
	}
}

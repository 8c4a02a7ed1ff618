package domain

import (
	"strings"
	"testing"

	journey "inward/internal/modules/journey/domain"
)

func TestNarrativeSkipsUnansweredRules(t *testing.T) {
	t.Parallel()
	got := GenerateNarrative(journey.EmptyResponses())
	if got.Rule1 != nil || got.Rule2 != nil || got.Rule3 != nil || got.Rule4 != nil || got.Rule5 != nil {
		t.Fatalf("empty responses must yield no rule insights: %+v", got)
	}
	if got.OverallTheme != "" {
		t.Fatalf("no overall theme without content")
	}
}

func TestRule1UsesPresetTemplate(t *testing.T) {
	t.Parallel()
	r := journey.EmptyResponses()
	r.Rule1.Trigger = "My colleague"
	r.Rule1.Trait = "Arrogance"
	r.Rule1.Mirror = "I suppress this in myself"

	got := GenerateNarrative(r)
	if got.Rule1 == nil {
		t.Fatalf("rule 1 insight missing")
	}
	if !strings.Contains(got.Rule1.Insight, "actively push down") {
		t.Fatalf("preset template not applied: %q", got.Rule1.Insight)
	}
	if !strings.Contains(got.Rule1.ReflectionQuestion, `"arrogance"`) {
		t.Fatalf("reflection question must quote the lowercased trait: %q", got.Rule1.ReflectionQuestion)
	}
}

func TestRule1FallsBackToGenericText(t *testing.T) {
	t.Parallel()
	r := journey.EmptyResponses()
	r.Rule1.Trigger = "My Neighbour"
	r.Rule1.Trait = "Loudness"
	r.Rule1.Mirror = "something unscripted"

	got := GenerateNarrative(r)
	if got.Rule1 == nil {
		t.Fatalf("rule 1 insight missing")
	}
	if !strings.Contains(got.Rule1.Insight, "my neighbour") {
		t.Fatalf("fallback must embed the lowercased trigger: %q", got.Rule1.Insight)
	}
	if !strings.Contains(got.Rule1.Advice, "What does this person remind me of in myself?") {
		t.Fatalf("fallback advice missing: %q", got.Rule1.Advice)
	}
}

func TestRule1NeedsBothTriggerAndMirror(t *testing.T) {
	t.Parallel()
	r := journey.EmptyResponses()
	r.Rule1.Trigger = "My colleague"

	if got := GenerateNarrative(r); got.Rule1 != nil {
		t.Fatalf("trigger without mirror must not produce an insight")
	}
}

func TestRule2ReflectionStripsConclusionPrefix(t *testing.T) {
	t.Parallel()
	r := journey.EmptyResponses()
	r.Rule2.Event = "Being left out"
	r.Rule2.Conclusion = "This is about needing belonging"

	got := GenerateNarrative(r)
	if got.Rule2 == nil {
		t.Fatalf("rule 2 insight missing")
	}
	if !strings.Contains(got.Rule2.ReflectionQuestion, "your need for needing belonging") {
		t.Fatalf("unexpected reflection question: %q", got.Rule2.ReflectionQuestion)
	}
	if !strings.Contains(got.Rule2.Insight, "to belong, to be included") {
		t.Fatalf("preset template not applied: %q", got.Rule2.Insight)
	}
}

func TestRule4AdvicePrefersReleaseOverAdoptOverKeep(t *testing.T) {
	t.Parallel()
	r := journey.EmptyResponses()
	r.Rule4.Values[0] = "Never show weakness"
	r.Rule4.Decisions[0] = "Keep as my own"
	r.Rule4.Values[1] = "Family first"
	r.Rule4.Decisions[1] = "Adopt consciously"
	r.Rule4.Values[2] = "Always be productive"
	r.Rule4.Decisions[2] = "Let it go"

	got := GenerateNarrative(r)
	if got.Rule4 == nil {
		t.Fatalf("rule 4 insight missing")
	}
	if !strings.Contains(got.Rule4.Advice, "thank you and goodbye") {
		t.Fatalf("release advice must win when anything is released: %q", got.Rule4.Advice)
	}
	if !strings.Contains(got.Rule4.Insight, "claimed 1 value as authentically yours") {
		t.Fatalf("kept count missing: %q", got.Rule4.Insight)
	}
	if !strings.Contains(got.Rule4.Insight, "adopted 1 inherited value") {
		t.Fatalf("adopted count missing: %q", got.Rule4.Insight)
	}
	if !strings.Contains(got.Rule4.Insight, "release 1 value") {
		t.Fatalf("released count missing: %q", got.Rule4.Insight)
	}

	r.Rule4.Decisions[2] = "Adopt consciously"
	got = GenerateNarrative(r)
	if !strings.Contains(got.Rule4.Advice, "Reframe this value in your own language") {
		t.Fatalf("adopt advice must win without releases: %q", got.Rule4.Advice)
	}

	r.Rule4.Decisions[1] = "Keep as my own"
	r.Rule4.Decisions[2] = "Keep as my own"
	got = GenerateNarrative(r)
	if !strings.Contains(got.Rule4.Advice, "Celebrate this clarity") {
		t.Fatalf("keep advice is the default: %q", got.Rule4.Advice)
	}
}

func TestOverallThemeNeedsThreeAnsweredRules(t *testing.T) {
	t.Parallel()
	r := journey.EmptyResponses()
	r.Rule1.Trigger = "My colleague"
	r.Rule1.Mirror = "I do this sometimes too"
	r.Rule2.Conclusion = "This is about needing control"

	got := GenerateNarrative(r)
	if got.OverallTheme != "" {
		t.Fatalf("two answered rules must not produce a theme")
	}

	r.Rule3.Integration = "I am kind AND I have limits"
	got = GenerateNarrative(r)
	if got.OverallTheme == "" {
		t.Fatalf("three answered rules must produce the overall theme")
	}
}

func TestRule5UsesDefaultsWithEventQuestion(t *testing.T) {
	t.Parallel()
	r := journey.EmptyResponses()
	r.Rule5.Event = "Plans Got Cancelled"
	r.Rule5.Neutral = "The plans changed"

	got := GenerateNarrative(r)
	if got.Rule5 == nil {
		t.Fatalf("rule 5 insight missing")
	}
	if !strings.Contains(got.Rule5.Insight, "separating what happened from the story") {
		t.Fatalf("default insight missing: %q", got.Rule5.Insight)
	}
	if !strings.Contains(got.Rule5.ReflectionQuestion, `"plans got cancelled"`) {
		t.Fatalf("question must quote the lowercased event: %q", got.Rule5.ReflectionQuestion)
	}
}

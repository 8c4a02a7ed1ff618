package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"inward/internal/modules/journey/domain"
)

func TestNewJourneyDefaults(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	j := domain.New("journey-1704067200000-4fzzzxj", now)

	if j.Version != domain.SchemaVersion {
		t.Fatalf("expected schema version %d, got %d", domain.SchemaVersion, j.Version)
	}
	if !j.StartedAt.Equal(now) || !j.LastUpdatedAt.Equal(now) {
		t.Fatalf("timestamps must both equal creation time")
	}
	if j.CompletedAt != nil {
		t.Fatalf("new journey must not be completed")
	}
	if len(j.CompletedRules) != 0 {
		t.Fatalf("new journey must have no completed rules")
	}
	if j.Responses.Rule1.Trigger != "" || j.Responses.Rule4.Values[4] != "" {
		t.Fatalf("responses must start empty")
	}
}

func TestMarkRuleIsIdempotentAndStampsCompletionOnFifth(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	j := domain.New("journey-1-a", now)

	j.MarkRule(3, now)
	j.MarkRule(3, now.Add(time.Minute))
	if got := len(j.CompletedRules); got != 1 {
		t.Fatalf("rule 3 must appear exactly once, got %d entries", got)
	}
	if j.CompletedAt != nil {
		t.Fatalf("completion must not be stamped before all rules are done")
	}

	fifth := now.Add(time.Hour)
	j.MarkRule(1, now)
	j.MarkRule(2, now)
	j.MarkRule(4, now)
	j.MarkRule(5, fifth)
	if j.CompletedAt == nil || !j.CompletedAt.Equal(fifth) {
		t.Fatalf("completion must be stamped at the fifth mark, got %v", j.CompletedAt)
	}
	if !j.IsComplete() {
		t.Fatalf("journey with all rules must be complete")
	}
}

func TestSetFieldRoutesScalarsAndSlots(t *testing.T) {
	t.Parallel()
	r := domain.EmptyResponses()

	if err := r.SetField("rule1", "mirror", "I do this sometimes too", -1); err != nil {
		t.Fatalf("scalar update: %v", err)
	}
	if r.Rule1.Mirror != "I do this sometimes too" {
		t.Fatalf("rule1.mirror not set")
	}
	if err := r.SetField("rule4", "values", "Always work hard", 2); err != nil {
		t.Fatalf("slot update: %v", err)
	}
	if r.Rule4.Values[2] != "Always work hard" {
		t.Fatalf("rule4.values[2] not set")
	}
	if err := r.SetField("rule4", "values", "x", 5); err == nil {
		t.Fatalf("slot 5 must be rejected")
	}
	if err := r.SetField("rule4", "values", "x", -1); err == nil {
		t.Fatalf("negative slot on an array field must be rejected")
	}
	if err := r.SetField("rule6", "anything", "x", -1); err == nil {
		t.Fatalf("unknown rule must be rejected")
	}
	if err := r.SetField("rule2", "nope", "x", -1); err == nil {
		t.Fatalf("unknown field must be rejected")
	}
}

func TestResetKeepsIdentity(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	j := domain.New("journey-7-z", start)
	_ = j.Responses.SetField("rule3", "label", "I am organised", -1)
	j.MarkRule(1, start)

	later := start.Add(48 * time.Hour)
	j.Reset(later)
	if j.ID != "journey-7-z" {
		t.Fatalf("reset must keep the journey id")
	}
	if j.Responses.Rule3.Label != "" || len(j.CompletedRules) != 0 || j.CompletedAt != nil {
		t.Fatalf("reset must clear answers and completion state")
	}
	if !j.StartedAt.Equal(later) {
		t.Fatalf("reset must refresh the start time")
	}
}

func TestJourneyJSONShape(t *testing.T) {
	t.Parallel()
	j := domain.New("journey-1704067200000-4fzzzxj", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	payload, err := json.Marshal(j)
	if err != nil {
		t.Fatalf("marshal journey: %v", err)
	}
	decoded := map[string]any{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal journey: %v", err)
	}
	for _, key := range []string{"id", "version", "responses", "completedRules", "startedAt", "lastUpdatedAt", "completedAt"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("journey JSON missing %q", key)
		}
	}
	responses := decoded["responses"].(map[string]any)
	rule4 := responses["rule4"].(map[string]any)
	if got := len(rule4["values"].([]any)); got != 5 {
		t.Fatalf("rule4.values must serialize with 5 slots, got %d", got)
	}
}

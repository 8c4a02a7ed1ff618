package domain_test

import (
	"strings"
	"testing"
	"time"

	"inward/internal/modules/journey/domain"
)

func TestExportTextSkipsEmptySectionsAndKeepsBanners(t *testing.T) {
	t.Parallel()
	j := domain.New("journey-1-a", time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC))
	text := domain.ExportText(j)

	if !strings.Contains(text, "THE 5 RULES") {
		t.Fatalf("header banner missing:\n%s", text)
	}
	if !strings.Contains(text, "integration and individuation") {
		t.Fatalf("footer banner missing:\n%s", text)
	}
	if strings.Contains(text, "RULE 1") || strings.Contains(text, "RULE 5") {
		t.Fatalf("empty sections must be omitted:\n%s", text)
	}
}

func TestExportTextPairsRule4SlotsByIndex(t *testing.T) {
	t.Parallel()
	j := domain.New("journey-1-a", time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC))
	j.Responses.Rule4.Values[0] = "Always work hard"
	j.Responses.Rule4.Sources[0] = "Parent"
	j.Responses.Rule4.Decisions[0] = "Let it go"
	j.Responses.Rule4.Values[3] = "Stay humble"
	j.Responses.Rule4.Sources[3] = "Society"
	j.Responses.Rule4.Decisions[3] = "Keep — it's mine"

	text := domain.ExportText(j)
	if !strings.Contains(text, "Always work hard (Parent) -> Let it go") {
		t.Fatalf("slot 0 pairing missing:\n%s", text)
	}
	if !strings.Contains(text, "Stay humble (Society) -> Keep — it's mine") {
		t.Fatalf("slot 3 pairing missing:\n%s", text)
	}
	if got := strings.Count(text, "->"); got != 2 {
		t.Fatalf("expected exactly 2 value lines, got %d:\n%s", got, text)
	}
}

func TestExportTextIsDeterministic(t *testing.T) {
	t.Parallel()
	j := domain.New("journey-1-a", time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC))
	j.Responses.Rule1 = domain.Rule1{Trigger: "My boss", Trait: "They're controlling", Mirror: "I suppress this in myself", Instance: "At work when stressed"}
	if domain.ExportText(j) != domain.ExportText(j) {
		t.Fatalf("rendering must be deterministic for a given journey")
	}
}

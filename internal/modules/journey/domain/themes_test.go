package domain_test

import (
	"reflect"
	"testing"
	"time"

	"inward/internal/modules/journey/domain"
)

func TestIdentifyThemesFallsBackToPersonalGrowth(t *testing.T) {
	t.Parallel()
	j := domain.New("journey-1-a", time.Now())
	if got := domain.IdentifyThemes(j); !reflect.DeepEqual(got, []string{"Personal Growth"}) {
		t.Fatalf("expected fallback theme, got %v", got)
	}
}

func TestIdentifyThemesMatchesGroupsInFixedOrder(t *testing.T) {
	t.Parallel()
	j := domain.New("journey-1-a", time.Now())
	j.Responses.Rule2.Why2 = "Control means safety to me"
	j.Responses.Rule3.Fear = "I'll appear weak"
	j.Responses.Rule2.Why3 = "I had to earn belonging"

	got := domain.IdentifyThemes(j)
	want := []string{"Control & Safety", "Belonging & Connection", "Strength & Vulnerability"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v in check order, got %v", want, got)
	}
}

func TestIdentifyThemesIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	j := domain.New("journey-1-a", time.Now())
	j.Responses.Rule1.Mirror = "I'm SCARED I'm INVISIBLE"
	got := domain.IdentifyThemes(j)
	if !reflect.DeepEqual(got, []string{"Being Seen & Mattering"}) {
		t.Fatalf("expected case-insensitive match, got %v", got)
	}
}

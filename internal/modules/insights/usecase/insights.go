package usecase

import (
	"context"

	checkinin "inward/internal/modules/checkin/port/in"
	"inward/internal/modules/insights/domain"
	insightsin "inward/internal/modules/insights/port/in"
	insightsout "inward/internal/modules/insights/port/out"
	journeyin "inward/internal/modules/journey/port/in"
	profilein "inward/internal/modules/profile/port/in"
	"inward/internal/platform/clock"
	apperrors "inward/internal/platform/errors"
	"inward/internal/platform/id"
)

// weeklyWindowDays is the look-back window for a weekly summary.
const weeklyWindowDays = 7

// topEntries caps each weekly frequency table.
const topEntries = 3

// Interactor derives insights from the other modules' data. It owns
// no source data itself, only the pattern snapshot and the weekly
// history.
type Interactor struct {
	clock    clock.Clock
	idGen    id.Generator
	checkIns checkinin.Usecase
	profile  profilein.Usecase
	journeys journeyin.Usecase
	patterns insightsout.PatternStore
	weekly   insightsout.WeeklyStore
}

func NewInteractor(
	clk clock.Clock,
	idGen id.Generator,
	checkIns checkinin.Usecase,
	profile profilein.Usecase,
	journeys journeyin.Usecase,
	patterns insightsout.PatternStore,
	weekly insightsout.WeeklyStore,
) insightsin.Usecase {
	return &Interactor{
		clock:    clk,
		idGen:    idGen,
		checkIns: checkIns,
		profile:  profile,
		journeys: journeys,
		patterns: patterns,
		weekly:   weekly,
	}
}

func (i *Interactor) Report(ctx context.Context, days int) (insightsin.Report, error) {
	checkIns, err := i.checkIns.ForLastDays(ctx, days)
	if err != nil {
		return insightsin.Report{}, err
	}
	var topValues []string
	if values, ok := i.profile.Values(ctx); ok {
		topValues = values.TopValues
	}
	return insightsin.Report{
		Days:           days,
		CheckInCount:   len(checkIns),
		Emotions:       domain.EmotionFrequency(checkIns),
		ThoughtTags:    domain.ThoughtTagFrequency(checkIns),
		Behaviours:     domain.BehaviourFrequency(checkIns),
		AlignmentScore: domain.ValueAlignmentScore(checkIns, topValues),
	}, nil
}

// DetectPatterns recomputes the snapshot from the full check-in list
// and overwrites the stored copy, dropping any tested flags from the
// previous run.
func (i *Interactor) DetectPatterns(ctx context.Context) ([]domain.Pattern, error) {
	checkIns, err := i.checkIns.List(ctx)
	if err != nil {
		return nil, err
	}
	patterns := domain.DetectPatterns(checkIns, i.idGen, i.clock.Now())
	i.patterns.Replace(ctx, patterns)
	return patterns, nil
}

func (i *Interactor) Patterns(ctx context.Context) ([]domain.Pattern, error) {
	return i.patterns.List(ctx), nil
}

func (i *Interactor) MarkPatternTested(ctx context.Context, id string) error {
	patterns := i.patterns.List(ctx)
	found := false
	for n := range patterns {
		if patterns[n].ID == id {
			patterns[n].Tested = true
			found = true
		}
	}
	if !found {
		return apperrors.ErrNotFound
	}
	i.patterns.Replace(ctx, patterns)
	return nil
}

// BuildWeekly summarises the last seven days and prepends the result
// to the bounded weekly history.
func (i *Interactor) BuildWeekly(ctx context.Context) (domain.WeeklyInsight, error) {
	checkIns, err := i.checkIns.ForLastDays(ctx, weeklyWindowDays)
	if err != nil {
		return domain.WeeklyInsight{}, err
	}
	var topValues []string
	if values, ok := i.profile.Values(ctx); ok {
		topValues = values.TopValues
	}

	insight := domain.WeeklyInsight{
		WeekStarting:         i.clock.Now().AddDate(0, 0, -weeklyWindowDays),
		TopEmotions:          emotionEntries(domain.EmotionFrequency(checkIns)),
		TopThoughtTags:       tagEntries(domain.ThoughtTagFrequency(checkIns)),
		TopBehaviours:        behaviourEntries(domain.BehaviourFrequency(checkIns)),
		ValueAlignmentScore:  domain.ValueAlignmentScore(checkIns, topValues),
		BlindSpotSuggestions: i.blindSpotSuggestions(ctx),
		CheckInCount:         len(checkIns),
	}

	history := append([]domain.WeeklyInsight{insight}, i.weekly.List(ctx)...)
	if len(history) > domain.MaxWeeklyInsights {
		history = history[:domain.MaxWeeklyInsights]
	}
	i.weekly.Replace(ctx, history)
	return insight, nil
}

func (i *Interactor) WeeklyHistory(ctx context.Context) ([]domain.WeeklyInsight, error) {
	return i.weekly.List(ctx), nil
}

// blindSpotSuggestions turns untested pattern hypotheses into prompts
// for the coming week.
func (i *Interactor) blindSpotSuggestions(ctx context.Context) []string {
	suggestions := []string{}
	for _, p := range i.patterns.List(ctx) {
		if p.Tested {
			continue
		}
		suggestions = append(suggestions, "Test this hypothesis: "+p.Hypothesis)
		if len(suggestions) == topEntries {
			break
		}
	}
	return suggestions
}

func (i *Interactor) Narrative(ctx context.Context) (domain.JourneyInsights, error) {
	responses, err := i.journeys.CurrentResponses(ctx)
	if err != nil {
		return domain.JourneyInsights{}, err
	}
	return domain.GenerateNarrative(responses), nil
}

func emotionEntries(counts []domain.FrequencyCount) []domain.EmotionEntry {
	out := make([]domain.EmotionEntry, 0, topEntries)
	for _, c := range top(counts) {
		out = append(out, domain.EmotionEntry{Emotion: c.Item, Count: c.Count})
	}
	return out
}

func tagEntries(counts []domain.FrequencyCount) []domain.TagEntry {
	out := make([]domain.TagEntry, 0, topEntries)
	for _, c := range top(counts) {
		out = append(out, domain.TagEntry{Tag: c.Item, Count: c.Count})
	}
	return out
}

func behaviourEntries(counts []domain.FrequencyCount) []domain.BehaviourEntry {
	out := make([]domain.BehaviourEntry, 0, topEntries)
	for _, c := range top(counts) {
		out = append(out, domain.BehaviourEntry{Behaviour: c.Item, Count: c.Count})
	}
	return out
}

func top(counts []domain.FrequencyCount) []domain.FrequencyCount {
	if len(counts) > topEntries {
		return counts[:topEntries]
	}
	return counts
}

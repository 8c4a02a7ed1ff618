package out

import (
	"context"
	"encoding/json"

	"inward/internal/modules/insights/domain"
	insightsout "inward/internal/modules/insights/port/out"
	"inward/internal/platform/kv"
)

const (
	KeyPatterns = "awareness-patterns"
	KeyWeekly   = "awareness-weekly"
)

// KVPatternStore holds the latest detection snapshot under one key.
type KVPatternStore struct {
	store kv.Store
}

func NewKVPatternStore(store kv.Store) insightsout.PatternStore {
	return &KVPatternStore{store: store}
}

func (s *KVPatternStore) List(_ context.Context) []domain.Pattern {
	raw, ok := s.store.Get(KeyPatterns)
	if !ok {
		return []domain.Pattern{}
	}
	var patterns []domain.Pattern
	if err := json.Unmarshal(raw, &patterns); err != nil {
		return []domain.Pattern{}
	}
	return patterns
}

func (s *KVPatternStore) Replace(_ context.Context, patterns []domain.Pattern) {
	s.store.Set(KeyPatterns, patterns)
}

// KVWeeklyStore holds the weekly summaries, newest first.
type KVWeeklyStore struct {
	store kv.Store
}

func NewKVWeeklyStore(store kv.Store) insightsout.WeeklyStore {
	return &KVWeeklyStore{store: store}
}

func (s *KVWeeklyStore) List(_ context.Context) []domain.WeeklyInsight {
	raw, ok := s.store.Get(KeyWeekly)
	if !ok {
		return []domain.WeeklyInsight{}
	}
	var insights []domain.WeeklyInsight
	if err := json.Unmarshal(raw, &insights); err != nil {
		return []domain.WeeklyInsight{}
	}
	return insights
}

func (s *KVWeeklyStore) Replace(_ context.Context, insights []domain.WeeklyInsight) {
	s.store.Set(KeyWeekly, insights)
}

package out

import (
	"context"
	"encoding/json"

	"inward/internal/modules/journey/domain"
	journeyout "inward/internal/modules/journey/port/out"
	"inward/internal/platform/kv"
)

// Logical keys preserved from the original product so existing data files
// keep working.
const (
	KeyCurrent = "five-rules-current-journey"
	KeyHistory = "five-rules-journey-history"
)

type KVCurrentStore struct {
	store kv.Store
}

func NewKVCurrentStore(store kv.Store) journeyout.CurrentStore {
	return &KVCurrentStore{store: store}
}

func (s *KVCurrentStore) Save(_ context.Context, j domain.Journey) {
	s.store.Set(KeyCurrent, j)
}

func (s *KVCurrentStore) Load(_ context.Context) (domain.Journey, bool) {
	raw, ok := s.store.Get(KeyCurrent)
	if !ok {
		return domain.Journey{}, false
	}
	j := domain.Journey{}
	if err := json.Unmarshal(raw, &j); err != nil || j.ID == "" {
		return domain.Journey{}, false
	}
	return j, true
}

func (s *KVCurrentStore) Clear(_ context.Context) {
	s.store.Remove(KeyCurrent)
}

type KVHistoryStore struct {
	store kv.Store
}

func NewKVHistoryStore(store kv.Store) journeyout.HistoryStore {
	return &KVHistoryStore{store: store}
}

func (s *KVHistoryStore) List(_ context.Context) []domain.Journey {
	raw, ok := s.store.Get(KeyHistory)
	if !ok {
		return []domain.Journey{}
	}
	history := []domain.Journey{}
	if err := json.Unmarshal(raw, &history); err != nil {
		return []domain.Journey{}
	}
	return history
}

func (s *KVHistoryStore) Replace(_ context.Context, history []domain.Journey) {
	s.store.Set(KeyHistory, history)
}

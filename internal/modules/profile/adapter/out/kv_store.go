package out

import (
	"context"
	"encoding/json"

	"inward/internal/modules/profile/domain"
	profileout "inward/internal/modules/profile/port/out"
	"inward/internal/platform/kv"
)

// Storage keys for the profile records. The onboarding flag is stored
// as a bare JSON boolean.
const (
	KeyPreferences = "awareness-preferences"
	KeyValues      = "awareness-values"
	KeyProgress    = "awareness-progress"
	KeyBaseline    = "awareness-baseline"
	KeyOnboarding  = "awareness-onboarding-completed"
)

type KVProfileStore struct {
	store kv.Store
}

func NewKVProfileStore(store kv.Store) profileout.Store {
	return &KVProfileStore{store: store}
}

// load decodes the record at key into out, reporting absence for both
// missing and malformed data.
func (s *KVProfileStore) load(key string, out any) bool {
	raw, ok := s.store.Get(key)
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (s *KVProfileStore) SavePreferences(_ context.Context, p domain.Preferences) {
	s.store.Set(KeyPreferences, p)
}

func (s *KVProfileStore) LoadPreferences(_ context.Context) (domain.Preferences, bool) {
	var p domain.Preferences
	if !s.load(KeyPreferences, &p) {
		return domain.Preferences{}, false
	}
	return p, true
}

func (s *KVProfileStore) SaveValues(_ context.Context, v domain.UserValues) {
	s.store.Set(KeyValues, v)
}

func (s *KVProfileStore) LoadValues(_ context.Context) (domain.UserValues, bool) {
	var v domain.UserValues
	if !s.load(KeyValues, &v) {
		return domain.UserValues{}, false
	}
	return v, true
}

func (s *KVProfileStore) SaveProgress(_ context.Context, p domain.ModuleProgress) {
	s.store.Set(KeyProgress, p)
}

func (s *KVProfileStore) LoadProgress(_ context.Context) (domain.ModuleProgress, bool) {
	var p domain.ModuleProgress
	if !s.load(KeyProgress, &p) {
		return domain.ModuleProgress{}, false
	}
	return p, true
}

func (s *KVProfileStore) SaveBaseline(_ context.Context, b domain.BaselineSnapshot) {
	s.store.Set(KeyBaseline, b)
}

func (s *KVProfileStore) LoadBaseline(_ context.Context) (domain.BaselineSnapshot, bool) {
	var b domain.BaselineSnapshot
	if !s.load(KeyBaseline, &b) {
		return domain.BaselineSnapshot{}, false
	}
	return b, true
}

func (s *KVProfileStore) SetOnboardingCompleted(_ context.Context, completed bool) {
	s.store.Set(KeyOnboarding, completed)
}

func (s *KVProfileStore) OnboardingCompleted(_ context.Context) bool {
	var completed bool
	return s.load(KeyOnboarding, &completed) && completed
}

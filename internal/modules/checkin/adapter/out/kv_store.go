package out

import (
	"context"
	"encoding/json"

	"inward/internal/modules/checkin/domain"
	checkinout "inward/internal/modules/checkin/port/out"
	"inward/internal/platform/kv"
)

// KeyCheckIns is the storage key for the check-in list.
const KeyCheckIns = "awareness-check-ins"

// KVCheckInStore keeps the whole list under one key, newest first.
// Malformed or missing data reads as an empty list.
type KVCheckInStore struct {
	store kv.Store
}

func NewKVCheckInStore(store kv.Store) checkinout.Store {
	return &KVCheckInStore{store: store}
}

func (s *KVCheckInStore) List(_ context.Context) []domain.CheckIn {
	raw, ok := s.store.Get(KeyCheckIns)
	if !ok {
		return []domain.CheckIn{}
	}
	var checkIns []domain.CheckIn
	if err := json.Unmarshal(raw, &checkIns); err != nil {
		return []domain.CheckIn{}
	}
	return checkIns
}

func (s *KVCheckInStore) Replace(_ context.Context, checkIns []domain.CheckIn) {
	s.store.Set(KeyCheckIns, checkIns)
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	checkinout "inward/internal/modules/checkin/adapter/out"
	exportin "inward/internal/modules/export/port/in"
	insightsout "inward/internal/modules/insights/adapter/out"
	journeyout "inward/internal/modules/journey/adapter/out"
	profileout "inward/internal/modules/profile/adapter/out"
	"inward/internal/platform/clock"
	"inward/internal/platform/kv"
)

// ownedKeys is every key the app reads or writes. ClearAll removes
// exactly these; anything else in the store is not ours.
var ownedKeys = []string{
	journeyout.KeyCurrent,
	journeyout.KeyHistory,
	checkinout.KeyCheckIns,
	profileout.KeyPreferences,
	profileout.KeyValues,
	profileout.KeyProgress,
	profileout.KeyBaseline,
	profileout.KeyOnboarding,
	insightsout.KeyPatterns,
	insightsout.KeyWeekly,
}

// exportFields maps output field names to storage keys, in render
// order.
var exportFields = []struct {
	field string
	key   string
}{
	{"currentJourney", journeyout.KeyCurrent},
	{"journeyHistory", journeyout.KeyHistory},
	{"checkIns", checkinout.KeyCheckIns},
	{"preferences", profileout.KeyPreferences},
	{"userValues", profileout.KeyValues},
	{"patterns", insightsout.KeyPatterns},
	{"moduleProgress", profileout.KeyProgress},
	{"weeklyInsights", insightsout.KeyWeekly},
	{"baselineSnapshot", profileout.KeyBaseline},
	{"onboardingCompleted", profileout.KeyOnboarding},
}

// ExportService works on the raw store so a record survives export
// even when its module would reject it as malformed.
type ExportService struct {
	clock clock.Clock
	store kv.Store
}

func NewExportService(clock clock.Clock, store kv.Store) *ExportService {
	return &ExportService{clock: clock, store: store}
}

var _ exportin.Usecase = (*ExportService)(nil)

func (s *ExportService) ExportAll(_ context.Context) (string, error) {
	doc := make(map[string]json.RawMessage, len(exportFields)+1)
	for _, f := range exportFields {
		if raw, ok := s.store.Get(f.key); ok {
			doc[f.field] = raw
		} else {
			doc[f.field] = json.RawMessage("null")
		}
	}

	stamp, err := json.Marshal(s.clock.Now().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("marshal export timestamp: %w", err)
	}
	doc["exportedAt"] = stamp

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal export: %w", err)
	}
	return string(out), nil
}

func (s *ExportService) ClearAll(_ context.Context) error {
	s.store.Clear(ownedKeys...)
	return nil
}

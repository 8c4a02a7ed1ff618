package domain

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// recencyDate picks the most meaningful date a journey carries: completion
// first, then last edit, then start.
func recencyDate(j Journey) time.Time {
	if j.CompletedAt != nil {
		return *j.CompletedAt
	}
	if !j.LastUpdatedAt.IsZero() {
		return j.LastUpdatedAt
	}
	return j.StartedAt
}

// idTimestamp extracts the epoch-millis component embedded in a generated id
// ("journey-<millis>-<suffix>"). Malformed ids yield 0 and sort last.
func idTimestamp(id string) int64 {
	parts := strings.SplitN(id, "-", 3)
	if len(parts) < 3 {
		return 0
	}
	ms, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0
	}
	return ms
}

// SortByRecency orders journeys most-recent-first. Ties on the recency date
// fall back to the id's embedded timestamp (descending) and finally to a raw
// id comparison (descending), so the order is total and deterministic.
func SortByRecency(journeys []Journey) {
	sort.SliceStable(journeys, func(i, k int) bool {
		di, dk := recencyDate(journeys[i]), recencyDate(journeys[k])
		if !di.Equal(dk) {
			return di.After(dk)
		}
		ti, tk := idTimestamp(journeys[i].ID), idTimestamp(journeys[k].ID)
		if ti != tk {
			return ti > tk
		}
		return journeys[i].ID > journeys[k].ID
	})
}

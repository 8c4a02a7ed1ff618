package domain

import (
	"math"
	"sort"

	checkin "inward/internal/modules/checkin/domain"
)

// FrequencyCount is one row of a frequency table.
type FrequencyCount struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

// tally counts keys in encounter order, then sorts by count descending.
// The stable sort means equal counts keep first-occurrence order, which
// makes the tables deterministic for identical input.
func tally(keys []string) []FrequencyCount {
	counts := map[string]int{}
	order := make([]string, 0)
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	out := make([]FrequencyCount, 0, len(order))
	for _, k := range order {
		out = append(out, FrequencyCount{Item: k, Count: counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// EmotionFrequency counts primary emotions across the check-ins.
func EmotionFrequency(checkIns []checkin.CheckIn) []FrequencyCount {
	keys := make([]string, 0, len(checkIns))
	for _, c := range checkIns {
		keys = append(keys, c.Emotion.Primary)
	}
	return tally(keys)
}

// ThoughtTagFrequency counts thought tags; one check-in can contribute
// several tags.
func ThoughtTagFrequency(checkIns []checkin.CheckIn) []FrequencyCount {
	var keys []string
	for _, c := range checkIns {
		keys = append(keys, c.ThoughtTags...)
	}
	return tally(keys)
}

// BehaviourFrequency counts actions taken; empty actions are skipped.
func BehaviourFrequency(checkIns []checkin.CheckIn) []FrequencyCount {
	keys := make([]string, 0, len(checkIns))
	for _, c := range checkIns {
		keys = append(keys, c.BehaviourAction)
	}
	return tally(keys)
}

// ValueAlignmentScore is the percentage of check-ins whose touched
// value is one of the user's top values, rounded half up. Zero when
// either input is empty.
func ValueAlignmentScore(checkIns []checkin.CheckIn, topValues []string) int {
	if len(topValues) == 0 || len(checkIns) == 0 {
		return 0
	}
	top := make(map[string]struct{}, len(topValues))
	for _, v := range topValues {
		top[v] = struct{}{}
	}
	aligned := 0
	for _, c := range checkIns {
		if _, ok := top[c.Value]; ok {
			aligned++
		}
	}
	return int(math.Round(float64(aligned) / float64(len(checkIns)) * 100))
}

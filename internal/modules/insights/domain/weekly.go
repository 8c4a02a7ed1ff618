package domain

import "time"

// MaxWeeklyInsights bounds the stored weekly history.
const MaxWeeklyInsights = 12

// EmotionEntry, TagEntry and BehaviourEntry are rows of a weekly
// summary's top-3 tables.
type EmotionEntry struct {
	Emotion string `json:"emotion"`
	Count   int    `json:"count"`
}

type TagEntry struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type BehaviourEntry struct {
	Behaviour string `json:"behaviour"`
	Count     int    `json:"count"`
}

// WeeklyInsight is one week's aggregate over the check-in list.
type WeeklyInsight struct {
	WeekStarting         time.Time        `json:"weekStarting"`
	TopEmotions          []EmotionEntry   `json:"topEmotions"`
	TopThoughtTags       []TagEntry       `json:"topThoughtTags"`
	TopBehaviours        []BehaviourEntry `json:"topBehaviours"`
	ValueAlignmentScore  int              `json:"valueAlignmentScore"`
	BlindSpotSuggestions []string         `json:"blindSpotSuggestions"`
	CheckInCount         int              `json:"checkInCount"`
}

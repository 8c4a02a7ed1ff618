package domain

import "time"

// Preferences are chosen during onboarding and tune the guided flows.
type Preferences struct {
	Goal          string `json:"goal"`
	ReminderTime  string `json:"reminderTime"`
	Tone          string `json:"tone"`
	Depth         string `json:"depth"`
	Privacy       string `json:"privacy"`
	ReducedMotion bool   `json:"reducedMotion"`
}

// DefaultPreferences are the values a fresh profile starts from.
func DefaultPreferences() Preferences {
	return Preferences{
		Goal:         "understand-moods",
		ReminderTime: "09:00",
		Tone:         "gentle",
		Depth:        "quick",
		Privacy:      "local",
	}
}

// UserValues is the outcome of the values card sort.
type UserValues struct {
	TopValues []string  `json:"topValues"`
	SortedAt  time.Time `json:"sortedAt"`
}

// TrackProgress is one growth track's position.
type TrackProgress struct {
	Level              int `json:"level"`
	LessonsCompleted   int `json:"lessonsCompleted"`
	PracticesCompleted int `json:"practicesCompleted"`
}

// ModuleProgress covers the five growth tracks.
type ModuleProgress struct {
	Emotion    TrackProgress `json:"emotion"`
	Thought    TrackProgress `json:"thought"`
	Behaviour  TrackProgress `json:"behaviour"`
	Values     TrackProgress `json:"values"`
	BlindSpots TrackProgress `json:"blindSpots"`
}

// DefaultProgress starts every track at level one with nothing done.
func DefaultProgress() ModuleProgress {
	start := TrackProgress{Level: 1}
	return ModuleProgress{
		Emotion:    start,
		Thought:    start,
		Behaviour:  start,
		Values:     start,
		BlindSpots: start,
	}
}

// BaselineSnapshot captures where the person started, taken once
// during onboarding.
type BaselineSnapshot struct {
	CurrentMood           string    `json:"currentMood"`
	TypicalStressResponse string    `json:"typicalStressResponse"`
	BiggestChallenge      string    `json:"biggestChallenge"`
	WhatMatters           []string  `json:"whatMatters"`
	SelfAwarenessLevel    int       `json:"selfAwarenessLevel"`
	CapturedAt            time.Time `json:"capturedAt"`
}

package domain

import "time"

// IDPrefix namespaces check-in identifiers.
const IDPrefix = "checkin"

// Emotion captures what was felt at check-in time. Intensity is on a
// 1..10 scale; Secondary and BodyLocation are optional.
type Emotion struct {
	Primary      string `json:"primary"`
	Secondary    string `json:"secondary,omitempty"`
	Intensity    int    `json:"intensity"`
	BodyLocation string `json:"bodyLocation,omitempty"`
}

// CheckIn is one moment of self-observation: the emotion, the thought
// behind it, what the person wanted to do and actually did, and which
// personal value the moment touched.
type CheckIn struct {
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	Emotion         Emotion   `json:"emotion"`
	Thought         string    `json:"thought"`
	ThoughtTags     []string  `json:"thoughtTags"`
	BehaviourUrge   string    `json:"behaviourUrge"`
	BehaviourAction string    `json:"behaviourAction"`
	Value           string    `json:"value"`
	Context         string    `json:"context,omitempty"`
}

// InRange reports whether the check-in falls inside [start, end],
// both bounds inclusive.
func (c CheckIn) InRange(start, end time.Time) bool {
	return !c.Timestamp.Before(start) && !c.Timestamp.After(end)
}

// FilterRange keeps check-ins inside the inclusive [start, end] window,
// preserving input order.
func FilterRange(checkIns []CheckIn, start, end time.Time) []CheckIn {
	out := make([]CheckIn, 0, len(checkIns))
	for _, c := range checkIns {
		if c.InRange(start, end) {
			out = append(out, c)
		}
	}
	return out
}

// SameLocalDay reports whether both instants fall on the same calendar
// day in the given location.
func SameLocalDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

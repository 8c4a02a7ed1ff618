package domain

import "time"

const (
	SchemaVersion = 1
	RuleCount     = 5
	ValueSlots    = 5
	IDPrefix      = "journey"
)

// Rule1 is the shadow-work exercise: a person who triggers you, the trait
// that bothers you, and how that trait mirrors back.
type Rule1 struct {
	Trigger  string `json:"trigger"`
	Trait    string `json:"trait"`
	Mirror   string `json:"mirror"`
	Instance string `json:"instance"`
}

// Rule2 is the why-chain: an outsized reaction traced to its root.
type Rule2 struct {
	Event      string `json:"event"`
	Why1       string `json:"why1"`
	Why2       string `json:"why2"`
	Why3       string `json:"why3"`
	Conclusion string `json:"conclusion"`
}

// Rule3 is the integration exercise: a self-label, the feared opposite,
// and a both/and statement.
type Rule3 struct {
	Label       string `json:"label"`
	Fear        string `json:"fear"`
	Integration string `json:"integration"`
}

// Rule4 is the values sort. The three arrays are parallel: slot i's value,
// source, and decision belong together.
type Rule4 struct {
	Values    [ValueSlots]string `json:"values"`
	Sources   [ValueSlots]string `json:"sources"`
	Decisions [ValueSlots]string `json:"decisions"`
}

// Rule5 is the neutral-fact exercise: event, the story the mind told,
// the neutral rewrite, and an acceptance statement.
type Rule5 struct {
	Event      string `json:"event"`
	Judgment   string `json:"judgment"`
	Neutral    string `json:"neutral"`
	Acceptance string `json:"acceptance"`
}

type Responses struct {
	Rule1 Rule1 `json:"rule1"`
	Rule2 Rule2 `json:"rule2"`
	Rule3 Rule3 `json:"rule3"`
	Rule4 Rule4 `json:"rule4"`
	Rule5 Rule5 `json:"rule5"`
}

// EmptyResponses returns a fresh zero-value response record. Value semantics
// already guarantee callers never share backing storage.
func EmptyResponses() Responses {
	return Responses{}
}

// Journey is one attempt at the five-exercise guided reflection sequence.
type Journey struct {
	ID             string     `json:"id"`
	Version        int        `json:"version"`
	Responses      Responses  `json:"responses"`
	CompletedRules []int      `json:"completedRules"`
	StartedAt      time.Time  `json:"startedAt"`
	LastUpdatedAt  time.Time  `json:"lastUpdatedAt"`
	CompletedAt    *time.Time `json:"completedAt"`
}

func New(id string, now time.Time) Journey {
	return Journey{
		ID:             id,
		Version:        SchemaVersion,
		Responses:      EmptyResponses(),
		CompletedRules: []int{},
		StartedAt:      now,
		LastUpdatedAt:  now,
		CompletedAt:    nil,
	}
}

// HasRule reports whether rule n is marked complete.
func (j Journey) HasRule(n int) bool {
	for _, r := range j.CompletedRules {
		if r == n {
			return true
		}
	}
	return false
}

// MarkRule records rule n as complete. Re-marking a rule is a no-op.
// CompletedAt is stamped exactly when the fifth rule lands and cleared
// otherwise, mirroring the completion flag the summary screens key off.
func (j *Journey) MarkRule(n int, now time.Time) {
	if n < 1 || n > RuleCount || j.HasRule(n) {
		return
	}
	j.CompletedRules = append(j.CompletedRules, n)
	if len(j.CompletedRules) == RuleCount {
		at := now
		j.CompletedAt = &at
	} else {
		j.CompletedAt = nil
	}
}

func (j Journey) IsComplete() bool {
	return len(j.CompletedRules) == RuleCount
}

// Reset clears answers and completion state in place. The id survives: a
// reset journey is the same attempt started over, not a new record.
func (j *Journey) Reset(now time.Time) {
	j.Responses = EmptyResponses()
	j.CompletedRules = []int{}
	j.StartedAt = now
	j.LastUpdatedAt = now
	j.CompletedAt = nil
}

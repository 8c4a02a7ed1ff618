package domain

import (
	"fmt"
	"time"

	checkin "inward/internal/modules/checkin/domain"
	"inward/internal/platform/id"
)

// PatternIDPrefix namespaces pattern identifiers.
const PatternIDPrefix = "pattern"

// PatternType classifies a detected behaviour pattern.
type PatternType string

const (
	PatternEmotionChain     PatternType = "emotion-chain"
	PatternThoughtBehaviour PatternType = "thought-behaviour"
)

// Pattern is a detected habit hypothesis. Tested starts false and is
// flipped once the person has consciously checked the hypothesis.
type Pattern struct {
	ID          string      `json:"id"`
	Type        PatternType `json:"type"`
	Description string      `json:"description"`
	Frequency   int         `json:"frequency"`
	LastSeen    time.Time   `json:"lastSeen"`
	Tested      bool        `json:"tested"`
	Hypothesis  string      `json:"hypothesis,omitempty"`
}

// pairTally counts (key, behaviour) co-occurrences, keeping both keys
// and behaviours in first-encounter order so the emitted pattern list
// is deterministic.
type pairTally struct {
	keyOrder []string
	byKey    map[string]*behaviourTally
}

type behaviourTally struct {
	order  []string
	counts map[string]int
}

func newPairTally() *pairTally {
	return &pairTally{byKey: map[string]*behaviourTally{}}
}

func (p *pairTally) add(key, behaviour string) {
	b, ok := p.byKey[key]
	if !ok {
		b = &behaviourTally{counts: map[string]int{}}
		p.byKey[key] = b
		p.keyOrder = append(p.keyOrder, key)
	}
	if _, seen := b.counts[behaviour]; !seen {
		b.order = append(b.order, behaviour)
	}
	b.counts[behaviour]++
}

// DetectPatterns recomputes the full pattern list from scratch. Fewer
// than three check-ins is too little signal and yields nothing; a pair
// must co-occur at least twice to be reported.
func DetectPatterns(checkIns []checkin.CheckIn, idGen id.Generator, now time.Time) []Pattern {
	patterns := []Pattern{}
	if len(checkIns) < 3 {
		return patterns
	}

	emotions := newPairTally()
	tags := newPairTally()
	for _, c := range checkIns {
		emotions.add(c.Emotion.Primary, c.BehaviourAction)
		for _, tag := range c.ThoughtTags {
			tags.add(tag, c.BehaviourAction)
		}
	}

	for _, emotion := range emotions.keyOrder {
		b := emotions.byKey[emotion]
		for _, behaviour := range b.order {
			count := b.counts[behaviour]
			if count < 2 {
				continue
			}
			patterns = append(patterns, Pattern{
				ID:          idGen.New(PatternIDPrefix),
				Type:        PatternEmotionChain,
				Description: fmt.Sprintf("When you feel %s, you tend to %s", emotion, behaviour),
				Hypothesis:  fmt.Sprintf("When you feel %s → you %s", emotion, behaviour),
				Frequency:   count,
				LastSeen:    now,
			})
		}
	}

	for _, tag := range tags.keyOrder {
		b := tags.byKey[tag]
		for _, behaviour := range b.order {
			count := b.counts[behaviour]
			if count < 2 {
				continue
			}
			patterns = append(patterns, Pattern{
				ID:          idGen.New(PatternIDPrefix),
				Type:        PatternThoughtBehaviour,
				Description: fmt.Sprintf("When you're %s, you tend to %s", tag, behaviour),
				Hypothesis:  fmt.Sprintf("%s thinking → %s", tag, behaviour),
				Frequency:   count,
				LastSeen:    now,
			})
		}
	}

	return patterns
}

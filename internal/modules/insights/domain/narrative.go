package domain

import (
	"fmt"
	"strings"

	journey "inward/internal/modules/journey/domain"
)

// RuleInsight is the narrative generated for one completed rule.
type RuleInsight struct {
	Insight            string `json:"insight"`
	Advice             string `json:"advice"`
	Affirmation        string `json:"affirmation"`
	ReflectionQuestion string `json:"reflectionQuestion"`
}

// JourneyInsights is the full narrative for a journey. A nil rule
// entry means that rule had no usable answers.
type JourneyInsights struct {
	Rule1        *RuleInsight `json:"rule1,omitempty"`
	Rule2        *RuleInsight `json:"rule2,omitempty"`
	Rule3        *RuleInsight `json:"rule3,omitempty"`
	Rule4        *RuleInsight `json:"rule4,omitempty"`
	Rule5        *RuleInsight `json:"rule5,omitempty"`
	OverallTheme string       `json:"overallTheme,omitempty"`
}

// Narrative templates keyed by the preset answers the guided flow
// offers. Unknown answers fall back to generic text built from the
// person's own words.
var rule1Templates = map[string]RuleInsight{
	"I do this sometimes too": {
		Insight:     "You've recognized that the trait bothering you exists within yourself too. This is powerful self-awareness. What we dislike in others is often a reflection of something unintegrated in ourselves.",
		Advice:      "When you notice this trait in yourself, pause and offer yourself the same understanding you'd give a good friend. Ask: 'What need is this behavior trying to meet?'",
		Affirmation: "Recognizing your own patterns takes courage. You're building genuine self-awareness.",
	},
	"I wish I could be more like this": {
		Insight:     "What triggers you may actually be something you secretly admire or wish you could express more freely. You might have learned to suppress this quality.",
		Advice:      "Give yourself permission to explore this quality in small, safe ways. What's one tiny step toward embodying this trait authentically?",
		Affirmation: "You're allowed to reclaim parts of yourself you've hidden away.",
	},
	"I used to be like this": {
		Insight:     "You may have worked hard to move away from this trait, and seeing it in others reminds you of who you used to be. This can feel threatening to your current identity.",
		Advice:      "Acknowledge how far you've come, AND hold compassion for the version of you that once needed to be this way. They were doing their best.",
		Affirmation: "Your growth is real. You can honor your past self while continuing to evolve.",
	},
	"I suppress this in myself": {
		Insight:     "You've identified a quality you actively push down in yourself. When others express it freely, it can feel unfair or triggering because you've told yourself it's not okay.",
		Advice:      "Explore what would happen if you allowed this quality to have a small, healthy expression. What's the fear behind keeping it suppressed?",
		Affirmation: "Every part of you deserves acknowledgment. Integration doesn't mean acting out—it means making peace.",
	},
	"I'm scared I'm like this": {
		Insight:     "There's fear here—a worry that this trait might define you. This fear often comes from having learned that certain qualities are unacceptable or shameful.",
		Advice:      "Remind yourself: having a trait sometimes doesn't make it your whole identity. You are complex and contain multitudes. This is normal and human.",
		Affirmation: "You are more than any single quality. Your self-awareness is already proof of your depth.",
	},
	"I judge myself for wanting this": {
		Insight:     "Part of you desires what this person represents, but another part judges that desire harshly. This inner conflict creates the strong reaction.",
		Advice:      "Practice saying: 'It's okay to want this. Wanting something doesn't mean I have to act on it or that I'm a bad person for feeling it.'",
		Affirmation: "Your desires are valid. Judgment can soften into curiosity.",
	},
}

var rule2Templates = map[string]RuleInsight{
	"This is about needing safety": {
		Insight:     "Your strong reaction points to a deep need for safety and security. When this need feels threatened, your nervous system responds as if real danger is present—even when it isn't.",
		Advice:      "When you feel unsafe, try placing a hand on your chest and taking three slow breaths. Remind yourself: 'I am safe in this moment. This feeling will pass.'",
		Affirmation: "Your need for safety is valid. Learning to create safety within yourself is one of the most healing things you can do.",
	},
	"This is about needing control": {
		Insight:     "A need for control often develops when life felt unpredictable or chaotic. Your mind learned that controlling outcomes was the way to stay safe.",
		Advice:      "Practice 'controlled surrender' with small things: take a different route, let someone else choose the restaurant. Notice that you survive and may even enjoy it.",
		Affirmation: "You've developed strength through managing things. Now you're learning that loosening your grip can also be a form of strength.",
	},
	"This is about needing belonging": {
		Insight:     "Your reaction connects to a core human need: to belong, to be included, to matter. When this feels threatened, it can touch very old wounds.",
		Advice:      "Make a list of people and places where you genuinely belong. Read it when you feel excluded. One rejection doesn't erase all your belonging.",
		Affirmation: "You belong. Not because of what you do, but because of who you are.",
	},
	"This is about proving my worth": {
		Insight:     "You've learned to tie your value to achievement, productivity, or being useful. When something threatens this, it can feel like your entire worth is on the line.",
		Advice:      "Practice being 'useless' for 10 minutes a day—just existing, not producing. Your worth doesn't depend on output.",
		Affirmation: "You are worthy because you exist, not because of what you accomplish.",
	},
	"This is about fear of abandonment": {
		Insight:     "Early experiences may have taught you that people leave, that love is conditional, or that you need to earn staying. This fear runs deep and can color many reactions.",
		Advice:      "When abandonment fear arises, name it: 'This is my fear speaking.' Then ask: 'What does the present moment actually show me about this relationship?'",
		Affirmation: "Some people stay. You are learning to trust, and that's brave work.",
	},
	"This is about old survival patterns": {
		Insight:     "Your nervous system developed patterns to help you survive childhood. These patterns were smart then—but they may be overactive in your safer present.",
		Advice:      "Thank your survival patterns for protecting you. Then gently remind them: 'We're safe now. I've got this.' Repeat as needed.",
		Affirmation: "You survived. Now you get to learn how to thrive. Your adaptability got you here.",
	},
	"This is about needing validation": {
		Insight:     "You learned to look outside yourself for confirmation that you're okay, that you're doing it right, that you matter. External validation became essential.",
		Advice:      "Start building an internal validation practice. At day's end, tell yourself three things you're proud of—things no one else saw.",
		Affirmation: "Your opinion of yourself matters most. You're learning to become your own source of approval.",
	},
}

var rule3Default = RuleInsight{
	Advice:      "Start small. Choose one low-stakes situation where you can practice the 'AND' side of your statement. Notice what happens.",
	Affirmation: "You are complex, multidimensional, and whole. That's not a flaw—it's being fully human.",
}

var rule4Advice = struct {
	keep    string
	adopt   string
	release string
}{
	keep:    "Celebrate this clarity! Write down why this value matters to you in your own words.",
	adopt:   "Reframe this value in your own language. How would YOU say this rule if you were teaching it to someone you love?",
	release: "Write a brief 'thank you and goodbye' to this value. Acknowledge what it gave you, then release it with gratitude.",
}

var rule5Default = RuleInsight{
	Insight:     "You've practiced the powerful skill of separating what happened from the story your mind added. This creates space between you and your automatic reactions.",
	Advice:      "When you catch yourself spinning a story, pause and ask: 'What are the neutral facts here?' Write them down if it helps.",
	Affirmation: "You're learning to respond to life as it is, not to the stories in your head. This is freedom.",
}

// GenerateNarrative maps a journey's answers to per-rule narrative
// text. Rules without their gating answer are skipped entirely; the
// overall theme appears once at least three rules have content.
func GenerateNarrative(r journey.Responses) JourneyInsights {
	out := JourneyInsights{}

	if r.Rule1.Trigger != "" && r.Rule1.Mirror != "" {
		tpl := rule1Templates[r.Rule1.Mirror]
		insight := tpl
		if tpl.Insight == "" {
			insight.Insight = fmt.Sprintf("By exploring what %s triggers in you, you've opened a door to self-understanding. The trait %q that bothers you carries a message worth hearing.", strings.ToLower(r.Rule1.Trigger), strings.ToLower(r.Rule1.Trait))
		}
		if tpl.Advice == "" {
			insight.Advice = "This week, when you notice yourself reacting strongly to someone, pause and ask: 'What does this person remind me of in myself?'"
		}
		if tpl.Affirmation == "" {
			insight.Affirmation = "Your willingness to look within is the foundation of all growth."
		}
		insight.ReflectionQuestion = fmt.Sprintf("When you exhibit %q yourself, what are you usually needing in that moment?", strings.ToLower(r.Rule1.Trait))
		out.Rule1 = &insight
	}

	if r.Rule2.Conclusion != "" {
		tpl := rule2Templates[r.Rule2.Conclusion]
		insight := tpl
		if tpl.Insight == "" {
			insight.Insight = fmt.Sprintf("You've traced your reaction to %q all the way back to its roots. Understanding this chain—from present reaction to past origin—is deeply healing work.", strings.ToLower(r.Rule2.Event))
		}
		if tpl.Advice == "" {
			insight.Advice = "When a similar trigger arises, pause and name it: 'This is my [core need] speaking.' Naming creates distance."
		}
		if tpl.Affirmation == "" {
			insight.Affirmation = "Your feelings make sense when you understand their origins. You're not overreacting—you're responding to something real."
		}
		need := strings.ToLower(strings.TrimPrefix(r.Rule2.Conclusion, "This is about "))
		insight.ReflectionQuestion = fmt.Sprintf("How might your life look different if you could meet your need for %s in healthy ways?", need)
		out.Rule2 = &insight
	}

	if r.Rule3.Integration != "" {
		out.Rule3 = &RuleInsight{
			Insight:            fmt.Sprintf("You've created your own both/and statement: %q. This is a profound act of self-acceptance—giving yourself permission to be more than one thing.", r.Rule3.Integration),
			Advice:             rule3Default.Advice,
			Affirmation:        rule3Default.Affirmation,
			ReflectionQuestion: fmt.Sprintf("What would it feel like to fully embrace %q without any guilt?", r.Rule3.Integration),
		}
	}

	if anySlot(r.Rule4.Values) {
		var kept, adopted, released int
		for i, v := range r.Rule4.Values {
			if v == "" {
				continue
			}
			switch {
			case strings.Contains(r.Rule4.Decisions[i], "Keep"):
				kept++
			case strings.Contains(r.Rule4.Decisions[i], "Adopt"):
				adopted++
			case strings.Contains(r.Rule4.Decisions[i], "Let it go"):
				released++
			}
		}

		var parts []string
		if kept > 0 {
			parts = append(parts, fmt.Sprintf("You've claimed %d value%s as authentically yours.", kept, plural(kept)))
		}
		if adopted > 0 {
			parts = append(parts, fmt.Sprintf("You've consciously adopted %d inherited value%s.", adopted, plural(adopted)))
		}
		if released > 0 {
			parts = append(parts, fmt.Sprintf("You've chosen to release %d value%s that no longer serve you.", released, plural(released)))
		}

		advice := rule4Advice.keep
		if released > 0 {
			advice = rule4Advice.release
		} else if adopted > 0 {
			advice = rule4Advice.adopt
		}

		out.Rule4 = &RuleInsight{
			Insight:            strings.Join(parts, " ") + " This sorting process is how you move from living by default to living by design.",
			Advice:             advice,
			Affirmation:        "You get to choose what you believe. Not everything you were taught has to stay true for you.",
			ReflectionQuestion: "Which of these values do you want to pass on to others, and which stop with you?",
		}
	}

	if r.Rule5.Neutral != "" {
		insight := rule5Default
		insight.ReflectionQuestion = fmt.Sprintf("When %q happens again, how might you respond differently now?", strings.ToLower(r.Rule5.Event))
		out.Rule5 = &insight
	}

	answered := 0
	for _, done := range []bool{
		r.Rule1.Trigger != "",
		r.Rule2.Conclusion != "",
		r.Rule3.Integration != "",
		anySlot(r.Rule4.Values),
		r.Rule5.Neutral != "",
	} {
		if done {
			answered++
		}
	}
	if answered >= 3 {
		out.OverallTheme = "You've done meaningful inner work today. Each reflection builds on the last, creating a fuller picture of who you are and how you relate to yourself. Return to these insights whenever you need a reminder of your growth."
	}

	return out
}

func anySlot(values [journey.ValueSlots]string) bool {
	for _, v := range values {
		if v != "" {
			return true
		}
	}
	return false
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

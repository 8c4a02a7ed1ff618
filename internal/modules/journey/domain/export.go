package domain

import (
	"fmt"
	"strings"
)

const exportBanner = "========================================"

// ExportText renders a journey as shareable plain text. Sections appear only
// when their primary answer is filled in; the rule-4 section emits one line
// per non-empty value slot, pairing value, source, and decision by index.
// The rendering is deterministic for a given journey.
func ExportText(j Journey) string {
	b := strings.Builder{}
	b.WriteString(exportBanner + "\n")
	b.WriteString("  THE 5 RULES — YOUR REFLECTIONS\n")
	b.WriteString(exportBanner + "\n")
	b.WriteString(fmt.Sprintf("Started: %s\n", j.StartedAt.Format("2 January 2006")))
	if j.CompletedAt != nil {
		b.WriteString(fmt.Sprintf("Completed: %s\n", j.CompletedAt.Format("2 January 2006")))
	}

	r := j.Responses
	if r.Rule1.Trigger != "" {
		b.WriteString("\nRULE 1: CONFRONT YOUR SHADOW\n")
		writeLine(&b, "Trigger", r.Rule1.Trigger)
		writeLine(&b, "Trait", r.Rule1.Trait)
		writeLine(&b, "Mirror", r.Rule1.Mirror)
		writeLine(&b, "Instance", r.Rule1.Instance)
	}
	if r.Rule2.Event != "" {
		b.WriteString("\nRULE 2: MAKE THE UNCONSCIOUS CONSCIOUS\n")
		writeLine(&b, "Event", r.Rule2.Event)
		writeLine(&b, "Why", r.Rule2.Why1)
		writeLine(&b, "Why", r.Rule2.Why2)
		writeLine(&b, "Why", r.Rule2.Why3)
		writeLine(&b, "Insight", r.Rule2.Conclusion)
	}
	if r.Rule3.Label != "" {
		b.WriteString("\nRULE 3: INTEGRATE YOUR OPPOSITES\n")
		writeLine(&b, "Label", r.Rule3.Label)
		writeLine(&b, "Fear", r.Rule3.Fear)
		writeLine(&b, "Both/And", r.Rule3.Integration)
	}
	if anyValue(r.Rule4.Values) {
		b.WriteString("\nRULE 4: FOLLOW YOUR OWN PATTERN\n")
		for i, v := range r.Rule4.Values {
			if v == "" {
				continue
			}
			b.WriteString(fmt.Sprintf("  %s (%s) -> %s\n", v, r.Rule4.Sources[i], r.Rule4.Decisions[i]))
		}
	}
	if r.Rule5.Event != "" {
		b.WriteString("\nRULE 5: ACCEPT THE WHOLENESS OF LIFE\n")
		writeLine(&b, "Event", r.Rule5.Event)
		writeLine(&b, "Story", r.Rule5.Judgment)
		writeLine(&b, "Neutral", r.Rule5.Neutral)
		writeLine(&b, "Acceptance", r.Rule5.Acceptance)
	}

	b.WriteString("\n" + exportBanner + "\n")
	b.WriteString("  A workbook for integration and individuation\n")
	b.WriteString(exportBanner + "\n")
	return b.String()
}

func writeLine(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(fmt.Sprintf("  %s: %s\n", label, value))
}

func anyValue(values [ValueSlots]string) bool {
	for _, v := range values {
		if v != "" {
			return true
		}
	}
	return false
}

package domain

import "strings"

// FallbackTheme is returned when no keyword group matches; IdentifyThemes
// never returns an empty list.
const FallbackTheme = "Personal Growth"

type themeGroup struct {
	label    string
	keywords []string
}

// Check order is fixed so the returned themes are deterministic.
var themeGroups = []themeGroup{
	{"Control & Safety", []string{"control", "safety", "chaos"}},
	{"Belonging & Connection", []string{"belong", "reject", "abandon"}},
	{"Self-Worth & Validation", []string{"worth", "enough", "perfect"}},
	{"Being Seen & Mattering", []string{"seen", "invisible", "matter"}},
	{"Strength & Vulnerability", []string{"weak", "strong", "vulnerable"}},
}

// IdentifyThemes derives coarse theme labels by keyword matching over the
// journey's most telling free-text answers: the mirror question, the deeper
// links of the why-chain, and the integration fear.
func IdentifyThemes(j Journey) []string {
	r := j.Responses
	haystack := strings.ToLower(strings.Join([]string{
		r.Rule1.Mirror,
		r.Rule2.Why2,
		r.Rule2.Why3,
		r.Rule2.Conclusion,
		r.Rule3.Fear,
	}, " "))

	themes := []string{}
	for _, group := range themeGroups {
		for _, kw := range group.keywords {
			if strings.Contains(haystack, kw) {
				themes = append(themes, group.label)
				break
			}
		}
	}
	if len(themes) == 0 {
		return []string{FallbackTheme}
	}
	return themes
}

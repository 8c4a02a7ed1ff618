package domain

import (
	"fmt"

	apperrors "inward/internal/platform/errors"
)

// SetField routes a single answer update to the named rule and field.
// slot is ignored for scalar fields. For the rule-4 parallel arrays it must
// be 0..4; anything else is rejected rather than clamped, so a miswired
// caller fails loudly instead of silently clobbering another slot.
func (r *Responses) SetField(rule, field, value string, slot int) error {
	switch rule {
	case "rule1":
		return setScalar(map[string]*string{
			"trigger":  &r.Rule1.Trigger,
			"trait":    &r.Rule1.Trait,
			"mirror":   &r.Rule1.Mirror,
			"instance": &r.Rule1.Instance,
		}, rule, field, value)
	case "rule2":
		return setScalar(map[string]*string{
			"event":      &r.Rule2.Event,
			"why1":       &r.Rule2.Why1,
			"why2":       &r.Rule2.Why2,
			"why3":       &r.Rule2.Why3,
			"conclusion": &r.Rule2.Conclusion,
		}, rule, field, value)
	case "rule3":
		return setScalar(map[string]*string{
			"label":       &r.Rule3.Label,
			"fear":        &r.Rule3.Fear,
			"integration": &r.Rule3.Integration,
		}, rule, field, value)
	case "rule4":
		var arr *[ValueSlots]string
		switch field {
		case "values":
			arr = &r.Rule4.Values
		case "sources":
			arr = &r.Rule4.Sources
		case "decisions":
			arr = &r.Rule4.Decisions
		default:
			return fmt.Errorf("%w: rule4 has no field %q", apperrors.ErrInvalidInput, field)
		}
		if slot < 0 || slot >= ValueSlots {
			return fmt.Errorf("%w: rule4 slot %d", apperrors.ErrInvalidSlot, slot)
		}
		arr[slot] = value
		return nil
	case "rule5":
		return setScalar(map[string]*string{
			"event":      &r.Rule5.Event,
			"judgment":   &r.Rule5.Judgment,
			"neutral":    &r.Rule5.Neutral,
			"acceptance": &r.Rule5.Acceptance,
		}, rule, field, value)
	default:
		return fmt.Errorf("%w: unknown rule %q", apperrors.ErrInvalidInput, rule)
	}
}

func setScalar(fields map[string]*string, rule, field, value string) error {
	target, ok := fields[field]
	if !ok {
		return fmt.Errorf("%w: %s has no field %q", apperrors.ErrInvalidInput, rule, field)
	}
	*target = value
	return nil
}

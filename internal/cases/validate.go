package cases

import (
	"fmt"
	"strings"
)

// validateTemplates performs all structural checks on the given templates.
// Returns a combined error describing all problems found, or nil if valid.
func validateTemplates(templates []Template) error {
	var errs []string

	idSet := make(map[string]bool, len(templates))
	for _, t := range templates {
		if t.ID == "" {
			errs = append(errs, fmt.Sprintf("template %q has no ID", t.Title))
			continue
		}
		if idSet[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate template ID: %q", t.ID))
		}
		idSet[t.ID] = true
	}

	for _, t := range templates {
		prefix := fmt.Sprintf("template %q", t.ID)

		if t.Difficulty != DifficultyQuick && t.Difficulty != DifficultyFull {
			errs = append(errs, fmt.Sprintf("%s: unknown difficulty %q", prefix, t.Difficulty))
		}
		if t.Compute == nil {
			errs = append(errs, fmt.Sprintf("%s: no compute bound", prefix))
		}
		if t.TimeLimit < 0 {
			errs = append(errs, fmt.Sprintf("%s: TimeLimit must be >= 0, got %d", prefix, t.TimeLimit))
		}

		// Stem placeholders and params must match one to one.
		params := make(map[string]bool, len(t.Params))
		for _, p := range t.Params {
			if params[p.Name] {
				errs = append(errs, fmt.Sprintf("%s: duplicate param %q", prefix, p.Name))
			}
			params[p.Name] = true
			if len(p.Choices) == 0 && p.Range.Max < p.Range.Min {
				errs = append(errs, fmt.Sprintf("%s: param %q has max < min", prefix, p.Name))
			}
		}
		used := make(map[string]bool)
		for _, m := range placeholder.FindAllStringSubmatch(t.Stem, -1) {
			used[m[1]] = true
			if !params[m[1]] {
				errs = append(errs, fmt.Sprintf("%s: stem placeholder {%s} has no param", prefix, m[1]))
			}
		}
		for _, p := range t.Params {
			if !used[p.Name] {
				errs = append(errs, fmt.Sprintf("%s: param %q not used in stem", prefix, p.Name))
			}
		}

		switch t.Decision.Kind {
		case DecisionMCQ:
			if len(t.Decision.Options) == 0 {
				errs = append(errs, fmt.Sprintf("%s: MCQ has no options", prefix))
			}
			if len(t.Decision.Options) != len(t.Decision.Points) {
				errs = append(errs, fmt.Sprintf("%s: %d options but %d point values", prefix, len(t.Decision.Options), len(t.Decision.Points)))
			}
		case DecisionNumeric, "":
			for i := 1; i < len(t.Bands); i++ {
				if t.Bands[i] < t.Bands[i-1] {
					errs = append(errs, fmt.Sprintf("%s: bands not ascending at %d", prefix, i))
					break
				}
			}
		default:
			errs = append(errs, fmt.Sprintf("%s: unknown decision kind %q", prefix, t.Decision.Kind))
		}

		switch t.SevereMiss {
		case "", "none", ruleOppositeSign, ruleOvershootX2:
		default:
			errs = append(errs, fmt.Sprintf("%s: unknown severe-miss rule %q", prefix, t.SevereMiss))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("case catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

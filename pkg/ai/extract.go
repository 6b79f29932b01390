package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"studyplan/pkg/plan/types"
)

// extractJSONBlock returns the substring spanning the first '{' through the
// last '}' in s, or "" when no object is present. Models often wrap the JSON
// in prose or code fences; the greedy span covers both.
func extractJSONBlock(s string) string {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return s[start : end+1]
}

func parsePlanResult(raw string) (*types.StudyPlanResult, error) {
	block := extractJSONBlock(raw)
	if block == "" {
		return nil, fmt.Errorf("%w: no JSON object in response", ErrInvalidOutput)
	}
	var res types.StudyPlanResult
	if err := json.Unmarshal([]byte(block), &res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if err := validatePlanResult(&res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return &res, nil
}

func validatePlanResult(r *types.StudyPlanResult) error {
	if len(r.Days) != types.PlanDays {
		return fmt.Errorf("expected %d days, got %d", types.PlanDays, len(r.Days))
	}
	for i, d := range r.Days {
		if d.Day == "" || d.Date == "" {
			return fmt.Errorf("day %d missing day or date", i)
		}
		if d.Subjects == "" {
			return fmt.Errorf("day %d missing subjects", i)
		}
		if d.Hours <= 0 {
			return fmt.Errorf("day %d has non-positive hours", i)
		}
		switch d.Priority {
		case types.PriorityHigh, types.PriorityMedium, types.PriorityLow:
		default:
			return fmt.Errorf("day %d has unknown priority %q", i, d.Priority)
		}
	}
	if strings.TrimSpace(r.MotivationalTip) == "" {
		return fmt.Errorf("missing motivationalTip")
	}
	return nil
}

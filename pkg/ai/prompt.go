package ai

import (
	"fmt"
	"strings"
	"time"

	"studyplan/entities"
	"studyplan/pkg/plan/types"
)

const systemPrompt = "You are an experienced study coach who builds realistic, encouraging study schedules. Reply ONLY with valid JSON."

// renderPlanPrompt builds the single user message sent to the completion
// service. Subjects must already be sorted nearest-deadline first.
func renderPlanPrompt(sorted []entities.Subject, dailyHours int, today time.Time, resourceCtx string) string {
	var subj strings.Builder
	for i, s := range sorted {
		left := types.DaysUntil(s.Deadline, today)
		switch {
		case s.Deadline == nil:
			fmt.Fprintf(&subj, "%d. %s (no deadline)\n", i+1, s.Name)
		default:
			fmt.Fprintf(&subj, "%d. %s (deadline %s, %d day(s) left)\n", i+1, s.Name, s.Deadline.Format("Jan 2, 2006"), left)
		}
	}

	var days strings.Builder
	for i, dd := range types.NextDates(today) {
		fmt.Fprintf(&days, "Day %d: %s, %s\n", i+1, dd.Day, dd.Date)
	}

	p := fmt.Sprintf(`Create a %d-day study plan. The student can study at most %d hour(s) per day.

SUBJECTS (most urgent first):
%s
SCHEDULE EXACTLY THESE DAYS, in order, echoing day and date verbatim:
%s
Reply with ONE JSON object exactly matching this schema, no prose before or after:
{"studyPlan":[{"day":"Monday","date":"Jan 2, 2006","subjects":"Math","hours":3,"notes":"what to focus on","priority":"high","resources":"recommended tools"},...],"motivationalTip":"one short encouraging sentence"}

Rules:
- exactly %d entries in studyPlan, one per listed day
- hours per day must not exceed %d
- priority is one of high, medium, low, driven by deadline proximity
- put subjects with the nearest deadlines on the earliest days`,
		types.PlanDays, dailyHours, subj.String(), days.String(), types.PlanDays, dailyHours)

	if strings.TrimSpace(resourceCtx) != "" {
		p += "\n\nREFERENCE NOTES (use for the notes/resources fields where relevant):\n" + resourceCtx
	}
	return p
}

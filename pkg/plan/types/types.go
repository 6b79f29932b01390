package types

import "time"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// PlanDays is the fixed schedule window: today plus the next four days.
const PlanDays = 5

// FarFuture stands in for a missing deadline when sorting.
const FarFuture = 1 << 30

type StudyPlanDay struct {
	Day       string   `json:"day"`
	Date      string   `json:"date"`
	Subjects  string   `json:"subjects"` // comma-joined when a day covers two
	Hours     int      `json:"hours"`
	Notes     string   `json:"notes"`
	Priority  Priority `json:"priority"`
	Resources string   `json:"resources,omitempty"`
}

type StudyPlanResult struct {
	Days            []StudyPlanDay `json:"studyPlan"`
	MotivationalTip string         `json:"motivationalTip"`
}

// DaysUntil returns whole days from today until the deadline.
// A nil deadline counts as FarFuture; a passed deadline floors to 0.
func DaysUntil(deadline *time.Time, today time.Time) int {
	if deadline == nil {
		return FarFuture
	}
	d := int(deadline.Sub(today).Hours() / 24.0)
	if d < 0 {
		return 0
	}
	return d
}

// PriorityFor maps days remaining to an urgency tier.
func PriorityFor(daysLeft int) Priority {
	switch {
	case daysLeft <= 7:
		return PriorityHigh
	case daysLeft <= 14:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// HigherPriority returns the more urgent of two tiers.
func HigherPriority(a, b Priority) Priority {
	rank := map[Priority]int{PriorityHigh: 3, PriorityMedium: 2, PriorityLow: 1}
	if rank[b] > rank[a] {
		return b
	}
	return a
}

type DayDate struct {
	Day  string
	Date string
}

// NextDates returns the PlanDays consecutive calendar dates starting at today,
// each with its weekday name and a human-readable date string.
func NextDates(today time.Time) []DayDate {
	out := make([]DayDate, 0, PlanDays)
	for i := 0; i < PlanDays; i++ {
		d := today.AddDate(0, 0, i)
		out = append(out, DayDate{Day: d.Weekday().String(), Date: d.Format("Jan 2, 2006")})
	}
	return out
}

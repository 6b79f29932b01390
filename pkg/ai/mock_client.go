// pkg/ai/mock_client.go

package ai

import (
	"context"
	"time"

	"studyplan/entities"
	"studyplan/pkg/plan/types"
)

type mockClient struct{}

// NewMock returns a deterministic client for running without an API key.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) GeneratePlan(_ context.Context, subjects []entities.Subject, dailyHours int, today time.Time, _ string) (*types.StudyPlanResult, error) {
	sorted := entities.SortByDeadline(subjects, today)
	days := make([]types.StudyPlanDay, 0, types.PlanDays)
	for i, dd := range types.NextDates(today) {
		name := "General Study"
		pr := types.PriorityLow
		if len(sorted) > 0 {
			s := sorted[i%len(sorted)]
			name = s.Name
			pr = types.PriorityFor(types.DaysUntil(s.Deadline, today))
		}
		days = append(days, types.StudyPlanDay{
			Day:      dd.Day,
			Date:     dd.Date,
			Subjects: name,
			Hours:    dailyHours,
			Notes:    "Review core material and work through practice problems. (mock)",
			Priority: pr,
		})
	}
	return &types.StudyPlanResult{
		Days:            days,
		MotivationalTip: "Small daily sessions beat one long cram. (mock)",
	}, nil
}

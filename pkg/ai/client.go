// pkg/ai/client.go

package ai

import (
	"context"
	"time"

	"studyplan/entities"
	"studyplan/pkg/plan/types"
)

type Client interface {
	// GeneratePlan asks the completion service for a 5-day study plan.
	// resourceCtx carries optional library snippets to ground the answer.
	GeneratePlan(ctx context.Context, subjects []entities.Subject, dailyHours int, today time.Time, resourceCtx string) (*types.StudyPlanResult, error)
}

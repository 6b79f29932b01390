package service

import (
	"context"

	"studyplan/entities"
)

type GenerateInput struct {
	Title      string
	DailyHours int
	Subjects   []entities.Subject
}

type PlanService interface {
	// Generate always produces a plan: the AI path first, the deterministic
	// fallback on any failure. A non-nil error means the plan could not be
	// saved; the returned plan is still usable.
	Generate(ctx context.Context, uid string, in GenerateInput) (*entities.StudyPlan, error)
	List(uid string) ([]entities.StudyPlan, error)
	Get(id uint, uid string) (*entities.StudyPlan, error)
	Delete(id uint, uid string) error
}

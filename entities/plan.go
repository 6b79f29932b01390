package entities

import (
	"time"

	"studyplan/pkg/plan/types"
)

const (
	PlanSourceAI       = "ai"
	PlanSourceFallback = "fallback"
)

type StudyPlan struct {
	PlanID          uint                 `gorm:"primaryKey" json:"plan_id"`
	UserID          string               `json:"user_id" gorm:"index"`
	Title           string               `json:"title"`
	Subjects        []SubjectSnapshot    `gorm:"serializer:json" json:"subjects"`
	DailyHours      int                  `json:"daily_hours"`
	Days            []types.StudyPlanDay `gorm:"serializer:json" json:"days"`
	MotivationalTip string               `json:"motivational_tip"`
	Source          string               `json:"source"` // PlanSourceAI|PlanSourceFallback
	CreatedAt       time.Time
}

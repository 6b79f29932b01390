package repository

import "studyplan/entities"

type PlanRepository interface {
	Create(p *entities.StudyPlan) error
	ListByUser(uid string) ([]entities.StudyPlan, error)
	FindByID(id uint, uid string) (*entities.StudyPlan, error)
	Delete(id uint, uid string) error
}

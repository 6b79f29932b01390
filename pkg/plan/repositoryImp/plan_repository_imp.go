package repositoryImp

import (
	"studyplan/entities"
	"studyplan/pkg/plan/repository"

	"gorm.io/gorm"
)

type planRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlanRepository { return &planRepo{db} }

func (r *planRepo) Create(p *entities.StudyPlan) error { return r.db.Create(p).Error }

// ListByUser returns the user's plans, newest first.
func (r *planRepo) ListByUser(uid string) ([]entities.StudyPlan, error) {
	var ps []entities.StudyPlan
	if err := r.db.Where("user_id = ?", uid).Order("created_at DESC").Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *planRepo) FindByID(id uint, uid string) (*entities.StudyPlan, error) {
	var p entities.StudyPlan
	if err := r.db.Where("plan_id = ? AND user_id = ?", id, uid).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *planRepo) Delete(id uint, uid string) error {
	res := r.db.Where("plan_id = ? AND user_id = ?", id, uid).Delete(&entities.StudyPlan{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

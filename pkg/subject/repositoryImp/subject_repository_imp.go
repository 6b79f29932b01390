package repositoryImp

import (
	"studyplan/entities"
	"studyplan/pkg/subject/repository"

	"gorm.io/gorm"
)

type subjectRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SubjectRepository { return &subjectRepo{db} }

func (r *subjectRepo) Create(s *entities.Subject) error { return r.db.Create(s).Error }

func (r *subjectRepo) ListByUser(uid string) ([]entities.Subject, error) {
	var out []entities.Subject
	if err := r.db.Where("user_id = ?", uid).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *subjectRepo) FindByIDs(ids []string, uid string) ([]entities.Subject, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []entities.Subject
	if err := r.db.Where("subject_id IN ? AND user_id = ?", ids, uid).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *subjectRepo) Delete(id, uid string) error {
	res := r.db.Where("subject_id = ? AND user_id = ?", id, uid).Delete(&entities.Subject{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

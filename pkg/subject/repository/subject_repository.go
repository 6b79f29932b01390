package repository

import "studyplan/entities"

type SubjectRepository interface {
	Create(s *entities.Subject) error
	ListByUser(uid string) ([]entities.Subject, error)
	FindByIDs(ids []string, uid string) ([]entities.Subject, error)
	Delete(id, uid string) error
}

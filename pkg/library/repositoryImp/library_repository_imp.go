package repositoryImp

import (
	"studyplan/entities"
	"studyplan/pkg/library/repository"

	"gorm.io/gorm"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ResourceRepository { return &repo{db} }

func (r *repo) CreateDoc(d *entities.ResourceDoc) error { return r.db.Create(d).Error }

func (r *repo) BulkInsertChunks(cs []entities.ResourceChunk) error { return r.db.Create(&cs).Error }

func (r *repo) ListDocs() ([]entities.ResourceDoc, error) {
	var ds []entities.ResourceDoc
	return ds, r.db.Order("doc_id DESC").Find(&ds).Error
}

func (r *repo) AllChunks() ([]entities.ResourceChunk, error) {
	var cs []entities.ResourceChunk
	return cs, r.db.Find(&cs).Error
}

func (r *repo) DocsByIDs(ids []uint) (map[uint]entities.ResourceDoc, error) {
	if len(ids) == 0 {
		return map[uint]entities.ResourceDoc{}, nil
	}
	var ds []entities.ResourceDoc
	if err := r.db.Where("doc_id IN ?", ids).Find(&ds).Error; err != nil {
		return nil, err
	}
	m := make(map[uint]entities.ResourceDoc, len(ds))
	for i := range ds {
		m[ds[i].DocID] = ds[i]
	}
	return m, nil
}

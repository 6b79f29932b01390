package repository

import "studyplan/entities"

type ResourceRepository interface {
	CreateDoc(*entities.ResourceDoc) error
	BulkInsertChunks([]entities.ResourceChunk) error
	ListDocs() ([]entities.ResourceDoc, error)
	AllChunks() ([]entities.ResourceChunk, error)
	DocsByIDs(ids []uint) (map[uint]entities.ResourceDoc, error)
}

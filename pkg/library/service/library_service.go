package service

import "studyplan/entities"

type LibraryService interface {
	UpsertDocument(title, tags, text, sourceURL string) (*entities.ResourceDoc, int, error)
	Search(query string, k int) ([]entities.ResourceChunk, error)
	DocsMeta(ids []uint) (map[uint]entities.ResourceDoc, error)
}

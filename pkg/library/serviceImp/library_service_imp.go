package serviceImp

import (
	"sort"
	"strings"

	"studyplan/entities"
	"studyplan/pkg/library/repository"
)

type Svc struct{ r repository.ResourceRepository }

func New(r repository.ResourceRepository) *Svc { return &Svc{r: r} }

// chunkText splits text into pieces of roughly maxRunes, breaking on
// newlines once the budget is reached.
func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	parts := []string{}
	cur := strings.Builder{}
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if strings.TrimSpace(cur.String()) != "" {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *Svc) UpsertDocument(title, tags, text, sourceURL string) (*entities.ResourceDoc, int, error) {
	d := &entities.ResourceDoc{Title: title, Tags: tags, SourceURL: sourceURL}
	if err := s.r.CreateDoc(d); err != nil {
		return nil, 0, err
	}

	chs := chunkText(text, 1000)
	if len(chs) == 0 {
		return d, 0, nil
	}

	rows := make([]entities.ResourceChunk, len(chs))
	for i := range chs {
		rows[i] = entities.ResourceChunk{DocID: d.DocID, Ord: i, Text: chs[i]}
	}
	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return d, len(rows), nil
}

// Search ranks chunks by keyword overlap with the query. Chunks that match
// no token at all are dropped.
func (s *Svc) Search(query string, k int) ([]entities.ResourceChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}
	tokens := strings.Fields(strings.ToLower(q))

	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	type scored struct {
		ch entities.ResourceChunk
		sc int
	}
	list := make([]scored, 0, len(chunks))
	for _, ch := range chunks {
		lower := strings.ToLower(ch.Text)
		sc := 0
		for _, tok := range tokens {
			sc += strings.Count(lower, tok)
		}
		if sc > 0 {
			list = append(list, scored{ch, sc})
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].sc > list[j].sc })

	if k > len(list) {
		k = len(list)
	}
	out := make([]entities.ResourceChunk, 0, k)
	for _, it := range list[:k] {
		out = append(out, it.ch)
	}
	return out, nil
}

func (s *Svc) DocsMeta(ids []uint) (map[uint]entities.ResourceDoc, error) {
	return s.r.DocsByIDs(ids)
}

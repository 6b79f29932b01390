package rules

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadFromFiles builds a Planner from the built-in tables plus optional
// overrides: a CSV of category keywords/notes and an XLSX sheet of
// recommended resources. Either path may be empty.
func LoadFromFiles(categoryCSV, resourceXLSX string) (Planner, error) {
	p := &planner{keywords: defaultKeywords(), templates: defaultTemplates()}

	if categoryCSV != "" {
		if err := p.loadCategoryCSV(categoryCSV); err != nil {
			return nil, err
		}
	}
	if resourceXLSX != "" {
		if err := p.loadResourceXLSX(resourceXLSX); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func normHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// loadCategoryCSV overrides keyword lists and note templates per category.
// Expected columns: Category, Keywords (| separated), Notes, Resources
// (resources optional; also settable via XLSX).
func (p *planner) loadCategoryCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return err
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[normHeader(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[normHeader(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cCat := findAny("Category", "cat")
	cKw := findAny("Keywords", "keyword", "match")
	cNotes := findAny("Notes", "note", "tips")
	cRes := findAny("Resources", "resource", "tools")
	if cCat == -1 {
		return fmt.Errorf("category CSV missing Category column. Found headers: %v", head)
	}

	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}

		cat := Category(strings.ToLower(get(cCat)))
		if _, known := p.templates[cat]; !known {
			continue // skip unknown categories
		}
		if kw := get(cKw); kw != "" {
			var list []string
			for _, k := range strings.Split(kw, "|") {
				if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
					list = append(list, k)
				}
			}
			if len(list) > 0 {
				p.keywords[cat] = list
			}
		}
		t := p.templates[cat]
		if v := get(cNotes); v != "" {
			t.Notes = v
		}
		if v := get(cRes); v != "" {
			t.Resources = v
		}
		p.templates[cat] = t
	}
	return nil
}

// loadResourceXLSX reads per-category resource overrides from the first
// sheet: column A category, column B resource text.
func (p *planner) loadResourceXLSX(path string) error {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer x.Close()

	sheet := x.GetSheetName(0)
	rows, err := x.GetRows(sheet)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue // header or short row
		}
		cat := Category(strings.ToLower(strings.TrimSpace(row[0])))
		t, known := p.templates[cat]
		if !known {
			continue
		}
		if v := strings.TrimSpace(row[1]); v != "" {
			t.Resources = v
			p.templates[cat] = t
		}
	}
	return nil
}

package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"studyplan/entities"
)

func TestLoadFromFiles_Defaults(t *testing.T) {
	p, err := LoadFromFiles("", "")
	require.NoError(t, err)
	res := p.Fallback([]entities.Subject{subj("Math", 5)}, 4, today)
	assert.Contains(t, res.Days[0].Resources, "Khan Academy")
}

func TestLoadFromFiles_CategoryCSVOverrides(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "categories.csv")
	data := "Category,Keywords,Notes,Resources\n" +
		"math,math|numbers,Drill mental arithmetic.,Abacus and times tables\n" +
		"bogus,zzz,ignored,ignored\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(data), 0o644))

	p, err := LoadFromFiles(csvPath, "")
	require.NoError(t, err)

	res := p.Fallback([]entities.Subject{subj("Numbers Theory", 5)}, 4, today)
	assert.Contains(t, res.Days[0].Notes, "mental arithmetic")
	assert.Contains(t, res.Days[0].Resources, "Abacus")
}

func TestLoadFromFiles_ResourceXLSXOverrides(t *testing.T) {
	dir := t.TempDir()
	xlsxPath := filepath.Join(dir, "resources.xlsx")

	x := excelize.NewFile()
	sheet := x.GetSheetName(0)
	require.NoError(t, x.SetCellValue(sheet, "A1", "Category"))
	require.NoError(t, x.SetCellValue(sheet, "B1", "Resources"))
	require.NoError(t, x.SetCellValue(sheet, "A2", "physics"))
	require.NoError(t, x.SetCellValue(sheet, "B2", "Feynman lectures only"))
	require.NoError(t, x.SaveAs(xlsxPath))

	p, err := LoadFromFiles("", xlsxPath)
	require.NoError(t, err)

	res := p.Fallback([]entities.Subject{subj("Physics", 5)}, 4, today)
	assert.Equal(t, "Feynman lectures only", res.Days[0].Resources)
}

func TestLoadFromFiles_MissingFile(t *testing.T) {
	_, err := LoadFromFiles("/nonexistent/categories.csv", "")
	assert.Error(t, err)
}

package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

func writeTestWorkbook(t *testing.T, symptomRows, conditionRows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	symptomHeader := []any{
		"ID", "Category", "Default Severity", "Body Part", "Related Symptoms",
		"Name (en)", "Name (hi)", "Description (en)", "Voice Keywords (en)",
	}
	conditionHeader := []any{
		"ID", "Category", "Severity", "Common Symptoms", "Rare Symptoms",
		"Urgency", "Prevalence", "Name (en)", "Recommendations (en)",
	}

	writeSheet := func(sheet string, header []any, rows [][]any) {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(sheet, cell, &row))
		}
	}

	writeSheet(SheetSymptoms, symptomHeader, symptomRows)
	writeSheet(SheetConditions, conditionHeader, conditionRows)
	f.DeleteSheet("Sheet1")

	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadWorkbook(t *testing.T) {
	path := writeTestWorkbook(t,
		[][]any{
			{"fever", "general", "moderate", "whole_body", "headache", "Fever", "बुखार", "High temperature", "fever|temperature"},
			{"headache", "neurological", "mild", "head", "", "Headache", "सिरदर्द", "Head pain", "headache"},
		},
		[][]any{
			{"viral_fever", "infectious", "moderate", "fever|headache", "", "low", "high", "Viral fever", "Rest|Drink fluids"},
		},
	)

	c, err := LoadWorkbook(path)
	require.NoError(t, err)

	assert.Len(t, c.Symptoms(), 2)
	assert.Len(t, c.Conditions(), 1)
	// Occupational table always comes from the compiled-in set.
	assert.Len(t, c.OccupationalConditions(), 3)

	s, ok := c.SymptomByID("fever")
	require.True(t, ok)
	assert.Equal(t, "बुखार", s.Name.Resolve(models.LangHindi))
	assert.Equal(t, []string{"fever", "temperature"}, s.VoiceKeywords.Resolve(models.LangEnglish))
	assert.Equal(t, []string{"headache"}, s.RelatedSymptoms)

	cond, ok := c.ConditionByID("viral_fever")
	require.True(t, ok)
	assert.Equal(t, []string{"fever", "headache"}, cond.CommonSymptoms)
	assert.Equal(t, models.UrgencyLow, cond.Urgency)
	assert.Equal(t, models.PrevalenceHigh, cond.PrevalenceInMigrants)
	assert.Equal(t, []string{"Rest", "Drink fluids"}, cond.Recommendations.Resolve(models.LangEnglish))
}

func TestLoadWorkbook_SkipsBlankRows(t *testing.T) {
	path := writeTestWorkbook(t,
		[][]any{
			{"fever", "general", "moderate", "", "", "Fever", "", "", ""},
			{"", "", "", "", "", "", "", "", ""},
		},
		[][]any{
			{"viral_fever", "infectious", "moderate", "fever", "", "low", "high", "Viral fever", ""},
		},
	)

	c, err := LoadWorkbook(path)
	require.NoError(t, err)
	assert.Len(t, c.Symptoms(), 1)
}

func TestLoadWorkbook_InvalidSeverity(t *testing.T) {
	path := writeTestWorkbook(t,
		[][]any{
			{"fever", "general", "extreme", "", "", "Fever", "", "", ""},
		},
		[][]any{
			{"viral_fever", "infectious", "moderate", "fever", "", "low", "high", "Viral fever", ""},
		},
	)

	_, err := LoadWorkbook(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid default severity")
}

func TestLoadWorkbook_BrokenReference(t *testing.T) {
	path := writeTestWorkbook(t,
		[][]any{
			{"fever", "general", "moderate", "", "", "Fever", "", "", ""},
		},
		[][]any{
			{"viral_fever", "infectious", "moderate", "fever|ghost_symptom", "", "low", "high", "Viral fever", ""},
		},
	)

	_, err := LoadWorkbook(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown symptom")
}

func TestLoadWorkbook_MissingFile(t *testing.T) {
	_, err := LoadWorkbook(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
}

func TestWriteTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.xlsx")
	require.NoError(t, WriteTemplate(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetSymptoms)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0], "ID")
	assert.Contains(t, rows[0], "Name (ml)")

	rows, err = f.GetRows(SheetConditions)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0], "Urgency")
}

package catalog

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

// The health department maintains the reference tables as an Excel workbook
// with one sheet per table. Localized columns carry a language suffix, e.g.
// "Name (hi)"; list cells are pipe-separated.

const (
	SheetSymptoms   = "Symptoms"
	SheetConditions = "Conditions"

	listSeparator = "|"
)

// SymptomSheetHeader is the expected header row of the Symptoms sheet.
var SymptomSheetHeader = []string{
	"ID",
	"Category",
	"Default Severity",
	"Body Part",
	"Related Symptoms",
}

// ConditionSheetHeader is the expected header row of the Conditions sheet.
var ConditionSheetHeader = []string{
	"ID",
	"Category",
	"Severity",
	"Common Symptoms",
	"Rare Symptoms",
	"Urgency",
	"Prevalence",
}

// LoadWorkbook reads the symptom and condition tables from an Excel workbook
// and returns a validated Catalog. Occupational conditions always come from
// the compiled-in table; the workbook overrides symptoms and conditions only.
func LoadWorkbook(path string) (*Catalog, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	symptoms, err := parseSymptomSheet(f)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", SheetSymptoms, err)
	}
	conditions, err := parseConditionSheet(f)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", SheetConditions, err)
	}

	c := New(symptoms, conditions, defaultOccupationalConditions)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("workbook failed validation: %w", err)
	}
	return c, nil
}

func parseSymptomSheet(f *excelize.File) ([]models.Symptom, error) {
	rows, err := f.GetRows(SheetSymptoms)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows")
	}

	headerMap := make(map[string]int)
	for i, h := range rows[0] {
		headerMap[strings.TrimSpace(h)] = i
	}
	for _, required := range SymptomSheetHeader {
		if _, ok := headerMap[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	symptoms := make([]models.Symptom, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2
		id := cellAt(row, headerMap["ID"])
		if id == "" {
			continue // blank row
		}

		severity := models.SymptomSeverity(cellAt(row, headerMap["Default Severity"]))
		if !severity.Valid() {
			return nil, fmt.Errorf("row %d: invalid default severity %q", rowNum, severity)
		}

		s := models.Symptom{
			ID:              id,
			Category:        cellAt(row, headerMap["Category"]),
			DefaultSeverity: severity,
			BodyPart:        cellAt(row, headerMap["Body Part"]),
			RelatedSymptoms: splitList(cellAt(row, headerMap["Related Symptoms"])),
			Name:            localizedText(row, headerMap, "Name"),
			Description:     localizedText(row, headerMap, "Description"),
			VoiceKeywords:   localizedList(row, headerMap, "Voice Keywords"),
		}
		if len(s.Name) == 0 {
			return nil, fmt.Errorf("row %d: symptom %s has no name in any language", rowNum, id)
		}
		symptoms = append(symptoms, s)
	}
	return symptoms, nil
}

func parseConditionSheet(f *excelize.File) ([]models.Condition, error) {
	rows, err := f.GetRows(SheetConditions)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows")
	}

	headerMap := make(map[string]int)
	for i, h := range rows[0] {
		headerMap[strings.TrimSpace(h)] = i
	}
	for _, required := range ConditionSheetHeader {
		if _, ok := headerMap[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	conditions := make([]models.Condition, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2
		id := cellAt(row, headerMap["ID"])
		if id == "" {
			continue
		}

		cond := models.Condition{
			ID:                   id,
			Category:             cellAt(row, headerMap["Category"]),
			Severity:             models.ConditionSeverity(cellAt(row, headerMap["Severity"])),
			CommonSymptoms:       splitList(cellAt(row, headerMap["Common Symptoms"])),
			RareSymptoms:         splitList(cellAt(row, headerMap["Rare Symptoms"])),
			Urgency:              models.UrgencyLevel(cellAt(row, headerMap["Urgency"])),
			PrevalenceInMigrants: models.Prevalence(cellAt(row, headerMap["Prevalence"])),
			Name:                 localizedText(row, headerMap, "Name"),
			Description:          localizedText(row, headerMap, "Description"),
			Recommendations:      localizedList(row, headerMap, "Recommendations"),
		}
		if len(cond.Name) == 0 {
			return nil, fmt.Errorf("row %d: condition %s has no name in any language", rowNum, id)
		}
		conditions = append(conditions, cond)
	}
	return conditions, nil
}

// WriteTemplate writes an empty workbook with the expected sheets and
// headers, including localized columns for every supported language.
func WriteTemplate(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeHeaderSheet(f, SheetSymptoms, symptomTemplateHeader()); err != nil {
		return err
	}
	if err := writeHeaderSheet(f, SheetConditions, conditionTemplateHeader()); err != nil {
		return err
	}
	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}
	return nil
}

func writeHeaderSheet(f *excelize.File, sheetName string, headers []string) error {
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheetName, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
	}
	return nil
}

func symptomTemplateHeader() []string {
	headers := append([]string{}, SymptomSheetHeader...)
	for _, lang := range supportedLanguages() {
		headers = append(headers,
			langColumn("Name", lang),
			langColumn("Description", lang),
			langColumn("Voice Keywords", lang),
		)
	}
	return headers
}

func conditionTemplateHeader() []string {
	headers := append([]string{}, ConditionSheetHeader...)
	for _, lang := range supportedLanguages() {
		headers = append(headers,
			langColumn("Name", lang),
			langColumn("Description", lang),
			langColumn("Recommendations", lang),
		)
	}
	return headers
}

func supportedLanguages() []models.Language {
	return []models.Language{
		models.LangEnglish,
		models.LangHindi,
		models.LangBengali,
		models.LangOdia,
		models.LangTamil,
		models.LangNepali,
		models.LangMalayalam,
	}
}

// langColumn builds a localized column name, e.g. "Name (hi)".
func langColumn(base string, lang models.Language) string {
	return base + " (" + string(lang) + ")"
}

func localizedText(row []string, headerMap map[string]int, base string) models.LocalizedText {
	out := models.LocalizedText{}
	for _, lang := range supportedLanguages() {
		idx, ok := headerMap[langColumn(base, lang)]
		if !ok {
			continue
		}
		if v := cellAt(row, idx); v != "" {
			out[lang] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func localizedList(row []string, headerMap map[string]int, base string) models.LocalizedList {
	out := models.LocalizedList{}
	for _, lang := range supportedLanguages() {
		idx, ok := headerMap[langColumn(base, lang)]
		if !ok {
			continue
		}
		if items := splitList(cellAt(row, idx)); len(items) > 0 {
			out[lang] = items
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func splitList(cell string) []string {
	if cell == "" {
		return nil
	}
	parts := strings.Split(cell, listSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

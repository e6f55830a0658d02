package service

import (
	"go.uber.org/zap"

	"github.com/BlackDevil1928/Shramik-Care/internal/catalog"
	"github.com/BlackDevil1928/Shramik-Care/internal/engine/extractor"
	"github.com/BlackDevil1928/Shramik-Care/internal/engine/matcher"
	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

// SymptomCheckResult is the full outcome of one symptom-check pass: candidate
// conditions plus the single urgency value surfaced to the user.
type SymptomCheckResult struct {
	Extracted []models.ExtractedSymptom `json:"extracted_symptoms,omitempty"`
	Matches   []models.ConditionMatch   `json:"matches"`
	Urgency   models.UrgencyLevel       `json:"urgency"`
}

// SymptomService runs symptom extraction and condition matching over the
// reference catalogs. Stateless; safe for concurrent use.
type SymptomService struct {
	catalog   *catalog.Catalog
	extractor *extractor.Extractor
	matcher   *matcher.Matcher
	logger    *zap.Logger
}

// NewSymptomService creates a SymptomService over one catalog.
func NewSymptomService(c *catalog.Catalog, logger *zap.Logger) *SymptomService {
	return &SymptomService{
		catalog:   c,
		extractor: extractor.New(c),
		matcher:   matcher.New(c),
		logger:    logger,
	}
}

// CheckSelected matches explicitly selected symptoms against the condition
// catalog. Recomputed from scratch on every call; nothing is persisted.
func (s *SymptomService) CheckSelected(selected []models.SelectedSymptom) *SymptomCheckResult {
	matches := s.matcher.Match(selected)

	return &SymptomCheckResult{
		Matches: matches,
		Urgency: s.matcher.Urgency(matches),
	}
}

// CheckVoice extracts symptoms from a transcript, then matches the extracted
// set as if the user had selected it. Extraction severity estimates carry
// through to the matcher.
func (s *SymptomService) CheckVoice(input models.VoiceInput) *SymptomCheckResult {
	extracted := s.extractor.Extract(input)

	selected := make([]models.SelectedSymptom, 0, len(extracted))
	for _, e := range extracted {
		selected = append(selected, models.SelectedSymptom{
			SymptomID: e.SymptomID,
			Severity:  e.Severity,
		})
	}

	matches := s.matcher.Match(selected)

	s.logger.Debug("Voice symptom check",
		zap.String("language", string(input.Language)),
		zap.Int("extracted", len(extracted)),
		zap.Int("matches", len(matches)),
	)

	return &SymptomCheckResult{
		Extracted: extracted,
		Matches:   matches,
		Urgency:   s.matcher.Urgency(matches),
	}
}

// SearchSymptoms finds symptoms by name, description or voice keyword in the
// given language.
func (s *SymptomService) SearchSymptoms(query string, lang models.Language) []models.Symptom {
	return s.catalog.SearchSymptoms(query, lang)
}

// SymptomsByCategory lists the symptoms of one category.
func (s *SymptomService) SymptomsByCategory(category string) []models.Symptom {
	return s.catalog.SymptomsByCategory(category)
}

// RelatedSymptoms lists the symptoms related to one symptom, for follow-up
// prompting.
func (s *SymptomService) RelatedSymptoms(symptomID string) []models.Symptom {
	return s.catalog.RelatedSymptoms(symptomID)
}

// Condition resolves one condition by id.
func (s *SymptomService) Condition(conditionID string) (*models.Condition, bool) {
	return s.catalog.ConditionByID(conditionID)
}

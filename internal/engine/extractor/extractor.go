package extractor

import (
	"sort"
	"strings"

	"github.com/BlackDevil1928/Shramik-Care/internal/catalog"
	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

// voiceConfidenceFactor discounts the transcription confidence: keyword
// extraction from speech is less reliable than explicit selection.
const voiceConfidenceFactor = 0.8

// contextWindow is the number of characters kept on each side of a keyword
// hit when estimating severity from surrounding words.
const contextWindow = 20

// Extractor turns free-text transcripts into symptom candidates by keyword
// matching against the catalog. Pure; safe for concurrent use.
type Extractor struct {
	catalog *catalog.Catalog
}

// New creates an Extractor over the given catalog.
func New(c *catalog.Catalog) *Extractor {
	return &Extractor{catalog: c}
}

// Extract scans the transcript for every catalog symptom's voice keywords in
// the input language (falling back to English keyword lists). Candidates are
// deduplicated by symptom id keeping the highest confidence, then sorted
// descending. An empty or unmatched transcript yields an empty result, never
// an error.
func (e *Extractor) Extract(input models.VoiceInput) []models.ExtractedSymptom {
	lowerTranscript := strings.ToLower(input.Transcript)
	if lowerTranscript == "" {
		return nil
	}

	best := make(map[string]models.ExtractedSymptom)
	for _, symptom := range e.catalog.Symptoms() {
		keywords := symptom.VoiceKeywords.Resolve(input.Language)

		for _, keyword := range keywords {
			keywordLower := strings.ToLower(keyword)
			if keywordLower == "" {
				continue
			}
			idx := strings.Index(lowerTranscript, keywordLower)
			if idx < 0 {
				continue
			}

			context := contextAround(input.Transcript, idx, len(keywordLower))
			candidate := models.ExtractedSymptom{
				SymptomID:  symptom.ID,
				Confidence: input.Confidence * voiceConfidenceFactor,
				Context:    context,
				Severity:   estimateSeverity(context, input.Language),
				BodyPart:   symptom.BodyPart,
			}

			if existing, ok := best[symptom.ID]; !ok || existing.Confidence < candidate.Confidence {
				best[symptom.ID] = candidate
			}
		}
	}

	if len(best) == 0 {
		return nil
	}

	out := make([]models.ExtractedSymptom, 0, len(best))
	for _, c := range best {
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].SymptomID < out[j].SymptomID
	})
	return out
}

// contextAround slices a fixed-width window around a keyword hit. Byte
// offsets are fine here: the window only feeds substring checks against the
// same transcript encoding.
func contextAround(transcript string, idx, keywordLen int) string {
	start := idx - contextWindow
	if start < 0 {
		start = 0
	}
	end := idx + keywordLen + contextWindow
	if end > len(transcript) {
		end = len(transcript)
	}
	return transcript[start:end]
}

// severityKeywords holds per-language intensity words checked against the
// context window, most severe tier first. Languages without a table use the
// English one.
var severityKeywords = map[models.Language]map[models.SymptomSeverity][]string{
	models.LangEnglish: {
		models.SeverityCritical: {"extreme", "unbearable", "worst", "emergency", "can't breathe", "chest pain"},
		models.SeveritySevere:   {"very", "really", "terrible", "awful", "intense", "sharp"},
		models.SeverityModerate: {"bad", "uncomfortable", "noticeable", "bothering"},
		models.SeverityMild:     {"little", "slight", "minor", "light"},
	},
	models.LangHindi: {
		models.SeverityCritical: {"बहुत ज्यादा", "असह्य", "तेज़", "गंभीर"},
		models.SeveritySevere:   {"बहुत", "तेज़", "भयंकर"},
		models.SeverityModerate: {"बुरा", "परेशान"},
		models.SeverityMild:     {"हल्का", "थोड़ा"},
	},
}

// severityOrder is the check order: the first tier with a keyword hit wins.
var severityOrder = []models.SymptomSeverity{
	models.SeverityCritical,
	models.SeveritySevere,
	models.SeverityModerate,
}

// estimateSeverity guesses a severity tier from intensity words near the
// keyword hit, defaulting to mild when nothing matches.
func estimateSeverity(context string, lang models.Language) models.SymptomSeverity {
	contextLower := strings.ToLower(context)

	table, ok := severityKeywords[lang]
	if !ok {
		table = severityKeywords[models.LangEnglish]
	}

	for _, tier := range severityOrder {
		for _, word := range table[tier] {
			if strings.Contains(contextLower, word) {
				return tier
			}
		}
	}
	return models.SeverityMild
}

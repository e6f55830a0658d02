package catalog

import (
	"fmt"
	"strings"

	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

// Catalog holds the immutable reference tables the engine scores against.
// All lookups are read-only; a Catalog is safe for concurrent use.
type Catalog struct {
	symptoms     []models.Symptom
	conditions   []models.Condition
	occupational []models.OccupationalCondition

	symptomByID   map[string]*models.Symptom
	conditionByID map[string]*models.Condition
}

// New builds a Catalog from the given tables.
func New(symptoms []models.Symptom, conditions []models.Condition, occupational []models.OccupationalCondition) *Catalog {
	c := &Catalog{
		symptoms:      symptoms,
		conditions:    conditions,
		occupational:  occupational,
		symptomByID:   make(map[string]*models.Symptom, len(symptoms)),
		conditionByID: make(map[string]*models.Condition, len(conditions)),
	}
	for i := range c.symptoms {
		c.symptomByID[c.symptoms[i].ID] = &c.symptoms[i]
	}
	for i := range c.conditions {
		c.conditionByID[c.conditions[i].ID] = &c.conditions[i]
	}
	return c
}

// NewDefault builds a Catalog from the compiled-in reference tables.
func NewDefault() *Catalog {
	return New(defaultSymptoms, defaultConditions, defaultOccupationalConditions)
}

// Symptoms returns all reference symptoms.
func (c *Catalog) Symptoms() []models.Symptom {
	return c.symptoms
}

// Conditions returns all reference conditions.
func (c *Catalog) Conditions() []models.Condition {
	return c.conditions
}

// OccupationalConditions returns all occupational reference conditions.
func (c *Catalog) OccupationalConditions() []models.OccupationalCondition {
	return c.occupational
}

// SymptomByID looks up a symptom, returning false when unknown.
func (c *Catalog) SymptomByID(id string) (*models.Symptom, bool) {
	s, ok := c.symptomByID[id]
	return s, ok
}

// ConditionByID looks up a condition, returning false when unknown.
func (c *Catalog) ConditionByID(id string) (*models.Condition, bool) {
	cond, ok := c.conditionByID[id]
	return cond, ok
}

// SymptomsByCategory returns all symptoms in a category.
func (c *Catalog) SymptomsByCategory(category string) []models.Symptom {
	var out []models.Symptom
	for _, s := range c.symptoms {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// RelatedSymptoms resolves the related-symptom ids of a symptom, silently
// dropping ids missing from the catalog.
func (c *Catalog) RelatedSymptoms(symptomID string) []models.Symptom {
	s, ok := c.symptomByID[symptomID]
	if !ok || len(s.RelatedSymptoms) == 0 {
		return nil
	}
	var out []models.Symptom
	for _, id := range s.RelatedSymptoms {
		if related, ok := c.symptomByID[id]; ok {
			out = append(out, *related)
		}
	}
	return out
}

// SearchLimit caps free-text search results.
const SearchLimit = 10

// SearchSymptoms performs a case-insensitive free-text search over symptom
// names, descriptions and voice keywords in the given language (falling back
// to English). At most SearchLimit results are returned.
func (c *Catalog) SearchSymptoms(query string, lang models.Language) []models.Symptom {
	queryLower := strings.ToLower(strings.TrimSpace(query))
	if queryLower == "" {
		return nil
	}

	var out []models.Symptom
	for _, s := range c.symptoms {
		if len(out) >= SearchLimit {
			break
		}

		name := strings.ToLower(s.Name.Resolve(lang))
		description := strings.ToLower(s.Description.Resolve(lang))

		keywordMatch := false
		for _, keyword := range resolveKeywords(s.VoiceKeywords, lang) {
			kw := strings.ToLower(keyword)
			if strings.Contains(kw, queryLower) || strings.Contains(queryLower, kw) {
				keywordMatch = true
				break
			}
		}

		if strings.Contains(name, queryLower) || strings.Contains(description, queryLower) || keywordMatch {
			out = append(out, s)
		}
	}
	return out
}

// Validate checks referential integrity of the loaded tables: unique ids and
// condition symptom lists that resolve against the symptom table.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.symptoms))
	for _, s := range c.symptoms {
		if s.ID == "" {
			return fmt.Errorf("symptom with empty id")
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate symptom id: %s", s.ID)
		}
		seen[s.ID] = true
	}

	seenCond := make(map[string]bool, len(c.conditions))
	for _, cond := range c.conditions {
		if cond.ID == "" {
			return fmt.Errorf("condition with empty id")
		}
		if seenCond[cond.ID] {
			return fmt.Errorf("duplicate condition id: %s", cond.ID)
		}
		seenCond[cond.ID] = true

		if len(cond.CommonSymptoms) == 0 {
			return fmt.Errorf("condition %s has no common symptoms", cond.ID)
		}
		for _, sid := range cond.CommonSymptoms {
			if _, ok := c.symptomByID[sid]; !ok {
				return fmt.Errorf("condition %s references unknown symptom %s", cond.ID, sid)
			}
		}
		for _, sid := range cond.RareSymptoms {
			if _, ok := c.symptomByID[sid]; !ok {
				return fmt.Errorf("condition %s references unknown rare symptom %s", cond.ID, sid)
			}
		}
	}

	seenOcc := make(map[string]bool, len(c.occupational))
	for _, oc := range c.occupational {
		if oc.ID == "" {
			return fmt.Errorf("occupational condition with empty id")
		}
		if seenOcc[oc.ID] {
			return fmt.Errorf("duplicate occupational condition id: %s", oc.ID)
		}
		seenOcc[oc.ID] = true
		if oc.PrevalenceRate < 0 || oc.PrevalenceRate > 1 {
			return fmt.Errorf("occupational condition %s has prevalence rate out of [0,1]: %f", oc.ID, oc.PrevalenceRate)
		}
	}

	return nil
}

// resolveKeywords returns a symptom's keyword list for lang, falling back to
// English.
func resolveKeywords(keywords models.LocalizedList, lang models.Language) []string {
	return keywords.Resolve(lang)
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

func TestNewDefault_PassesValidation(t *testing.T) {
	c := NewDefault()
	require.NoError(t, c.Validate())

	assert.NotEmpty(t, c.Symptoms())
	assert.NotEmpty(t, c.Conditions())
	assert.Len(t, c.OccupationalConditions(), 3)
}

func TestSymptomByID(t *testing.T) {
	c := NewDefault()

	s, ok := c.SymptomByID("fever")
	require.True(t, ok)
	assert.Equal(t, "Fever", s.Name.Resolve(models.LangEnglish))
	assert.Equal(t, models.SeverityModerate, s.DefaultSeverity)

	_, ok = c.SymptomByID("no_such_symptom")
	assert.False(t, ok)
}

func TestSymptomByID_NameFallsBackToEnglish(t *testing.T) {
	c := NewDefault()

	s, ok := c.SymptomByID("breathing")
	require.True(t, ok)
	// No Tamil translation in the table; resolution must fall back.
	assert.Equal(t, "Breathing difficulty", s.Name.Resolve(models.LangTamil))
}

func TestConditionByID(t *testing.T) {
	c := NewDefault()

	cond, ok := c.ConditionByID("tuberculosis")
	require.True(t, ok)
	assert.Equal(t, models.UrgencyHigh, cond.Urgency)
	assert.Equal(t, models.PrevalenceHigh, cond.PrevalenceInMigrants)
	assert.Contains(t, cond.CommonSymptoms, "cough")
}

func TestSymptomsByCategory(t *testing.T) {
	c := NewDefault()

	respiratory := c.SymptomsByCategory("respiratory")
	require.NotEmpty(t, respiratory)
	for _, s := range respiratory {
		assert.Equal(t, "respiratory", s.Category)
	}

	assert.Empty(t, c.SymptomsByCategory("no_such_category"))
}

func TestRelatedSymptoms(t *testing.T) {
	c := NewDefault()

	related := c.RelatedSymptoms("fever")
	require.NotEmpty(t, related)
	ids := make([]string, 0, len(related))
	for _, s := range related {
		ids = append(ids, s.ID)
	}
	assert.Contains(t, ids, "headache")

	assert.Nil(t, c.RelatedSymptoms("no_such_symptom"))
}

func TestSearchSymptoms(t *testing.T) {
	c := NewDefault()

	results := c.SearchSymptoms("fever", models.LangEnglish)
	require.NotEmpty(t, results)
	assert.Equal(t, "fever", results[0].ID)

	// Hindi keyword should match in Hindi.
	results = c.SearchSymptoms("बुखार", models.LangHindi)
	require.NotEmpty(t, results)
	assert.Equal(t, "fever", results[0].ID)

	assert.Empty(t, c.SearchSymptoms("", models.LangEnglish))
	assert.Empty(t, c.SearchSymptoms("   ", models.LangEnglish))
	assert.Empty(t, c.SearchSymptoms("zzzzzz", models.LangEnglish))
}

func TestSearchSymptoms_CapsResults(t *testing.T) {
	symptoms := make([]models.Symptom, 0, SearchLimit+5)
	for i := 0; i < SearchLimit+5; i++ {
		symptoms = append(symptoms, models.Symptom{
			ID:   "pain_" + string(rune('a'+i)),
			Name: models.LocalizedText{models.LangEnglish: "Pain"},
		})
	}
	c := New(symptoms, nil, nil)

	results := c.SearchSymptoms("pain", models.LangEnglish)
	assert.Len(t, results, SearchLimit)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		symptoms   []models.Symptom
		conditions []models.Condition
		wantErr    string
	}{
		{
			name: "duplicate symptom id",
			symptoms: []models.Symptom{
				{ID: "fever", Name: models.LocalizedText{models.LangEnglish: "Fever"}},
				{ID: "fever", Name: models.LocalizedText{models.LangEnglish: "Fever"}},
			},
			wantErr: "duplicate symptom id",
		},
		{
			name:     "condition without common symptoms",
			symptoms: []models.Symptom{{ID: "fever"}},
			conditions: []models.Condition{
				{ID: "empty_cond", Name: models.LocalizedText{models.LangEnglish: "X"}},
			},
			wantErr: "no common symptoms",
		},
		{
			name:     "condition referencing unknown symptom",
			symptoms: []models.Symptom{{ID: "fever"}},
			conditions: []models.Condition{
				{ID: "bad_ref", CommonSymptoms: []string{"ghost"}},
			},
			wantErr: "unknown symptom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.symptoms, tt.conditions, nil)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_OccupationalPrevalenceRange(t *testing.T) {
	c := New(nil, nil, []models.OccupationalCondition{
		{ID: "bad_rate", PrevalenceRate: 1.5},
	})
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prevalence rate")
}

func TestIndustryRiskFactors(t *testing.T) {
	factors := IndustryRiskFactors(models.IndustryConstruction)
	require.NotEmpty(t, factors)

	// Returned slice is a copy; mutating it must not affect the table.
	factors[0].Name = "mutated"
	again := IndustryRiskFactors(models.IndustryConstruction)
	assert.NotEqual(t, "mutated", again[0].Name)

	assert.Nil(t, IndustryRiskFactors(models.Industry("unknown_industry")))
}

func TestKeralaEnvironmentalFactors(t *testing.T) {
	factors := KeralaEnvironmentalFactors()
	require.Len(t, factors, 3)

	byID := make(map[string]KeralaFactor, len(factors))
	for _, f := range factors {
		byID[f.ID] = f
	}
	assert.Equal(t, 1.3, byID["monsoon_season"].Multiplier)
	assert.Equal(t, 1.2, byID["coastal_areas"].Multiplier)
	assert.Equal(t, 1.4, byID["industrial_zones"].Multiplier)
}

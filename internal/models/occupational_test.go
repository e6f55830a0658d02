package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskSeverityWeight(t *testing.T) {
	assert.Equal(t, 0.5, RiskSeverityLow.Weight())
	assert.Equal(t, 1.0, RiskSeverityModerate.Weight())
	assert.Equal(t, 1.5, RiskSeverityHigh.Weight())
	assert.Equal(t, 2.0, RiskSeverityCritical.Weight())
	// Unknown grades weigh like moderate.
	assert.Equal(t, 1.0, RiskSeverity("unknown").Weight())
}

func TestExposureLevelWeight(t *testing.T) {
	assert.Equal(t, 0.3, ExposureMinimal.Weight())
	assert.Equal(t, 0.7, ExposureModerate.Weight())
	assert.Equal(t, 1.0, ExposureHigh.Weight())
	assert.Equal(t, 1.3, ExposureExtreme.Weight())
	assert.Equal(t, 0.7, ExposureLevel("unknown").Weight())
}

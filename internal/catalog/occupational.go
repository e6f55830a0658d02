package catalog

import (
	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

// defaultOccupationalConditions is the built-in occupational disease
// reference set. Prevalence rates come from state labour department
// surveys of the migrant workforce.
var defaultOccupationalConditions = []models.OccupationalCondition{
	{
		ID: "back_strain",
		Name: models.LocalizedText{
			models.LangEnglish:   "Chronic back strain",
			models.LangHindi:     "पुराना कमर दर्द",
			models.LangMalayalam: "വിട്ടുമാറാത്ത നടുവേദന",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Muscle and ligament injury of the back from heavy lifting and poor posture",
			models.LangHindi:   "भारी सामान उठाने और गलत मुद्रा से पीठ की मांसपेशियों में चोट",
		},
		Category: "musculoskeletal",
		CommonIndustries: []models.Industry{
			models.IndustryConstruction,
			models.IndustryManufacturing,
			models.IndustryAgriculture,
			models.IndustryTransportation,
		},
		RiskFactorTypes: []models.RiskFactorType{
			models.RiskPhysical,
			models.RiskErgonomic,
		},
		Symptoms: []string{"back_pain", "muscle_stiffness", "limited_mobility"},
		Prevention: models.LocalizedList{
			models.LangEnglish: {
				"Lift with your legs, not your back",
				"Use mechanical aids for loads over 25 kg",
				"Take stretching breaks every two hours",
				"Report unsafe lifting tasks to your supervisor",
			},
			models.LangHindi: {
				"पैरों से उठाएं, पीठ से नहीं",
				"25 किलो से भारी सामान के लिए मशीन का उपयोग करें",
			},
		},
		Treatment: models.LocalizedList{
			models.LangEnglish: {
				"Rest and anti-inflammatory medication",
				"Physiotherapy for persistent pain",
			},
		},
		Prognosis:      "good",
		PrevalenceRate: 0.25,
	},
	{
		ID: "respiratory_disease",
		Name: models.LocalizedText{
			models.LangEnglish:   "Occupational respiratory disease",
			models.LangHindi:     "व्यावसायिक श्वसन रोग",
			models.LangMalayalam: "തൊഴിൽജന്യ ശ്വാസകോശ രോഗം",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Lung damage from dust, fumes and poor workplace air",
			models.LangHindi:   "धूल, धुएं और खराब हवा से फेफड़ों को नुकसान",
		},
		Category: "respiratory",
		CommonIndustries: []models.Industry{
			models.IndustryConstruction,
			models.IndustryMining,
			models.IndustryManufacturing,
			models.IndustryAgriculture,
		},
		RiskFactorTypes: []models.RiskFactorType{
			models.RiskChemical,
			models.RiskPhysical,
			models.RiskBiological,
		},
		Symptoms: []string{"cough", "shortness_of_breath", "chest_tightness", "wheezing"},
		Prevention: models.LocalizedList{
			models.LangEnglish: {
				"Wear a fitted dust mask or respirator at dusty sites",
				"Ask for wet-cutting tools to suppress dust",
				"Get an annual lung function test",
			},
		},
		Treatment: models.LocalizedList{
			models.LangEnglish: {
				"Remove from exposure and refer to a chest clinic",
				"Bronchodilators for airway symptoms",
			},
		},
		Prognosis:      "fair",
		PrevalenceRate: 0.15,
	},
	{
		ID: "heat_exhaustion",
		Name: models.LocalizedText{
			models.LangEnglish:   "Heat exhaustion",
			models.LangHindi:     "गर्मी से थकावट",
			models.LangMalayalam: "ചൂട് മൂലമുള്ള ക്ഷീണം",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Heat illness from prolonged outdoor work in high temperature and humidity",
			models.LangHindi:   "तेज गर्मी और उमस में लंबे समय तक काम करने से होने वाली बीमारी",
		},
		Category: "cardiovascular",
		CommonIndustries: []models.Industry{
			models.IndustryConstruction,
			models.IndustryAgriculture,
			models.IndustryManufacturing,
			models.IndustryTransportation,
		},
		RiskFactorTypes: []models.RiskFactorType{
			models.RiskEnvironmental,
			models.RiskPhysical,
		},
		Symptoms: []string{"excessive_sweating", "fatigue", "nausea", "headache", "dizziness"},
		Prevention: models.LocalizedList{
			models.LangEnglish: {
				"Drink water every 20 minutes during outdoor work",
				"Shift heavy work to early morning hours",
				"Rest in shade during the midday heat advisory",
				"Know the early signs: dizziness, cramps, heavy sweating",
			},
			models.LangHindi: {
				"बाहर काम करते समय हर 20 मिनट में पानी पिएं",
				"भारी काम सुबह जल्दी करें",
			},
		},
		Treatment: models.LocalizedList{
			models.LangEnglish: {
				"Move to a cool place, loosen clothing, sip water",
				"Seek urgent care if confusion or fainting occurs",
			},
		},
		Prognosis:      "excellent",
		PrevalenceRate: 0.20,
		Acute:          true,
	},
}

// industryRiskFactors are the baseline hazards assumed for each industry
// when a profile carries no site-specific risk factors.
var industryRiskFactors = map[models.Industry][]models.RiskFactor{
	models.IndustryConstruction: {
		{ID: "construction_dust", Type: models.RiskChemical, Name: "Silica and cement dust", Severity: models.RiskSeverityHigh, ExposureLevel: models.ExposureHigh, Frequency: "daily"},
		{ID: "construction_lifting", Type: models.RiskPhysical, Name: "Heavy manual lifting", Severity: models.RiskSeverityHigh, ExposureLevel: models.ExposureHigh, Frequency: "daily"},
		{ID: "construction_heat", Type: models.RiskEnvironmental, Name: "Outdoor heat exposure", Severity: models.RiskSeverityHigh, ExposureLevel: models.ExposureHigh, Frequency: "daily"},
		{ID: "construction_posture", Type: models.RiskErgonomic, Name: "Awkward working postures", Severity: models.RiskSeverityModerate, ExposureLevel: models.ExposureModerate, Frequency: "daily"},
	},
	models.IndustryFishing: {
		{ID: "fishing_weather", Type: models.RiskEnvironmental, Name: "Sea and weather exposure", Severity: models.RiskSeverityHigh, ExposureLevel: models.ExposureExtreme, Frequency: "daily"},
		{ID: "fishing_lifting", Type: models.RiskPhysical, Name: "Net and catch handling", Severity: models.RiskSeverityModerate, ExposureLevel: models.ExposureHigh, Frequency: "daily"},
	},
	models.IndustryAgriculture: {
		{ID: "agri_pesticides", Type: models.RiskChemical, Name: "Pesticide exposure", Severity: models.RiskSeverityHigh, ExposureLevel: models.ExposureModerate, Frequency: "seasonal"},
		{ID: "agri_heat", Type: models.RiskEnvironmental, Name: "Field heat exposure", Severity: models.RiskSeverityHigh, ExposureLevel: models.ExposureHigh, Frequency: "daily"},
		{ID: "agri_bending", Type: models.RiskErgonomic, Name: "Repetitive bending", Severity: models.RiskSeverityModerate, ExposureLevel: models.ExposureHigh, Frequency: "daily"},
	},
	models.IndustryManufacturing: {
		{ID: "mfg_fumes", Type: models.RiskChemical, Name: "Process fumes and solvents", Severity: models.RiskSeverityHigh, ExposureLevel: models.ExposureModerate, Frequency: "daily"},
		{ID: "mfg_repetitive", Type: models.RiskErgonomic, Name: "Repetitive line work", Severity: models.RiskSeverityModerate, ExposureLevel: models.ExposureHigh, Frequency: "daily"},
		{ID: "mfg_noise", Type: models.RiskPhysical, Name: "Machine noise", Severity: models.RiskSeverityModerate, ExposureLevel: models.ExposureHigh, Frequency: "daily"},
	},
	models.IndustryTextiles: {
		{ID: "textile_dust", Type: models.RiskChemical, Name: "Cotton dust and dyes", Severity: models.RiskSeverityModerate, ExposureLevel: models.ExposureHigh, Frequency: "daily"},
		{ID: "textile_posture", Type: models.RiskErgonomic, Name: "Prolonged sitting at machines", Severity: models.RiskSeverityModerate, ExposureLevel: models.ExposureHigh, Frequency: "daily"},
	},
	models.IndustryHospitality: {
		{ID: "hosp_standing", Type: models.RiskErgonomic, Name: "Prolonged standing", Severity: models.RiskSeverityLow, ExposureLevel: models.ExposureHigh, Frequency: "daily"},
		{ID: "hosp_stress", Type: models.RiskPsychosocial, Name: "Shift and workload stress", Severity: models.RiskSeverityModerate, ExposureLevel: models.ExposureModerate, Frequency: "daily"},
	},
	models.IndustryDomesticWork: {
		{ID: "domestic_chemicals", Type: models.RiskChemical, Name: "Cleaning chemical exposure", Severity: models.RiskSeverityLow, ExposureLevel: models.ExposureModerate, Frequency: "daily"},
		{ID: "domestic_isolation", Type: models.RiskPsychosocial, Name: "Social isolation", Severity: models.RiskSeverityModerate, ExposureLevel: models.ExposureModerate, Frequency: "daily"},
	},
	models.IndustryTransportation: {
		{ID: "transport_sitting", Type: models.RiskErgonomic, Name: "Prolonged driving posture", Severity: models.RiskSeverityModerate, ExposureLevel: models.ExposureExtreme, Frequency: "daily"},
		{ID: "transport_fatigue", Type: models.RiskPsychosocial, Name: "Long-haul fatigue", Severity: models.RiskSeverityHigh, ExposureLevel: models.ExposureHigh, Frequency: "daily"},
	},
	models.IndustryFoodProcessing: {
		{ID: "food_cold", Type: models.RiskEnvironmental, Name: "Cold storage exposure", Severity: models.RiskSeverityModerate, ExposureLevel: models.ExposureModerate, Frequency: "daily"},
		{ID: "food_repetitive", Type: models.RiskErgonomic, Name: "Repetitive cutting work", Severity: models.RiskSeverityModerate, ExposureLevel: models.ExposureHigh, Frequency: "daily"},
	},
	models.IndustryMining: {
		{ID: "mining_dust", Type: models.RiskChemical, Name: "Mineral dust", Severity: models.RiskSeverityCritical, ExposureLevel: models.ExposureExtreme, Frequency: "daily"},
		{ID: "mining_confined", Type: models.RiskPhysical, Name: "Confined space work", Severity: models.RiskSeverityHigh, ExposureLevel: models.ExposureHigh, Frequency: "daily"},
	},
	models.IndustryOilGas: {
		{ID: "oilgas_chemicals", Type: models.RiskChemical, Name: "Hydrocarbon exposure", Severity: models.RiskSeverityHigh, ExposureLevel: models.ExposureHigh, Frequency: "daily"},
		{ID: "oilgas_heat", Type: models.RiskEnvironmental, Name: "Process heat", Severity: models.RiskSeverityHigh, ExposureLevel: models.ExposureHigh, Frequency: "daily"},
	},
}

// IndustryRiskFactors returns the baseline hazards for an industry. They
// stand in when a profile was registered without site-specific risk factors.
// Callers get a copy; the table itself is immutable.
func IndustryRiskFactors(industry models.Industry) []models.RiskFactor {
	src, ok := industryRiskFactors[industry]
	if !ok {
		return nil
	}
	out := make([]models.RiskFactor, len(src))
	copy(out, src)
	return out
}

// KeralaFactor is one regional multiplier applied when a profile's industry
// is exposed to that regional condition.
type KeralaFactor struct {
	ID         string
	Multiplier float64
	Industries []models.Industry
}

// keralaEnvironmentalFactors are Kerala-specific regional risk multipliers.
var keralaEnvironmentalFactors = []KeralaFactor{
	{
		ID:         "monsoon_season",
		Multiplier: 1.3,
		Industries: []models.Industry{models.IndustryConstruction, models.IndustryAgriculture},
	},
	{
		ID:         "coastal_areas",
		Multiplier: 1.2,
		Industries: []models.Industry{models.IndustryFishing, models.IndustryConstruction},
	},
	{
		ID:         "industrial_zones",
		Multiplier: 1.4,
		Industries: []models.Industry{models.IndustryManufacturing, models.IndustryTextiles},
	},
}

// KeralaEnvironmentalFactors returns the regional multiplier table.
func KeralaEnvironmentalFactors() []KeralaFactor {
	out := make([]KeralaFactor, len(keralaEnvironmentalFactors))
	copy(out, keralaEnvironmentalFactors)
	return out
}

package catalog

import (
	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

// defaultConditions covers the conditions most frequently seen in the
// migrant-worker population in Kerala. Severity, urgency and prevalence
// tiers were set with the district medical officers.
var defaultConditions = []models.Condition{
	{
		ID: "viral_fever",
		Name: models.LocalizedText{
			models.LangEnglish:   "Viral fever",
			models.LangHindi:     "वायरल बुखार",
			models.LangMalayalam: "വൈറൽ പനി",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Common viral infection causing fever and body ache",
			models.LangHindi:   "सामान्य वायरल संक्रमण जिससे बुखार और बदन दर्द होता है",
		},
		Category:       "infectious",
		Severity:       models.ConditionModerate,
		CommonSymptoms: []string{"fever", "headache", "body_ache", "fatigue"},
		RareSymptoms:   []string{"skin_rash"},
		Recommendations: models.LocalizedList{
			models.LangEnglish: {
				"Rest and drink plenty of fluids",
				"Take paracetamol for fever",
				"Visit a health centre if fever lasts more than 3 days",
			},
			models.LangHindi: {
				"आराम करें और खूब पानी पिएं",
				"बुखार के लिए पैरासिटामोल लें",
				"3 दिन से अधिक बुखार रहे तो स्वास्थ्य केंद्र जाएं",
			},
		},
		Urgency:              models.UrgencyLow,
		PrevalenceInMigrants: models.PrevalenceHigh,
	},
	{
		ID: "respiratory_infection",
		Name: models.LocalizedText{
			models.LangEnglish:   "Respiratory infection",
			models.LangHindi:     "श्वसन संक्रमण",
			models.LangMalayalam: "ശ്വാസകോശ അണുബാധ",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Infection of the airways with cough and fever",
			models.LangHindi:   "खांसी और बुखार के साथ श्वसन मार्ग का संक्रमण",
		},
		Category:       "respiratory",
		Severity:       models.ConditionModerate,
		CommonSymptoms: []string{"fever", "cough"},
		RareSymptoms:   []string{"breathing", "chest_pain"},
		Recommendations: models.LocalizedList{
			models.LangEnglish: {
				"Drink warm fluids and rest",
				"Avoid crowded sleeping quarters while symptomatic",
				"Seek care if breathing becomes difficult",
			},
		},
		Urgency:              models.UrgencyMedium,
		PrevalenceInMigrants: models.PrevalenceHigh,
	},
	{
		ID: "tuberculosis",
		Name: models.LocalizedText{
			models.LangEnglish:   "Tuberculosis",
			models.LangHindi:     "तपेदिक (टीबी)",
			models.LangMalayalam: "ക്ഷയം",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Bacterial lung infection with persistent cough and weight loss",
			models.LangHindi:   "लगातार खांसी और वजन घटने के साथ फेफड़ों का जीवाणु संक्रमण",
		},
		Category:       "infectious",
		Severity:       models.ConditionSerious,
		CommonSymptoms: []string{"cough", "fever", "fatigue"},
		RareSymptoms:   []string{"chest_pain", "breathing"},
		Recommendations: models.LocalizedList{
			models.LangEnglish: {
				"Visit the nearest government TB clinic for a free sputum test",
				"TB treatment is free under the national programme",
				"Cover your mouth when coughing",
			},
		},
		Urgency:              models.UrgencyHigh,
		PrevalenceInMigrants: models.PrevalenceHigh,
	},
	{
		ID: "dengue",
		Name: models.LocalizedText{
			models.LangEnglish:   "Dengue fever",
			models.LangHindi:     "डेंगू बुखार",
			models.LangMalayalam: "ഡെങ്കിപ്പനി",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Mosquito-borne viral fever with severe body ache",
			models.LangHindi:   "मच्छर से फैलने वाला वायरल बुखार, तेज बदन दर्द के साथ",
		},
		Category:       "vector_borne",
		Severity:       models.ConditionSerious,
		CommonSymptoms: []string{"fever", "headache", "body_ache"},
		RareSymptoms:   []string{"skin_rash", "nausea"},
		Recommendations: models.LocalizedList{
			models.LangEnglish: {
				"Get a blood test at the nearest health centre",
				"Do not take aspirin or ibuprofen",
				"Remove standing water near your living quarters",
			},
		},
		Urgency:              models.UrgencyHigh,
		PrevalenceInMigrants: models.PrevalenceMedium,
	},
	{
		ID: "leptospirosis",
		Name: models.LocalizedText{
			models.LangEnglish:   "Leptospirosis",
			models.LangHindi:     "लेप्टोस्पायरोसिस",
			models.LangMalayalam: "എലിപ്പനി",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Bacterial infection spread through flood water, common during monsoon",
			models.LangHindi:   "बाढ़ के पानी से फैलने वाला जीवाणु संक्रमण, मानसून में आम",
		},
		Category:       "infectious",
		Severity:       models.ConditionSerious,
		CommonSymptoms: []string{"fever", "body_ache", "headache"},
		RareSymptoms:   []string{"nausea", "skin_rash"},
		Recommendations: models.LocalizedList{
			models.LangEnglish: {
				"Seek medical care immediately if you waded through flood water",
				"Doxycycline prophylaxis is available at health centres during monsoon",
			},
		},
		Urgency:              models.UrgencyHigh,
		PrevalenceInMigrants: models.PrevalenceMedium,
	},
	{
		ID: "gastroenteritis",
		Name: models.LocalizedText{
			models.LangEnglish:   "Gastroenteritis",
			models.LangHindi:     "आंत्रशोथ",
			models.LangMalayalam: "വയറിളക്ക രോഗം",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Stomach infection causing diarrhea and vomiting",
			models.LangHindi:   "पेट का संक्रमण जिससे दस्त और उल्टी होती है",
		},
		Category:       "digestive",
		Severity:       models.ConditionModerate,
		CommonSymptoms: []string{"diarrhea", "nausea", "abdominal_pain"},
		RareSymptoms:   []string{"fever"},
		Recommendations: models.LocalizedList{
			models.LangEnglish: {
				"Drink ORS after every loose stool",
				"Drink only boiled or bottled water",
				"Seek care if there is blood in stool or signs of dehydration",
			},
		},
		Urgency:              models.UrgencyMedium,
		PrevalenceInMigrants: models.PrevalenceHigh,
	},
	{
		ID: "heat_stroke",
		Name: models.LocalizedText{
			models.LangEnglish:   "Heat stroke",
			models.LangHindi:     "लू लगना",
			models.LangMalayalam: "സൂര്യാഘാതം",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Dangerous overheating of the body from working in high heat",
			models.LangHindi:   "तेज गर्मी में काम करने से शरीर का खतरनाक रूप से गर्म होना",
		},
		Category:       "environmental",
		Severity:       models.ConditionCritical,
		CommonSymptoms: []string{"dizziness", "headache", "fatigue", "nausea"},
		RareSymptoms:   []string{"fever"},
		Recommendations: models.LocalizedList{
			models.LangEnglish: {
				"Move to shade immediately and cool the body with water",
				"This is a medical emergency; call 108",
			},
		},
		Urgency:              models.UrgencyEmergency,
		PrevalenceInMigrants: models.PrevalenceMedium,
	},
	{
		ID: "cardiac_event",
		Name: models.LocalizedText{
			models.LangEnglish:   "Possible cardiac event",
			models.LangHindi:     "संभावित हृदय समस्या",
			models.LangMalayalam: "ഹൃദയസംബന്ധമായ പ്രശ്നം",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Chest pain with breathing difficulty may indicate a heart problem",
			models.LangHindi:   "सीने में दर्द और सांस की तकलीफ हृदय समस्या का संकेत हो सकती है",
		},
		Category:       "cardiovascular",
		Severity:       models.ConditionCritical,
		CommonSymptoms: []string{"chest_pain", "breathing"},
		RareSymptoms:   []string{"dizziness", "nausea"},
		Recommendations: models.LocalizedList{
			models.LangEnglish: {
				"Call 108 immediately",
				"Do not walk or exert yourself; sit down and wait for help",
			},
		},
		Urgency:              models.UrgencyEmergency,
		PrevalenceInMigrants: models.PrevalenceLow,
	},
}

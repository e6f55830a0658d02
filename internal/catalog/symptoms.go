package catalog

import (
	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

// defaultSymptoms is the compiled-in symptom reference table. The health
// department maintains the production table as a workbook (see workbook.go);
// this set keeps the engine usable without one and backs the test fixtures.
var defaultSymptoms = []models.Symptom{
	{
		ID: "fever",
		Name: models.LocalizedText{
			models.LangEnglish:   "Fever",
			models.LangHindi:     "बुखार",
			models.LangMalayalam: "പനി",
			models.LangBengali:   "জ্বর",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Elevated body temperature, often with chills or sweating",
			models.LangHindi:   "शरीर का तापमान बढ़ना, अक्सर ठंड लगने या पसीने के साथ",
		},
		Category:        "general",
		DefaultSeverity: models.SeverityModerate,
		BodyPart:        "whole_body",
		VoiceKeywords: models.LocalizedList{
			models.LangEnglish:   {"fever", "temperature", "hot body", "chills"},
			models.LangHindi:     {"बुखार", "तेज बुखार", "ठंड लगना"},
			models.LangMalayalam: {"പനി", "ചൂട്"},
			models.LangBengali:   {"জ্বর"},
		},
		RelatedSymptoms: []string{"headache", "body_ache", "fatigue"},
	},
	{
		ID: "cough",
		Name: models.LocalizedText{
			models.LangEnglish:   "Cough",
			models.LangHindi:     "खांसी",
			models.LangMalayalam: "ചുമ",
			models.LangBengali:   "কাশি",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Persistent coughing, dry or with phlegm",
			models.LangHindi:   "लगातार खांसी, सूखी या बलगम के साथ",
		},
		Category:        "respiratory",
		DefaultSeverity: models.SeverityMild,
		BodyPart:        "chest",
		VoiceKeywords: models.LocalizedList{
			models.LangEnglish:   {"cough", "coughing", "phlegm"},
			models.LangHindi:     {"खांसी", "बलगम"},
			models.LangMalayalam: {"ചുമ", "കഫം"},
			models.LangBengali:   {"কাশি"},
		},
		RelatedSymptoms: []string{"breathing", "chest_pain"},
	},
	{
		ID: "breathing",
		Name: models.LocalizedText{
			models.LangEnglish:   "Breathing difficulty",
			models.LangHindi:     "सांस लेने में कठिनाई",
			models.LangMalayalam: "ശ്വാസതടസ്സം",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Shortness of breath or difficulty breathing",
			models.LangHindi:   "सांस फूलना या सांस लेने में परेशानी",
		},
		Category:        "respiratory",
		DefaultSeverity: models.SeveritySevere,
		BodyPart:        "chest",
		VoiceKeywords: models.LocalizedList{
			models.LangEnglish:   {"breathing", "breathless", "short of breath", "can't breathe"},
			models.LangHindi:     {"सांस", "सांस फूलना", "दम घुटना"},
			models.LangMalayalam: {"ശ്വാസം", "ശ്വാസതടസ്സം"},
		},
		RelatedSymptoms: []string{"cough", "chest_pain"},
	},
	{
		ID: "chest_pain",
		Name: models.LocalizedText{
			models.LangEnglish:   "Chest pain",
			models.LangHindi:     "सीने में दर्द",
			models.LangMalayalam: "നെഞ്ചുവേദന",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Pain or pressure in the chest",
			models.LangHindi:   "सीने में दर्द या दबाव",
		},
		Category:        "cardiovascular",
		DefaultSeverity: models.SeveritySevere,
		BodyPart:        "chest",
		VoiceKeywords: models.LocalizedList{
			models.LangEnglish:   {"chest pain", "chest pressure", "chest tight"},
			models.LangHindi:     {"सीने में दर्द", "छाती में दर्द"},
			models.LangMalayalam: {"നെഞ്ചുവേദന"},
		},
		RelatedSymptoms: []string{"breathing"},
	},
	{
		ID: "headache",
		Name: models.LocalizedText{
			models.LangEnglish:   "Headache",
			models.LangHindi:     "सिरदर्द",
			models.LangMalayalam: "തലവേദന",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Pain in the head or upper neck",
			models.LangHindi:   "सिर या गर्दन के ऊपरी हिस्से में दर्द",
		},
		Category:        "neurological",
		DefaultSeverity: models.SeverityMild,
		BodyPart:        "head",
		VoiceKeywords: models.LocalizedList{
			models.LangEnglish:   {"headache", "head pain", "head hurts"},
			models.LangHindi:     {"सिरदर्द", "सिर में दर्द"},
			models.LangMalayalam: {"തലവേദന"},
		},
		RelatedSymptoms: []string{"fever", "dizziness"},
	},
	{
		ID: "body_ache",
		Name: models.LocalizedText{
			models.LangEnglish:   "Body ache",
			models.LangHindi:     "बदन दर्द",
			models.LangMalayalam: "ശരീരവേദന",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Generalized muscle or joint pain",
			models.LangHindi:   "मांसपेशियों या जोड़ों में दर्द",
		},
		Category:        "musculoskeletal",
		DefaultSeverity: models.SeverityMild,
		BodyPart:        "whole_body",
		VoiceKeywords: models.LocalizedList{
			models.LangEnglish:   {"body ache", "body pain", "muscle pain", "joint pain"},
			models.LangHindi:     {"बदन दर्द", "शरीर में दर्द"},
			models.LangMalayalam: {"ശരീരവേദന"},
		},
		RelatedSymptoms: []string{"fever", "fatigue"},
	},
	{
		ID: "fatigue",
		Name: models.LocalizedText{
			models.LangEnglish:   "Fatigue",
			models.LangHindi:     "थकान",
			models.LangMalayalam: "ക്ഷീണം",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Unusual tiredness or weakness",
			models.LangHindi:   "असामान्य थकान या कमजोरी",
		},
		Category:        "general",
		DefaultSeverity: models.SeverityMild,
		BodyPart:        "whole_body",
		VoiceKeywords: models.LocalizedList{
			models.LangEnglish:   {"tired", "fatigue", "weakness", "exhausted"},
			models.LangHindi:     {"थकान", "कमजोरी"},
			models.LangMalayalam: {"ക്ഷീണം", "തളർച്ച"},
		},
	},
	{
		ID: "nausea",
		Name: models.LocalizedText{
			models.LangEnglish:   "Nausea",
			models.LangHindi:     "मतली",
			models.LangMalayalam: "ഓക്കാനം",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Feeling of sickness with an urge to vomit",
			models.LangHindi:   "उल्टी जैसा महसूस होना",
		},
		Category:        "digestive",
		DefaultSeverity: models.SeverityMild,
		BodyPart:        "abdomen",
		VoiceKeywords: models.LocalizedList{
			models.LangEnglish:   {"nausea", "vomiting", "vomit", "feel sick"},
			models.LangHindi:     {"मतली", "उल्टी"},
			models.LangMalayalam: {"ഓക്കാനം", "ഛർദി"},
		},
		RelatedSymptoms: []string{"diarrhea"},
	},
	{
		ID: "diarrhea",
		Name: models.LocalizedText{
			models.LangEnglish:   "Diarrhea",
			models.LangHindi:     "दस्त",
			models.LangMalayalam: "വയറിളക്കം",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Frequent loose or watery stools",
			models.LangHindi:   "बार-बार पतले दस्त",
		},
		Category:        "digestive",
		DefaultSeverity: models.SeverityModerate,
		BodyPart:        "abdomen",
		VoiceKeywords: models.LocalizedList{
			models.LangEnglish:   {"diarrhea", "loose motion", "watery stool"},
			models.LangHindi:     {"दस्त", "लूज मोशन"},
			models.LangMalayalam: {"വയറിളക്കം"},
		},
		RelatedSymptoms: []string{"nausea"},
	},
	{
		ID: "dizziness",
		Name: models.LocalizedText{
			models.LangEnglish:   "Dizziness",
			models.LangHindi:     "चक्कर आना",
			models.LangMalayalam: "തലകറക്കം",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Feeling faint, lightheaded or unsteady",
			models.LangHindi:   "चक्कर या बेहोशी जैसा महसूस होना",
		},
		Category:        "neurological",
		DefaultSeverity: models.SeverityModerate,
		BodyPart:        "head",
		VoiceKeywords: models.LocalizedList{
			models.LangEnglish:   {"dizzy", "dizziness", "lightheaded", "faint"},
			models.LangHindi:     {"चक्कर", "चक्कर आना"},
			models.LangMalayalam: {"തലകറക്കം"},
		},
		RelatedSymptoms: []string{"headache", "fatigue"},
	},
	{
		ID: "skin_rash",
		Name: models.LocalizedText{
			models.LangEnglish:   "Skin rash",
			models.LangHindi:     "त्वचा पर चकत्ते",
			models.LangMalayalam: "ചർമ്മത്തിൽ തിണർപ്പ്",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Red, itchy or spotted skin",
			models.LangHindi:   "लाल, खुजली वाली त्वचा",
		},
		Category:        "dermatological",
		DefaultSeverity: models.SeverityMild,
		BodyPart:        "whole_body",
		VoiceKeywords: models.LocalizedList{
			models.LangEnglish:   {"rash", "skin rash", "itching", "red spots"},
			models.LangHindi:     {"चकत्ते", "खुजली"},
			models.LangMalayalam: {"തിണർപ്പ്", "ചൊറിച്ചിൽ"},
		},
	},
	{
		ID: "back_pain",
		Name: models.LocalizedText{
			models.LangEnglish:   "Back pain",
			models.LangHindi:     "पीठ दर्द",
			models.LangMalayalam: "നടുവേദന",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Pain in the lower or upper back",
			models.LangHindi:   "पीठ के निचले या ऊपरी हिस्से में दर्द",
		},
		Category:        "musculoskeletal",
		DefaultSeverity: models.SeverityModerate,
		BodyPart:        "back",
		VoiceKeywords: models.LocalizedList{
			models.LangEnglish:   {"back pain", "backache", "back hurts"},
			models.LangHindi:     {"पीठ दर्द", "कमर दर्द"},
			models.LangMalayalam: {"നടുവേദന"},
		},
	},
	{
		ID: "abdominal_pain",
		Name: models.LocalizedText{
			models.LangEnglish:   "Abdominal pain",
			models.LangHindi:     "पेट दर्द",
			models.LangMalayalam: "വയറുവേദന",
		},
		Description: models.LocalizedText{
			models.LangEnglish: "Pain or cramps in the stomach area",
			models.LangHindi:   "पेट में दर्द या ऐंठन",
		},
		Category:        "digestive",
		DefaultSeverity: models.SeverityModerate,
		BodyPart:        "abdomen",
		VoiceKeywords: models.LocalizedList{
			models.LangEnglish:   {"stomach pain", "abdominal pain", "stomach ache", "cramps"},
			models.LangHindi:     {"पेट दर्द", "पेट में दर्द"},
			models.LangMalayalam: {"വയറുവേദന"},
		},
		RelatedSymptoms: []string{"nausea", "diarrhea"},
	},
}

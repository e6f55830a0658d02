package models

// Language is an ISO-639-1 code supported by the intake application.
type Language string

const (
	LangEnglish   Language = "en"
	LangHindi     Language = "hi"
	LangBengali   Language = "bn"
	LangOdia      Language = "or"
	LangTamil     Language = "ta"
	LangNepali    Language = "ne"
	LangMalayalam Language = "ml"
)

// LocalizedText maps a language to a translated string.
type LocalizedText map[Language]string

// LocalizedList maps a language to a translated string list.
type LocalizedList map[Language][]string

// Resolve returns the text for lang, falling back through the given priority
// list and finally English. Ad hoc per-call fallbacks are not allowed; all
// language resolution goes through here.
func (t LocalizedText) Resolve(lang Language) string {
	for _, l := range []Language{lang, LangEnglish} {
		if v, ok := t[l]; ok {
			return v
		}
	}
	return ""
}

// Resolve returns the list for lang, falling back to English.
func (l LocalizedList) Resolve(lang Language) []string {
	for _, c := range []Language{lang, LangEnglish} {
		if v, ok := l[c]; ok {
			return v
		}
	}
	return nil
}

// SymptomSeverity is the user-reported intensity of a symptom.
type SymptomSeverity string

const (
	SeverityMild     SymptomSeverity = "mild"
	SeverityModerate SymptomSeverity = "moderate"
	SeveritySevere   SymptomSeverity = "severe"
	SeverityCritical SymptomSeverity = "critical"
)

// Scale maps a severity to the 1-4 integer scale used in score arithmetic.
// Unrecognized values resolve to 1 (mild) rather than erroring.
func (s SymptomSeverity) Scale() int {
	switch s {
	case SeverityMild:
		return 1
	case SeverityModerate:
		return 2
	case SeveritySevere:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 1
	}
}

// Valid reports whether s is one of the four defined tiers.
func (s SymptomSeverity) Valid() bool {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySevere, SeverityCritical:
		return true
	default:
		return false
	}
}

// ConditionSeverity is the inherent severity tier of a condition.
type ConditionSeverity string

const (
	ConditionMinor    ConditionSeverity = "minor"
	ConditionModerate ConditionSeverity = "moderate"
	ConditionSerious  ConditionSeverity = "serious"
	ConditionCritical ConditionSeverity = "critical"
)

// Scale maps a condition severity to the shared 1-4 scale.
func (s ConditionSeverity) Scale() int {
	switch s {
	case ConditionMinor:
		return 1
	case ConditionModerate:
		return 2
	case ConditionSerious:
		return 3
	case ConditionCritical:
		return 4
	default:
		return 1
	}
}

// UrgencyLevel is the single triage signal surfaced to the user.
type UrgencyLevel string

const (
	UrgencyLow       UrgencyLevel = "low"
	UrgencyMedium    UrgencyLevel = "medium"
	UrgencyHigh      UrgencyLevel = "high"
	UrgencyEmergency UrgencyLevel = "emergency"
)

// Rank orders urgency levels (low < medium < high < emergency).
func (u UrgencyLevel) Rank() int {
	switch u {
	case UrgencyLow:
		return 0
	case UrgencyMedium:
		return 1
	case UrgencyHigh:
		return 2
	case UrgencyEmergency:
		return 3
	default:
		return 0
	}
}

// Prevalence is the prevalence-in-migrants tier of a condition.
type Prevalence string

const (
	PrevalenceHigh   Prevalence = "high"
	PrevalenceMedium Prevalence = "medium"
	PrevalenceLow    Prevalence = "low"
)

// Multiplier converts prevalence into the confidence multiplier.
// Unknown tiers behave like medium.
func (p Prevalence) Multiplier() float64 {
	switch p {
	case PrevalenceHigh:
		return 1.2
	case PrevalenceLow:
		return 0.8
	default:
		return 1.0
	}
}

// SymptomOnset describes how a symptom started.
type SymptomOnset string

const (
	OnsetSudden  SymptomOnset = "sudden"
	OnsetGradual SymptomOnset = "gradual"
)

// Symptom is immutable reference data describing one reportable symptom.
type Symptom struct {
	ID              string        `json:"id"`
	Name            LocalizedText `json:"name"`
	Description     LocalizedText `json:"description"`
	Category        string        `json:"category"`
	DefaultSeverity SymptomSeverity `json:"default_severity"`
	BodyPart        string        `json:"body_part,omitempty"`
	VoiceKeywords   LocalizedList `json:"voice_keywords"`
	RelatedSymptoms []string      `json:"related_symptoms,omitempty"`
}

// Condition is immutable reference data describing one candidate condition.
type Condition struct {
	ID                  string            `json:"id"`
	Name                LocalizedText     `json:"name"`
	Description         LocalizedText     `json:"description"`
	Category            string            `json:"category"`
	Severity            ConditionSeverity `json:"severity"`
	CommonSymptoms      []string          `json:"common_symptoms"`
	RareSymptoms        []string          `json:"rare_symptoms,omitempty"`
	Recommendations     LocalizedList     `json:"recommendations"`
	Urgency             UrgencyLevel      `json:"urgency"`
	PrevalenceInMigrants Prevalence       `json:"prevalence_in_migrants"`
}

// SelectedSymptom is one symptom the user has selected in a session.
type SelectedSymptom struct {
	SymptomID string          `json:"symptom_id"`
	Severity  SymptomSeverity `json:"severity"`
	Duration  string          `json:"duration"`
	Onset     SymptomOnset    `json:"onset,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

// ConditionMatch is a scored candidate condition for the selected symptoms.
// Recomputed from scratch whenever the selection changes, never stored.
type ConditionMatch struct {
	ConditionID      string   `json:"condition_id"`
	Confidence       float64  `json:"confidence"`
	MatchingSymptoms []string `json:"matching_symptoms"`
	MissingSymptoms  []string `json:"missing_symptoms,omitempty"`
	Reasoning        string   `json:"reasoning"`
}

// VoiceInput is the transcription-service output consumed by the extractor.
// The engine treats transcript, language and confidence as opaque inputs.
type VoiceInput struct {
	Transcript string   `json:"transcript"`
	Language   Language `json:"language"`
	Confidence float64  `json:"confidence"`
}

// ExtractedSymptom is one keyword-matched candidate from a voice transcript.
type ExtractedSymptom struct {
	SymptomID  string          `json:"symptom_id"`
	Confidence float64         `json:"confidence"`
	Context    string          `json:"context"`
	Severity   SymptomSeverity `json:"severity"`
	BodyPart   string          `json:"body_part,omitempty"`
}

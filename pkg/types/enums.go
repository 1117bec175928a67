package types

import (
	"fmt"
	"slices"
)

// parseEnum decodes a wire literal into a closed value set, rejecting
// anything outside of it.
func parseEnum[T ~string](dst *T, text []byte, kind string, valid func(T) bool) error {
	v := T(text)
	if !valid(v) {
		return NewValidationError(kind, fmt.Sprintf("unknown value %q", string(text)))
	}
	*dst = v
	return nil
}

// rank returns the position of v in an ordered value set, or -1.
func rank[T comparable](values []T, v T) int {
	return slices.Index(values, v)
}

// step moves delta positions through an ordered value set, clamping at both ends.
// Invalid values are returned unchanged.
func step[T comparable](values []T, v T, delta int) T {
	i := rank(values, v)
	if i < 0 {
		return v
	}
	i = min(max(i+delta, 0), len(values)-1)
	return values[i]
}

// ---------------------------------------------------------------------------
// Identity
// ---------------------------------------------------------------------------

// UserRole represents the authorization tier of a user.
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleUser    UserRole = "user"
	UserRolePremium UserRole = "premium"
	UserRoleVIP     UserRole = "vip"
)

// UserRoleValues returns all user roles in declaration order.
func UserRoleValues() []UserRole {
	return []UserRole{UserRoleAdmin, UserRoleUser, UserRolePremium, UserRoleVIP}
}

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleUser, UserRolePremium, UserRoleVIP:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

func (r *UserRole) UnmarshalText(text []byte) error {
	return parseEnum(r, text, "userRole", UserRole.IsValid)
}

// UserStatus represents the lifecycle state of an account.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusBanned   UserStatus = "banned"
	UserStatusPending  UserStatus = "pending"
)

func UserStatusValues() []UserStatus {
	return []UserStatus{UserStatusActive, UserStatusInactive, UserStatusBanned, UserStatusPending}
}

func (s UserStatus) String() string { return string(s) }

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusBanned, UserStatusPending:
		return true
	}
	return false
}

func (s *UserStatus) UnmarshalText(text []byte) error {
	return parseEnum(s, text, "userStatus", UserStatus.IsValid)
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func GenderValues() []Gender { return []Gender{GenderMale, GenderFemale, GenderOther} }

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

func (g *Gender) UnmarshalText(text []byte) error {
	return parseEnum(g, text, "gender", Gender.IsValid)
}

// Theme is the UI color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

func ThemeValues() []Theme { return []Theme{ThemeLight, ThemeDark, ThemeAuto} }

func (t Theme) String() string { return string(t) }

func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeAuto:
		return true
	}
	return false
}

func (t *Theme) UnmarshalText(text []byte) error {
	return parseEnum(t, text, "theme", Theme.IsValid)
}

// ReviewMode controls how aggressively the review planner schedules words.
type ReviewMode string

const (
	ReviewModeNormal    ReviewMode = "normal"
	ReviewModeIntensive ReviewMode = "intensive"
	ReviewModeCasual    ReviewMode = "casual"
)

func ReviewModeValues() []ReviewMode {
	return []ReviewMode{ReviewModeNormal, ReviewModeIntensive, ReviewModeCasual}
}

func (m ReviewMode) String() string { return string(m) }

func (m ReviewMode) IsValid() bool {
	switch m {
	case ReviewModeNormal, ReviewModeIntensive, ReviewModeCasual:
		return true
	}
	return false
}

func (m *ReviewMode) UnmarshalText(text []byte) error {
	return parseEnum(m, text, "reviewMode", ReviewMode.IsValid)
}

// Accent is the pronunciation dialect used both for dictionary
// pronunciations and for the user's playback preference.
type Accent string

const (
	AccentUS Accent = "us"
	AccentUK Accent = "uk"
	AccentAU Accent = "au"
)

func AccentValues() []Accent { return []Accent{AccentUS, AccentUK, AccentAU} }

func (a Accent) String() string { return string(a) }

func (a Accent) IsValid() bool {
	switch a {
	case AccentUS, AccentUK, AccentAU:
		return true
	}
	return false
}

func (a *Accent) UnmarshalText(text []byte) error {
	return parseEnum(a, text, "accent", Accent.IsValid)
}

// ---------------------------------------------------------------------------
// Envelopes
// ---------------------------------------------------------------------------

type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

func SortOrderValues() []SortOrder { return []SortOrder{SortOrderAsc, SortOrderDesc} }

func (o SortOrder) String() string { return string(o) }

func (o SortOrder) IsValid() bool {
	return o == SortOrderAsc || o == SortOrderDesc
}

func (o *SortOrder) UnmarshalText(text []byte) error {
	return parseEnum(o, text, "order", SortOrder.IsValid)
}

// ---------------------------------------------------------------------------
// Lexical data
// ---------------------------------------------------------------------------

// PartOfSpeech represents the grammatical category of a definition.
type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "noun"
	PartOfSpeechVerb         PartOfSpeech = "verb"
	PartOfSpeechAdjective    PartOfSpeech = "adjective"
	PartOfSpeechAdverb       PartOfSpeech = "adverb"
	PartOfSpeechPronoun      PartOfSpeech = "pronoun"
	PartOfSpeechPreposition  PartOfSpeech = "preposition"
	PartOfSpeechConjunction  PartOfSpeech = "conjunction"
	PartOfSpeechInterjection PartOfSpeech = "interjection"
	PartOfSpeechArticle      PartOfSpeech = "article"
	PartOfSpeechDeterminer   PartOfSpeech = "determiner"
)

func PartOfSpeechValues() []PartOfSpeech {
	return []PartOfSpeech{
		PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb,
		PartOfSpeechPronoun, PartOfSpeechPreposition, PartOfSpeechConjunction,
		PartOfSpeechInterjection, PartOfSpeechArticle, PartOfSpeechDeterminer,
	}
}

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb,
		PartOfSpeechPronoun, PartOfSpeechPreposition, PartOfSpeechConjunction,
		PartOfSpeechInterjection, PartOfSpeechArticle, PartOfSpeechDeterminer:
		return true
	}
	return false
}

func (p *PartOfSpeech) UnmarshalText(text []byte) error {
	return parseEnum(p, text, "partOfSpeech", PartOfSpeech.IsValid)
}

// LanguageLevel is the six-tier proficiency scale shared by dictionary
// definitions and learner progress. The order of the constants is significant.
type LanguageLevel string

const (
	LanguageLevelBeginner          LanguageLevel = "beginner"
	LanguageLevelElementary        LanguageLevel = "elementary"
	LanguageLevelIntermediate      LanguageLevel = "intermediate"
	LanguageLevelUpperIntermediate LanguageLevel = "upper_intermediate"
	LanguageLevelAdvanced          LanguageLevel = "advanced"
	LanguageLevelProficient        LanguageLevel = "proficient"
)

// LanguageLevelValues returns all levels from lowest to highest.
func LanguageLevelValues() []LanguageLevel {
	return []LanguageLevel{
		LanguageLevelBeginner, LanguageLevelElementary, LanguageLevelIntermediate,
		LanguageLevelUpperIntermediate, LanguageLevelAdvanced, LanguageLevelProficient,
	}
}

func (l LanguageLevel) String() string { return string(l) }

func (l LanguageLevel) IsValid() bool { return l.Rank() >= 0 }

// Rank returns the 0-based position of the level on the scale, or -1 if invalid.
func (l LanguageLevel) Rank() int { return rank(LanguageLevelValues(), l) }

// Less reports whether l is strictly below other on the scale.
func (l LanguageLevel) Less(other LanguageLevel) bool { return l.Rank() < other.Rank() }

// Next returns the level above l; the top level returns itself.
func (l LanguageLevel) Next() LanguageLevel { return step(LanguageLevelValues(), l, 1) }

// Prev returns the level below l; the bottom level returns itself.
func (l LanguageLevel) Prev() LanguageLevel { return step(LanguageLevelValues(), l, -1) }

func (l *LanguageLevel) UnmarshalText(text []byte) error {
	return parseEnum(l, text, "level", LanguageLevel.IsValid)
}

// ---------------------------------------------------------------------------
// Search
// ---------------------------------------------------------------------------

type SearchType string

const (
	SearchTypeExact    SearchType = "exact"
	SearchTypeFuzzy    SearchType = "fuzzy"
	SearchTypePrefix   SearchType = "prefix"
	SearchTypeFulltext SearchType = "fulltext"
)

func SearchTypeValues() []SearchType {
	return []SearchType{SearchTypeExact, SearchTypeFuzzy, SearchTypePrefix, SearchTypeFulltext}
}

func (s SearchType) String() string { return string(s) }

func (s SearchType) IsValid() bool {
	switch s {
	case SearchTypeExact, SearchTypeFuzzy, SearchTypePrefix, SearchTypeFulltext:
		return true
	}
	return false
}

func (s *SearchType) UnmarshalText(text []byte) error {
	return parseEnum(s, text, "type", SearchType.IsValid)
}

// ---------------------------------------------------------------------------
// Learning
// ---------------------------------------------------------------------------

// MasteryLevel is the five-stage ordinal of how well a learner knows a word.
// Transitions are not restricted; consumers decide how a word moves.
type MasteryLevel string

const (
	MasteryLevelNew      MasteryLevel = "new"
	MasteryLevelLearning MasteryLevel = "learning"
	MasteryLevelFamiliar MasteryLevel = "familiar"
	MasteryLevelKnown    MasteryLevel = "known"
	MasteryLevelMastered MasteryLevel = "mastered"
)

// MasteryLevelValues returns all stages from new to mastered.
func MasteryLevelValues() []MasteryLevel {
	return []MasteryLevel{
		MasteryLevelNew, MasteryLevelLearning, MasteryLevelFamiliar,
		MasteryLevelKnown, MasteryLevelMastered,
	}
}

func (m MasteryLevel) String() string { return string(m) }

func (m MasteryLevel) IsValid() bool { return m.Rank() >= 0 }

func (m MasteryLevel) Rank() int { return rank(MasteryLevelValues(), m) }

func (m MasteryLevel) Less(other MasteryLevel) bool { return m.Rank() < other.Rank() }

func (m MasteryLevel) Next() MasteryLevel { return step(MasteryLevelValues(), m, 1) }

func (m MasteryLevel) Prev() MasteryLevel { return step(MasteryLevelValues(), m, -1) }

func (m *MasteryLevel) UnmarshalText(text []byte) error {
	return parseEnum(m, text, "mastery", MasteryLevel.IsValid)
}

// StudyType is the exercise mode of a study session.
type StudyType string

const (
	StudyTypeFlashcard     StudyType = "flashcard"
	StudyTypeListening     StudyType = "listening"
	StudyTypeSpelling      StudyType = "spelling"
	StudyTypePronunciation StudyType = "pronunciation"
	StudyTypeReading       StudyType = "reading"
	StudyTypeWriting       StudyType = "writing"
)

func StudyTypeValues() []StudyType {
	return []StudyType{
		StudyTypeFlashcard, StudyTypeListening, StudyTypeSpelling,
		StudyTypePronunciation, StudyTypeReading, StudyTypeWriting,
	}
}

func (s StudyType) String() string { return string(s) }

func (s StudyType) IsValid() bool {
	switch s {
	case StudyTypeFlashcard, StudyTypeListening, StudyTypeSpelling,
		StudyTypePronunciation, StudyTypeReading, StudyTypeWriting:
		return true
	}
	return false
}

func (s *StudyType) UnmarshalText(text []byte) error {
	return parseEnum(s, text, "type", StudyType.IsValid)
}

type AchievementType string

const (
	AchievementTypeWordsLearned   AchievementType = "words_learned"
	AchievementTypeStudyStreak    AchievementType = "study_streak"
	AchievementTypeAccuracy       AchievementType = "accuracy"
	AchievementTypeTimeSpent      AchievementType = "time_spent"
	AchievementTypeVocabularySize AchievementType = "vocabulary_size"
)

func AchievementTypeValues() []AchievementType {
	return []AchievementType{
		AchievementTypeWordsLearned, AchievementTypeStudyStreak, AchievementTypeAccuracy,
		AchievementTypeTimeSpent, AchievementTypeVocabularySize,
	}
}

func (a AchievementType) String() string { return string(a) }

func (a AchievementType) IsValid() bool {
	switch a {
	case AchievementTypeWordsLearned, AchievementTypeStudyStreak, AchievementTypeAccuracy,
		AchievementTypeTimeSpent, AchievementTypeVocabularySize:
		return true
	}
	return false
}

func (a *AchievementType) UnmarshalText(text []byte) error {
	return parseEnum(a, text, "type", AchievementType.IsValid)
}

// ---------------------------------------------------------------------------
// AI services
// ---------------------------------------------------------------------------

type TranslationStyle string

const (
	TranslationStyleFormal   TranslationStyle = "formal"
	TranslationStyleInformal TranslationStyle = "informal"
	TranslationStyleAcademic TranslationStyle = "academic"
	TranslationStyleBusiness TranslationStyle = "business"
	TranslationStyleCasual   TranslationStyle = "casual"
)

func TranslationStyleValues() []TranslationStyle {
	return []TranslationStyle{
		TranslationStyleFormal, TranslationStyleInformal, TranslationStyleAcademic,
		TranslationStyleBusiness, TranslationStyleCasual,
	}
}

func (s TranslationStyle) String() string { return string(s) }

func (s TranslationStyle) IsValid() bool {
	switch s {
	case TranslationStyleFormal, TranslationStyleInformal, TranslationStyleAcademic,
		TranslationStyleBusiness, TranslationStyleCasual:
		return true
	}
	return false
}

func (s *TranslationStyle) UnmarshalText(text []byte) error {
	return parseEnum(s, text, "style", TranslationStyle.IsValid)
}

type WritingAssistType string

const (
	WritingAssistGrammarCheck  WritingAssistType = "grammar_check"
	WritingAssistStyleImprove  WritingAssistType = "style_improve"
	WritingAssistExpandContent WritingAssistType = "expand_content"
	WritingAssistSummarize     WritingAssistType = "summarize"
)

func WritingAssistTypeValues() []WritingAssistType {
	return []WritingAssistType{
		WritingAssistGrammarCheck, WritingAssistStyleImprove,
		WritingAssistExpandContent, WritingAssistSummarize,
	}
}

func (t WritingAssistType) String() string { return string(t) }

func (t WritingAssistType) IsValid() bool {
	switch t {
	case WritingAssistGrammarCheck, WritingAssistStyleImprove,
		WritingAssistExpandContent, WritingAssistSummarize:
		return true
	}
	return false
}

func (t *WritingAssistType) UnmarshalText(text []byte) error {
	return parseEnum(t, text, "type", WritingAssistType.IsValid)
}

type WritingStyle string

const (
	WritingStyleAcademic  WritingStyle = "academic"
	WritingStyleBusiness  WritingStyle = "business"
	WritingStyleCreative  WritingStyle = "creative"
	WritingStyleTechnical WritingStyle = "technical"
	WritingStyleCasual    WritingStyle = "casual"
)

func WritingStyleValues() []WritingStyle {
	return []WritingStyle{
		WritingStyleAcademic, WritingStyleBusiness, WritingStyleCreative,
		WritingStyleTechnical, WritingStyleCasual,
	}
}

func (s WritingStyle) String() string { return string(s) }

func (s WritingStyle) IsValid() bool {
	switch s {
	case WritingStyleAcademic, WritingStyleBusiness, WritingStyleCreative,
		WritingStyleTechnical, WritingStyleCasual:
		return true
	}
	return false
}

func (s *WritingStyle) UnmarshalText(text []byte) error {
	return parseEnum(s, text, "style", WritingStyle.IsValid)
}

type Formality string

const (
	FormalityFormal   Formality = "formal"
	FormalityInformal Formality = "informal"
)

func FormalityValues() []Formality { return []Formality{FormalityFormal, FormalityInformal} }

func (f Formality) String() string { return string(f) }

func (f Formality) IsValid() bool {
	return f == FormalityFormal || f == FormalityInformal
}

func (f *Formality) UnmarshalText(text []byte) error {
	return parseEnum(f, text, "formality", Formality.IsValid)
}

// SuggestionType classifies a writing suggestion.
type SuggestionType string

const (
	SuggestionTypeGrammar     SuggestionType = "grammar"
	SuggestionTypeSpelling    SuggestionType = "spelling"
	SuggestionTypePunctuation SuggestionType = "punctuation"
	SuggestionTypeStyle       SuggestionType = "style"
	SuggestionTypeVocabulary  SuggestionType = "vocabulary"
	SuggestionTypeClarity     SuggestionType = "clarity"
)

func SuggestionTypeValues() []SuggestionType {
	return []SuggestionType{
		SuggestionTypeGrammar, SuggestionTypeSpelling, SuggestionTypePunctuation,
		SuggestionTypeStyle, SuggestionTypeVocabulary, SuggestionTypeClarity,
	}
}

func (s SuggestionType) String() string { return string(s) }

func (s SuggestionType) IsValid() bool {
	switch s {
	case SuggestionTypeGrammar, SuggestionTypeSpelling, SuggestionTypePunctuation,
		SuggestionTypeStyle, SuggestionTypeVocabulary, SuggestionTypeClarity:
		return true
	}
	return false
}

func (s *SuggestionType) UnmarshalText(text []byte) error {
	return parseEnum(s, text, "type", SuggestionType.IsValid)
}

// ---------------------------------------------------------------------------
// Speech
// ---------------------------------------------------------------------------

type AudioFormat string

const (
	AudioFormatMP3 AudioFormat = "mp3"
	AudioFormatWAV AudioFormat = "wav"
	AudioFormatOGG AudioFormat = "ogg"
	AudioFormatAAC AudioFormat = "aac"
)

func AudioFormatValues() []AudioFormat {
	return []AudioFormat{AudioFormatMP3, AudioFormatWAV, AudioFormatOGG, AudioFormatAAC}
}

func (f AudioFormat) String() string { return string(f) }

func (f AudioFormat) IsValid() bool {
	switch f {
	case AudioFormatMP3, AudioFormatWAV, AudioFormatOGG, AudioFormatAAC:
		return true
	}
	return false
}

func (f *AudioFormat) UnmarshalText(text []byte) error {
	return parseEnum(f, text, "format", AudioFormat.IsValid)
}

type AudioQuality string

const (
	AudioQualityLow      AudioQuality = "low"
	AudioQualityMedium   AudioQuality = "medium"
	AudioQualityHigh     AudioQuality = "high"
	AudioQualityLossless AudioQuality = "lossless"
)

func AudioQualityValues() []AudioQuality {
	return []AudioQuality{AudioQualityLow, AudioQualityMedium, AudioQualityHigh, AudioQualityLossless}
}

func (q AudioQuality) String() string { return string(q) }

func (q AudioQuality) IsValid() bool {
	switch q {
	case AudioQualityLow, AudioQualityMedium, AudioQualityHigh, AudioQualityLossless:
		return true
	}
	return false
}

func (q *AudioQuality) UnmarshalText(text []byte) error {
	return parseEnum(q, text, "quality", AudioQuality.IsValid)
}

type SpeechEvaluationType string

const (
	SpeechEvaluationPronunciation SpeechEvaluationType = "pronunciation"
	SpeechEvaluationFluency       SpeechEvaluationType = "fluency"
	SpeechEvaluationAccuracy      SpeechEvaluationType = "accuracy"
	SpeechEvaluationComprehensive SpeechEvaluationType = "comprehensive"
)

func SpeechEvaluationTypeValues() []SpeechEvaluationType {
	return []SpeechEvaluationType{
		SpeechEvaluationPronunciation, SpeechEvaluationFluency,
		SpeechEvaluationAccuracy, SpeechEvaluationComprehensive,
	}
}

func (t SpeechEvaluationType) String() string { return string(t) }

func (t SpeechEvaluationType) IsValid() bool {
	switch t {
	case SpeechEvaluationPronunciation, SpeechEvaluationFluency,
		SpeechEvaluationAccuracy, SpeechEvaluationComprehensive:
		return true
	}
	return false
}

func (t *SpeechEvaluationType) UnmarshalText(text []byte) error {
	return parseEnum(t, text, "evaluationType", SpeechEvaluationType.IsValid)
}

// FeedbackType classifies a pronunciation error found by speech evaluation.
type FeedbackType string

const (
	FeedbackTypeMispronunciation FeedbackType = "mispronunciation"
	FeedbackTypeStressError      FeedbackType = "stress_error"
	FeedbackTypeRhythmError      FeedbackType = "rhythm_error"
	FeedbackTypeIntonationError  FeedbackType = "intonation_error"
)

func FeedbackTypeValues() []FeedbackType {
	return []FeedbackType{
		FeedbackTypeMispronunciation, FeedbackTypeStressError,
		FeedbackTypeRhythmError, FeedbackTypeIntonationError,
	}
}

func (t FeedbackType) String() string { return string(t) }

func (t FeedbackType) IsValid() bool {
	switch t {
	case FeedbackTypeMispronunciation, FeedbackTypeStressError,
		FeedbackTypeRhythmError, FeedbackTypeIntonationError:
		return true
	}
	return false
}

func (t *FeedbackType) UnmarshalText(text []byte) error {
	return parseEnum(t, text, "type", FeedbackType.IsValid)
}

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func SeverityValues() []Severity { return []Severity{SeverityLow, SeverityMedium, SeverityHigh} }

func (s Severity) String() string { return string(s) }

func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

func (s *Severity) UnmarshalText(text []byte) error {
	return parseEnum(s, text, "severity", Severity.IsValid)
}

// ---------------------------------------------------------------------------
// OCR
// ---------------------------------------------------------------------------

type OCROutputFormat string

const (
	OCROutputText OCROutputFormat = "text"
	OCROutputJSON OCROutputFormat = "json"
	OCROutputXML  OCROutputFormat = "xml"
)

func OCROutputFormatValues() []OCROutputFormat {
	return []OCROutputFormat{OCROutputText, OCROutputJSON, OCROutputXML}
}

func (f OCROutputFormat) String() string { return string(f) }

func (f OCROutputFormat) IsValid() bool {
	switch f {
	case OCROutputText, OCROutputJSON, OCROutputXML:
		return true
	}
	return false
}

func (f *OCROutputFormat) UnmarshalText(text []byte) error {
	return parseEnum(f, text, "outputFormat", OCROutputFormat.IsValid)
}

// ---------------------------------------------------------------------------
// System
// ---------------------------------------------------------------------------

// HealthStatus is the overall status of a health report.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

func HealthStatusValues() []HealthStatus {
	return []HealthStatus{HealthStatusHealthy, HealthStatusDegraded, HealthStatusUnhealthy}
}

func (s HealthStatus) String() string { return string(s) }

func (s HealthStatus) IsValid() bool {
	switch s {
	case HealthStatusHealthy, HealthStatusDegraded, HealthStatusUnhealthy:
		return true
	}
	return false
}

func (s *HealthStatus) UnmarshalText(text []byte) error {
	return parseEnum(s, text, "status", HealthStatus.IsValid)
}

// ServiceStatus is the status of a single dependency in a health report.
type ServiceStatus string

const (
	ServiceStatusUp       ServiceStatus = "up"
	ServiceStatusDown     ServiceStatus = "down"
	ServiceStatusDegraded ServiceStatus = "degraded"
)

func ServiceStatusValues() []ServiceStatus {
	return []ServiceStatus{ServiceStatusUp, ServiceStatusDown, ServiceStatusDegraded}
}

func (s ServiceStatus) String() string { return string(s) }

func (s ServiceStatus) IsValid() bool {
	switch s {
	case ServiceStatusUp, ServiceStatusDown, ServiceStatusDegraded:
		return true
	}
	return false
}

func (s *ServiceStatus) UnmarshalText(text []byte) error {
	return parseEnum(s, text, "status", ServiceStatus.IsValid)
}

// HTTPMethod is the verb of a documented API endpoint.
type HTTPMethod string

const (
	MethodGet    HTTPMethod = "GET"
	MethodPost   HTTPMethod = "POST"
	MethodPut    HTTPMethod = "PUT"
	MethodDelete HTTPMethod = "DELETE"
	MethodPatch  HTTPMethod = "PATCH"
)

func HTTPMethodValues() []HTTPMethod {
	return []HTTPMethod{MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch}
}

func (m HTTPMethod) String() string { return string(m) }

func (m HTTPMethod) IsValid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch:
		return true
	}
	return false
}

func (m *HTTPMethod) UnmarshalText(text []byte) error {
	return parseEnum(m, text, "method", HTTPMethod.IsValid)
}

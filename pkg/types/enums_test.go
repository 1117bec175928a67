package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func literals[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// checkEnum verifies the wire literals of a value set, that each literal
// round-trips through JSON, and that unknown literals are rejected.
func checkEnum[T ~string](t *testing.T, values []T, valid func(T) bool, want []string) {
	t.Helper()

	require.Equal(t, want, literals(values))

	for _, v := range values {
		assert.True(t, valid(v), "%q should be valid", v)

		b, err := json.Marshal(v)
		require.NoError(t, err)
		assert.Equal(t, `"`+string(v)+`"`, string(b))

		var got T
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Equal(t, v, got)
	}

	assert.False(t, valid(T("INVALID")))
	assert.False(t, valid(T("")))

	var got T
	err := json.Unmarshal([]byte(`"INVALID"`), &got)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, T(""), got)
}

func TestEnums_WireLiterals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{"UserRole", func(t *testing.T) {
			checkEnum(t, UserRoleValues(), UserRole.IsValid, []string{"admin", "user", "premium", "vip"})
		}},
		{"UserStatus", func(t *testing.T) {
			checkEnum(t, UserStatusValues(), UserStatus.IsValid, []string{"active", "inactive", "banned", "pending"})
		}},
		{"Gender", func(t *testing.T) {
			checkEnum(t, GenderValues(), Gender.IsValid, []string{"male", "female", "other"})
		}},
		{"Theme", func(t *testing.T) {
			checkEnum(t, ThemeValues(), Theme.IsValid, []string{"light", "dark", "auto"})
		}},
		{"ReviewMode", func(t *testing.T) {
			checkEnum(t, ReviewModeValues(), ReviewMode.IsValid, []string{"normal", "intensive", "casual"})
		}},
		{"Accent", func(t *testing.T) {
			checkEnum(t, AccentValues(), Accent.IsValid, []string{"us", "uk", "au"})
		}},
		{"SortOrder", func(t *testing.T) {
			checkEnum(t, SortOrderValues(), SortOrder.IsValid, []string{"asc", "desc"})
		}},
		{"PartOfSpeech", func(t *testing.T) {
			checkEnum(t, PartOfSpeechValues(), PartOfSpeech.IsValid, []string{
				"noun", "verb", "adjective", "adverb", "pronoun", "preposition",
				"conjunction", "interjection", "article", "determiner",
			})
		}},
		{"LanguageLevel", func(t *testing.T) {
			checkEnum(t, LanguageLevelValues(), LanguageLevel.IsValid, []string{
				"beginner", "elementary", "intermediate", "upper_intermediate", "advanced", "proficient",
			})
		}},
		{"SearchType", func(t *testing.T) {
			checkEnum(t, SearchTypeValues(), SearchType.IsValid, []string{"exact", "fuzzy", "prefix", "fulltext"})
		}},
		{"MasteryLevel", func(t *testing.T) {
			checkEnum(t, MasteryLevelValues(), MasteryLevel.IsValid, []string{"new", "learning", "familiar", "known", "mastered"})
		}},
		{"StudyType", func(t *testing.T) {
			checkEnum(t, StudyTypeValues(), StudyType.IsValid, []string{
				"flashcard", "listening", "spelling", "pronunciation", "reading", "writing",
			})
		}},
		{"AchievementType", func(t *testing.T) {
			checkEnum(t, AchievementTypeValues(), AchievementType.IsValid, []string{
				"words_learned", "study_streak", "accuracy", "time_spent", "vocabulary_size",
			})
		}},
		{"TranslationStyle", func(t *testing.T) {
			checkEnum(t, TranslationStyleValues(), TranslationStyle.IsValid, []string{
				"formal", "informal", "academic", "business", "casual",
			})
		}},
		{"WritingAssistType", func(t *testing.T) {
			checkEnum(t, WritingAssistTypeValues(), WritingAssistType.IsValid, []string{
				"grammar_check", "style_improve", "expand_content", "summarize",
			})
		}},
		{"WritingStyle", func(t *testing.T) {
			checkEnum(t, WritingStyleValues(), WritingStyle.IsValid, []string{
				"academic", "business", "creative", "technical", "casual",
			})
		}},
		{"Formality", func(t *testing.T) {
			checkEnum(t, FormalityValues(), Formality.IsValid, []string{"formal", "informal"})
		}},
		{"SuggestionType", func(t *testing.T) {
			checkEnum(t, SuggestionTypeValues(), SuggestionType.IsValid, []string{
				"grammar", "spelling", "punctuation", "style", "vocabulary", "clarity",
			})
		}},
		{"AudioFormat", func(t *testing.T) {
			checkEnum(t, AudioFormatValues(), AudioFormat.IsValid, []string{"mp3", "wav", "ogg", "aac"})
		}},
		{"AudioQuality", func(t *testing.T) {
			checkEnum(t, AudioQualityValues(), AudioQuality.IsValid, []string{"low", "medium", "high", "lossless"})
		}},
		{"SpeechEvaluationType", func(t *testing.T) {
			checkEnum(t, SpeechEvaluationTypeValues(), SpeechEvaluationType.IsValid, []string{
				"pronunciation", "fluency", "accuracy", "comprehensive",
			})
		}},
		{"FeedbackType", func(t *testing.T) {
			checkEnum(t, FeedbackTypeValues(), FeedbackType.IsValid, []string{
				"mispronunciation", "stress_error", "rhythm_error", "intonation_error",
			})
		}},
		{"Severity", func(t *testing.T) {
			checkEnum(t, SeverityValues(), Severity.IsValid, []string{"low", "medium", "high"})
		}},
		{"OCROutputFormat", func(t *testing.T) {
			checkEnum(t, OCROutputFormatValues(), OCROutputFormat.IsValid, []string{"text", "json", "xml"})
		}},
		{"HealthStatus", func(t *testing.T) {
			checkEnum(t, HealthStatusValues(), HealthStatus.IsValid, []string{"healthy", "degraded", "unhealthy"})
		}},
		{"ServiceStatus", func(t *testing.T) {
			checkEnum(t, ServiceStatusValues(), ServiceStatus.IsValid, []string{"up", "down", "degraded"})
		}},
		{"HTTPMethod", func(t *testing.T) {
			checkEnum(t, HTTPMethodValues(), HTTPMethod.IsValid, []string{"GET", "POST", "PUT", "DELETE", "PATCH"})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.run(t)
		})
	}
}

func TestEnum_IsCaseSensitive(t *testing.T) {
	t.Parallel()

	var role UserRole
	err := json.Unmarshal([]byte(`"ADMIN"`), &role)
	require.ErrorIs(t, err, ErrValidation)

	if UserRole("Admin").IsValid() {
		t.Error(`UserRole("Admin").IsValid() = true, want false`)
	}
}

func TestEnum_UnknownLiteralInsideRecord(t *testing.T) {
	t.Parallel()

	var u User
	err := json.Unmarshal([]byte(`{"id":"u1","role":"superuser","status":"active"}`), &u)
	require.ErrorIs(t, err, ErrValidation)
}

func TestUserRole_IsAdmin(t *testing.T) {
	t.Parallel()

	if !UserRoleAdmin.IsAdmin() {
		t.Error("admin should be admin")
	}
	if UserRoleVIP.IsAdmin() {
		t.Error("vip should not be admin")
	}
}

func TestLanguageLevel_Ordering(t *testing.T) {
	t.Parallel()

	levels := LanguageLevelValues()
	for i, l := range levels {
		if got := l.Rank(); got != i {
			t.Errorf("%s.Rank() = %d, want %d", l, got, i)
		}
	}

	assert.True(t, LanguageLevelBeginner.Less(LanguageLevelProficient))
	assert.False(t, LanguageLevelAdvanced.Less(LanguageLevelIntermediate))
	assert.False(t, LanguageLevelAdvanced.Less(LanguageLevelAdvanced))
	assert.Equal(t, -1, LanguageLevel("expert").Rank())

	assert.Equal(t, LanguageLevelUpperIntermediate, LanguageLevelIntermediate.Next())
	assert.Equal(t, LanguageLevelProficient, LanguageLevelProficient.Next())
	assert.Equal(t, LanguageLevelBeginner, LanguageLevelBeginner.Prev())
	assert.Equal(t, LanguageLevel("expert"), LanguageLevel("expert").Next())
}

func TestMasteryLevel_Ordering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level      MasteryLevel
		rank       int
		next, prev MasteryLevel
	}{
		{MasteryLevelNew, 0, MasteryLevelLearning, MasteryLevelNew},
		{MasteryLevelLearning, 1, MasteryLevelFamiliar, MasteryLevelNew},
		{MasteryLevelFamiliar, 2, MasteryLevelKnown, MasteryLevelLearning},
		{MasteryLevelKnown, 3, MasteryLevelMastered, MasteryLevelFamiliar},
		{MasteryLevelMastered, 4, MasteryLevelMastered, MasteryLevelKnown},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.rank, tt.level.Rank())
			assert.Equal(t, tt.next, tt.level.Next())
			assert.Equal(t, tt.prev, tt.level.Prev())
		})
	}

	assert.True(t, MasteryLevelNew.Less(MasteryLevelMastered))
	assert.False(t, MasteryLevel("").IsValid())
}

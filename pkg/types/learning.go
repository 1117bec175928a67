package types

import (
	"math"
	"time"
)

// Vocabulary is a user-owned word list.
type Vocabulary struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Color       *string   `json:"color,omitempty"`
	Icon        *string   `json:"icon,omitempty"`
	WordCount   int       `json:"wordCount"`
	IsDefault   bool      `json:"isDefault"`
	IsShared    bool      `json:"isShared"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (v Vocabulary) Validate() error {
	var errs fieldErrors
	if v.UserID == "" {
		errs.add("userId", "required")
	}
	if v.Name == "" {
		errs.add("name", "required")
	} else if len(v.Name) > 100 {
		errs.add("name", "too long")
	}
	if v.WordCount < 0 {
		errs.add("wordCount", "must not be negative")
	}
	return errs.err()
}

// VocabularyWord links a dictionary entry to a vocabulary list together
// with the learner's notes and review schedule.
type VocabularyWord struct {
	ID             string       `json:"id"`
	VocabularyID   string       `json:"vocabularyId"`
	WordID         string       `json:"wordId"`
	Word           Word         `json:"word"`
	Note           *string      `json:"note,omitempty"`
	Tags           []string     `json:"tags"`
	Mastery        MasteryLevel `json:"mastery"`
	AddedAt        time.Time    `json:"addedAt"`
	LastReviewedAt *time.Time   `json:"lastReviewedAt,omitempty"`
	NextReviewAt   *time.Time   `json:"nextReviewAt,omitempty"`
}

// DueAt reports whether the word should be reviewed at now. A word that was
// never scheduled is due unless it is already mastered.
func (vw VocabularyWord) DueAt(now time.Time) bool {
	if vw.NextReviewAt == nil {
		return vw.Mastery != MasteryLevelMastered
	}
	return !vw.NextReviewAt.After(now)
}

func (vw VocabularyWord) Validate() error {
	var errs fieldErrors
	if vw.VocabularyID == "" {
		errs.add("vocabularyId", "required")
	}
	if vw.WordID == "" {
		errs.add("wordId", "required")
	} else if vw.Word.ID != "" && vw.Word.ID != vw.WordID {
		errs.add("word.id", "does not match wordId")
	}
	if !vw.Mastery.IsValid() {
		errs.add("mastery", "invalid value")
	}
	if vw.LastReviewedAt != nil && vw.LastReviewedAt.Before(vw.AddedAt) {
		errs.add("lastReviewedAt", "before addedAt")
	}
	return errs.err()
}

// StudySession records one completed study run.
// Duration is in seconds; Accuracy is CorrectAnswers / WordsStudied in [0, 1].
type StudySession struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	VocabularyID   *string   `json:"vocabularyId,omitempty"`
	Type           StudyType `json:"type"`
	Duration       int64     `json:"duration"`
	WordsStudied   int       `json:"wordsStudied"`
	CorrectAnswers int       `json:"correctAnswers"`
	WrongAnswers   int       `json:"wrongAnswers"`
	Accuracy       float64   `json:"accuracy"`
	StartedAt      time.Time `json:"startedAt"`
	CompletedAt    time.Time `json:"completedAt"`
}

// ComputeAccuracy returns correct / studied, or 0 when nothing was studied.
func ComputeAccuracy(correct, studied int) float64 {
	if studied <= 0 {
		return 0
	}
	return float64(correct) / float64(studied)
}

func (s StudySession) Validate() error {
	var errs fieldErrors
	if s.UserID == "" {
		errs.add("userId", "required")
	}
	if !s.Type.IsValid() {
		errs.add("type", "invalid value")
	}
	if s.Duration < 0 {
		errs.add("duration", "must not be negative")
	}
	if s.WordsStudied < 0 || s.CorrectAnswers < 0 || s.WrongAnswers < 0 {
		errs.add("wordsStudied", "counts must not be negative")
	} else if s.CorrectAnswers+s.WrongAnswers > s.WordsStudied {
		errs.add("correctAnswers", "correct and wrong answers exceed words studied")
	}
	if !isRatio(s.Accuracy) {
		errs.add("accuracy", "must be within [0, 1]")
	}
	if s.CompletedAt.Before(s.StartedAt) {
		errs.add("completedAt", "before startedAt")
	}
	return errs.err()
}

// ReviewPlan is the set of words scheduled for a user's day.
type ReviewPlan struct {
	UserID      string           `json:"userId"`
	TotalWords  int              `json:"totalWords"`
	TodayTarget int              `json:"todayTarget"`
	ReviewWords []VocabularyWord `json:"reviewWords"`
	NewWords    []VocabularyWord `json:"newWords"`
	ScheduledAt time.Time        `json:"scheduledAt"`
	CompletedAt *time.Time       `json:"completedAt,omitempty"`
}

// Remaining returns how many words of today's target are left, never below 0.
func (p ReviewPlan) Remaining(done int) int {
	return max(p.TodayTarget-done, 0)
}

// IsCompleted reports whether the plan has been marked as done.
func (p ReviewPlan) IsCompleted() bool {
	return p.CompletedAt != nil
}

// LearningProgress aggregates a user's study statistics.
// StudyTimeTotal and StudyTimeToday are in seconds.
type LearningProgress struct {
	UserID         string        `json:"userId"`
	TotalWords     int           `json:"totalWords"`
	MasteredWords  int           `json:"masteredWords"`
	LearningWords  int           `json:"learningWords"`
	NewWords       int           `json:"newWords"`
	StreakDays     int           `json:"streakDays"`
	StudyTimeTotal int64         `json:"studyTimeTotal"`
	StudyTimeToday int64         `json:"studyTimeToday"`
	Accuracy       float64       `json:"accuracy"`
	Level          LanguageLevel `json:"level"`
	Experience     int           `json:"experience"`
	Achievements   []Achievement `json:"achievements"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

func (p LearningProgress) Validate() error {
	var errs fieldErrors
	if p.UserID == "" {
		errs.add("userId", "required")
	}
	if p.MasteredWords+p.LearningWords+p.NewWords > p.TotalWords {
		errs.add("totalWords", "smaller than the sum of word buckets")
	}
	if p.StudyTimeToday > p.StudyTimeTotal {
		errs.add("studyTimeToday", "exceeds studyTimeTotal")
	}
	if !isRatio(p.Accuracy) {
		errs.add("accuracy", "must be within [0, 1]")
	}
	if !p.Level.IsValid() {
		errs.add("level", "invalid value")
	}
	for i, a := range p.Achievements {
		errs.nest(indexPath("achievements", i), a.Validate())
	}
	return errs.err()
}

// Achievement is a goal a learner can unlock.
type Achievement struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Type        AchievementType `json:"type"`
	Requirement int             `json:"requirement"`
	Progress    int             `json:"progress"`
	IsUnlocked  bool            `json:"isUnlocked"`
	UnlockedAt  *time.Time      `json:"unlockedAt,omitempty"`
}

// Completion returns Progress / Requirement clamped to [0, 1].
func (a Achievement) Completion() float64 {
	if a.Requirement <= 0 {
		return 1
	}
	return math.Min(math.Max(float64(a.Progress)/float64(a.Requirement), 0), 1)
}

func (a Achievement) Validate() error {
	var errs fieldErrors
	if a.ID == "" {
		errs.add("id", "required")
	}
	if !a.Type.IsValid() {
		errs.add("type", "invalid value")
	}
	if a.Requirement < 0 {
		errs.add("requirement", "must not be negative")
	}
	if a.IsUnlocked != (a.UnlockedAt != nil) {
		errs.add("unlockedAt", "must be set exactly when isUnlocked")
	}
	return errs.err()
}

func isRatio(v float64) bool {
	return v >= 0 && v <= 1
}

func isScore(v float64) bool {
	return v >= 0 && v <= 100
}

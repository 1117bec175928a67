package types

import (
	"time"
	_ "time/tzdata" // UserProfile.Validate resolves IANA zones on hosts without zoneinfo.

	"github.com/google/uuid"
)

// NewID returns a fresh random identifier for a record.
// Identifiers are opaque strings on the wire; producers use UUIDv4.
func NewID() string {
	return uuid.NewString()
}

// User is a user account as exposed to clients.
type User struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Nickname    string     `json:"nickname"`
	Avatar      *string    `json:"avatar,omitempty"`
	Role        UserRole   `json:"role"`
	Status      UserStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// IsActive reports whether the account may sign in.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// HasPremium reports whether the user has access to paid features.
func (u *User) HasPremium() bool {
	switch u.Role {
	case UserRolePremium, UserRoleVIP, UserRoleAdmin:
		return true
	}
	return false
}

// UserProfile is the extended, user-editable part of an account.
type UserProfile struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Bio         *string         `json:"bio,omitempty"`
	Location    *string         `json:"location,omitempty"`
	Website     *string         `json:"website,omitempty"`
	BirthDate   *string         `json:"birthDate,omitempty"`
	Gender      *Gender         `json:"gender,omitempty"`
	Language    string          `json:"language"`
	Timezone    string          `json:"timezone"`
	Preferences UserPreferences `json:"preferences"`
}

// Validate checks the profile's enums, time zone and nested preferences.
func (p UserProfile) Validate() error {
	var errs fieldErrors

	if p.UserID == "" {
		errs.add("userId", "required")
	}
	if p.Bio != nil && len(*p.Bio) > 1000 {
		errs.add("bio", "too long")
	}
	if p.BirthDate != nil {
		if _, err := time.Parse(time.DateOnly, *p.BirthDate); err != nil {
			errs.add("birthDate", "must be YYYY-MM-DD")
		}
	}
	if p.Gender != nil && !p.Gender.IsValid() {
		errs.add("gender", "invalid value")
	}
	if p.Language == "" {
		errs.add("language", "required")
	}
	if _, err := time.LoadLocation(p.Timezone); err != nil || p.Timezone == "" {
		errs.add("timezone", "unknown time zone")
	}
	errs.nest("preferences", p.Preferences.Validate())

	return errs.err()
}

// UserPreferences groups all per-user settings.
type UserPreferences struct {
	Theme         Theme                `json:"theme"`
	Language      string               `json:"language"`
	Notifications NotificationSettings `json:"notifications"`
	Privacy       PrivacySettings      `json:"privacy"`
	Learning      LearningSettings     `json:"learning"`
}

// DefaultUserPreferences returns the preferences assigned to a new account.
func DefaultUserPreferences(language string) UserPreferences {
	return UserPreferences{
		Theme:    ThemeAuto,
		Language: language,
		Notifications: NotificationSettings{
			Email:    true,
			Push:     true,
			Review:   true,
			Progress: true,
			Updates:  false,
		},
		Privacy: PrivacySettings{
			ShowProfile:         false,
			ShowProgress:        true,
			AllowDataCollection: false,
			ShareAnalytics:      false,
		},
		Learning: LearningSettings{
			DailyGoal:     20,
			ReviewMode:    ReviewModeNormal,
			Pronunciation: AccentUS,
			AutoPlay:      true,
			ShowHints:     true,
		},
	}
}

func (p UserPreferences) Validate() error {
	var errs fieldErrors
	if !p.Theme.IsValid() {
		errs.add("theme", "invalid value")
	}
	if p.Language == "" {
		errs.add("language", "required")
	}
	errs.nest("learning", p.Learning.Validate())
	return errs.err()
}

type NotificationSettings struct {
	Email    bool `json:"email"`
	Push     bool `json:"push"`
	Review   bool `json:"review"`
	Progress bool `json:"progress"`
	Updates  bool `json:"updates"`
}

type PrivacySettings struct {
	ShowProfile         bool `json:"showProfile"`
	ShowProgress        bool `json:"showProgress"`
	AllowDataCollection bool `json:"allowDataCollection"`
	ShareAnalytics      bool `json:"shareAnalytics"`
}

// LearningSettings controls the daily study plan.
type LearningSettings struct {
	DailyGoal     int        `json:"dailyGoal"`
	ReviewMode    ReviewMode `json:"reviewMode"`
	Pronunciation Accent     `json:"pronunciation"`
	AutoPlay      bool       `json:"autoPlay"`
	ShowHints     bool       `json:"showHints"`
}

func (s LearningSettings) Validate() error {
	var errs fieldErrors
	if s.DailyGoal < 1 {
		errs.add("dailyGoal", "must be at least 1")
	} else if s.DailyGoal > 1000 {
		errs.add("dailyGoal", "must be at most 1000")
	}
	if !s.ReviewMode.IsValid() {
		errs.add("reviewMode", "invalid value")
	}
	if !s.Pronunciation.IsValid() {
		errs.add("pronunciation", "invalid value")
	}
	return errs.err()
}

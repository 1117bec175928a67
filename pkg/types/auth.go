package types

import (
	"net/mail"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 32
	minPasswordLen = 8
	maxPasswordLen = 128
	maxNicknameLen = 64
)

// MaxHashablePasswordLen is the longest password, in bytes, that bcrypt
// accepts. New passwords are capped at it.
const MaxHashablePasswordLen = 72

// LoginRequest carries username/password credentials.
type LoginRequest struct {
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	RememberMe *bool   `json:"rememberMe,omitempty"`
	Captcha    *string `json:"captcha,omitempty"`
}

func (r LoginRequest) Validate() error {
	var errs fieldErrors
	if r.Username == "" {
		errs.add("username", "required")
	}
	if r.Password == "" {
		errs.add("password", "required")
	} else if len(r.Password) > maxPasswordLen {
		errs.add("password", "too long")
	}
	if r.Captcha != nil && *r.Captcha == "" {
		errs.add("captcha", "must not be empty")
	}
	return errs.err()
}

// LoginResponse is returned after a successful login or registration.
// ExpiresAt is the access token expiry in Unix milliseconds.
type LoginResponse struct {
	User         User   `json:"user"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	ExpiresAt    int64  `json:"expiresAt"`
}

// NewLoginResponse builds a LoginResponse whose token expires at expires.
func NewLoginResponse(user User, token, refreshToken string, expires time.Time) LoginResponse {
	return LoginResponse{
		User:         user,
		Token:        token,
		RefreshToken: refreshToken,
		ExpiresAt:    expires.UnixMilli(),
	}
}

// ExpiresTime returns ExpiresAt as a time.Time.
func (r LoginResponse) ExpiresTime() time.Time {
	return time.UnixMilli(r.ExpiresAt)
}

// Expired reports whether the access token has expired at now.
func (r LoginResponse) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresTime())
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Username        string  `json:"username"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirmPassword"`
	Nickname        string  `json:"nickname"`
	Captcha         *string `json:"captcha,omitempty"`
	InviteCode      *string `json:"inviteCode,omitempty"`
}

func (r RegisterRequest) Validate() error {
	var errs fieldErrors

	switch n := utf8.RuneCountInString(r.Username); {
	case n == 0:
		errs.add("username", "required")
	case n < minUsernameLen:
		errs.add("username", "too short")
	case n > maxUsernameLen:
		errs.add("username", "too long")
	}

	if r.Email == "" {
		errs.add("email", "required")
	} else if addr, err := mail.ParseAddress(r.Email); err != nil || addr.Address != r.Email {
		errs.add("email", "invalid format")
	}

	switch n := len(r.Password); {
	case n == 0:
		errs.add("password", "required")
	case n < minPasswordLen:
		errs.add("password", "too short")
	case n > MaxHashablePasswordLen:
		errs.add("password", "too long")
	default:
		if msg := passwordWeakness(r.Password); msg != "" {
			errs.add("password", msg)
		}
	}
	if r.ConfirmPassword != r.Password {
		errs.add("confirmPassword", "does not match password")
	}

	if r.Nickname == "" {
		errs.add("nickname", "required")
	} else if utf8.RuneCountInString(r.Nickname) > maxNicknameLen {
		errs.add("nickname", "too long")
	}

	if r.InviteCode != nil && *r.InviteCode == "" {
		errs.add("inviteCode", "must not be empty")
	}

	return errs.err()
}

// CheckPasswordStrength applies the rules new passwords must meet: 8 to 72
// bytes with at least one upper-case letter, one lower-case letter, one
// digit and one punctuation or symbol character.
func CheckPasswordStrength(password string) error {
	switch n := len(password); {
	case n < minPasswordLen:
		return NewValidationError("password", "too short")
	case n > MaxHashablePasswordLen:
		return NewValidationError("password", "too long")
	}
	if msg := passwordWeakness(password); msg != "" {
		return NewValidationError("password", msg)
	}
	return nil
}

func passwordWeakness(password string) string {
	var upper, lower, digit, special bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			upper = true
		case unicode.IsLower(c):
			lower = true
		case unicode.IsDigit(c):
			digit = true
		case unicode.IsPunct(c) || unicode.IsSymbol(c):
			special = true
		}
	}
	switch {
	case !upper:
		return "must contain an upper-case letter"
	case !lower:
		return "must contain a lower-case letter"
	case !digit:
		return "must contain a digit"
	case !special:
		return "must contain a punctuation or symbol character"
	}
	return ""
}

package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTokenInvalid = errors.New("token invalid or expired")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrInvalidLanguage = errors.New("invalid language")

// Language is the user's preferred UI language.
type Language string

const (
	LanguageItalian Language = "it"
	LanguageEnglish Language = "en"
)

// DefaultLanguage is applied when the server sends no preference.
const DefaultLanguage = LanguageItalian

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l == LanguageItalian || l == LanguageEnglish
}

// User is the account record returned by the marketplace API. It is owned
// by the session and replaced wholesale on login and refresh, never
// field-mutated in place.
type User struct {
	ID              int      `json:"id"`
	Email           string   `json:"email"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Phone           string   `json:"phone,omitempty"`
	IsActive        bool     `json:"is_active"`
	RoleName        Role     `json:"role_name"`
	RoleDescription string   `json:"role_description,omitempty"`
	Language        Language `json:"language,omitempty"`
	ProfilePicture  []byte   `json:"profile_picture,omitempty"`
}

// PreferredLanguage returns the user's language, falling back to the
// default when the field is absent or unrecognised.
func (u *User) PreferredLanguage() Language {
	if u == nil || !u.Language.Valid() {
		return DefaultLanguage
	}
	return u.Language
}

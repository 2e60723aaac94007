package auth

import (
	"errors"

	"github.com/lvroom/living-room-api/internal/validate"
)

// User name and password bounds. Passwords are bounded before encoding;
// the stored form is always at most 20 characters.
const (
	minNameLength     = 3
	maxNameLength     = 20
	minPasswordLength = 8
	maxPasswordLength = 20
)

// AdminUserID is the seeded administrator account. It can be updated but
// never deleted through the API.
const AdminUserID = "admin-1234"

// User is an API account. Password holds the stored (encoded or hashed)
// form and is never serialised.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// Validate checks the user's identity fields. The password is validated
// separately, before encoding, by ValidatePassword.
func (u *User) Validate() error {
	if err := validate.ID("id", u.ID); err != nil {
		return err
	}
	return validate.Strings([]validate.StringRule{
		{Name: "name", Value: u.Name, Required: true, MinLen: minNameLength, MaxLen: maxNameLength},
		{Name: "email", Value: u.Email, Required: true, Email: true},
	})
}

// ValidatePassword checks a plaintext password against the length bounds.
func ValidatePassword(password string) error {
	return validate.Strings([]validate.StringRule{
		{Name: "password", Value: password, Required: true, MinLen: minPasswordLength, MaxLen: maxPasswordLength},
	})
}

// Sentinel errors for auth operations.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrProtectedUser      = errors.New("user account is protected")
	ErrTokenInvalid       = errors.New("invalid token")
)

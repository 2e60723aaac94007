package auth

import (
	"context"
	"errors"
	"fmt"
)

// Authenticator exchanges credentials for signed access tokens.
type Authenticator struct {
	users  UserRepository
	secret string
}

// NewAuthenticator creates an Authenticator over the given user repository.
func NewAuthenticator(users UserRepository, secret string) *Authenticator {
	return &Authenticator{users: users, secret: secret}
}

// Authenticate verifies the credentials and returns a signed access token.
// An unknown user and a wrong password both return ErrInvalidCredentials,
// so a caller cannot probe which IDs exist.
func (a *Authenticator) Authenticate(ctx context.Context, id, password string) (string, error) {
	user, err := a.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("looking up user: %w", err)
	}

	ok, err := VerifyStored(password, user.Password)
	if err != nil {
		return "", fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	return GenerateAccessToken(user.ID, a.secret)
}

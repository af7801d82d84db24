package domain

import (
	"strings"

	"github.com/SscSPs/garage_invoice_app/internal/utils"
)

// User represents an account that can log in to the application.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	// RefreshToken is the single active refresh token, empty when logged out.
	RefreshToken string
	Timestamps
}

// NewUser builds a user with a normalized email and a freshly hashed password.
func NewUser(username, email, password string, cost int) (*User, error) {
	u := &User{
		Username: NormalizeUsername(username),
		Email:    NormalizeEmail(email),
	}
	if err := u.SetPassword(password, cost); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword replaces the stored hash. It is the only place a hash is computed,
// so unrelated updates never rehash an existing value.
func (u *User) SetPassword(plain string, cost int) error {
	hash, err := utils.HashPassword(plain, cost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return utils.CheckPasswordHash(plain, u.PasswordHash)
}

// NormalizeUsername trims surrounding whitespace. Usernames stay case-sensitive.
func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

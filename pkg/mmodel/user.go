package mmodel

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Role is the privilege level of a user, ordered Guest < User < Scout < Admin.
type Role int

const (
	RoleGuest Role = iota
	RoleUser
	RoleScout
	RoleAdmin
)

// ParseRole translates the textual role.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "guest":
		return RoleGuest, nil
	case "user":
		return RoleUser, nil
	case "scout":
		return RoleScout, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return 0, fmt.Errorf("invalid role: %q", s)
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case RoleGuest:
		return "guest"
	case RoleUser:
		return "user"
	case RoleScout:
		return "scout"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// User is an account keyed by email address.
type User struct {
	Email          EmailAddress `json:"email"`
	EmailConfirmed bool         `json:"emailConfirmed"`
	Password       string       `json:"-"`
	Role           Role         `json:"role"`
}

// NewPassword hashes a plaintext password with bcrypt.
func NewPassword(plain string) (string, error) {
	if err := ValidatePasswordStrength(plain); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword compares a plaintext password against the stored hash.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// ValidatePasswordStrength enforces the minimum password requirements:
// at least 8 characters without whitespace.
func ValidatePasswordStrength(plain string) error {
	if len(plain) < 8 {
		return fmt.Errorf("password too short: %d characters", len(plain))
	}

	for _, c := range plain {
		if unicode.IsSpace(c) {
			return fmt.Errorf("password must not contain whitespace")
		}
	}

	return nil
}

// CreateUserInput is the payload for registering a user.
type CreateUserInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput is the payload for signing in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

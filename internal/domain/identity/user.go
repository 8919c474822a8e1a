package identity

import (
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/aromatta/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// User roles
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 6

// User is a registered account. PasswordHash is a bcrypt hash and is
// never serialized into API responses.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Avatar       string `json:"avatar,omitempty"`
	PasswordHash string `json:"passwordHash,omitempty"`
}

// Profile is the credential-free view of a user, safe to return to
// clients and to embed in session payloads.
type Profile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// NewUser registers an account with a freshly hashed password
func NewUser(name, email, password, role string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_USER", "Name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, shared.NewDomainError("INVALID_USER", "Email address is invalid")
	}
	if len(password) < MinPasswordLength {
		return nil, shared.NewDomainError("WEAK_PASSWORD", "Password must be at least 6 characters")
	}
	if role != RoleBuyer && role != RoleSeller {
		return nil, shared.NewDomainError("INVALID_USER", "Role must be buyer or seller")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		ID:           strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
	}, nil
}

// CheckPassword reports whether the candidate matches the stored hash
func (u *User) CheckPassword(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(candidate)) == nil
}

// EmailEquals compares emails case-insensitively
func (u *User) EmailEquals(email string) bool {
	return strings.EqualFold(u.Email, strings.TrimSpace(email))
}

// Profile returns the credential-free view of the user
func (u *User) Profile() Profile {
	return Profile{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Avatar: u.Avatar,
	}
}

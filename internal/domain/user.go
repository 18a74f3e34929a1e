package domain

import (
	"context"
	"time"
)

// User represents a registered user
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	AvatarURL    string    `json:"avatar_url"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser returns a new User with the given fields. ID is typically set by the repository on create.
func NewUser(name, email, passwordHash, avatarURL string, createdAt, updatedAt time.Time) *User {
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		AvatarURL:    avatarURL,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// UserProfile is the public subset of a user shown to other users
// (marketplace listings, swap request counterparts).
// swagger:model UserProfile
type UserProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// Profile returns the public projection of the user.
func (u *User) Profile() *UserProfile {
	return &UserProfile{ID: u.ID, Name: u.Name, AvatarURL: u.AvatarURL}
}

// PasswordHasher hashes and verifies passwords. Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

// AuthService defines sign-up and login.
type AuthService interface {
	SignUp(ctx context.Context, name, email, password string) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
}

// UserService defines user profile reads.
type UserService interface {
	GetByID(ctx context.Context, id string) (*User, error)
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	// This is the canonical actor identity recorded as MemberID, SenderID
	// and UploadedBy on every write.
	ID string

	// Email is the user's email address (unique). Used for login.
	Email string

	// DisplayName is the name shown to other group members.
	DisplayName string

	// PhotoURL is an optional profile picture URL.
	PhotoURL string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the user account was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last profile change.
	UpdatedAt int64
}

// NewUser creates a user with a fresh ID and timestamps.
func NewUser(email, displayName, passwordHash string) *User {
	now := time.Now().Unix()
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Identity is the authenticated actor of a request, as yielded by the
// identity provider.
type Identity struct {
	UID         string
	DisplayName string
	Email       string
	PhotoURL    string
}

// Name returns the best display name for the identity, falling back to the
// email address and finally to a placeholder.
func (i Identity) Name() string {
	if i.DisplayName != "" {
		return i.DisplayName
	}
	if i.Email != "" {
		return i.Email
	}
	return "New Member"
}

// Member converts the identity into the profile embedded in a group.
func (i Identity) Member() Member {
	return Member{ID: i.UID, Name: i.Name(), AvatarURL: i.PhotoURL}
}

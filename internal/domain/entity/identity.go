package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the signed-in user together with the session that proves it.
type Identity struct {
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name,omitempty"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Expired reports whether the access token is past its expiry at now.
// A zero ExpiresAt is treated as unknown and therefore not expired.
func (i *Identity) Expired(now time.Time) bool {
	if i == nil {
		return true
	}
	if i.ExpiresAt.IsZero() {
		return false
	}

	return !now.Before(i.ExpiresAt)
}

// SameUser reports whether both identities belong to the same user.
func SameUser(a, b *Identity) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.UserID == b.UserID
}

// PersistedSession is the form an identity takes in device-local storage.
type PersistedSession struct {
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name,omitempty"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// ToPersistedSession converts an identity into its stored form.
func (i *Identity) ToPersistedSession() *PersistedSession {
	return &PersistedSession{
		UserID:       i.UserID,
		Email:        i.Email,
		FullName:     i.FullName,
		AccessToken:  i.AccessToken,
		RefreshToken: i.RefreshToken,
		ExpiresAt:    i.ExpiresAt,
	}
}

// ToIdentity converts a stored session back into an identity.
func (s *PersistedSession) ToIdentity() *Identity {
	return &Identity{
		UserID:       s.UserID,
		Email:        s.Email,
		FullName:     s.FullName,
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresAt:    s.ExpiresAt,
	}
}

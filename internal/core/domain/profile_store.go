package domain

import (
	"context"
	"errors"
)

var (
	ErrProfileNotFound = errors.New("user profile not found")
)

// ProfileStore is the read contract over user physiology profiles.
type ProfileStore interface {
	// GetUserProfile retrieves the profile for a user.
	GetUserProfile(ctx context.Context, userID string) (*UserProfile, error)
}

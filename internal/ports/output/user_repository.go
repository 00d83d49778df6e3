package output

import "bookmart/internal/domain"

// UserRepository interface - Output port
// The account subsystem is an external collaborator; this is the only slice
// of it the application consumes.
type UserRepository interface {
	// GetProfile returns the registered profile for the given identity.
	GetProfile(userID string) (*domain.Profile, error)
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered gardener. Credentials are a username plus bcrypt
// password hash; plants, inventory, and events all hang off the ID.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Display name, also the login identifier.
	PasswordHash string    // bcrypt hash of the login password.
	Karma        int       // Community goodwill, earned by tending other users' plants.
	FenceActive  bool      // Opt-in privacy flag; blocks all non-owner watering and fertilizing.
	CreatedAt    time.Time // Timestamp of when this account was registered.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

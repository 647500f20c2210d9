// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. Every order belongs to exactly
// one User, and the staff flag is the only source of elevated authorization.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Username     string    // Unique login name, also the subject embedded in access tokens.
	Email        string    // Unique contact email.
	PasswordHash string    // The bcrypt digest of the user's password. Plaintext is never stored.
	IsActive     bool      // Reserved for disabling accounts; stored but not enforced on requests.
	IsStaff      bool      // Grants cross-user authorization (list/read any order, change status).
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account credential: an email paired with a bcrypt password hash.
// It is created once at signup and never modified afterwards; there is no
// password-change or account-deletion flow in this API.
type User struct {
	ID           uuid.UUID // Unique identifier, generated by the database at creation.
	Email        string    // Login identifier, unique across all accounts.
	PasswordHash string    // bcrypt hash of the signup password. Never the plaintext.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this record.
}

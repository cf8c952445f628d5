package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account that creates tasks and logs time against them.
// PasswordHash is a bcrypt hash and never leaves the backend.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName returns "FirstName LastName" for report rows and API payloads.
func (u User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

package models

import "attendly-api/internal/core/domain"

// Storage keys. The whole persisted state of the system lives under
// these three documents in the key-value store.
const (
	KeyAttendanceRecords = "attendance_records"
	KeyCurrentUser       = "currentUser"
	KeyUserDirectory     = "user_directory"
)

// Credential is a directory entry as persisted under KeyUserDirectory.
// The password is stored as a bcrypt hash; the plaintext never leaves
// the seeder.
type Credential struct {
	UserID       string `json:"userId"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	FullName     string `json:"fullName"`
	Role         string `json:"role"`
}

// ToIdentity strips the credential down to the session-safe identity
func (c *Credential) ToIdentity() *domain.Identity {
	return &domain.Identity{
		UserID:   c.UserID,
		Username: c.Username,
		FullName: c.FullName,
		Role:     c.Role,
	}
}

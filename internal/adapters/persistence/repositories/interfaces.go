package repositories

import (
	"context"

	"attendly-api/internal/adapters/persistence/models"
	"attendly-api/internal/core/domain"
)

// RecordStore owns the persisted attendance record collection.
// Reads return the whole collection; writes replace it. Callers that
// mutate must read-modify-write the full sequence.
type RecordStore interface {
	LoadAll(ctx context.Context) ([]domain.AttendanceRecord, error)
	SaveAll(ctx context.Context, records []domain.AttendanceRecord) error
}

// SessionStore persists the current authenticated identity
type SessionStore interface {
	Current(ctx context.Context) (*domain.Identity, error)
	Save(ctx context.Context, identity *domain.Identity) error
	Clear(ctx context.Context) error
}

// CredentialDirectory looks up login credentials by username.
// The seeded directory is fixed, but the interface lets a real user
// database be substituted without touching the authentication flow.
type CredentialDirectory interface {
	FindByUsername(ctx context.Context, username string) (*models.Credential, error)
	SaveAll(ctx context.Context, creds []models.Credential) error
	Count(ctx context.Context) (int, error)
}

package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"attendly-api/internal/adapters/persistence/kvstore"
	"attendly-api/internal/adapters/persistence/models"
)

// credentialRepository implements CredentialDirectory over the key-value
// store. The whole directory is one JSON array under KeyUserDirectory.
type credentialRepository struct {
	store *kvstore.Store
}

// NewCredentialRepository creates a KV-backed credential directory
func NewCredentialRepository(store *kvstore.Store) CredentialDirectory {
	return &credentialRepository{store: store}
}

// FindByUsername returns the matching directory entry, or nil when the
// username is unknown
func (r *credentialRepository) FindByUsername(ctx context.Context, username string) (*models.Credential, error) {
	creds, err := r.loadAll()
	if err != nil {
		return nil, err
	}
	for i := range creds {
		if creds[i].Username == username {
			return &creds[i], nil
		}
	}
	return nil, nil
}

// SaveAll replaces the persisted directory
func (r *credentialRepository) SaveAll(ctx context.Context, creds []models.Credential) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to encode user directory: %w", err)
	}
	return r.store.Set(models.KeyUserDirectory, data)
}

// Count returns the number of directory entries
func (r *credentialRepository) Count(ctx context.Context) (int, error) {
	creds, err := r.loadAll()
	if err != nil {
		return 0, err
	}
	return len(creds), nil
}

func (r *credentialRepository) loadAll() ([]models.Credential, error) {
	data, ok, err := r.store.Get(models.KeyUserDirectory)
	if err != nil {
		return nil, fmt.Errorf("failed to load user directory: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var creds []models.Credential
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to decode user directory: %w", err)
	}
	return creds, nil
}

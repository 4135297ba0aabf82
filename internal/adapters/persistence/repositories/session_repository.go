package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"attendly-api/internal/adapters/persistence/kvstore"
	"attendly-api/internal/adapters/persistence/models"
	"attendly-api/internal/core/domain"
)

// sessionRepository implements SessionStore over the key-value store.
// The identity lives under KeyCurrentUser and is removed on logout.
type sessionRepository struct {
	store *kvstore.Store
}

// NewSessionRepository creates a KV-backed session store
func NewSessionRepository(store *kvstore.Store) SessionStore {
	return &sessionRepository{store: store}
}

// Current returns the persisted identity, or nil when logged out
func (r *sessionRepository) Current(ctx context.Context) (*domain.Identity, error) {
	data, ok, err := r.store.Get(models.KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var identity domain.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &identity, nil
}

// Save persists the identity as the current session
func (r *sessionRepository) Save(ctx context.Context, identity *domain.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return r.store.Set(models.KeyCurrentUser, data)
}

// Clear removes the current session
func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(models.KeyCurrentUser)
}

package config

import (
	"fmt"
	"log"

	"attendly-api/internal/adapters/persistence/kvstore"
)

// OpenStorage opens the durable key-value store that backs every
// repository. There is no external database; all state lives as JSON
// documents under the configured data directory.
func OpenStorage(cfg *Config) (*kvstore.Store, error) {
	store, err := kvstore.Open(cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	log.Printf("✅ Storage opened [%s]", cfg.Storage.DataDir)
	return store, nil
}

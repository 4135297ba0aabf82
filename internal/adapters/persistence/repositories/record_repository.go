package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"attendly-api/internal/adapters/persistence/kvstore"
	"attendly-api/internal/adapters/persistence/models"
	"attendly-api/internal/core/domain"
)

// recordRepository implements RecordStore over the key-value store.
// The full collection is one JSON array under KeyAttendanceRecords;
// an absent CheckOutTime serializes as null.
type recordRepository struct {
	store *kvstore.Store
}

// NewRecordRepository creates a KV-backed record store
func NewRecordRepository(store *kvstore.Store) RecordStore {
	return &recordRepository{store: store}
}

// LoadAll returns the persisted collection, or an empty slice when
// nothing has been written yet
func (r *recordRepository) LoadAll(ctx context.Context) ([]domain.AttendanceRecord, error) {
	data, ok, err := r.store.Get(models.KeyAttendanceRecords)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance records: %w", err)
	}
	if !ok {
		return []domain.AttendanceRecord{}, nil
	}

	var records []domain.AttendanceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode attendance records: %w", err)
	}
	if records == nil {
		records = []domain.AttendanceRecord{}
	}
	return records, nil
}

// SaveAll replaces the persisted collection
func (r *recordRepository) SaveAll(ctx context.Context, records []domain.AttendanceRecord) error {
	if records == nil {
		records = []domain.AttendanceRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode attendance records: %w", err)
	}
	return r.store.Set(models.KeyAttendanceRecords, data)
}

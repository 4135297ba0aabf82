package repositories

import (
	"context"
	"strings"
	"testing"
	"time"

	"attendly-api/internal/adapters/persistence/kvstore"
	"attendly-api/internal/adapters/persistence/models"
	"attendly-api/internal/core/domain"
)

func newStore(t *testing.T) *kvstore.Store {
	t.Helper()
	store, err := kvstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return store
}

func TestRecordRepositoryEmptyOnAbsence(t *testing.T) {
	repo := NewRecordRepository(newStore(t))

	records, err := repo.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if records == nil {
		t.Fatal("LoadAll() returned nil, want empty slice")
	}
	if len(records) != 0 {
		t.Errorf("LoadAll() returned %d records, want 0", len(records))
	}
}

func TestRecordRepositoryRoundTrip(t *testing.T) {
	store := newStore(t)
	repo := NewRecordRepository(store)
	ctx := context.Background()

	in := time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local)
	out := time.Date(2024, 1, 2, 17, 30, 0, 0, time.Local)
	records := []domain.AttendanceRecord{
		{ID: "a", EmployeeID: "2", EmployeeName: "John Smith", CheckInTime: in, CheckOutTime: &out, AttendanceDate: "2024-01-02"},
		{ID: "b", EmployeeID: "3", EmployeeName: "Jane Doe", CheckInTime: in, CheckOutTime: nil, AttendanceDate: "2024-01-02"},
	}

	if err := repo.SaveAll(ctx, records); err != nil {
		t.Fatalf("SaveAll() error = %v", err)
	}

	got, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("LoadAll() returned %d records, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Error("stored order was not preserved")
	}
	if got[0].CheckOutTime == nil || !got[0].CheckOutTime.Equal(out) {
		t.Errorf("closed record check-out = %v, want %v", got[0].CheckOutTime, out)
	}
	if got[1].CheckOutTime != nil {
		t.Errorf("open record check-out = %v, want nil", got[1].CheckOutTime)
	}

	// Absent check-out serializes as null in the stored document
	raw, ok, err := store.Get(models.KeyAttendanceRecords)
	if err != nil || !ok {
		t.Fatalf("Get(%s) = %v, %v", models.KeyAttendanceRecords, ok, err)
	}
	if !strings.Contains(string(raw), `"checkOutTime":null`) {
		t.Errorf("stored document missing null checkOutTime: %s", raw)
	}
}

func TestSessionRepository(t *testing.T) {
	repo := NewSessionRepository(newStore(t))
	ctx := context.Background()

	// Logged out: nil identity, no error
	current, err := repo.Current(ctx)
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if current != nil {
		t.Errorf("Current() = %+v, want nil", current)
	}

	identity := &domain.Identity{UserID: "1", Username: "admin", FullName: "Admin User", Role: domain.RoleAdmin}
	if err := repo.Save(ctx, identity); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	current, err = repo.Current(ctx)
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if current == nil || *current != *identity {
		t.Errorf("Current() = %+v, want %+v", current, identity)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	current, err = repo.Current(ctx)
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if current != nil {
		t.Errorf("Current() after Clear = %+v, want nil", current)
	}
}

func TestCredentialRepository(t *testing.T) {
	repo := NewCredentialRepository(newStore(t))
	ctx := context.Background()

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Count() = %d, want 0", count)
	}

	creds := []models.Credential{
		{UserID: "1", Username: "admin", PasswordHash: "$2a$12$x", FullName: "Admin User", Role: domain.RoleAdmin},
		{UserID: "2", Username: "employee1", PasswordHash: "$2a$12$y", FullName: "John Smith", Role: domain.RoleEmployee},
	}
	if err := repo.SaveAll(ctx, creds); err != nil {
		t.Fatalf("SaveAll() error = %v", err)
	}

	found, err := repo.FindByUsername(ctx, "employee1")
	if err != nil {
		t.Fatalf("FindByUsername() error = %v", err)
	}
	if found == nil || found.FullName != "John Smith" {
		t.Errorf("FindByUsername() = %+v, want John Smith", found)
	}

	missing, err := repo.FindByUsername(ctx, "nobody")
	if err != nil {
		t.Fatalf("FindByUsername() error = %v", err)
	}
	if missing != nil {
		t.Errorf("FindByUsername(nobody) = %+v, want nil", missing)
	}

	count, err = repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}
}

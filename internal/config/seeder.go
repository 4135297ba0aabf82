package config

import (
	"context"
	"log"
	"time"

	"attendly-api/internal/adapters/persistence/models"
	"attendly-api/internal/adapters/persistence/repositories"
	"attendly-api/internal/core/domain"
	"attendly-api/internal/pkg/datetime"
	"attendly-api/internal/pkg/password"

	"github.com/google/uuid"
)

// Seeder populates the credential directory and, in dev setups, a few
// demo attendance records. Seeding only runs against empty documents so
// restarts never clobber real data.
type Seeder struct {
	directory repositories.CredentialDirectory
	records   repositories.RecordStore
	cfg       *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(directory repositories.CredentialDirectory, records repositories.RecordStore, cfg *Config) *Seeder {
	return &Seeder{
		directory: directory,
		records:   records,
		cfg:       cfg,
	}
}

// Run executes all seeders
func (s *Seeder) Run(ctx context.Context) error {
	log.Println("🌱 Running seeders...")

	if err := s.seedDirectory(ctx); err != nil {
		return err
	}
	if s.cfg.Seed.DemoData {
		if err := s.seedDemoRecords(ctx); err != nil {
			return err
		}
	}

	log.Println("✅ Seeding completed")
	return nil
}

// seedDirectory writes the fixed login directory when none exists yet.
// Passwords are hashed here; the plaintext values are dev credentials
// and never stored.
func (s *Seeder) seedDirectory(ctx context.Context) error {
	count, err := s.directory.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	entries := []struct {
		userID   string
		username string
		plain    string
		fullName string
		role     string
	}{
		{"1", "admin", "admin123", "Admin User", domain.RoleAdmin},
		{"2", "employee1", "emp123", "John Smith", domain.RoleEmployee},
		{"3", "employee2", "emp123", "Jane Doe", domain.RoleEmployee},
	}

	creds := make([]models.Credential, 0, len(entries))
	for _, e := range entries {
		hash, err := password.Hash(e.plain)
		if err != nil {
			return err
		}
		creds = append(creds, models.Credential{
			UserID:       e.userID,
			Username:     e.username,
			PasswordHash: hash,
			FullName:     e.fullName,
			Role:         e.role,
		})
	}

	if err := s.directory.SaveAll(ctx, creds); err != nil {
		return err
	}

	log.Printf("✅ Credential directory seeded (%d users)", len(creds))
	return nil
}

// seedDemoRecords writes a small closed-record history when the record
// collection is empty
func (s *Seeder) seedDemoRecords(ctx context.Context) error {
	existing, err := s.records.LoadAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	yesterday := time.Now().AddDate(0, 0, -1)
	twoDaysAgo := time.Now().AddDate(0, 0, -2)

	records := []domain.AttendanceRecord{
		demoRecord("2", "John Smith", yesterday, 9, 0, 17, 30),
		demoRecord("3", "Jane Doe", yesterday, 8, 45, 18, 0),
		demoRecord("2", "John Smith", twoDaysAgo, 9, 15, 16, 45),
	}

	if err := s.records.SaveAll(ctx, records); err != nil {
		return err
	}

	log.Printf("✅ Demo attendance records seeded (%d records)", len(records))
	return nil
}

// demoRecord builds a closed record on the given day with check-in and
// check-out at the given local wall-clock times
func demoRecord(employeeID, name string, day time.Time, inH, inM, outH, outM int) domain.AttendanceRecord {
	in := time.Date(day.Year(), day.Month(), day.Day(), inH, inM, 0, 0, time.Local)
	out := time.Date(day.Year(), day.Month(), day.Day(), outH, outM, 0, 0, time.Local)

	return domain.AttendanceRecord{
		ID:             uuid.New().String(),
		EmployeeID:     employeeID,
		EmployeeName:   name,
		CheckInTime:    in,
		CheckOutTime:   &out,
		AttendanceDate: datetime.Day(in),
	}
}

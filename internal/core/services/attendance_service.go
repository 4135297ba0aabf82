package services

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"attendly-api/internal/adapters/persistence/repositories"
	"attendly-api/internal/core/domain"
	"attendly-api/internal/pkg/datetime"

	"github.com/google/uuid"
)

// AttendanceService enforces the per-day attendance state machine:
// Absent → CheckedIn → CheckedOut, one-directional and terminal for the
// day. It is the only writer of the record collection and always works
// read-modify-write against the injected store.
type AttendanceService struct {
	records repositories.RecordStore

	// listLatency simulates upstream latency in ListRecords. Zero in
	// production; only ever set through config for demos.
	listLatency time.Duration
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(records repositories.RecordStore, listLatency time.Duration) *AttendanceService {
	return &AttendanceService{
		records:     records,
		listLatency: listLatency,
	}
}

// CheckInOutResult represents the outcome of a check-in or check-out
type CheckInOutResult struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message"`
	Record  *domain.AttendanceRecord `json:"record,omitempty"`
}

// ListQuery holds the optional filters for ListRecords
type ListQuery struct {
	Name      string
	StartDate string
	EndDate   string
}

// CheckIn opens today's attendance record for the identity. It is
// rejected when any record for today already exists, even one that has
// been checked out: an employee gets a single attendance record per day.
func (s *AttendanceService) CheckIn(ctx context.Context, identity *domain.Identity) (*CheckInOutResult, error) {
	if identity == nil {
		return nil, domain.ErrNotAuthenticated
	}

	all, err := s.records.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	today := datetime.Today()
	if findTodayRecord(all, identity.UserID, today) != nil {
		return nil, domain.ErrAlreadyCheckedIn
	}

	now := time.Now()
	record := domain.AttendanceRecord{
		ID:             uuid.New().String(),
		EmployeeID:     identity.UserID,
		EmployeeName:   identity.FullName,
		CheckInTime:    now,
		CheckOutTime:   nil,
		AttendanceDate: today,
	}

	all = append(all, record)
	if err := s.records.SaveAll(ctx, all); err != nil {
		return nil, err
	}

	log.Printf("✅ %s checked in (%s)", identity.FullName, today)

	return &CheckInOutResult{
		Success: true,
		Message: "Successfully checked in at " + datetime.Clock(now),
		Record:  &record,
	}, nil
}

// CheckOut closes today's open record for the identity
func (s *AttendanceService) CheckOut(ctx context.Context, identity *domain.Identity) (*CheckInOutResult, error) {
	if identity == nil {
		return nil, domain.ErrNotAuthenticated
	}

	all, err := s.records.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	today := datetime.Today()
	record := findTodayRecord(all, identity.UserID, today)
	if record == nil {
		return nil, domain.ErrNoActiveCheckIn
	}
	if !record.IsOpen() {
		return nil, domain.ErrAlreadyCheckedOut
	}

	now := time.Now()
	record.CheckOutTime = &now
	if err := s.records.SaveAll(ctx, all); err != nil {
		return nil, err
	}

	log.Printf("✅ %s checked out (%s)", identity.FullName, today)

	updated := *record
	return &CheckInOutResult{
		Success: true,
		Message: "Successfully checked out at " + datetime.Clock(now),
		Record:  &updated,
	}, nil
}

// Status derives today's attendance state for the identity. A nil
// identity yields the zero status rather than an error.
func (s *AttendanceService) Status(ctx context.Context, identity *domain.Identity) (domain.AttendanceStatus, error) {
	if identity == nil {
		return domain.AttendanceStatus{}, nil
	}

	all, err := s.records.LoadAll(ctx)
	if err != nil {
		return domain.AttendanceStatus{}, err
	}

	record := findTodayRecord(all, identity.UserID, datetime.Today())
	if record == nil {
		return domain.AttendanceStatus{}, nil
	}
	return domain.AttendanceStatus{
		CheckedIn:  true,
		CheckedOut: !record.IsOpen(),
	}, nil
}

// ListRecords returns the filtered collection, newest attendance date
// first. Name matching is a case-insensitive substring test; date bounds
// are inclusive calendar-day keys.
func (s *AttendanceService) ListRecords(ctx context.Context, q ListQuery) ([]domain.AttendanceRecord, error) {
	if s.listLatency > 0 {
		select {
		case <-time.After(s.listLatency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	all, err := s.records.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.AttendanceRecord, 0, len(all))
	nameFilter := strings.ToLower(q.Name)
	for _, record := range all {
		if nameFilter != "" && !strings.Contains(strings.ToLower(record.EmployeeName), nameFilter) {
			continue
		}
		if q.StartDate != "" && record.AttendanceDate < q.StartDate {
			continue
		}
		if q.EndDate != "" && record.AttendanceDate > q.EndDate {
			continue
		}
		out = append(out, record)
	}

	// Stable: same-day records keep their stored relative order
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AttendanceDate > out[j].AttendanceDate
	})

	return out, nil
}

// findTodayRecord returns a pointer into records for the identity's
// record on the given day, or nil when none exists
func findTodayRecord(records []domain.AttendanceRecord, employeeID, day string) *domain.AttendanceRecord {
	for i := range records {
		if records[i].EmployeeID == employeeID && records[i].AttendanceDate == day {
			return &records[i]
		}
	}
	return nil
}

package services

import (
	"context"
	"log"

	"attendly-api/internal/adapters/persistence/repositories"
	"attendly-api/internal/pkg/datetime"

	"github.com/robfig/cron/v3"
)

// ReminderService runs a daily cron job that reports employees whose
// attendance record for the day is still open. It only logs; the state
// machine is never mutated by the scheduler.
type ReminderService struct {
	records  repositories.RecordStore
	schedule string
	cron     *cron.Cron
}

// NewReminderService creates a reminder service with a cron schedule
// expression (e.g. "0 18 * * *" for 18:00 daily)
func NewReminderService(records repositories.RecordStore, schedule string) *ReminderService {
	return &ReminderService{
		records:  records,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start registers the job and launches the scheduler
func (s *ReminderService) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.remindOpenCheckIns); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("🚀 Check-out reminder scheduled [%s]", s.schedule)
	return nil
}

// Stop stops the scheduler, waiting for a running job to finish
func (s *ReminderService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Check-out reminder stopped")
}

func (s *ReminderService) remindOpenCheckIns() {
	all, err := s.records.LoadAll(context.Background())
	if err != nil {
		log.Printf("❌ Reminder query error: %v", err)
		return
	}

	today := datetime.Today()
	open := 0
	for i := range all {
		if all[i].AttendanceDate == today && all[i].IsOpen() {
			open++
			log.Printf("⏰ %s has not checked out yet", all[i].EmployeeName)
		}
	}
	if open == 0 {
		log.Println("✅ All of today's check-ins are closed")
	}
}

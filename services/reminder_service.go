package services

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/hostkeep/rental-app/utils"
)

// ReminderService nags about tickets that have been sitting Open for
// too long. It only logs; ticket state is never touched.
type ReminderService struct {
	lifecycle *LifecycleService
	cron      *cron.Cron

	// StaleAfter is how long a ticket may stay Open before the daily
	// sweep flags it.
	StaleAfter time.Duration
}

func NewReminderService(ls *LifecycleService) *ReminderService {
	return &ReminderService{
		lifecycle:  ls,
		cron:       cron.New(),
		StaleAfter: 7 * 24 * time.Hour,
	}
}

// Start runs one sweep immediately and schedules a daily one at 9 AM.
func (s *ReminderService) Start() {
	s.SweepStaleTickets()

	if _, err := s.cron.AddFunc("0 9 * * *", func() { s.SweepStaleTickets() }); err != nil {
		utils.ErrorLogger.Printf("reminder: scheduling sweep: %v", err)
		return
	}
	s.cron.Start()
	utils.InfoLogger.Println("Stale ticket reminder started")
}

func (s *ReminderService) Stop() {
	s.cron.Stop()
}

// SweepStaleTickets logs every open ticket older than StaleAfter and
// returns how many it found.
func (s *ReminderService) SweepStaleTickets() int {
	stale := s.lifecycle.StaleOpenTickets(s.StaleAfter)
	for _, t := range stale {
		utils.InfoLogger.Printf("Reminder: ticket %s (property %s) open since %s", t.ID, t.PropertyID, t.DateCreated)
	}
	return len(stale)
}

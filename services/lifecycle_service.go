package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hostkeep/rental-app/database"
	"github.com/hostkeep/rental-app/models"
	"github.com/hostkeep/rental-app/store"
)

var (
	ErrTicketNotFound        = errors.New("ticket not found")
	ErrTicketAlreadyResolved = errors.New("ticket already resolved")
)

// ValidationError reports the required fields a submission is missing.
// Nothing is appended when one is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// VisitInput is a cleaner's visit submission.
type VisitInput struct {
	PropertyID     string `json:"propertyId"`
	CleanerName    string `json:"cleanerName"`
	Date           string `json:"date"`
	TimeStarted    string `json:"timeStarted"`
	TimeFinished   string `json:"timeFinished"`
	WorkPhotosLink string `json:"workPhotosLink"`
	IssuesFound    bool   `json:"issuesFound"`
}

// TicketInput carries the issue report attached to a visit with
// IssuesFound set.
type TicketInput struct {
	IssueDescription string `json:"issueDescription"`
	IssuePhoto       string `json:"issuePhoto"`
}

// ResolutionInput documents how a ticket was fixed.
type ResolutionInput struct {
	MaintenancePersonName string `json:"maintenancePersonName"`
	Notes                 string `json:"notes"`
	AfterPhoto            string `json:"afterPhoto"`
}

// LifecycleService owns the four entity collections. State is loaded
// from the store once at construction and held in memory as the source
// of truth; every mutation writes the affected collections back. All
// access goes through the mutex since gin serves requests concurrently.
type LifecycleService struct {
	store *store.Store

	mu              sync.Mutex
	properties      []models.Property
	cleanerLogs     []models.CleanerLog
	tickets         []models.Ticket
	maintenanceLogs []models.MaintenanceLog

	// Ticket ids stay a readable TICKET-### sequence. The counter is
	// owned here rather than derived from a length snapshot on each
	// write; it starts at the loaded count (nothing is ever deleted).
	ticketSeq int
}

func NewLifecycleService(s *store.Store) *LifecycleService {
	ls := &LifecycleService{store: s}
	ls.properties = store.Load(s, store.KeyProperties, database.DefaultProperties())
	ls.cleanerLogs = store.Load(s, store.KeyCleanerLogs, []models.CleanerLog{})
	ls.tickets = store.Load(s, store.KeyTickets, []models.Ticket{})
	ls.maintenanceLogs = store.Load(s, store.KeyMaintenanceLogs, []models.MaintenanceLog{})
	ls.ticketSeq = len(ls.tickets)
	return ls
}

// RecordCleanerVisit appends a CleanerLog and, when the visit reports
// an issue, an Open ticket pointing back at it. The two writes are not
// transactional: a crash in between leaves the log alone, which is a
// valid state.
func (ls *LifecycleService) RecordCleanerVisit(visit VisitInput, ticket *TicketInput) (models.CleanerLog, *models.Ticket, error) {
	var missing []string
	if visit.PropertyID == "" {
		missing = append(missing, "propertyId")
	}
	if visit.CleanerName == "" {
		missing = append(missing, "cleanerName")
	}
	if visit.Date == "" {
		missing = append(missing, "date")
	}
	if visit.TimeStarted == "" {
		missing = append(missing, "timeStarted")
	}
	if visit.TimeFinished == "" {
		missing = append(missing, "timeFinished")
	}
	if visit.IssuesFound {
		if ticket == nil || ticket.IssueDescription == "" {
			missing = append(missing, "issueDescription")
		}
		if ticket == nil || ticket.IssuePhoto == "" {
			missing = append(missing, "issuePhoto")
		}
	}
	if len(missing) > 0 {
		return models.CleanerLog{}, nil, &ValidationError{Fields: missing}
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	logEntry := models.CleanerLog{
		ID:             store.NewID("log"),
		PropertyID:     visit.PropertyID,
		CleanerName:    visit.CleanerName,
		Date:           visit.Date,
		TimeStarted:    visit.TimeStarted,
		TimeFinished:   visit.TimeFinished,
		WorkPhotosLink: visit.WorkPhotosLink,
		IssuesFound:    visit.IssuesFound,
	}
	ls.cleanerLogs = append(ls.cleanerLogs, logEntry)
	store.Save(ls.store, store.KeyCleanerLogs, ls.cleanerLogs)

	if !visit.IssuesFound || ticket == nil {
		return logEntry, nil, nil
	}

	ls.ticketSeq++
	newTicket := models.Ticket{
		ID:               fmt.Sprintf("TICKET-%03d", ls.ticketSeq),
		CleanerLogID:     logEntry.ID,
		PropertyID:       visit.PropertyID,
		IssueDescription: ticket.IssueDescription,
		IssuePhoto:       ticket.IssuePhoto,
		Status:           models.TicketOpen,
		DateCreated:      time.Now().Format(time.RFC3339),
	}
	ls.tickets = append(ls.tickets, newTicket)
	store.Save(ls.store, store.KeyTickets, ls.tickets)

	return logEntry, &newTicket, nil
}

// ResolveTicket appends a MaintenanceLog for the ticket and flips its
// status to Resolved. The before photo is copied verbatim from the
// ticket's issue photo. Resolving an unknown ticket changes nothing;
// resolving one twice is rejected so a resolved ticket always has
// exactly one maintenance log.
func (ls *LifecycleService) ResolveTicket(ticketID string, res ResolutionInput) (models.MaintenanceLog, error) {
	var missing []string
	if res.MaintenancePersonName == "" {
		missing = append(missing, "maintenancePersonName")
	}
	if res.Notes == "" {
		missing = append(missing, "notes")
	}
	if res.AfterPhoto == "" {
		missing = append(missing, "afterPhoto")
	}
	if len(missing) > 0 {
		return models.MaintenanceLog{}, &ValidationError{Fields: missing}
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	idx := -1
	for i := range ls.tickets {
		if ls.tickets[i].ID == ticketID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.MaintenanceLog{}, ErrTicketNotFound
	}
	if ls.tickets[idx].Status == models.TicketResolved {
		return models.MaintenanceLog{}, ErrTicketAlreadyResolved
	}

	maintLog := models.MaintenanceLog{
		ID:                    store.NewID("maint"),
		TicketID:              ticketID,
		MaintenancePersonName: res.MaintenancePersonName,
		DateFixed:             time.Now().Format(time.RFC3339),
		BeforePhoto:           ls.tickets[idx].IssuePhoto,
		AfterPhoto:            res.AfterPhoto,
		Notes:                 res.Notes,
	}
	ls.maintenanceLogs = append(ls.maintenanceLogs, maintLog)
	store.Save(ls.store, store.KeyMaintenanceLogs, ls.maintenanceLogs)

	ls.tickets[idx].Status = models.TicketResolved
	store.Save(ls.store, store.KeyTickets, ls.tickets)

	return maintLog, nil
}

// ListOpenTickets returns the open tickets in insertion order.
func (ls *LifecycleService) ListOpenTickets() []models.Ticket {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	var open []models.Ticket
	for _, t := range ls.tickets {
		if t.Status == models.TicketOpen {
			open = append(open, t)
		}
	}
	return open
}

// StaleOpenTickets returns open tickets created before the cutoff.
// Tickets with unparseable creation dates are skipped.
func (ls *LifecycleService) StaleOpenTickets(olderThan time.Duration) []models.Ticket {
	cutoff := time.Now().Add(-olderThan)

	ls.mu.Lock()
	defer ls.mu.Unlock()

	var stale []models.Ticket
	for _, t := range ls.tickets {
		if t.Status != models.TicketOpen {
			continue
		}
		created, err := time.Parse(time.RFC3339, t.DateCreated)
		if err != nil {
			continue
		}
		if created.Before(cutoff) {
			stale = append(stale, t)
		}
	}
	return stale
}

func (ls *LifecycleService) Properties() []models.Property {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return append([]models.Property(nil), ls.properties...)
}

func (ls *LifecycleService) CleanerLogs() []models.CleanerLog {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return append([]models.CleanerLog(nil), ls.cleanerLogs...)
}

func (ls *LifecycleService) Tickets() []models.Ticket {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return append([]models.Ticket(nil), ls.tickets...)
}

func (ls *LifecycleService) MaintenanceLogs() []models.MaintenanceLog {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return append([]models.MaintenanceLog(nil), ls.maintenanceLogs...)
}

// MaintenanceNotes returns the notes of every maintenance log, in
// insertion order, for the admin summary.
func (ls *LifecycleService) MaintenanceNotes() []string {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	notes := make([]string, 0, len(ls.maintenanceLogs))
	for _, m := range ls.maintenanceLogs {
		notes = append(notes, m.Notes)
	}
	return notes
}

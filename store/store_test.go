package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hostkeep/rental-app/models"
	"github.com/hostkeep/rental-app/utils"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	utils.InitLogger()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	s, err := New(db)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return s
}

func TestLoadSeedsDefaultWhenAbsent(t *testing.T) {
	s := setupTestStore(t)

	def := []models.Property{{ID: "p1", Name: "Tremont", Address: "3010 Tremont Dr."}}
	got := Load(s, KeyProperties, def)
	assert.Equal(t, def, got)

	// The default must now be persisted, not just returned.
	again := Load(s, KeyProperties, []models.Property{})
	assert.Equal(t, def, again)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	tickets := []models.Ticket{
		{ID: "TICKET-001", Status: models.TicketOpen, IssueDescription: "broken lock"},
		{ID: "TICKET-002", Status: models.TicketResolved, IssueDescription: "leaky faucet"},
	}
	Save(s, KeyTickets, tickets)

	got := Load(s, KeyTickets, []models.Ticket{})
	assert.Equal(t, tickets, got)
}

func TestSaveReplacesExistingValue(t *testing.T) {
	s := setupTestStore(t)

	Save(s, KeyCleanerLogs, []models.CleanerLog{{ID: "log-1"}})
	Save(s, KeyCleanerLogs, []models.CleanerLog{{ID: "log-1"}, {ID: "log-2"}})

	got := Load(s, KeyCleanerLogs, []models.CleanerLog{})
	assert.Len(t, got, 2)
}

func TestLoadFallsBackOnCorruptValue(t *testing.T) {
	s := setupTestStore(t)

	s.db.Create(&Collection{Key: KeyTickets, Value: "{not json"})

	def := []models.Ticket{}
	got := Load(s, KeyTickets, def)
	assert.Equal(t, def, got)
}

func TestNewID(t *testing.T) {
	a := NewID("log")
	b := NewID("log")

	assert.True(t, strings.HasPrefix(a, "log-"))
	assert.NotEqual(t, a, b)
}

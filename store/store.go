package store

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hostkeep/rental-app/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Collection keys, one row per entity list.
const (
	KeyProperties      = "properties"
	KeyCleanerLogs     = "cleanerLogs"
	KeyTickets         = "tickets"
	KeyMaintenanceLogs = "maintenanceLogs"
)

// Collection is a single persisted entity list, stored as JSON text
// under its key.
type Collection struct {
	Key       string `gorm:"primaryKey;type:varchar(64)"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// Store persists keyed JSON collections. The in-memory copy held by the
// caller is authoritative for the session; Save failures are logged and
// swallowed so a storage problem never breaks the running app.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Collection{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Load reads the collection stored under key. If the key is absent the
// default is persisted and returned, so first startup seeds the store.
// Read or decode failures also fall back to the default.
func Load[T any](s *Store, key string, def T) T {
	var row Collection
	err := s.db.First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		Save(s, key, def)
		return def
	}
	if err != nil {
		utils.ErrorLogger.Printf("store: loading %q: %v", key, err)
		return def
	}

	var value T
	if err := json.Unmarshal([]byte(row.Value), &value); err != nil {
		utils.ErrorLogger.Printf("store: decoding %q: %v", key, err)
		return def
	}
	return value
}

// Save replaces the collection stored under key. Errors are logged,
// never returned: the caller's in-memory state stays the source of
// truth even when persistence fails.
func Save[T any](s *Store, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		utils.ErrorLogger.Printf("store: encoding %q: %v", key, err)
		return
	}

	row := Collection{Key: key, Value: string(raw)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		utils.ErrorLogger.Printf("store: saving %q: %v", key, err)
	}
}

// NewID returns a prefixed random identifier for append-only entities.
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

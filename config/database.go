package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database that backs the collection store. SQLite is
// the default so the app runs standalone; set DB_DRIVER=mysql with a
// DB_DSN to point it at a server instead.
func InitDB() (*gorm.DB, error) {
	switch os.Getenv("DB_DRIVER") {
	case "mysql":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			return nil, fmt.Errorf("DB_DRIVER=mysql requires DB_DSN")
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "rental-app.db"
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
}

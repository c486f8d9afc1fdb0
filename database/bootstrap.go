package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"farmsurvey/entities"
)

// OpenSQLite opens (or creates) the database and migrates the schema.
// SQLite needs foreign_keys switched on per connection for the
// trees -> farm_surveys constraint to be enforced at all, so it goes in
// the DSN rather than a one-off Exec against a single pooled connection.
func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path+"?_pragma=foreign_keys(1)"), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.FarmSurvey{},
		&entities.Tree{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

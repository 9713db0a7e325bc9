package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"farmkeep/entities"
)

// OpenSQLite opens (or creates) the database and migrates the schema.
// TranslateError is on so unique-index violations surface as
// gorm.ErrDuplicatedKey; the reminder derivation relies on that.
func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Crop{},
		&entities.Reminder{},
		&entities.Contact{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

package store

import (
	"os"
	"time"

	"eventide/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the row store and migrates the schema. With DATABASE_URL set
// it connects to Postgres; otherwise it falls back to a local sqlite file,
// which is also what the tests run on.
func Init() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")

	var db *gorm.DB
	var err error
	if dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		// Cascades rely on foreign key enforcement, off by default in sqlite
		db, err = gorm.Open(sqlite.Open("file:eventide.db?_pragma=foreign_keys(1)"), &gorm.Config{})
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	if dsn == "" {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Profile{},
		&entity.Collaboration{},
		&entity.Member{},
		&entity.Invitation{},
		&entity.Message{},
		&entity.Label{},
		&entity.Event{},
		&entity.Project{},
		&entity.Todo{},
		&entity.Subtask{},
		&entity.Notebook{},
		&entity.Note{},
	)
}

package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"blogapi/models"
)

// Connect opens the postgres connection through lib/pq and hands it to GORM.
func Connect(databaseURL string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("initializing gorm: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	log.Info("connected to database")
	return db, nil
}

// Migrate creates the schema, including both interaction ledger tables and
// the partial unique indexes that make VIEW/LIKE idempotent at the storage
// level.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Post{},
		&models.Note{},
		&models.Tag{},
		&models.User{},
		&models.Comment{},
		&models.Bookmark{},
		&models.Guest{},
		&models.DeviceToken{},
	)
	if err != nil {
		return fmt.Errorf("migrating models: %w", err)
	}

	for _, table := range []string{"post_interactions", "note_interactions"} {
		if err := db.Table(table).AutoMigrate(&models.InteractionRecord{}); err != nil {
			return fmt.Errorf("migrating %s: %w", table, err)
		}
		if err := createLedgerIndexes(db, table); err != nil {
			return err
		}
	}
	return nil
}

// createLedgerIndexes adds the uniqueness guarantees the ledger relies on:
// at most one VIEW and one LIKE record per actor per target. The DDL is valid
// on both postgres and sqlite.
func createLedgerIndexes(db *gorm.DB, table string) error {
	statements := []string{
		fmt.Sprintf(
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_%s_guest_once
			 ON %s (target_id, type, guest_id)
			 WHERE type IN ('VIEW', 'LIKE') AND guest_id IS NOT NULL`,
			table, table,
		),
		fmt.Sprintf(
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_%s_user_once
			 ON %s (target_id, type, user_id)
			 WHERE type IN ('VIEW', 'LIKE') AND user_id IS NOT NULL`,
			table, table,
		),
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("creating ledger index on %s: %w", table, err)
		}
	}
	return nil
}

package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lotusspa/salon-scheduler/internal/config"
	"github.com/lotusspa/salon-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Salon{},
		&models.SalonBranch{},
		&models.SalonBed{},
		&models.Therapy{},
		&models.SalonMedia{},
		&models.Reservation{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Last line of defence for the booking race: no two WAITING
	// reservations may hold overlapping ranges on the same bed, even if
	// application code regresses to check-then-insert.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.Fatalf("failed to create btree_gist extension: %v", err)
	}
	if err := db.Exec(`
        DO $$ BEGIN
            ALTER TABLE reservations
            ADD CONSTRAINT reservations_no_waiting_overlap
            EXCLUDE USING gist (
                salon_bed_id WITH =,
                tstzrange(time_from, time_to) WITH &&
            ) WHERE (status = 'WAITING');
        EXCEPTION
            WHEN duplicate_object THEN NULL;
        END $$
    `).Error; err != nil {
		log.Fatalf("failed to add reservation overlap constraint: %v", err)
	}

	return db
}

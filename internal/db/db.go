package db

import (
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/RosaneTech/crm-agenda/internal/config"
	"github.com/RosaneTech/crm-agenda/internal/models"
)

// NewDB abre o arquivo SQLite e roda a migração idempotente uma vez,
// na subida do processo, nunca durante uma requisição.
func NewDB(cfg *config.Config) *gorm.DB {
	dsn := cfg.DBPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	// SQLite: um único escritor. A aquisição é preguiçosa por operação
	// e a devolução ao pool é incondicional, inclusive em erro.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(
		&models.Client{},
		&models.Note{},
		&models.Appointment{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

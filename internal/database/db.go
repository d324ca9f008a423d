package database

import (
	"log"

	"panelapi/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Auto-migrate core models
	err = db.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.Role{},
		&model.Permission{},
		&model.PaymentRequest{},
		&model.PaymentAction{},
		&model.Tag{},
		&model.Unit{},
		&model.BudgetCode{},
		&model.Project{},
		&model.DailyReport{},
		&model.Attachment{},
		&model.Letter{},
		&model.Currency{},
		&model.AuditLog{},
		&model.SerialCounter{},
	)
	if err != nil {
		log.Println("WARNING: Failed to auto-migrate models:", err)
	}

	return db, nil
}

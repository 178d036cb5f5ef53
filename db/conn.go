// Package db contains things related to SQLite
package db

import (
	"budgetbuddy/finance-api/model"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func New(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite database, %w", err)
	}

	err = db.AutoMigrate(
		model.User{},
		model.Category{},
		model.PaymentMode{},
		model.Expense{},
		model.Income{},
		model.Testimonial{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}

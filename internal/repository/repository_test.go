package repository

import (
	"testing"

	"gorm.io/gorm"

	"rxinsight/internal/db"
	"rxinsight/internal/model"
)

// newTestDB opens an in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := db.NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Drug{},
		&model.RegionalMedicine{},
		&model.PharmaCompany{},
		&model.Supplier{},
		&model.Customer{},
		&model.Medicine{},
		&model.Sale{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return gormDB
}

func ratingOf(v float64) *float64 {
	return &v
}

package repository

import (
	"os"
	"sync"
	"testing"

	"arcoiris/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	testDBOnce sync.Once
	testDBConn *gorm.DB
	testDBErr  error
)

// testDB opens the database named by TEST_DATABASE_DSN and migrates the
// models this package touches. The tests here exercise real SQL, so they
// skip when no database is configured.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	testDBOnce.Do(func() {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			testDBErr = err
			return
		}
		testDBErr = db.AutoMigrate(
			&model.Category{},
			&model.Product{},
			&model.Variant{},
			&model.Order{},
		)
		testDBConn = db
	})
	if testDBErr != nil {
		t.Fatalf("open test database: %v", testDBErr)
	}
	return testDBConn
}

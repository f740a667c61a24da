package stores

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/figliolo/bar-client/config"
	"github.com/figliolo/bar-client/models"
	"github.com/figliolo/bar-client/services"
)

// newTestClient points a Client at a stub of the remote ordering API.
func newTestClient(t *testing.T, baseURL string) *services.Client {
	t.Helper()
	return services.NewClient(&config.Config{APIBaseURL: baseURL})
}

// newTestDB opens an in-memory local store with the client schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.CartLine{}, &models.Preference{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// fixedDay returns a clock pinned to a known weekday.
func fixedDay(weekday time.Weekday) func() time.Time {
	// 2026-08-24 is a Monday
	base := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	day := base.AddDate(0, 0, int(weekday-time.Monday))
	return func() time.Time { return day }
}

package config

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectLocalStore opens the on-device SQLite database that keeps client
// state (per-shift carts, selected shift) alive across restarts.
func ConnectLocalStore(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store %q: %w", path, err)
	}
	return db, nil
}

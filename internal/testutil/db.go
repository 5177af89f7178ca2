package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/pokedecks/tcg-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbCounter atomic.Int64

// OpenDB opens a fresh in-memory SQLite database migrated with the full
// schema. Each call gets its own named shared-cache database so pooled
// connections see the same data.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbCounter.Add(1))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Card{},
		&models.Deck{},
		&models.DeckCard{},
		&models.SystemLog{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to access underlying DB: %v", err)
	}
	t.Cleanup(func() {
		if err := sqlDB.Close(); err != nil {
			t.Fatalf("failed to close database: %v", err)
		}
	})

	return gdb
}

// SeedCards inserts n catalog cards with ids 1..n and returns their ids.
func SeedCards(t *testing.T, db *gorm.DB, n int) []uint {
	t.Helper()

	ids := make([]uint, n)
	for i := 0; i < n; i++ {
		card := models.Card{
			ID:            uint(i + 1),
			PokedexNumber: i + 1,
			Name:          fmt.Sprintf("Pokemon %d", i+1),
			HP:            40 + i,
			Attack:        30 + i,
			Type:          "Normal",
		}
		if err := db.Create(&card).Error; err != nil {
			t.Fatalf("failed to seed card %d: %v", i+1, err)
		}
		ids[i] = card.ID
	}
	return ids
}
